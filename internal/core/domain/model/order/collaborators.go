package order

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
)

// CheckProductCodeExists reports whether the catalog knows code.
// A false result is a validation failure of the line, not an error.
type CheckProductCodeExists func(code kernel.ProductCode) bool

// CheckAddressExists asks the address service to confirm an address.
//
// Implementations return an error matching ErrAddressNotFound when the address
// does not exist, and a *RemoteServiceError when the service could not answer.
type CheckAddressExists func(ctx context.Context, address UnvalidatedAddress) (CheckedAddress, error)

// GetProductPrice looks up the unit price of a product.
// An error matching ErrPriceNotFound means the product has no price.
type GetProductPrice func(ctx context.Context, code kernel.ProductCode) (kernel.Price, error)

// HTMLString is a rendered HTML document.
type HTMLString string

// CreateOrderAcknowledgmentLetter renders the acknowledgment letter for an order.
// It must not have side effects.
type CreateOrderAcknowledgmentLetter func(order PricedOrder) HTMLString

// SendOrderAcknowledgment delivers an acknowledgment to the customer.
// Delivery is best effort: failures are reported as NotSent, never as an error.
type SendOrderAcknowledgment func(ctx context.Context, acknowledgment OrderAcknowledgment) SendResult

// OrderAcknowledgment is the letter to send and where to send it.
type OrderAcknowledgment struct {
	emailAddress kernel.EmailAddress
	letter       HTMLString
}

// NewOrderAcknowledgment creates an OrderAcknowledgment.
func NewOrderAcknowledgment(emailAddress kernel.EmailAddress, letter HTMLString) OrderAcknowledgment {
	return OrderAcknowledgment{emailAddress: emailAddress, letter: letter}
}

func (a OrderAcknowledgment) EmailAddress() kernel.EmailAddress {
	return a.emailAddress
}

func (a OrderAcknowledgment) Letter() HTMLString {
	return a.letter
}
