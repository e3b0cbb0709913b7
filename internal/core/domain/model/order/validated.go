package order

import (
	"slices"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrValidatedOrderIsNotConstructed is returned when a ValidatedOrder did not come from a Validator.
var ErrValidatedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"validated order must be produced by Validator.Validate")

// ValidatedOrder is an order whose every field has passed validation.
// It can only be produced by Validator.Validate.
type ValidatedOrder struct {
	orderID         kernel.OrderID
	customerInfo    kernel.CustomerInfo
	shippingAddress kernel.Address
	billingAddress  kernel.Address
	lines           []ValidatedOrderLine
	guard           guard.ConstructorGuard
}

// ValidatedOrderLine is one validated line. Its quantity variant always
// matches its product code variant.
type ValidatedOrderLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
}

// Validate reports whether o was produced by a Validator.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

func (o ValidatedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

func (o ValidatedOrder) CustomerInfo() kernel.CustomerInfo {
	return o.customerInfo
}

func (o ValidatedOrder) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

func (o ValidatedOrder) BillingAddress() kernel.Address {
	return o.billingAddress
}

// Lines returns a copy of the order lines.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	return slices.Clone(o.lines)
}

func (l ValidatedOrderLine) OrderLineID() kernel.OrderLineID {
	return l.orderLineID
}

func (l ValidatedOrderLine) ProductCode() kernel.ProductCode {
	return l.productCode
}

func (l ValidatedOrderLine) Quantity() kernel.OrderQuantity {
	return l.quantity
}
