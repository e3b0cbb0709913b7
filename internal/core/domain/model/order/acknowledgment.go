package order

import (
	"context"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/option"
)

// ErrAcknowledgerIsNotConstructed is returned when creating a workflow from a zero value Acknowledger.
var ErrAcknowledgerIsNotConstructed = errs.NewValueIsRequiredError(
	"acknowledger must be created via NewAcknowledger")

// Acknowledger renders and sends the order acknowledgment letter.
type Acknowledger struct {
	createLetter CreateOrderAcknowledgmentLetter
	send         SendOrderAcknowledgment
	guard        guard.ConstructorGuard
}

// NewAcknowledger creates an Acknowledger bound to a letter renderer and a sender.
func NewAcknowledger(createLetter CreateOrderAcknowledgmentLetter, send SendOrderAcknowledgment) (Acknowledger, error) {
	if createLetter == nil {
		return Acknowledger{}, errs.NewValueIsRequiredError("createOrderAcknowledgmentLetter")
	}
	if send == nil {
		return Acknowledger{}, errs.NewValueIsRequiredError("sendOrderAcknowledgment")
	}
	return Acknowledger{
		createLetter: createLetter,
		send:         send,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether a was built by NewAcknowledger.
func (a Acknowledger) Validate() error {
	return a.guard.Validate(ErrAcknowledgerIsNotConstructed)
}

// Acknowledge sends the acknowledgment letter for priced to the customer.
//
// It returns Some(OrderAcknowledgmentSent) only when the sender reports Sent.
// Any other outcome, including an unconstructed Acknowledger, yields None:
// the order is already placed, so a missing letter is not an error.
func (a Acknowledger) Acknowledge(ctx context.Context, priced PricedOrder) option.Option[OrderAcknowledgmentSent] {
	if a.Validate() != nil || priced.Validate() != nil {
		return option.None[OrderAcknowledgmentSent]()
	}

	emailAddress := priced.customerInfo.EmailAddress()
	letter := a.createLetter(priced)

	if a.send(ctx, NewOrderAcknowledgment(emailAddress, letter)) != Sent {
		return option.None[OrderAcknowledgmentSent]()
	}
	return option.Some(OrderAcknowledgmentSent{
		orderID:      priced.orderID,
		emailAddress: emailAddress,
	})
}
