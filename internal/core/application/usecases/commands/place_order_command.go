package commands

import (
	"errors"
	"time"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrRequestedAtIsRequired = errors.New("requested at is required")
)

// PlaceOrderCommand is a request to take an order.
// It carries the raw order as received and the time the request arrived.
// The order itself is validated by the place order workflow, not here.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(unvalidatedOrder, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	events, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	order       order.UnvalidatedOrder
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place unvalidated.
// requestedAt must not be the zero time.
func NewPlaceOrderCommand(unvalidated order.UnvalidatedOrder, requestedAt time.Time) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		order: unvalidated,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestedAt(requestedAt); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns the raw order to place.
func (c PlaceOrderCommand) Order() order.UnvalidatedOrder {
	return c.order
}

// RequestedAt returns when the request arrived, in UTC.
func (c PlaceOrderCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *PlaceOrderCommand) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return ErrRequestedAtIsRequired
	}

	c.requestedAt = requestedAt.UTC()
	return nil
}
