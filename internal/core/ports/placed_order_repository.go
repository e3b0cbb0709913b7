// Package ports defines the contracts between the order-taking core and its
// infrastructure: persistence, the outbox, the product catalog and the event bus.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// ErrOrderAlreadyPlaced is returned by PlacedOrderRepository.Add when an order
// with the same id has already been stored.
var ErrOrderAlreadyPlaced = errors.New("order already placed")

// PlacedOrderRepository stores orders that made it through the place-order workflow.
type PlacedOrderRepository interface {
	// Add persists a priced order with its lines.
	// Returns an error matching ErrOrderAlreadyPlaced for a duplicate order id.
	Add(ctx context.Context, placed order.PricedOrder, placedAt time.Time) error

	// Exists reports whether an order with orderID has been stored.
	Exists(ctx context.Context, orderID kernel.OrderID) (bool, error)
}
