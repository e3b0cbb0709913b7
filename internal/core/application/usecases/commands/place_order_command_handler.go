package commands

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// ErrOrderPlacedEventIsMissing is returned when the workflow succeeds without an OrderPlaced event.
var ErrOrderPlacedEventIsMissing = errors.New("workflow returned no OrderPlaced event")

// PlaceOrderWorkflow runs the order-taking stages for one order.
type PlaceOrderWorkflow interface {
	Run(ctx context.Context, unvalidated order.UnvalidatedOrder) ([]order.Event, error)
}

// ProductCatalog reports whether product lookups can be answered.
// Ready returns a *order.RemoteServiceError while they cannot.
type ProductCatalog interface {
	Ready() error
}

// PlaceOrderCommandHandler places an order and records it.
//
// Before the workflow runs, the handler refuses orders it cannot place: the
// catalog must be loaded and the order id must not be placed yet. The workflow
// sends the acknowledgment, so these checks keep letters from going out for
// orders that are then rejected.
//
// The workflow runs outside of any transaction, since it calls remote
// services. When it succeeds, the priced order and all of its events are
// stored in one unit of work, so the outbox never holds events for an order
// that was not saved. The unique order id still rejects a concurrent
// duplicate at commit.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(workflow, catalog, placedOrders, uowFactory)
//	cmd, _ := NewPlaceOrderCommand(unvalidatedOrder, time.Now())
//
//	events, err := handler.Handle(ctx, cmd)
//	var validationErr *order.ValidationError
//	if errors.As(err, &validationErr) {
//	    // nothing was stored
//	}
type PlaceOrderCommandHandler struct {
	workflow     PlaceOrderWorkflow
	catalog      ProductCatalog
	placedOrders ports.PlacedOrderRepository
	uowFactory   PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for place order operations.
// placedOrders is only read, outside of the unit of work.
func NewPlaceOrderCommandHandler(
	workflow PlaceOrderWorkflow,
	catalog ProductCatalog,
	placedOrders ports.PlacedOrderRepository,
	uowFactory PlaceOrderUoWFactory,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		workflow:     workflow,
		catalog:      catalog,
		placedOrders: placedOrders,
		uowFactory:   uowFactory,
	}
}

// Handle processes the place order command and returns the workflow events.
// Workflow errors are returned unchanged and nothing is stored.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]order.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.catalog.Ready(); err != nil {
		return nil, err
	}

	if err := h.rejectPlacedOrder(ctx, cmd.Order().OrderID); err != nil {
		return nil, err
	}

	events, err := h.workflow.Run(ctx, cmd.Order())
	if err != nil {
		return nil, err
	}

	placed, err := orderPlaced(events)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PlacedOrderRepository().Add(ctx, placed.PricedOrder(), cmd.RequestedAt()); err != nil {
		return nil, fmt.Errorf("store placed order %s: %w", placed.OrderID(), err)
	}

	if err = uow.OutboxRepository().Add(ctx, cmd.RequestedAt(), events); err != nil {
		return nil, fmt.Errorf("store events of order %s: %w", placed.OrderID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return events, nil
}

// rejectPlacedOrder returns an error matching ports.ErrOrderAlreadyPlaced when
// rawOrderID is stored. A malformed id is left for the workflow to report.
func (h PlaceOrderCommandHandler) rejectPlacedOrder(ctx context.Context, rawOrderID string) error {
	orderID, err := kernel.NewOrderID(rawOrderID)
	if err != nil {
		return nil
	}

	exists, err := h.placedOrders.Exists(ctx, orderID)
	if err != nil {
		return fmt.Errorf("look up order %s: %w", orderID, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ports.ErrOrderAlreadyPlaced, orderID)
	}
	return nil
}

func orderPlaced(events []order.Event) (order.OrderPlaced, error) {
	for _, e := range events {
		if placed, ok := e.(order.OrderPlaced); ok {
			return placed, nil
		}
	}
	return order.OrderPlaced{}, ErrOrderPlacedEventIsMissing
}
