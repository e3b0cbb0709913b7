// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordertaking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PlacedOrderRepoFactory provides access to the placed order repository within a transaction.
	PlacedOrderRepoFactory interface {
		PlacedOrderRepository() ports.PlacedOrderRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PlaceOrderUoW stores a placed order and its events atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.PlacedOrderRepository().Add(ctx, priced, placedAt)
	//   err = uow.OutboxRepository().Add(ctx, placedAt, events)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		PlacedOrderRepoFactory
		OutboxRepoFactory
	}

	// PlaceOrderUoWFactory creates new place order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OutboxUoW manages transactions for outbox-only operations.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
