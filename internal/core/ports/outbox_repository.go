package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ordertaking/internal/core/domain/model/order"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID         uuid.UUID
	OrderID    string
	EventType  string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository stores domain events in the same transaction as the state
// change that produced them, so no event is lost or published for a rolled
// back order.
type OutboxRepository interface {
	// Add serializes events and stores them as unpublished messages.
	Add(ctx context.Context, occurredAt time.Time, events []order.Event) error

	// GetUnpublished returns up to limit unpublished messages, oldest first.
	// Rows are locked for the surrounding transaction.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the message with id was published.
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
}

// EventPublisher hands an outbox message to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
