package commands

import (
	"context"
	"fmt"
	"time"

	"ordertaking/internal/core/ports"
)

// PublishOrderEventsCommandHandler moves pending outbox messages to the event bus.
//
// Messages are published oldest first. The first publish failure stops the
// batch: messages published before it are marked and committed, the failed
// message and those after it stay pending for the next run.
type PublishOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewPublishOrderEventsCommandHandler creates a handler for outbox publishing.
func NewPublishOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) PublishOrderEventsCommandHandler {
	return PublishOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle publishes one batch and returns how many messages were published.
func (h PublishOrderEventsCommandHandler) Handle(ctx context.Context, cmd PublishOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	var publishErr error
	for _, message := range messages {
		if err = h.publisher.Publish(ctx, message); err != nil {
			publishErr = fmt.Errorf("publish %s event %s of order %s: %w",
				message.EventType, message.ID, message.OrderID, err)
			break
		}

		if err = outbox.MarkPublished(ctx, message.ID, h.now().UTC()); err != nil {
			return 0, err
		}
		published++
	}

	if published > 0 {
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return published, publishErr
}
