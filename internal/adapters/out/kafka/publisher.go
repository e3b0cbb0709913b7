package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"ordertaking/internal/core/ports"
)

// EventPublisher implements ports.EventPublisher on one topic.
// Events of an order share its id as key, so consumers see them in order.
type EventPublisher struct {
	writer messageWriter
}

// NewEventPublisher creates a publisher writing to writer.
func NewEventPublisher(writer messageWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish writes the stored envelope as is.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.OrderID),
		Value: message.Payload,
		Time:  message.OccurredAt,
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(message.EventType)},
			{Key: EventIDHeader, Value: []byte(message.ID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Close closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
