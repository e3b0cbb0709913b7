package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/adapters/contracts"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func acknowledgment(t *testing.T) order.OrderAcknowledgment {
	t.Helper()
	email, err := kernel.NewEmailAddress("ada@example.com")
	require.NoError(t, err)
	return order.NewOrderAcknowledgment(email, "<p>hi</p>")
}

func TestNewClient(t *testing.T) {
	c := NewClient(" kafka-1:9092, ,kafka-2:9092 ")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Brokers)
	assert.True(t, c.Enabled())
	assert.False(t, NewClient("").Enabled())

	w := c.NewWriter("orders")
	assert.Equal(t, "orders", w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
}

func TestAcknowledgmentSender_Sent(t *testing.T) {
	w := &recordingWriter{}
	s := NewAcknowledgmentSender(w, slog.New(slog.DiscardHandler))

	result := s.SendOrderAcknowledgment(t.Context(), acknowledgment(t))

	assert.Equal(t, order.Sent, result)
	require.Len(t, w.messages, 1)
	assert.Equal(t, "ada@example.com", string(w.messages[0].Key))

	var got contracts.Acknowledgment
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
	assert.Equal(t, "ada@example.com", got.EmailAddress)
	assert.Equal(t, "<p>hi</p>", got.Letter)
}

func TestAcknowledgmentSender_WriteFailureIsNotSent(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	s := NewAcknowledgmentSender(w, slog.New(slog.DiscardHandler))

	result := s.SendOrderAcknowledgment(t.Context(), acknowledgment(t))

	assert.Equal(t, order.NotSent, result)
	assert.Empty(t, w.messages)
}

func TestEventPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := NewEventPublisher(w)
	message := ports.OutboxMessage{
		ID:         uuid.New(),
		OrderID:    "order-1",
		EventType:  contracts.EventOrderPlaced,
		Payload:    []byte(`{"type":"order.placed"}`),
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(t.Context(), message))

	require.Len(t, w.messages, 1)
	got := w.messages[0]
	assert.Equal(t, "order-1", string(got.Key))
	assert.Equal(t, message.Payload, got.Value)
	assert.Equal(t, message.OccurredAt, got.Time)
	assert.Equal(t, []kafka.Header{
		{Key: EventTypeHeader, Value: []byte("order.placed")},
		{Key: EventIDHeader, Value: []byte(message.ID.String())},
	}, got.Headers)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestEventPublisher_PublishError(t *testing.T) {
	cause := errors.New("broker down")
	p := NewEventPublisher(&recordingWriter{err: cause})

	err := p.Publish(t.Context(), ports.OutboxMessage{ID: uuid.New(), OrderID: "order-1"})
	require.ErrorIs(t, err, cause)
}
