package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"ordertaking/internal/adapters/contracts"
	"ordertaking/internal/core/domain/model/order"
)

// AcknowledgmentSender hands acknowledgment letters to the mailer through a topic.
type AcknowledgmentSender struct {
	writer messageWriter
	logger *slog.Logger
}

// NewAcknowledgmentSender creates a sender writing to writer, usually Client.NewWriter(topic).
func NewAcknowledgmentSender(writer messageWriter, logger *slog.Logger) *AcknowledgmentSender {
	return &AcknowledgmentSender{
		writer: writer,
		logger: logger.With("component", "acknowledgment-sender"),
	}
}

// SendOrderAcknowledgment matches order.SendOrderAcknowledgment.
// The message is keyed by email address. Failures are logged and reported as order.NotSent.
func (s *AcknowledgmentSender) SendOrderAcknowledgment(ctx context.Context, ack order.OrderAcknowledgment) order.SendResult {
	email := ack.EmailAddress().String()
	value, err := json.Marshal(contracts.Acknowledgment{
		EmailAddress: email,
		Letter:       string(ack.Letter()),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "encode acknowledgment", "error", err)
		return order.NotSent
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(email),
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "acknowledgment not sent", "error", err)
		return order.NotSent
	}

	return order.Sent
}

// Close closes the underlying writer.
func (s *AcknowledgmentSender) Close() error {
	return s.writer.Close()
}
