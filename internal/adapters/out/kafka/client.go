// Package kafka puts acknowledgments and order events on Kafka topics.
package kafka

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Headers set on every event message.
const (
	EventTypeHeader = "event-type"
	EventIDHeader   = "event-id"
)

// messageWriter is the part of *kafka.Writer used by this package.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Client creates writers for a broker list.
type Client struct {
	Brokers []string
}

// NewClient parses a comma separated broker list; blanks are ignored.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether any broker is configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter returns a writer for topic. Messages with the same key land on the same partition.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
