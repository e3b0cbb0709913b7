package commands

import (
	"errors"

	"ordertaking/internal/pkg/guard"
)

var (
	ErrPublishOrderEventsCommandIsNotConstructed = errors.New(
		"PublishOrderEventsCommand must be created via NewPublishOrderEventsCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// PublishOrderEventsCommand publishes up to BatchSize pending outbox messages.
type PublishOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewPublishOrderEventsCommand creates the command. batchSize must be positive.
func NewPublishOrderEventsCommand(batchSize int) (PublishOrderEventsCommand, error) {
	cmd := PublishOrderEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return PublishOrderEventsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOrderEventsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages to publish.
func (c PublishOrderEventsCommand) BatchSize() int {
	return c.batchSize
}

func (c *PublishOrderEventsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}

	c.batchSize = batchSize
	return nil
}
