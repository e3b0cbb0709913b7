// Package outboxrepo stores order events until they are published.
// Events are written in the same transaction as the placed order and read
// back by the outbox publisher job.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"

	"ordertaking/internal/core/ports"
)

// OutboxMessageDTO is the outbox_messages row. Payload holds the whole event envelope.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     string     `gorm:"size:50;not null;index"`
	EventType   string     `gorm:"size:50;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func toMessage(dto OutboxMessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         dto.ID,
		OrderID:    dto.OrderID,
		EventType:  dto.EventType,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}
}
