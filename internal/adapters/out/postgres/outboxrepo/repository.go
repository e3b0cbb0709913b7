package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordertaking/internal/adapters/contracts"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores one message per event. Events keep their order through
// increasing OccurredAt values, one microsecond apart.
func (r *GormOutboxRepository) Add(ctx context.Context, occurredAt time.Time, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for i, event := range events {
		at := occurredAt.UTC().Add(time.Duration(i) * time.Microsecond)
		id := uuid.New()
		envelope, err := contracts.NewEvent(id, event, at)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(envelope)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", envelope.Type, err)
		}

		dtos = append(dtos, OutboxMessageDTO{
			ID:         id,
			OrderID:    envelope.OrderID,
			EventType:  envelope.Type,
			Payload:    payload,
			OccurredAt: at,
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished returns up to limit pending messages, oldest first.
// Selected rows are locked with SKIP LOCKED so concurrent publishers take disjoint batches.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toMessage(dto))
	}

	return messages, nil
}

// MarkPublished sets the publication time of a pending message.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ? AND published_at IS NULL", id).
		Update("published_at", publishedAt.UTC())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}

	return nil
}
