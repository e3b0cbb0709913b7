package placedorderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// GormPlacedOrderRepository implements ports.PlacedOrderRepository using GORM.
// The db must be opened with gorm.Config.TranslateError so duplicate keys are recognised.
type GormPlacedOrderRepository struct {
	db *gorm.DB
}

// NewGormPlacedOrderRepository creates a new GORM placed order repository.
func NewGormPlacedOrderRepository(db *gorm.DB) *GormPlacedOrderRepository {
	return &GormPlacedOrderRepository{db: db}
}

// Add saves the order together with its lines.
func (r *GormPlacedOrderRepository) Add(ctx context.Context, placed order.PricedOrder, placedAt time.Time) error {
	if err := placed.Validate(); err != nil {
		return err
	}

	dto := fromDomain(placed, placedAt)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ports.ErrOrderAlreadyPlaced, dto.OrderID)
		}
		return err
	}

	return nil
}

// Exists reports whether placed_orders has a row for orderID.
func (r *GormPlacedOrderRepository) Exists(ctx context.Context, orderID kernel.OrderID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PlacedOrderDTO{}).
		Where("order_id = ?", orderID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
