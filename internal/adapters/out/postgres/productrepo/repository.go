package productrepo

import (
	"context"

	"gorm.io/gorm"

	"ordertaking/internal/core/ports"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetAll retrieves every product ordered by code.
// Codes and prices are returned as stored; the caller decides which are valid.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]ports.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]ports.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toProduct(dto))
	}

	return products, nil
}
