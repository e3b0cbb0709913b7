// Package productrepo reads the product catalog.
package productrepo

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/ports"
)

// ProductDTO is the products row.
type ProductDTO struct {
	Code      string          `gorm:"size:5;primaryKey"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func toProduct(dto ProductDTO) ports.Product {
	return ports.Product{
		Code:      dto.Code,
		UnitPrice: dto.UnitPrice,
	}
}
