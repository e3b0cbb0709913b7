package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is a catalog row as stored. Its code and price are not validated.
type Product struct {
	Code      string
	UnitPrice decimal.Decimal
}

// ProductRepository reads the product catalog.
type ProductRepository interface {
	// GetAll returns every product in the catalog.
	GetAll(ctx context.Context) ([]Product, error)
}
