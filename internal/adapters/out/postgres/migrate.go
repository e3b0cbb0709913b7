package postgres

import (
	"gorm.io/gorm"

	"ordertaking/internal/adapters/out/postgres/outboxrepo"
	"ordertaking/internal/adapters/out/postgres/placedorderrepo"
	"ordertaking/internal/adapters/out/postgres/productrepo"
)

// Models lists every table of the service in creation order.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&placedorderrepo.PlacedOrderDTO{},
		&placedorderrepo.PlacedOrderLineDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
