// Package placedorderrepo stores placed orders and their lines.
// It converts priced orders to flat relational rows; the stored order is
// read back by the placed order query, not by this package.
package placedorderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/option"
)

const (
	unitQuantityKind     = "unit"
	kilogramQuantityKind = "kilogram"
)

// PlacedOrderDTO is the placed_orders row.
type PlacedOrderDTO struct {
	OrderID         string               `gorm:"column:order_id;size:50;primaryKey"`
	FirstName       string               `gorm:"size:50;not null"`
	LastName        string               `gorm:"size:50;not null"`
	EmailAddress    string               `gorm:"not null"`
	ShippingAddress AddressDTO           `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  AddressDTO           `gorm:"embedded;embeddedPrefix:billing_"`
	AmountToBill    decimal.Decimal      `gorm:"type:numeric;not null"`
	PlacedAt        time.Time            `gorm:"not null;index"`
	Lines           []PlacedOrderLineDTO `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (PlacedOrderDTO) TableName() string {
	return "placed_orders"
}

// AddressDTO is embedded twice in placed_orders, once per address role.
type AddressDTO struct {
	AddressLine1 string  `gorm:"column:address_line1;size:50;not null"`
	AddressLine2 *string `gorm:"column:address_line2;size:50"`
	AddressLine3 *string `gorm:"column:address_line3;size:50"`
	AddressLine4 *string `gorm:"column:address_line4;size:50"`
	City         string  `gorm:"column:city;size:50;not null"`
	ZipCode      string  `gorm:"column:zip_code;size:5;not null"`
}

// PlacedOrderLineDTO is the placed_order_lines row. Position keeps the line order of the request.
type PlacedOrderLineDTO struct {
	OrderID      string          `gorm:"column:order_id;size:50;primaryKey"`
	Position     int             `gorm:"primaryKey;autoIncrement:false"`
	OrderLineID  string          `gorm:"size:50;not null"`
	ProductCode  string          `gorm:"size:5;not null"`
	QuantityKind string          `gorm:"size:10;not null"`
	Quantity     decimal.Decimal `gorm:"type:numeric;not null"`
	LinePrice    decimal.Decimal `gorm:"type:numeric;not null"`
}

// TableName overrides GORM's default naming convention.
func (PlacedOrderLineDTO) TableName() string {
	return "placed_order_lines"
}

func fromDomain(placed order.PricedOrder, placedAt time.Time) PlacedOrderDTO {
	name := placed.CustomerInfo().Name()
	priced := placed.Lines()

	lines := make([]PlacedOrderLineDTO, 0, len(priced))
	for i, line := range priced {
		lines = append(lines, PlacedOrderLineDTO{
			OrderID:      placed.OrderID().String(),
			Position:     i,
			OrderLineID:  line.OrderLineID().String(),
			ProductCode:  line.ProductCode().String(),
			QuantityKind: quantityKind(line.Quantity()),
			Quantity:     line.Quantity().Value(),
			LinePrice:    line.LinePrice().Value(),
		})
	}

	return PlacedOrderDTO{
		OrderID:         placed.OrderID().String(),
		FirstName:       name.FirstName().String(),
		LastName:        name.LastName().String(),
		EmailAddress:    placed.CustomerInfo().EmailAddress().String(),
		ShippingAddress: addressFromDomain(placed.ShippingAddress()),
		BillingAddress:  addressFromDomain(placed.BillingAddress()),
		AmountToBill:    placed.AmountToBill().Value(),
		PlacedAt:        placedAt.UTC(),
		Lines:           lines,
	}
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		AddressLine1: address.AddressLine1().String(),
		AddressLine2: optionalLine(address.AddressLine2()),
		AddressLine3: optionalLine(address.AddressLine3()),
		AddressLine4: optionalLine(address.AddressLine4()),
		City:         address.City().String(),
		ZipCode:      address.ZipCode().String(),
	}
}

func optionalLine(line option.Option[kernel.String50]) *string {
	v, ok := line.Get()
	if !ok {
		return nil
	}
	s := v.String()
	return &s
}

func quantityKind(quantity kernel.OrderQuantity) string {
	if _, ok := quantity.(kernel.KilogramQuantity); ok {
		return kilogramQuantityKind
	}
	return unitQuantityKind
}
