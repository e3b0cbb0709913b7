// Package queries contains read operations over placed orders.
// Queries read the tables directly with SQL and return flat response
// structs; they never load domain objects.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrGetPlacedOrderQueryIsNotConstructed = errors.New(
		"GetPlacedOrderQuery must be created via NewGetPlacedOrderQuery constructor",
	)
)

// GetPlacedOrderQuery retrieves one placed order with its lines.
//
// Example:
//
//	query, err := NewGetPlacedOrderQuery("order-1")
//	if err != nil {
//	    return err
//	}
//
//	placed, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetPlacedOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetPlacedOrderQuery creates a query for the order with the given id.
// The id must be a valid order id.
func NewGetPlacedOrderQuery(rawOrderID string) (GetPlacedOrderQuery, error) {
	orderID, err := kernel.NewOrderID(rawOrderID)
	if err != nil {
		return GetPlacedOrderQuery{}, err
	}

	return GetPlacedOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPlacedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetPlacedOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetPlacedOrderQueryResponse is a placed order as stored. Absent address lines are empty.
type GetPlacedOrderQueryResponse struct {
	OrderID         string
	FirstName       string
	LastName        string
	EmailAddress    string
	ShippingAddress PlacedOrderAddress
	BillingAddress  PlacedOrderAddress
	Lines           []PlacedOrderLine
	AmountToBill    decimal.Decimal
	PlacedAt        time.Time
}

type PlacedOrderAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

type PlacedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    decimal.Decimal
	LinePrice   decimal.Decimal
}
