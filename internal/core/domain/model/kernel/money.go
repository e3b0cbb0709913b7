package kernel

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	// PriceMin is the lowest allowed price.
	PriceMin = decimal.Zero
	// PriceMax is the highest allowed price, for a unit or a whole line.
	PriceMax = decimal.NewFromInt(1000)
	// BillingAmountMin is the lowest allowed amount to bill.
	BillingAmountMin = decimal.Zero
	// BillingAmountMax is the highest allowed amount to bill for one order.
	BillingAmountMax = decimal.NewFromInt(10000)
)

var (
	// ErrPriceIsNotConstructed is returned when validating a zero value Price.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")
	// ErrBillingAmountIsNotConstructed is returned when validating a zero value BillingAmount.
	ErrBillingAmountIsNotConstructed = errs.NewValueIsRequiredError(
		"billing amount must be created via NewBillingAmount")
)

// Price is a monetary amount between PriceMin and PriceMax inclusive.
// It is used both for catalog unit prices and for computed line prices.
//
// Price keeps the exact decimal it was built from; arithmetic on prices never
// goes through floating point.
//
// Example:
//
//	unit, _ := kernel.NewPrice(decimal.RequireFromString("2.50"))
//	line, err := unit.Multiply(quantity) // err if the result exceeds PriceMax
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice creates a Price.
// It returns errs.ValueIsOutOfRangeError when value is outside [PriceMin..PriceMax].
func NewPrice(value decimal.Decimal) (Price, error) {
	if value.LessThan(PriceMin) || value.GreaterThan(PriceMax) {
		return Price{}, errs.NewValueIsOutOfRangeError("price", value, PriceMin, PriceMax)
	}
	return Price{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether p was built by NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Value returns the amount.
func (p Price) Value() decimal.Decimal {
	return p.value
}

// Multiply returns the price of quantity items at p each.
// The product is re-validated, so a line above PriceMax is an error and is never clamped.
func (p Price) Multiply(quantity OrderQuantity) (Price, error) {
	return NewPrice(p.value.Mul(quantity.Value()))
}

// Equal compares two prices by value.
func (p Price) Equal(other Price) bool {
	return p.value.Equal(other.value)
}

func (p Price) String() string {
	return p.value.String()
}

// BillingAmount is the total to bill for an order, between BillingAmountMin and BillingAmountMax.
type BillingAmount struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewBillingAmount creates a BillingAmount.
func NewBillingAmount(value decimal.Decimal) (BillingAmount, error) {
	if value.LessThan(BillingAmountMin) || value.GreaterThan(BillingAmountMax) {
		return BillingAmount{}, errs.NewValueIsOutOfRangeError("billingAmount", value, BillingAmountMin, BillingAmountMax)
	}
	return BillingAmount{value: value, guard: guard.NewConstructorGuard()}, nil
}

// SumPrices totals prices into a BillingAmount. An empty list totals zero.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount(total)
}

// Validate reports whether a was built by NewBillingAmount.
func (a BillingAmount) Validate() error {
	return a.guard.Validate(ErrBillingAmountIsNotConstructed)
}

// Value returns the amount.
func (a BillingAmount) Value() decimal.Decimal {
	return a.value
}

// IsPositive reports whether there is anything to bill.
func (a BillingAmount) IsPositive() bool {
	return a.value.IsPositive()
}

// Equal compares two amounts by value.
func (a BillingAmount) Equal(other BillingAmount) bool {
	return a.value.Equal(other.value)
}

func (a BillingAmount) String() string {
	return a.value.String()
}
