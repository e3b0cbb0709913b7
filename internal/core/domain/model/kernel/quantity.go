package kernel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

const (
	// UnitQuantityMin is the smallest number of units on an order line.
	UnitQuantityMin = 1
	// UnitQuantityMax is the largest number of units on an order line.
	UnitQuantityMax = 1000
)

var (
	// KilogramQuantityMin is the lightest weight on an order line.
	KilogramQuantityMin = decimal.RequireFromString("0.05")
	// KilogramQuantityMax is the heaviest weight on an order line.
	KilogramQuantityMax = decimal.RequireFromString("100.00")
)

var (
	// ErrUnitQuantityIsNotConstructed is returned when validating a zero value UnitQuantity.
	ErrUnitQuantityIsNotConstructed = errs.NewValueIsRequiredError(
		"unit quantity must be created via NewUnitQuantity")
	// ErrKilogramQuantityIsNotConstructed is returned when validating a zero value KilogramQuantity.
	ErrKilogramQuantityIsNotConstructed = errs.NewValueIsRequiredError(
		"kilogram quantity must be created via NewKilogramQuantity")
)

// OrderQuantity is the amount ordered on a line.
//
// OrderQuantity is a closed union of UnitQuantity and KilogramQuantity. Which
// variant a line carries is decided by its ProductCode, never stored on its
// own: a widget line always has a UnitQuantity and a gizmo line always has a
// KilogramQuantity.
type OrderQuantity interface {
	fmt.Stringer
	Validate() error
	// Value returns the quantity as an exact decimal for price calculations.
	Value() decimal.Decimal
	isOrderQuantity()
}

// NewOrderQuantity converts a raw wire quantity into the OrderQuantity variant
// selected by code.
//
// Parameters:
//   - code: an already validated product code; it picks the unit of measure
//   - raw: the quantity as received from the caller
//
// Returns:
//   - UnitQuantity for a WidgetCode; raw must be a whole number in [UnitQuantityMin..UnitQuantityMax]
//   - KilogramQuantity for a GizmoCode; raw must lie in [KilogramQuantityMin..KilogramQuantityMax]
//   - errs.ValueIsInvalidError for NaN, infinities and fractional widget quantities
//
// Example:
//
//	widget, _ := kernel.NewWidgetCode("W1234")
//	_, err := kernel.NewOrderQuantity(widget, 2.5) // err: not a whole number
//
//	gizmo, _ := kernel.NewGizmoCode("G123")
//	q, _ := kernel.NewOrderQuantity(gizmo, 2.5) // q is a KilogramQuantity of 2.5
func NewOrderQuantity(code ProductCode, raw float64) (OrderQuantity, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%v is not a finite number", raw))
	}

	switch code.(type) {
	case WidgetCode:
		if raw != math.Trunc(raw) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%v is not a whole number of units", raw),
			)
		}
		// checked before the int conversion so huge values cannot wrap around
		if raw < UnitQuantityMin || raw > UnitQuantityMax {
			return nil, errs.NewValueIsOutOfRangeError("unitQuantity", raw, UnitQuantityMin, UnitQuantityMax)
		}
		q, err := NewUnitQuantity(int(raw))
		if err != nil {
			return nil, err
		}
		return q, nil
	case GizmoCode:
		q, err := NewKilogramQuantity(decimal.NewFromFloat(raw))
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		return nil, errs.NewValueIsRequiredError("productCode")
	}
}

// UnitQuantity is a whole number of units, from UnitQuantityMin to UnitQuantityMax.
type UnitQuantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewUnitQuantity creates a UnitQuantity.
func NewUnitQuantity(value int) (UnitQuantity, error) {
	if value < UnitQuantityMin || value > UnitQuantityMax {
		return UnitQuantity{}, errs.NewValueIsOutOfRangeError("unitQuantity", value, UnitQuantityMin, UnitQuantityMax)
	}
	return UnitQuantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether q was built by NewUnitQuantity.
func (q UnitQuantity) Validate() error {
	return q.guard.Validate(ErrUnitQuantityIsNotConstructed)
}

// Int returns the number of units.
func (q UnitQuantity) Int() int {
	return q.value
}

// Value returns the number of units as a decimal.
func (q UnitQuantity) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(q.value))
}

func (q UnitQuantity) String() string {
	return strconv.Itoa(q.value)
}

func (UnitQuantity) isOrderQuantity() {}

// KilogramQuantity is a weight in kilograms, from KilogramQuantityMin to KilogramQuantityMax.
type KilogramQuantity struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewKilogramQuantity creates a KilogramQuantity.
func NewKilogramQuantity(value decimal.Decimal) (KilogramQuantity, error) {
	q := KilogramQuantity{guard: guard.NewConstructorGuard()}
	if err := q.setValue(value); err != nil {
		return KilogramQuantity{}, err
	}
	return q, nil
}

// Validate reports whether q was built by NewKilogramQuantity.
func (q KilogramQuantity) Validate() error {
	return q.guard.Validate(ErrKilogramQuantityIsNotConstructed)
}

// Value returns the weight in kilograms.
func (q KilogramQuantity) Value() decimal.Decimal {
	return q.value
}

func (q KilogramQuantity) String() string {
	return q.value.String()
}

// Equal compares two weights by value, so 2.5 equals 2.50.
func (q KilogramQuantity) Equal(other KilogramQuantity) bool {
	return q.value.Equal(other.value)
}

func (KilogramQuantity) isOrderQuantity() {}

func (q *KilogramQuantity) setValue(value decimal.Decimal) error {
	if value.LessThan(KilogramQuantityMin) || value.GreaterThan(KilogramQuantityMax) {
		return errs.NewValueIsOutOfRangeError("kilogramQuantity", value, KilogramQuantityMin, KilogramQuantityMax)
	}
	q.value = value
	return nil
}
