package kernel

import "ordertaking/internal/pkg/errs"

const (
	// OrderIDMaxLength is the maximum number of characters in an OrderID.
	OrderIDMaxLength = 50
	// OrderLineIDMaxLength is the maximum number of characters in an OrderLineID.
	OrderLineIDMaxLength = 50
)

var (
	// ErrOrderIDIsNotConstructed is returned when validating a zero value OrderID.
	ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be created via NewOrderID")
	// ErrOrderLineIDIsNotConstructed is returned when validating a zero value OrderLineID.
	ErrOrderLineIDIsNotConstructed = errs.NewValueIsRequiredError(
		"order line id must be created via NewOrderLineID")
)

// OrderID identifies an order. It is a non-empty string of at most OrderIDMaxLength characters.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from raw.
func NewOrderID(raw string) (OrderID, error) {
	if err := checkBoundedString("orderId", raw, OrderIDMaxLength); err != nil {
		return OrderID{}, err
	}
	return OrderID{value: raw}, nil
}

// Validate reports whether id was built by NewOrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

func (id OrderID) String() string {
	return id.value
}

// OrderLineID identifies a line within an order.
type OrderLineID struct {
	value string
}

// NewOrderLineID creates an OrderLineID from raw.
func NewOrderLineID(raw string) (OrderLineID, error) {
	if err := checkBoundedString("orderLineId", raw, OrderLineIDMaxLength); err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{value: raw}, nil
}

// Validate reports whether id was built by NewOrderLineID.
func (id OrderLineID) Validate() error {
	if id.value == "" {
		return ErrOrderLineIDIsNotConstructed
	}
	return nil
}

func (id OrderLineID) String() string {
	return id.value
}
