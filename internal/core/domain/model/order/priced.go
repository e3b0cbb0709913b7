package order

import (
	"slices"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrPricedOrderIsNotConstructed is returned when a PricedOrder did not come from a Pricer.
var ErrPricedOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"priced order must be produced by Pricer.Price")

// PricedOrder is a validated order with a price on every line and a total to bill.
// It can only be produced by Pricer.Price.
//
// AmountToBill always equals the exact sum of the line prices.
type PricedOrder struct {
	orderID         kernel.OrderID
	customerInfo    kernel.CustomerInfo
	shippingAddress kernel.Address
	billingAddress  kernel.Address
	amountToBill    kernel.BillingAmount
	lines           []PricedOrderLine
	guard           guard.ConstructorGuard
}

// PricedOrderLine is a validated line with its computed price.
type PricedOrderLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
	linePrice   kernel.Price
}

// Validate reports whether o was produced by a Pricer.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

func (o PricedOrder) OrderID() kernel.OrderID {
	return o.orderID
}

func (o PricedOrder) CustomerInfo() kernel.CustomerInfo {
	return o.customerInfo
}

func (o PricedOrder) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

func (o PricedOrder) BillingAddress() kernel.Address {
	return o.billingAddress
}

func (o PricedOrder) AmountToBill() kernel.BillingAmount {
	return o.amountToBill
}

// Lines returns a copy of the priced lines.
func (o PricedOrder) Lines() []PricedOrderLine {
	return slices.Clone(o.lines)
}

func (l PricedOrderLine) OrderLineID() kernel.OrderLineID {
	return l.orderLineID
}

func (l PricedOrderLine) ProductCode() kernel.ProductCode {
	return l.productCode
}

func (l PricedOrderLine) Quantity() kernel.OrderQuantity {
	return l.quantity
}

func (l PricedOrderLine) LinePrice() kernel.Price {
	return l.linePrice
}
