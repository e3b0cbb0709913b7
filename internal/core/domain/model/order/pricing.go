package order

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// CatalogServiceName names the price lookup in RemoteServiceError.
const CatalogServiceName = "product-catalog"

// ErrPricerIsNotConstructed is returned by a zero value Pricer.
var ErrPricerIsNotConstructed = errs.NewValueIsRequiredError("pricer must be created via NewPricer")

// Pricer turns a ValidatedOrder into a PricedOrder.
//
// Each line is priced as quantity times unit price and must fit in a Price;
// the total must fit in a BillingAmount. Amounts out of range are reported as
// a *PricingError and never clamped.
type Pricer struct {
	getProductPrice GetProductPrice
	guard           guard.ConstructorGuard
}

// NewPricer creates a Pricer bound to its price lookup.
func NewPricer(getProductPrice GetProductPrice) (Pricer, error) {
	if getProductPrice == nil {
		return Pricer{}, errs.NewValueIsRequiredError("getProductPrice")
	}
	return Pricer{
		getProductPrice: getProductPrice,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Price prices every line of validated and totals the order.
func (p Pricer) Price(ctx context.Context, validated ValidatedOrder) (PricedOrder, error) {
	if err := errors.Join(p.guard.Validate(ErrPricerIsNotConstructed), validated.Validate()); err != nil {
		return PricedOrder{}, err
	}

	lines := make([]PricedOrderLine, 0, len(validated.lines))
	linePrices := make([]kernel.Price, 0, len(validated.lines))
	for i, line := range validated.lines {
		priced, err := p.toPricedOrderLine(ctx, i, line)
		if err != nil {
			return PricedOrder{}, err
		}
		lines = append(lines, priced)
		linePrices = append(linePrices, priced.linePrice)
	}

	amountToBill, err := kernel.SumPrices(linePrices)
	if err != nil {
		return PricedOrder{}, NewPricingError("amountToBill", nil, err)
	}

	return PricedOrder{
		orderID:         validated.orderID,
		customerInfo:    validated.customerInfo,
		shippingAddress: validated.shippingAddress,
		billingAddress:  validated.billingAddress,
		amountToBill:    amountToBill,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (p Pricer) toPricedOrderLine(ctx context.Context, index int, line ValidatedOrderLine) (PricedOrderLine, error) {
	field := fmt.Sprintf("lines[%d]", index)
	lineID := line.orderLineID.String()
	code := line.productCode.String()

	unitPrice, err := p.getProductPrice(ctx, line.productCode)
	if err != nil {
		return PricedOrderLine{}, priceLookupError(lineID, field+".productCode", code, err)
	}
	if err := unitPrice.Validate(); err != nil {
		return PricedOrderLine{}, NewLinePricingError(lineID, field+".unitPrice", code, err)
	}

	linePrice, err := unitPrice.Multiply(line.quantity)
	if err != nil {
		return PricedOrderLine{}, NewLinePricingError(lineID, field+".linePrice", code, err)
	}

	return PricedOrderLine{
		orderLineID: line.orderLineID,
		productCode: line.productCode,
		quantity:    line.quantity,
		linePrice:   linePrice,
	}, nil
}

func priceLookupError(lineID, field, code string, err error) error {
	if errors.Is(err, ErrPriceNotFound) {
		return NewLinePricingError(lineID, field, code, err)
	}

	var remoteErr *RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}
	return NewRemoteServiceError(CatalogServiceName, err)
}
