// Package ordertest provides fixtures and collaborator fakes for tests that
// need orders in a given stage.
package ordertest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// Letter is the letter rendered by RenderLetter.
const Letter order.HTMLString = "<p>thank you</p>"

// Address returns a valid unvalidated address.
func Address() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "1 Main Street",
		City:         "Springfield",
		ZipCode:      "12345",
	}
}

// UnvalidatedOrder returns a valid order with one widget line: L1, W1234, 10 units.
func UnvalidatedOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "order-1",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		},
		ShippingAddress: Address(),
		BillingAddress:  Address(),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "L1", ProductCode: "W1234", Quantity: 10},
		},
	}
}

// AddressExists confirms every address unchanged.
func AddressExists(_ context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	return order.CheckedAddress(address), nil
}

// AddressCheckFails returns a CheckAddressExists that always fails with err.
func AddressCheckFails(err error) order.CheckAddressExists {
	return func(context.Context, order.UnvalidatedAddress) (order.CheckedAddress, error) {
		return order.CheckedAddress{}, err
	}
}

// ProductsExist returns a CheckProductCodeExists that knows exactly codes.
func ProductsExist(codes ...string) order.CheckProductCodeExists {
	known := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		known[c] = struct{}{}
	}
	return func(code kernel.ProductCode) bool {
		_, ok := known[code.String()]
		return ok
	}
}

// Prices returns a GetProductPrice backed by a code to price map.
// Unknown codes fail with order.ErrPriceNotFound.
func Prices(t testing.TB, prices map[string]string) order.GetProductPrice {
	t.Helper()
	table := make(map[string]kernel.Price, len(prices))
	for code, raw := range prices {
		p, err := kernel.NewPrice(decimal.RequireFromString(raw))
		require.NoError(t, err)
		table[code] = p
	}
	return func(_ context.Context, code kernel.ProductCode) (kernel.Price, error) {
		p, ok := table[code.String()]
		if !ok {
			return kernel.Price{}, order.ErrPriceNotFound
		}
		return p, nil
	}
}

// RenderLetter always renders Letter.
func RenderLetter(order.PricedOrder) order.HTMLString {
	return Letter
}

// SendReturns returns a SendOrderAcknowledgment that always reports result.
func SendReturns(result order.SendResult) order.SendOrderAcknowledgment {
	return func(context.Context, order.OrderAcknowledgment) order.SendResult {
		return result
	}
}

// ValidatedOrder validates unvalidated against a catalog that knows every code in it.
func ValidatedOrder(t testing.TB, unvalidated order.UnvalidatedOrder) order.ValidatedOrder {
	t.Helper()
	codes := make([]string, 0, len(unvalidated.Lines))
	for _, l := range unvalidated.Lines {
		codes = append(codes, l.ProductCode)
	}

	validator, err := order.NewValidator(ProductsExist(codes...), AddressExists)
	require.NoError(t, err)

	validated, err := validator.Validate(context.Background(), unvalidated)
	require.NoError(t, err)
	return validated
}

// PricedOrder validates and prices unvalidated with the given unit prices.
func PricedOrder(t testing.TB, unvalidated order.UnvalidatedOrder, prices map[string]string) order.PricedOrder {
	t.Helper()
	validated := ValidatedOrder(t, unvalidated)

	pricer, err := order.NewPricer(Prices(t, prices))
	require.NoError(t, err)

	priced, err := pricer.Price(context.Background(), validated)
	require.NoError(t, err)
	return priced
}
