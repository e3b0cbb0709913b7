package kernel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
)

func mustPrice(t *testing.T, value string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(value))
	require.NoError(t, err)
	return p
}

func TestNewPrice(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "-0.01", wantErr: true},
		{value: "0"},
		{value: "2.50"},
		{value: "1000"},
		{value: "1000.01", wantErr: true},
	}

	for _, tt := range tests {
		p, err := kernel.NewPrice(decimal.RequireFromString(tt.value))
		if tt.wantErr {
			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr, "value %s", tt.value)
			assert.Equal(t, "price", rangeErr.ParamName)
			continue
		}
		require.NoError(t, err, "value %s", tt.value)
		assert.NoError(t, p.Validate())
		assert.True(t, decimal.RequireFromString(tt.value).Equal(p.Value()))
	}
}

func TestPrice_Multiply(t *testing.T) {
	t.Run("units", func(t *testing.T) {
		q, err := kernel.NewUnitQuantity(10)
		require.NoError(t, err)

		line, err := mustPrice(t, "2.50").Multiply(q)
		require.NoError(t, err)
		assert.True(t, line.Equal(mustPrice(t, "25.00")))
	})

	t.Run("kilograms", func(t *testing.T) {
		q, err := kernel.NewKilogramQuantity(decimal.RequireFromString("0.5"))
		require.NoError(t, err)

		line, err := mustPrice(t, "3.30").Multiply(q)
		require.NoError(t, err)
		assert.True(t, line.Equal(mustPrice(t, "1.65")))
	})

	t.Run("result above max is reported", func(t *testing.T) {
		q, err := kernel.NewUnitQuantity(2)
		require.NoError(t, err)

		_, err = mustPrice(t, "600").Multiply(q)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewBillingAmount(t *testing.T) {
	_, err := kernel.NewBillingAmount(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.NewBillingAmount(decimal.RequireFromString("10000.01"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	zero, err := kernel.NewBillingAmount(decimal.Zero)
	require.NoError(t, err)
	assert.False(t, zero.IsPositive())

	cent, err := kernel.NewBillingAmount(decimal.RequireFromString("0.01"))
	require.NoError(t, err)
	assert.True(t, cent.IsPositive())

	top, err := kernel.NewBillingAmount(decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.NoError(t, top.Validate())
}

func TestSumPrices(t *testing.T) {
	t.Run("empty totals zero", func(t *testing.T) {
		total, err := kernel.SumPrices(nil)
		require.NoError(t, err)
		assert.True(t, total.Value().IsZero())
		assert.NoError(t, total.Validate())
	})

	t.Run("sum is exact", func(t *testing.T) {
		total, err := kernel.SumPrices([]kernel.Price{mustPrice(t, "0.1"), mustPrice(t, "0.2"), mustPrice(t, "0.3")})
		require.NoError(t, err)
		assert.Equal(t, "0.6", total.String())
	})

	t.Run("sum above max is reported", func(t *testing.T) {
		prices := make([]kernel.Price, 11)
		for i := range prices {
			prices[i] = mustPrice(t, "1000")
		}
		_, err := kernel.SumPrices(prices)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_ZeroValueIsNotConstructed(t *testing.T) {
	assert.Equal(t, kernel.ErrPriceIsNotConstructed, kernel.Price{}.Validate())
	assert.Equal(t, kernel.ErrBillingAmountIsNotConstructed, kernel.BillingAmount{}.Validate())
}
