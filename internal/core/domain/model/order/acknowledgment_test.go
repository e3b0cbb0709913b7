package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/model/order/ordertest"
	"ordertaking/internal/pkg/errs"
)

func TestNewAcknowledger(t *testing.T) {
	_, err := order.NewAcknowledger(nil, ordertest.SendReturns(order.Sent))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewAcknowledger(ordertest.RenderLetter, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.Equal(t, order.ErrAcknowledgerIsNotConstructed, order.Acknowledger{}.Validate())
}

func TestAcknowledger_Acknowledge(t *testing.T) {
	ctx := context.Background()
	priced := ordertest.PricedOrder(t, ordertest.UnvalidatedOrder(), map[string]string{"W1234": "2.50"})

	t.Run("sent yields an event", func(t *testing.T) {
		var got order.OrderAcknowledgment
		send := func(_ context.Context, a order.OrderAcknowledgment) order.SendResult {
			got = a
			return order.Sent
		}
		a, err := order.NewAcknowledger(ordertest.RenderLetter, send)
		require.NoError(t, err)

		result := a.Acknowledge(ctx, priced)

		sent, ok := result.Get()
		require.True(t, ok)
		assert.Equal(t, priced.OrderID(), sent.OrderID())
		assert.Equal(t, "ada@example.com", sent.EmailAddress().String())
		assert.Equal(t, ordertest.Letter, got.Letter())
		assert.Equal(t, "ada@example.com", got.EmailAddress().String())
	})

	t.Run("not sent yields nothing", func(t *testing.T) {
		a, err := order.NewAcknowledger(ordertest.RenderLetter, ordertest.SendReturns(order.NotSent))
		require.NoError(t, err)

		assert.True(t, a.Acknowledge(ctx, priced).IsNone())
	})

	t.Run("unknown result yields nothing", func(t *testing.T) {
		a, err := order.NewAcknowledger(ordertest.RenderLetter, ordertest.SendReturns(order.SendResult(42)))
		require.NoError(t, err)

		assert.True(t, a.Acknowledge(ctx, priced).IsNone())
	})

	t.Run("letter is rendered from the priced order", func(t *testing.T) {
		var rendered order.PricedOrder
		render := func(p order.PricedOrder) order.HTMLString {
			rendered = p
			return "<p>" + order.HTMLString(p.OrderID().String()) + "</p>"
		}
		var letter order.HTMLString
		send := func(_ context.Context, a order.OrderAcknowledgment) order.SendResult {
			letter = a.Letter()
			return order.NotSent
		}
		a, err := order.NewAcknowledger(render, send)
		require.NoError(t, err)

		a.Acknowledge(ctx, priced)

		assert.Equal(t, priced.OrderID(), rendered.OrderID())
		assert.Equal(t, order.HTMLString("<p>order-1</p>"), letter)
	})

	t.Run("unconstructed acknowledger yields nothing", func(t *testing.T) {
		assert.True(t, order.Acknowledger{}.Acknowledge(ctx, priced).IsNone())
	})
}
