package guard_test

import (
	"errors"
	"testing"

	"ordertaking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows a value whose zero value is a legal
// amount, so only the guard can tell a constructed zero from an uninitialized one.
func TestConstructorGuardUsageExample(t *testing.T) {
	errAmountNotConstructed := errors.New("Amount must be created via NewAmount")

	type Amount struct {
		cents int
		guard guard.ConstructorGuard
	}

	newAmount := func(cents int) (Amount, error) {
		if cents < 0 {
			return Amount{}, errors.New("amount cannot be negative")
		}
		return Amount{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	validateAmount := func(a Amount) error {
		return a.guard.Validate(errAmountNotConstructed)
	}

	t.Run("constructed_zero_is_valid", func(t *testing.T) {
		amount, err := newAmount(0)

		require.NoError(t, err)
		require.NoError(t, validateAmount(amount))
		assert.Equal(t, 0, amount.cents)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var amount Amount

		assert.Equal(t, errAmountNotConstructed, validateAmount(amount))
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newAmount(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")
	})
}
