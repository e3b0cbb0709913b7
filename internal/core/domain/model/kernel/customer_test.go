package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/option"
)

func mustString50(t *testing.T, raw string) kernel.String50 {
	t.Helper()
	s, err := kernel.NewString50(raw)
	require.NoError(t, err)
	return s
}

func TestNewPersonalName(t *testing.T) {
	name, err := kernel.NewPersonalName(mustString50(t, "Ada"), mustString50(t, "Lovelace"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", name.FirstName().String())
	assert.Equal(t, "Lovelace", name.LastName().String())
	assert.Equal(t, "Ada Lovelace", name.String())
	assert.NoError(t, name.Validate())

	_, err = kernel.NewPersonalName(kernel.String50{}, mustString50(t, "Lovelace"))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCustomerInfo(t *testing.T) {
	name, err := kernel.NewPersonalName(mustString50(t, "Ada"), mustString50(t, "Lovelace"))
	require.NoError(t, err)
	email, err := kernel.NewEmailAddress("ada@example.com")
	require.NoError(t, err)

	info, err := kernel.NewCustomerInfo(name, email)
	require.NoError(t, err)
	assert.Equal(t, name, info.Name())
	assert.Equal(t, email, info.EmailAddress())

	_, err = kernel.NewCustomerInfo(kernel.PersonalName{}, email)
	assert.ErrorIs(t, err, kernel.ErrPersonalNameIsNotConstructed)

	assert.Equal(t, kernel.ErrCustomerInfoIsNotConstructed, kernel.CustomerInfo{}.Validate())
}

func TestNewAddress(t *testing.T) {
	zip, err := kernel.NewZipCode("12345")
	require.NoError(t, err)

	t.Run("without optional lines", func(t *testing.T) {
		a, err := kernel.NewAddress(mustString50(t, "1 Main St"), kernel.AddressLines{}, mustString50(t, "Springfield"), zip)
		require.NoError(t, err)
		assert.Equal(t, "1 Main St", a.AddressLine1().String())
		assert.True(t, a.AddressLine2().IsNone())
		assert.True(t, a.AddressLine3().IsNone())
		assert.True(t, a.AddressLine4().IsNone())
		assert.Equal(t, "Springfield", a.City().String())
		assert.Equal(t, zip, a.ZipCode())
	})

	t.Run("with optional lines", func(t *testing.T) {
		lines := kernel.AddressLines{
			Line2: option.Some(mustString50(t, "Apt 4")),
			Line4: option.Some(mustString50(t, "c/o Jones")),
		}
		a, err := kernel.NewAddress(mustString50(t, "1 Main St"), lines, mustString50(t, "Springfield"), zip)
		require.NoError(t, err)

		line2, ok := a.AddressLine2().Get()
		require.True(t, ok)
		assert.Equal(t, "Apt 4", line2.String())
		assert.True(t, a.AddressLine3().IsNone())
		assert.True(t, a.AddressLine4().IsSome())
	})

	t.Run("present but unconstructed optional line", func(t *testing.T) {
		lines := kernel.AddressLines{Line3: option.Some(kernel.String50{})}
		_, err := kernel.NewAddress(mustString50(t, "1 Main St"), lines, mustString50(t, "Springfield"), zip)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing parts are all reported", func(t *testing.T) {
		a, err := kernel.NewAddress(kernel.String50{}, kernel.AddressLines{}, kernel.String50{}, kernel.ZipCode{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrString50IsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrZipCodeIsNotConstructed)
		assert.Zero(t, a)
	})

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, kernel.Address{}.Validate())
	})
}
