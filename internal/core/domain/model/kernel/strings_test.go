package kernel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
)

func TestNewString50(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "single character", raw: "a"},
		{name: "exactly max length", raw: strings.Repeat("a", kernel.String50MaxLength)},
		{name: "max length in multi-byte runes", raw: strings.Repeat("é", kernel.String50MaxLength)},
		{name: "empty", raw: "", wantErr: errs.ErrValueIsRequired},
		{name: "one over max length", raw: strings.Repeat("a", kernel.String50MaxLength+1), wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := kernel.NewString50(tt.raw)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, s.String())
			assert.NoError(t, s.Validate())
		})
	}
}

func TestNewOptionalString50(t *testing.T) {
	t.Run("empty is absent", func(t *testing.T) {
		o, err := kernel.NewOptionalString50("")
		require.NoError(t, err)
		assert.True(t, o.IsNone())
	})

	t.Run("value is present", func(t *testing.T) {
		o, err := kernel.NewOptionalString50("Suite 5")
		require.NoError(t, err)
		v, ok := o.Get()
		require.True(t, ok)
		assert.Equal(t, "Suite 5", v.String())
	})

	t.Run("too long is an error", func(t *testing.T) {
		o, err := kernel.NewOptionalString50(strings.Repeat("x", 51))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, o.IsNone())
	})
}

func TestNewEmailAddress(t *testing.T) {
	valid := []string{"ada@example.com", "a.b+c@sub.example.org"}
	for _, raw := range valid {
		t.Run("valid "+raw, func(t *testing.T) {
			e, err := kernel.NewEmailAddress(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, e.String())
		})
	}

	invalid := []string{"example.com", "ada@example", "ada @example.com", "ada@@example.com"}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := kernel.NewEmailAddress(raw)
			require.ErrorIs(t, err, errs.ErrValueDoesNotMatchPattern)

			var patternErr *errs.ValueDoesNotMatchPatternError
			require.ErrorAs(t, err, &patternErr)
			assert.Equal(t, "emailAddress", patternErr.ParamName)
			assert.Equal(t, raw, patternErr.Value)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewZipCode(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "12345"},
		{raw: "00000"},
		{raw: "1234", wantErr: true},
		{raw: "123456", wantErr: true},
		{raw: "12a45", wantErr: true},
		{raw: " 12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			z, err := kernel.NewZipCode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueDoesNotMatchPattern)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, z.String())
		})
	}
}

func TestStringTypes_ZeroValueIsNotConstructed(t *testing.T) {
	assert.Equal(t, kernel.ErrString50IsNotConstructed, kernel.String50{}.Validate())
	assert.Equal(t, kernel.ErrEmailAddressIsNotConstructed, kernel.EmailAddress{}.Validate())
	assert.Equal(t, kernel.ErrZipCodeIsNotConstructed, kernel.ZipCode{}.Validate())
	assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, kernel.OrderID{}.Validate())
	assert.Equal(t, kernel.ErrOrderLineIDIsNotConstructed, kernel.OrderLineID{}.Validate())
	assert.Equal(t, kernel.ErrWidgetCodeIsNotConstructed, kernel.WidgetCode{}.Validate())
	assert.Equal(t, kernel.ErrGizmoCodeIsNotConstructed, kernel.GizmoCode{}.Validate())
}

// The string form of a valid value must always be accepted by its own constructor.
func TestStringTypes_StringFormRevalidates(t *testing.T) {
	name, err := kernel.NewString50("Ada")
	require.NoError(t, err)
	_, err = kernel.NewString50(name.String())
	assert.NoError(t, err)

	email, err := kernel.NewEmailAddress("ada@example.com")
	require.NoError(t, err)
	_, err = kernel.NewEmailAddress(email.String())
	assert.NoError(t, err)

	zip, err := kernel.NewZipCode("90210")
	require.NoError(t, err)
	_, err = kernel.NewZipCode(zip.String())
	assert.NoError(t, err)

	orderID, err := kernel.NewOrderID("order-1")
	require.NoError(t, err)
	_, err = kernel.NewOrderID(orderID.String())
	assert.NoError(t, err)

	lineID, err := kernel.NewOrderLineID("L1")
	require.NoError(t, err)
	_, err = kernel.NewOrderLineID(lineID.String())
	assert.NoError(t, err)
}

func TestNewOrderID(t *testing.T) {
	_, err := kernel.NewOrderID("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.NewOrderID(strings.Repeat("1", kernel.OrderIDMaxLength+1))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	id, err := kernel.NewOrderID(strings.Repeat("1", kernel.OrderIDMaxLength))
	require.NoError(t, err)
	assert.NoError(t, id.Validate())
}

func TestNewOrderLineID(t *testing.T) {
	_, err := kernel.NewOrderLineID("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	id, err := kernel.NewOrderLineID("L1")
	require.NoError(t, err)
	assert.Equal(t, "L1", id.String())
}
