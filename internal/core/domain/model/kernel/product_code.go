package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"ordertaking/internal/pkg/errs"
)

var (
	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

var (
	// ErrWidgetCodeIsNotConstructed is returned when validating a zero value WidgetCode.
	ErrWidgetCodeIsNotConstructed = errs.NewValueIsRequiredError("widget code must be created via NewWidgetCode")
	// ErrGizmoCodeIsNotConstructed is returned when validating a zero value GizmoCode.
	ErrGizmoCodeIsNotConstructed = errs.NewValueIsRequiredError("gizmo code must be created via NewGizmoCode")
)

// ProductCode identifies a product in the catalog.
//
// ProductCode is a closed union: the only implementations are WidgetCode and
// GizmoCode. The variant decides how a line quantity is measured, see
// NewOrderQuantity. Callers discriminate with a type switch:
//
//	switch c := code.(type) {
//	case kernel.WidgetCode:
//	    // counted in units
//	case kernel.GizmoCode:
//	    // weighed in kilograms
//	}
type ProductCode interface {
	fmt.Stringer
	Validate() error
	isProductCode()
}

// NewProductCode parses raw into a WidgetCode (prefix "W") or a GizmoCode (prefix "G").
//
// Returns:
//   - errs.ValueIsRequiredError when raw is empty
//   - errs.ValueIsInvalidError when raw has neither prefix
//   - errs.ValueDoesNotMatchPatternError when the prefix matches but the digits do not
func NewProductCode(raw string) (ProductCode, error) {
	switch {
	case raw == "":
		return nil, errs.NewValueIsRequiredError("productCode")
	case strings.HasPrefix(raw, "W"):
		code, err := NewWidgetCode(raw)
		if err != nil {
			return nil, err
		}
		return code, nil
	case strings.HasPrefix(raw, "G"):
		code, err := NewGizmoCode(raw)
		if err != nil {
			return nil, err
		}
		return code, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"productCode",
			fmt.Errorf("%q must start with W (widget) or G (gizmo)", raw),
		)
	}
}

// WidgetCode is a product code of the form W followed by four digits.
type WidgetCode struct {
	value string
}

// NewWidgetCode creates a WidgetCode from raw.
func NewWidgetCode(raw string) (WidgetCode, error) {
	if err := checkPattern("widgetCode", raw, widgetCodePattern); err != nil {
		return WidgetCode{}, err
	}
	return WidgetCode{value: raw}, nil
}

// Validate reports whether c was built by NewWidgetCode.
func (c WidgetCode) Validate() error {
	if c.value == "" {
		return ErrWidgetCodeIsNotConstructed
	}
	return nil
}

func (c WidgetCode) String() string {
	return c.value
}

func (WidgetCode) isProductCode() {}

// GizmoCode is a product code of the form G followed by three digits.
type GizmoCode struct {
	value string
}

// NewGizmoCode creates a GizmoCode from raw.
func NewGizmoCode(raw string) (GizmoCode, error) {
	if err := checkPattern("gizmoCode", raw, gizmoCodePattern); err != nil {
		return GizmoCode{}, err
	}
	return GizmoCode{value: raw}, nil
}

// Validate reports whether c was built by NewGizmoCode.
func (c GizmoCode) Validate() error {
	if c.value == "" {
		return ErrGizmoCodeIsNotConstructed
	}
	return nil
}

func (c GizmoCode) String() string {
	return c.value
}

func (GizmoCode) isProductCode() {}
