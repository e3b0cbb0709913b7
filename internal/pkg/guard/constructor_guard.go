// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries tell a constructor-built value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guard is a zero value and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that a struct was initialized through its designated
// constructor. Embed it as an unexported field and set it with NewConstructorGuard
// inside the constructor; the zero value of the enclosing struct then fails Validate.
//
// Example usage:
//
//	var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPrice(value decimal.Decimal) (Price, error) {
//	    if value.IsNegative() {
//	        return Price{}, errors.New("price cannot be negative")
//	    }
//	    return Price{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
//
// A guard is needed whenever the zero value of the wrapped data is itself a legal
// value (a zero Price, an empty command), so the data alone cannot tell the two apart.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard.
// For a zero-value guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
