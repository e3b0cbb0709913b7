package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("order validation failed")
	// ErrPricing is matched by every *PricingError.
	ErrPricing = errors.New("order pricing failed")
	// ErrRemoteService is matched by every *RemoteServiceError.
	ErrRemoteService = errors.New("remote service failed")

	// ErrAddressNotFound is returned by CheckAddressExists for an unknown address.
	ErrAddressNotFound = errors.New("address not found")
	// ErrPriceNotFound is returned by GetProductPrice for a product without a price.
	ErrPriceNotFound = errors.New("price not found")
	// ErrProductCodeNotFound is the cause of a ValidationError for a product missing from the catalog.
	ErrProductCodeNotFound = errors.New("product code not found")
)

// ValidationError reports the first field of an UnvalidatedOrder that could not be validated.
//
// Field is a path into the order such as "shippingAddress.zipCode" or
// "lines[2].quantity". LineID is the raw id of the offending line and is
// empty for order-level fields. Value is the raw input that was rejected.
type ValidationError struct {
	Field  string
	LineID string
	Value  any
	Cause  error
}

// NewValidationError creates a ValidationError for an order-level field.
func NewValidationError(field string, value any, cause error) *ValidationError {
	return &ValidationError{
		Field: field,
		Value: value,
		Cause: cause,
	}
}

// NewLineValidationError creates a ValidationError for a field of the line lineID.
func NewLineValidationError(lineID, field string, value any, cause error) *ValidationError {
	return &ValidationError{
		Field:  field,
		LineID: lineID,
		Value:  value,
		Cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	return describe(ErrValidation, e.Field, e.LineID, e.Value, e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	return unwrap(ErrValidation, e.Cause)
}

// PricingError reports a line or order total that could not be priced.
type PricingError struct {
	Field  string
	LineID string
	Value  any
	Cause  error
}

// NewPricingError creates a PricingError for an order-level amount.
func NewPricingError(field string, value any, cause error) *PricingError {
	return &PricingError{
		Field: field,
		Value: value,
		Cause: cause,
	}
}

// NewLinePricingError creates a PricingError for the line lineID.
func NewLinePricingError(lineID, field string, value any, cause error) *PricingError {
	return &PricingError{
		Field:  field,
		LineID: lineID,
		Value:  value,
		Cause:  cause,
	}
}

func (e *PricingError) Error() string {
	return describe(ErrPricing, e.Field, e.LineID, e.Value, e.Cause)
}

func (e *PricingError) Unwrap() []error {
	return unwrap(ErrPricing, e.Cause)
}

// RemoteServiceError reports that a collaborator could not answer.
// Unlike a ValidationError it says nothing about the order itself.
type RemoteServiceError struct {
	Service string
	Cause   error
}

// NewRemoteServiceError creates a RemoteServiceError for service.
func NewRemoteServiceError(service string, cause error) *RemoteServiceError {
	return &RemoteServiceError{
		Service: service,
		Cause:   cause,
	}
}

func (e *RemoteServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrRemoteService, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRemoteService, e.Service)
}

func (e *RemoteServiceError) Unwrap() []error {
	return unwrap(ErrRemoteService, e.Cause)
}

func describe(sentinel error, field, lineID string, value any, cause error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", sentinel, field)
	if lineID != "" {
		fmt.Fprintf(&b, " (line %s)", lineID)
	}
	if value != nil {
		fmt.Fprintf(&b, " = %q", strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " "))
	}
	if cause != nil {
		fmt.Fprintf(&b, ": %v", cause)
	}
	return b.String()
}

func unwrap(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
