// Package errs provides standardized error types for the order-taking service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the value types, the workflow stages and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ValueIsOutOfRangeError: For numbers and lengths outside their bounds
//   - ValueDoesNotMatchPatternError: For strings that do not match their format
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on wrapped errors
package errs
