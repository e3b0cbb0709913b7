package kernel

import (
	"regexp"
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/option"
)

// String50MaxLength is the maximum number of characters in a String50.
const String50MaxLength = 50

var (
	emailAddressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipCodePattern      = regexp.MustCompile(`^\d{5}$`)
)

var (
	// ErrString50IsNotConstructed is returned when validating a zero value String50.
	ErrString50IsNotConstructed = errs.NewValueIsRequiredError("string50 must be created via NewString50")
	// ErrEmailAddressIsNotConstructed is returned when validating a zero value EmailAddress.
	ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
		"email address must be created via NewEmailAddress")
	// ErrZipCodeIsNotConstructed is returned when validating a zero value ZipCode.
	ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError("zip code must be created via NewZipCode")
)

// String50 is a non-empty string of at most String50MaxLength characters.
// Length is counted in runes, so multi-byte names are not penalised.
//
// Example:
//
//	name, err := kernel.NewString50("Ada")
//	if err != nil {
//	    // empty or longer than 50 characters
//	}
//	fmt.Println(name) // Output: Ada
type String50 struct {
	value string
}

// NewString50 creates a String50 from raw.
//
// Returns:
//   - errs.ValueIsRequiredError when raw is empty
//   - errs.ValueIsOutOfRangeError when raw is longer than String50MaxLength
func NewString50(raw string) (String50, error) {
	if err := checkBoundedString("string50", raw, String50MaxLength); err != nil {
		return String50{}, err
	}
	return String50{value: raw}, nil
}

// NewOptionalString50 treats an empty raw value as absent.
// A non-empty value must satisfy the String50 rules.
func NewOptionalString50(raw string) (option.Option[String50], error) {
	if raw == "" {
		return option.None[String50](), nil
	}
	s, err := NewString50(raw)
	if err != nil {
		return option.None[String50](), err
	}
	return option.Some(s), nil
}

// Validate reports whether s was built by NewString50.
func (s String50) Validate() error {
	if s.value == "" {
		return ErrString50IsNotConstructed
	}
	return nil
}

func (s String50) String() string {
	return s.value
}

// EmailAddress is a string containing a single @ followed by a dotted domain.
type EmailAddress struct {
	value string
}

// NewEmailAddress creates an EmailAddress from raw.
// It returns errs.ValueDoesNotMatchPatternError when raw is not an email address.
func NewEmailAddress(raw string) (EmailAddress, error) {
	if err := checkPattern("emailAddress", raw, emailAddressPattern); err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: raw}, nil
}

// Validate reports whether e was built by NewEmailAddress.
func (e EmailAddress) Validate() error {
	if e.value == "" {
		return ErrEmailAddressIsNotConstructed
	}
	return nil
}

func (e EmailAddress) String() string {
	return e.value
}

// ZipCode is exactly five digits.
type ZipCode struct {
	value string
}

// NewZipCode creates a ZipCode from raw.
func NewZipCode(raw string) (ZipCode, error) {
	if err := checkPattern("zipCode", raw, zipCodePattern); err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: raw}, nil
}

// Validate reports whether z was built by NewZipCode.
func (z ZipCode) Validate() error {
	if z.value == "" {
		return ErrZipCodeIsNotConstructed
	}
	return nil
}

func (z ZipCode) String() string {
	return z.value
}

func checkBoundedString(paramName, raw string, maxLength int) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(raw); n > maxLength {
		return errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, maxLength)
	}
	return nil
}

func checkPattern(paramName, raw string, pattern *regexp.Regexp) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if !pattern.MatchString(raw) {
		return errs.NewValueDoesNotMatchPatternError(paramName, raw, pattern.String())
	}
	return nil
}
