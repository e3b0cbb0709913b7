package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
	"ordertaking/internal/pkg/option"
)

// ErrAddressIsNotConstructed is returned when validating a zero value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a postal address. Lines 2 to 4 are optional.
type Address struct { //nolint:recvcheck //using for validation
	addressLine1 String50
	addressLine2 option.Option[String50]
	addressLine3 option.Option[String50]
	addressLine4 option.Option[String50]
	city         String50
	zipCode      ZipCode
	guard        guard.ConstructorGuard
}

// AddressLines groups the optional lines of an address, in order.
type AddressLines struct {
	Line2 option.Option[String50]
	Line3 option.Option[String50]
	Line4 option.Option[String50]
}

// NewAddress creates an Address from validated parts.
// Every present optional line must itself be valid.
func NewAddress(addressLine1 String50, optional AddressLines, city String50, zipCode ZipCode) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		a.setAddressLine1(addressLine1),
		a.setOptionalLines(optional),
		a.setCity(city),
		a.setZipCode(zipCode),
	)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate reports whether a was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) AddressLine1() String50 {
	return a.addressLine1
}

func (a Address) AddressLine2() option.Option[String50] {
	return a.addressLine2
}

func (a Address) AddressLine3() option.Option[String50] {
	return a.addressLine3
}

func (a Address) AddressLine4() option.Option[String50] {
	return a.addressLine4
}

func (a Address) City() String50 {
	return a.city
}

func (a Address) ZipCode() ZipCode {
	return a.zipCode
}

func (a *Address) setAddressLine1(line String50) error {
	if err := line.Validate(); err != nil {
		return err
	}
	a.addressLine1 = line
	return nil
}

func (a *Address) setOptionalLines(lines AddressLines) error {
	for _, line := range []option.Option[String50]{lines.Line2, lines.Line3, lines.Line4} {
		if v, ok := line.Get(); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	a.addressLine2 = lines.Line2
	a.addressLine3 = lines.Line3
	a.addressLine4 = lines.Line4
	return nil
}

func (a *Address) setCity(city String50) error {
	if err := city.Validate(); err != nil {
		return err
	}
	a.city = city
	return nil
}

func (a *Address) setZipCode(zipCode ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	a.zipCode = zipCode
	return nil
}
