package kernel

import (
	"errors"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	// ErrPersonalNameIsNotConstructed is returned when validating a zero value PersonalName.
	ErrPersonalNameIsNotConstructed = errs.NewValueIsRequiredError(
		"personal name must be created via NewPersonalName")
	// ErrCustomerInfoIsNotConstructed is returned when validating a zero value CustomerInfo.
	ErrCustomerInfoIsNotConstructed = errs.NewValueIsRequiredError(
		"customer info must be created via NewCustomerInfo")
)

// PersonalName is a customer's first and last name.
type PersonalName struct {
	firstName String50
	lastName  String50
	guard     guard.ConstructorGuard
}

// NewPersonalName creates a PersonalName from two validated names.
func NewPersonalName(firstName, lastName String50) (PersonalName, error) {
	if err := errors.Join(firstName.Validate(), lastName.Validate()); err != nil {
		return PersonalName{}, err
	}
	return PersonalName{
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether n was built by NewPersonalName.
func (n PersonalName) Validate() error {
	return n.guard.Validate(ErrPersonalNameIsNotConstructed)
}

func (n PersonalName) FirstName() String50 {
	return n.firstName
}

func (n PersonalName) LastName() String50 {
	return n.lastName
}

func (n PersonalName) String() string {
	return n.firstName.String() + " " + n.lastName.String()
}

// CustomerInfo is who placed the order and where to reach them.
type CustomerInfo struct {
	name         PersonalName
	emailAddress EmailAddress
	guard        guard.ConstructorGuard
}

// NewCustomerInfo creates a CustomerInfo.
func NewCustomerInfo(name PersonalName, emailAddress EmailAddress) (CustomerInfo, error) {
	if err := errors.Join(name.Validate(), emailAddress.Validate()); err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{
		name:         name,
		emailAddress: emailAddress,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether c was built by NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

func (c CustomerInfo) Name() PersonalName {
	return c.name
}

func (c CustomerInfo) EmailAddress() EmailAddress {
	return c.emailAddress
}
