package order

import (
	"context"
	"errors"
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// AddressServiceName names the address service in RemoteServiceError.
const AddressServiceName = "address-check"

// ErrValidatorIsNotConstructed is returned by a zero value Validator.
var ErrValidatorIsNotConstructed = errs.NewValueIsRequiredError("validator must be created via NewValidator")

// Validator turns an UnvalidatedOrder into a ValidatedOrder.
//
// Validation fails fast: fields are checked in a fixed order (order id,
// customer info, shipping address, billing address, then each line in turn)
// and the first failure is returned. A ValidatedOrder is only returned when
// every field and every line is valid.
type Validator struct {
	checkProductCodeExists CheckProductCodeExists
	checkAddressExists     CheckAddressExists
	guard                  guard.ConstructorGuard
}

// NewValidator creates a Validator bound to its two collaborators.
//
// Parameters:
//   - checkProductCodeExists: catalog predicate for product codes
//   - checkAddressExists: address service call, may fail
//
// Returns an errs.ValueIsRequiredError if a collaborator is nil.
func NewValidator(checkProductCodeExists CheckProductCodeExists, checkAddressExists CheckAddressExists) (Validator, error) {
	if checkProductCodeExists == nil {
		return Validator{}, errs.NewValueIsRequiredError("checkProductCodeExists")
	}
	if checkAddressExists == nil {
		return Validator{}, errs.NewValueIsRequiredError("checkAddressExists")
	}

	return Validator{
		checkProductCodeExists: checkProductCodeExists,
		checkAddressExists:     checkAddressExists,
		guard:                  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks every field of unvalidated.
//
// Returns:
//   - ValidatedOrder when the whole order is valid
//   - *ValidationError for the first invalid field, including an unknown
//     product code or an address the address service does not know
//   - *RemoteServiceError when the address service could not answer
func (v Validator) Validate(ctx context.Context, unvalidated UnvalidatedOrder) (ValidatedOrder, error) {
	if err := v.guard.Validate(ErrValidatorIsNotConstructed); err != nil {
		return ValidatedOrder{}, err
	}

	orderID, err := kernel.NewOrderID(unvalidated.OrderID)
	if err != nil {
		return ValidatedOrder{}, NewValidationError("orderId", unvalidated.OrderID, err)
	}

	customerInfo, err := toCustomerInfo(unvalidated.CustomerInfo)
	if err != nil {
		return ValidatedOrder{}, err
	}

	shippingAddress, err := v.toCheckedAddress(ctx, "shippingAddress", unvalidated.ShippingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}

	billingAddress, err := v.toCheckedAddress(ctx, "billingAddress", unvalidated.BillingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}

	lines := make([]ValidatedOrderLine, 0, len(unvalidated.Lines))
	for i, unvalidatedLine := range unvalidated.Lines {
		line, err := v.toValidatedOrderLine(i, unvalidatedLine)
		if err != nil {
			return ValidatedOrder{}, err
		}
		lines = append(lines, line)
	}

	return ValidatedOrder{
		orderID:         orderID,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func toCustomerInfo(unvalidated UnvalidatedCustomerInfo) (kernel.CustomerInfo, error) {
	firstName, err := kernel.NewString50(unvalidated.FirstName)
	if err != nil {
		return kernel.CustomerInfo{}, NewValidationError("customerInfo.firstName", unvalidated.FirstName, err)
	}

	lastName, err := kernel.NewString50(unvalidated.LastName)
	if err != nil {
		return kernel.CustomerInfo{}, NewValidationError("customerInfo.lastName", unvalidated.LastName, err)
	}

	emailAddress, err := kernel.NewEmailAddress(unvalidated.EmailAddress)
	if err != nil {
		return kernel.CustomerInfo{}, NewValidationError("customerInfo.emailAddress", unvalidated.EmailAddress, err)
	}

	name, err := kernel.NewPersonalName(firstName, lastName)
	if err != nil {
		return kernel.CustomerInfo{}, NewValidationError("customerInfo", nil, err)
	}

	info, err := kernel.NewCustomerInfo(name, emailAddress)
	if err != nil {
		return kernel.CustomerInfo{}, NewValidationError("customerInfo", nil, err)
	}
	return info, nil
}

// toCheckedAddress confirms the address with the address service, then
// validates the fields of the confirmed address.
func (v Validator) toCheckedAddress(ctx context.Context, field string, unvalidated UnvalidatedAddress) (kernel.Address, error) {
	checked, err := v.checkAddressExists(ctx, unvalidated)
	if err != nil {
		return kernel.Address{}, addressCheckError(field, unvalidated, err)
	}
	return toAddress(field, checked)
}

func addressCheckError(field string, unvalidated UnvalidatedAddress, err error) error {
	if errors.Is(err, ErrAddressNotFound) {
		return NewValidationError(field, unvalidated, err)
	}

	var remoteErr *RemoteServiceError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}
	return NewRemoteServiceError(AddressServiceName, err)
}

func toAddress(field string, checked CheckedAddress) (kernel.Address, error) {
	addressLine1, err := kernel.NewString50(checked.AddressLine1)
	if err != nil {
		return kernel.Address{}, NewValidationError(field+".addressLine1", checked.AddressLine1, err)
	}

	var lines kernel.AddressLines
	if lines.Line2, err = kernel.NewOptionalString50(checked.AddressLine2); err != nil {
		return kernel.Address{}, NewValidationError(field+".addressLine2", checked.AddressLine2, err)
	}
	if lines.Line3, err = kernel.NewOptionalString50(checked.AddressLine3); err != nil {
		return kernel.Address{}, NewValidationError(field+".addressLine3", checked.AddressLine3, err)
	}
	if lines.Line4, err = kernel.NewOptionalString50(checked.AddressLine4); err != nil {
		return kernel.Address{}, NewValidationError(field+".addressLine4", checked.AddressLine4, err)
	}

	city, err := kernel.NewString50(checked.City)
	if err != nil {
		return kernel.Address{}, NewValidationError(field+".city", checked.City, err)
	}

	zipCode, err := kernel.NewZipCode(checked.ZipCode)
	if err != nil {
		return kernel.Address{}, NewValidationError(field+".zipCode", checked.ZipCode, err)
	}

	address, err := kernel.NewAddress(addressLine1, lines, city, zipCode)
	if err != nil {
		return kernel.Address{}, NewValidationError(field, nil, err)
	}
	return address, nil
}

func (v Validator) toValidatedOrderLine(index int, unvalidated UnvalidatedOrderLine) (ValidatedOrderLine, error) {
	field := fmt.Sprintf("lines[%d]", index)
	lineID := unvalidated.OrderLineID

	orderLineID, err := kernel.NewOrderLineID(unvalidated.OrderLineID)
	if err != nil {
		return ValidatedOrderLine{}, NewLineValidationError(lineID, field+".orderLineId", unvalidated.OrderLineID, err)
	}

	productCode, err := kernel.NewProductCode(unvalidated.ProductCode)
	if err != nil {
		return ValidatedOrderLine{}, NewLineValidationError(lineID, field+".productCode", unvalidated.ProductCode, err)
	}

	if !v.checkProductCodeExists(productCode) {
		return ValidatedOrderLine{}, NewLineValidationError(
			lineID, field+".productCode", unvalidated.ProductCode, ErrProductCodeNotFound)
	}

	// the validated product code decides between units and kilograms
	quantity, err := kernel.NewOrderQuantity(productCode, unvalidated.Quantity)
	if err != nil {
		return ValidatedOrderLine{}, NewLineValidationError(lineID, field+".quantity", unvalidated.Quantity, err)
	}

	return ValidatedOrderLine{
		orderLineID: orderLineID,
		productCode: productCode,
		quantity:    quantity,
	}, nil
}
