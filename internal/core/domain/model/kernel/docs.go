// Package kernel provides the primitive and compound value types of the order-taking domain.
//
// Every type in this package is an immutable value object that can only be
// obtained through its constructor. The constructor is the single validation
// point: once a value exists, code downstream trusts it without re-checking.
// Distinct semantic roles get distinct types, so an OrderID can never be
// passed where an OrderLineID is expected even though both wrap a string.
//
// The package includes:
//   - Bounded strings: String50, OrderID, OrderLineID
//   - Pattern strings: EmailAddress, ZipCode, WidgetCode, GizmoCode
//   - ProductCode: a closed union of WidgetCode and GizmoCode
//   - OrderQuantity: a closed union of UnitQuantity and KilogramQuantity
//   - Money: Price and BillingAmount, backed by exact decimals
//   - Compound records: PersonalName, CustomerInfo, Address
//
// The zero value of every type is invalid and fails Validate.
package kernel
