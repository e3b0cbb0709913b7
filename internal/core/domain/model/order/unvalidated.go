package order

// UnvalidatedOrder is an order as received from an untrusted caller.
// Nothing in it has been checked.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// UnvalidatedCustomerInfo holds the raw customer fields.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress holds the raw address fields.
// Empty optional lines mean the line is absent.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// UnvalidatedOrderLine holds the raw fields of one order line.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}

// CheckedAddress is an address the address service has confirmed exists.
// Its fields are still raw and are validated by the Validator.
type CheckedAddress UnvalidatedAddress
