package kernel

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery address of an order. It has no identity of its own:
// two addresses with the same parts are the same address.
//
// Every part is trimmed and must be non-empty. The postal code and the street,
// district, city and state normally come from the postal code resolver while the
// number is typed by the user.
//
//	addr, err := kernel.NewAddress("01001-000", "Praça da Sé", "10", "Sé", "São Paulo", "SP")
type Address struct { //nolint:recvcheck //using for validation
	postalCode string
	street     string
	number     string
	district   string
	city       string
	state      string

	guard guard.ConstructorGuard
}

// NewAddress builds an Address, reporting every blank part at once.
func NewAddress(postalCode, street, number, district, city, state string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required(&addr.postalCode, "postalCode", postalCode),
		required(&addr.street, "street", street),
		required(&addr.number, "number", number),
		required(&addr.district, "district", district),
		required(&addr.city, "city", city),
		required(&addr.state, "state", state),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) PostalCode() string {
	return a.postalCode
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Number() string {
	return a.number
}

func (a Address) District() string {
	return a.district
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) String() string {
	return a.street + ", " + a.number + " - " + a.district + ", " + a.city + "/" + a.state + " " + a.postalCode
}

// IsEqual compares addresses by value. Both must be constructed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func required(dst *string, paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}
