package kernel

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// AnonymizedAddressNumber replaces the street number of an anonymized address.
const AnonymizedAddressNumber = "Anonymized"

var (
	// ErrZipCodeIsNotConstructed is returned when validating a zero-value ZipCode.
	ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError("zip code must be created via NewZipCode")
	// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")
)

// ZipCode is a postal code made of letters, digits, spaces and hyphens.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode validates value and returns a ZipCode.
func NewZipCode(value string) (ZipCode, error) {
	value, err := requireNonBlank("zipCode", value)
	if err != nil {
		return ZipCode{}, err
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != ' ' {
			return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(
				"zipCode", fmt.Errorf("%q contains %q", value, r))
		}
	}
	return ZipCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether z was built by NewZipCode.
func (z ZipCode) Validate() error { return z.guard.Validate(ErrZipCodeIsNotConstructed) }

func (z ZipCode) String() string { return z.value }

// Address is a postal address. Every field except the complement is required.
//
// Example:
//
//	zip, _ := kernel.NewZipCode("79911")
//	addr, err := kernel.NewAddress("Bourbon Street", "apt. 114", "North Ville", "1134", "Yostfort", "South Carolina", zip)
type Address struct { //nolint:recvcheck //using for validation
	street       string
	complement   string
	neighborhood string
	number       string
	city         string
	state        string
	zipCode      ZipCode
	guard        guard.ConstructorGuard
}

// NewAddress validates every field and returns an Address. All failing fields
// are reported together.
func NewAddress(
	street string,
	complement string,
	neighborhood string,
	number string,
	city string,
	state string,
	zipCode ZipCode,
) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setNonBlank("street", street, &addr.street),
		setNonBlank("neighborhood", neighborhood, &addr.neighborhood),
		setNonBlank("number", number, &addr.number),
		setNonBlank("city", city, &addr.city),
		setNonBlank("state", state, &addr.state),
		addr.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}
	addr.complement = strings.TrimSpace(complement)

	return addr, nil
}

// Validate reports whether a was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string { return a.street }

// Complement returns the optional complement (apartment, floor...), possibly empty.
func (a Address) Complement() string { return a.complement }

// Neighborhood returns the neighborhood.
func (a Address) Neighborhood() string { return a.neighborhood }

// Number returns the street number.
func (a Address) Number() string { return a.number }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or province.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code.
func (a Address) ZipCode() ZipCode { return a.zipCode }

// IsEqual compares every field.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Anonymized returns a copy of a with the street number redacted and the
// complement cleared. Street, neighborhood, city, state and zip code are kept.
func (a Address) Anonymized() Address {
	a.number = AnonymizedAddressNumber
	a.complement = ""
	return a
}

func (a Address) String() string {
	s := a.street + ", " + a.number
	if a.complement != "" {
		s += " - " + a.complement
	}
	return fmt.Sprintf("%s, %s, %s/%s, %s", s, a.neighborhood, a.city, a.state, a.zipCode)
}

func setNonBlank(paramName, value string, field *string) error {
	value, err := requireNonBlank(paramName, value)
	if err != nil {
		return err
	}
	*field = value
	return nil
}

func (a *Address) setZipCode(zipCode ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	a.zipCode = zipCode
	return nil
}
