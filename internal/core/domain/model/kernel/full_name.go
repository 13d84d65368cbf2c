package kernel

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrFullNameIsNotConstructed is returned when validating a zero-value FullName.
var ErrFullNameIsNotConstructed = errs.NewValueIsRequiredError("full name must be created via NewFullName")

// FullName is a person's first and last name, both trimmed and non-blank.
type FullName struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	guard     guard.ConstructorGuard
}

// NewFullName validates both parts and returns a FullName. When both parts are
// blank the returned error reports both.
func NewFullName(firstName, lastName string) (FullName, error) {
	name := FullName{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		name.setFirstName(firstName),
		name.setLastName(lastName),
	); err != nil {
		return FullName{}, err
	}

	return name, nil
}

// Validate reports whether n was built by NewFullName.
func (n FullName) Validate() error {
	return n.guard.Validate(ErrFullNameIsNotConstructed)
}

// FirstName returns the given name.
func (n FullName) FirstName() string {
	return n.firstName
}

// LastName returns the family name.
func (n FullName) LastName() string {
	return n.lastName
}

// IsEqual compares both parts.
func (n FullName) IsEqual(other FullName) bool {
	return n.firstName == other.firstName && n.lastName == other.lastName
}

// String joins first and last name with a single space.
func (n FullName) String() string {
	return n.firstName + " " + n.lastName
}

func (n *FullName) setFirstName(firstName string) error {
	firstName, err := requireNonBlank("firstName", firstName)
	if err != nil {
		return err
	}
	n.firstName = firstName
	return nil
}

func (n *FullName) setLastName(lastName string) error {
	lastName, err := requireNonBlank("lastName", lastName)
	if err != nil {
		return err
	}
	n.lastName = lastName
	return nil
}
