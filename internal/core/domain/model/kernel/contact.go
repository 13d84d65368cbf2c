package kernel

import (
	"fmt"
	"net/mail"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")
	// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
	ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")
	// ErrDocumentIsNotConstructed is returned when validating a zero-value Document.
	ErrDocumentIsNotConstructed = errs.NewValueIsRequiredError("document must be created via NewDocument")
	// ErrProductNameIsNotConstructed is returned when validating a zero-value ProductName.
	ErrProductNameIsNotConstructed = errs.NewValueIsRequiredError("product name must be created via NewProductName")
)

// Email is a single bare e-mail address such as "john.doe@example.com".
// Display names ("John <john@example.com>") are rejected.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates value and returns an Email.
func NewEmail(value string) (Email, error) {
	value, err := requireNonBlank("email", value)
	if err != nil {
		return Email{}, err
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if addr.Name != "" || addr.Address != value {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", value))
	}

	return Email{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether e was built by NewEmail.
func (e Email) Validate() error { return e.guard.Validate(ErrEmailIsNotConstructed) }

// IsEqual compares addresses case-insensitively.
func (e Email) IsEqual(other Email) bool { return strings.EqualFold(e.value, other.value) }

func (e Email) String() string { return e.value }

// Phone is a non-blank telephone number. No format is imposed.
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone validates value and returns a Phone.
func NewPhone(value string) (Phone, error) {
	value, err := requireNonBlank("phone", value)
	if err != nil {
		return Phone{}, err
	}
	return Phone{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether p was built by NewPhone.
func (p Phone) Validate() error { return p.guard.Validate(ErrPhoneIsNotConstructed) }

// IsEqual compares phones by value.
func (p Phone) IsEqual(other Phone) bool { return p.value == other.value }

func (p Phone) String() string { return p.value }

// Document is a non-blank personal identification number (tax id, SSN and the like).
type Document struct {
	value string
	guard guard.ConstructorGuard
}

// NewDocument validates value and returns a Document.
func NewDocument(value string) (Document, error) {
	value, err := requireNonBlank("document", value)
	if err != nil {
		return Document{}, err
	}
	return Document{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether d was built by NewDocument.
func (d Document) Validate() error { return d.guard.Validate(ErrDocumentIsNotConstructed) }

// IsEqual compares documents by value.
func (d Document) IsEqual(other Document) bool { return d.value == other.value }

func (d Document) String() string { return d.value }

// ProductName is the non-blank display name of a catalog product.
type ProductName struct {
	value string
	guard guard.ConstructorGuard
}

// NewProductName validates value and returns a ProductName.
func NewProductName(value string) (ProductName, error) {
	value, err := requireNonBlank("productName", value)
	if err != nil {
		return ProductName{}, err
	}
	return ProductName{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether n was built by NewProductName.
func (n ProductName) Validate() error { return n.guard.Validate(ErrProductNameIsNotConstructed) }

// IsEqual compares names by value.
func (n ProductName) IsEqual(other ProductName) bool { return n.value == other.value }

func (n ProductName) String() string { return n.value }

// requireNonBlank trims value and rejects it when nothing is left.
func requireNonBlank(paramName, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return value, nil
}
