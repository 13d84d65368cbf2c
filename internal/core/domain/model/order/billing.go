package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrBillingIsNotConstructed is returned when validating a zero-value Billing.
var ErrBillingIsNotConstructed = errs.NewValueIsRequiredError("billing must be created via NewBilling")

// Billing holds the data printed on the invoice of an order.
type Billing struct {
	fullName kernel.FullName
	document kernel.Document
	phone    kernel.Phone
	email    kernel.Email
	address  kernel.Address
	guard    guard.ConstructorGuard
}

// NewBilling validates every part and returns a Billing. All invalid parts are
// reported together.
func NewBilling(
	fullName kernel.FullName,
	document kernel.Document,
	phone kernel.Phone,
	email kernel.Email,
	address kernel.Address,
) (Billing, error) {
	if err := errors.Join(
		fullName.Validate(),
		document.Validate(),
		phone.Validate(),
		email.Validate(),
		address.Validate(),
	); err != nil {
		return Billing{}, err
	}

	return Billing{
		fullName: fullName,
		document: document,
		phone:    phone,
		email:    email,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether b was built by NewBilling.
func (b Billing) Validate() error {
	return b.guard.Validate(ErrBillingIsNotConstructed)
}

// FullName returns the name of the billed person.
func (b Billing) FullName() kernel.FullName { return b.fullName }

// Document returns the billed person's identification document.
func (b Billing) Document() kernel.Document { return b.document }

// Phone returns the billing phone.
func (b Billing) Phone() kernel.Phone { return b.phone }

// Email returns the address the invoice is sent to.
func (b Billing) Email() kernel.Email { return b.email }

// Address returns the billing address.
func (b Billing) Address() kernel.Address { return b.address }
