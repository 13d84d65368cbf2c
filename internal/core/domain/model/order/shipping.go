package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrShippingIsNotConstructed is returned when validating a zero-value Shipping.
var ErrShippingIsNotConstructed = errs.NewValueIsRequiredError("shipping must be created via NewShipping")

// Shipping describes who receives an order and where. The shipping cost and
// the expected delivery date belong to the order and are set together with it
// through Order.ChangeShipping.
type Shipping struct {
	recipient kernel.FullName
	document  kernel.Document
	phone     kernel.Phone
	address   kernel.Address
	guard     guard.ConstructorGuard
}

// NewShipping validates every part and returns a Shipping.
func NewShipping(
	recipient kernel.FullName,
	document kernel.Document,
	phone kernel.Phone,
	address kernel.Address,
) (Shipping, error) {
	if err := errors.Join(
		recipient.Validate(),
		document.Validate(),
		phone.Validate(),
		address.Validate(),
	); err != nil {
		return Shipping{}, err
	}

	return Shipping{
		recipient: recipient,
		document:  document,
		phone:     phone,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether s was built by NewShipping.
func (s Shipping) Validate() error {
	return s.guard.Validate(ErrShippingIsNotConstructed)
}

// Recipient returns the name of the person receiving the order.
func (s Shipping) Recipient() kernel.FullName { return s.recipient }

// Document returns the recipient's identification document.
func (s Shipping) Document() kernel.Document { return s.document }

// Phone returns the recipient's phone.
func (s Shipping) Phone() kernel.Phone { return s.phone }

// Address returns the delivery address.
func (s Shipping) Address() kernel.Address { return s.address }
