package customer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not created through
	// NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
)

// Customer is the aggregate root for a person who places orders. It owns the
// contact data, the loyalty points balance and the archival state.
//
// Once archived, a customer keeps only its identifier, registration time,
// loyalty points and the geographic part of its address; every mutator then
// fails with ArchivedError.
//
// Customer is not safe for concurrent use.
type Customer struct {
	id        kernel.CustomerID
	fullName  kernel.FullName
	birthDate *kernel.BirthDate
	email     kernel.Email
	phone     kernel.Phone
	document  kernel.Document
	address   kernel.Address

	promotionNotificationsAllowed bool
	archived                      bool
	registeredAt                  time.Time
	archivedAt                    *time.Time
	loyaltyPoints                 kernel.LoyaltyPoints

	env           kernel.Env
	isConstructed bool
}

// NewCustomer registers a brand new customer: a fresh identifier, registered
// now, not archived and with no loyalty points.
//
// Example:
//
//	c, err := customer.NewCustomer(name, birthDate, email, phone, document, true, address)
//	if err != nil {
//	    return err
//	}
func NewCustomer(
	fullName kernel.FullName,
	birthDate kernel.BirthDate,
	email kernel.Email,
	phone kernel.Phone,
	document kernel.Document,
	promotionNotificationsAllowed bool,
	address kernel.Address,
	opts ...kernel.EnvOption,
) (*Customer, error) {
	env := kernel.NewEnv(opts...)
	c := &Customer{
		promotionNotificationsAllowed: promotionNotificationsAllowed,
		registeredAt:                  env.Clock.Now(),
		env:                           env,
		isConstructed:                 true,
	}

	if err := errors.Join(
		c.setFullName(fullName),
		c.setBirthDate(birthDate),
		c.setEmail(email),
		c.setPhone(phone),
		c.setDocument(document),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	c.id = kernel.NewCustomerID(env.IDs)
	return c, nil
}

// State is the persisted form of a customer. BirthDate and ArchivedAt are nil
// for archived and active customers respectively.
type State struct {
	ID                            kernel.CustomerID
	FullName                      kernel.FullName
	BirthDate                     *kernel.BirthDate
	Email                         kernel.Email
	Phone                         kernel.Phone
	Document                      kernel.Document
	Address                       kernel.Address
	PromotionNotificationsAllowed bool
	Archived                      bool
	RegisteredAt                  time.Time
	ArchivedAt                    *time.Time
	LoyaltyPoints                 kernel.LoyaltyPoints
}

// RestoreCustomer reconstructs a Customer from its persisted state, including
// archival state and loyalty points. All invalid fields are reported together.
//
// A birth date is required unless the customer is archived, and ArchivedAt is
// required exactly when it is.
func RestoreCustomer(state State, opts ...kernel.EnvOption) (*Customer, error) {
	c := &Customer{
		promotionNotificationsAllowed: state.PromotionNotificationsAllowed,
		archived:                      state.Archived,
		loyaltyPoints:                 state.LoyaltyPoints,
		env:                           kernel.NewEnv(opts...),
		isConstructed:                 true,
	}

	if err := errors.Join(
		c.setID(state.ID),
		c.setFullName(state.FullName),
		c.restoreBirthDate(state.BirthDate, state.Archived),
		c.setEmail(state.Email),
		c.setPhone(state.Phone),
		c.setDocument(state.Document),
		c.setAddress(state.Address),
		c.setRegisteredAt(state.RegisteredAt),
		c.restoreArchivedAt(state.ArchivedAt, state.Archived),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// State returns a snapshot of the customer suitable for persistence.
func (c *Customer) State() State {
	return State{
		ID:                            c.id,
		FullName:                      c.fullName,
		BirthDate:                     clone(c.birthDate),
		Email:                         c.email,
		Phone:                         c.phone,
		Document:                      c.document,
		Address:                       c.address,
		PromotionNotificationsAllowed: c.promotionNotificationsAllowed,
		Archived:                      c.archived,
		RegisteredAt:                  c.registeredAt,
		ArchivedAt:                    clone(c.archivedAt),
		LoyaltyPoints:                 c.loyaltyPoints,
	}
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.CustomerID { return c.id }

// FullName returns the customer's name.
func (c *Customer) FullName() kernel.FullName { return c.fullName }

// BirthDate returns the birth date. It is absent once the customer is archived.
func (c *Customer) BirthDate() (kernel.BirthDate, bool) {
	if c.birthDate == nil {
		return kernel.BirthDate{}, false
	}
	return *c.birthDate, true
}

// Email returns the contact e-mail.
func (c *Customer) Email() kernel.Email { return c.email }

// Phone returns the contact phone.
func (c *Customer) Phone() kernel.Phone { return c.phone }

// Document returns the identification document.
func (c *Customer) Document() kernel.Document { return c.document }

// Address returns the customer's address.
func (c *Customer) Address() kernel.Address { return c.address }

// PromotionNotificationsAllowed reports whether the customer accepts promotional messages.
func (c *Customer) PromotionNotificationsAllowed() bool { return c.promotionNotificationsAllowed }

// IsArchived reports whether the customer has been archived.
func (c *Customer) IsArchived() bool { return c.archived }

// RegisteredAt returns when the customer registered.
func (c *Customer) RegisteredAt() time.Time { return c.registeredAt }

// ArchivedAt returns when the customer was archived, nil while active.
func (c *Customer) ArchivedAt() *time.Time { return clone(c.archivedAt) }

// LoyaltyPoints returns the points balance.
func (c *Customer) LoyaltyPoints() kernel.LoyaltyPoints { return c.loyaltyPoints }

// ChangeEmail replaces the contact e-mail.
func (c *Customer) ChangeEmail(email kernel.Email) error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	return c.setEmail(email)
}

// ChangePhone replaces the contact phone.
func (c *Customer) ChangePhone(phone kernel.Phone) error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	return c.setPhone(phone)
}

// ChangeName replaces the customer's name.
func (c *Customer) ChangeName(fullName kernel.FullName) error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	return c.setFullName(fullName)
}

// ChangeAddress replaces the customer's address.
func (c *Customer) ChangeAddress(address kernel.Address) error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	return c.setAddress(address)
}

// EnablePromotionNotifications opts the customer in to promotional messages.
func (c *Customer) EnablePromotionNotifications() error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	c.promotionNotificationsAllowed = true
	return nil
}

// DisablePromotionNotifications opts the customer out of promotional messages.
func (c *Customer) DisablePromotionNotifications() error {
	if err := c.ensureActive(); err != nil {
		return err
	}
	c.promotionNotificationsAllowed = false
	return nil
}

// AddLoyaltyPoint adds points to the balance. Zero and negative values are
// rejected with errs.ValueIsOutOfRangeError and the balance is unchanged.
func (c *Customer) AddLoyaltyPoint(points int) error {
	if err := c.ensureActive(); err != nil {
		return err
	}

	updated, err := c.loyaltyPoints.Add(points)
	if err != nil {
		return err
	}
	c.loyaltyPoints = updated
	return nil
}

// Archive anonymizes the customer irreversibly:
//   - name, e-mail, phone and document are replaced by the Anonymous* values
//   - the birth date is removed
//   - promotion notifications are disabled
//   - the street number is redacted and the address complement cleared
//
// The archival time is recorded. Archiving an archived customer fails with
// ArchivedError.
func (c *Customer) Archive() error {
	if err := c.ensureActive(); err != nil {
		return err
	}

	now := c.env.Clock.Now()
	c.fullName = anonymousFullName
	c.email = anonymousEmail
	c.phone = anonymousPhone
	c.document = anonymousDocument
	c.birthDate = nil
	c.promotionNotificationsAllowed = false
	c.address = c.address.Anonymized()
	c.archived = true
	c.archivedAt = &now
	return nil
}

// LogValue implements slog.LogValuer. Personal data is never included.
func (c *Customer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.id.String()),
		slog.Bool("archived", c.archived),
		slog.Int("loyalty_points", c.loyaltyPoints.Value()),
		slog.Time("registered_at", c.registeredAt),
	)
}

func (c *Customer) ensureActive() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.archived {
		return &ArchivedError{CustomerID: c.id}
	}
	return nil
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName kernel.FullName) error {
	if err := fullName.Validate(); err != nil {
		return err
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setBirthDate(birthDate kernel.BirthDate) error {
	if err := birthDate.Validate(); err != nil {
		return err
	}
	c.birthDate = &birthDate
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setDocument(document kernel.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}
	c.document = document
	return nil
}

func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) setRegisteredAt(registeredAt time.Time) error {
	if registeredAt.IsZero() {
		return errs.NewValueIsRequiredError("registeredAt")
	}
	c.registeredAt = registeredAt
	return nil
}

func (c *Customer) restoreBirthDate(birthDate *kernel.BirthDate, archived bool) error {
	switch {
	case birthDate != nil:
		return c.setBirthDate(*birthDate)
	case archived:
		return nil
	default:
		return errs.NewValueIsRequiredError("birthDate")
	}
}

func (c *Customer) restoreArchivedAt(archivedAt *time.Time, archived bool) error {
	switch {
	case archived && (archivedAt == nil || archivedAt.IsZero()):
		return errs.NewValueIsRequiredError("archivedAt")
	case !archived && archivedAt != nil:
		return errs.NewValueIsInvalidErrorWithCause("archivedAt", fmt.Errorf("active customer %s has an archival time", c.id))
	default:
		c.archivedAt = clone(archivedAt)
		return nil
	}
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
