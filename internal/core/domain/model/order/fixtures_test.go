package order_test

import (
	"fmt"
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// fixedNow is the instant returned by the test clock.
var fixedNow = time.Date(2024, time.May, 20, 14, 30, 0, 0, time.UTC)

type fixture struct {
	t    *testing.T
	now  time.Time
	next int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, now: fixedNow}
}

// NewUUID hands out 00000000-0000-7000-8000-000000000001, ...002 and so on.
func (f *fixture) NewUUID() kernel.UUID {
	f.next++
	id, err := kernel.UUIDFromString(fmt.Sprintf("00000000-0000-7000-8000-%012d", f.next))
	require.NoError(f.t, err)
	return id
}

func (f *fixture) Now() time.Time {
	return f.now
}

func (f *fixture) env() []kernel.EnvOption {
	return []kernel.EnvOption{kernel.WithClock(f), kernel.WithIDGenerator(f)}
}

func (f *fixture) draft() *order.Order {
	f.t.Helper()
	o, err := order.NewDraftOrder(kernel.NewCustomerID(f), f.env()...)
	require.NoError(f.t, err)
	return o
}

func (f *fixture) product(price string, inStock bool) order.Product {
	f.t.Helper()
	name, err := kernel.NewProductName("Notebook")
	require.NoError(f.t, err)
	p, err := order.NewProduct(kernel.NewProductID(f), name, f.money(price), inStock)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) money(amount string) kernel.Money {
	f.t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(f.t, err)
	return m
}

func (f *fixture) quantity(value int) kernel.Quantity {
	f.t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(f.t, err)
	return q
}

func (f *fixture) address() kernel.Address {
	f.t.Helper()
	zip, err := kernel.NewZipCode("79911")
	require.NoError(f.t, err)
	addr, err := kernel.NewAddress("Bourbon Street", "apt. 114", "North Ville", "1134", "Yostfort", "South Carolina", zip)
	require.NoError(f.t, err)
	return addr
}

func (f *fixture) shipping() order.Shipping {
	f.t.Helper()
	name, err := kernel.NewFullName("John", "Doe")
	require.NoError(f.t, err)
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(f.t, err)
	phone, err := kernel.NewPhone("478-256-2604")
	require.NoError(f.t, err)
	s, err := order.NewShipping(name, document, phone, f.address())
	require.NoError(f.t, err)
	return s
}

func (f *fixture) billing() order.Billing {
	f.t.Helper()
	name, err := kernel.NewFullName("John", "Doe")
	require.NoError(f.t, err)
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(f.t, err)
	phone, err := kernel.NewPhone("478-256-2604")
	require.NoError(f.t, err)
	email, err := kernel.NewEmail("john.doe@example.com")
	require.NoError(f.t, err)
	b, err := order.NewBilling(name, document, phone, email, f.address())
	require.NoError(f.t, err)
	return b
}

// placeable returns a draft order with one item and every placement
// precondition satisfied.
func (f *fixture) placeable() *order.Order {
	f.t.Helper()
	o := f.draft()
	_, err := o.AddItem(f.product("100", true), f.quantity(1))
	require.NoError(f.t, err)
	require.NoError(f.t, o.ChangeShipping(f.shipping(), f.money("10"), f.now.AddDate(0, 0, 2)))
	require.NoError(f.t, o.ChangeBilling(f.billing()))
	require.NoError(f.t, o.ChangePaymentMethod(order.CreditCard))
	return o
}
