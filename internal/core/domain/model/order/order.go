package order

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewDraftOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its items and is
// the only way to change them, and it guards the status machine together with
// the shipping, billing and payment preconditions of placement.
//
// Order follows these invariants:
//   - TotalAmount and TotalItems always equal the sums over the current items
//   - Status changes only along the transitions declared by Status
//   - Shipping, its cost and its expected delivery date are set together
//   - A failed operation leaves the order exactly as it was
//
// Order is not safe for concurrent use. Callers serialize access to a given
// instance, typically through optimistic locking at the persistence boundary.
type Order struct {
	id         kernel.OrderID
	customerID kernel.CustomerID
	status     Status

	// items keeps insertion order; item identifiers are unique.
	items       []Item
	totalAmount kernel.Money
	totalItems  int

	paymentMethod        PaymentMethod
	billing              *Billing
	shipping             *Shipping
	shippingCost         kernel.Money
	expectedDeliveryDate time.Time

	placedAt   *time.Time
	paidAt     *time.Time
	readyAt    *time.Time
	canceledAt *time.Time

	env           kernel.Env
	isConstructed bool
}

// NewDraftOrder creates an empty order in Draft status for the given customer.
// The order identifier is drawn from the configured IDGenerator.
//
// Example:
//
//	o, err := order.NewDraftOrder(customerID)
//	if err != nil {
//	    return err
//	}
//	itemID, err := o.AddItem(product, quantity)
func NewDraftOrder(customerID kernel.CustomerID, opts ...kernel.EnvOption) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	env := kernel.NewEnv(opts...)
	return &Order{
		id:            kernel.NewOrderID(env.IDs),
		customerID:    customerID,
		status:        Draft,
		totalAmount:   kernel.ZeroMoney(),
		shippingCost:  kernel.ZeroMoney(),
		env:           env,
		isConstructed: true,
	}, nil
}

// ItemState is the persisted form of an order line.
type ItemState struct {
	ID          kernel.OrderItemID
	ProductID   kernel.ProductID
	ProductName kernel.ProductName
	Price       kernel.Money
	Quantity    kernel.Quantity
}

// State is the persisted form of an order. Totals are not part of it: they are
// always derived from Items.
//
// PaymentMethodUnknown, a nil Billing and a nil Shipping mean "not set yet".
// ShippingCost and ExpectedDeliveryDate are read only when Shipping is set.
type State struct {
	ID                   kernel.OrderID
	CustomerID           kernel.CustomerID
	Status               Status
	Items                []ItemState
	PaymentMethod        PaymentMethod
	Billing              *Billing
	Shipping             *Shipping
	ShippingCost         kernel.Money
	ExpectedDeliveryDate time.Time
	PlacedAt             *time.Time
	PaidAt               *time.Time
	ReadyAt              *time.Time
	CanceledAt           *time.Time
}

// RestoreOrder reconstructs an Order from its persisted state. Every field is
// validated and all failures are reported together. Totals are recomputed
// from the restored items.
//
// The state must be reachable through the order's own operations:
//   - each lifecycle timestamp is set exactly when Status implies it
//     (a canceled order may or may not have been placed and paid)
//   - an order that was placed has items, shipping, billing and a payment method
func RestoreOrder(state State, opts ...kernel.EnvOption) (*Order, error) {
	o := &Order{
		status:        state.Status,
		totalAmount:   kernel.ZeroMoney(),
		shippingCost:  kernel.ZeroMoney(),
		placedAt:      cloneTime(state.PlacedAt),
		paidAt:        cloneTime(state.PaidAt),
		readyAt:       cloneTime(state.ReadyAt),
		canceledAt:    cloneTime(state.CanceledAt),
		env:           kernel.NewEnv(opts...),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(state.ID),
		o.setCustomerID(state.CustomerID),
		restoreLifecycle(state),
		o.restoreItems(state.ID, state.Items),
		o.restorePaymentMethod(state.PaymentMethod),
		o.restoreBilling(state.Billing),
		o.restoreShipping(state.Shipping, state.ShippingCost, state.ExpectedDeliveryDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State returns a snapshot of the order suitable for persistence.
func (o *Order) State() State {
	items := make([]ItemState, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemState{
			ID:          item.id,
			ProductID:   item.productID,
			ProductName: item.productName,
			Price:       item.price,
			Quantity:    item.quantity,
		})
	}

	return State{
		ID:                   o.id,
		CustomerID:           o.customerID,
		Status:               o.status,
		Items:                items,
		PaymentMethod:        o.paymentMethod,
		Billing:              cloneValue(o.billing),
		Shipping:             cloneValue(o.shipping),
		ShippingCost:         o.shippingCost,
		ExpectedDeliveryDate: o.expectedDeliveryDate,
		PlacedAt:             cloneTime(o.placedAt),
		PaidAt:               cloneTime(o.paidAt),
		ReadyAt:              cloneTime(o.readyAt),
		CanceledAt:           cloneTime(o.canceledAt),
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// CustomerID returns the identifier of the customer who owns the order.
func (o *Order) CustomerID() kernel.CustomerID { return o.customerID }

// Status returns the current status of the order.
func (o *Order) Status() Status { return o.status }

// Items returns a read-only snapshot of the order lines.
func (o *Order) Items() Items { return Items{items: slices.Clone(o.items)} }

// TotalAmount returns the sum of price × quantity over all items.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// TotalItems returns the sum of quantities over all items.
func (o *Order) TotalItems() int { return o.totalItems }

// PaymentMethod returns the chosen payment method, if any.
func (o *Order) PaymentMethod() (PaymentMethod, bool) {
	return o.paymentMethod, o.paymentMethod != PaymentMethodUnknown
}

// Billing returns the billing data, if set.
func (o *Order) Billing() (Billing, bool) {
	if o.billing == nil {
		return Billing{}, false
	}
	return *o.billing, true
}

// Shipping returns the shipping data, if set.
func (o *Order) Shipping() (Shipping, bool) {
	if o.shipping == nil {
		return Shipping{}, false
	}
	return *o.shipping, true
}

// ShippingCost returns the shipping cost, 0.00 until shipping is set.
func (o *Order) ShippingCost() kernel.Money { return o.shippingCost }

// ExpectedDeliveryDate returns the expected delivery date, the zero time until
// shipping is set.
func (o *Order) ExpectedDeliveryDate() time.Time { return o.expectedDeliveryDate }

// PlacedAt returns when the order was placed, nil before that.
func (o *Order) PlacedAt() *time.Time { return cloneTime(o.placedAt) }

// PaidAt returns when the order was paid, nil before that.
func (o *Order) PaidAt() *time.Time { return cloneTime(o.paidAt) }

// ReadyAt returns when the order became ready, nil before that.
func (o *Order) ReadyAt() *time.Time { return cloneTime(o.readyAt) }

// CanceledAt returns when the order was canceled, nil unless it was.
func (o *Order) CanceledAt() *time.Time { return cloneTime(o.canceledAt) }

// IsDraft reports whether the order is still a draft.
func (o *Order) IsDraft() bool { return o.status == Draft }

// IsPlaced reports whether the order has been placed and not yet paid.
func (o *Order) IsPlaced() bool { return o.status == Placed }

// IsPaid reports whether the order has been paid and is not yet ready.
func (o *Order) IsPaid() bool { return o.status == Paid }

// IsReady reports whether the order is ready.
func (o *Order) IsReady() bool { return o.status == Ready }

// IsCanceled reports whether the order was canceled.
func (o *Order) IsCanceled() bool { return o.status == Canceled }

// AddItem adds quantity units of product as a new line and recalculates the
// totals. The product name and price are copied into the line.
//
// AddItem does not look at the status: whether lines may still be added is
// left to the caller.
//
// Returns:
//   - the identifier of the new line
//   - ProductOutOfStockError when the product is not in stock
//   - a validation error when product or quantity were not constructed
func (o *Order) AddItem(product Product, quantity kernel.Quantity) (kernel.OrderItemID, error) {
	if err := o.Validate(); err != nil {
		return kernel.OrderItemID{}, err
	}
	if err := errors.Join(product.Validate(), quantity.Validate()); err != nil {
		return kernel.OrderItemID{}, err
	}
	if !product.InStock() {
		return kernel.OrderItemID{}, &ProductOutOfStockError{ProductID: product.ID()}
	}

	item := Item{
		id:          kernel.NewOrderItemID(o.env.IDs),
		orderID:     o.id,
		productID:   product.ID(),
		productName: product.Name(),
		price:       product.Price(),
		quantity:    quantity,
	}
	if err := o.replaceItems(append(slices.Clone(o.items), item)); err != nil {
		return kernel.OrderItemID{}, err
	}

	return item.id, nil
}

// ChangeItemQuantity replaces the quantity of the line identified by itemID
// and recalculates the totals.
func (o *Order) ChangeItemQuantity(itemID kernel.OrderItemID, quantity kernel.Quantity) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := quantity.Validate(); err != nil {
		return err
	}

	idx, err := o.indexOf(itemID)
	if err != nil {
		return err
	}

	items := slices.Clone(o.items)
	items[idx] = items[idx].withQuantity(quantity)
	return o.replaceItems(items)
}

// RemoveItem deletes the line identified by itemID and recalculates the totals.
// An order that has been placed keeps at least one line: removing its last
// line fails with ErrLastItemOfPlacedOrder.
func (o *Order) RemoveItem(itemID kernel.OrderItemID) error {
	if err := o.Validate(); err != nil {
		return err
	}

	idx, err := o.indexOf(itemID)
	if err != nil {
		return err
	}
	if o.placedAt != nil && len(o.items) == 1 {
		return fmt.Errorf("%w: order %s, item %s", ErrLastItemOfPlacedOrder, o.id, itemID)
	}

	return o.replaceItems(slices.Delete(slices.Clone(o.items), idx, idx+1))
}

// ChangePaymentMethod sets the payment method.
func (o *Order) ChangePaymentMethod(method PaymentMethod) error {
	if err := errors.Join(o.Validate(), method.Validate()); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

// ChangeBilling sets the billing data.
func (o *Order) ChangeBilling(billing Billing) error {
	if err := errors.Join(o.Validate(), billing.Validate()); err != nil {
		return err
	}
	o.billing = &billing
	return nil
}

// ChangeShipping sets the shipping data, its cost and the expected delivery
// date in one step. The time of day of expectedDeliveryDate is dropped.
//
// Returns:
//   - InvalidShippingDeliveryDateError when the date is before today
//   - a validation error when shipping or cost were not constructed or the date is zero
//
// On error none of the three fields change.
func (o *Order) ChangeShipping(shipping Shipping, cost kernel.Money, expectedDeliveryDate time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := errors.Join(shipping.Validate(), cost.Validate()); err != nil {
		return err
	}
	if expectedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}

	today := o.env.Today()
	date := kernel.DateOf(expectedDeliveryDate.In(today.Location()))
	if date.Before(today) {
		return &InvalidShippingDeliveryDateError{ExpectedDeliveryDate: date, Today: today}
	}

	o.shipping = &shipping
	o.shippingCost = cost
	o.expectedDeliveryDate = date
	return nil
}

// Place submits the order: Draft → Placed.
//
// Preconditions are checked in this order and the first failure is returned
// as a CannotBePlacedError:
//  1. at least one item (ErrNoItems)
//  2. shipping set (ErrNoShipping)
//  3. billing set (ErrNoBilling)
//  4. payment method set (ErrNoPaymentMethod)
//
// Then the status machine is consulted; a non-draft order yields
// StatusCannotBeChangedError. On success the placement time is recorded.
func (o *Order) Place() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if reasons := missingPlacementPreconditions(
		len(o.items), o.shipping != nil, o.billing != nil, o.paymentMethod,
	); len(reasons) > 0 {
		return &CannotBePlacedError{OrderID: o.id, Reason: reasons[0]}
	}

	return o.changeStatus(Placed, &o.placedAt)
}

// MarkAsPaid confirms payment: Placed → Paid, recording the payment time.
func (o *Order) MarkAsPaid() error {
	return o.changeStatus(Paid, &o.paidAt)
}

// MarkAsReady marks the order as prepared: Paid → Ready, recording the time.
func (o *Order) MarkAsReady() error {
	return o.changeStatus(Ready, &o.readyAt)
}

// Cancel abandons the order from Draft, Placed or Paid, recording the time.
func (o *Order) Cancel() error {
	return o.changeStatus(Canceled, &o.canceledAt)
}

// LogValue implements slog.LogValuer.
func (o *Order) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", o.id.String()),
		slog.String("customer_id", o.customerID.String()),
		slog.String("status", o.status.String()),
		slog.Int("items", len(o.items)),
		slog.Int("total_items", o.totalItems),
		slog.String("total_amount", o.totalAmount.String()),
	)
}

func (o *Order) changeStatus(target Status, at **time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status.CannotChangeTo(target) {
		return &StatusCannotBeChangedError{OrderID: o.id, Current: o.status, Target: target}
	}

	now := o.env.Clock.Now()
	o.status = target
	*at = &now
	return nil
}

// missingPlacementPreconditions lists the unmet placement preconditions in
// the order Place checks them.
func missingPlacementPreconditions(items int, hasShipping, hasBilling bool, method PaymentMethod) []error {
	var reasons []error
	if items == 0 {
		reasons = append(reasons, ErrNoItems)
	}
	if !hasShipping {
		reasons = append(reasons, ErrNoShipping)
	}
	if !hasBilling {
		reasons = append(reasons, ErrNoBilling)
	}
	if method == PaymentMethodUnknown {
		reasons = append(reasons, ErrNoPaymentMethod)
	}
	return reasons
}

func (o *Order) indexOf(itemID kernel.OrderItemID) (int, error) {
	idx := slices.IndexFunc(o.items, func(item Item) bool {
		return item.id.IsEqual(itemID)
	})
	if idx < 0 {
		return 0, &DoesNotContainItemError{OrderID: o.id, ItemID: itemID}
	}
	return idx, nil
}

// replaceItems swaps in items together with their totals. It is the only
// place items change, so the totals never go stale. When the item count does
// not fit in an int nothing changes.
func (o *Order) replaceItems(items []Item) error {
	amount := kernel.ZeroMoney()
	count := 0
	for _, item := range items {
		quantity := item.quantity.Value()
		if quantity > math.MaxInt-count {
			return errs.NewValueIsOutOfRangeError("totalItems", quantity, kernel.QuantityMin, math.MaxInt-count)
		}
		amount = amount.Add(item.Subtotal())
		count += quantity
	}

	o.items = items
	o.totalAmount = amount
	o.totalItems = count
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) restoreItems(orderID kernel.OrderID, states []ItemState) error {
	items := make([]Item, 0, len(states))
	var errList []error
	for i, state := range states {
		err := errors.Join(
			state.ID.Validate(),
			state.ProductID.Validate(),
			state.ProductName.Validate(),
			state.Price.Validate(),
			state.Quantity.Validate(),
		)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		if slices.ContainsFunc(items, func(item Item) bool { return item.id.IsEqual(state.ID) }) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("item %s is duplicated", state.ID)))
			continue
		}
		items = append(items, Item{
			id:          state.ID,
			orderID:     orderID,
			productID:   state.ProductID,
			productName: state.ProductName,
			price:       state.Price,
			quantity:    state.Quantity,
		})
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	return o.replaceItems(items)
}

// restoreLifecycle checks that the status, the lifecycle timestamps and the
// placement data of state agree with each other.
func restoreLifecycle(state State) error {
	if err := state.Status.Validate(); err != nil {
		return err
	}

	status := state.Status
	stamps := []struct {
		name     string
		at       *time.Time
		required bool
		allowed  bool
	}{
		{
			name:     "placedAt",
			at:       state.PlacedAt,
			required: status == Placed || status == Paid || status == Ready,
			allowed:  status != Draft,
		},
		{
			name:     "paidAt",
			at:       state.PaidAt,
			required: status == Paid || status == Ready,
			allowed:  status == Paid || status == Ready || (status == Canceled && state.PlacedAt != nil),
		},
		{name: "readyAt", at: state.ReadyAt, required: status == Ready, allowed: status == Ready},
		{name: "canceledAt", at: state.CanceledAt, required: status == Canceled, allowed: status == Canceled},
	}

	var errList []error
	for _, stamp := range stamps {
		switch {
		case stamp.at == nil && stamp.required:
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(
				stamp.name, fmt.Errorf("order is %s", status)))
		case stamp.at != nil && !stamp.allowed:
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				stamp.name, fmt.Errorf("%s order cannot have %s", status, stamp.name)))
		}
	}

	if state.PlacedAt != nil || status == Placed || status == Paid || status == Ready {
		for _, reason := range missingPlacementPreconditions(
			len(state.Items), state.Shipping != nil, state.Billing != nil, state.PaymentMethod,
		) {
			errList = append(errList, &CannotBePlacedError{OrderID: state.ID, Reason: reason})
		}
	}

	return errors.Join(errList...)
}

func (o *Order) restorePaymentMethod(method PaymentMethod) error {
	if method == PaymentMethodUnknown {
		return nil
	}
	return o.ChangePaymentMethod(method)
}

func (o *Order) restoreBilling(billing *Billing) error {
	if billing == nil {
		return nil
	}
	return o.ChangeBilling(*billing)
}

// restoreShipping skips the delivery date check: a persisted date may be in
// the past by now.
func (o *Order) restoreShipping(shipping *Shipping, cost kernel.Money, expectedDeliveryDate time.Time) error {
	if shipping == nil {
		return nil
	}
	if err := errors.Join(shipping.Validate(), cost.Validate()); err != nil {
		return err
	}
	if expectedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}

	o.shipping = cloneValue(shipping)
	o.shippingCost = cost
	o.expectedDeliveryDate = kernel.DateOf(expectedDeliveryDate)
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	return cloneValue(t)
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
