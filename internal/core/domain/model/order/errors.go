package order

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Sentinel errors. Every typed error below unwraps to one of them.
var (
	ErrStatusCannotBeChanged       = errors.New("order status cannot be changed")
	ErrCannotBePlaced              = errors.New("order cannot be placed")
	ErrDoesNotContainItem          = errors.New("order does not contain item")
	ErrProductOutOfStock           = errors.New("product is out of stock")
	ErrInvalidShippingDeliveryDate = errors.New("invalid shipping delivery date")
	ErrLastItemOfPlacedOrder       = errors.New("placed order must keep at least one item")
)

// Reasons reported by CannotBePlacedError, in the order Place checks them.
var (
	ErrNoItems         = errors.New("order has no items")
	ErrNoShipping      = errors.New("order has no shipping")
	ErrNoBilling       = errors.New("order has no billing")
	ErrNoPaymentMethod = errors.New("order has no payment method")
)

// StatusCannotBeChangedError reports a transition the status machine does not allow.
type StatusCannotBeChangedError struct {
	OrderID kernel.OrderID
	Current Status
	Target  Status
}

func (e *StatusCannotBeChangedError) Error() string {
	return fmt.Sprintf("%s: order %s from %s to %s", ErrStatusCannotBeChanged, e.OrderID, e.Current, e.Target)
}

func (e *StatusCannotBeChangedError) Unwrap() error {
	return ErrStatusCannotBeChanged
}

// LogValue implements slog.LogValuer.
func (e *StatusCannotBeChangedError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("order_id", e.OrderID.String()),
		slog.String("current", e.Current.String()),
		slog.String("target", e.Target.String()),
	)
}

// CannotBePlacedError reports a missing precondition for Place. Reason is one
// of ErrNoItems, ErrNoShipping, ErrNoBilling or ErrNoPaymentMethod, so both
//
//	errors.Is(err, order.ErrCannotBePlaced)
//	errors.Is(err, order.ErrNoBilling)
//
// hold for a missing billing.
type CannotBePlacedError struct {
	OrderID kernel.OrderID
	Reason  error
}

func (e *CannotBePlacedError) Error() string {
	return fmt.Sprintf("%s: order %s: %v", ErrCannotBePlaced, e.OrderID, e.Reason)
}

func (e *CannotBePlacedError) Unwrap() []error {
	return []error{ErrCannotBePlaced, e.Reason}
}

// LogValue implements slog.LogValuer.
func (e *CannotBePlacedError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("order_id", e.OrderID.String()),
		slog.String("reason", e.Reason.Error()),
	)
}

// DoesNotContainItemError reports a lookup of an item the order does not hold.
// It matches both ErrDoesNotContainItem and errs.ErrObjectNotFound.
type DoesNotContainItemError struct {
	OrderID kernel.OrderID
	ItemID  kernel.OrderItemID
}

func (e *DoesNotContainItemError) Error() string {
	return fmt.Sprintf("%s: order %s, item %s", ErrDoesNotContainItem, e.OrderID, e.ItemID)
}

func (e *DoesNotContainItemError) Unwrap() []error {
	return []error{ErrDoesNotContainItem, errs.ErrObjectNotFound}
}

// LogValue implements slog.LogValuer.
func (e *DoesNotContainItemError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("order_id", e.OrderID.String()),
		slog.String("item_id", e.ItemID.String()),
	)
}

// ProductOutOfStockError reports an attempt to order a product that is not in stock.
type ProductOutOfStockError struct {
	ProductID kernel.ProductID
}

func (e *ProductOutOfStockError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductOutOfStock, e.ProductID)
}

func (e *ProductOutOfStockError) Unwrap() error {
	return ErrProductOutOfStock
}

// InvalidShippingDeliveryDateError reports an expected delivery date before today.
type InvalidShippingDeliveryDateError struct {
	ExpectedDeliveryDate time.Time
	Today                time.Time
}

func (e *InvalidShippingDeliveryDateError) Error() string {
	return fmt.Sprintf("%s: %s is before %s", ErrInvalidShippingDeliveryDate,
		e.ExpectedDeliveryDate.Format(time.DateOnly), e.Today.Format(time.DateOnly))
}

func (e *InvalidShippingDeliveryDateError) Unwrap() error {
	return ErrInvalidShippingDeliveryDate
}
