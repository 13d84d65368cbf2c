package order

import (
	"iter"
	"slices"

	"ordering/internal/core/domain/model/kernel"
)

// Item is a line of an order. It snapshots the product name and unit price at
// the moment the product was added, so later catalog changes do not alter it.
//
// Items are created and changed only through their Order. Values returned by
// the order are copies; Item has no exported mutators.
type Item struct {
	id          kernel.OrderItemID
	orderID     kernel.OrderID
	productID   kernel.ProductID
	productName kernel.ProductName
	price       kernel.Money
	quantity    kernel.Quantity
}

// ID returns the line identifier.
func (i Item) ID() kernel.OrderItemID { return i.id }

// OrderID returns the identifier of the owning order.
func (i Item) OrderID() kernel.OrderID { return i.orderID }

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.ProductID { return i.productID }

// ProductName returns the product name captured when the item was added.
func (i Item) ProductName() kernel.ProductName { return i.productName }

// Price returns the unit price captured when the item was added.
func (i Item) Price() kernel.Money { return i.price }

// Quantity returns the number of units ordered.
func (i Item) Quantity() kernel.Quantity { return i.quantity }

// Subtotal returns price × quantity.
func (i Item) Subtotal() kernel.Money { return i.price.Multiply(i.quantity) }

func (i Item) withQuantity(quantity kernel.Quantity) Item {
	i.quantity = quantity
	return i
}

// Items is a read-only view over the lines of an order, in the order they
// were added. The view is a snapshot: later changes to the order are not
// reflected in a view obtained earlier.
type Items struct {
	items []Item
}

// Len returns the number of lines.
func (v Items) Len() int {
	return len(v.items)
}

// Get returns the line identified by id.
func (v Items) Get(id kernel.OrderItemID) (Item, bool) {
	for _, item := range v.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return Item{}, false
}

// All iterates over the lines.
//
// Example:
//
//	for item := range o.Items().All() {
//	    fmt.Println(item.ProductName(), item.Quantity())
//	}
func (v Items) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the lines. Changing the returned slice has
// no effect on the order.
func (v Items) Slice() []Item {
	return slices.Clone(v.items)
}
