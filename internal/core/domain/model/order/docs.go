// Package order provides the Order aggregate of the ordering domain.
//
// The package includes:
//   - Order: the aggregate root that owns the order lines, totals and lifecycle
//   - Status: the lifecycle state machine with its static transition table
//   - Item and Items: an order line and the read-only view over all lines
//   - Product, Billing, Shipping and PaymentMethod: the inputs an order collects
//
// Key business rules:
//   - Totals are recomputed on every change to the lines and are never set directly
//   - Out-of-stock products cannot be added
//   - An order is placed only with items, shipping, billing and a payment method
//   - Status follows Draft -> Placed -> Paid -> Ready; Draft, Placed and Paid
//     orders can be canceled
//   - The expected delivery date cannot be in the past
//
// Domain-rule violations are reported as typed errors (StatusCannotBeChangedError,
// CannotBePlacedError, DoesNotContainItemError, ProductOutOfStockError,
// InvalidShippingDeliveryDateError), each matching a package sentinel with errors.Is.
package order
