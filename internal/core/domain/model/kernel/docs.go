// Package kernel provides the shared value objects of the ordering domain.
// Every type in this package is immutable and validates its input in its
// constructor, so an invalid instance can never exist; aggregates that receive
// kernel values do not validate them again beyond rejecting zero values.
//
// The package includes:
//   - UUID and the typed identifiers OrderID, OrderItemID, CustomerID, ProductID
//   - IDGenerator and Clock, the capabilities aggregates receive through Env
//   - Money and Quantity, used for pricing and order totals
//   - LoyaltyPoints, a customer's non-decreasing points balance
//   - Email, Phone, Document, FullName, BirthDate, Address, ZipCode, ProductName
//
// Constructors report failures with the error types of internal/pkg/errs.
package kernel
