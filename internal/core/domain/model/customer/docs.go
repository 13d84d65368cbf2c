// Package customer provides the Customer aggregate of the ordering domain.
//
// Key business rules:
//   - A new customer starts with zero loyalty points and is registered now
//   - Loyalty points only grow, by strictly positive amounts
//   - Archiving anonymizes personal data irreversibly; an archived customer
//     rejects every further change with ArchivedError, archiving included
//
// Customers and orders reference each other only by identifier.
package customer
