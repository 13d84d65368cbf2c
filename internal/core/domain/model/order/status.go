package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// Every state declares the states it may be reached from, and a transition
// is allowed only when the current state is one of the target's predecessors.
//
// State transitions:
//
//	Draft ──> Placed ──> Paid ──> Ready
//	  │         │         │
//	  └─────────┴─────────┴──> Canceled
//
// Draft is initial only: no state leads back to it. Ready and Canceled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Items, billing, shipping and payment
	// details are collected while the order is a draft.
	Draft

	// Placed indicates the customer has submitted the order.
	Placed

	// Paid indicates payment for the order has been confirmed.
	Paid

	// Ready indicates the order has been prepared for delivery.
	Ready

	// Canceled indicates the order was abandoned before it became ready.
	Canceled
)

// predecessors maps every reachable status to the statuses it may be reached from.
//
//nolint:gochecknoglobals // static transition table
var predecessors = map[Status][]Status{
	Placed:   {Draft},
	Paid:     {Placed},
	Ready:    {Paid},
	Canceled: {Draft, Placed, Paid},
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Draft:    "Draft",
		Placed:   "Placed",
		Paid:     "Paid",
		Ready:    "Ready",
		Canceled: "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanChangeTo reports whether target may be reached from s.
//
// The lookup is pure: it reads only the static transition table.
//
// Example:
//
//	order.Draft.CanChangeTo(order.Placed)   // true
//	order.Paid.CanChangeTo(order.Draft)     // false
//	order.Draft.CanChangeTo(order.Canceled) // true
func (s Status) CanChangeTo(target Status) bool {
	for _, from := range predecessors[target] {
		if from == s {
			return true
		}
	}
	return false
}

// CannotChangeTo is the negation of CanChangeTo.
func (s Status) CannotChangeTo(target Status) bool {
	return !s.CanChangeTo(target)
}
