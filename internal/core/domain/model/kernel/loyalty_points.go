package kernel

import (
	"math"
	"strconv"

	"ordering/internal/pkg/errs"
)

// LoyaltyPoints is a non-negative counter of points a customer has earned.
// The counter only grows: Add accepts strictly positive deltas.
//
// The zero value is a valid balance of 0 points.
type LoyaltyPoints struct {
	value int
}

// NewLoyaltyPoints returns a balance of value points, rejecting negative balances.
func NewLoyaltyPoints(value int) (LoyaltyPoints, error) {
	if value < 0 {
		return LoyaltyPoints{}, errs.NewValueIsOutOfRangeError("loyaltyPoints", value, 0, math.MaxInt)
	}
	return LoyaltyPoints{value: value}, nil
}

// Value returns the balance.
func (p LoyaltyPoints) Value() int {
	return p.value
}

// Add returns the balance increased by points. Zero and negative deltas are
// rejected and leave p untouched.
func (p LoyaltyPoints) Add(points int) (LoyaltyPoints, error) {
	if points <= 0 || points > math.MaxInt-p.value {
		return p, errs.NewValueIsOutOfRangeError("loyaltyPoints", points, 1, math.MaxInt-p.value)
	}
	return LoyaltyPoints{value: p.value + points}, nil
}

// IsEqual compares balances by value.
func (p LoyaltyPoints) IsEqual(other LoyaltyPoints) bool {
	return p.value == other.value
}

func (p LoyaltyPoints) String() string {
	return strconv.Itoa(p.value)
}
