package kernel

import (
	"math"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// QuantityMin is the smallest valid quantity.
const QuantityMin = 1

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a strictly positive number of units of a product.
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity returns a Quantity, rejecting zero and negative values.
func NewQuantity(value int) (Quantity, error) {
	q := Quantity{
		guard: guard.NewConstructorGuard(),
	}
	if err := q.setValue(value); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// Validate reports whether q was built by NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the number of units.
func (q Quantity) Value() int {
	return q.value
}

// Add returns q + other. A sum that does not fit in an int is rejected and
// q is returned unchanged.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if other.value > math.MaxInt-q.value {
		return q, errs.NewValueIsOutOfRangeError("quantity", other.value, QuantityMin, math.MaxInt-q.value)
	}
	return Quantity{
		value: q.value + other.value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

func (q *Quantity) setValue(value int) error {
	if value < QuantityMin {
		return errs.NewValueIsOutOfRangeError("quantity", value, QuantityMin, math.MaxInt)
	}
	q.value = value
	return nil
}
