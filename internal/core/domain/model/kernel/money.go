package kernel

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every Money amount carries.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromDecimal or ZeroMoney")

// Money is a non-negative decimal amount with a fixed scale of two places.
// Amounts are rounded half away from zero on construction, so "100", "100.0"
// and "100.00" build equal values.
//
// Money is immutable: Add and Multiply return new values. Neither operation
// can produce a negative amount because both operands are non-negative.
//
// Example:
//
//	price, err := kernel.NewMoney("100")
//	if err != nil {
//	    return err
//	}
//	qty, _ := kernel.NewQuantity(3)
//	fmt.Println(price.Multiply(qty)) // 300.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney parses amount (for example "1500" or "19.90") into Money.
// Blank, unparsable and negative amounts are rejected.
func NewMoney(amount string) (Money, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Money{}, errs.NewValueIsRequiredError("money")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}

	return MoneyFromDecimal(d)
}

// MoneyFromDecimal builds Money from an already parsed decimal.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero.Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate reports whether m was built by one of the constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount).Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// Multiply returns m × quantity.
func (m Money) Multiply(quantity Quantity) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity.Value()))).Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares amounts by value, ignoring representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal exposes the amount for persistence and arithmetic outside the domain.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", amount.String()))
	}
	m.amount = amount.Round(MoneyScale)
	return nil
}
