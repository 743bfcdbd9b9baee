package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount with
// exact decimal arithmetic. It wraps shopspring/decimal so that order totals
// and item subtotals never accumulate floating-point rounding error.
//
// Money is immutable: arithmetic methods return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("25000.00")
//	subtotal := price.MultiplyInt(2) // exactly 50000.00
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the additive identity, an amount of exactly 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "25000.00".
// Returns an error if the string is not a valid non-negative decimal.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the exact sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyInt returns the exact product of the amount and an integer factor.
func (m Money) MultiplyInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality, ignoring exponent
// representation (50000 equals 50000.00).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with two decimal places, e.g. "50000.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
