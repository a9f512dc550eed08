package kernel

import (
	"fmt"

	"sewrica/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (cents). Amounts are never negative; subtraction that would go below
// zero is rejected rather than wrapped.
//
// The zero value is a valid amount of zero, so order totals and change can be
// accumulated starting from Money{}.
type Money struct {
	amount int64
}

// NewMoney creates a Money from an amount in minor currency units.
// Negative amounts are invalid.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns m minus other. Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is less than %d", m.amount, other.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MultiplyBy returns the amount multiplied by a non-negative factor,
// used to price an item line from its unit price and quantity.
func (m Money) MultiplyBy(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}
	return Money{amount: m.amount * int64(factor)}, nil
}

// IsGreaterOrEqual reports whether m covers other.
func (m Money) IsGreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount as a decimal with two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
