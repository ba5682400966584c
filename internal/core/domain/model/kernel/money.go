package kernel

import (
	"fmt"

	"gofer/internal/pkg/errs"
)

// DefaultCurrency is the currency assumed when none is specified.
const DefaultCurrency = "usd"

// ErrNegativeAmount is returned when constructing a Money from a negative
// amount of minor units.
var ErrNegativeAmount = errs.NewValueIsInvalidError("amount must not be negative")

// Money is a value object representing a monetary amount in minor currency
// units (cents). Storing cents as int64 avoids floating-point rounding in fee
// arithmetic and matches the minor-unit contract of the payment gateway.
//
// The zero value is a valid zero amount. Money is immutable; arithmetic
// methods return new values.
//
// Example usage:
//
//	fee, _ := kernel.NewMoney(1000) // $10.00
//	total := fee.Add(extra)
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount of minor units.
// Returns ErrNegativeAmount for negative input.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustMoney creates a Money from minor units, panicking on negative input.
// Intended for constants and tests.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero monetary amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount as a decimal dollar string, e.g. "10.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
