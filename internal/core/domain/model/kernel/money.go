package kernel

import (
	"fmt"

	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale int32 = 2

var (
	// MoneyMax and MoneyMin bound an amount so it fits the numeric(14,2) columns.
	MoneyMax = decimal.RequireFromString("999999999999.99")
	MoneyMin = MoneyMax.Neg()
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is an immutable monetary amount rounded to MoneyScale digits.
// Order prices, discounts and price adjustments are Money values. Money itself
// may be negative (a price adjustment can lower the total); the Order aggregate
// decides which of its amounts must not be.
//
// Example:
//
//	price, err := kernel.MoneyFromString("149.90")
//	if err != nil {
//	    return err
//	}
//	total := price.Sub(discount).Add(adjustment)
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

const (
	// moneyMaxIntegerDigits is the number of integer digits of MoneyMax.
	moneyMaxIntegerDigits = 12
	// moneyMinExponent bounds the fractional digits accepted before rounding.
	moneyMinExponent = -30
)

// NewMoney rounds amount to MoneyScale digits and checks it against
// [MoneyMin..MoneyMax].
//
// Coefficient digits and exponent are checked before rounding, so a value such
// as 1e10000000 is rejected without being expanded.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsZero() {
		return ZeroMoney(), nil
	}
	if err := checkMagnitude(amount); err != nil {
		return Money{}, err
	}

	rounded := amount.Round(MoneyScale)
	if rounded.GreaterThan(MoneyMax) || rounded.LessThan(MoneyMin) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", rounded.String(), MoneyMin.String(), MoneyMax.String())
	}

	return Money{
		amount: rounded,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func checkMagnitude(amount decimal.Decimal) error {
	exp := int64(amount.Exponent())
	if exp >= moneyMinExponent && int64(amount.NumDigits())+exp <= moneyMaxIntegerDigits+1 {
		return nil
	}

	value := fmt.Sprintf("%se%d", amount.Coefficient().String(), exp)
	return errs.NewValueIsOutOfRangeError("amount", value, MoneyMin.String(), MoneyMax.String())
}

// MoneyFromString parses a decimal string such as "1500", "99.5" or "-20.00".
func MoneyFromString(s string) (Money, error) {
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}

	return NewMoney(d)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate reports whether the Money went through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount), guard: guard.NewConstructorGuard()}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual compares amounts, ignoring representation differences such as "1.5" vs "1.50".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
