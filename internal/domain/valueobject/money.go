// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a monetary currency using ISO 4217 codes.
type Currency string

// Supported currencies in the system.
const (
	CurrencyKES Currency = "KES" // Kenyan Shilling
	CurrencyUSD Currency = "USD" // US Dollar
	CurrencyEUR Currency = "EUR" // Euro
	CurrencyGBP Currency = "GBP" // British Pound
	CurrencyUGX Currency = "UGX" // Ugandan Shilling
	CurrencyTZS Currency = "TZS" // Tanzanian Shilling
)

// Money errors define domain-specific error conditions.
var (
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrCurrencyMismatch = errors.New("currency mismatch in operation")
	ErrInvalidAmount    = errors.New("invalid money amount")
)

// moneyExponent is the number of decimal places money is quantized to.
const moneyExponent = 2

// Money represents a monetary value with currency.
// Amounts are decimal fixed-point (never binary floating point) so the
// engine's rounding guarantees hold across process boundaries.
//
// All amounts that finalize money are quantized to 2 decimal places using
// round-half-up; quantizing an already quantized amount is a no-op.
//
// Example usage:
//
//	price := valueobject.MustMoneyFromString("19.99", valueobject.CurrencyKES)
//	total := price.MultiplyInt(3) // KES 59.97
type Money struct {
	// Amount is the decimal amount (e.g., 19.99).
	Amount decimal.Decimal `json:"amount"`

	// Currency using ISO 4217 code.
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Decimal amount
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyFromString creates a new Money from a decimal string.
//
// Parameters:
//   - amount: Decimal string (e.g., "19.99")
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
//   - error: ErrInvalidAmount if the string is not a valid decimal
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoney(d, currency), nil
}

// MustMoneyFromString creates a new Money from a decimal string and panics
// on a malformed amount. Intended for seed data and tests.
//
// Parameters:
//   - amount: Decimal string (e.g., "19.99")
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func MustMoneyFromString(amount string, currency Currency) Money {
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero-value Money in the specified currency.
//
// Parameters:
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: Zero Money in the specified currency
func Zero(currency Currency) Money {
	return NewMoney(decimal.Zero, currency)
}

// Quantize returns the Money rounded to 2 decimal places using
// round-half-up. This is the single rounding mode used everywhere money
// is finalized in the engine.
//
// Returns:
//   - Money: the quantized Money value
func (m Money) Quantize() Money {
	return NewMoney(m.Amount.Round(moneyExponent), m.Currency)
}

// Add adds two Money values and returns a new Money.
// A zero Money blends with any currency, so running sums can start from
// the zero value before a currency is known.
//
// Parameters:
//   - other: the Money to add
//
// Returns:
//   - Money: the sum of the two Money values
//
// Note: Panics if two non-zero currencies do not match. Use AddSafe for
// error handling.
func (m Money) Add(other Money) Money {
	sum, err := m.AddSafe(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// AddSafe adds two Money values with error handling.
//
// Parameters:
//   - other: the Money to add
//
// Returns:
//   - Money: the sum of the two Money values
//   - error: ErrCurrencyMismatch if two non-zero currencies differ
func (m Money) AddSafe(other Money) (Money, error) {
	if m.Currency != other.Currency && !m.IsZero() && !other.IsZero() {
		return Money{}, ErrCurrencyMismatch
	}
	currency := m.Currency
	if m.IsZero() && other.Currency != "" {
		currency = other.Currency
	}
	return NewMoney(m.Amount.Add(other.Amount), currency), nil
}

// Multiply multiplies the Money amount by a decimal factor.
//
// Parameters:
//   - factor: the multiplication factor
//
// Returns:
//   - Money: the multiplied Money value
func (m Money) Multiply(factor decimal.Decimal) Money {
	return NewMoney(m.Amount.Mul(factor), m.Currency)
}

// MultiplyInt multiplies the Money amount by an integer factor.
// Useful for sheet and copy counts.
//
// Parameters:
//   - factor: the multiplication factor
//
// Returns:
//   - Money: the multiplied Money value
func (m Money) MultiplyInt(factor int) Money {
	return m.Multiply(decimal.NewFromInt(int64(factor)))
}

// IsZero checks if the Money amount is zero.
//
// Returns:
//   - bool: true if amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive checks if the Money amount is positive.
//
// Returns:
//   - bool: true if amount is greater than zero
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// Equals checks if two Money values are equal in amount and currency.
//
// Parameters:
//   - other: the Money to compare
//
// Returns:
//   - bool: true if both Money values are equal
func (m Money) Equals(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// LessThan checks if this Money is less than another Money.
//
// Parameters:
//   - other: the Money to compare (must have same currency)
//
// Returns:
//   - bool: true if this Money is less
func (m Money) LessThan(other Money) bool {
	if m.Currency != other.Currency && !m.IsZero() && !other.IsZero() {
		panic(ErrCurrencyMismatch)
	}
	return m.Amount.LessThan(other.Amount)
}

// Max returns the larger of this Money and other.
// Used for minimum-charge enforcement.
//
// Parameters:
//   - other: the Money to compare (must have same currency)
//
// Returns:
//   - Money: the larger of the two values
func (m Money) Max(other Money) Money {
	if m.LessThan(other) {
		return other
	}
	return m
}

// String returns a formatted string representation of the Money.
//
// Returns:
//   - string: Formatted string (e.g., "KES 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Quantize().Amount.StringFixed(moneyExponent))
}

// Format returns the amount with thousand separators and the currency code,
// matching the shop's quote documents (e.g., "KES 1,234.50").
//
// Returns:
//   - string: formatted amount with currency code
func (m Money) Format() string {
	fixed := m.Quantize().Amount.StringFixed(moneyExponent)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s.%s", m.Currency, sign, b.String(), fracPart)
}
