package partnership

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency a book is presented in unless configured otherwise.
const DefaultCurrency = "USD"

// centPlaces is the number of decimal places kept when a value is presented.
const centPlaces = 2

// Money represents an exact monetary value in the book's single currency.
//
// Arithmetic on Money never rounds. Rounding to the cent, ties away from zero,
// only happens at the presentation boundary: Round, String, Format and JSON.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(decimal.NewFromInt(int64(q)))} }

// Half returns exactly half of m.
func (m Money) Half() Money { return Money{value: m.value.Mul(decimal.New(5, -1))} }

// Round returns m rounded to the nearest cent, ties away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(centPlaces)} }

// String returns the value rounded to the cent with exactly two decimals, e.g. "-101.50".
func (m Money) String() string { return m.value.StringFixed(centPlaces) }

// SignedString is like String but always carries a sign for non zero values.
func (m Money) SignedString() string {
	r := m.Round()
	if r.IsPositive() {
		return "+" + r.String()
	}
	return r.String()
}

// currency returns the full currency for code.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// Format returns the value rounded to the cent and formatted for the currency
// code, e.g. "$1,234.50" for USD.
func (m Money) Format(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	cur := currency(code)
	minor := m.Round().value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// MarshalJSON writes the value rounded to the cent as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON reads a JSON number or numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
