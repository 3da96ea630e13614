package successione

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the ledger is denominated in. There is no
// currency conversion anywhere in this module.
const Currency = money.EUR

// Money represents an exact monetary amount in the ledger currency.
//
// The zero value is zero euros, so an heir absent from a payment map simply
// contributes the zero Money.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from any usual numeric type.
func M[T float32 | float64 | int | int32 | int64](value T) Money {
	switch v := any(value).(type) {
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	}
	panic("unreachable")
}

// MoneyFromDecimal creates a Money from an exact decimal amount.
func MoneyFromDecimal(d decimal.Decimal) Money { return Money{value: d} }

func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool      { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                    { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                    { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money             { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money             { return Money{value: m.value.Sub(n.value)} }
func (m Money) Min(n Money) Money {
	if n.LessThan(m) {
		return n
	}
	return m
}

// Share returns the portion of m corresponding to a percentage share.
func (m Money) Share(p Percent) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(float64(p))).Div(decimal.NewFromInt(100))}
}

// Float64 returns the amount as a float, for chart scaling and numeric sorts.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

// String formats the amount with the currency symbol, e.g. "€1,200.50".
func (m Money) String() string {
	cur := *money.New(0, Currency).Currency()
	cents := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(cents.IntPart())
}

// SignedString is like String with an explicit sign. Zero is rendered as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount as a plain JSON number rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	cur := *money.New(0, Currency).Currency()
	return []byte(m.value.Round(int32(cur.Fraction)).String()), nil
}

// UnmarshalJSON reads a plain number, or a number in a string. Anything else
// is a format error.
func (m *Money) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			*m = Money{}
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*m = Money{value: d}
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	*m = Money{value: d}
	return nil
}
