package pocketbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the ISO 4217 code used to format amounts for display.
// The ledger itself is single-currency; this only affects rendering.
var DisplayCurrency = "USD"

// Amount represents a non-negative-by-convention monetary value with exact
// decimal arithmetic. Persistence rounds to 2 decimal places.
type Amount struct {
	value decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// A creates an Amount from any common numeric type.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal string into an Amount. It rejects anything
// that is not a finite non-negative number.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("not a number: %q", s)}
	}
	if d.IsNegative() {
		return Amount{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("must not be negative: %q", s)}
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Half() Amount        { return Amount{value: a.value.Div(decimal.NewFromInt(2))} }

// currency returns the full display currency.
func (a Amount) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, DisplayCurrency).Currency()
}

// String returns the amount formatted in the display currency.
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the formatted amount with an explicit sign.
// Zero is represented as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return "-" + a.Neg().String()
}

// StringFixed returns the plain 2-decimal representation, the form used in
// the persisted blob.
func (a Amount) StringFixed() string { return a.value.StringFixed(2) }

// Float64 returns an approximate float value, for payloads where exactness
// is not required (insight statements).
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// PercentOf returns 100*a/target, clamped to [0, 100]. A non-positive target
// yields 0.
func (a Amount) PercentOf(target Amount) Percent {
	if !target.IsPositive() {
		return 0
	}
	p := a.value.Div(target.value).Mul(decimal.NewFromInt(100))
	if p.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	if p.IsNegative() {
		return 0
	}
	return Percent(p.InexactFloat64())
}
