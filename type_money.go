package dashboard

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used when none is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value.
//
// The currency is only a label used for formatting: amounts are never
// converted. An empty currency is weak and adopts the currency of the other
// operand in binary operations.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency.
func M[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// format returns the go-money definition of the currency, never nil.
func (m Money) format() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// KnownCurrency reports whether code is an ISO 4217 code that money amounts
// can be formatted in.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// String returns the string representation of the money value, formatted
// according to its currency (e.g. "$1,000.00").
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.format()
	if !KnownCurrency(m.cur) {
		return m.value.StringFixed(2) + " " + m.cur
	}
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// In returns a copy of m labelled with currency, unless m already has one.
func (m Money) In(currency string) Money {
	if m.cur == "" {
		m.cur = currency
	}
	return m
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the money as an object with an optional currency and
// the exact amount.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
