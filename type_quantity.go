package dashboard

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// number are the Go types accepted by the Q and M constructors.
type number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64 | decimal.Decimal
}

// newDecimal converts any number to a decimal, floats are converted using
// their shortest representation.
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.CanInt():
		return decimal.NewFromInt(rv.Int())
	case rv.CanUint():
		return decimal.NewFromUint64(rv.Uint())
	default:
		return decimal.NewFromFloat(rv.Float())
	}
}

// Quantity is a number of units of a security.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a quantity of value units.
func Q[T number](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }
func (q Quantity) String() string              { return q.value.String() }

// MarshalJSON writes the quantity as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }

// UnmarshalJSON reads a JSON number or a quoted number.
func (q *Quantity) UnmarshalJSON(data []byte) error { return q.value.UnmarshalJSON(data) }
