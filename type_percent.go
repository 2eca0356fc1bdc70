package captable

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is an ownership or vesting percentage. It keeps full decimal
// precision internally; String rounds half-up to two decimals, so rounding
// error never compounds across founders.
type Percent struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// percentOf returns part/whole*100, or zero when whole is not positive, so
// callers never divide by zero.
func percentOf(part, whole Quantity) Percent {
	if !whole.value.IsPositive() {
		return Percent{}
	}
	return Percent{value: part.value.Div(whole.value).Mul(hundred)}
}

func (p Percent) Sub(q Percent) Percent      { return Percent{value: p.value.Sub(q.value)} }
func (p Percent) Add(q Percent) Percent      { return Percent{value: p.value.Add(q.value)} }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }
func (p Percent) LessThan(q Percent) bool    { return p.value.LessThan(q.value) }
func (p Percent) IsZero() bool               { return p.value.IsZero() }
func (p Percent) Float64() float64           { return p.value.InexactFloat64() }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	precision := decimal.New(1, -4)
	return p.value.Sub(q.value).Abs().LessThan(precision)
}

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// SignedString returns the percentage with an explicit sign.
// 0 is represented as "-".
func (p Percent) SignedString() string {
	if p.value.Round(2).IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
