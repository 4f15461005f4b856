package nivesh

import "github.com/shopspring/decimal"

// Percent is an allocation weight expressed as a percentage of the total
// capital. It is backed by an exact decimal so that the rounding and residue
// arithmetic in Normalize stays exact.
type Percent struct {
	value decimal.Decimal
}

// P is a convenient factory for Percent.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Percent {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Percent{value: v}
	case float32:
		return Percent{value: decimal.NewFromFloat32(v)}
	case float64:
		return Percent{value: decimal.NewFromFloat(v)}
	case int:
		return Percent{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Percent{value: decimal.NewFromInt32(v)}
	case int64:
		return Percent{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

func (p Percent) Add(q Percent) Percent      { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Sub(q Percent) Percent      { return Percent{value: p.value.Sub(q.value)} }
func (p Percent) LessThan(q Percent) bool    { return p.value.LessThan(q.value) }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }
func (p Percent) IsZero() bool               { return p.value.IsZero() }
func (p Percent) IsNegative() bool           { return p.value.IsNegative() }

// Equal compares with display precision, not exactly.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return p.value.Sub(q.value).Abs().LessThan(decimal.NewFromFloat(precision))
}

// Float64 returns the nearest float64 representation of the weight.
func (p Percent) Float64() float64 { return p.value.InexactFloat64() }

// Number returns the weight as a bare two-decimal number, e.g. "30.00".
func (p Percent) Number() string { return p.value.StringFixed(2) }

// String returns the display form of the weight, e.g. "30.00%".
func (p Percent) String() string { return p.Number() + "%" }

// SignedString returns the weight with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
