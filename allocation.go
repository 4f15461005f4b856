package nivesh

import (
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the one real computation of the dashboard: rescaling a
// set of allocation weights so that the displayed total is exactly 100.00.

var (
	hundred = decimal.NewFromInt(100)
	// validTolerance is the display tolerance for the "sums to 100%" banner.
	validTolerance = decimal.NewFromFloat(1e-6)
	// residueTolerance is the threshold below which a rounding residue is
	// considered zero and left unassigned.
	residueTolerance = decimal.NewFromFloat(1e-9)
)

// Normalize rescales weights so they sum to exactly 100.00.
//
// Each weight is scaled proportionally and rounded to two decimal places.
// The rounding residue, if any, is added to the largest rounded entry (first
// occurrence on ties) so the displayed total stays exact. When all weights
// are zero, every entry receives an equal share of 100.
//
// The output has the same length as the input, is non-negative for
// non-negative input, and always sums to exactly 100.00. Normalize is
// idempotent on its own output.
func Normalize(weights []Percent) []Percent {
	if len(weights) == 0 {
		return nil
	}

	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w.value)
	}

	out := make([]Percent, len(weights))
	if total.IsZero() {
		share := hundred.Div(decimal.NewFromInt(int64(len(weights)))).Round(2)
		for i := range out {
			out[i] = Percent{value: share}
		}
	} else {
		for i, w := range weights {
			out[i] = Percent{value: w.value.Mul(hundred).Div(total).Round(2)}
		}
	}

	sum := decimal.Zero
	for _, w := range out {
		sum = sum.Add(w.value)
	}
	residue := hundred.Sub(sum)
	if residue.Abs().GreaterThan(residueTolerance) {
		largest := 0
		for i, w := range out {
			if w.value.GreaterThan(out[largest].value) {
				largest = i
			}
		}
		out[largest] = Percent{value: out[largest].value.Add(residue)}
	}
	return out
}

// Sum returns the total of the given weights.
func Sum(weights []Percent) Percent {
	total := decimal.Zero
	for _, w := range weights {
		total = total.Add(w.value)
	}
	return Percent{value: total}
}

// IsValid reports whether the weights sum to 100% within display tolerance.
// It is used only for the dashboard banner and has no side effects.
func IsValid(weights []Percent) bool {
	return Sum(weights).value.Sub(hundred).Abs().LessThanOrEqual(validTolerance)
}

// Clamp restricts a weight to the editable [0, 100] range.
func Clamp(w Percent) Percent {
	if w.value.IsNegative() {
		return Percent{}
	}
	if w.value.GreaterThan(hundred) {
		return Percent{value: hundred}
	}
	return w
}

// ParseWeight converts raw user input into a weight. Non-numeric input is
// coerced to zero rather than rejected, and numeric input is clamped to
// [0, 100], so editing never fails.
func ParseWeight(s string) Percent {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Percent{}
	}
	return Clamp(Percent{value: v})
}
