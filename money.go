package nivesh

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// CapitalPlan maps a concrete corpus onto the portfolio: how much of the
// total each asset receives under the normalized allocation.
type CapitalPlan struct {
	// Total is the corpus being allocated.
	Total *money.Money
	// Amounts are aligned with the portfolio's assets in display order.
	Amounts []*money.Money
}

// Split divides the corpus across the portfolio's assets by normalized
// allocation weight. The split is done on minor units (go-money Allocate),
// so the parts always add up to the corpus exactly.
func Split(total *money.Money, p *Portfolio) (*CapitalPlan, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("cannot split over an empty portfolio")
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("corpus must be non-negative, got %s", total.Display())
	}

	// normalized weights sum to exactly 100.00, so the basis-point ratios
	// sum to 10000 and Allocate distributes every minor unit.
	weights := Normalize(p.Weights())
	ratios := make([]int, len(weights))
	for i, w := range weights {
		ratios[i] = int(w.value.Shift(2).Round(0).IntPart())
	}

	amounts, err := total.Allocate(ratios...)
	if err != nil {
		return nil, fmt.Errorf("cannot allocate %s: %w", total.Display(), err)
	}
	return &CapitalPlan{Total: total, Amounts: amounts}, nil
}
