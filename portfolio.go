package nivesh

import (
	"fmt"
	"strings"
)

// Asset is one investment option shown in the dashboard.
type Asset struct {
	// Name of the instrument, e.g. "Fixed Deposits (FD)".
	Name string `json:"asset"`
	// Risk descriptor, e.g. "Very Low".
	Risk string `json:"risk"`
	// Reward is the expected annual return range, e.g. "5-7".
	Reward string `json:"reward"`
	// Horizon is the recommended time of investment, e.g. "1-5 years".
	Horizon string `json:"horizon"`
	// Allocation is the percentage of the total capital assigned to this asset.
	Allocation Percent `json:"allocation"`
	// Source is the authority backing the figures, e.g. "RBI, SBI".
	Source string `json:"source"`
	// Rationale is the investment thesis for holding the asset.
	Rationale string `json:"rationale,omitempty"`
}

// Portfolio is the ordered set of assets shown and edited in the dashboard.
// All mutating operations return a new snapshot or operate on an explicit
// receiver; nothing is shared or global.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio creates a portfolio from the given assets, preserving order.
func NewPortfolio(assets ...Asset) *Portfolio {
	p := &Portfolio{assets: make([]Asset, len(assets))}
	copy(p.assets, assets)
	return p
}

// DefaultPortfolio returns the built-in conservative allocation: five
// government-backed or fixed-income instruments, weighted 30/20/20/20/10.
func DefaultPortfolio() *Portfolio {
	return NewPortfolio(
		Asset{
			Name:       "Fixed Deposits (FD)",
			Risk:       "Very Low",
			Reward:     "5-7",
			Horizon:    "1-5 years",
			Allocation: P(30),
			Source:     "RBI, SBI",
			Rationale:  "Provides stable returns in the 5-7% range. Perfect for short to medium-term goals (1-5 years). No market volatility; liquidity with penalty for early withdrawal.",
		},
		Asset{
			Name:       "Public Provident Fund (PPF)",
			Risk:       "Very Low",
			Reward:     "7.1 (current)",
			Horizon:    "15 years",
			Allocation: P(20),
			Source:     "India Post",
			Rationale:  "Government-backed; one of India's safest long-term instruments. EEE tax treatment; builds retirement corpus.",
		},
		Asset{
			Name:       "Debt Mutual Funds",
			Risk:       "Low",
			Reward:     "6-8",
			Horizon:    "3-5 years",
			Allocation: P(20),
			Source:     "AMFI",
			Rationale:  "Suitable for low-risk investors seeking better post-tax returns than FD. Offers liquidity, diversification, and indexation benefits.",
		},
		Asset{
			Name:       "Government Bonds (G-Secs)",
			Risk:       "Very Low",
			Reward:     "6-7",
			Horizon:    "5+ years",
			Allocation: P(20),
			Source:     "RBI",
			Rationale:  "Considered risk-free (backed by Government of India). Good for wealth preservation and long-term stability.",
		},
		Asset{
			Name:       "Senior Citizens Savings Scheme (SCSS)",
			Risk:       "Very Low",
			Reward:     "8.2 (current)",
			Horizon:    "5 years",
			Allocation: P(10),
			Source:     "India Post",
			Rationale:  "Designed for senior citizens with one of the highest safe rates (currently 8.2%). Quarterly payouts provide regular income.",
		},
	)
}

// Len returns the number of assets.
func (p *Portfolio) Len() int { return len(p.assets) }

// Assets returns a copy of the assets in display order.
func (p *Portfolio) Assets() []Asset {
	assets := make([]Asset, len(p.assets))
	copy(assets, p.assets)
	return assets
}

// Clone returns an independent copy of the portfolio.
func (p *Portfolio) Clone() *Portfolio { return NewPortfolio(p.assets...) }

// Weights returns the allocation weights in display order.
func (p *Portfolio) Weights() []Percent {
	weights := make([]Percent, len(p.assets))
	for i, a := range p.assets {
		weights[i] = a.Allocation
	}
	return weights
}

// Find returns the asset matching name. The match is exact first, then a
// unique case-insensitive prefix, so "FD" resolves "Fixed Deposits (FD)".
func (p *Portfolio) Find(name string) (Asset, bool) {
	i := p.index(name)
	if i < 0 {
		return Asset{}, false
	}
	return p.assets[i], true
}

func (p *Portfolio) index(name string) int {
	for i, a := range p.assets {
		if a.Name == name {
			return i
		}
	}
	found := -1
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return -1
	}
	for i, a := range p.assets {
		if strings.HasPrefix(strings.ToLower(a.Name), lower) || strings.Contains(strings.ToLower(a.Name), "("+lower+")") {
			if found >= 0 {
				return -1 // ambiguous
			}
			found = i
		}
	}
	return found
}

// SetAllocation sets the weight of the named asset, clamped to [0, 100].
// It returns an error when the name resolves to no asset, or to more than one.
func (p *Portfolio) SetAllocation(name string, w Percent) error {
	i := p.index(name)
	if i < 0 {
		return fmt.Errorf("no unique asset matching %q", name)
	}
	p.assets[i].Allocation = Clamp(w)
	return nil
}

// SetWeights replaces all allocation weights positionally, clamped to [0, 100].
func (p *Portfolio) SetWeights(weights []Percent) error {
	if len(weights) != len(p.assets) {
		return fmt.Errorf("got %d weights for %d assets", len(weights), len(p.assets))
	}
	for i, w := range weights {
		p.assets[i].Allocation = Clamp(w)
	}
	return nil
}

// TotalAllocation returns the sum of all allocation weights.
func (p *Portfolio) TotalAllocation() Percent { return Sum(p.Weights()) }

// IsValid reports whether the allocations sum to 100% within display tolerance.
func (p *Portfolio) IsValid() bool { return IsValid(p.Weights()) }

// Normalize returns a new snapshot whose allocations sum to exactly 100.00.
// The receiver is left untouched.
func (p *Portfolio) Normalize() *Portfolio {
	out := p.Clone()
	normalized := Normalize(p.Weights())
	for i := range out.assets {
		out.assets[i].Allocation = normalized[i]
	}
	return out
}

// RiskBucket is the total allocation carried by one risk level.
type RiskBucket struct {
	Risk  string
	Total Percent
}

// ByRisk aggregates allocations per risk level, in first-seen order.
func (p *Portfolio) ByRisk() []RiskBucket {
	var buckets []RiskBucket
	seen := map[string]int{}
	for _, a := range p.assets {
		i, ok := seen[a.Risk]
		if !ok {
			i = len(buckets)
			seen[a.Risk] = i
			buckets = append(buckets, RiskBucket{Risk: a.Risk})
		}
		buckets[i].Total = buckets[i].Total.Add(a.Allocation)
	}
	return buckets
}
