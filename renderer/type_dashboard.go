package renderer

import (
	"github.com/knayak/nivesh"
)

// Dashboard is a struct to represent the dashboard page data.
// Weights keep their exact Percent type so they already contain basic
// renderers (String, Number, SignedString).
type Dashboard struct {

	// Title of the dashboard page.
	Title string `json:"title"`
	// Rows is the asset breakdown table, in display order.
	Rows []DashboardRow `json:"rows"`
	// Total is the sum of all allocation weights.
	Total nivesh.Percent `json:"total"`
	// Valid is true when the total is 100% within display tolerance.
	Valid bool `json:"valid"`
	// RiskBuckets is the total allocation per risk level.
	RiskBuckets []RiskRow `json:"riskBuckets"`
	// ShowReasons toggles the per-asset rationale sections.
	ShowReasons bool `json:"showReasons,omitempty"`
	// HasAmounts is true when a capital plan was supplied.
	HasAmounts bool `json:"hasAmounts,omitempty"`
	// CorpusLabel is the display form of the corpus being split, if any.
	CorpusLabel string `json:"corpusLabel,omitempty"`
}

// DashboardRow represents a single asset of the breakdown table.
type DashboardRow struct {
	Asset      string         `json:"asset"`
	Risk       string         `json:"risk"`
	Reward     string         `json:"reward"`
	Horizon    string         `json:"horizon"`
	Allocation nivesh.Percent `json:"allocation"`
	Amount     string         `json:"amount,omitempty"`
	Source     string         `json:"source"`
	Rationale  string         `json:"rationale,omitempty"`
}

// RiskRow represents the allocation carried by a single risk level.
type RiskRow struct {
	Risk  string         `json:"risk"`
	Total nivesh.Percent `json:"total"`
}

// NewDashboard creates a new Dashboard struct from a portfolio snapshot and
// an optional capital plan. It populates everything needed for rendering.
func NewDashboard(p *nivesh.Portfolio, plan *nivesh.CapitalPlan, showReasons bool) *Dashboard {
	d := &Dashboard{
		Title:       "Conservative Fixed-Income Portfolio",
		Total:       p.TotalAllocation(),
		Valid:       p.IsValid(),
		ShowReasons: showReasons,
	}

	if plan != nil {
		d.HasAmounts = true
		d.CorpusLabel = plan.Total.Display()
	}
	for i, a := range p.Assets() {
		row := DashboardRow{
			Asset:      a.Name,
			Risk:       a.Risk,
			Reward:     a.Reward,
			Horizon:    a.Horizon,
			Allocation: a.Allocation,
			Source:     a.Source,
			Rationale:  a.Rationale,
		}
		if plan != nil && i < len(plan.Amounts) {
			row.Amount = plan.Amounts[i].Display()
		}
		d.Rows = append(d.Rows, row)
	}
	for _, b := range p.ByRisk() {
		d.RiskBuckets = append(d.RiskBuckets, RiskRow{Risk: b.Risk, Total: b.Total})
	}
	return d
}
