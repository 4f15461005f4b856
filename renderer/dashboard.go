// Package renderer turns report structs into markdown. It is purely
// presentational: all numbers arrive already computed.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the Dashboard struct to a markdown string.
func DashboardMarkdown(d *Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(d.Title)
	doc.PlainText(banner(d))

	doc.H2("Portfolio Asset Breakdown")
	header := []string{"Asset", "Risk", "Reward", "Time of Investment", "Allocation (%)"}
	if d.HasAmounts {
		header = append(header, "Amount")
	}
	header = append(header, "Source")

	var rows [][]string
	for _, r := range d.Rows {
		row := []string{r.Asset, r.Risk, r.Reward, r.Horizon, r.Allocation.String()}
		if d.HasAmounts {
			row = append(row, r.Amount)
		}
		row = append(row, r.Source)
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})

	if d.HasAmounts {
		doc.PlainText(fmt.Sprintf("Corpus of %s split by normalized allocation.", d.CorpusLabel))
	}

	doc.H2("Allocation by Risk Level")
	riskRows := make([][]string, 0, len(d.RiskBuckets))
	for _, b := range d.RiskBuckets {
		riskRows = append(riskRows, []string{b.Risk, b.Total.String()})
	}
	doc.Table(md.TableSet{Header: []string{"Risk", "Total Allocation"}, Rows: riskRows})

	if d.ShowReasons {
		doc.H2("Investment Rationale")
		for _, r := range d.Rows {
			doc.H3(fmt.Sprintf("%s - %s Allocation", r.Asset, r.Allocation))
			doc.PlainText(fmt.Sprintf("Risk: %s · Reward: %s · Horizon: %s · Source: %s", r.Risk, r.Reward, r.Horizon, r.Source))
			if r.Rationale != "" {
				doc.PlainText(r.Rationale)
			}
		}
	}

	return doc.String()
}

// banner is the success/warning line shown under the title.
func banner(d *Dashboard) string {
	if d.Valid {
		return fmt.Sprintf("Total allocation = %s (OK)", d.Total)
	}
	return fmt.Sprintf("⚠️ Total allocation = %s — not 100%%. Run `nivesh normalize` to fix.", d.Total)
}
