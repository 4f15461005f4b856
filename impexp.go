package nivesh

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains functions to handle the CSV import/export format used
// by the dashboard's download button.

// csvHeader is the interchange header, one row per asset.
var csvHeader = []string{"Asset", "Risk", "Reward", "Time of Investment", "Allocation (%)", "Source", "Reasons"}

// ExportCSV exports the portfolio to 'w' as UTF-8 comma-separated values,
// header row included. Allocation weights are written as bare two-decimal
// numbers.
func ExportCSV(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, a := range p.assets {
		record := []string{a.Name, a.Risk, a.Reward, a.Horizon, a.Allocation.Number(), a.Source, a.Rationale}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record for %q: %w", a.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV imports a portfolio from 'r' in the export format. The header
// row is optional. Invalid allocation values are coerced to zero and numeric
// values are clamped to [0, 100], mirroring the dashboard's input handling.
func ImportCSV(r io.Reader) (*Portfolio, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV portfolio: %w", err)
	}
	if len(records) > 0 && records[0][0] == csvHeader[0] {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV portfolio contains no assets")
	}
	p := &Portfolio{}
	for _, rec := range records {
		p.assets = append(p.assets, Asset{
			Name:       rec[0],
			Risk:       rec[1],
			Reward:     rec[2],
			Horizon:    rec[3],
			Allocation: ParseWeight(rec[4]),
			Source:     rec[5],
			Rationale:  rec[6],
		})
	}
	return p, nil
}
