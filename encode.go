package nivesh

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// this file handles the working-file format for the portfolio.
// It should remain human readable, single file and easy to diff and merge.

// EncodePortfolio writes the portfolio to 'w' in the working-file format.
//
// The format is a JSONL file, where each line is a JSON object representing
// one asset, in display order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, a := range p.assets {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("cannot marshal asset %q: %w", a.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write portfolio format: %w", err)
		}
	}
	return nil
}

// DecodePortfolio reads a portfolio from 'r' in the working-file format.
// Blank lines are skipped. Asset order is preserved.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := &Portfolio{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var a Asset
		if err := json.Unmarshal(line, &a); err != nil {
			return nil, fmt.Errorf("cannot parse line for portfolio format: %q: %w", string(line), err)
		}
		a.Allocation = Clamp(a.Allocation)
		p.assets = append(p.assets, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read portfolio: %w", err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("portfolio contains no assets")
	}
	return p, nil
}

// SavePortfolio writes the portfolio to the given file path.
func SavePortfolio(path string, p *Portfolio) error {
	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", path, err)
	}
	return nil
}

// LoadPortfolio reads the portfolio from the given file path. A missing file
// surfaces as fs.ErrNotExist so callers can fall back to the default set.
func LoadPortfolio(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode portfolio file %q: %w", path, err)
	}
	return p, nil
}
