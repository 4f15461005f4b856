package nivesh

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestEncodeDecodePortfolio checks that the working-file format round-trips.
func TestEncodeDecodePortfolio(t *testing.T) {
	sample := `
{"asset":"Fixed Deposits (FD)","risk":"Very Low","reward":"5-7","horizon":"1-5 years","allocation":"30","source":"RBI, SBI"}
{"asset":"Government Bonds (G-Secs)","risk":"Very Low","reward":"6-7","horizon":"5+ years","allocation":"70","source":"RBI"}
`
	sample = strings.Trim(sample, "\n\t")

	p, err := DecodePortfolio(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("cannot decode sample: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("decoded %d assets, want 2", p.Len())
	}

	sb := strings.Builder{}
	if err := EncodePortfolio(&sb, p); err != nil {
		t.Fatalf("EncodePortfolio() has error %v", err)
	}
	got := strings.Trim(sb.String(), "\n\t")
	if got != sample {
		t.Errorf("encode/decode sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestDecodePortfolioClampsAllocations(t *testing.T) {
	sample := `{"asset":"Debt Mutual Funds","risk":"Low","reward":"6-8","horizon":"3-5 years","allocation":"-12","source":"AMFI"}`
	p, err := DecodePortfolio(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("cannot decode sample: %v", err)
	}
	if got := p.Weights()[0]; !got.IsZero() {
		t.Errorf("negative allocation decoded as %s, want clamped to 0.00%%", got)
	}
}

func TestDecodePortfolioRejectsGarbage(t *testing.T) {
	if _, err := DecodePortfolio(strings.NewReader("not json\n")); err == nil {
		t.Error("DecodePortfolio accepted a non-JSON line")
	}
	if _, err := DecodePortfolio(strings.NewReader("\n\n")); err == nil {
		t.Error("DecodePortfolio accepted an empty portfolio")
	}
}

func TestSaveLoadPortfolio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.jsonl")

	if err := SavePortfolio(path, DefaultPortfolio()); err != nil {
		t.Fatalf("SavePortfolio() has error %v", err)
	}
	p, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio() has error %v", err)
	}
	if p.Len() != 5 || !p.IsValid() {
		t.Errorf("loaded portfolio has %d assets, total %s", p.Len(), p.TotalAllocation())
	}

	if _, err := LoadPortfolio(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("LoadPortfolio(missing) succeeded, want fs.ErrNotExist")
	}
}
