package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knayak/nivesh"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func checkPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file was not written: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("chart file %q is not a PNG", path)
	}
}

func TestSavePie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")
	if err := SavePie(path, "Portfolio Allocation (%)", nivesh.DefaultPortfolio()); err != nil {
		t.Fatalf("SavePie() has error %v", err)
	}
	checkPNG(t, path)
}

func TestSavePieAllZero(t *testing.T) {
	p := nivesh.NewPortfolio(nivesh.Asset{Name: "A"}, nivesh.Asset{Name: "B"})
	if err := SavePie(filepath.Join(t.TempDir(), "pie.png"), "t", p); err == nil {
		t.Error("SavePie() succeeded on all-zero allocations, want error")
	}
}

func TestSaveBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")
	if err := SaveBar(path, "Allocation by Asset", nivesh.DefaultPortfolio()); err != nil {
		t.Fatalf("SaveBar() has error %v", err)
	}
	checkPNG(t, path)
}

func TestSaveBarEmptyPortfolio(t *testing.T) {
	if err := SaveBar(filepath.Join(t.TempDir(), "bar.png"), "t", nivesh.NewPortfolio()); err == nil {
		t.Error("SaveBar() succeeded on an empty portfolio, want error")
	}
}
