package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/knayak/nivesh"
)

func key(m Model, k string) Model {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = key(m, string(r))
	}
	return m
}

func TestEditorView(t *testing.T) {
	m := New(nivesh.DefaultPortfolio())
	view := m.View()
	if !strings.Contains(view, "Fixed Deposits (FD)") {
		t.Fatalf("expected asset rows to be rendered:\n%s", view)
	}
	if !strings.Contains(view, "Total allocation = 100.00% (OK)") {
		t.Fatalf("expected the OK banner:\n%s", view)
	}
}

func TestEditorEditCommit(t *testing.T) {
	m := New(nivesh.DefaultPortfolio())

	// edit the second row down to zero
	m = key(m, "down")
	m = key(m, "enter")
	m.input.SetValue("")
	m = typeText(m, "0")
	m = key(m, "enter")

	view := m.View()
	if !strings.Contains(view, "not 100%") {
		t.Fatalf("expected the warning banner after breaking the total:\n%s", view)
	}

	got, _ := m.Portfolio().Find("PPF")
	if !got.Allocation.IsZero() {
		t.Errorf("PPF allocation = %s, want 0.00%%", got.Allocation)
	}
}

func TestEditorEditCancel(t *testing.T) {
	m := New(nivesh.DefaultPortfolio())
	m = key(m, "enter")
	m = typeText(m, "55")
	m = key(m, "esc")

	got, _ := m.Portfolio().Find("FD")
	if !got.Allocation.Equal(nivesh.P(30)) {
		t.Errorf("FD allocation = %s after cancel, want 30.00%%", got.Allocation)
	}
}

func TestEditorNormalizeKey(t *testing.T) {
	p := nivesh.DefaultPortfolio()
	if err := p.SetAllocation("FD", nivesh.P(10)); err != nil {
		t.Fatal(err)
	}
	m := New(p)
	if !strings.Contains(m.View(), "not 100%") {
		t.Fatalf("precondition failed: total should be invalid")
	}

	m = key(m, "n")
	if !strings.Contains(m.View(), "Total allocation = 100.00% (OK)") {
		t.Fatalf("expected a valid total after pressing n:\n%s", m.View())
	}
}

func TestEditorPresetAndReset(t *testing.T) {
	m := New(nivesh.DefaultPortfolio())

	m = key(m, "p") // default preset first
	m = key(m, "p") // then ultra-safe
	got, _ := m.Portfolio().Find("FD")
	if !got.Allocation.Equal(nivesh.P(40)) {
		t.Errorf("FD allocation = %s after ultra-safe preset, want 40.00%%", got.Allocation)
	}

	m = key(m, "r")
	got, _ = m.Portfolio().Find("FD")
	if !got.Allocation.Equal(nivesh.P(30)) {
		t.Errorf("FD allocation = %s after reset, want 30.00%%", got.Allocation)
	}
}

func TestEditorQuit(t *testing.T) {
	m := New(nivesh.DefaultPortfolio())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("expected an empty view when quitting, got:\n%s", view)
	}
}
