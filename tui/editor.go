// Package tui implements the interactive allocation editor. It is a thin
// reactive shell: every keypress recomputes the totals from the current
// portfolio snapshot and re-renders the whole view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/knayak/nivesh"
)

// Styles groups the lipgloss styles used by the editor.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Ok       lipgloss.Style
	Warn     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default editor color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Faint(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}

// Model is the interactive allocation editor.
type Model struct {
	portfolio *nivesh.Portfolio
	cursor    int
	input     textinput.Model
	editing   bool
	presetIdx int
	status    string
	styles    Styles
	quitting  bool
}

// New creates an editor over a copy of the given portfolio.
func New(p *nivesh.Portfolio) Model {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 7
	ti.Width = 8
	return Model{
		portfolio: p.Clone(),
		input:     ti,
		styles:    DefaultStyles(),
	}
}

// Portfolio returns the current portfolio snapshot.
func (m Model) Portfolio() *nivesh.Portfolio { return m.portfolio.Clone() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m.updateEditing(key)
	}
	return m.updateBrowsing(key)
}

func (m Model) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		asset := m.portfolio.Assets()[m.cursor]
		w := nivesh.ParseWeight(m.input.Value())
		if err := m.portfolio.SetAllocation(asset.Name, w); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("%s set to %s", asset.Name, w)
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) updateBrowsing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.portfolio.Len()-1 {
			m.cursor++
		}
	case "enter", "e":
		current := m.portfolio.Assets()[m.cursor].Allocation
		m.input.SetValue(current.Number())
		m.input.Focus()
		m.editing = true
		m.status = ""
	case "n":
		m.portfolio = m.portfolio.Normalize()
		m.status = "allocations normalized to 100%"
	case "p":
		presets := nivesh.Presets()
		preset := presets[m.presetIdx%len(presets)]
		m.presetIdx++
		if next, err := m.portfolio.ApplyPreset(preset.Name); err == nil {
			m.portfolio = next
			m.status = "preset: " + preset.Description
		}
	case "r":
		m.portfolio = nivesh.DefaultPortfolio()
		m.presetIdx = 0
		m.status = "reset to the default portfolio"
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Conservative Investment Allocation"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("  %-40s %-9s %-14s %s", "Asset", "Risk", "Horizon", "Allocation")))
	b.WriteString("\n")

	for i, a := range m.portfolio.Assets() {
		alloc := a.Allocation.String()
		if m.editing && i == m.cursor {
			alloc = m.input.View()
		}
		row := fmt.Sprintf("  %-40s %-9s %-14s %s", a.Name, a.Risk, a.Horizon, alloc)
		if i == m.cursor {
			row = m.styles.Selected.Render(">" + row[1:])
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	total := m.portfolio.TotalAllocation()
	if m.portfolio.IsValid() {
		b.WriteString(m.styles.Ok.Render(fmt.Sprintf("Total allocation = %s (OK)", total)))
	} else {
		b.WriteString(m.styles.Warn.Render(fmt.Sprintf("Total allocation = %s, not 100%% (press n to normalize)", total)))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ select · enter edit · n normalize · p preset · r reset · q quit and save"))
	b.WriteString("\n")
	return b.String()
}
