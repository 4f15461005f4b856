package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/knayak/nivesh/tui"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct{}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit allocations interactively" }
func (*editCmd) Usage() string {
	return `nivesh edit

  Opens the interactive allocation editor. Arrow keys select an asset, enter
  edits its weight, n normalizes, p cycles presets, r resets, q quits and
  saves the portfolio.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	final, err := tea.NewProgram(tui.New(p), tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		return subcommands.ExitFailure
	}

	edited := final.(tui.Model).Portfolio()
	if err := EncodePortfolio(edited); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	total := edited.TotalAllocation()
	if edited.IsValid() {
		fmt.Printf("Saved. Total allocation = %s (OK)\n", total)
	} else {
		fmt.Printf("Saved. Total allocation = %s, not 100%%. Run `nivesh normalize` to fix.\n", total)
	}
	return subcommands.ExitSuccess
}
