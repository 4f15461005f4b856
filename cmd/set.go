package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set allocation weights" }
func (*setCmd) Usage() string {
	return `nivesh set <asset>=<weight> [<asset>=<weight> ...]

  Sets allocation weights and saves the portfolio. Assets match by exact
  name, unique prefix, or abbreviation. Weights are clamped to [0, 100];
  non-numeric weights are treated as 0.

Usage Examples:
# The abbreviations from the asset names work.
$ nivesh set FD=35 PPF=25

`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one <asset>=<weight> argument")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, arg := range f.Args() {
		name, weight, err := parseAssignment(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := p.SetAllocation(name, weight); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	total := p.TotalAllocation()
	if p.IsValid() {
		fmt.Printf("Total allocation = %s (OK)\n", total)
	} else {
		fmt.Printf("Total allocation = %s, not 100%%. Run `nivesh normalize` to fix.\n", total)
	}
	return subcommands.ExitSuccess
}

// parseAssignment splits one "<asset>=<weight>" argument. The weight side is
// coerced like any other allocation input.
func parseAssignment(arg string) (name string, weight nivesh.Percent, err error) {
	name, raw, found := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", nivesh.Percent{}, fmt.Errorf("argument %q is not of the form <asset>=<weight>", arg)
	}
	return name, nivesh.ParseWeight(raw), nil
}
