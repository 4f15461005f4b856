package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// normalizeCmd holds the flags for the 'normalize' subcommand.
type normalizeCmd struct{}

func (*normalizeCmd) Name() string     { return "normalize" }
func (*normalizeCmd) Synopsis() string { return "rescale allocations to sum to exactly 100%" }
func (*normalizeCmd) Usage() string {
	return `nivesh normalize

  Rescales every allocation proportionally so the total is exactly 100.00,
  rounding to two decimals and assigning the rounding residue to the largest
  entry. Saves the portfolio. Normalizing twice changes nothing.
`
}

func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {}

func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	normalized := p.Normalize()
	if err := EncodePortfolio(normalized); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Allocations normalized, total = %s\n", normalized.TotalAllocation())
	return subcommands.ExitSuccess
}
