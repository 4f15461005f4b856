package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check that allocations sum to 100%" }
func (*checkCmd) Usage() string {
	return `nivesh check

  Prints the total allocation and exits non-zero when it is not 100% within
  tolerance. Useful in scripts.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	total := p.TotalAllocation()
	if !p.IsValid() {
		fmt.Printf("Total allocation = %s, not 100%%\n", total)
		return subcommands.ExitFailure
	}
	fmt.Printf("Total allocation = %s (OK)\n", total)
	return subcommands.ExitSuccess
}
