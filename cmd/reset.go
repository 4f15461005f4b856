package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "restore the default portfolio" }
func (*resetCmd) Usage() string {
	return `nivesh reset

  Overwrites the working portfolio with the built-in default set: five
  fixed-income instruments weighted 30/20/20/20/10.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := EncodePortfolio(nivesh.DefaultPortfolio()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("✅ Portfolio reset to the default allocation")
	return subcommands.ExitSuccess
}
