package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as CSV" }
func (*exportCmd) Usage() string {
	return `nivesh export [-o <file>]

  Writes the portfolio in the dashboard's CSV format (header row included,
  UTF-8) to the given file, or to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "output file (stdout by default)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := nivesh.ExportCSV(out, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Fprintf(os.Stderr, "✅ Exported portfolio to %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}
