package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a portfolio from CSV" }
func (*importCmd) Usage() string {
	return `nivesh import -i <file>

  Reads a portfolio in the export CSV format and saves it as the working
  portfolio. Invalid allocation values are coerced to zero and clamped to
  [0, 100], like interactive edits.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "input CSV file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.inputFile, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	p, err := nivesh.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodePortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported %d assets, total = %s\n", p.Len(), p.TotalAllocation())
	return subcommands.ExitSuccess
}
