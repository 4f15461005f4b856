package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/knayak/nivesh/charts"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	pieFile string
	barFile string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render allocation charts to PNG files" }
func (*chartCmd) Usage() string {
	return `nivesh chart [-pie <file>] [-bar <file>]

  Renders the capital allocation pie chart and the horizontal bar chart.
  Output paths default to the config file values, or allocation_pie.png and
  allocation_bar.png.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pieFile, "pie", "", "output file for the pie chart")
	f.StringVar(&c.barFile, "bar", "", "output file for the bar chart")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := AppConfig()
	if c.pieFile == "" {
		c.pieFile = cfg.Charts.Pie
	}
	if c.barFile == "" {
		c.barFile = cfg.Charts.Bar
	}

	if err := charts.SavePie(c.pieFile, "Portfolio Allocation (%)", p); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering pie chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Wrote %s\n", c.pieFile)

	if err := charts.SaveBar(c.barFile, "Allocation by Asset", p); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering bar chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Wrote %s\n", c.barFile)
	return subcommands.ExitSuccess
}
