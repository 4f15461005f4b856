package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
	"github.com/knayak/nivesh/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	reasons  bool
	total    float64
	currency string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the allocation dashboard" }
func (*showCmd) Usage() string {
	return `nivesh show [-reasons] [-total <amount>] [-c <currency>]

  Displays the portfolio breakdown table, the total-allocation banner, the
  risk summary, and optionally the investment rationale per asset. When a
  corpus amount is given (flag or config), each asset also shows the money
  it receives under the normalized allocation.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.reasons, "reasons", true, "show the source and rationale for each asset")
	f.Float64Var(&c.total, "total", 0, "corpus amount to split across assets (0 hides amounts)")
	f.StringVar(&c.currency, "c", "", "currency for the corpus amounts")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := AppConfig()
	if c.total == 0 {
		c.total = cfg.Corpus
	}
	if c.currency == "" {
		c.currency = cfg.Currency
	}

	var plan *nivesh.CapitalPlan
	if c.total > 0 {
		plan, err = nivesh.Split(money.NewFromFloat(c.total, c.currency), p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error splitting corpus: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.DashboardMarkdown(renderer.NewDashboard(p, plan, c.reasons)))
	return subcommands.ExitSuccess
}
