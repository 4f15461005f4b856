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

// presetCmd holds the flags for the 'preset' subcommand.
type presetCmd struct {
	list bool
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "apply a named allocation preset" }
func (*presetCmd) Usage() string {
	return `nivesh preset [-list] <name>

  Applies a named allocation strategy over the current assets and saves the
  portfolio. Use -list to see the available presets.
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available presets")
}

func (c *presetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		printMarkdown(presetsMarkdown())
		return subcommands.ExitSuccess
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one preset name, or -list")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	applied, err := p.ApplyPreset(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodePortfolio(applied); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Applied preset %q, total = %s\n", f.Arg(0), applied.TotalAllocation())
	return subcommands.ExitSuccess
}

func presetsMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Presets\n\n")
	fmt.Fprintln(&b, "| Name | Strategy | Weights |")
	fmt.Fprintln(&b, "|:---|:---|:---|")
	for _, preset := range nivesh.Presets() {
		ws := make([]string, len(preset.Weights))
		for i, w := range preset.Weights {
			ws[i] = w.Number()
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", preset.Name, preset.Description, strings.Join(ws, "/"))
	}
	return b.String()
}
