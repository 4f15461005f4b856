// Package cmd implements the CLI application for the allocation dashboard.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/knayak/nivesh"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "dashboard")
	c.Register(&chartCmd{}, "dashboard")
	c.Register(&editCmd{}, "dashboard")

	c.Register(&setCmd{}, "allocations")
	c.Register(&normalizeCmd{}, "allocations")
	c.Register(&checkCmd{}, "allocations")
	c.Register(&presetCmd{}, "allocations")
	c.Register(&resetCmd{}, "allocations")

	c.Register(&exportCmd{}, "interchange")
	c.Register(&importCmd{}, "interchange")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("f", "", "Path to the working portfolio file (JSONL). Overrides the config file.")
var configFile = flag.String("config", "nivesh.yaml", "Path to the optional configuration file.")

var loadedConfig *Config

// AppConfig loads the configuration file once and caches it.
func AppConfig() *Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning: ignoring config file: %v", err)
		cfg, _ = LoadConfig("") // defaults and env only
	}
	loadedConfig = cfg
	return cfg
}

// WorkingFile returns the path of the working portfolio file.
func WorkingFile() string {
	if *portfolioFile != "" {
		return *portfolioFile
	}
	return AppConfig().PortfolioFile
}

// DecodePortfolio loads the working portfolio. A missing file falls back to
// the built-in default set.
func DecodePortfolio() (*nivesh.Portfolio, error) {
	p, err := nivesh.LoadPortfolio(WorkingFile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, using the default allocation instead")
		return nivesh.DefaultPortfolio(), nil
	}
	return p, err
}

// EncodePortfolio saves the working portfolio.
func EncodePortfolio(p *nivesh.Portfolio) error {
	return nivesh.SavePortfolio(WorkingFile(), p)
}

// printMarkdown renders markdown to the terminal. It degrades to raw
// markdown when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
