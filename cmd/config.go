package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the optional application configuration.
type Config struct {
	// PortfolioFile is the path of the working portfolio file.
	PortfolioFile string `yaml:"portfolio_file"`
	// Currency is the default currency code for corpus amounts.
	Currency string `yaml:"currency"`
	// Corpus is the default corpus amount split across assets by `show`.
	// Zero hides the amount column.
	Corpus float64 `yaml:"corpus"`
	// Charts holds the default output paths of the chart files.
	Charts struct {
		Pie string `yaml:"pie"`
		Bar string `yaml:"bar"`
	} `yaml:"charts"`
}

// LoadConfig reads the config from a YAML file, then applies environment
// variable overrides and defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NIVESH_PORTFOLIO_FILE"); v != "" {
		cfg.PortfolioFile = v
	}
	if v := os.Getenv("NIVESH_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("NIVESH_CORPUS"); v != "" {
		corpus, err := strconv.ParseFloat(v, 64)
		if err == nil {
			cfg.Corpus = corpus
		}
	}

	// Defaults
	if cfg.PortfolioFile == "" {
		cfg.PortfolioFile = "portfolio.jsonl"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.Charts.Pie == "" {
		cfg.Charts.Pie = "allocation_pie.png"
	}
	if cfg.Charts.Bar == "" {
		cfg.Charts.Bar = "allocation_bar.png"
	}

	return cfg, nil
}
