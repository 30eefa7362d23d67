package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fincopilot/internal/core"
)

// ReportConfig tweaks report rendering. All fields are optional.
type ReportConfig struct {
	// CurrencySymbol prefixes every amount in table output.
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`

	// ExcludeCategories drops the named categories from the report.
	ExcludeCategories []string `yaml:"excludeCategories,omitempty"`
}

func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{CurrencySymbol: "$"}
}

func LoadReportConfig(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultReportConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "$"
	}

	for _, name := range cfg.ExcludeCategories {
		if _, err := core.ParseCategory(name); err != nil {
			return nil, fmt.Errorf("excludeCategories: %w", err)
		}
	}
	return cfg, nil
}

// ShouldExclude reports whether transactions in the category are dropped.
func (c *ReportConfig) ShouldExclude(category core.Category) bool {
	if c == nil {
		return false
	}
	for _, name := range c.ExcludeCategories {
		if string(category) == name {
			return true
		}
	}
	return false
}

// FormatAmount renders money with the configured currency symbol.
func (c *ReportConfig) FormatAmount(m core.Money) string {
	symbol := "$"
	if c != nil && c.CurrencySymbol != "" {
		symbol = c.CurrencySymbol
	}
	if m.Cents < 0 {
		return "-" + symbol + core.Money{Cents: -m.Cents}.String()
	}
	return symbol + m.String()
}
