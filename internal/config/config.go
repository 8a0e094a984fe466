package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level budgetis.yaml configuration.
type Config struct {
	Commune CommuneConfig `yaml:"commune"`
	Report  ReportConfig  `yaml:"report"`
	Flow    FlowConfig    `yaml:"flow"`
}

// CommuneConfig identifies the municipality.
type CommuneConfig struct {
	Name string `yaml:"name"`
}

// ReportConfig holds report defaults.
type ReportConfig struct {
	DefaultYear int `yaml:"default_year"`
}

// FlowConfig controls flow-graph construction.
type FlowConfig struct {
	// Tolerance is the residual below which no result node is added.
	Tolerance float64 `yaml:"tolerance"`
	// MinLinkAmount drops grouped-Sankey links below this absolute value.
	MinLinkAmount float64 `yaml:"min_link_amount"`
}

// Load reads a budgetis.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a commune.
func Default(communeName string) *Config {
	return &Config{
		Commune: CommuneConfig{
			Name: communeName,
		},
		Flow: FlowConfig{
			Tolerance:     0.5,
			MinLinkAmount: 0,
		},
	}
}
