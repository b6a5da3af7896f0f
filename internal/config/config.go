// Package config handles configuration loading and dataset definitions.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPropertyValue is written for configured properties missing from a feature.
const DefaultPropertyValue = "不明"

// Config represents the root configuration file structure.
type Config struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset describes one GeoJSON input converted into one path file.
type Dataset struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Properties copied from each feature onto its records, in this order.
	// Empty means records carry no properties at all.
	Properties []string `yaml:"properties,omitempty"`

	// Default replaces properties missing from a feature.
	// Nil falls back to DefaultPropertyValue.
	Default *string `yaml:"default,omitempty"`

	Z float64 `yaml:"z"`
}

// PropertyDefault returns the value used for missing properties.
func (d Dataset) PropertyDefault() string {
	if d.Default == nil {
		return DefaultPropertyValue
	}

	return *d.Default
}

// Default returns the built-in Tachikawa rail and road centerline datasets.
func Default() *Config {
	return &Config{
		Datasets: []Dataset{
			{
				Name:   "rail",
				Input:  "RailTrCL_16_tachikawashi.geojson",
				Output: "RailTrCL_16_tachikawashi_customized.json",
				Z:      17,
			},
			{
				Name:       "road",
				Input:      "RdCL_16_tachikawashi.geojson",
				Output:     "RdCL_16_tachikawashi_customized.json",
				Z:          1,
				Properties: []string{"vt_rdctg", "vt_rnkwidth"},
			},
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every dataset has a name, an input and an output,
// and that no two datasets write the same file.
func (c *Config) Validate() error {
	if len(c.Datasets) == 0 {
		return errors.New("no datasets configured")
	}

	outputs := make(map[string]string, len(c.Datasets))
	for i, d := range c.Datasets {
		if d.Name == "" {
			return fmt.Errorf("dataset #%d: name is required", i)
		}
		if d.Input == "" {
			return fmt.Errorf("dataset %q: input is required", d.Name)
		}
		if d.Output == "" {
			return fmt.Errorf("dataset %q: output is required", d.Name)
		}
		if prev, ok := outputs[d.Output]; ok {
			return fmt.Errorf("dataset %q: output %s already used by %q", d.Name, d.Output, prev)
		}
		outputs[d.Output] = d.Name
	}

	return nil
}
