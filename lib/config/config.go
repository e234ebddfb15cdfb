// Copyright 2026 The Touban Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "TOUBAN_CONFIG"

// Color output modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the touban user configuration. Every field has a working
// built-in default; command-line flags always win over file values.
type Config struct {
	// Defaults seeds the create command's flags.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Output controls report rendering.
	Output OutputConfig `yaml:"output"`
}

// DefaultsConfig holds create-command defaults.
type DefaultsConfig struct {
	// People is the number of members drawn each round when --people
	// is not given.
	People int `yaml:"people"`

	// Interval is the advisory days-between-rounds value when
	// --interval is not given.
	Interval int `yaml:"interval"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Color is one of auto, always, never. Auto colors only when
	// stdout is a terminal and NO_COLOR is unset.
	Color string `yaml:"color"`
}

// Default returns the built-in configuration: one person per round,
// a weekly interval, automatic color detection.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{People: 1, Interval: 7},
		Output:   OutputConfig{Color: ColorAuto},
	}
}

// Load reads the configuration from the file named by TOUBAN_CONFIG.
// An unset variable yields Default(); a set variable that cannot be
// loaded is an error.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from an explicit path, merging the
// file over the built-in defaults. Unknown keys are rejected so a
// typoed setting fails instead of silently doing nothing.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Defaults.People < 1 {
		return fmt.Errorf("defaults.people must be at least 1, got %d", c.Defaults.People)
	}
	if c.Defaults.Interval < 0 {
		return fmt.Errorf("defaults.interval must not be negative, got %d", c.Defaults.Interval)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of %s, %s, %s; got %q",
			ColorAuto, ColorAlways, ColorNever, c.Output.Color)
	}
	return nil
}
