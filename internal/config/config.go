// Package config provides configuration management for the pokedex command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pokedex/pkg/pokedex"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Configuration validation errors.
var (
	ErrInvalidID           = errors.New("lookup.ids must be positive integers")
	ErrBlankName           = errors.New("lookup.names must not be blank")
	ErrInvalidOutputFormat = errors.New("output.format must be one of: table, json, yaml")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete command configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Lookup  LookupConfig  `yaml:"lookup"`
}

// LookupConfig lists the Pokemon to look up.
type LookupConfig struct {
	Names []string `yaml:"names"`
	IDs   []int    `yaml:"ids"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Format string `yaml:"format"`
	Game   string `yaml:"game"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{Format: FormatTable},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from YAML file. Missing keys keep their defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for i, id := range c.Lookup.IDs {
		if id <= 0 {
			return fmt.Errorf("%w: ids[%d]=%d", ErrInvalidID, i, id)
		}
	}

	for i, name := range c.Lookup.Names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: names[%d]", ErrBlankName, i)
		}
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return ErrInvalidOutputFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Queries returns one lookup query per configured id, then per name.
func (c *Config) Queries() []pokedex.Query {
	queries := make([]pokedex.Query, 0, len(c.Lookup.IDs)+len(c.Lookup.Names))

	for _, id := range c.Lookup.IDs {
		queries = append(queries, pokedex.ByID(id))
	}

	for _, name := range c.Lookup.Names {
		queries = append(queries, pokedex.ByName(name))
	}

	return queries
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{IDs: %d, Names: %d, Format: %s, Game: %q}",
		len(c.Lookup.IDs),
		len(c.Lookup.Names),
		c.Output.Format,
		c.Output.Game,
	)
}
