// Package config loads the demos tool configuration. A missing config file
// is not an error: the defaults alone must reproduce the canonical fixture
// transcript, so a zero-setup invocation depends on no file and no
// environment variable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all demos tool configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Fixture selection
	Demos DemosConfig `yaml:"demos"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DemosConfig configures fixture selection.
type DemosConfig struct {
	// Default is the fixture a bare invocation runs.
	Default string `yaml:"default"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "Web-IDE demos",
		Version: "1.0.0",

		Demos: DemosConfig{
			Default: "python",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if name := os.Getenv("WEBIDE_DEFAULT_DEMO"); name != "" {
		c.Demos.Default = name
	}
	if level := os.Getenv("WEBIDE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
