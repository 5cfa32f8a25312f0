// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
}

// RenderConfig holds table rendering settings.
type RenderConfig struct {
	Variant     string  `toml:"variant"`     // "text", "math", "preview"
	Environment string  `toml:"environment"` // "tabular", "array" (optional, overrides variant)
	BlankCell   *string `toml:"blank_cell"`  // text for empty cells (optional, overrides variant)
	Escape      bool    `toml:"escape"`
	PrintArea   bool    `toml:"print_area"` // use the print area when no range is given
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `toml:"format"` // "text", "json", "yaml"
	Copy   bool   `toml:"copy"`   // copy the rendered output to the clipboard
	Pretty bool   `toml:"pretty"`
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Interval string `toml:"interval"` // e.g., "1s", "500ms"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Variant: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Watch: WatchConfig{
			Interval: "1s",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "xltex", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("XLTEX_VARIANT"); v != "" {
		cfg.Render.Variant = v
	}
	if v := os.Getenv("XLTEX_ENVIRONMENT"); v != "" {
		cfg.Render.Environment = v
	}
	if v, ok := os.LookupEnv("XLTEX_BLANK_CELL"); ok {
		cfg.Render.BlankCell = &v
	}
	if err := envBool("XLTEX_ESCAPE", &cfg.Render.Escape); err != nil {
		return err
	}
	if v := os.Getenv("XLTEX_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if err := envBool("XLTEX_COPY", &cfg.Output.Copy); err != nil {
		return err
	}
	if v := os.Getenv("XLTEX_WATCH_INTERVAL"); v != "" {
		cfg.Watch.Interval = v
	}
	return nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	*dst = b
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !validVariants[c.Render.Variant] {
		return fmt.Errorf("invalid variant: %s", c.Render.Variant)
	}
	if c.Render.Environment != "" && c.Render.Environment != "tabular" && c.Render.Environment != "array" {
		return fmt.Errorf("invalid environment: %s", c.Render.Environment)
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid format: %s", c.Output.Format)
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	return nil
}

// WatchInterval returns the parsed watch polling interval.
func (c *Config) WatchInterval() (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(c.Watch.Interval))
	if err != nil {
		return 0, fmt.Errorf("interval must be a duration, got %q", c.Watch.Interval)
	}
	if d <= 0 {
		return 0, errors.New("interval must be positive")
	}
	return d, nil
}

var validVariants = map[string]bool{
	"text":    true,
	"math":    true,
	"preview": true,
}

var validFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}
