package sciformats

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/sciformats/go-sciformats/ir"
)

// Config selects the plugins of a repository. The same document may be
// written in YAML or JSON:
//
//	plugins: [jdx, json]
//	fallback: true
//	logLevel: debug
type Config struct {
	// Plugins in priority order. Empty means DefaultPlugins.
	Plugins  []string `json:"plugins,omitempty"`
	Fallback bool     `json:"fallback,omitempty"`
	// LogLevel is a slog level name; empty means info.
	LogLevel string `json:"logLevel,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{Plugins: DefaultPlugins()}
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	cfg, err := ParseConfig(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML or JSON config. Unknown fields
// are rejected.
func ParseConfig(d []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalWithOptions(d, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if len(cfg.Plugins) == 0 {
		cfg.Plugins = DefaultPlugins()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks plugin names and the log level.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Plugins))
	for _, name := range c.Plugins {
		if _, ok := builtins[name]; !ok {
			return fmt.Errorf("%w: unknown plugin %q", ErrConfig, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: plugin %q listed twice", ErrConfig, name)
		}
		seen[name] = true
	}
	_, err := c.level()
	return err
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrConfig, c.LogLevel)
	}
	return l, nil
}
