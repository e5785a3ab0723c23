// Package config handles the configuration directory and the optional
// config.toml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"tasktable/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "tasktable"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.toml"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"-"`

	// Quiet suppresses informational output (success notifications).
	Quiet bool `toml:"quiet"`

	// IDPolicy is "reuse" (max+1) or "monotonic".
	IDPolicy string `toml:"id_policy"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogFormat is text, json or logfmt.
	LogFormat string `toml:"log_format"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasktable or $HOME/.config/tasktable.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		IDPolicy:  task.IDPolicyReuse.String(),
		LogLevel:  "warn",
		LogFormat: "text",
	}, nil
}

// Load creates a Config for configDir and applies config.toml when present.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(cfg.FilePath(), cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", cfg.FilePath(), err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings read from the config file.
func (c *Config) Validate() error {
	if _, err := task.ParseIDPolicy(c.IDPolicy); err != nil {
		return err
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	return nil
}

// Policy returns the parsed id policy. Invalid values fall back to reuse.
func (c *Config) Policy() task.IDPolicy {
	p, err := task.ParseIDPolicy(c.IDPolicy)
	if err != nil {
		return task.IDPolicyReuse
	}
	return p
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}
