package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRefreshInterval is how long the picker waits for a key before it
// re-reads the option file in auto-refresh mode.
const DefaultRefreshInterval = 400 * time.Millisecond

// Config holds user preferences read from config.yaml.
// Path: $XDG_CONFIG_HOME/tmenu/config.yaml (or TMENU_CONFIG)
type Config struct {
	RefreshInterval time.Duration
	LogFile         string
	LogLevel        string
}

// fileConfig mirrors the on-disk YAML layout.
type fileConfig struct {
	RefreshInterval string `yaml:"refresh_interval"`
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RefreshInterval: DefaultRefreshInterval,
		LogLevel:        "info",
	}
}

// Load reads the config file. A missing file yields Default() and no error.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads the config at path, filling unset fields with defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if s := strings.TrimSpace(fc.RefreshInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, &ConfigError{Field: "refresh_interval", Message: err.Error()}
		}
		cfg.RefreshInterval = d
	}
	cfg.LogFile = strings.TrimSpace(fc.LogFile)
	if s := strings.ToLower(strings.TrimSpace(fc.LogLevel)); s != "" {
		cfg.LogLevel = s
	}
	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.RefreshInterval <= 0 {
		return &ConfigError{Field: "refresh_interval", Message: "must be positive"}
	}
	if !validLevels[c.LogLevel] {
		return &ConfigError{Field: "log_level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
