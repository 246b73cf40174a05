// Package config loads the optional rainbows.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "rainbows.yaml"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "RAINBOWS_LOG_LEVEL"
)

// Config holds the few knobs the demo exposes. Everything is optional; a
// missing file means defaults.
type Config struct {
	// DefaultCount pre-fills the count field and seeds the bench.
	DefaultCount int `yaml:"default_count"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Palette optionally replaces the seven rainbow colors with lipgloss
	// color strings ("196", "#ff0000", ...).
	Palette []string `yaml:"palette"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultCount: 10,
		LogLevel:     "info",
	}
}

// Load reads the first rainbows.yaml found on the search path (working
// directory, then ~/.config/rainbows/) merged over defaults. A missing file
// is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()
	for _, p := range searchPaths() {
		b, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}
	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		cfg.LogLevel = env
	}
	if cfg.DefaultCount < 0 {
		cfg.DefaultCount = 0
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{fileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rainbows", fileName))
	}
	return paths
}
