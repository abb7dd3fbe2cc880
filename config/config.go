// Package config exposes the process-level settings loaded from an optional
// YAML file. Gameplay constants live in their packages' Config structs; this
// only covers where the profile lives and how the process logs.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures process-wide runtime settings.
type Config struct {
	// ProfileDir is where progress is persisted. Empty disables persistence.
	ProfileDir string `yaml:"profile_dir"`
	// LogLevel is a zap level string (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile receives structured logs; stdout is owned by the TUI.
	LogFile string `yaml:"log_file"`
	// Seed fixes the price-series seed for reproducible runs; zero seeds
	// from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the standard settings.
func Default() Config {
	return Config{
		ProfileDir: "./profile",
		LogLevel:   "info",
		LogFile:    "tickrush.log",
	}
}

// Load reads the YAML file at path, applying defaults for missing fields.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config file")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, errors.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	return cfg, nil
}
