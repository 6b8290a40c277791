// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by both commands.
type Config struct {
	// Addr is the listen address of the HTTP panel.
	Addr            string
	ShutdownTimeout time.Duration
	// OTLPEnabled turns on the OTLP trace, metric and log exporters.
	OTLPEnabled bool
	LogLevel    string
	// Theme is the starting palette, "light" or "dark".
	Theme string
	// ThemeFile optionally points at YAML palette overrides.
	ThemeFile string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
		Theme:           "light",
	}
}

// Load reads .env from the working directory when present, then the process
// environment. Existing environment variables are not overridden by .env.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.LookupEnv)
}

// LoadDotEnv loads environment variables from the given files (default
// ".env"). Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// FromEnv builds a Config from lookup, falling back to Default per key.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("CALC_ADDR"); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := lookup("CALC_SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if v, ok := lookup("CALC_OTLP_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_OTLP_ENABLED: %w", err)
		}
		cfg.OTLPEnabled = b
	}

	if v, ok := lookup("CALC_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := lookup("CALC_THEME"); ok && v != "" {
		if v != "light" && v != "dark" {
			return Config{}, fmt.Errorf("CALC_THEME: unknown theme %q", v)
		}
		cfg.Theme = v
	}

	if v, ok := lookup("CALC_THEME_FILE"); ok {
		cfg.ThemeFile = v
	}

	return cfg, nil
}
