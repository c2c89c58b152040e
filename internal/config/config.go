// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv
// directly.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nyashahama/futurefit/internal/layout"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Runtime ───────────────────────────────────────────────────────────────
	Env string // "development" | "production"

	// ── Export ────────────────────────────────────────────────────────────────
	OutputDir string     // where export folders are created, default "."
	PageScale float64    // raster density in px/mm, default 4
	Accent    layout.RGB // major-heading / brand color, default #7B2CFF
}

// Load reads all environment variables and returns a validated Config.
// It automatically loads a .env file from the working directory when present,
// so plain `go run ./cmd/futurefit` works in development without any wrapper.
// Real environment variables always take precedence over .env values.
func Load() (*Config, error) {
	loadDotEnv(".env")

	accent, err := parseHexColor(getEnv("ACCENT_COLOR", "#7B2CFF"))
	if err != nil {
		return nil, fmt.Errorf("ACCENT_COLOR: %w", err)
	}

	c := &Config{
		Env:       getEnv("ENV", "development"),
		OutputDir: getEnv("OUTPUT_DIR", "."),
		PageScale: getEnvAsFloat("PAGE_SCALE", 4),
		Accent:    accent,
	}

	return c, c.validate()
}

func (c *Config) validate() error {
	var errs []error

	if c.PageScale <= 0 {
		errs = append(errs, fmt.Errorf("PAGE_SCALE must be positive, got %v", c.PageScale))
	}
	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("OUTPUT_DIR must not be empty"))
	}

	return errors.Join(errs...)
}

// parseHexColor parses "#RRGGBB" (leading # optional).
func parseHexColor(s string) (layout.RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return layout.RGB{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return layout.RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return layout.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// ─── DOT-ENV LOADER ──────────────────────────────────────────────────────────

// loadDotEnv reads key=value pairs from path and sets them in the environment,
// but only for keys that are not already set. This means real env vars always
// win over the file. Missing file, blank lines, and #-comments are all
// silently ignored.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return // file absent — that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		// Strip optional surrounding quotes: KEY="value" or KEY='value'
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		// Only set if the key isn't already present in the environment.
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}

// ─── HELPERS ─────────────────────────────────────────────────────────────────

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}
