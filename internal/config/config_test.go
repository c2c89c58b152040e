package config_test

import (
	"testing"

	"github.com/nyashahama/futurefit/internal/config"
	"github.com/nyashahama/futurefit/internal/layout"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("PAGE_SCALE", "")
	t.Setenv("ACCENT_COLOR", "")

	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Env != "development" || c.OutputDir != "." || c.PageScale != 4 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Accent != (layout.RGB{R: 0x7B, G: 0x2C, B: 0xFF}) {
		t.Errorf("accent default wrong: %+v", c.Accent)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("PAGE_SCALE", "8")
	t.Setenv("ACCENT_COLOR", "002D72")

	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Env != "production" || c.OutputDir != "/tmp/reports" || c.PageScale != 8 {
		t.Errorf("overrides not applied: %+v", c)
	}
	if c.Accent != (layout.RGB{R: 0x00, G: 0x2D, B: 0x72}) {
		t.Errorf("accent override wrong: %+v", c.Accent)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("ACCENT_COLOR", "not-a-color")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for malformed accent color")
	}

	t.Setenv("ACCENT_COLOR", "")
	t.Setenv("PAGE_SCALE", "-2")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for negative page scale")
	}
}
