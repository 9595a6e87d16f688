package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rule != "B3/S23" {
		t.Errorf("default rule = %q, expected B3/S23", cfg.Rule)
	}
	if !cfg.Wrap {
		t.Error("default config should wrap")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Errorf("default dimensions = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rule": "B36/S23", "pace": 0.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Rule != "B36/S23" {
		t.Errorf("rule = %q, expected B36/S23", cfg.Rule)
	}
	if cfg.Pace != 0.5 {
		t.Errorf("pace = %v, expected 0.5", cfg.Pace)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Width != DefaultConfig().Width {
		t.Errorf("width = %d, expected default %d", cfg.Width, DefaultConfig().Width)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// The defaults still come back so callers can fall through.
	if cfg.Rule != DefaultConfig().Rule {
		t.Errorf("rule = %q, expected default", cfg.Rule)
	}
}
