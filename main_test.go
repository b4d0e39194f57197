package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := []byte(`{"spread": 0.5, "threshold": 50, "cue_interval": "400ms"}`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHUTTLERING_THRESHOLD", "40")
	t.Setenv("SHUTTLERING_SPEED", "0.3")

	cfg, err := loadConfig([]string{"-config", path, "-speed", "0.2"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Spread != 0.5 {
		t.Errorf("spread = %v, want 0.5 from the config file", cfg.Spread)
	}
	if cfg.CueInterval != 400*time.Millisecond {
		t.Errorf("cue interval = %v, want 400ms from the config file", cfg.CueInterval)
	}
	if cfg.Threshold != 40 {
		t.Errorf("threshold = %v, want 40: environment overrides the file", cfg.Threshold)
	}
	if cfg.ShuttleSpeed != 0.2 {
		t.Errorf("speed = %v, want 0.2: flags override the environment", cfg.ShuttleSpeed)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := loadConfig([]string{"-targets", "7"}); err == nil {
		t.Fatal("expected an error for an odd target count")
	}
}
