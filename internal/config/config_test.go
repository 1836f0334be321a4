package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ClochConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultClochConfig() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultClochConfig())
	}
}

func TestLoadClochCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloch.yaml")
	data := []byte("scoring:\n  lock_bonus: 0\nspeed:\n  min_interval_ms: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCloch(path)
	if err != nil {
		t.Fatalf("LoadCloch() failed: %v", err)
	}

	if cfg.Scoring.LockBonus != 0 {
		t.Errorf("LockBonus = %d, want 0", cfg.Scoring.LockBonus)
	}
	if cfg.Speed.MinIntervalMs != 50 {
		t.Errorf("MinIntervalMs = %d, want 50", cfg.Speed.MinIntervalMs)
	}
	// Untouched keys keep defaults
	if cfg.Scoring.PointsPerLine != 100 {
		t.Errorf("PointsPerLine = %d, want default 100", cfg.Scoring.PointsPerLine)
	}
	if cfg.Spawn.X != 4 {
		t.Errorf("Spawn.X = %d, want default 4", cfg.Spawn.X)
	}
}

func TestLoadClochMissingFile(t *testing.T) {
	_, err := LoadCloch(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadClochInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("spawn:\n  x: 12\nspeed:\n  lines_per_level: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCloch(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "spawn") || !strings.Contains(msg, "lines_per_level") {
		t.Errorf("error should report both problems, got %q", msg)
	}
}

func TestValidateDefault(t *testing.T) {
	if err := Validate(DefaultClochConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestProgressionLevel(t *testing.T) {
	p := NewProgression(DefaultClochConfig().Speed)

	tests := []struct {
		lines, level int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{100, 11},
		{-3, 1},
	}

	for _, tc := range tests {
		if got := p.Level(tc.lines); got != tc.level {
			t.Errorf("Level(%d) = %d, want %d", tc.lines, got, tc.level)
		}
	}
}

func TestProgressionDropInterval(t *testing.T) {
	p := NewProgression(DefaultClochConfig().Speed)

	tests := []struct {
		level    int
		interval time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 900 * time.Millisecond},
		{9, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{40, 100 * time.Millisecond},
		{0, 1000 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := p.DropInterval(tc.level); got != tc.interval {
			t.Errorf("DropInterval(%d) = %v, want %v", tc.level, got, tc.interval)
		}
	}
}
