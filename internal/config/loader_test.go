package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseChase(GetDefaultYAML("chase"))
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultChaseConfig() {
		t.Errorf("embedded YAML and DefaultChaseConfig() differ:\n%+v\n%+v", cfg, DefaultChaseConfig())
	}
}

func TestLoadChaseCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	data := "obstacles:\n  pool_capacity: 4\ndifficulty:\n  max_speed: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}
	if cfg.Obstacles.PoolCapacity != 4 {
		t.Errorf("PoolCapacity = %d, expected 4", cfg.Obstacles.PoolCapacity)
	}
	if cfg.Difficulty.MaxSpeed != 300 {
		t.Errorf("MaxSpeed = %v, expected 300", cfg.Difficulty.MaxSpeed)
	}
	// Keys not mentioned keep their defaults
	if cfg.Mountains.MinWidth != 400 {
		t.Errorf("MinWidth = %v, expected default 400", cfg.Mountains.MinWidth)
	}
}

func TestLoadChaseMissingCustomPath(t *testing.T) {
	_, err := LoadChase(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadChaseInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "mountains:\n  peak_spacing: 50\nobstacles:\n  pool_capacity: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadChase(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "pool_capacity") || !strings.Contains(msg, "peak_spacing") {
		t.Errorf("error should list every problem, got %q", msg)
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultChaseConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyChasePreset(t *testing.T) {
	base := DefaultChaseConfig()

	fixed := base
	ApplyChasePreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	easy := base
	ApplyChasePreset(&easy, DifficultyEasy)
	if easy.Difficulty.StartSpeed >= base.Difficulty.StartSpeed {
		t.Errorf("easy start speed %v should be below %v", easy.Difficulty.StartSpeed, base.Difficulty.StartSpeed)
	}

	hard := base
	ApplyChasePreset(&hard, DifficultyHard)
	if hard.Difficulty.StartSpeed <= base.Difficulty.StartSpeed {
		t.Errorf("hard start speed %v should be above %v", hard.Difficulty.StartSpeed, base.Difficulty.StartSpeed)
	}
	if hard.Difficulty.StartSpeed > hard.Difficulty.MaxSpeed {
		t.Error("hard start speed must not exceed max speed")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should still validate: %v", err)
	}

	normal := base
	ApplyChasePreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should keep the configured values")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to empty")
	}
	if ParsePreset("fixed") != DifficultyFixed {
		t.Error("ParsePreset(fixed) should return DifficultyFixed")
	}
}
