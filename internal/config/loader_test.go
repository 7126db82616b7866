package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.gamebox out of the way

	hanoi, err := LoadHanoi("")
	if err != nil {
		t.Fatalf("LoadHanoi() failed: %v", err)
	}
	if hanoi != DefaultHanoiConfig() {
		t.Errorf("embedded hanoi defaults = %+v, expected %+v", hanoi, DefaultHanoiConfig())
	}

	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake defaults = %+v, expected %+v", snake, DefaultSnakeConfig())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, "disks: 6\nreplay:\n  interval: 250ms\n")

	cfg, err := LoadHanoi(path)
	if err != nil {
		t.Fatalf("LoadHanoi() failed: %v", err)
	}
	if cfg.Disks != 6 {
		t.Errorf("Disks = %d, expected 6", cfg.Disks)
	}
	if cfg.Replay.Interval != 250*time.Millisecond {
		t.Errorf("Replay.Interval = %v, expected 250ms", cfg.Replay.Interval)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadHanoi(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeConfig(t, "disks: [not, a, number]\n")
	if _, err := LoadHanoi(bad); err == nil {
		t.Error("expected error for unparsable custom config")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"disks above range", "disks: 12\n"},
		{"disks below range", "disks: 2\n"},
		{"zero interval", "replay:\n  interval: 0s\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadHanoi(writeConfig(t, tc.body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if cfg != DefaultHanoiConfig() {
				t.Errorf("invalid config should fall back to defaults, got %+v", cfg)
			}
		})
	}
}

func TestSnakeValidate(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Start.X = cfg.Board.Width
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("start outside board should be invalid, got %v", err)
	}
}

func TestApplyPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		disks  int
	}{
		{DifficultyEasy, 3},
		{DifficultyNormal, 5},
		{DifficultyHard, 8},
		{DifficultyFixed, 4}, // keeps config value
	}

	for _, tc := range tests {
		cfg := DefaultHanoiConfig()
		cfg.Disks = 4
		ApplyHanoiPreset(&cfg, tc.preset)
		if cfg.Disks != tc.disks {
			t.Errorf("ApplyHanoiPreset(%q) disks = %d, expected %d", tc.preset, cfg.Disks, tc.disks)
		}
	}

	snake := DefaultSnakeConfig()
	ApplySnakePreset(&snake, DifficultyHard)
	if !snake.Difficulty.Enabled || snake.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v, expected enabled at 0.7", snake.Difficulty)
	}
	ApplySnakePreset(&snake, DifficultyFixed)
	if snake.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
