package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config file parses but holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads the configuration for the named game into a copy of base.
// Search order: customPath -> ~/.gamebox/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Fields absent from the file keep their value from base.
func Load[T any](name, customPath string, base T) (T, error) {
	cfg := base

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{filepath.Join("configs", name+".yaml")}
	if userCfgPath := userConfigPath(name + ".yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = base
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(name); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// LoadHanoi loads and validates the Tower of Hanoi configuration.
func LoadHanoi(customPath string) (HanoiConfig, error) {
	cfg, err := Load("hanoi", customPath, DefaultHanoiConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultHanoiConfig(), fmt.Errorf("config: hanoi: %w", err)
	}
	return cfg, nil
}

// LoadSnake loads and validates the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := Load("snake", customPath, DefaultSnakeConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("config: snake: %w", err)
	}
	return cfg, nil
}

// Validate checks the disk count and the replay pacing.
func (c HanoiConfig) Validate() error {
	if c.Disks < HanoiMinDisks || c.Disks > HanoiMaxDisks {
		return fmt.Errorf("%w: disks %d outside %d-%d", ErrInvalidConfig, c.Disks, HanoiMinDisks, HanoiMaxDisks)
	}
	if c.Replay.Interval <= 0 {
		return fmt.Errorf("%w: replay interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// Validate checks board dimensions, start position and timing.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("%w: board %dx%d too small", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Board.Width || c.Start.Y < 0 || c.Start.Y >= c.Board.Height {
		return fmt.Errorf("%w: start (%d,%d) outside board", ErrInvalidConfig, c.Start.X, c.Start.Y)
	}
	if c.Movement.Interval <= 0 {
		return fmt.Errorf("%w: move interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamebox", "configs", filename)
}

// ApplyHanoiPreset picks the disk count for a difficulty preset.
// The fixed preset keeps the configured value.
func ApplyHanoiPreset(cfg *HanoiConfig, preset DifficultyPreset) {
	if n := DisksForPreset(preset); n > 0 {
		cfg.Disks = n
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
