// Package config provides YAML-based game configuration loading and
// difficulty management for the game box.
package config

import "time"

// Disk counts a Hanoi config may ask for.
const (
	HanoiMinDisks = 3
	HanoiMaxDisks = 8
)

// HanoiConfig contains all configuration for the Tower of Hanoi puzzle.
type HanoiConfig struct {
	Disks  int         `yaml:"disks"` // Disk count for a fresh puzzle (3-8)
	Replay HanoiReplay `yaml:"replay"`
}

// HanoiReplay defines the pacing of the automatic solver.
type HanoiReplay struct {
	Interval time.Duration `yaml:"interval"` // Delay between two solver moves
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Start      SnakeStart       `yaml:"start"`
	Movement   SnakeMovement    `yaml:"movement"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard defines the playing field in cells.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where the snake head spawns.
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeMovement defines how fast the snake advances.
type SnakeMovement struct {
	Interval    time.Duration `yaml:"interval"`     // Time between moves at difficulty 0
	MinInterval time.Duration `yaml:"min_interval"` // Fastest allowed move interval
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed added at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// DisksForPreset returns the Hanoi disk count a preset stands for.
// The fixed preset (and unknown ones) return 0, meaning "keep the config value".
func DisksForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 8
	default:
		return 0
	}
}
