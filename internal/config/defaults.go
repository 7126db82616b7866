package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultHanoiConfig returns the default Tower of Hanoi configuration.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Disks: 3,
		Replay: HanoiReplay{
			Interval: time.Second,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{Width: 24, Height: 24},
		Start: SnakeStart{X: 5, Y: 5},
		Movement: SnakeMovement{
			Interval:    100 * time.Millisecond,
			MinInterval: 50 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hanoi":
		return defaultHanoiYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
