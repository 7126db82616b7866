package config

import (
	"testing"
	"time"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := d.Level(100, 100); got != 0.3 {
		t.Errorf("Level() with progression disabled = %f, expected 0.3", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	base := 100 * time.Millisecond
	floor := 60 * time.Millisecond

	if got := d.Interval(base, floor, 0, 0); got != base {
		t.Errorf("Interval at level 0 = %v, expected %v", got, base)
	}
	// Level 1.0 doubles the speed: 50ms, clamped to the 60ms floor
	if got := d.Interval(base, floor, 10, 0); got != floor {
		t.Errorf("Interval at max level = %v, expected floor %v", got, floor)
	}
}
