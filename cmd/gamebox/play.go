package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/games/hanoi"
	"github.com/vovakirdan/gamebox/internal/games/snake"
	"github.com/vovakirdan/gamebox/internal/platform/tui"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// errBackedOut marks a setup screen the player left without choosing.
var errBackedOut = errors.New("setup cancelled")

var (
	flagConfig     string
	flagDifficulty string
	flagDisks      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Tower of Hanoi controls:
  Left/Right, 1-3  - Select rod
  Space/Enter      - Pick up or drop the top disk
  Mouse            - Drag a disk from one rod to another
  Esc              - Put the lifted disk back
  S                - Start or stop the solver
  +/-              - More or fewer disks
  R                - Restart
  I                - Rules and controls
  Q/Ctrl+C         - Quit

Snake controls:
  Arrows/WASD      - Steer
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Hanoi: 3 disks. Snake: start slow, speed up with score
  normal - Hanoi: 5 disks. Snake: start at 30% difficulty
  hard   - Hanoi: 8 disks. Snake: start at 70% difficulty
  fixed  - Hanoi: disks from config. Snake: constant speed

Without --disks (Hanoi) or --difficulty (Snake) a setup screen asks first.

Examples:
  gamebox play hanoi
  gamebox play hanoi --disks 6
  gamebox play snake --difficulty hard
  gamebox play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagDisks, "disks", 0, fmt.Sprintf("Hanoi disk count (%d-%d)", hanoi.MinDisks, hanoi.MaxDisks))
}

// applyGameFlags hands the config path and difficulty to every game.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagDisks != 0 {
		if err := hanoi.ValidateDiskCount(flagDisks); err != nil {
			return fmt.Errorf("--disks: %w", err)
		}
	}

	// Games fall back to defaults silently once the TUI owns the screen,
	// so report broken configs here.
	if _, err := config.LoadHanoi(flagConfig); err != nil {
		log.Warn("hanoi config unusable, using defaults", "error", err)
	}
	if _, err := config.LoadSnake(flagConfig); err != nil {
		log.Warn("snake config unusable, using defaults", "error", err)
	}

	hanoi.SetConfigPath(flagConfig)
	hanoi.SetDifficultyPreset(flagDifficulty)
	hanoi.SetDisks(flagDisks)
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)
	return nil
}

// askSetup shows the setup screen of a game unless flags already decided.
// It returns errBackedOut when the player leaves the screen.
func askSetup(gameID string, cfg core.RuntimeConfig, fromFlags bool) (tui.Setup, error) {
	switch gameID {
	case "hanoi":
		if fromFlags && (flagDisks != 0 || flagDifficulty != "") {
			return tui.Setup{}, nil
		}
		disks, err := tui.RunHanoiSetup(cfg)
		if err != nil {
			return tui.Setup{}, err
		}
		if disks == 0 {
			return tui.Setup{}, errBackedOut
		}
		return tui.Setup{Disks: disks}, nil

	case "snake":
		if fromFlags && flagDifficulty != "" {
			return tui.Setup{}, nil
		}
		preset, err := tui.RunSnakeSpeedSelector(cfg)
		if err != nil {
			return tui.Setup{}, err
		}
		if preset == "" {
			return tui.Setup{}, errBackedOut
		}
		return tui.Setup{Preset: preset}, nil
	}
	return tui.Setup{}, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'gamebox list' to see available games", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	setup, err := askSetup(gameID, cfg, true)
	if errors.Is(err, errBackedOut) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	tui.ApplySetup(game, setup)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	log.Debug("starting game", "game", gameID, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
