package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebox/internal/platform/tui"
	"github.com/vovakirdan/gamebox/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start gamebox with a game picker menu",
	Long: `Start gamebox in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Tower of Hanoi asks for the number of disks, Snake for its speed.
Press B on the finish screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scores
  Q            - Quit

Examples:
  gamebox menu
  gamebox menu --fps 30
  gamebox menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil // User quit from scoreboard
			}
			continue
		}

		setup, err := askSetup(menuResult.GameID, cfg, false)
		if errors.Is(err, errBackedOut) {
			continue
		}
		if err != nil {
			return err
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			log.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}
		tui.ApplySetup(game, setup)

		// Fresh seed for each game unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if !back {
			return nil // Quit from inside the game
		}
	}
}
