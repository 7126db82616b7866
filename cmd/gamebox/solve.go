package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebox/internal/games/hanoi"
)

var (
	flagSolveDisks int
	flagSolveDelay time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the Tower of Hanoi solver and log every move",
	Long: `Solve a fresh Tower of Hanoi puzzle without the TUI.

The solver plays one move per --delay and logs it. Ctrl+C stops the
replay; the moves made so far stay applied and are reported.

Examples:
  gamebox solve
  gamebox solve --disks 6 --delay 200ms
  gamebox solve --disks 8 --delay 0 --log-level warn`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveDisks, "disks", 3, fmt.Sprintf("Number of disks (%d-%d)", hanoi.MinDisks, hanoi.MaxDisks))
	solveCmd.Flags().DurationVar(&flagSolveDelay, "delay", time.Second, "Delay between moves (0 = as fast as possible)")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	if flagSolveDelay < 0 {
		return fmt.Errorf("--delay must not be negative, got %v", flagSolveDelay)
	}

	engine, err := hanoi.NewEngine(flagSolveDisks)
	if err != nil {
		return errors.New(hanoi.InputMessage(err))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticks, stopTicks := solveClock(flagSolveDelay)
	defer stopTicks()

	total := hanoi.OptimalMoves(flagSolveDisks)
	log.Info("solving", "disks", flagSolveDisks, "moves", total, "delay", flagSolveDelay)
	log.Debug("start", "rods", engine.State().String())

	err = hanoi.RunReplay(ctx, engine, ticks, func(res hanoi.MoveResult) {
		log.Info("move",
			"n", fmt.Sprintf("%d/%d", res.Moves, total),
			"disk", res.Disk,
			"from", res.Move.From+1,
			"to", res.Move.To+1,
		)
		log.Debug("rods", "state", engine.State().String())
	})

	s := engine.State()
	switch {
	case err == nil:
		log.Info("solved", "moves", s.Moves, "rods", s.String())
		return nil
	case errors.Is(err, context.Canceled):
		log.Warn("solver stopped", "applied", s.ReplayDone, "of", s.ReplayTotal, "rods", s.String())
		return nil
	default:
		return err
	}
}

// solveClock returns the tick source for the replay. A zero delay ticks as
// fast as the replay consumes.
func solveClock(delay time.Duration) (<-chan time.Time, func()) {
	if delay > 0 {
		t := time.NewTicker(delay)
		return t.C, t.Stop
	}

	ch := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case ch <- time.Now():
			case <-done:
				return
			}
		}
	}()
	return ch, func() { close(done) }
}
