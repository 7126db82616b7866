package hanoi

import (
	"context"
	"time"
)

// RunReplay starts the solver replay on e and applies one move per value
// received from ticks until the puzzle is solved. The caller owns the clock,
// typically a time.Ticker; tests feed the channel by hand.
//
// Cancelling ctx stops the replay before the next move and returns ctx.Err().
// If the replay is stopped through e.CancelReplay or e.Reset, RunReplay returns
// ErrReplayCancelled on the next tick. Applied moves are never rolled back.
// onMove, if non-nil, is called after every applied move.
func RunReplay(ctx context.Context, e *Engine, ticks <-chan time.Time, onMove func(MoveResult)) error {
	if _, err := e.StartReplay(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			e.CancelReplay()
			return ctx.Err()
		case <-ticks:
			// A tick and a cancellation can be ready together; cancellation wins.
			if ctx.Err() != nil {
				e.CancelReplay()
				return ctx.Err()
			}
			res, ok := e.StepReplay()
			if !ok {
				return ErrReplayCancelled
			}
			if onMove != nil {
				onMove(res)
			}
			if res.Solved {
				return nil
			}
		}
	}
}
