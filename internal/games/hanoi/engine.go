package hanoi

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrReplayInProgress is returned when direct input arrives while the
	// solver replay owns the puzzle.
	ErrReplayInProgress = errors.New("hanoi: solver replay in progress")

	// ErrAlreadySolved is returned when a replay is requested for a solved puzzle.
	ErrAlreadySolved = errors.New("hanoi: puzzle already solved")

	// ErrReplayCancelled is returned by RunReplay when the replay was stopped
	// through CancelReplay rather than its context.
	ErrReplayCancelled = errors.New("hanoi: replay cancelled")
)

// State is a point-in-time copy of the engine, safe to read without locking.
type State struct {
	Disks       int
	Rods        [NumRods][]int // Bottom first
	Moves       int
	Solved      bool
	Replaying   bool
	ReplayDone  int // Moves applied by the current or last replay
	ReplayTotal int // Moves planned by the current or last replay
	Assisted    bool
}

// Engine serializes access to a Puzzle shared between direct player input and
// the solver replay. While a replay is running direct moves are rejected with
// ErrReplayInProgress, while a reset stops the replay and starts over. The
// replay advances one move per StepReplay call, so whoever owns the clock
// decides the pace.
type Engine struct {
	mu        sync.Mutex
	puzzle    *Puzzle
	plan      []Move
	next      int
	replaying bool
	assisted  bool // Solver used since the last reset
}

// NewEngine creates an engine around a fresh n-disk puzzle.
func NewEngine(n int) (*Engine, error) {
	p, err := NewPuzzle(n)
	if err != nil {
		return nil, err
	}
	return &Engine{puzzle: p}, nil
}

// Reset starts over with n disks, stopping a running replay. An invalid n
// leaves the puzzle and any replay untouched.
func (e *Engine) Reset(n int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.puzzle.Reset(n); err != nil {
		return err
	}
	e.replaying = false
	e.plan = nil
	e.next = 0
	e.assisted = false
	return nil
}

// CanMove reports whether a direct move from -> to would be accepted now.
func (e *Engine) CanMove(from, to int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return !e.replaying && e.puzzle.IsValidMove(from, to)
}

// Move applies a direct player move.
func (e *Engine) Move(from, to int) (MoveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.replaying {
		return MoveResult{}, ErrReplayInProgress
	}
	return e.puzzle.ApplyMove(from, to)
}

// Top returns the top disk of a rod.
func (e *Engine) Top(rod int) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.puzzle.Top(rod)
}

// StartReplay plans the solution from the current configuration and arms the
// replay. It returns the number of planned moves.
func (e *Engine) StartReplay() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.replaying {
		return 0, ErrReplayInProgress
	}
	if e.puzzle.IsSolved() {
		return 0, ErrAlreadySolved
	}

	e.plan = Plan(e.puzzle)
	e.next = 0
	e.replaying = true
	e.assisted = true
	return len(e.plan), nil
}

// StepReplay applies the next planned move. It returns false when no replay
// is running. The replay ends by itself after its last move.
func (e *Engine) StepReplay() (MoveResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.replaying || e.next >= len(e.plan) {
		e.replaying = false
		return MoveResult{}, false
	}

	m := e.plan[e.next]
	res, err := e.puzzle.ApplyMove(m.From, m.To)
	if err != nil {
		// The plan is derived from the same state, so this means the puzzle
		// was mutated behind the engine's back. Stop rather than guess.
		e.replaying = false
		return MoveResult{}, false
	}
	e.next++
	if e.next == len(e.plan) {
		e.replaying = false
	}
	return res, true
}

// CancelReplay stops a running replay. Applied moves stay applied. It returns
// the number of replay moves that were applied, or 0 when no replay was
// running.
func (e *Engine) CancelReplay() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.replaying {
		return 0
	}
	e.replaying = false
	return e.next
}

// Replaying reports whether a replay currently owns the puzzle.
func (e *Engine) Replaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.replaying
}

// Solved reports whether the puzzle is solved.
func (e *Engine) Solved() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.puzzle.IsSolved()
}

// State returns a copy of the current engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{
		Disks:       e.puzzle.Disks(),
		Moves:       e.puzzle.Moves(),
		Solved:      e.puzzle.IsSolved(),
		Replaying:   e.replaying,
		ReplayDone:  e.next,
		ReplayTotal: len(e.plan),
		Assisted:    e.assisted,
	}
	for i := range s.Rods {
		s.Rods[i] = e.puzzle.Rod(i)
	}
	return s
}

// String renders the rods on one line, e.g. "[3 2 1] [] []".
func (s State) String() string {
	return fmt.Sprintf("%v %v %v", s.Rods[0], s.Rods[1], s.Rods[2])
}
