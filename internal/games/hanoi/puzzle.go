// Package hanoi implements the Tower of Hanoi puzzle: the rod state machine,
// the optimal solver, a replay engine that applies solver moves one tick at a
// time, and the terminal game that drives them from keys and the mouse.
package hanoi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/gamebox/internal/config"
)

// Rod indices.
const (
	Source    = 0
	Auxiliary = 1
	Target    = 2

	NumRods = 3
)

// Accepted disk counts.
const (
	MinDisks = config.HanoiMinDisks
	MaxDisks = config.HanoiMaxDisks
)

var (
	// ErrInvalidDiskCount is returned for disk counts outside [MinDisks, MaxDisks].
	ErrInvalidDiskCount = errors.New("hanoi: disk count out of range")

	// ErrNotANumber is returned when disk-count input is not an integer.
	ErrNotANumber = errors.New("hanoi: disk count is not a number")

	// ErrIllegalMove is returned when a move breaks the puzzle rules.
	ErrIllegalMove = errors.New("hanoi: illegal move")
)

// InputMessage turns a disk-count validation error into the message shown to
// the player. Unknown errors yield their own text.
func InputMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotANumber):
		return "Please enter a valid number."
	case errors.Is(err, ErrInvalidDiskCount):
		return fmt.Sprintf("Please enter a valid number of disks (%d-%d).", MinDisks, MaxDisks)
	default:
		return err.Error()
	}
}

// Move transfers the top disk of one rod to another.
type Move struct {
	From int
	To   int
}

// String formats the move as "(from,to)" using 0-based rod indices.
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.From, m.To)
}

// MoveResult describes a committed move.
type MoveResult struct {
	Move   Move
	Disk   int  // Size of the disk that moved
	Moves  int  // Move count after this move
	Solved bool // Whether this move completed the puzzle
}

// Puzzle is the rod configuration plus the move counter.
// Rods are stored bottom first, so the top disk is the last element.
type Puzzle struct {
	disks int
	rods  [NumRods][]int
	moves int
}

// NewPuzzle creates a fresh puzzle with n disks on the source rod.
func NewPuzzle(n int) (*Puzzle, error) {
	p := &Puzzle{}
	if err := p.Reset(n); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidateDiskCount checks that n is an accepted disk count.
func ValidateDiskCount(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w (got %d)", ErrInvalidDiskCount, n)
	}
	return nil
}

// ParseDiskCount parses user input into a disk count.
func ParseDiskCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	if err := ValidateDiskCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Reset stacks n disks on the source rod, largest at the bottom, clears the
// other rods and zeroes the move count. An invalid n leaves the puzzle unchanged.
func (p *Puzzle) Reset(n int) error {
	if err := ValidateDiskCount(n); err != nil {
		return err
	}

	p.disks = n
	for i := range p.rods {
		p.rods[i] = make([]int, 0, n)
	}
	for d := n; d >= 1; d-- {
		p.rods[Source] = append(p.rods[Source], d)
	}
	p.moves = 0
	return nil
}

// Disks returns the number of disks in play.
func (p *Puzzle) Disks() int {
	return p.disks
}

// Moves returns the number of committed moves.
func (p *Puzzle) Moves() int {
	return p.moves
}

// Rod returns a copy of rod i, bottom first. Out-of-range indices return nil.
func (p *Puzzle) Rod(i int) []int {
	if !validRod(i) {
		return nil
	}
	return append([]int(nil), p.rods[i]...)
}

// Height returns the number of disks on rod i.
func (p *Puzzle) Height(i int) int {
	if !validRod(i) {
		return 0
	}
	return len(p.rods[i])
}

// Top returns the top disk of rod i, or false if the rod is empty.
func (p *Puzzle) Top(i int) (int, bool) {
	if !validRod(i) || len(p.rods[i]) == 0 {
		return 0, false
	}
	return p.rods[i][len(p.rods[i])-1], true
}

// IsValidMove reports whether the top disk of from may be placed on to:
// the rods differ, from is not empty, and to is empty or holds a larger top disk.
func (p *Puzzle) IsValidMove(from, to int) bool {
	if !validRod(from) || !validRod(to) || from == to {
		return false
	}
	disk, ok := p.Top(from)
	if !ok {
		return false
	}
	top, occupied := p.Top(to)
	return !occupied || top > disk
}

// ApplyMove moves the top disk of from onto to and counts the move.
// Illegal moves change nothing and return ErrIllegalMove.
func (p *Puzzle) ApplyMove(from, to int) (MoveResult, error) {
	if !p.IsValidMove(from, to) {
		return MoveResult{}, fmt.Errorf("%w: %v", ErrIllegalMove, Move{From: from, To: to})
	}

	last := len(p.rods[from]) - 1
	disk := p.rods[from][last]
	p.rods[from] = p.rods[from][:last]
	p.rods[to] = append(p.rods[to], disk)
	p.moves++

	return MoveResult{
		Move:   Move{From: from, To: to},
		Disk:   disk,
		Moves:  p.moves,
		Solved: p.IsSolved(),
	}, nil
}

// IsSolved reports whether every disk sits on the target rod.
func (p *Puzzle) IsSolved() bool {
	return p.disks > 0 && len(p.rods[Target]) == p.disks
}

// Clone returns an independent copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	c := &Puzzle{disks: p.disks, moves: p.moves}
	for i := range p.rods {
		c.rods[i] = append(make([]int, 0, p.disks), p.rods[i]...)
	}
	return c
}

func validRod(i int) bool {
	return i >= 0 && i < NumRods
}
