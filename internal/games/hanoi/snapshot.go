package hanoi

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateReplaying   GameStateType = "replaying"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and debugging.
type Snapshot struct {
	Tick     uint64
	Disks    int
	Moves    int
	Rods     string // e.g. "[3 2] [] [1]", bottom first
	Cursor   int
	Held     int // Rod of the lifted disk, -1 when none
	Assisted bool
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.State()

	state := StatePlaying
	switch {
	case g.layout.TooSmall:
		state = StatePausedSmall
	case s.Solved:
		state = StateSolved
	case g.paused:
		state = StatePaused
	case s.Replaying:
		state = StateReplaying
	}

	held, _, ok := g.driver.Held()
	if !ok {
		held = -1
	}

	return Snapshot{
		Tick:     g.tick,
		Disks:    s.Disks,
		Moves:    s.Moves,
		Rods:     s.String(),
		Cursor:   g.driver.Cursor(),
		Held:     held,
		Assisted: s.Assisted,
		State:    state,
	}
}
