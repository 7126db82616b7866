package hanoi

import (
	"errors"

	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// Status line messages.
const (
	msgIllegal   = "A disk can only go on a larger disk or an empty rod."
	msgReplaying = "Solver is running. Press S to stop it."
	msgStopped   = "Solver stopped."
	msgEmptyRod  = "That rod is empty."
)

// Package-level settings applied on the next Reset, set by the CLI and the
// setup screen before the game is created.
var (
	configPath       string
	difficultyPreset string
	selectedDisks    int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetDisks selects the disk count for the next game. 0 uses the config.
func SetDisks(n int) {
	selectedDisks = n
}

// loadConfig reads the Hanoi config and applies the selected preset.
func loadConfig() config.HanoiConfig {
	cfg, err := config.LoadHanoi(configPath)
	if err != nil {
		cfg = config.DefaultHanoiConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHanoiPreset(&cfg, config.ParsePreset(difficultyPreset))
	}
	return cfg
}

// ConfiguredDisks returns the disk count a new game starts with.
func ConfiguredDisks() int {
	if selectedDisks != 0 {
		return selectedDisks
	}
	return loadConfig().Disks
}

// Game is the terminal Tower of Hanoi.
type Game struct {
	cfg    config.HanoiConfig
	engine *Engine
	driver *Driver
	layout Layout

	disks   int
	screenW int
	screenH int
	tick    uint64

	replayEvery  int // Ticks between two solver moves
	replayTicker int

	paused   bool
	showHelp bool
	status   string
}

// New creates a Tower of Hanoi game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("hanoi", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "hanoi"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tower of Hanoi"
}

// Reset loads the config and starts a fresh puzzle. The disk count chosen
// during play survives restarts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	hcfg := loadConfig()
	g.cfg = hcfg

	switch {
	case g.disks != 0:
	case selectedDisks != 0:
		g.disks = selectedDisks
	default:
		g.disks = hcfg.Disks
	}
	if ValidateDiskCount(g.disks) != nil {
		g.disks = hcfg.Disks
	}

	if g.engine == nil {
		// The disk count is validated above, so this cannot fail.
		g.engine, _ = NewEngine(g.disks)
	} else if err := g.engine.Reset(g.disks); err != nil {
		g.engine, _ = NewEngine(g.disks)
	}
	g.driver = NewDriver(g.engine)

	g.tick = 0
	g.replayEvery = cfg.TicksFor(int(hcfg.Replay.Interval.Milliseconds()))
	g.replayTicker = 0
	g.paused = false
	g.showHelp = false
	g.status = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// UseDisks fixes the disk count of this game, taking precedence over the
// package setting and the config. Invalid counts are ignored.
func (g *Game) UseDisks(n int) {
	if ValidateDiskCount(n) == nil {
		g.disks = n
	}
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h, g.disks)
}

// Disks returns the current disk count.
func (g *Game) Disks() int {
	return g.disks
}

// Engine exposes the underlying engine, mainly for tests and tooling.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if g.showHelp {
		// Back and Select also close the instructions.
		if in.Has(core.ActionBack) || in.Has(core.ActionSelect) {
			g.showHelp = false
		}
		g.releaseIgnored(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.Solved() {
		g.paused = !g.paused
	}
	if g.paused || g.layout.TooSmall {
		g.releaseIgnored(in)
		return core.StepResult{State: g.State()}
	}

	if g.engine.Solved() {
		// Restart after a solve is handled by the platform through Reset.
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionSolve):
		g.toggleSolve()
	case in.Has(core.ActionRestart):
		g.restart(g.disks)
	case in.Has(core.ActionMore):
		g.restart(g.disks + 1)
	case in.Has(core.ActionFewer):
		g.restart(g.disks - 1)
	}

	if g.engine.Replaying() {
		g.stepReplay()
		if hasDirectInput(in) {
			g.status = msgReplaying
		}
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	for _, ev := range in.Pointers {
		g.handlePointer(ev)
	}

	return core.StepResult{State: g.State()}
}

// toggleSolve starts the solver replay, or stops it when it is running.
func (g *Game) toggleSolve() {
	if g.engine.Replaying() {
		g.engine.CancelReplay()
		g.status = msgStopped
		return
	}
	g.driver.CancelDrag()
	if _, err := g.engine.StartReplay(); err != nil {
		return
	}
	// The first move lands right away; later ones follow the interval.
	g.replayTicker = g.replayEvery - 1
	g.status = ""
}

func (g *Game) stepReplay() {
	g.replayTicker++
	if g.replayTicker < g.replayEvery {
		return
	}
	g.replayTicker = 0
	g.engine.StepReplay()
}

// restart resets the puzzle with n disks, stopping the solver if it runs.
// Out-of-range counts are ignored.
func (g *Game) restart(n int) {
	if g.engine.Reset(n) != nil {
		return
	}
	g.disks = n
	g.replayTicker = 0
	g.driver = NewDriver(g.engine)
	g.status = ""
	g.Resize(g.screenW, g.screenH)
}

func (g *Game) handleKeys(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.driver.Shift(-1)
	case in.Has(core.ActionRight):
		g.driver.Shift(1)
	case in.Has(core.ActionRod1):
		g.driver.Point(Source)
	case in.Has(core.ActionRod2):
		g.driver.Point(Auxiliary)
	case in.Has(core.ActionRod3):
		g.driver.Point(Target)
	}

	if in.Has(core.ActionBack) {
		g.driver.CancelDrag()
		g.status = ""
	}

	if in.Has(core.ActionSelect) {
		if held, _, ok := g.driver.Held(); ok && held == g.driver.Cursor() {
			g.driver.CancelDrag()
			return
		}
		_, picked, err := g.driver.Toggle()
		switch {
		case picked:
			g.status = ""
		case errors.Is(err, ErrNothingHeld):
			g.status = msgEmptyRod
		default:
			g.report(err)
		}
	}
}

// releaseIgnored drops a dragged disk back onto its rod when the button is
// released while the board does not take input, so no drag outlives it.
func (g *Game) releaseIgnored(in core.InputFrame) {
	for _, ev := range in.Pointers {
		if ev.Kind == core.PointerUp {
			g.driver.CancelDrag()
			return
		}
	}
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	rod := g.layout.RodAt(ev.X, ev.Y)

	switch ev.Kind {
	case core.PointerDown:
		if rod < 0 {
			return
		}
		g.driver.Point(rod)
		if g.driver.PickUp(rod) {
			g.driver.Drag(ev.X)
			g.status = ""
		}
	case core.PointerMove:
		g.driver.Point(rod)
		g.driver.Drag(ev.X)
	case core.PointerUp:
		held, _, ok := g.driver.Held()
		if !ok {
			return
		}
		if rod < 0 || rod == held {
			g.driver.CancelDrag()
			return
		}
		g.driver.Point(rod)
		_, err := g.driver.Drop(rod)
		g.report(err)
	}
}

func (g *Game) report(err error) {
	switch {
	case err == nil:
		g.status = ""
	case errors.Is(err, ErrIllegalMove):
		g.status = msgIllegal
	case errors.Is(err, ErrReplayInProgress):
		g.status = msgReplaying
	}
}

func hasDirectInput(in core.InputFrame) bool {
	for _, ev := range in.Pointers {
		if ev.Kind != core.PointerMove {
			return true
		}
	}
	return in.Has(core.ActionSelect)
}

// State returns the move count as the score; a solved puzzle counts as over.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    s.Moves,
		GameOver: s.Solved,
		Paused:   g.paused,
	}
}

// Outcome reports the finished puzzle once it is solved.
func (g *Game) Outcome() (core.PuzzleOutcome, bool) {
	if g.engine == nil {
		return core.PuzzleOutcome{}, false
	}
	s := g.engine.State()
	if !s.Solved {
		return core.PuzzleOutcome{}, false
	}
	return core.PuzzleOutcome{
		Variant:  s.Disks,
		Moves:    s.Moves,
		Assisted: s.Assisted,
	}, true
}
