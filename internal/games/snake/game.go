// Package snake implements the classic Snake on an open board: the snake
// starts as a lone head, grows by one segment per food, and the run ends when
// it leaves the board or bites itself.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gamebox/internal/config"
	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a cell on the board.
type Point struct {
	X, Y int
}

const hudHeight = 2

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rt         core.RuntimeConfig

	rng            *rand.Rand
	tick           uint64
	score          int
	interval       time.Duration // Current delay between moves
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	food      Point

	// Board placement on screen
	boardW  int
	boardH  int
	offsetX int
	offsetY int

	preset string // Per-game difficulty preset, overrides the package one

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// UsePreset sets the difficulty preset of this game for every later Reset.
func (g *Game) UsePreset(preset string) {
	g.preset = preset
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads the config and starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	scfg, err := config.LoadSnake(configPath)
	if err != nil {
		scfg = config.DefaultSnakeConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplySnakePreset(&scfg, config.ParsePreset(preset))
	}
	g.cfg = scfg
	g.difficulty = config.NewDifficultyManager(scfg.Difficulty)
	g.rt = cfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.boardW = scfg.Board.Width
	g.boardH = scfg.Board.Height

	g.snake = []Point{{X: scfg.Start.X, Y: scfg.Start.Y}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.updateSpeed()
	g.spawnFood()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recenters the board for a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h

	// Board plus its frame below the HUD.
	g.tooSmall = w < g.boardW+2 || h < g.boardH+2+hudHeight
	g.offsetX = (w-g.boardW)/2 - 1
	g.offsetY = hudHeight
}

// updateSpeed converts the current move interval into ticks.
func (g *Game) updateSpeed() {
	g.interval = g.difficulty.Interval(g.cfg.Movement.Interval, g.cfg.Movement.MinInterval, g.score, int(g.tick))
	g.moveEveryTicks = g.rt.TicksFor(int(g.interval.Milliseconds()))
}

// spawnFood places food at a random free cell.
func (g *Game) spawnFood() {
	var free []Point
	for y := range g.boardH {
		for x := range g.boardW {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		// Board is full.
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.rt.ScreenW,
			ScreenH:  g.rt.ScreenH,
			TickRate: g.rt.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// next returns the cell one step from p in direction d.
func next(p Point, d Direction) Point {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir
	newHead := next(g.snake[0], g.direction)

	if newHead.X < 0 || newHead.X >= g.boardW || newHead.Y < 0 || newHead.Y >= g.boardH {
		g.gameOver = true
		return
	}

	eating := newHead == g.food

	// The tail moves away this step unless the snake grows.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]Point{newHead}, body...)

	if eating {
		g.score = len(g.snake) - 1
		g.updateSpeed()
		g.spawnFood()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", g.boardW+2, g.boardH+2+hudHeight))
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY, g.boardW+2, g.boardH+2))

	if g.food.X >= 0 {
		dst.SetColored(g.offsetX+1+g.food.X, g.offsetY+1+g.food.Y, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = '@', core.ColorYellow
		}
		dst.SetColored(g.offsetX+1+seg.X, g.offsetY+1+seg.Y, r, c)
	}

	switch {
	case g.gameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d", g.score), "R restart   B menu")
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue", "B menu")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Interval: %v", g.score, g.interval)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
