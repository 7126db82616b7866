package hanoi

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gamebox/internal/core"
)

const footerText = "←→/1-3 rod  Space lift/drop  S solve  +/- disks  I help  P,B menu  Q quit"

var helpLines = []string{
	"Tower of Hanoi Rules:",
	"1. Only one disk can be moved at a time.",
	"2. A disk can only be placed on a larger disk or an empty rod.",
	"3. Goal: Move all disks from the leftmost rod to the rightmost rod.",
	"",
	"Controls:",
	"- Drag the top disk to another rod, or use Space on the selected rod.",
	"- Press Esc to put a lifted disk back.",
	"- Press R to start over, + or - to change the disk count.",
	"- Press S to see the automatic solution.",
	"- Press P to pause, then B to return to the menu.",
	"",
	"Good luck!",
}

// diskColors cycles by disk size so neighbours always differ.
var diskColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorWhite,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	s := g.engine.State()

	g.renderHUD(dst, s)

	if g.layout.TooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	g.renderRods(dst, s)
	g.renderHeld(dst)

	if g.status != "" {
		dst.DrawTextCentered(g.layout.StatusY, g.status)
	} else if s.Replaying {
		dst.DrawTextCentered(g.layout.StatusY, fmt.Sprintf("Solving... %d/%d", s.ReplayDone, s.ReplayTotal))
	}
	if g.screenH > g.layout.StatusY+1 {
		dst.DrawTextColored(0, g.layout.FooterY, footerText, core.ColorGray)
	}

	switch {
	case g.showHelp:
		dst.DrawOverlay(helpLines...)
	case s.Solved:
		lines := []string{
			fmt.Sprintf("Congratulations! You've solved the puzzle in %d moves!", s.Moves),
			fmt.Sprintf("Optimal: %d moves", OptimalMoves(s.Disks)),
			"",
			"R continue   B home",
		}
		if s.Assisted {
			lines[1] += " (solver used)"
		}
		dst.DrawOverlay(lines...)
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue", "B menu")
	}
}

func (g *Game) renderHUD(dst *core.Screen, s State) {
	hud := fmt.Sprintf(" Tower of Hanoi — Disks: %d  Moves: %d  Optimal: %d", s.Disks, s.Moves, OptimalMoves(s.Disks))
	if s.Replaying {
		hud += "  [solver]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderRods(dst *core.Screen, s State) {
	l := g.layout
	held, _, holding := g.driver.Held()

	for rod := range NumRods {
		col := l.Columns[rod]
		cx := l.CenterX(rod)

		dst.DrawVLine(cx, l.PoleTop, l.BaseY-l.PoleTop, '│', core.ColorGray)
		dst.DrawRect(core.NewRect(col.X, l.BaseY, col.W, 1), '▀', core.ColorGray)
		dst.SetColored(cx, l.BaseY, rune('1'+rod), core.ColorGray)

		disks := s.Rods[rod]
		if holding && rod == held && len(disks) > 0 {
			disks = disks[:len(disks)-1]
		}
		for i, size := range disks {
			drawDisk(dst, cx, l.BaseY-1-i, size)
		}

		if !s.Replaying && rod == g.driver.Cursor() {
			c := core.ColorYellow
			if holding && rod != held && !g.driver.CanDrop(rod) {
				c = core.ColorRed
			}
			dst.SetColored(cx, l.CursorY, '▲', c)
		}
	}
}

// renderHeld draws the lifted disk above the rods, following the pointer
// during a mouse drag and the cursor otherwise.
func (g *Game) renderHeld(dst *core.Screen) {
	_, size, ok := g.driver.Held()
	if !ok {
		return
	}
	x := g.layout.CenterX(g.driver.Cursor())
	if dx, dragging := g.driver.DragX(); dragging {
		x = dx
	}
	drawDisk(dst, x, g.layout.HoverY, size)
}

func drawDisk(dst *core.Screen, cx, y, size int) {
	w := diskWidth(size)
	c := diskColors[(size-1)%len(diskColors)]
	dst.DrawTextColored(cx-w/2, y, strings.Repeat("█", w), c)
}
