package hanoi

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gamebox/internal/core"
)

// newTestGame starts a 3-disk game on an 80x24 screen with an isolated home
// directory, so no user config leaks in. Rod centers are at x=28, 39 and 50;
// disks rest on rows 12 and above.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func pointer(g *Game, kind core.PointerKind, x, y int) core.StepResult {
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: kind, X: x, Y: y})
	return g.Step(in)
}

func TestGameStartsFromConfig(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	if snap.Disks != 3 || snap.Moves != 0 || snap.State != StatePlaying {
		t.Errorf("initial snapshot %+v", snap)
	}
	if snap.Rods != "[3 2 1] [] []" {
		t.Errorf("rods = %s", snap.Rods)
	}
}

func TestKeyboardPickAndDrop(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionSelect)
	if snap := g.Snapshot(); snap.Held != Source {
		t.Fatalf("held = %d, want source", snap.Held)
	}
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionSelect)

	snap := g.Snapshot()
	if snap.Rods != "[3 2] [] [1]" || snap.Moves != 1 || snap.Held != -1 {
		t.Errorf("after drop: %+v", snap)
	}
}

func TestKeyboardIllegalDrop(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionSelect)
	press(g, core.ActionRod3)
	press(g, core.ActionSelect) // disk 1 -> rod 3

	press(g, core.ActionRod1)
	press(g, core.ActionSelect) // lift disk 2
	press(g, core.ActionRod3)
	press(g, core.ActionSelect) // onto disk 1: illegal

	snap := g.Snapshot()
	if snap.Moves != 1 || snap.Rods != "[3 2] [] [1]" {
		t.Errorf("illegal drop changed state: %+v", snap)
	}
	if snap.Held != -1 {
		t.Error("disk should return to its rod after an illegal drop")
	}
	if g.status != msgIllegal {
		t.Errorf("status = %q", g.status)
	}
}

func TestKeyboardCancelDrag(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionSelect)
	press(g, core.ActionRight)
	press(g, core.ActionBack)

	if snap := g.Snapshot(); snap.Held != -1 || snap.Moves != 0 {
		t.Errorf("after cancel: %+v", snap)
	}
}

func TestSelectOnEmptyRod(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionRod2)
	press(g, core.ActionSelect)

	if snap := g.Snapshot(); snap.Held != -1 {
		t.Errorf("picked from empty rod: %+v", snap)
	}
	if g.status != msgEmptyRod {
		t.Errorf("status = %q", g.status)
	}
}

func TestMouseDragAndDrop(t *testing.T) {
	g := newTestGame(t)

	pointer(g, core.PointerDown, 28, 12)
	pointer(g, core.PointerMove, 35, 5)
	if x, ok := g.driver.DragX(); !ok || x != 35 {
		t.Errorf("DragX = %d, %v", x, ok)
	}
	pointer(g, core.PointerUp, 39, 12)

	snap := g.Snapshot()
	if snap.Rods != "[3 2] [1] []" || snap.Moves != 1 {
		t.Errorf("after drag: %+v", snap)
	}
}

func TestMouseReleaseOutsideCancels(t *testing.T) {
	g := newTestGame(t)

	pointer(g, core.PointerDown, 28, 12)
	pointer(g, core.PointerUp, 2, 12)

	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Held != -1 || snap.Rods != "[3 2 1] [] []" {
		t.Errorf("after release outside: %+v", snap)
	}
}

func TestMouseReleaseOnSameRod(t *testing.T) {
	g := newTestGame(t)

	pointer(g, core.PointerDown, 28, 12)
	pointer(g, core.PointerUp, 29, 10)

	if snap := g.Snapshot(); snap.Moves != 0 || snap.Held != -1 {
		t.Errorf("after same-rod release: %+v", snap)
	}
	if g.status != "" {
		t.Errorf("same-rod release should be silent, status = %q", g.status)
	}
}

func TestSolveReplayPacing(t *testing.T) {
	g := newTestGame(t)
	every := g.replayEvery
	if every != 60 {
		t.Fatalf("replayEvery = %d, want 60 (1s at 60 fps)", every)
	}

	press(g, core.ActionSolve)
	if snap := g.Snapshot(); snap.Moves != 1 || snap.State != StateReplaying {
		t.Fatalf("after starting solve: %+v", snap)
	}

	for range every - 1 {
		press(g)
	}
	if g.Snapshot().Moves != 1 {
		t.Fatal("second move arrived early")
	}
	press(g)
	if g.Snapshot().Moves != 2 {
		t.Fatal("second move missing")
	}

	press(g, core.ActionSolve)
	for range 3 * every {
		press(g)
	}
	snap := g.Snapshot()
	if snap.Moves != 2 || snap.State != StatePlaying {
		t.Errorf("after stopping solve: %+v", snap)
	}
}

func TestInputIgnoredDuringReplay(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionSolve)

	press(g, core.ActionSelect)
	pointer(g, core.PointerDown, 39, 12)

	snap := g.Snapshot()
	if snap.Held != -1 || snap.Disks != 3 || snap.Moves != 1 {
		t.Errorf("input applied during replay: %+v", snap)
	}
	if g.status != msgReplaying {
		t.Errorf("status = %q", g.status)
	}
}

func TestRestartStopsReplay(t *testing.T) {
	tests := []struct {
		name      string
		action    core.Action
		wantDisks int
	}{
		{"restart", core.ActionRestart, 3},
		{"more disks", core.ActionMore, 4},
		{"fewer disks at minimum", core.ActionFewer, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			press(g, core.ActionSolve)
			press(g)

			press(g, tt.action)
			snap := g.Snapshot()
			if snap.Disks != tt.wantDisks {
				t.Errorf("disks = %d, want %d", snap.Disks, tt.wantDisks)
			}
			if tt.action == core.ActionFewer {
				// Below the minimum nothing restarts and the solver keeps going.
				if snap.State != StateReplaying {
					t.Errorf("state = %s, want replaying", snap.State)
				}
				return
			}
			if snap.Moves != 0 || snap.State != StatePlaying || snap.Assisted {
				t.Errorf("after %s during replay: %+v", tt.name, snap)
			}
			if g.status != "" {
				t.Errorf("status = %q, want empty", g.status)
			}

			for range 2 * g.replayEvery {
				press(g)
			}
			if g.Snapshot().Moves != 0 {
				t.Error("solver moved the restarted puzzle")
			}
			press(g, core.ActionSelect)
			if g.Snapshot().Held != Source {
				t.Error("fresh puzzle does not take input")
			}
		})
	}
}

func TestSolveToCompletion(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionSolve)

	var res core.StepResult
	for range 7 * g.replayEvery {
		res = press(g)
	}
	if !res.State.GameOver || res.State.Score != 7 {
		t.Fatalf("state after full replay: %+v", res.State)
	}

	out, ok := g.Outcome()
	if !ok {
		t.Fatal("Outcome not reported for a solved puzzle")
	}
	if out != (core.PuzzleOutcome{Variant: 3, Moves: 7, Assisted: true}) {
		t.Errorf("outcome = %+v", out)
	}
}

func TestManualSolveOutcome(t *testing.T) {
	g := newTestGame(t)
	for _, m := range Solve(3, Source, Target, Auxiliary) {
		press(g, core.Action(int(core.ActionRod1)+m.From))
		press(g, core.ActionSelect)
		press(g, core.Action(int(core.ActionRod1)+m.To))
		press(g, core.ActionSelect)
	}

	out, ok := g.Outcome()
	if !ok || out.Assisted || out.Moves != 7 {
		t.Errorf("outcome = %+v, %v", out, ok)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "You've solved the puzzle in 7 moves!") {
		t.Error("solved overlay missing")
	}
}

func TestChangeDiskCount(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionMore)
	if g.Disks() != 4 || g.Snapshot().Rods != "[4 3 2 1] [] []" {
		t.Errorf("after more: disks=%d rods=%s", g.Disks(), g.Snapshot().Rods)
	}
	press(g, core.ActionFewer)
	press(g, core.ActionFewer)
	if g.Disks() != 3 {
		t.Errorf("disk count went below the minimum: %d", g.Disks())
	}

	press(g, core.ActionMore)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.Disks() != 4 {
		t.Errorf("restart lost the chosen disk count: %d", g.Disks())
	}
}

func TestSetDisks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetDisks(6)
	t.Cleanup(func() { SetDisks(0) })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.Disks() != 6 {
		t.Errorf("disks = %d, want 6", g.Disks())
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionSelect)
	press(g, core.ActionRod2)
	press(g, core.ActionSelect)

	g.Resize(100, 30)
	if snap := g.Snapshot(); snap.Moves != 1 || snap.Rods != "[3 2] [1] []" {
		t.Errorf("resize lost progress: %+v", snap)
	}

	g.Resize(20, 8)
	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("state = %s, want paused_small_window", snap.State)
	}
}

func TestPauseAndHelp(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionPause)
	press(g, core.ActionSelect)
	if snap := g.Snapshot(); snap.State != StatePaused || snap.Held != -1 {
		t.Errorf("input applied while paused: %+v", snap)
	}
	press(g, core.ActionPause)

	press(g, core.ActionHelp)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Tower of Hanoi Rules:") {
		t.Error("help overlay missing")
	}
	press(g, core.ActionBack)
	if g.showHelp {
		t.Error("Back should close the help overlay")
	}
}

func TestReleaseWhileInputBlockedDropsDrag(t *testing.T) {
	tests := []struct {
		name  string
		block func(g *Game)
	}{
		{"help", func(g *Game) { press(g, core.ActionHelp) }},
		{"pause", func(g *Game) { press(g, core.ActionPause) }},
		{"small window", func(g *Game) { g.Resize(20, 8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			pointer(g, core.PointerDown, 28, 12)
			if g.Snapshot().Held != Source {
				t.Fatal("disk not lifted")
			}

			tt.block(g)
			pointer(g, core.PointerUp, 50, 12)
			if snap := g.Snapshot(); snap.Held != -1 || snap.Moves != 0 {
				t.Errorf("release while blocked: %+v", snap)
			}
			if _, dragging := g.driver.DragX(); dragging {
				t.Error("drag survived the release")
			}
		})
	}
}

func TestMenuHints(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "P,B menu") {
		t.Error("footer does not say how to reach the menu")
	}
	if n := len([]rune(footerText)); n > 80 {
		t.Errorf("footer is %d columns wide", n)
	}

	press(g, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "B menu") {
		t.Error("pause overlay does not mention B")
	}
	press(g, core.ActionPause)

	press(g, core.ActionHelp)
	g.Render(screen)
	if !strings.Contains(screen.String(), "then B to return to the menu") {
		t.Error("help does not mention the menu")
	}
}

func TestCursorMarksIllegalTarget(t *testing.T) {
	g := newTestGame(t)
	// Smallest disk to rod 2, then lift the middle disk from rod 1.
	press(g, core.ActionSelect)
	press(g, core.ActionRod2)
	press(g, core.ActionSelect)
	press(g, core.ActionRod1)
	press(g, core.ActionSelect)

	tests := []struct {
		rod  core.Action
		x    int
		want core.Color
	}{
		{core.ActionRod2, 39, core.ColorRed},
		{core.ActionRod3, 50, core.ColorYellow},
		{core.ActionRod1, 28, core.ColorYellow},
	}
	screen := core.NewScreen(80, 24)
	for _, tt := range tests {
		press(g, tt.rod)
		g.Render(screen)
		if got := screen.GetCell(tt.x, 14).Color; got != tt.want {
			t.Errorf("cursor at x=%d color = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRenderHUDAndDisks(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Disks: 3  Moves: 0  Optimal: 7") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	// Largest disk sits directly on the base of rod 1.
	if got := string([]rune(screen.Row(12))[24:33]); got != " ███████ " {
		t.Errorf("bottom disk row = %q", got)
	}
	if screen.Get(28, 14) != '▲' {
		t.Error("cursor marker missing under rod 1")
	}
}
