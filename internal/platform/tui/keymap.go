package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebox/internal/core"
)

// gameBindings maps key strings to game actions. A key may carry several
// actions; each game reacts only to the ones it understands, so "s" steers
// the snake down and toggles the Hanoi solver.
var gameBindings = map[string][]core.Action{
	"up":    {core.ActionUp},
	"w":     {core.ActionUp},
	"down":  {core.ActionDown},
	"s":     {core.ActionDown, core.ActionSolve},
	"left":  {core.ActionLeft},
	"a":     {core.ActionLeft},
	"h":     {core.ActionLeft},
	"right": {core.ActionRight},
	"d":     {core.ActionRight},
	"l":     {core.ActionRight},
	" ":     {core.ActionSelect},
	"enter": {core.ActionSelect},
	"b":     {core.ActionBack},
	"esc":   {core.ActionBack},
	"p":     {core.ActionPause},
	"r":     {core.ActionRestart},
	"i":     {core.ActionHelp},
	"?":     {core.ActionHelp},
	"+":     {core.ActionMore},
	"=":     {core.ActionMore},
	"-":     {core.ActionFewer},
	"_":     {core.ActionFewer},
	"1":     {core.ActionRod1},
	"2":     {core.ActionRod2},
	"3":     {core.ActionRod3},
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions.
// Returns the actions (possibly none) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	default:
		return gameBindings[key], false
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MapMouse translates a left-button mouse message into a pointer event.
// Other buttons and wheel events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = core.PointerDown
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
	default:
		return ev, false
	}
	return ev, true
}

// MapMouseToFrame appends the pointer event of a mouse message to a frame.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if ev, ok := km.MapMouse(msg); ok {
		frame.AddPointer(ev)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
