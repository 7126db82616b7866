package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamebox/internal/core"
)

// snakeSpeeds lists the difficulty presets offered before a Snake run.
var snakeSpeeds = []struct {
	Preset string
	Label  string
}{
	{"easy", "Easy (slow start)"},
	{"normal", "Normal"},
	{"hard", "Hard (fast start)"},
	{"fixed", "Classic (constant speed)"},
}

// SnakeSpeedModel lets users choose the difficulty preset for Snake.
type SnakeSpeedModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	quitting  bool
	back      bool
}

// NewSnakeSpeedModel creates a new Snake difficulty selection model.
func NewSnakeSpeedModel(width, height int) SnakeSpeedModel {
	return SnakeSpeedModel{
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SnakeSpeedModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SnakeSpeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SnakeSpeedModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(snakeSpeeds)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = snakeSpeeds[m.cursor].Preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the selection.
func (m SnakeSpeedModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select speed:", m.width))
	b.WriteString("\n\n")

	for i, s := range snakeSpeeds {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, s.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m SnakeSpeedModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SnakeSpeedModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SnakeSpeedModel) WantsBack() bool {
	return m.back
}

// RunSnakeSpeedSelector runs the Snake difficulty selection and returns the
// chosen preset, or "" when the player backed out.
func RunSnakeSpeedSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewSnakeSpeedModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(SnakeSpeedModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
