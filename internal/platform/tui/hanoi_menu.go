package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/games/hanoi"
)

var setupErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

// HanoiSetupKeyMap defines the key bindings for the disk-count prompt.
type HanoiSetupKeyMap struct {
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HanoiSetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HanoiSetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHanoiSetupKeyMap returns default key bindings. Letters are left to
// the text input, so only control keys quit.
func DefaultHanoiSetupKeyMap() HanoiSetupKeyMap {
	return HanoiSetupKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// HanoiSetupModel asks for the number of disks before a Hanoi game starts.
type HanoiSetupModel struct {
	input    textinput.Model
	help     help.Model
	keys     HanoiSetupKeyMap
	width    int
	height   int
	message  string // Validation error for the last submission
	disks    int    // Accepted disk count, 0 while still asking
	quitting bool
	back     bool
}

// NewHanoiSetupModel creates the prompt prefilled with defaultDisks.
func NewHanoiSetupModel(defaultDisks, width, height int) HanoiSetupModel {
	ti := textinput.New()
	ti.Prompt = "Disks: "
	ti.Placeholder = fmt.Sprintf("%d-%d", hanoi.MinDisks, hanoi.MaxDisks)
	ti.CharLimit = 3
	ti.Width = 5
	ti.SetValue(strconv.Itoa(defaultDisks))
	ti.Focus()

	return HanoiSetupModel{
		input:  ti,
		help:   help.New(),
		keys:   DefaultHanoiSetupKeyMap(),
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m HanoiSetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m HanoiSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Confirm):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the input. Invalid input stays in the field with the
// reason shown below it.
func (m HanoiSetupModel) submit() (tea.Model, tea.Cmd) {
	n, err := hanoi.ParseDiskCount(m.input.Value())
	if err != nil {
		m.message = hanoi.InputMessage(err)
		return m, nil
	}
	m.message = ""
	m.disks = n
	return m, tea.Quit
}

// View renders the prompt.
func (m HanoiSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T O W E R   O F   H A N O I"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter the number of disks:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(centerText(setupErrorStyle.Render(m.message), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Disks returns the accepted disk count, or 0 if none was accepted.
func (m HanoiSetupModel) Disks() int {
	return m.disks
}

// Message returns the current validation message.
func (m HanoiSetupModel) Message() string {
	return m.message
}

// IsQuitting returns true if user wants to quit.
func (m HanoiSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m HanoiSetupModel) WantsBack() bool {
	return m.back
}

// RunHanoiSetup asks for the disk count. It returns 0 when the player backed
// out or quit.
func RunHanoiSetup(cfg core.RuntimeConfig) (int, error) {
	p := tea.NewProgram(
		NewHanoiSetupModel(hanoi.ConfiguredDisks(), cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(HanoiSetupModel)
	if !ok {
		return 0, nil
	}
	return m.Disks(), nil
}
