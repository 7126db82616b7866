package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/games/hanoi"
	"github.com/vovakirdan/gamebox/internal/registry"
	"github.com/vovakirdan/gamebox/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.gamebox/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.gamebox/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the launcher over SSH with Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamebox-ssh",
	})

	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".gamebox", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	return NewSessionModel(s.store, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Setup holds the per-game choices made before a game starts.
type Setup struct {
	Disks  int    // Hanoi disk count, 0 keeps the default
	Preset string // Snake difficulty preset, "" keeps the default
}

// ApplySetup configures a freshly created game. Choices that do not apply to
// the game are ignored.
func ApplySetup(game registry.Game, s Setup) {
	if s.Disks > 0 {
		if g, ok := game.(interface{ UseDisks(int) }); ok {
			g.UseDisks(s.Disks)
		}
	}
	if s.Preset != "" {
		if g, ok := game.(interface{ UsePreset(string) }); ok {
			g.UsePreset(s.Preset)
		}
	}
}

// sessionStage is the screen a session is on.
type sessionStage int

const (
	stageMenu sessionStage = iota
	stageHanoiSetup
	stageSnakeSpeed
	stageScoreboard
	stageGame
)

// SessionModel runs the whole launcher inside one program:
// menu -> setup -> game -> menu. It is the top-level model of SSH sessions,
// where the launcher cannot restart programs between screens.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	stage      sessionStage
	gameID     string
	menu       MenuModel
	hanoiSetup HanoiSetupModel
	snakeSpeed SnakeSpeedModel
	scoreboard ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageHanoiSetup:
		return m.updateHanoiSetup(msg)
	case stageSnakeSpeed:
		return m.updateSnakeSpeed(msg)
	case stageScoreboard:
		return m.updateScoreboard(msg)
	case stageGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Stage-specific updates drop the child's tea.Quit when the child finishes,
// since finishing a screen only moves the session along.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.stage = stageScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		switch m.gameID {
		case "hanoi":
			m.stage = stageHanoiSetup
			m.hanoiSetup = NewHanoiSetupModel(hanoi.ConfiguredDisks(), m.config.ScreenW, m.config.ScreenH)
			return m, m.hanoiSetup.Init()
		case "snake":
			m.stage = stageSnakeSpeed
			m.snakeSpeed = NewSnakeSpeedModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.snakeSpeed.Init()
		default:
			return m.startGame(Setup{})
		}
	}

	return m, cmd
}

func (m SessionModel) updateHanoiSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.hanoiSetup.Update(msg)
	if setup, ok := next.(HanoiSetupModel); ok {
		m.hanoiSetup = setup
	}

	switch {
	case m.hanoiSetup.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.hanoiSetup.WantsBack():
		return m.backToMenu()
	case m.hanoiSetup.Disks() > 0:
		return m.startGame(Setup{Disks: m.hanoiSetup.Disks()})
	}
	return m, cmd
}

func (m SessionModel) updateSnakeSpeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.snakeSpeed.Update(msg)
	if speed, ok := next.(SnakeSpeedModel); ok {
		m.snakeSpeed = speed
	}

	switch {
	case m.snakeSpeed.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.snakeSpeed.WantsBack():
		return m.backToMenu()
	case m.snakeSpeed.Selected() != "":
		return m.startGame(Setup{Preset: m.snakeSpeed.Selected()})
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

// startGame creates the selected game and hands the screen to it.
func (m SessionModel) startGame(s Setup) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		// The menu only lists registered games.
		return m.backToMenu()
	}
	ApplySetup(game, s)

	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, m.config)
	m.stage = stageGame
	return m, m.game.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.gameID = ""
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageHanoiSetup:
		return m.hanoiSetup.View()
	case stageSnakeSpeed:
		return m.snakeSpeed.View()
	case stageScoreboard:
		return m.scoreboard.View()
	case stageGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
