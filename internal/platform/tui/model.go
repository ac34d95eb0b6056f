// Package tui runs a registered game in the terminal with Bubble Tea.
// It drives the fixed tick, maps keys and mouse cells to core input frames,
// and shows the in-process session history.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rogue-invaders/internal/core"
	"github.com/vovakirdan/rogue-invaders/internal/logging"
	"github.com/vovakirdan/rogue-invaders/internal/registry"
	"github.com/vovakirdan/rogue-invaders/internal/storage"
)

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickInterval is the frame duration at rate ticks per second.
// Non-positive rates fall back to the default tick rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdState keeps movement intents alive between key repeats.
// Terminals report presses but no releases, so a press holds the direction
// for a short window that each repeat refreshes.
type holdState struct {
	left  int
	right int
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	showHelp   bool
	history    HistoryModel
	inHistory  bool
	inputFrame core.InputFrame
	hold       holdState
	holdTicks  int
	gameState  core.GameState
	runSummary string // Shown on the game over screen
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		holdTicks:  max(1, cfg.TickRate/2),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(registry.ConfigReporter); ok && r.ConfigErr() != nil {
		m.logger.Warn("using default config", "game", m.game.ID(), "err", r.ConfigErr())
	}
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	if key.Matches(msg, keys.ForceQuit) {
		m.logger.Info("interrupted", "game", m.game.ID())
		m.quitting = true
		return m, tea.Quit
	}

	if m.inHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		if m.history.Closed() {
			m.inHistory = false
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.History):
		if m.gameState.Screen == core.ScreenNameMenu {
			m.history = NewHistoryModel(m.store, m.game.ID(), m.width, m.height)
			m.inHistory = true
		}
		return m, nil
	}

	switch m.keys.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionLeft:
		m.hold = holdState{left: m.holdTicks}
	case core.ActionRight:
		m.hold = holdState{right: m.holdTicks}
	}

	return m, nil
}

// handleMouse turns left clicks into playfield clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inHistory || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	p, ok := m.game.(registry.Pointable)
	if !ok {
		return m, nil
	}

	fieldW, fieldH := p.Playfield()
	vp := core.Viewport{FieldW: fieldW, FieldH: fieldH, Cols: m.screen.Width(), Rows: m.screen.Height()}
	m.inputFrame.Click(vp.ToField(core.Pt(msg.X, msg.Y)))

	return m, nil
}

// handleResize processes window resize events.
// The running session keeps going; rendering rescales to the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.inHistory {
		m.history, _ = m.history.Update(msg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hold.left > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.hold.left--
	}
	if m.hold.right > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.hold.right--
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m = m.recordSession()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.logger.Info("quit", "game", m.game.ID(), "high_score", m.gameState.HighScore)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordSession stores the session that just ended and refreshes the
// summary shown on the game over screen.
func (m Model) recordSession() Model {
	st := m.gameState
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "wave", st.Wave)
	if st.Score > 0 && st.Score == st.HighScore {
		m.logger.Info("new high score", "game", m.game.ID(), "score", st.Score)
	}

	if m.store == nil {
		return m
	}

	if _, err := m.store.RecordSession(m.game.ID(), st.Score, st.Wave); err != nil {
		m.logger.Warn("cannot record session", "err", err)
		return m
	}

	stats, err := m.store.GameStats(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read session stats", "err", err)
		return m
	}
	m.runSummary = fmt.Sprintf("THIS RUN: %d GAMES  BEST %d  AVG %.0f", stats.Sessions, stats.Best, stats.AvgScore)

	return m
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.inHistory {
		return m.history.View()
	}

	rows := m.height
	var helpView string
	if m.showHelp {
		m.help.ShowAll = true
		helpView = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render(m.help.View(m.keys.Keys()))
		rows -= lipgloss.Height(helpView)
	}
	if rows < 1 {
		rows = 1
	}
	if m.screen.Width() != m.width || m.screen.Height() != rows {
		m.screen.Resize(m.width, rows)
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	if m.gameState.GameOver && m.runSummary != "" {
		m.screen.DrawTextCentered(m.screen.Height()-2, m.runSummary, core.ColorGray)
	}

	out := RenderScreen(m.screen)
	if helpView != "" {
		out += "\n" + helpView
	}
	return out
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	_, err := p.Run()
	return err
}
