package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

// Rows reserved below the playfield for the short and full help views.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 3
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	pending    core.InputFrame // Actions that fire once, received since the last tick
	gameState  core.GameState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH, false)),
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		hold:    NewHoldTracker(HoldWindow(cfg.TickRate)),
		pending: core.NewInputFrame(),
	}
}

func playfieldHeight(h int, fullHelp bool) int {
	if fullHelp {
		return max(h-fullHelpHeight, 1)
	}
	return max(h-shortHelpHeight, 1)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("level started", "level", m.game.ID(), "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, playfieldHeight(m.config.ScreenH, m.help.ShowAll))
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if !m.gameState.Paused && !m.gameState.Cleared {
			return m, nil
		}
		m.saveRun()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(a)
	case core.ActionJump, core.ActionPause, core.ActionRestart:
		m.pending.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events.
// World coordinates do not depend on the terminal size, so the level keeps
// running and only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height, m.help.ShowAll))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pending.Has(core.ActionRestart) {
		m.saveRun()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.hold.Reset()
		m.pending.Clear()
		m.logger.Info("level restarted", "level", m.game.ID())
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.pending.Clone()
	m.hold.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current session. Runs without points are not recorded.
func (m Model) saveRun() {
	st := m.game.State()
	if m.store == nil || st.Score <= 0 {
		return
	}
	run := storage.Run{
		LevelID: m.game.ID(),
		Score:   st.Score,
		Ticks:   st.Tick,
		Cleared: st.Cleared,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save score", "level", run.LevelID, "error", err)
		return
	}
	m.logger.Info("score saved", "level", run.LevelID, "score", run.Score, "cleared", run.Cleared)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one level in the current terminal until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
