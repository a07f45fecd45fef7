package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/games/platformer"
	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

// SessionModel is one player's whole visit: the level menu, an optional
// scoreboard, and the level being played. Leaving a level or the scoreboard
// rebuilds the menu so high scores are fresh.
//
// At most one of board and level is non-nil; with both nil the menu is shown.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	gameOpts []platformer.Option

	menu  MenuModel
	board *ScoreboardModel
	level *Model

	quitting bool
}

// NewSessionModel starts a session on the level menu. gameOpts configure
// every level started from it.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, gameOpts ...platformer.Option) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:    store,
		logger:   logger,
		config:   cfg,
		gameOpts: gameOpts,
		menu:     NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Remembered so screens opened later start at the current size.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	if m.level != nil {
		return m.updateLevel(msg)
	}
	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

// backToMenu closes whatever screen is open and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.level, m.board = nil, nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.config)
		m.board = &board
		return m, board.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().LevelID
		game, err := registry.Create(id, m.gameOpts...)
		if err != nil {
			m.logger.Error("cannot start level", "level", id, "error", err)
			return m.backToMenu()
		}
		level := NewModel(game, m.store, m.logger, m.config)
		m.level = &level
		return m, level.Init()
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}

	switch {
	case m.board.IsQuitting():
		return m.quit()
	case m.board.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateLevel(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.level.Update(msg)
	if level, ok := next.(Model); ok {
		m.level = &level
	}

	switch {
	case m.level.BackToMenu():
		return m.backToMenu()
	case m.level.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.level != nil:
		return m.level.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}

// RunSession runs a session in the local terminal until the player quits.
func RunSession(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, gameOpts ...platformer.Option) error {
	_, err := tea.NewProgram(
		NewSessionModel(store, logger, cfg, gameOpts...),
		tea.WithAltScreen(),
	).Run()
	return err
}
