package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-platformer/internal/core"
	_ "github.com/vovakirdan/retro-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(store, nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60})
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm
}

func TestMenuListsBuiltinLevels(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	view := m.View()
	for _, title := range []string{"Meadow", "Stairs", "Towers"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.LevelID != "stairs" {
		t.Errorf("selected %q, expected stairs", sel.LevelID)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{LevelID: "meadow", Score: 70}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
	if !strings.Contains(m.View(), "best 70") {
		t.Error("menu should show the meadow high score")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, nil)

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.level == nil {
		t.Fatal("enter should start the selected level")
	}
	if m.level.game.ID() != "meadow" {
		t.Errorf("started %q, expected meadow", m.level.game.ID())
	}

	m = sessionSend(t, m, TickMsg{})
	m = sessionSend(t, m, runeKey('p'))
	m = sessionSend(t, m, TickMsg{})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.level != nil {
		t.Fatal("esc while paused should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu should not quit the session")
	}
	if !strings.Contains(m.View(), "Select a level") {
		t.Error("session should render the menu again")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := newTestSession(t, nil)

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view should have a title")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("closing the scoreboard should not quit the session")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(t, nil)

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(SessionModel).quitting {
		t.Error("q in a level should quit the session")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := newTestSession(t, nil)

	m = sessionSend(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if w := m.level.screen.Width(); w != 60 {
		t.Errorf("game screen width = %d, expected 60", w)
	}
}

func TestFormatTicks(t *testing.T) {
	if got := formatTicks(90, 60); got != "1.5s" {
		t.Errorf("formatTicks(90, 60) = %q, expected 1.5s", got)
	}
}
