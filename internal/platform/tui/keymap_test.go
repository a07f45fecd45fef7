package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runeKey('w'), core.ActionJump},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHoldWindow(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{60, 9},
		{120, 18},
		{30, 4},
	}
	for _, tc := range tests {
		if got := HoldWindow(tc.rate); got != tc.want {
			t.Errorf("HoldWindow(%d) = %d, expected %d", tc.rate, got, tc.want)
		}
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)

	for i := 0; i < 3; i++ {
		f := core.NewInputFrame()
		h.Apply(&f)
		if !f.Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}

	f := core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ActionLeft)

	f := core.NewInputFrame()
	h.Apply(&f)
	h.Press(core.ActionLeft) // auto-repeat

	for i := 0; i < 2; i++ {
		f := core.NewInputFrame()
		h.Apply(&f)
		if !f.Has(core.ActionLeft) {
			t.Fatalf("tick %d after repeat: left should be held", i)
		}
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right should be held")
	}

	h.Reset()
	f = core.NewInputFrame()
	h.Apply(&f)
	if f.Has(core.ActionRight) {
		t.Error("Reset should release everything")
	}
}

func TestHoldTrackerMinimumWindow(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionLeft)

	f := core.NewInputFrame()
	h.Apply(&f)
	if !f.Has(core.ActionLeft) {
		t.Error("a press should be held for at least one tick")
	}
}
