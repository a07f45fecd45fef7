// Package window runs a level in a desktop window using Ebitengine.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

// KeyFunc reports the state of a key.
type KeyFunc func(ebiten.Key) bool

// Keyboard polls the keys bound to game actions.
// Movement is read as held keys; pause, restart and quit fire once per press.
type Keyboard struct {
	Pressed     KeyFunc
	JustPressed KeyFunc
}

// DefaultKeyboard reads the real keyboard.
func DefaultKeyboard() Keyboard {
	return Keyboard{
		Pressed:     ebiten.IsKeyPressed,
		JustPressed: inpututil.IsKeyJustPressed,
	}
}

var heldBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
}

var pressBindings = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape},
}

// Frame builds the input frame for the current tick.
func (k Keyboard) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, keys := range heldBindings {
		if anyKey(k.Pressed, keys) {
			frame.Set(a)
		}
	}
	for a, keys := range pressBindings {
		if anyKey(k.JustPressed, keys) {
			frame.Set(a)
		}
	}
	return frame
}

func anyKey(f KeyFunc, keys []ebiten.Key) bool {
	if f == nil {
		return false
	}
	for _, key := range keys {
		if f(key) {
			return true
		}
	}
	return false
}
