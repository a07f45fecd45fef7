package platformer

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

// Platform is a static, solid rectangle. Platforms never move or change.
type Platform struct {
	bounds core.Bounds
}

// NewPlatform creates a platform at (x, y) with the given size.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{bounds: core.NewBounds(x, y, w, h)}
}

// Bounds returns the platform's rectangle.
func (p Platform) Bounds() core.Bounds {
	return p.bounds
}

// Level is the static description of a playable level.
// Platforms and tokens are kept in registration order, which is also the
// order they are resolved and tested in every tick.
type Level struct {
	ID        string
	Name      string
	Platforms []core.Bounds
	Tokens    []core.Vec2 // Top-left corner of each token's bounding box
	Spawn     *core.Vec2  // Overrides the configured spawn point when set
}

// Validate reports levels the simulation cannot use.
func (l Level) Validate() error {
	if l.ID == "" {
		return errors.New("level: missing id")
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("level %s: no platforms", l.ID)
	}
	for i, p := range l.Platforms {
		if p.Empty() {
			return fmt.Errorf("level %s: platform %d has no area (%vx%v)", l.ID, i, p.W, p.H)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out levels without sharing
// slices.
func (l Level) Clone() Level {
	c := l
	c.Platforms = append([]core.Bounds(nil), l.Platforms...)
	c.Tokens = append([]core.Vec2(nil), l.Tokens...)
	if l.Spawn != nil {
		sp := *l.Spawn
		c.Spawn = &sp
	}
	return c
}

// Meadow is the original single-screen level.
func Meadow() Level {
	return Level{
		ID:   "meadow",
		Name: "Meadow",
		Platforms: []core.Bounds{
			core.NewBounds(0, 550, 800, 50), // Ground
			core.NewBounds(200, 450, 100, 20),
			core.NewBounds(400, 350, 100, 20),
			core.NewBounds(600, 250, 100, 20),
			core.NewBounds(100, 200, 80, 20),
		},
		Tokens: []core.Vec2{
			{X: 230, Y: 410},
			{X: 440, Y: 310},
			{X: 640, Y: 210},
			{X: 130, Y: 160},
			{X: 500, Y: 510},
			{X: 700, Y: 510},
		},
	}
}
