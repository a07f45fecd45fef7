package platformer

import "github.com/vovakirdan/retro-platformer/internal/core"

// TokenView is the renderable state of one token.
type TokenView struct {
	Bounds    core.Bounds
	Center    core.Vec2
	Radius    float64
	Collected bool
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating a snapshot has no effect on the world.
type Snapshot struct {
	World     core.Vec2 // World size
	Body      core.Bounds
	Velocity  core.Vec2
	Grounded  bool
	Obstacles []core.Bounds
	Tokens    []TokenView
	Score     int
	Tick      uint64
	Cleared   bool
	Paused    bool
}

// Snapshot returns the current world state for rendering.
func (w *World) Snapshot() Snapshot {
	obstacles := make([]core.Bounds, len(w.platforms))
	for i, p := range w.platforms {
		obstacles[i] = p.Bounds()
	}

	tokens := make([]TokenView, len(w.tokens))
	for i, t := range w.tokens {
		tokens[i] = TokenView{
			Bounds:    t.Bounds(),
			Center:    t.Center(),
			Radius:    t.Radius(),
			Collected: t.Collected(),
		}
	}

	return Snapshot{
		World:     core.Vec2{X: w.bounds.Width, Y: w.bounds.Height},
		Body:      w.body.Bounds(),
		Velocity:  w.body.Velocity(),
		Grounded:  w.body.Grounded(),
		Obstacles: obstacles,
		Tokens:    tokens,
		Score:     w.score,
		Tick:      w.tick,
		Cleared:   w.Cleared(),
	}
}
