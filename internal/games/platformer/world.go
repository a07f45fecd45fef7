package platformer

import (
	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
)

// World is the complete simulation state for one run of a level.
// It owns the body, the platforms, the tokens and the score; nothing else
// holds references to them.
type World struct {
	physics   config.PhysicsConfig
	bounds    config.WorldConfig
	reward    int
	body      *Body
	platforms []Platform
	tokens    []Token
	score     int
	tick      uint64
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Contacts  []Contact // Resolved collisions, in obstacle order
	Collected []int     // Indices of tokens collected this tick
	Respawned bool      // Body fell out of the world and was reset
}

// NewWorld builds a fresh world from a level and configuration.
// cfg.Physics must already be scaled to the tick rate the world will run at.
func NewWorld(level Level, cfg config.PlatformerConfig) *World {
	spawn := core.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
	if level.Spawn != nil {
		spawn = *level.Spawn
	}

	platforms := make([]Platform, len(level.Platforms))
	for i, p := range level.Platforms {
		platforms[i] = NewPlatform(p.X, p.Y, p.W, p.H)
	}

	tokens := make([]Token, len(level.Tokens))
	for i, pos := range level.Tokens {
		tokens[i] = NewToken(pos, cfg.Tokens.Radius)
	}

	return &World{
		physics:   cfg.Physics,
		bounds:    cfg.World,
		reward:    cfg.Scoring.TokenReward,
		body:      NewBody(spawn, cfg.Player.Width, cfg.Player.Height),
		platforms: platforms,
		tokens:    tokens,
	}
}

// Tick advances the simulation by one fixed step.
//
// The order is fixed: input impulses, integration, ground reset, collision
// resolution against every platform, then token collection. Ground contact
// is re-derived from scratch each tick, and collisions always resolve the
// penetration caused by this tick's movement.
func (w *World) Tick(in Intent) TickResult {
	var res TickResult

	w.body.ApplyIntent(in, w.physics)
	res.Respawned = w.body.Integrate(w.physics, w.bounds)

	w.body.grounded = false
	res.Contacts = ResolveAll(w.body, w.platforms)

	res.Collected = CollectTokens(w.body, w.tokens)
	w.score += len(res.Collected) * w.reward

	w.tick++
	return res
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Ticks returns the number of ticks simulated.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Body returns a copy of the body state.
func (w *World) Body() Body {
	return *w.body
}

// Remaining returns the number of tokens not yet collected.
func (w *World) Remaining() int {
	n := 0
	for _, t := range w.tokens {
		if !t.collected {
			n++
		}
	}
	return n
}

// Cleared reports whether every token has been collected.
// A level without tokens is never cleared.
func (w *World) Cleared() bool {
	return len(w.tokens) > 0 && w.Remaining() == 0
}
