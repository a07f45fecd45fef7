// Package platformer implements a single-screen platformer: a player body
// moving under gravity and friction, resolving collisions against static
// platforms and collecting tokens for score.
//
// All simulation is pure and deterministic for a given input sequence; the
// platform layer owns timing, input polling and display.
package platformer

import (
	"math"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
)

// Intent is the per-tick movement input for a body.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// IntentFromFrame extracts movement intents from a platform input frame.
func IntentFromFrame(in core.InputFrame) Intent {
	return Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// Body is the player-controlled rigid body.
// Position and velocity are only written by ApplyIntent, Integrate and the
// collision resolver.
type Body struct {
	bounds   core.Bounds
	vel      core.Vec2
	grounded bool
	spawn    core.Vec2
}

// NewBody creates a body at its spawn point with zero velocity.
func NewBody(spawn core.Vec2, w, h float64) *Body {
	return &Body{
		bounds: core.NewBounds(spawn.X, spawn.Y, w, h),
		spawn:  spawn,
	}
}

// Bounds returns the body's current rectangle.
func (b *Body) Bounds() core.Bounds {
	return b.bounds
}

// Velocity returns the body's current velocity in world units per tick.
func (b *Body) Velocity() core.Vec2 {
	return b.vel
}

// Grounded reports whether the body landed on a platform during the last
// resolution pass.
func (b *Body) Grounded() bool {
	return b.grounded
}

// ApplyIntent converts held input into velocity impulses.
// Horizontal impulses never push speed past MaxSpeed; jumping requires
// ground contact from the previous tick.
func (b *Body) ApplyIntent(in Intent, p config.PhysicsConfig) {
	if in.Left && b.vel.X > -p.MaxSpeed {
		b.vel.X = math.Max(b.vel.X-p.MoveSpeed, -p.MaxSpeed)
	}
	if in.Right && b.vel.X < p.MaxSpeed {
		b.vel.X = math.Min(b.vel.X+p.MoveSpeed, p.MaxSpeed)
	}
	if in.Jump && b.grounded {
		b.vel.Y = p.JumpForce
		b.grounded = false
	}
}

// Integrate advances the body one tick with explicit Euler integration,
// clamps it horizontally to the world and respawns it if it fell out.
// Returns true if the body was respawned.
func (b *Body) Integrate(p config.PhysicsConfig, world config.WorldConfig) bool {
	b.vel.Y += p.Gravity
	b.vel.X *= p.Friction

	b.bounds = b.bounds.Translate(b.vel)

	// Position only: velocity survives the wall, so the body can keep
	// pushing against it.
	b.bounds.X = core.ClampF(b.bounds.X, 0, world.Width-b.bounds.W)

	if b.bounds.Y > world.Height {
		b.Respawn()
		return true
	}
	return false
}

// Respawn puts the body back at its spawn point at rest.
func (b *Body) Respawn() {
	b.bounds.X = b.spawn.X
	b.bounds.Y = b.spawn.Y
	b.vel = core.Vec2{}
}

// move displaces the body without touching velocity.
func (b *Body) move(d core.Vec2) {
	b.bounds = b.bounds.Translate(d)
}
