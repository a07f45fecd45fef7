package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/retro-platformer/internal/config"
	"github.com/vovakirdan/retro-platformer/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func defaultPhysics() config.PhysicsConfig {
	return config.DefaultPlatformerConfig().Physics
}

func defaultWorld() config.WorldConfig {
	return config.DefaultPlatformerConfig().World
}

func TestApplyIntentLeftCapsAtMaxSpeed(t *testing.T) {
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)
	p := defaultPhysics()

	for i := 0; i < 10; i++ {
		b.ApplyIntent(Intent{Left: true}, p)
	}

	if b.Velocity().X != -5.0 {
		t.Errorf("velocity.x after 10 left impulses = %v, expected exactly -5.0", b.Velocity().X)
	}
}

func TestApplyIntentRightCapsAtMaxSpeed(t *testing.T) {
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)
	p := defaultPhysics()

	for i := 0; i < 20; i++ {
		b.ApplyIntent(Intent{Right: true}, p)
		if b.Velocity().X > p.MaxSpeed {
			t.Fatalf("velocity.x exceeded max speed: %v", b.Velocity().X)
		}
	}

	if b.Velocity().X != 5.0 {
		t.Errorf("velocity.x = %v, expected exactly 5.0", b.Velocity().X)
	}
}

func TestApplyIntentDoesNotReduceFasterSpeed(t *testing.T) {
	b := NewBody(core.Vec2{}, 30, 30)
	b.vel.X = -7

	b.ApplyIntent(Intent{Left: true}, defaultPhysics())

	// Already beyond max speed: left input adds nothing, and does not clamp
	if b.Velocity().X != -7 {
		t.Errorf("velocity.x = %v, expected -7 unchanged", b.Velocity().X)
	}
}

func TestApplyIntentOpposingInputsCancel(t *testing.T) {
	b := NewBody(core.Vec2{}, 30, 30)

	b.ApplyIntent(Intent{Left: true, Right: true}, defaultPhysics())

	if !approx(b.Velocity().X, 0) {
		t.Errorf("velocity.x = %v, expected 0", b.Velocity().X)
	}
}

func TestJumpRequiresGrounded(t *testing.T) {
	p := defaultPhysics()
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)

	b.ApplyIntent(Intent{Jump: true}, p)
	if b.Velocity().Y != 0 {
		t.Errorf("airborne jump should be ignored, velocity.y = %v", b.Velocity().Y)
	}

	b.grounded = true
	b.ApplyIntent(Intent{Jump: true}, p)
	if b.Velocity().Y != p.JumpForce {
		t.Errorf("velocity.y = %v, expected %v", b.Velocity().Y, p.JumpForce)
	}
	if b.Grounded() {
		t.Error("jump should clear grounded")
	}
}

func TestIntegrateGravityAndFriction(t *testing.T) {
	b := NewBody(core.Vec2{X: 100, Y: 100}, 30, 30)
	b.vel = core.Vec2{X: 2, Y: 0}

	if b.Integrate(defaultPhysics(), defaultWorld()) {
		t.Fatal("unexpected respawn")
	}

	v := b.Velocity()
	if !approx(v.X, 1.7) || !approx(v.Y, 0.6) {
		t.Errorf("velocity = %+v, expected (1.7, 0.6)", v)
	}
	pos := b.Bounds()
	if !approx(pos.X, 101.7) || !approx(pos.Y, 100.6) {
		t.Errorf("position = (%v, %v), expected (101.7, 100.6)", pos.X, pos.Y)
	}
}

func TestFrictionCompoundsTowardZero(t *testing.T) {
	b := NewBody(core.Vec2{X: 400, Y: 0}, 30, 30)
	b.vel.X = 5
	p := defaultPhysics()
	w := config.WorldConfig{Width: 800, Height: 1e9}

	prev := b.Velocity().X
	for i := 0; i < 50; i++ {
		b.Integrate(p, w)
		if b.Velocity().X >= prev {
			t.Fatalf("tick %d: friction should shrink velocity, %v -> %v", i, prev, b.Velocity().X)
		}
		prev = b.Velocity().X
	}
	if prev > 0.01 {
		t.Errorf("velocity.x after 50 ticks = %v, expected near zero", prev)
	}
}

func TestIntegrateClampKeepsVelocity(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wantX float64
	}{
		{"left wall", 2, -10, 0},
		{"right wall", 765, 10, 770},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(core.Vec2{X: tc.x, Y: 100}, 30, 30)
			b.vel.X = tc.vx

			b.Integrate(defaultPhysics(), defaultWorld())

			if b.Bounds().X != tc.wantX {
				t.Errorf("x = %v, expected %v", b.Bounds().X, tc.wantX)
			}
			if !approx(b.Velocity().X, tc.vx*0.85) {
				t.Errorf("clamp should keep velocity: vx = %v, expected %v", b.Velocity().X, tc.vx*0.85)
			}
		})
	}
}

func TestIntegrateRespawnsBelowWorld(t *testing.T) {
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)
	b.bounds.X, b.bounds.Y = 0, 598
	b.vel = core.Vec2{X: 0, Y: 10}

	if !b.Integrate(defaultPhysics(), defaultWorld()) {
		t.Fatal("expected respawn after falling to y ~608.6")
	}

	if pos := b.Bounds(); pos.X != 50 || pos.Y != 400 {
		t.Errorf("position = (%v, %v), expected spawn (50, 400)", pos.X, pos.Y)
	}
	if v := b.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %+v, expected zero", v)
	}
}

func TestIntegrateNoRespawnAtExactLowerBound(t *testing.T) {
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)
	b.bounds.Y = 599
	b.vel.Y = 0.4

	if b.Integrate(defaultPhysics(), defaultWorld()) {
		t.Errorf("y = 600 is not past the lower bound, got respawn")
	}
	if b.Bounds().Y != 600 {
		t.Errorf("y = %v, expected 600", b.Bounds().Y)
	}
}
