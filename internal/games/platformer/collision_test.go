package platformer

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

func bodyAt(x, y float64) *Body {
	b := NewBody(core.Vec2{X: 50, Y: 400}, 30, 30)
	b.bounds.X, b.bounds.Y = x, y
	return b
}

func TestResolvePushDirections(t *testing.T) {
	tests := []struct {
		name     string
		body     core.Vec2
		obstacle core.Bounds
		want     Push
		wantPos  core.Vec2
		grounded bool
	}{
		{
			name:     "land on top",
			body:     core.Vec2{X: 100, Y: 100},
			obstacle: core.NewBounds(90, 125, 200, 20),
			want:     PushUp,
			wantPos:  core.Vec2{X: 100, Y: 95},
			grounded: true,
		},
		{
			name:     "hit underside",
			body:     core.Vec2{X: 100, Y: 140},
			obstacle: core.NewBounds(90, 125, 200, 20),
			want:     PushDown,
			wantPos:  core.Vec2{X: 100, Y: 145},
		},
		{
			name:     "hit left side",
			body:     core.Vec2{X: 85, Y: 100},
			obstacle: core.NewBounds(110, 90, 50, 60),
			want:     PushLeft,
			wantPos:  core.Vec2{X: 80, Y: 100},
		},
		{
			name:     "hit right side",
			body:     core.Vec2{X: 155, Y: 100},
			obstacle: core.NewBounds(110, 90, 50, 60),
			want:     PushRight,
			wantPos:  core.Vec2{X: 160, Y: 100},
		},
		{
			name:     "equal penetration from above lands on top",
			body:     core.Vec2{X: 0, Y: 0},
			obstacle: core.NewBounds(15, 15, 30, 30),
			want:     PushUp,
			wantPos:  core.Vec2{X: 0, Y: -15},
			grounded: true,
		},
		{
			name:     "equal penetration from below pushes down",
			body:     core.Vec2{X: 0, Y: 0},
			obstacle: core.NewBounds(-15, -15, 30, 30),
			want:     PushDown,
			wantPos:  core.Vec2{X: 0, Y: 15},
		},
		{
			name:     "touching edges do not collide",
			body:     core.Vec2{X: 100, Y: 95},
			obstacle: core.NewBounds(90, 125, 200, 20),
			want:     PushNone,
			wantPos:  core.Vec2{X: 100, Y: 95},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bodyAt(tc.body.X, tc.body.Y)
			b.vel = core.Vec2{X: 3, Y: 4}

			got := Resolve(b, tc.obstacle)

			if got != tc.want {
				t.Fatalf("push = %s, expected %s", got, tc.want)
			}
			pos := b.Bounds().Pos()
			if pos != tc.wantPos {
				t.Errorf("position = %+v, expected %+v", pos, tc.wantPos)
			}
			if b.Grounded() != tc.grounded {
				t.Errorf("grounded = %v, expected %v", b.Grounded(), tc.grounded)
			}

			wantVel := core.Vec2{X: 3, Y: 4}
			switch tc.want {
			case PushLeft, PushRight:
				wantVel.X = 0
			case PushUp, PushDown:
				wantVel.Y = 0
			}
			if b.Velocity() != wantVel {
				t.Errorf("velocity = %+v, expected %+v", b.Velocity(), wantVel)
			}
		})
	}
}

func TestResolveLeavesNoOverlap(t *testing.T) {
	obstacle := core.NewBounds(100, 100, 60, 20)

	// Every half-unit position where a 30x30 body strictly overlaps the
	// obstacle. Half units are exact in float64, so the check is strict here;
	// arbitrary coordinates only separate up to rounding, see
	// TestResolveSeparatesArbitraryBodies.
	for x := 70.5; x < 160; x += 0.5 {
		for y := 70.5; y < 120; y += 0.5 {
			b := bodyAt(x, y)
			if !b.Bounds().Intersects(obstacle) {
				t.Fatalf("setup: (%v, %v) should overlap", x, y)
			}

			push := Resolve(b, obstacle)

			if push == PushNone {
				t.Fatalf("(%v, %v): overlapping body was not resolved", x, y)
			}
			if b.Bounds().Intersects(obstacle) {
				t.Fatalf("(%v, %v): body still overlaps after push %s -> %+v", x, y, push, b.Bounds())
			}
		}
	}
}

// overlapDepth returns how far two boxes still interpenetrate, or 0 if they
// are apart or touching.
func overlapDepth(a, b core.Bounds) float64 {
	x := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	y := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if x <= 0 || y <= 0 {
		return 0
	}
	return math.Min(x, y)
}

func TestResolveSeparatesArbitraryBodies(t *testing.T) {
	const epsilon = 1e-9
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		obstacle := core.NewBounds(
			rng.Float64()*700,
			rng.Float64()*500,
			1+rng.Float64()*200,
			1+rng.Float64()*60,
		)
		x := obstacle.X - 30 + rng.Float64()*(obstacle.W+30)
		y := obstacle.Y - 30 + rng.Float64()*(obstacle.H+30)
		b := bodyAt(x, y)
		if !b.Bounds().Intersects(obstacle) {
			continue
		}

		push := Resolve(b, obstacle)

		if push == PushNone {
			t.Fatalf("body %+v vs %+v: overlapping body was not resolved", core.Vec2{X: x, Y: y}, obstacle)
		}
		if d := overlapDepth(b.Bounds(), obstacle); d > epsilon {
			t.Fatalf("body %+v vs %+v: still %g deep after push %s", core.Vec2{X: x, Y: y}, obstacle, d, push)
		}
	}
}

func TestResolveAllOrderMatters(t *testing.T) {
	ground := core.NewBounds(0, 130, 300, 20)
	post := core.NewBounds(90, 120, 20, 40)

	tests := []struct {
		name      string
		obstacles []core.Bounds
		contacts  []Contact
		wantPos   core.Vec2
	}{
		{
			name:      "ground first",
			obstacles: []core.Bounds{ground, post},
			contacts:  []Contact{{Obstacle: 0, Push: PushUp}, {Obstacle: 1, Push: PushUp}},
			wantPos:   core.Vec2{X: 100, Y: 90},
		},
		{
			name:      "post first",
			obstacles: []core.Bounds{post, ground},
			contacts:  []Contact{{Obstacle: 0, Push: PushRight}, {Obstacle: 1, Push: PushUp}},
			wantPos:   core.Vec2{X: 110, Y: 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bodyAt(100, 105)

			contacts := ResolveAll(b, tc.obstacles)

			if len(contacts) != len(tc.contacts) {
				t.Fatalf("contacts = %v, expected %v", contacts, tc.contacts)
			}
			for i := range contacts {
				if contacts[i] != tc.contacts[i] {
					t.Errorf("contact[%d] = %+v, expected %+v", i, contacts[i], tc.contacts[i])
				}
			}
			if pos := b.Bounds().Pos(); pos != tc.wantPos {
				t.Errorf("position = %+v, expected %+v", pos, tc.wantPos)
			}
		})
	}
}

func TestResolveAllAcceptsPlatforms(t *testing.T) {
	b := bodyAt(100, 100)
	platforms := []Platform{NewPlatform(0, 0, 10, 10), NewPlatform(90, 125, 200, 20)}

	contacts := ResolveAll(b, platforms)

	if len(contacts) != 1 || contacts[0].Obstacle != 1 || contacts[0].Push != PushUp {
		t.Errorf("contacts = %+v, expected single PushUp against platform 1", contacts)
	}
}

func TestPushString(t *testing.T) {
	tests := []struct {
		push Push
		want string
	}{
		{PushNone, "none"},
		{PushLeft, "left"},
		{PushRight, "right"},
		{PushUp, "up"},
		{PushDown, "down"},
		{Push(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.push.String(); got != tc.want {
			t.Errorf("Push(%d).String() = %q, expected %q", tc.push, got, tc.want)
		}
	}
}
