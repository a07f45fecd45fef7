package platformer

import (
	"math"

	"github.com/vovakirdan/retro-platformer/internal/core"
)

// Push is the direction a body was moved to separate it from an obstacle.
type Push int

const (
	PushNone  Push = iota // No overlap
	PushLeft              // Hit the obstacle's left side
	PushRight             // Hit the obstacle's right side
	PushUp                // Landed on top; sets grounded
	PushDown              // Bumped the underside
)

// String returns a human-readable name for the push direction.
func (p Push) String() string {
	switch p {
	case PushNone:
		return "none"
	case PushLeft:
		return "left"
	case PushRight:
		return "right"
	case PushUp:
		return "up"
	case PushDown:
		return "down"
	default:
		return "unknown"
	}
}

// Contact records one resolved collision during a tick.
type Contact struct {
	Obstacle int // Index in registration order
	Push     Push
}

// Resolve separates the body from one obstacle along the axis of least
// penetration and zeroes velocity on that axis.
//
// Equal penetration on both axes resolves vertically, which keeps a body
// resting on a platform edge standing instead of sliding off sideways.
// With arbitrary coordinates the body ends up touching the obstacle only up
// to float64 rounding.
func Resolve(b *Body, obstacle core.Bounded) Push {
	body := b.bounds
	obs := obstacle.Bounds()
	if !body.Intersects(obs) {
		return PushNone
	}

	left := body.Right() - obs.X
	right := obs.Right() - body.X
	top := body.Bottom() - obs.Y
	bottom := obs.Bottom() - body.Y

	if math.Min(left, right) < math.Min(top, bottom) {
		b.vel.X = 0
		if left < right {
			b.move(core.Vec2{X: -left})
			return PushLeft
		}
		b.move(core.Vec2{X: right})
		return PushRight
	}

	b.vel.Y = 0
	if top < bottom {
		b.move(core.Vec2{Y: -top})
		b.grounded = true
		return PushUp
	}
	b.move(core.Vec2{Y: bottom})
	return PushDown
}

// ResolveAll resolves the body against every obstacle in order. Each step
// sees the position left by the previous one, so order matters when
// platforms overlap or touch.
func ResolveAll[O core.Bounded](b *Body, obstacles []O) []Contact {
	var contacts []Contact
	for i, o := range obstacles {
		if p := Resolve(b, o); p != PushNone {
			contacts = append(contacts, Contact{Obstacle: i, Push: p})
		}
	}
	return contacts
}
