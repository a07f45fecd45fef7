package platformer

import "github.com/vovakirdan/retro-platformer/internal/core"

// Token is a collectible pickup. It is drawn as a circle but collides as the
// circle's bounding box.
type Token struct {
	bounds    core.Bounds
	collected bool
}

// NewToken creates a token whose circle has the given top-left corner and radius.
func NewToken(pos core.Vec2, radius float64) Token {
	return Token{bounds: core.NewBounds(pos.X, pos.Y, 2*radius, 2*radius)}
}

// Bounds returns the token's collision box.
func (t Token) Bounds() core.Bounds {
	return t.bounds
}

// Collected reports whether the token has been picked up.
func (t Token) Collected() bool {
	return t.collected
}

// Center returns the circle's centre.
func (t Token) Center() core.Vec2 {
	return core.Vec2{X: t.bounds.X + t.bounds.W/2, Y: t.bounds.Y + t.bounds.H/2}
}

// Radius returns the circle's radius.
func (t Token) Radius() float64 {
	return t.bounds.W / 2
}

// CollectTokens marks every uncollected token overlapping the body as
// collected, in order, and returns their indices. A token is never collected
// twice.
func CollectTokens(body core.Bounded, tokens []Token) []int {
	bb := body.Bounds()

	var collected []int
	for i := range tokens {
		if tokens[i].collected {
			continue
		}
		if bb.Intersects(tokens[i].bounds) {
			tokens[i].collected = true
			collected = append(collected, i)
		}
	}
	return collected
}
