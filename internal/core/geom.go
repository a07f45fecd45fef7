// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

// Vec2 is a pair of float64 scalars used for world positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Bounds is an axis-aligned rectangle in world units (pixels).
// The origin is the top-left corner; W and H are never negative.
type Bounds struct {
	X, Y float64
	W, H float64
}

// NewBounds creates bounds at (x, y) with the given size.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{X: x, Y: y, W: w, H: h}
}

// Pos returns the top-left corner.
func (b Bounds) Pos() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.H
}

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Intersects reports whether both rectangles overlap by a positive amount on
// both axes. Touching edges do not count, and empty rectangles never intersect.
func (b Bounds) Intersects(other Bounds) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Translate returns the bounds moved by d.
func (b Bounds) Translate(d Vec2) Bounds {
	return Bounds{X: b.X + d.X, Y: b.Y + d.Y, W: b.W, H: b.H}
}

// Bounds returns b itself, so plain rectangles satisfy Bounded.
func (b Bounds) Bounds() Bounds {
	return b
}

// Bounded is implemented by anything that occupies an axis-aligned area in
// the world: platforms, tokens and the player body.
type Bounded interface {
	Bounds() Bounds
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
