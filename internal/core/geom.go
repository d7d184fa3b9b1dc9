// Package core provides fundamental types and utilities shared by the game and
// the platform layer. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

import "math"

// Box is a float axis-aligned bounding box in canvas units (origin top-left, y down).
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAround returns the bounding square of a circle.
func BoxAround(cx, cy, radius float64) Box {
	return Box{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Right() > other.X && b.X < other.Right() &&
		b.Bottom() > other.Y && b.Y < other.Bottom()
}

// Depth returns the penetration depth on each axis: the smaller of the two
// distances needed to push b out of other along that axis.
// Only meaningful when the boxes overlap.
func (b Box) Depth(other Box) (dx, dy float64) {
	dx = math.Min(b.Right()-other.X, other.Right()-b.X)
	dy = math.Min(b.Bottom()-other.Y, other.Bottom()-b.Y)
	return dx, dy
}

// Rect is an integer rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
