// Package core holds the playfield geometry, the character screen buffer and
// the input actions shared by the game and the platform layers. It has no
// external dependencies (especially no Bubble Tea).
package core

// RectF is a float-precision axis-aligned box in playfield units.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the boxes overlap on both axes.
// Strict comparisons: boxes that only share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// SquareAt returns the square of the given half-width centered on (cx, cy).
func SquareAt(cx, cy, half float64) RectF {
	return RectF{X: cx - half, Y: cy - half, W: 2 * half, H: 2 * half}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
