// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It has no external dependencies so the
// game logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w by h rectangle centered in an area of the given
// size.
func CenteredRect(w, h, areaW, areaH int) Rect {
	return NewRect((areaW-w)/2, (areaH-h)/2, w, h)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
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

// Lerp returns the point t of the way from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FrameBlend converts a per-frame smoothing factor tuned at refHz into the
// blend for a step of dt seconds, so exponential following converges at the
// same speed at any frame rate.
func FrameBlend(factor, dt, refHz float64) float64 {
	if dt <= 0 || factor <= 0 {
		return 0
	}
	if factor >= 1 {
		return 1
	}
	return 1 - math.Pow(1-factor, dt*refHz)
}
