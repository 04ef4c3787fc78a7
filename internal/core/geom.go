// Package core provides fundamental types and utilities shared by the solver,
// the play mode and the terminal UI. It has no external dependencies (in
// particular no Bubble Tea) to keep puzzle logic pure and testable.
package core

// Rect represents an axis-aligned box on a screen buffer.
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
