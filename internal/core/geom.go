// Package core holds the terminal cell grid, colors, input actions and the
// small geometry helpers shared by the runner and its renderer. It has no
// Bubble Tea dependency so game logic stays testable on its own.
package core

// Rect is a cell-space rectangle used by the overlay drawing helpers.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp pins v into [lo, hi]. Callers keep lo <= hi.
func Clamp(v, lo, hi int) int {
	return Max(lo, Min(v, hi))
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
