package core

import "math"

// Vector is a position plus the velocity applied to it once per tick.
type Vector struct {
	X, Y   float64 // Position in pixels (top-left of the owning body)
	DX, DY float64 // Velocity in pixels per tick
}

// Advance moves the position by one tick of velocity.
func (v *Vector) Advance() {
	v.X += v.DX
	v.Y += v.DY
}

// Body is an axis-aligned box moving through pixel space.
type Body struct {
	Vector
	W, H float64
}

// Center returns the centre point of the body.
func (b Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// ClosestApproach estimates the minimum distance between the centres of two
// bodies during the upcoming tick. Both centre paths are sampled from the
// current position towards position+velocity, with one sample per pixel of
// the fastest velocity component involved.
func (b Body) ClosestApproach(other Body) float64 {
	ax, ay := b.Center()
	bx, by := other.Center()

	fastest := math.Max(
		math.Max(math.Abs(b.DX), math.Abs(b.DY)),
		math.Max(math.Abs(other.DX), math.Abs(other.DY)),
	)

	// At rest (or with unusable velocities) only the current distance exists.
	if fastest == 0 || math.IsNaN(fastest) || math.IsInf(fastest, 0) {
		return Distance(ax, ay, bx, by)
	}

	slice := 1 / fastest
	minSq := math.Inf(1)
	for t := 0.0; t < 1; t += slice {
		x := (ax + b.DX*t) - (bx + other.DX*t)
		y := (ay + b.DY*t) - (by + other.DY*t)
		minSq = math.Min(minSq, x*x+y*y)
	}

	d := math.Sqrt(minSq)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Distance(ax, ay, bx, by)
	}
	return d
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleDeg returns atan2(fromY-toY, fromX-toX) in degrees.
// A target straight below the origin yields -90.
func AngleDeg(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(fromY-toY, fromX-toX) * 180 / math.Pi
}
