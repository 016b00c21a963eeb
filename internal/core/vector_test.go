package core

import (
	"math"
	"testing"
)

func TestVectorAdvance(t *testing.T) {
	v := Vector{X: 10, Y: 20, DX: -3, DY: 1.5}
	v.Advance()

	if v.X != 7 || v.Y != 21.5 {
		t.Errorf("Advance() = (%f, %f), expected (7, 21.5)", v.X, v.Y)
	}
}

func TestBodyEdges(t *testing.T) {
	b := Body{Vector: Vector{X: 4, Y: 6}, W: 10, H: 20}

	cx, cy := b.Center()
	if cx != 9 || cy != 16 {
		t.Errorf("Center() = (%f, %f), expected (9, 16)", cx, cy)
	}
	if b.Right() != 14 {
		t.Errorf("Right() = %f, expected 14", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %f, expected 26", b.Bottom())
	}
}

func TestClosestApproach(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Body
		expected float64
	}{
		{
			name:     "both at rest",
			a:        Body{Vector: Vector{X: 0, Y: 0}, W: 10, H: 10},
			b:        Body{Vector: Vector{X: 30, Y: 40}, W: 10, H: 10},
			expected: 50,
		},
		{
			name:     "moving apart keeps start distance",
			a:        Body{Vector: Vector{X: 0, Y: 0, DX: -5}, W: 10, H: 10},
			b:        Body{Vector: Vector{X: 20, Y: 0, DX: 5}, W: 10, H: 10},
			expected: 20,
		},
		{
			name:     "passing through within the tick",
			a:        Body{Vector: Vector{X: 0, Y: 0, DX: 20}, W: 10, H: 10},
			b:        Body{Vector: Vector{X: 15, Y: 0}, W: 10, H: 10},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.ClosestApproach(tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("ClosestApproach() = %f, expected %f", got, tc.expected)
			}
			// Also test symmetry
			rev := tc.b.ClosestApproach(tc.a)
			if math.Abs(rev-got) > 1e-9 {
				t.Errorf("ClosestApproach() (reversed) = %f, expected %f", rev, got)
			}
		})
	}
}

func TestClosestApproachBeatsEndOfTickCheck(t *testing.T) {
	// A fast body skips over a thin one between ticks; sampling still sees it.
	fast := Body{Vector: Vector{X: 0, Y: 0, DX: 40}, W: 4, H: 4}
	thin := Body{Vector: Vector{X: 20, Y: 0}, W: 4, H: 4}

	endOfTick := fast
	endOfTick.Advance()
	if d := endOfTick.ClosestApproach(Body{Vector: thin.Vector, W: 4, H: 4}); d < 10 {
		t.Fatalf("setup: end-of-tick distance should be large, got %f", d)
	}

	if d := fast.ClosestApproach(thin); d > 1 {
		t.Errorf("ClosestApproach() = %f, expected the paths to meet", d)
	}
}

func TestClosestApproachNonFinite(t *testing.T) {
	a := Body{Vector: Vector{X: 0, Y: 0, DX: math.Inf(1)}, W: 2, H: 2}
	b := Body{Vector: Vector{X: 3, Y: 4}, W: 2, H: 2}

	if d := a.ClosestApproach(b); d != 5 {
		t.Errorf("ClosestApproach() with infinite velocity = %f, expected static 5", d)
	}

	a.DX = math.NaN()
	if d := a.ClosestApproach(b); d != 5 {
		t.Errorf("ClosestApproach() with NaN velocity = %f, expected static 5", d)
	}
}

func TestAngleDeg(t *testing.T) {
	tests := []struct {
		name           string
		fx, fy, tx, ty float64
		expected       float64
	}{
		{"target below", 0, 0, 0, 10, -90},
		{"target above", 0, 10, 0, 0, 90},
		{"target left", 10, 0, 0, 0, 0},
		{"target below right", 0, 0, 10, 10, -135},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AngleDeg(tc.fx, tc.fy, tc.tx, tc.ty)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("AngleDeg() = %f, expected %f", got, tc.expected)
			}
		})
	}
}
