package core

import (
	"math"
	"testing"
)

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Circle{Center: V(0, 0), Radius: 10},
			b:        Circle{Center: V(15, 0), Radius: 10},
			expected: true,
		},
		{
			name:     "separated",
			a:        Circle{Center: V(0, 0), Radius: 10},
			b:        Circle{Center: V(30, 0), Radius: 10},
			expected: false,
		},
		{
			name:     "touching (no overlap)",
			a:        Circle{Center: V(0, 0), Radius: 10},
			b:        Circle{Center: V(20, 0), Radius: 10},
			expected: false,
		},
		{
			name:     "touching diagonally (no overlap)",
			a:        Circle{Center: V(0, 0), Radius: 2},
			b:        Circle{Center: V(3, 4), Radius: 3},
			expected: false,
		},
		{
			name:     "just inside",
			a:        Circle{Center: V(0, 0), Radius: 2},
			b:        Circle{Center: V(3, 4), Radius: 3.0001},
			expected: true,
		},
		{
			name:     "contained",
			a:        Circle{Center: V(0, 0), Radius: 50},
			b:        Circle{Center: V(5, 5), Radius: 1},
			expected: true,
		},
		{
			name:     "same center",
			a:        Circle{Center: V(7, 7), Radius: 1},
			b:        Circle{Center: V(7, 7), Radius: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestDistAndDirection(t *testing.T) {
	if d := Dist(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}

	dir := Direction(V(0, 0), V(3, 4))
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("Direction() = %+v, expected (0.6, 0.8)", dir)
	}
	if math.Abs(dir.Len()-1) > 1e-9 {
		t.Errorf("Direction() should be unit length, got %f", dir.Len())
	}

	// Direction to self is zero, not NaN
	zero := Direction(V(2, 2), V(2, 2))
	if zero != (Vec2{}) {
		t.Errorf("Direction() to same point = %+v, expected zero vector", zero)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, 5)

	if got := a.Add(b); got != V(4, 7) {
		t.Errorf("Add() = %+v", got)
	}
	if got := b.Sub(a); got != V(2, 3) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := a.Scale(3); got != V(3, 6) {
		t.Errorf("Scale() = %+v", got)
	}

	p := Polar(math.Pi/2, 2)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Errorf("Polar(pi/2, 2) = %+v, expected (0, 2)", p)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("Right()/Bottom() = %d/%d, expected 30/25", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3, 10, 0, 5}, // inverted range collapses to midpoint
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
