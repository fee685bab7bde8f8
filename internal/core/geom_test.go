package core

import (
	"math"
	"testing"
)

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
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(30, 7, 80, 24)
	if r.X != 25 || r.Y != 8 || r.Right() != 55 || r.Bottom() != 15 {
		t.Errorf("CenteredRect = %+v", r)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{3, 0, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, expected 12.5", got)
	}
}

func TestFrameBlend(t *testing.T) {
	if got := FrameBlend(0.12, 1.0/60.0, 60); math.Abs(got-0.12) > 1e-12 {
		t.Errorf("one reference frame = %v, expected 0.12", got)
	}

	// Two 30 Hz steps cover the same distance as four 60 Hz steps.
	rest30 := math.Pow(1-FrameBlend(0.12, 1.0/30.0, 60), 2)
	rest60 := math.Pow(1-FrameBlend(0.12, 1.0/60.0, 60), 4)
	if math.Abs(rest30-rest60) > 1e-12 {
		t.Errorf("30 Hz remainder %v != 60 Hz remainder %v", rest30, rest60)
	}

	if FrameBlend(0.12, 0, 60) != 0 || FrameBlend(0.12, -1, 60) != 0 {
		t.Error("non-positive dt should not move")
	}
	if FrameBlend(1, 0.001, 60) != 1 {
		t.Error("factor 1 should snap")
	}
}
