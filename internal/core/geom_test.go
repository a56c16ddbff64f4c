package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RectF{0, 0, 10, 10}, RectF{5, 5, 10, 10}, true},
		{"edge touch is not overlap", RectF{0, 0, 10, 10}, RectF{10, 0, 10, 10}, false},
		{"corner touch is not overlap", RectF{0, 0, 10, 10}, RectF{10, 10, 5, 5}, false},
		{"horizontal only", RectF{0, 0, 10, 10}, RectF{5, 20, 10, 10}, false},
		{"fractional overlap", RectF{0, 0, 10, 10}, RectF{9.99, 9.99, 1, 1}, true},
		{"contained", RectF{0, 0, 20, 20}, RectF{5, 5, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSquareAt(t *testing.T) {
	sq := SquareAt(15, 505, 4)
	if sq.X != 11 || sq.Y != 501 || sq.W != 8 || sq.H != 8 {
		t.Errorf("SquareAt() = %+v", sq)
	}
	if sq.Right() != 19 || sq.Bottom() != 509 {
		t.Errorf("edges = (%v, %v), expected (19, 509)", sq.Right(), sq.Bottom())
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
