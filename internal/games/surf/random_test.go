package surf

import "testing"

// FixedSource replays a fixed sequence of draws, cycling when exhausted.
// An empty FixedSource always returns 0.
type FixedSource struct {
	values []float64
	next   int
}

func NewFixedSource(values ...float64) *FixedSource {
	return &FixedSource{values: values}
}

func (f *FixedSource) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// Draws returns how many values have been consumed.
func (f *FixedSource) Draws() int {
	return f.next
}

func TestNewRandomSourceIsSeeded(t *testing.T) {
	a, b := NewRandomSource(42), NewRandomSource(42)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs for the same seed: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d = %v, expected [0, 1)", i, x)
		}
	}
}
