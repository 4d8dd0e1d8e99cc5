package cartomorph

import (
	"math"
	"testing"
)

func TestEaseEndpoints(t *testing.T) {
	curves := []struct {
		name string
		cb   CubicBezier
	}{
		{"ease-in-out", EaseInOut},
		{"linear-ish", CubicBezier{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75}},
		{"ease-in", CubicBezier{X1: 0.42, Y1: 0, X2: 1, Y2: 1}},
	}

	for _, tt := range curves {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cb.Ease(0); got != 0 {
				t.Errorf("Ease(0) = %v, want 0", got)
			}
			if got := tt.cb.Ease(1); got != 1 {
				t.Errorf("Ease(1) = %v, want 1", got)
			}
			if got := tt.cb.Ease(-0.5); got != 0 {
				t.Errorf("Ease(-0.5) = %v, want 0 (clamped)", got)
			}
			if got := tt.cb.Ease(1.5); got != 1 {
				t.Errorf("Ease(1.5) = %v, want 1 (clamped)", got)
			}
		})
	}
}

func TestEaseInOutSymmetry(t *testing.T) {
	// The standard ease-in-out curve is symmetric about (0.5, 0.5).
	if got := EaseInOut.Ease(0.5); math.Abs(got-0.5) > 1e-4 {
		t.Errorf("Ease(0.5) = %v, want 0.5", got)
	}
	for _, x := range []float64{0.1, 0.2, 0.3, 0.4} {
		a := EaseInOut.Ease(x)
		b := EaseInOut.Ease(1 - x)
		if math.Abs(a+b-1) > 1e-4 {
			t.Errorf("Ease(%v)+Ease(%v) = %v, want 1", x, 1-x, a+b)
		}
	}
}

func TestEaseMonotone(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		y := EaseInOut.Ease(x)
		if y < prev-1e-9 {
			t.Fatalf("Ease not monotone at x=%v: %v < %v", x, y, prev)
		}
		if y < 0 || y > 1 {
			t.Fatalf("Ease(%v) = %v out of range", x, y)
		}
		prev = y
	}
}

func TestEaseSlowStartFastMiddle(t *testing.T) {
	// Ease-in-out moves slower than linear near the start and faster in
	// the middle.
	if got := EaseInOut.Ease(0.1); got >= 0.1 {
		t.Errorf("Ease(0.1) = %v, want < 0.1", got)
	}
	mid := EaseInOut.Ease(0.55) - EaseInOut.Ease(0.45)
	if mid <= 0.1 {
		t.Errorf("middle slope %v, want > linear 0.1", mid)
	}
}
