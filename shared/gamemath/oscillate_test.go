package gamemath

import "testing"

func TestBounce(t *testing.T) {
	tests := []struct {
		name             string
		value, dir       float64
		wantValue, wantD float64
	}{
		{"inside moving up", 200, 1, 202, 1},
		{"inside moving down", 200, -1, 198, -1},
		{"reaches upper bound", 253, 1, 255, 1},
		{"passes upper bound", 254, 1, 255, -1},
		{"passes lower bound", 151, -1, 150, 1},
		{"starts far below", 0, 1, 150, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, d := Bounce(tt.value, tt.dir, 2, 150, 255)
			if v != tt.wantValue || d != tt.wantD {
				t.Errorf("Bounce(%v, %v) = (%v, %v), want (%v, %v)",
					tt.value, tt.dir, v, d, tt.wantValue, tt.wantD)
			}
		})
	}
}

func TestBounce_StaysInBounds(t *testing.T) {
	v, d := 0.0, 1.0
	flips := 0
	for i := 0; i < 1000; i++ {
		prev := d
		v, d = Bounce(v, d, 0.5, 5, 15)
		if i > 0 && (v < 5 || v > 15) {
			t.Fatalf("frame %d: glow %v left [5, 15]", i, v)
		}
		if d != prev {
			flips++
		}
	}
	if flips < 40 {
		t.Errorf("expected the glow to keep reversing, got %d flips", flips)
	}
}
