package gamemath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestStarVertices(t *testing.T) {
	verts := StarVertices(100, 50, 15, 30, 5)
	if len(verts) != 10 {
		t.Fatalf("expected 10 vertices, got %d", len(verts))
	}

	// First tip lies on radius1 along +x
	if !near(verts[0].X, 115) || !near(verts[0].Y, 50) {
		t.Errorf("first vertex = %v, want (115, 50)", verts[0])
	}

	for i, v := range verts {
		want := 15.0
		if i%2 == 1 {
			want = 30
		}
		if d := math.Hypot(v.X-100, v.Y-50); !near(d, want) {
			t.Errorf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestStarVertices_NoPoints(t *testing.T) {
	if verts := StarVertices(0, 0, 1, 2, 0); verts != nil {
		t.Errorf("expected nil for zero points, got %v", verts)
	}
}

func TestHeartSegments(t *testing.T) {
	segs := HeartSegments(200, 100, 10)
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}

	// Closed outline back at the start
	last := segs[3].End
	if !near(last.X, 200) || !near(last.Y, 100) {
		t.Errorf("outline ends at %v, want (200, 100)", last)
	}

	// Tip hangs 2*size below the start
	tip := segs[1].End
	if !near(tip.X, 200) || !near(tip.Y, 120) {
		t.Errorf("tip at %v, want (200, 120)", tip)
	}

	// Lobes reach size to either side
	if !near(segs[0].End.X, 190) || !near(segs[2].End.X, 210) {
		t.Errorf("lobes at %v and %v, want x=190 and x=210", segs[0].End, segs[2].End)
	}
}

func TestTreeLayer(t *testing.T) {
	// 800x600 canvas: center 400, base 500
	apex, left, right := TreeLayer(400, 500, 400, 500, 0.9, 10, 0)
	if !near(apex.X, 400) || !near(apex.Y, 450) {
		t.Errorf("bottom apex = %v, want (400, 450)", apex)
	}
	if !near(left.X, 200) || !near(right.X, 600) || !near(left.Y, 500) {
		t.Errorf("bottom base = %v..%v, want 200..600 at y=500", left, right)
	}

	apex, left, right = TreeLayer(400, 500, 400, 500, 0.9, 10, 9)
	if !near(apex.Y, 0) {
		t.Errorf("top apex y = %v, want 0", apex.Y)
	}
	if w := right.X - left.X; !near(w, 76) {
		t.Errorf("top layer width = %v, want 76", w)
	}
	if !near(left.Y, 50) {
		t.Errorf("top layer base y = %v, want 50", left.Y)
	}
}
