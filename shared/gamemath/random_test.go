package gamemath

import (
	"math/rand"
	"testing"
)

// fixedSource replays the given values
type fixedSource struct {
	floats []float64
	ints   []int
}

func (f *fixedSource) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func (f *fixedSource) Intn(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func TestRange(t *testing.T) {
	src := &fixedSource{floats: []float64{0, 0.5, 0.999999}}

	if got := Range(src, 10, 20); got != 10 {
		t.Errorf("Range at 0 = %v, want 10", got)
	}
	if got := Range(src, 10, 20); got != 15 {
		t.Errorf("Range at 0.5 = %v, want 15", got)
	}
	if got := Range(src, 10, 20); got >= 20 {
		t.Errorf("Range upper bound must be exclusive, got %v", got)
	}
}

func TestRange_NegativeInterval(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Range(r, -600, 0)
		if v < -600 || v >= 0 {
			t.Fatalf("Range(-600, 0) = %v out of range", v)
		}
	}
}

func TestIntRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := IntRange(r, 30, 90)
		if v < 30 || v >= 90 {
			t.Fatalf("IntRange(30, 90) = %d out of range", v)
		}
		seen[v] = true
	}
	if !seen[30] || !seen[89] {
		t.Errorf("expected both ends of [30, 90) to be reachable")
	}
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	src := &fixedSource{ints: []int{2, 0}}

	if got := Pick(src, items); got != "c" {
		t.Errorf("Pick = %q, want c", got)
	}
	if got := Pick(src, items); got != "a" {
		t.Errorf("Pick = %q, want a", got)
	}
}
