package gamemath

// Source is the uniform random source the scene draws from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Range returns a uniform value in [lo, hi).
func Range(r Source, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns int(Range(lo, hi)), a value in [lo, hi).
func IntRange(r Source, lo, hi int) int {
	return int(Range(r, float64(lo), float64(hi)))
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r Source, items []T) T {
	return items[r.Intn(len(items))]
}
