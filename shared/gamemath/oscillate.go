package gamemath

// Bounce steps value by step*dir and reflects it off [lo, hi].
// When the stepped value passes a bound it is clamped to that bound and the
// direction flips, producing a triangle wave with no phase reset.
func Bounce(value, dir, step, lo, hi float64) (float64, float64) {
	value += dir * step
	if value > hi {
		return hi, -1
	}
	if value < lo {
		return lo, 1
	}
	return value, dir
}
