package nums

import (
	"cmp"
	"math"
)

// Clamp limits v to the inclusive range [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into the half-open range [lo, hi)
func Wrap(v, lo, hi float64) float64 {
	period := hi - lo
	r := math.Mod(v-lo, period)
	if r < 0 {
		r += period
	}
	if r >= period { // tiny negatives round up to the period itself
		r = 0
	}
	return lo + r
}
