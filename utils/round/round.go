// Package round pins the rounding and clamping conventions used by the
// issuance math. Every nearest-integer step in the forecaster goes through
// HalfAway so the tie-breaking rule stays uniform across the codebase.
package round

import "math"

// HalfAway rounds to the nearest integer, ties away from zero.
// For the non-negative values used in issuance math this is round-half-up:
// HalfAway(0.5) == 1, HalfAway(1.5) == 2.
func HalfAway(v float64) float64 {
	return math.Round(v)
}

// Clamp bounds v into [lo, hi]. The lower bound is applied first, so when the
// bounds cross (lo > hi) the upper bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
