// Package mathutil provides small numeric helpers for control point geometry.
package mathutil

import (
	"math"
)

// Clamp limits v to the closed interval [lo, hi].
// When lo > hi the interval is empty and lo wins, so callers that need to
// detect that case must check the bounds first.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf.
// 127.5 rounds to 128 and -0.5 rounds to 0.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + halfStep)
}

// Rescale maps v from the interval [lo, lo+span] onto [0, base] and rounds
// the result half-up. A non-positive span maps everything to 0.
func Rescale(v, lo, span, base float64) int {
	if span <= 0 {
		return 0
	}
	return int(RoundHalfUp((v - lo) / span * base))
}

// Hypot returns the Euclidean distance between (x0, y0) and (x1, y1).
func Hypot(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
