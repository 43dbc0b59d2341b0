package spline

// Knot count constants
const (
	minKnots = 2 // Smallest knot count any variant can fit
)
