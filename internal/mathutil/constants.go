package mathutil

// Rounding constants
const (
	halfStep = 0.5 // Offset applied before flooring for half-up rounding
)
