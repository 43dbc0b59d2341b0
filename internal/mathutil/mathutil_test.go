package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClamp tests Clamp at and around both bounds.
func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		lo, hi   float64
		expected float64
	}{
		{"Inside", 5, 0, 10, 5},
		{"Below", -1, 0, 10, 0},
		{"Above", 11, 0, 10, 10},
		{"At lower", 0, 0, 10, 0},
		{"At upper", 10, 0, 10, 10},
		{"Empty interval", 5, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

// TestRoundHalfUp tests that ties go toward positive infinity.
func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		v        float64
		expected float64
	}{
		{127.5, 128},
		{127.49, 127},
		{0, 0},
		{-0.5, 0},
		{-1.5, -1},
		{254.999, 255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundHalfUp(tt.v), "RoundHalfUp(%v)", tt.v)
	}
}

// TestRescale tests mapping onto a base range.
func TestRescale(t *testing.T) {
	const base = 255.0

	assert.Equal(t, 0, Rescale(10, 10, 380, base), "lower end")
	assert.Equal(t, 255, Rescale(390, 10, 380, base), "upper end")
	assert.Equal(t, 128, Rescale(200, 10, 380, base), "exact midpoint rounds up")
	assert.Equal(t, 0, Rescale(200, 10, 0, base), "degenerate span")
	assert.Equal(t, 0, Rescale(200, 10, -5, base), "negative span")
}

// TestHypot tests the distance helper.
func TestHypot(t *testing.T) {
	assert.InDelta(t, 5.0, Hypot(0, 0, 3, 4), 1e-15)
	assert.InDelta(t, math.Sqrt2, Hypot(1, 1, 2, 2), 1e-15)
	assert.Zero(t, Hypot(7, 7, 7, 7))
}
