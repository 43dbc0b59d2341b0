package sampler

import (
	"slices"

	"github.com/tphakala/go-curve/internal/simdops"
)

// Series is a sampled curve: X[i] is the normalized position of step i and
// Y[i] the normalized curve value there.
type Series struct {
	X, Y []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.X)
}

// Empty reports whether the series holds no samples.
func (s Series) Empty() bool {
	return len(s.X) == 0
}

// Clone returns a copy that does not alias the sampler's buffers.
func (s Series) Clone() Series {
	return Series{X: slices.Clone(s.X), Y: slices.Clone(s.Y)}
}

// Interleaved returns x0, y0, x1, y1, ... in a new slice.
func (s Series) Interleaved() []float64 {
	out := make([]float64, 2*len(s.X))
	if len(s.X) > 0 {
		simdops.Float64Ops().Interleave2(out, s.X, s.Y)
	}
	return out
}

// Mean returns the average normalized level of the curve, i.e. the area
// under it divided by the sampled width. An empty series has mean 0.
func (s Series) Mean() float64 {
	if len(s.Y) == 0 {
		return 0
	}
	return simdops.Float64Ops().Sum(s.Y) / float64(len(s.Y))
}

// Series32 is the float32 counterpart of Series.
type Series32 struct {
	X, Y []float32
}

// Len returns the number of samples.
func (s Series32) Len() int {
	return len(s.X)
}

// Empty reports whether the series holds no samples.
func (s Series32) Empty() bool {
	return len(s.X) == 0
}

// Clone returns a copy that does not alias the sampler's buffers.
func (s Series32) Clone() Series32 {
	return Series32{X: slices.Clone(s.X), Y: slices.Clone(s.Y)}
}
