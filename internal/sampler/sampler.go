// Package sampler turns a set of control points into a densely sampled,
// normalized curve.
//
// Sampling policy, for pixel positions p = 0, 1, ..., domain-1:
//   - no points: the series is empty
//   - one point: every entry holds that point's y
//   - two or more: left of the first point the first y is held, right of the
//     last point the last y is held, and in between the spline is evaluated
//
// Output y is clamped to [0, height] before normalization so overshoot from
// the natural variant never leaves the unit range.
//
// The interpolant is rebuilt on every call. Control point counts are small
// and rebuilding keeps the sampler free of invalidation logic.
package sampler

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
	"github.com/tphakala/go-curve/internal/mathutil"
	"github.com/tphakala/go-curve/internal/simdops"
	"github.com/tphakala/go-curve/internal/spline"
)

// Common errors returned by the sampler.
var (
	// ErrInvalidDimensions indicates a non-positive width/height or negative domain.
	ErrInvalidDimensions = fmt.Errorf("invalid sampling dimensions: %w", commerr.ErrInvalidArgument)

	// ErrInvalidPosition indicates a NaN lookup position.
	ErrInvalidPosition = fmt.Errorf("invalid lookup position: %w", commerr.ErrInvalidArgument)

	// ErrNoPoints indicates a single-value lookup on a curve without points.
	ErrNoPoints = fmt.Errorf("curve has no points: %w", commerr.ErrNotFound)
)

// Source supplies the current control point coordinates.
// XSeries must be strictly increasing and index-aligned with YSeries.
type Source interface {
	XSeries() []float64
	YSeries() []float64
}

// Sampler evaluates the curve described by a Source.
// Buffers returned by Sample and Sample32 are owned by the Sampler and are
// overwritten by the next call; use Clone to keep them.
type Sampler struct {
	src     Source
	variant spline.Variant

	series   Series
	series32 Series32
}

// New creates a sampler reading points from src.
func New(src Source, variant spline.Variant) *Sampler {
	return &Sampler{
		src:     src,
		variant: variant,
	}
}

// Variant returns the spline variant used for interpolation.
func (s *Sampler) Variant() spline.Variant {
	return s.variant
}

// SetVariant selects the spline variant for subsequent calls.
func (s *Sampler) SetVariant(v spline.Variant) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %d", spline.ErrUnknownVariant, int(v))
	}
	s.variant = v
	return nil
}

// Sample regenerates the float64 series over domain integer steps.
func (s *Sampler) Sample(width, height float64, domain int) (Series, error) {
	if err := validateDimensions(width, height, domain); err != nil {
		return Series{}, err
	}

	eval, err := s.evaluator()
	if err != nil {
		return Series{}, err
	}
	if eval == nil {
		s.series.X, s.series.Y = s.series.X[:0], s.series.Y[:0]
		return s.series, nil
	}

	s.series.X = resize(s.series.X, domain)
	s.series.Y = resize(s.series.Y, domain)
	fill(s.series.X, s.series.Y, eval, width, height)

	return s.series, nil
}

// Sample32 is like Sample but fills float32 buffers.
func (s *Sampler) Sample32(width, height float64, domain int) (Series32, error) {
	if err := validateDimensions(width, height, domain); err != nil {
		return Series32{}, err
	}

	eval, err := s.evaluator()
	if err != nil {
		return Series32{}, err
	}
	if eval == nil {
		s.series32.X, s.series32.Y = s.series32.X[:0], s.series32.Y[:0]
		return s.series32, nil
	}

	s.series32.X = resize(s.series32.X, domain)
	s.series32.Y = resize(s.series32.Y, domain)
	fill(s.series32.X, s.series32.Y, eval, width, height)

	return s.series32, nil
}

// ValueAt returns the normalized curve value at normalized position x,
// using the same extrapolation and clamping as Sample. Infinite positions
// take the end values; NaN fails with ErrInvalidPosition.
func (s *Sampler) ValueAt(width, height, x float64) (float64, error) {
	if err := validateDimensions(width, height, 0); err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, ErrInvalidPosition
	}

	eval, err := s.evaluator()
	if err != nil {
		return 0, err
	}
	if eval == nil {
		return 0, ErrNoPoints
	}

	return mathutil.Clamp(eval(x*width), 0, height) / height, nil
}

// evaluator builds the pixel-space curve function for the current points.
// It returns a nil function when there are no points.
func (s *Sampler) evaluator() (func(x float64) float64, error) {
	xs, ys := s.src.XSeries(), s.src.YSeries()

	switch len(xs) {
	case 0:
		return nil, nil
	case 1:
		y := ys[0]
		return func(float64) float64 { return y }, nil
	}

	ip, err := spline.Build(s.variant, xs, ys)
	if err != nil {
		return nil, fmt.Errorf("failed to build interpolant: %w", err)
	}

	first, last := xs[0], xs[len(xs)-1]
	firstY, lastY := ys[0], ys[len(ys)-1]

	return func(x float64) float64 {
		switch {
		case x <= first:
			return firstY
		case x >= last:
			return lastY
		default:
			return ip.Evaluate(x)
		}
	}, nil
}

// fill writes clamped pixel values for positions 0..len(xs)-1 and
// normalizes both buffers in place.
func fill[F simdops.Float](xs, ys []F, eval func(float64) float64, width, height float64) {
	for i := range xs {
		pos := float64(i)
		xs[i] = F(pos)
		ys[i] = F(mathutil.Clamp(eval(pos), 0, height))
	}

	ops := simdops.For[F]()
	ops.Scale(xs, xs, F(1/width))
	ops.Scale(ys, ys, F(1/height))
}

// resize returns buf with length n, reallocating only when it is too small.
// Contents are not preserved.
func resize[F simdops.Float](buf []F, n int) []F {
	if cap(buf) < n {
		return make([]F, n)
	}
	return buf[:n]
}

func validateDimensions(width, height float64, domain int) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("%w: width=%v height=%v", ErrInvalidDimensions, width, height)
	}
	if domain < 0 {
		return fmt.Errorf("%w: domain=%d", ErrInvalidDimensions, domain)
	}
	return nil
}
