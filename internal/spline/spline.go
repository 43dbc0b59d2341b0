// Package spline builds interpolants through ordered knots.
//
// The cubic fits are delegated to gonum's interp package:
//   - [Natural] uses interp.NaturalCubic (zero second derivative at both ends,
//     C² continuous, may overshoot between knots)
//   - [Monotonic] uses interp.FritschButland (Hermite tangents limited so that
//     every segment stays within the range of its two knots)
//   - [Linear] uses interp.PiecewiseLinear
//
// Inputs are validated here so that malformed knots surface as errors
// instead of panics from the underlying library.
package spline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgostarter/i/commerr"
	"gonum.org/v1/gonum/interp"
)

// Variant selects the interpolation scheme.
type Variant int

const (
	// Natural is a classic cubic spline with natural boundary conditions.
	Natural Variant = iota

	// Monotonic is a shape-preserving cubic Hermite spline. It never
	// overshoots between consecutive knots, which matters for lookup curves.
	Monotonic

	// Linear joins consecutive knots with straight segments.
	Linear
)

// Common errors returned by Build.
var (
	// ErrInsufficientPoints indicates fewer than two knots.
	ErrInsufficientPoints = errors.New("spline needs at least two knots")

	// ErrLengthMismatch indicates xs and ys have different lengths.
	ErrLengthMismatch = errors.New("knot slices differ in length")

	// ErrNotIncreasing indicates xs is not strictly increasing.
	ErrNotIncreasing = errors.New("knot x values not strictly increasing")

	// ErrUnknownVariant indicates an unsupported Variant value.
	ErrUnknownVariant = fmt.Errorf("unknown spline variant: %w", commerr.ErrInvalidArgument)
)

var variantNames = map[Variant]string{
	Natural:   "natural",
	Monotonic: "monotonic",
	Linear:    "linear",
}

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant maps a name ("natural", "monotonic", "linear") to a Variant.
// Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return Natural, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Interpolant evaluates a fitted curve. It is immutable once built.
type Interpolant interface {
	// Evaluate returns the curve value at x. Results outside the knot
	// range are not meaningful; callers clamp first.
	Evaluate(x float64) float64
}

// fitted adapts a gonum predictor to Interpolant.
type fitted struct {
	predictor interp.Predictor
}

func (f fitted) Evaluate(x float64) float64 {
	return f.predictor.Predict(x)
}

// Build fits an interpolant of the given variant through (xs[i], ys[i]).
// xs must be strictly increasing and at least two knots are required.
// The input slices are not retained.
func Build(variant Variant, xs, ys []float64) (Interpolant, error) {
	if err := validate(xs, ys); err != nil {
		return nil, err
	}

	var fp interp.FittablePredictor
	switch variant {
	case Natural:
		fp = &interp.NaturalCubic{}
	case Monotonic:
		fp = &interp.FritschButland{}
	case Linear:
		fp = &interp.PiecewiseLinear{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(variant))
	}

	// Two knots: every variant degenerates to the chord.
	if len(xs) == minKnots && variant != Linear {
		fp = &interp.PiecewiseLinear{}
	}

	if err := fp.Fit(clone(xs), clone(ys)); err != nil {
		return nil, fmt.Errorf("failed to fit %s spline: %w", variant, err)
	}

	return fitted{predictor: fp}, nil
}

func validate(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < minKnots {
		return fmt.Errorf("%w: got %d", ErrInsufficientPoints, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("%w: xs[%d]=%v, xs[%d]=%v", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}
	return nil
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
