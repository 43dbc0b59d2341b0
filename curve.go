package curve

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/tphakala/go-curve/internal/points"
	"github.com/tphakala/go-curve/internal/sampler"
	"github.com/tphakala/go-curve/internal/spline"
)

// Variant selects the interpolation scheme used between control points.
type Variant = spline.Variant

// Supported spline variants.
const (
	// VariantNatural is a natural cubic spline (zero curvature at both ends).
	VariantNatural = spline.Natural

	// VariantMonotonic is a shape-preserving cubic that never overshoots.
	VariantMonotonic = spline.Monotonic

	// VariantLinear joins points with straight segments.
	VariantLinear = spline.Linear
)

// ParseVariant maps "natural", "monotonic" or "linear" to a Variant.
func ParseVariant(s string) (Variant, error) {
	return spline.ParseVariant(s)
}

// Value is a point position rescaled into [0, Config.BaseValue].
type Value = points.Value

// Series is a sampled curve with normalized X and Y buffers.
type Series = sampler.Series

// Series32 is the float32 counterpart of Series.
type Series32 = sampler.Series32

// Common errors returned by the editor.
// Each wraps a category from github.com/sgostarter/i/commerr, so callers
// can match either the precise error or the category with errors.Is.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = fmt.Errorf("invalid curve configuration: %w", commerr.ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a point index outside [0, Len()).
	ErrIndexOutOfRange = points.ErrIndexOutOfRange

	// ErrPlacementConflict indicates a point could not be placed without
	// overlapping a neighbour or leaving the canvas.
	ErrPlacementConflict = points.ErrPlacementConflict

	// ErrInvalidCoordinate indicates a NaN or infinite point coordinate.
	ErrInvalidCoordinate = points.ErrInvalidCoordinate

	// ErrInvalidPosition indicates a NaN lookup position.
	ErrInvalidPosition = sampler.ErrInvalidPosition

	// ErrNoPoints indicates a lookup on a curve without control points.
	ErrNoPoints = sampler.ErrNoPoints

	// ErrUnknownVariant indicates an unsupported spline variant.
	ErrUnknownVariant = spline.ErrUnknownVariant
)

// Config holds editor configuration.
type Config struct {
	// Width and Height are the pixel dimensions of the editing surface.
	Width  float64
	Height float64

	// ControlPointRadius is the marker radius in pixels. Points are kept
	// this far from the edges and from each other along x.
	// Set to 0 to use the default of 10.
	ControlPointRadius float64

	// BaseValue is the upper end of the Value range. Set to 0 for 255.
	BaseValue int

	// Variant is the initial spline variant.
	Variant Variant

	// Domain is the number of samples produced by Sample.
	// Set to 0 for one sample per horizontal pixel.
	Domain int

	// Logger receives debug and error entries. Nil disables logging.
	Logger l.Wrapper
}

// withDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.ControlPointRadius == 0 {
		c.ControlPointRadius = defaultControlPointRadius
	}
	if c.BaseValue == 0 {
		c.BaseValue = defaultBaseValue
	}
	if c.Domain == 0 && c.Width > 0 {
		c.Domain = int(math.Ceil(c.Width))
	}
	if c.Logger == nil {
		c.Logger = l.NewNopLoggerWrapper()
	}
	return c
}

// Validate checks if the configuration is valid.
// Zero-valued optional fields are accepted since New fills them in.
func (c *Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("%w: width and height must be positive and finite", ErrInvalidConfig)
	}

	if err := validateRadius(c.ControlPointRadius, c.Width, c.Height); err != nil {
		return err
	}

	if c.BaseValue < 0 {
		return fmt.Errorf("%w: base value must not be negative", ErrInvalidConfig)
	}

	if !c.Variant.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownVariant, int(c.Variant))
	}

	if c.Domain < 0 {
		return fmt.Errorf("%w: domain must not be negative", ErrInvalidConfig)
	}

	return nil
}

func validateRadius(r, width, height float64) error {
	if r < 0 || math.IsNaN(r) {
		return fmt.Errorf("%w: control point radius must not be negative", ErrInvalidConfig)
	}
	if 2*r >= min(width, height) {
		return fmt.Errorf("%w: control point radius %v leaves no room on a %vx%v surface",
			ErrInvalidConfig, r, width, height)
	}
	return nil
}

// Point is a control point in normalized coordinates.
type Point struct {
	// ID identifies the point for its whole lifetime. It is assigned by
	// the editor; any value passed to Add is ignored.
	ID uint64

	// X and Y are normalized to [0, 1].
	X, Y float64

	// XLocked and YLocked freeze an axis during Move.
	XLocked, YLocked bool

	// Value is the position rescaled into [0, BaseValue].
	Value Value
}

// Nearest is the result of a pixel-space nearest point query.
type Nearest struct {
	Index    int
	ID       uint64
	Distance float64 // pixels
}
