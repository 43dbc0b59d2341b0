// Package points stores the control points of an editable curve.
//
// A Collection keeps its points sorted strictly ascending by X, inside
// per-axis limits, and never lets two points share (or cross) an X
// coordinate. Indices are positional: removing a point shifts every index
// after it, so callers holding an index must refresh it after Remove.
//
// The collection is not safe for concurrent use.
package points

import (
	"fmt"
	"math"
	"slices"

	"github.com/sgostarter/i/commerr"
	"github.com/tphakala/go-curve/internal/mathutil"
)

// Common errors returned by Collection operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = fmt.Errorf("point index out of range: %w", commerr.ErrOutOfRange)

	// ErrPlacementConflict indicates no position satisfies both the minimum
	// separation from neighbours and the boundary limits.
	ErrPlacementConflict = fmt.Errorf("no room to place point: %w", commerr.ErrAlreadyExists)

	// ErrInvalidBounds indicates limits with Min > Max or non-finite values.
	ErrInvalidBounds = fmt.Errorf("invalid point bounds: %w", commerr.ErrInvalidArgument)

	// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
	ErrInvalidCoordinate = fmt.Errorf("non-finite point coordinate: %w", commerr.ErrInvalidArgument)
)

// Value is a control point position rescaled into [0, base].
type Value struct {
	X, Y int
}

// ControlPoint is a user-placed anchor the curve passes through.
type ControlPoint struct {
	X, Y float64

	// XLocked and YLocked freeze an axis during Move.
	XLocked, YLocked bool

	// Value is derived from X and Y whenever they change.
	Value Value
}

// Limits is a closed interval on one axis.
type Limits struct {
	Min, Max float64
}

// Span returns Max - Min.
func (l Limits) Span() float64 {
	return l.Max - l.Min
}

// Bounds holds the limits for both axes.
type Bounds struct {
	X, Y Limits
}

// Validate checks that both axes are well-formed intervals.
func (b Bounds) Validate() error {
	for _, lim := range []Limits{b.X, b.Y} {
		if !(lim.Min <= lim.Max) {
			return fmt.Errorf("%w: min %v > max %v", ErrInvalidBounds, lim.Min, lim.Max)
		}
		if math.IsInf(lim.Min, 0) || math.IsInf(lim.Max, 0) {
			return fmt.Errorf("%w: infinite limits [%v, %v]", ErrInvalidBounds, lim.Min, lim.Max)
		}
	}
	return nil
}

// Nearest is the result of a nearest-neighbour query.
type Nearest struct {
	Index    int
	Distance float64
}

// Collection owns an ordered set of control points.
type Collection struct {
	points    []ControlPoint
	bounds    Bounds
	baseValue float64
}

// New creates an empty collection with the given limits.
// baseValue is the upper end of the range used for ControlPoint.Value.
func New(bounds Bounds, baseValue int) *Collection {
	return &Collection{
		bounds:    bounds,
		baseValue: float64(baseValue),
	}
}

// Bounds returns the current limits.
func (c *Collection) Bounds() Bounds {
	return c.bounds
}

// SetBounds replaces the limits. Existing points are not moved.
func (c *Collection) SetBounds(b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	c.bounds = b
	return nil
}

// Len returns the number of points.
func (c *Collection) Len() int {
	return len(c.points)
}

// Point returns a copy of the point at index.
func (c *Collection) Point(index int) (ControlPoint, bool) {
	if index < 0 || index >= len(c.points) {
		return ControlPoint{}, false
	}
	return c.points[index], true
}

// Points returns a copy of all points in X order.
func (c *Collection) Points() []ControlPoint {
	return slices.Clone(c.points)
}

// XSeries returns the X coordinates in ascending order.
func (c *Collection) XSeries() []float64 {
	xs := make([]float64, len(c.points))
	for i, p := range c.points {
		xs[i] = p.X
	}
	return xs
}

// YSeries returns the Y coordinates, index-aligned with XSeries.
func (c *Collection) YSeries() []float64 {
	ys := make([]float64, len(c.points))
	for i, p := range c.points {
		ys[i] = p.Y
	}
	return ys
}

// Clear removes every point.
func (c *Collection) Clear() {
	c.points = c.points[:0]
}

// Add inserts p and returns its index.
//
// Both coordinates are first clamped to the limits shrunk by radius. If a
// neighbour lies within radius along X, the point is pushed away until it is
// exactly radius from that neighbour. When the gap it falls into cannot hold
// it, the gaps on either side are tried and the position closest to the
// requested X wins. If none fits, Add fails with ErrPlacementConflict and the
// collection is unchanged. Non-finite coordinates fail with
// ErrInvalidCoordinate.
func (c *Collection) Add(p ControlPoint, radius float64) (int, error) {
	if err := checkFinite(p.X, p.Y); err != nil {
		return -1, err
	}
	radius = max(radius, 0)

	xlo, xhi := c.inner(c.bounds.X, radius)
	ylo, yhi := c.inner(c.bounds.Y, radius)
	if xlo > xhi || ylo > yhi {
		return -1, fmt.Errorf("%w: radius %v does not fit bounds", ErrPlacementConflict, radius)
	}

	x := mathutil.Clamp(p.X, xlo, xhi)
	y := mathutil.Clamp(p.Y, ylo, yhi)

	index, _ := slices.BinarySearchFunc(c.points, x, func(cp ControlPoint, x float64) int {
		if cp.X <= x {
			return -1
		}
		return 1
	})

	s, ok := c.place(index, x, xlo, xhi, radius)
	if !ok {
		return -1, fmt.Errorf("%w: x=%v", ErrPlacementConflict, x)
	}

	p.X, p.Y = s.x, y
	p.Value = c.value(s.x, y, radius)
	c.points = slices.Insert(c.points, s.index, p)

	return s.index, nil
}

// Remove deletes the point at index and returns it.
func (c *Collection) Remove(index int) (ControlPoint, error) {
	if index < 0 || index >= len(c.points) {
		return ControlPoint{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.points))
	}
	removed := c.points[index]
	c.points = slices.Delete(c.points, index, index+1)
	return removed, nil
}

// Move relocates the point at index towards (x, y) and returns its index.
//
// A locked axis keeps its current coordinate; a point locked on both axes
// does not move at all. Unlocked coordinates are clamped to the limits
// shrunk by radius, and X is further clamped so the point stays at least
// radius away from its neighbours: points never pass through each other,
// so the index is unchanged. If the neighbours are already closer than
// 2*radius, X stays where it is. Non-finite targets fail with
// ErrInvalidCoordinate, even on a locked axis.
func (c *Collection) Move(index int, x, y, radius float64) (int, error) {
	if index < 0 || index >= len(c.points) {
		return index, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.points))
	}

	if err := checkFinite(x, y); err != nil {
		return index, err
	}

	p := &c.points[index]
	if p.XLocked && p.YLocked {
		return index, nil
	}
	radius = max(radius, 0)

	if p.XLocked {
		x = p.X
	} else {
		xlo, xhi := c.inner(c.bounds.X, radius)
		lo, hi := c.gap(index, index+1, xlo, xhi, radius)
		if lo <= hi {
			x = mathutil.Clamp(x, lo, hi)
		}
		if lo > hi || c.touches(index, index+1, x, radius) {
			x = p.X
		}
	}

	if p.YLocked {
		y = p.Y
	} else {
		ylo, yhi := c.inner(c.bounds.Y, radius)
		if ylo <= yhi {
			y = mathutil.Clamp(y, ylo, yhi)
		} else {
			y = p.Y
		}
	}

	p.X, p.Y = x, y
	p.Value = c.value(x, y, radius)

	return index, nil
}

// SetLocks changes the axis locks of the point at index.
func (c *Collection) SetLocks(index int, xLocked, yLocked bool) error {
	if index < 0 || index >= len(c.points) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.points))
	}
	c.points[index].XLocked = xLocked
	c.points[index].YLocked = yLocked
	return nil
}

// Nearest returns the point closest to (x, y) by Euclidean distance.
// Ties go to the lower index. The second result is false when empty.
func (c *Collection) Nearest(x, y float64) (Nearest, bool) {
	if len(c.points) == 0 {
		return Nearest{Index: -1}, false
	}

	best := Nearest{Index: 0, Distance: mathutil.Hypot(x, y, c.points[0].X, c.points[0].Y)}
	for i := 1; i < len(c.points); i++ {
		d := mathutil.Hypot(x, y, c.points[i].X, c.points[i].Y)
		if d < best.Distance {
			best = Nearest{Index: i, Distance: d}
		}
	}
	return best, true
}

// inner returns the limits shrunk by radius on both sides.
func (c *Collection) inner(lim Limits, radius float64) (lo, hi float64) {
	return lim.Min + radius, lim.Max - radius
}

// slot is an insertion position.
type slot struct {
	index int
	x     float64
}

// place returns the admissible slot closest to x among the gap at index and
// the gaps directly on either side of it. Ties go to the gap at index.
func (c *Collection) place(index int, x, xlo, xhi, radius float64) (slot, bool) {
	var best slot
	found := false

	for _, i := range []int{index, index - 1, index + 1} {
		if i < 0 || i > len(c.points) {
			continue
		}
		lo, hi := c.gap(i, i, xlo, xhi, radius)
		if lo > hi {
			continue
		}
		cx := mathutil.Clamp(x, lo, hi)
		if c.touches(i, i, cx, radius) {
			continue
		}
		if !found || math.Abs(cx-x) < math.Abs(best.x-x) {
			best, found = slot{index: i, x: cx}, true
		}
	}

	return best, found
}

// gap returns the admissible X interval between the point before left and
// the point at right, intersected with [xlo, xhi].
func (c *Collection) gap(left, right int, xlo, xhi, radius float64) (lo, hi float64) {
	lo, hi = xlo, xhi
	if left > 0 {
		lo = max(lo, c.points[left-1].X+radius)
	}
	if right < len(c.points) {
		hi = min(hi, c.points[right].X-radius)
	}
	return lo, hi
}

// touches reports whether x would reach the point before left or the point
// at right. It only matters when radius is zero.
func (c *Collection) touches(left, right int, x, radius float64) bool {
	if radius > 0 {
		return false
	}
	if left > 0 && c.points[left-1].X >= x {
		return true
	}
	return right < len(c.points) && c.points[right].X <= x
}

func checkFinite(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}
	return nil
}

func (c *Collection) value(x, y, radius float64) Value {
	return Value{
		X: mathutil.Rescale(x, c.bounds.X.Min+radius, c.bounds.X.Span()-2*radius, c.baseValue),
		Y: mathutil.Rescale(y, c.bounds.Y.Min+radius, c.bounds.Y.Span()-2*radius, c.baseValue),
	}
}
