package curve

import (
	"fmt"
	"slices"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/tphakala/go-curve/internal/points"
	"github.com/tphakala/go-curve/internal/sampler"
)

// Editor owns a curve's control points and its sampled output.
//
// All coordinates crossing the Editor API are normalized to [0, 1] except
// Nearest, which takes pixel coordinates for hit-testing.
type Editor struct {
	cfg    Config
	logger l.Wrapper

	points  *points.Collection
	ids     []uint64 // parallel to points, in x order
	sampler *sampler.Sampler
	series  Series

	observers observers
}

// New creates an empty Editor from config.
// Zero-valued optional fields are replaced by their defaults.
func New(config *Config) (*Editor, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	cfg := config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Editor{
		cfg:    cfg,
		logger: cfg.Logger.WithFields(l.StringField(l.ClsKey, clsEditor)),
		points: points.New(points.Bounds{
			X: points.Limits{Max: cfg.Width},
			Y: points.Limits{Max: cfg.Height},
		}, cfg.BaseValue),
	}
	e.sampler = sampler.New(e.points, cfg.Variant)

	return e, nil
}

// Config returns the effective configuration, defaults included.
func (e *Editor) Config() Config {
	return e.cfg
}

// Variant returns the active spline variant.
func (e *Editor) Variant() Variant {
	return e.sampler.Variant()
}

// Len returns the number of control points.
func (e *Editor) Len() int {
	return e.points.Len()
}

// Subscribe registers fn for every subsequent notification and returns a
// function that unregisters it.
func (e *Editor) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return e.observers.add(fn)
}

// Add places p, taking its normalized X and Y, and returns its index.
//
// The point is kept ControlPointRadius pixels away from the edges and from
// its neighbours, shifting it along x if needed. When no such position
// exists Add returns ErrPlacementConflict and the curve is unchanged.
// NaN or infinite coordinates fail with ErrInvalidCoordinate.
func (e *Editor) Add(p Point) (int, error) {
	index, err := e.points.Add(points.ControlPoint{
		X:       p.X * e.cfg.Width,
		Y:       p.Y * e.cfg.Height,
		XLocked: p.XLocked,
		YLocked: p.YLocked,
	}, e.cfg.ControlPointRadius)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("add point failed")
		return noIndex, err
	}

	id := snowflake.ID()
	e.ids = slices.Insert(e.ids, index, id)

	added := e.point(index)
	e.logger.WithFields(l.IntField("index", index), l.UInt64Field("id", id)).Debug("point added")
	e.observers.notify(Event{Kind: EventPointAdded, Index: index, Point: added})

	return index, nil
}

// Move drags the point at index towards normalized (x, y).
//
// Locked axes are left alone and the point never passes its neighbours, so
// the returned index always equals index on success. NaN or infinite targets
// fail with ErrInvalidCoordinate.
func (e *Editor) Move(index int, x, y float64) (int, error) {
	index, err := e.points.Move(index, x*e.cfg.Width, y*e.cfg.Height, e.cfg.ControlPointRadius)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.IntField("index", index)).Error("move point failed")
		return index, err
	}

	moved := e.point(index)
	e.logger.WithFields(l.IntField("index", index)).Debug("point moved")
	e.observers.notify(Event{Kind: EventPointMoved, Index: index, Point: moved})

	return index, nil
}

// Remove deletes the point at index and returns it.
// Every later index shifts down by one.
func (e *Editor) Remove(index int) (Point, error) {
	cp, err := e.points.Remove(index)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err), l.IntField("index", index)).Error("remove point failed")
		return Point{}, err
	}

	removed := e.normalize(cp, e.ids[index])
	e.ids = slices.Delete(e.ids, index, index+1)

	e.logger.WithFields(l.IntField("index", index), l.UInt64Field("id", removed.ID)).Debug("point removed")
	e.observers.notify(Event{Kind: EventPointRemoved, Index: index, Point: removed})

	return removed, nil
}

// SetLocks changes the axis locks of the point at index.
func (e *Editor) SetLocks(index int, xLocked, yLocked bool) error {
	if err := e.points.SetLocks(index, xLocked, yLocked); err != nil {
		e.logger.WithFields(l.ErrorField(err), l.IntField("index", index)).Error("set locks failed")
		return err
	}
	return nil
}

// Clear removes every point.
func (e *Editor) Clear() {
	if e.points.Len() == 0 {
		return
	}
	e.points.Clear()
	e.ids = e.ids[:0]

	e.logger.Debug("points cleared")
	e.observers.notify(Event{Kind: EventCleared, Index: noIndex})
}

// Point returns the point at index.
func (e *Editor) Point(index int) (Point, bool) {
	if _, ok := e.points.Point(index); !ok {
		return Point{}, false
	}
	return e.point(index), true
}

// Points returns all points in x order.
func (e *Editor) Points() []Point {
	out := make([]Point, e.points.Len())
	for i := range out {
		out[i] = e.point(i)
	}
	return out
}

// IndexOf returns the current index of the point with the given ID.
func (e *Editor) IndexOf(id uint64) (int, bool) {
	i := slices.Index(e.ids, id)
	return i, i >= 0
}

// Nearest returns the point closest to the pixel position (x, y), or false
// when the curve has no points.
func (e *Editor) Nearest(x, y float64) (Nearest, bool) {
	n, ok := e.points.Nearest(x, y)
	if !ok {
		return Nearest{Index: noIndex}, false
	}
	return Nearest{Index: n.Index, ID: e.ids[n.Index], Distance: n.Distance}, true
}

// SetVariant switches the spline variant used by Sample and ValueAt.
func (e *Editor) SetVariant(v Variant) error {
	prev := e.sampler.Variant()
	if err := e.sampler.SetVariant(v); err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("set variant failed")
		return err
	}
	if v == prev {
		return nil
	}

	e.logger.WithFields(l.StringField("variant", v.String())).Debug("variant changed")
	e.observers.notify(Event{Kind: EventVariantChanged, Index: noIndex})

	return nil
}

// SetControlPointRadius changes the margin applied by later Add and Move
// calls. Existing points keep their positions.
func (e *Editor) SetControlPointRadius(r float64) error {
	if err := validateRadius(r, e.cfg.Width, e.cfg.Height); err != nil {
		return err
	}
	e.cfg.ControlPointRadius = r
	return nil
}

// Sample regenerates the normalized series, one entry per step of
// Config.Domain. The returned buffers are owned by the Editor and are
// overwritten by the next call; Clone them to keep a copy.
func (e *Editor) Sample() (Series, error) {
	s, err := e.sampler.Sample(e.cfg.Width, e.cfg.Height, e.cfg.Domain)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("sample failed")
		return Series{}, err
	}
	e.series = s
	return s, nil
}

// Sample32 is like Sample but fills float32 buffers.
func (e *Editor) Sample32() (Series32, error) {
	s, err := e.sampler.Sample32(e.cfg.Width, e.cfg.Height, e.cfg.Domain)
	if err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("sample failed")
		return Series32{}, err
	}
	return s, nil
}

// Series returns the buffers produced by the last Sample call.
func (e *Editor) Series() Series {
	return e.series
}

// ValueAt returns the normalized curve value at normalized x.
// It returns ErrNoPoints when the curve is empty.
func (e *Editor) ValueAt(x float64) (float64, error) {
	return e.sampler.ValueAt(e.cfg.Width, e.cfg.Height, x)
}

// point converts the control point at a valid index to normalized space.
func (e *Editor) point(index int) Point {
	cp, _ := e.points.Point(index)
	return e.normalize(cp, e.ids[index])
}

func (e *Editor) normalize(cp points.ControlPoint, id uint64) Point {
	return Point{
		ID:      id,
		X:       cp.X / e.cfg.Width,
		Y:       cp.Y / e.cfg.Height,
		XLocked: cp.XLocked,
		YLocked: cp.YLocked,
		Value:   cp.Value,
	}
}
