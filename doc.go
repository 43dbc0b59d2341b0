// Package curve provides an editable one-dimensional curve in pure Go.
//
// A curve is sculpted by placing control points in a 2D plane and is read
// back as a densely sampled cubic spline through those points. The package
// is the data core of a curve widget: drawing, styling and input handling
// live in adapters that call into an [Editor] and re-render on its
// notifications.
//
// # Features
//
//   - Natural cubic, monotonic (Fritsch–Butland) and linear interpolation
//     via gonum.org/v1/gonum/interp
//   - Ordered control points with boundary margins, axis locks and
//     collision avoidance: points never overlap or pass through each other
//   - Uniform sampling into normalized float64 or float32 buffers with
//     flat extrapolation past the end points
//   - Single-value lookups for applying the curve as a transfer function
//   - Synchronous notifications with any number of subscribers
//   - Stable point IDs that survive index shifts
//
// # Quick Start
//
//	ed, err := curve.New(&curve.Config{Width: 400, Height: 300})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ed.Add(curve.Point{X: 0.2, Y: 0.2})
//	ed.Add(curve.Point{X: 0.5, Y: 0.8})
//	ed.Add(curve.Point{X: 0.8, Y: 0.3})
//
//	series, err := ed.Sample()   // one entry per horizontal pixel
//	y, err := ed.ValueAt(0.35)   // single lookup
//
// # Coordinates
//
// Points are accepted and returned in normalized [0,1]×[0,1] space.
// Internally they live in pixel space sized by [Config.Width] and
// [Config.Height], kept [Config.ControlPointRadius] away from every edge so
// rendered markers never clip. [Editor.Nearest] is the one pixel-space query,
// since it serves pointer hit-testing.
//
// Each point also carries a [Value]: its position rescaled into
// [0, Config.BaseValue] (255 by default) with half-up rounding, suitable for
// on-screen readouts.
//
// # Indices and IDs
//
// Indices are positions in x order. [Editor.Remove] shifts every later
// index down by one, so adapters holding an index must refresh it after a
// removal. [Point.ID] is stable for the lifetime of the point; use
// [Editor.IndexOf] to map it back to the current index.
//
// # Spline Variants
//
//   - [VariantNatural]: smooth (C²) but may overshoot between points. Sampled
//     values are clamped to the canvas.
//   - [VariantMonotonic]: never overshoots between consecutive points.
//     Prefer it for color lookup tables and other transfer functions.
//   - [VariantLinear]: straight segments.
//
// # Thread Safety
//
// An Editor is not safe for concurrent use. Every operation runs to
// completion synchronously; embedders that share an Editor between
// goroutines must serialize access themselves. Listeners are invoked on the
// caller's goroutine and must not mutate the Editor.
package curve
