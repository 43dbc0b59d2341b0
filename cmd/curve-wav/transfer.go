package main

import (
	"fmt"
	"math"
	"strings"

	curve "github.com/tphakala/go-curve"
)

// shapeMode selects how signed samples map onto the curve's [0, 1] domain.
type shapeMode int

const (
	// modeSymmetric shapes the magnitude and keeps the sign:
	// out = sign(s) * f(|s|). A curve through the origin keeps silence silent.
	modeSymmetric shapeMode = iota

	// modeFull maps [-1, 1] linearly onto [0, 1]:
	// out = 2*f((s+1)/2) - 1.
	modeFull
)

func parseMode(s string) (shapeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symmetric", "sym":
		return modeSymmetric, nil
	case "full":
		return modeFull, nil
	default:
		return modeSymmetric, fmt.Errorf("unknown mode %q (want symmetric or full)", s)
	}
}

func (m shapeMode) String() string {
	if m == modeFull {
		return "full"
	}
	return "symmetric"
}

// transferTable is an immutable lookup table of a curve over [0, 1].
// It is safe for concurrent reads.
type transferTable struct {
	values []float64
	scale  float64 // len(values) - 1
	mode   shapeMode
}

// newTransferTable evaluates ed at size evenly spaced positions.
func newTransferTable(ed *curve.Editor, size int, mode shapeMode) (*transferTable, error) {
	if size < minTableSize {
		return nil, fmt.Errorf("table size %d below minimum %d", size, minTableSize)
	}

	values := make([]float64, size)
	last := float64(size - 1)
	for i := range values {
		v, err := ed.ValueAt(float64(i) / last)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate curve: %w", err)
		}
		values[i] = v
	}

	return &transferTable{values: values, scale: last, mode: mode}, nil
}

// lookup returns the curve at u in [0, 1], interpolating linearly
// between table entries.
func (t *transferTable) lookup(u float64) float64 {
	pos := min(max(u, 0), 1) * t.scale
	i := int(pos)
	if i >= len(t.values)-1 {
		return t.values[len(t.values)-1]
	}
	frac := pos - float64(i)
	return t.values[i] + (t.values[i+1]-t.values[i])*frac
}

// shape applies the transfer function to a sample in [-1, 1].
func (t *transferTable) shape(s float64) float64 {
	if t.mode == modeFull {
		return 2*t.lookup((s+1)/2) - 1
	}
	return math.Copysign(t.lookup(math.Abs(s)), s)
}

// apply shapes buf in place.
func apply[F Float](t *transferTable, buf []F) {
	for i, s := range buf {
		buf[i] = F(t.shape(float64(s)))
	}
}
