// Package cliutil holds the control point input formats shared by the
// command-line tools.
package cliutil

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cast"
	curve "github.com/tphakala/go-curve"
	"gopkg.in/yaml.v3"
)

// PointsFile is the YAML layout of a points file.
//
//	variant: monotonic
//	points:
//	  - {x: 0.2, y: 0.2}
//	  - {x: 0.5, y: 0.8, lockY: true}
type PointsFile struct {
	Variant string      `yaml:"variant"`
	Points  []FilePoint `yaml:"points"`
}

// FilePoint is one control point entry of a PointsFile, in normalized
// coordinates, with optional axis locks.
type FilePoint struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	LockX bool    `yaml:"lockX"`
	LockY bool    `yaml:"lockY"`
}

// ParsePoints parses "x:y,x:y,..." in normalized coordinates.
func ParsePoints(s string) ([]curve.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, pointSeparator)
	pts := make([]curve.Point, 0, len(parts))
	for _, part := range parts {
		xs, ys, ok := strings.Cut(part, coordSeparator)
		if !ok {
			return nil, fmt.Errorf("point %q: expected x%sy", part, coordSeparator)
		}

		x, err := cast.ToFloat64E(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("point %q: x: %w", part, err)
		}
		y, err := cast.ToFloat64E(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("point %q: y: %w", part, err)
		}

		pts = append(pts, curve.Point{X: x, Y: y})
	}

	return pts, nil
}

// ParseLookups parses a comma-separated list of normalized x positions.
func ParseLookups(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, pointSeparator)
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", part, err)
		}
		out[i] = v
	}

	return out, nil
}

// LoadPointsFile reads and decodes a YAML points file.
func LoadPointsFile(path string) (*PointsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}
	return DecodePointsFile(data)
}

// DecodePointsFile decodes a YAML points document and checks its variant name.
func DecodePointsFile(data []byte) (*PointsFile, error) {
	var pf PointsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse points file: %w", err)
	}
	if pf.Variant != "" {
		if _, err := curve.ParseVariant(pf.Variant); err != nil {
			return nil, fmt.Errorf("points file: %w", err)
		}
	}
	return &pf, nil
}

// CurvePoints converts the file entries to editor points.
func (pf *PointsFile) CurvePoints() []curve.Point {
	pts := make([]curve.Point, len(pf.Points))
	for i, p := range pf.Points {
		pts[i] = curve.Point{X: p.X, Y: p.Y, XLocked: p.LockX, YLocked: p.LockY}
	}
	return pts
}

// BuildEditor creates an editor from cfg and adds pts.
func BuildEditor(cfg curve.Config, pts []curve.Point) (*curve.Editor, error) {
	ed, err := curve.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create editor: %w", err)
	}
	AddPoints(ed, pts)
	return ed, nil
}

// AddPoints adds pts to ed, logging points that could not be placed.
// It returns the number of points added.
func AddPoints(ed *curve.Editor, pts []curve.Point) int {
	added := 0
	for _, p := range pts {
		if _, err := ed.Add(p); err != nil {
			log.Printf("Skipping point (%.4f, %.4f): %v", p.X, p.Y, err)
			continue
		}
		added++
	}
	return added
}

// Resolve merges points given inline with those from an optional points
// file. The file's variant is used unless variant is non-empty.
func Resolve(inline, file, variant string) ([]curve.Point, curve.Variant, error) {
	pts, err := ParsePoints(inline)
	if err != nil {
		return nil, curve.VariantNatural, err
	}

	if file != "" {
		pf, err := LoadPointsFile(file)
		if err != nil {
			return nil, curve.VariantNatural, err
		}
		pts = append(pts, pf.CurvePoints()...)
		if variant == "" {
			variant = pf.Variant
		}
	}

	if variant == "" {
		return pts, curve.VariantNatural, nil
	}
	v, err := curve.ParseVariant(variant)
	return pts, v, err
}
