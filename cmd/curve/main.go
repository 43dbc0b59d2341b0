// Command curve builds a curve from control points and prints its samples.
//
// Usage:
//
//	curve -points "0.2:0.2,0.5:0.8,0.8:0.3" -variant monotonic -lookup 0.35,0.6
//	curve -points-file curve.yaml -every 10
//	curve -demo
package main

import (
	"flag"
	"fmt"
	"log"

	curve "github.com/tphakala/go-curve"
	"github.com/tphakala/go-curve/internal/cliutil"
	"github.com/tphakala/simd/cpu"
)

// demoPoints is the reference three-point curve.
var demoPoints = []curve.Point{
	{X: 0.2, Y: 0.2},
	{X: 0.5, Y: 0.8},
	{X: 0.8, Y: 0.3},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		width      = flag.Float64("width", defaultWidth, "Surface width in pixels")
		height     = flag.Float64("height", defaultHeight, "Surface height in pixels")
		radius     = flag.Float64("radius", defaultRadius, "Control point radius in pixels")
		domain     = flag.Int("domain", 0, "Number of samples (0 = one per horizontal pixel)")
		variant    = flag.String("variant", "", "Spline variant: natural, monotonic, linear (default natural)")
		pointsArg  = flag.String("points", "", "Control points as x:y pairs, e.g. 0.2:0.2,0.5:0.8")
		pointsFile = flag.String("points-file", "", "YAML file with control points")
		lookups    = flag.String("lookup", "", "Comma-separated normalized x positions to evaluate")
		every      = flag.Int("every", defaultEvery, "Print every Nth sample (0 = none)")
		demo       = flag.Bool("demo", false, "Compare variants on a reference curve")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	cfg := curve.Config{
		Width:              *width,
		Height:             *height,
		ControlPointRadius: *radius,
		Domain:             *domain,
	}
	if *verbose {
		cfg.Logger = cliutil.VerboseLogger()
		log.Printf("SIMD: %s", cpu.Info())
	}

	if *demo {
		return runDemo(cfg)
	}

	pts, v, err := cliutil.Resolve(*pointsArg, *pointsFile, *variant)
	if err != nil {
		return err
	}
	if len(pts) == 0 {
		pts = demoPoints
	}
	cfg.Variant = v

	ed, err := cliutil.BuildEditor(cfg, pts)
	if err != nil {
		return err
	}

	printPoints(ed)

	series, err := ed.Sample()
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	if *every > 0 {
		fmt.Printf("\nSamples (%s, %d total, mean %.4f):\n", ed.Variant(), series.Len(), series.Mean())
		for i := 0; i < series.Len(); i += *every {
			fmt.Printf("  %8.4f  %8.4f\n", series.X[i], series.Y[i])
		}
	}

	xs, err := cliutil.ParseLookups(*lookups)
	if err != nil {
		return err
	}
	if len(xs) > 0 {
		fmt.Println("\nLookups:")
	}
	for _, x := range xs {
		y, err := ed.ValueAt(x)
		if err != nil {
			return fmt.Errorf("lookup at %v: %w", x, err)
		}
		fmt.Printf("  f(%.4f) = %.6f\n", x, y)
	}

	return nil
}

func printPoints(ed *curve.Editor) {
	fmt.Printf("Control points (%d):\n", ed.Len())
	for i, p := range ed.Points() {
		fmt.Printf("  [%d] x=%.4f y=%.4f value=(%d, %d)\n", i, p.X, p.Y, p.Value.X, p.Value.Y)
	}
}

func runDemo(cfg curve.Config) error {
	fmt.Println("=== Curve Variant Comparison ===")

	variants := []curve.Variant{curve.VariantNatural, curve.VariantMonotonic, curve.VariantLinear}
	editors := make([]*curve.Editor, len(variants))
	for i, v := range variants {
		cfg.Variant = v
		ed, err := cliutil.BuildEditor(cfg, demoPoints)
		if err != nil {
			return err
		}
		editors[i] = ed
	}

	printPoints(editors[0])
	fmt.Println()
	fmt.Println(demoVariantsHeader)

	for step := 0; step <= demoSteps; step++ {
		x := float64(step) / demoSteps
		fmt.Printf("%-8.2f", x)
		for _, ed := range editors {
			y, err := ed.ValueAt(x)
			if err != nil {
				return err
			}
			fmt.Printf(" %-9.4f", y)
		}
		fmt.Println()
	}

	fmt.Println("\n=== Demo Complete ===")
	return nil
}
