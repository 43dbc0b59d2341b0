// Command curve-wav shapes WAV audio through a curve used as a transfer
// function, like a waveshaper or a tone curve for sound.
//
// Usage:
//
//	curve-wav -points "0:0,0.3:0.5,1:0.8" input.wav output.wav
//	curve-wav -points-file soft-clip.yaml -variant monotonic input.wav output.wav
//	curve-wav -mode full -fast input.wav output.wav
//
// The curve is evaluated once into a lookup table; channels are then
// processed concurrently, each reading the shared table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	curve "github.com/tphakala/go-curve"
	"github.com/tphakala/go-curve/internal/cliutil"
	"github.com/tphakala/simd/cpu"
)

// Transfer curves need an unmargined surface so that 0 and 1 are reachable.
const (
	surfaceSize = 1024.0
	curveRadius = 0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	pointsArg := flag.String("points", "", "Transfer curve points as x:y pairs (default identity)")
	pointsFile := flag.String("points-file", "", "YAML file with transfer curve points")
	variant := flag.String("variant", "", "Spline variant: natural, monotonic, linear (default monotonic)")
	mode := flag.String("mode", defaultMode.String(), "Shaping mode: symmetric (shape magnitude) or full (shape [-1,1])")
	tableSize := flag.Int("table", defaultTableSize, "Transfer table size")
	fast := flag.Bool("fast", false, "Use float32 precision")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath, outputPath := args[0], args[1]

	shape, err := parseMode(*mode)
	if err != nil {
		return err
	}

	pts, v, err := cliutil.Resolve(*pointsArg, *pointsFile, *variant)
	if err != nil {
		return err
	}
	if *variant == "" && *pointsFile == "" {
		v = curve.VariantMonotonic
	}
	if len(pts) == 0 {
		pts = []curve.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	}

	cfg := curve.Config{
		Width:   surfaceSize,
		Height:  surfaceSize,
		Variant: v,
	}
	if *verbose {
		cfg.Logger = cliutil.VerboseLogger()
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Curve: %d points, %s, %s mode", len(pts), v, shape)
		log.Printf("SIMD: %s", cpu.Info())
	}

	ed, err := newTransferCurve(cfg, pts)
	if err != nil {
		return err
	}

	table, err := newTransferTable(ed, *tableSize, shape)
	if err != nil {
		return err
	}

	start := time.Now()
	var stats *shapeStats
	if *fast {
		stats, err = shapeWAV[float32](inputPath, outputPath, table, *verbose, *parallel)
	} else {
		stats, err = shapeWAV[float64](inputPath, outputPath, table, *verbose, *parallel)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Shaped %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d samples\n",
		stats.rate, stats.channels, stats.bitDepth, stats.samples)
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

// newTransferCurve builds an editor whose points may sit on the edges.
// A zero radius in Config means the default, so it is cleared afterwards.
func newTransferCurve(cfg curve.Config, pts []curve.Point) (*curve.Editor, error) {
	ed, err := curve.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create curve: %w", err)
	}
	if err := ed.SetControlPointRadius(curveRadius); err != nil {
		return nil, err
	}
	if cliutil.AddPoints(ed, pts) == 0 {
		return nil, fmt.Errorf("no transfer curve points could be placed")
	}
	return ed, nil
}

type shapeStats struct {
	rate     int
	channels int
	bitDepth int
	samples  int64
}

func shapeWAV[F Float](inputPath, outputPath string, table *transferTable, verbose, parallel bool) (stats *shapeStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	output, err := createWAVOutput(outputPath, input.format, input.bitDepth)
	if err != nil {
		return nil, err
	}
	// Close errors matter on success: the encoder writes the final header then.
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newShapeBuffers[F](input.channels, input.bitDepth, input.format)
	stats = &shapeStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}
	progress := newProgressTracker(input.totalSamples, verbose)

	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		frames := n / input.channels
		if frames == 0 {
			break
		}

		data := buffers.intBuffer.Data[:frames*input.channels]
		stats.samples += int64(frames)

		deinterleaveInto(data, buffers.channelBufs, input.channels, frames, buffers.invMaxVal)
		shapeChannelData(table, buffers.channelBufs, frames, parallel)
		written := interleaveInto(buffers.channelBufs, buffers.outputIntBuf, frames, buffers.maxVal)

		if err := output.WriteSamples(buffers.outputIntBuf[:written]); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		progress.reportIfNeeded(stats.samples)
	}

	return stats, nil
}
