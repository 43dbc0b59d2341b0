package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	curve "github.com/tphakala/go-curve"
)

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	invalidFile := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalidFile, []byte("not a wav file"), 0o644))

	_, err := openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	format := &audio.Format{NumChannels: 2, SampleRate: 44100}
	_, err := createWAVOutput("/nonexistent/dir/out.wav", format, bitsPerSample16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestNewShapeBuffers(t *testing.T) {
	format := &audio.Format{NumChannels: 2, SampleRate: 48000}
	buffers := newShapeBuffers[float64](2, bitsPerSample24, format)

	assert.Len(t, buffers.channelBufs, 2)
	assert.Len(t, buffers.channelBufs[0], bufferSize)
	assert.Len(t, buffers.intBuffer.Data, bufferSize*2)
	assert.Len(t, buffers.outputIntBuf, bufferSize*2)
	assert.InDelta(t, maxInt24, buffers.maxVal, 0)
	assert.InDelta(t, 1/maxInt24, buffers.invMaxVal, 1e-18)
}

func TestGetMaxValue(t *testing.T) {
	assert.InDelta(t, maxInt16, getMaxValue(bitsPerSample16), 0)
	assert.InDelta(t, maxInt24, getMaxValue(bitsPerSample24), 0)
	assert.InDelta(t, maxInt32, getMaxValue(bitsPerSample32), 0)
	assert.InDelta(t, maxInt16, getMaxValue(8), 0)
}

func TestProgressTracker_NonVerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, false)
	tracker.reportIfNeeded(500)
	assert.Zero(t, tracker.lastProgress)
}

func TestProgressTracker_VerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, true)
	tracker.reportIfNeeded(250)
	assert.Equal(t, 25, tracker.lastProgress)

	tracker.reportIfNeeded(300)
	assert.Equal(t, 25, tracker.lastProgress, "below the next interval")
}

func TestProgressTracker_ZeroSamples(t *testing.T) {
	tracker := newProgressTracker(0, true)
	tracker.reportIfNeeded(100)
	assert.Zero(t, tracker.lastProgress)
}

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	data := []int{1000, -1000, 32767, -32767, 0, 12345}
	bufs := [][]float64{make([]float64, 3), make([]float64, 3)}

	deinterleaveInto(data, bufs, 2, 3, 1/maxInt16)
	assert.InDelta(t, 1.0, bufs[0][1], 1e-12)
	assert.InDelta(t, -1.0, bufs[1][1], 1e-12)

	out := make([]int, len(data))
	n := interleaveInto(bufs, out, 3, maxInt16)
	require.Equal(t, len(data), n)
	for i := range data {
		assert.InDelta(t, data[i], out[i], 1, "sample %d", i)
	}
}

func TestInterleaveIntoClampsAndChecksCapacity(t *testing.T) {
	bufs := [][]float64{{1.5, -2}}
	out := make([]int, 2)
	require.Equal(t, 2, interleaveInto(bufs, out, 2, maxInt16))
	assert.Equal(t, []int{32767, -32767}, out)

	assert.Zero(t, interleaveInto(bufs, make([]int, 1), 2, maxInt16))
}

func TestShapeChannelData_ParallelMatchesSequential(t *testing.T) {
	table := newTestTable(t, curve.VariantNatural, modeSymmetric,
		curve.Point{X: 0, Y: 0}, curve.Point{X: 0.3, Y: 0.6}, curve.Point{X: 1, Y: 0.9})

	makeBufs := func() [][]float64 {
		bufs := make([][]float64, 4)
		for ch := range bufs {
			bufs[ch] = make([]float64, 64)
			for i := range bufs[ch] {
				bufs[ch][i] = float64(i-32) / 32 * float64(ch+1) / 4
			}
		}
		return bufs
	}

	seq, par := makeBufs(), makeBufs()
	shapeChannelData(table, seq, 48, false)
	shapeChannelData(table, par, 48, true)
	assert.Equal(t, seq, par)

	untouched := makeBufs()
	assert.Equal(t, untouched[0][48:], par[0][48:], "samples past numSamples are left alone")
}

func writeTestWAV(t *testing.T, path string, channels int, samples []int) {
	t.Helper()
	format := &audio.Format{NumChannels: channels, SampleRate: 8000}
	out, err := createWAVOutput(path, format, bitsPerSample16)
	require.NoError(t, err)
	require.NoError(t, out.WriteSamples(samples))
	require.NoError(t, out.Close())
}

func readTestWAV(t *testing.T, path string) *audio.IntBuffer {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	require.NoError(t, err)
	return buf
}

func TestShapeWAV_HalfGain(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")

	samples := []int{0, 0, 16000, -16000, 32000, -8000, -32000, 4000}
	writeTestWAV(t, in, 2, samples)

	table := newTestTable(t, curve.VariantLinear, modeSymmetric,
		curve.Point{X: 0, Y: 0}, curve.Point{X: 1, Y: 0.5})

	stats, err := shapeWAV[float64](in, out, table, false, true)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.channels)
	assert.Equal(t, int64(4), stats.samples)

	got := readTestWAV(t, out)
	assert.Equal(t, 2, got.Format.NumChannels)
	assert.Equal(t, 8000, got.Format.SampleRate)
	require.Len(t, got.Data, len(samples))
	for i, s := range samples {
		assert.InDelta(t, s/2, got.Data[i], 1, "sample %d", i)
	}
}

func TestShapeWAV_Float32Mono(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")

	samples := []int{-20000, -100, 0, 100, 20000}
	writeTestWAV(t, in, 1, samples)

	table := newTestTable(t, curve.VariantMonotonic, modeFull,
		curve.Point{X: 0, Y: 0}, curve.Point{X: 1, Y: 1})

	_, err := shapeWAV[float32](in, out, table, false, false)
	require.NoError(t, err)

	got := readTestWAV(t, out)
	require.Len(t, got.Data, len(samples))
	for i, s := range samples {
		assert.InDelta(t, s, got.Data[i], 2, "sample %d", i)
	}
}
