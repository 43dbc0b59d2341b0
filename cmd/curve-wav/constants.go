package main

// Default command-line flag values
const (
	defaultTableSize = 4096 // Transfer table entries
	minTableSize     = 2
	defaultMode      = modeSymmetric
	minRequiredArgs  = 2
)

// Buffer sizing
const (
	bufferSize = 8192 // Frames per read
)

// Bit depths and sample ranges
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	maxInt32        = 2147483647.0
)

// Channel layouts
const (
	monoChannels   = 1
	stereoChannels = 2
)

// Progress reporting
const (
	percentScale     = 100
	progressInterval = 10 // Report every 10%
)

// WAV encoding
const (
	wavFormatPCM = 1
)
