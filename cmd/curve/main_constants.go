package main

// Default command-line flag values
const (
	defaultWidth  = 400.0 // Editing surface width in pixels
	defaultHeight = 300.0 // Editing surface height in pixels
	defaultRadius = 10.0  // Control point marker radius
	defaultEvery  = 40    // Print every Nth sample
)

// Variant comparison table
const (
	demoVariantsHeader = "x        natural  monotonic linear"
	demoSteps          = 10
)
