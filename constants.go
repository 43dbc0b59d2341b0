package curve

// Config defaults
const (
	defaultControlPointRadius = 10.0 // Marker radius in pixels
	defaultBaseValue          = 255  // Upper end of the Value range
)

// Logging
const (
	clsEditor = "curveEditor" // Class tag for editor log entries
	noIndex   = -1            // Event index for editor-wide events
)
