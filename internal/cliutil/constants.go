package cliutil

// Point list syntax
const (
	pointSeparator = ","
	coordSeparator = ":"
)
