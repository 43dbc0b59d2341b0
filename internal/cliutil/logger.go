package cliutil

import "github.com/sgostarter/i/l"

// VerboseLogger returns a console logger that also records debug entries.
// l.NewConsoleLoggerWrapper stops at info level, which hides the editor's
// per-operation entries.
func VerboseLogger() l.Wrapper {
	logger := l.NewCommLogger(&l.ConsoleRecorder{})
	logger.SetLevel(l.LevelDebug)
	return l.NewWrapper(logger)
}
