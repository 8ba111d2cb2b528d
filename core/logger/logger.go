// Package logger builds the structured logger shared by the CLI and the
// converter diagnostics.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "html2md",
		Level:  level,
	})
}

// Level maps the CLI verbosity flags to a log level.
// Quiet wins over verbose.
func Level(verbose, quiet bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.WarnLevel
	}
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
