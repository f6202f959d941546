package ui

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the diagnostic logger. verbose wins over quiet.
func NewLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "create-pochade",
		ReportTimestamp: false,
	})
}
