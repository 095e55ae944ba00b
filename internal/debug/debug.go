// Package debug provides the diagnostic logger used across commands.
// Output goes to stderr and is hidden unless verbose mode is enabled via
// the --verbose flag or the MDTASKS_DEBUG environment variable.
package debug

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.WarnLevel,
})

func init() {
	if os.Getenv("MDTASKS_DEBUG") != "" {
		SetVerbose(true)
	}
}

// SetVerbose toggles debug-level output.
func SetVerbose(on bool) {
	if on {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// Logf logs a formatted debug message, shown only in verbose mode.
func Logf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning, always shown.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}
