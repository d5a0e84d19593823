package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the stderr logger for a command run.
// Warnings are shown by default; --verbose adds debug, --quiet keeps errors only.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourpick",
		Output: w,
		Level:  level,
	})
}
