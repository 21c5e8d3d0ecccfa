// Package reporter provides the console output sink.
package reporter

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/go-libs/logger"
)

// Console writes rendered text to out and diagnostics to the logger.
type Console struct {
	out     io.Writer
	log     logger.ILogger
	verbose bool
}

// NewConsole creates a console reporter.
func NewConsole(out io.Writer, log logger.ILogger, verbose bool) *Console {
	return &Console{
		out:     out,
		log:     log,
		verbose: verbose,
	}
}

// WriteLine writes text followed by a line break.
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// Verbosef logs a diagnostic message when verbose output is enabled.
func (c *Console) Verbosef(format string, args ...any) {
	if c.verbose {
		c.log.Infof(format, args...)
	}
}

// Errorf logs an error message.
func (c *Console) Errorf(format string, args ...any) {
	c.log.Errorf(format, args...)
}
