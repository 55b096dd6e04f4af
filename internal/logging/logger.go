// Package logging builds the hclog logger shared by the engine, host and CLI.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "darkslide"

// Options controls logger construction from CLI flags.
type Options struct {
	Verbose bool
	Quiet   bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger writing to opts.Output.
// Verbose enables debug output; Quiet limits output to warnings and errors.
// Verbose wins when both are set.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := hclog.Info
	switch {
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: out,
		Level:  level,
	})
}

// OrNull returns l, or a logger that discards everything when l is nil.
func OrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}
	return l
}
