// Package cli implements the requiremedia command-line interface.
//
// The commands load requirements from a manifest or a page template into a
// registry and print what the registry produces:
//   - order: the dependency-sorted requirements as a table
//   - render: the HTML tags for some groups, or a whole page
//   - graph: the dependency graph as DOT or SVG
//   - serve: an HTTP server rendering page templates per request
//   - cache: manage the SVG cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs registry, render and cache events.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 4 requirements (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
