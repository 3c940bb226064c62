// Package planlog provides the structured logger the refinement engine
// writes its depth-indexed trace through, adapting zerolog the way the
// teacher's packages lean on it for diagnostics rather than rolling a
// bespoke logging type.
package planlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the handful of planner-specific
// fields (depth, node id, method name) callers attach per call site
// instead of building ad-hoc format strings.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing human-readable output to w. Passing nil
// defaults to os.Stderr.
func New(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return Logger{zl: zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()}
}

// Nop returns a Logger that discards everything, the default when no
// engine.WithLogger option is supplied.
func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// Depth returns a child logger with a "depth" field, for tracing the
// refinement loop's descent.
func (l Logger) Depth(depth int) Logger {
	return Logger{zl: l.zl.With().Int("depth", depth).Logger()}
}

// Node returns a child logger with a "node" field identifying a solution
// graph node id.
func (l Logger) Node(id int) Logger {
	return Logger{zl: l.zl.With().Int("node", id).Logger()}
}

// Plan returns a child logger with a "plan" field, correlating every line
// a single FindPlan call emits across its (possibly many) dispatch steps.
func (l Logger) Plan(id string) Logger {
	return Logger{zl: l.zl.With().Str("plan", id).Logger()}
}

// Debugf logs at debug level.
func (l Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

// Infof logs at info level.
func (l Logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Warnf logs at warn level.
func (l Logger) Warnf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (l Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}
