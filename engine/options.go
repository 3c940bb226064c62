package engine

import (
	"github.com/katalvlaran/htnplan/planlog"
)

// defaultMaxRetries is RunLazyRefineahead's retry budget when neither
// WithMaxRetries nor a per-call WithMaxTries overrides it.
const defaultMaxRetries = 10

// Option configures a Planner at construction time, following the
// functional-options idiom the teacher's graph/flow constructors use.
type Option func(*Planner)

// WithLogger sets the Planner's structured logger. The zero Planner logs
// nothing (planlog.Nop).
func WithLogger(l planlog.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// WithMaxRetries sets the default retry budget RunLazyRefineahead uses
// when its caller supplies no WithMaxTries RunOption.
func WithMaxRetries(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.maxRetries = n
		}
	}
}

// RunOption configures a single RunLazyRefineahead call.
type RunOption func(*runConfig)

type runConfig struct {
	maxTries int
}

// WithMaxTries overrides the Planner's default retry budget for one
// RunLazyRefineahead call.
func WithMaxTries(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxTries = n
		}
	}
}
