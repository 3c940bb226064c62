// Package engine implements the HTN refinement loop: seed, pick the next
// open leaf, dispatch by node kind, check entity/temporal constraints,
// and backtrack on failure, driving a solutiongraph.Graph to completion
// or exhaustion.
package engine

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/planlog"
	"github.com/katalvlaran/htnplan/todoitem"
)

// Planner is a frozen domain plus the knobs that shape a planning call.
// It carries no per-request state itself — FindPlan and RunLazyRefineahead
// each build their own session — so one Planner may be reused (but not
// called concurrently with itself; see the concurrency notes in DESIGN.md).
type Planner struct {
	domain     *domain.Domain
	logger     planlog.Logger
	maxRetries int
}

// New returns a Planner over d, configured by opts. The zero-value
// defaults are: no logging and defaultMaxRetries.
func New(d *domain.Domain, opts ...Option) *Planner {
	p := &Planner{
		domain:     d,
		logger:     planlog.Nop(),
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan is a successful FindPlan result: the ordered sequence of actions a
// caller must apply, in order, to go from the seeded state to one
// satisfying every goal in the original todo list.
type Plan struct {
	// ID correlates this plan with the log lines its FindPlan call
	// emitted (every session's logger carries it as a "plan" field).
	ID      string
	Actions []todoitem.Action
}
