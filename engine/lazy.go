package engine

import (
	"context"

	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// RunLazyRefineahead repeatedly plans and commits: it calls FindPlan, then
// applies each returned action against the real state s (the same bound
// transformer FindPlan used internally, but now against the caller's
// world rather than a planning-session copy). If every action in a plan
// commits successfully, the reached state is returned. If the world has
// moved beneath an in-progress commit and an action fails to apply,
// RunLazyRefineahead replans from the partially-committed state against
// the same todo list and tries again, up to the configured retry budget.
func (p *Planner) RunLazyRefineahead(ctx context.Context, s *state.State, todo []todoitem.Item, opts ...RunOption) (*state.State, error) {
	cfg := &runConfig{maxTries: p.maxRetries}
	for _, opt := range opts {
		opt(cfg)
	}

	current := s.Snapshot()

	for tries := 0; tries < cfg.maxTries; tries++ {
		if err := ctx.Err(); err != nil {
			return current, err
		}

		plan, err := p.FindPlan(ctx, current, todo)
		if err != nil {
			return current, err
		}
		if len(plan.Actions) == 0 {
			return current, nil
		}

		next, committed := commitPlan(p, current, plan)
		current = next
		if committed {
			return current, nil
		}
	}

	return current, ErrBudgetExhausted
}

// commitPlan applies every action in plan against current in order,
// stopping at the first one that fails to apply. It returns the state
// reached (including any prefix that did commit) and whether the whole
// plan committed.
func commitPlan(p *Planner, current *state.State, plan *Plan) (*state.State, bool) {
	for _, a := range plan.Actions {
		fn, ok := p.domain.Action(a.Name)
		if !ok {
			return current, false
		}
		next, ok := safeCallAction(fn, current, a.Args...)
		if !ok {
			return current, false
		}
		current = next
	}
	return current, true
}
