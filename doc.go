// Package htnplan is a hierarchical task network (HTN) planner with
// simple temporal network (STN) scheduling: given a domain of actions and
// decomposition methods, an initial state, and a todo list of goals and
// tasks, it refines the todo list into a totally-ordered sequence of
// actions that reaches a state satisfying every goal, honoring whatever
// duration/window/entity-capability constraints the caller attached.
//
// A planning call is a single-threaded AND/OR search over a solution
// graph: each todo item becomes a node, compound tasks and goals are
// refined by trying their registered methods in order, and a node whose
// chosen method's expansion later proves infeasible is abandoned in favor
// of the next untried method on the nearest ancestor that still has one —
// chronological backtracking, not general-purpose replanning.
//
// Package layout:
//
//	state/        — the predicate store (variable -> argument -> value)
//	                and entity capability registry a plan reasons over.
//	todoitem/     — the closed sum type over what a todo list may contain:
//	                Action, Task, Unigoal, Multigoal, each optionally
//	                Wrapped with temporal/entity Constraints.
//	domain/       — the frozen library of actions and decomposition
//	                methods a Domain is built from, via Builder.
//	stn/          — the temporal network: named time points, min/max
//	                distance constraints, Floyd-Warshall consistency
//	                checking, and snapshot/restore for backtracking.
//	solutiongraph/— the AND/OR arena itself: nodes keyed by integer id,
//	                referenced through their parent's successor list so
//	                descendant pruning can sever a subtree in one step.
//	graphops/     — the traversal/mutation operations the engine drives
//	                the solution graph with: classify, expand, find the
//	                next open leaf, find a predecessor, prune, extract.
//	engine/       — the refine/dispatch/backtrack loop itself (FindPlan),
//	                plus RunLazyRefineahead for committing a plan action
//	                by action and replanning if the world moves beneath it.
//	planlog/      — the structured logger the engine traces its descent
//	                through.
//	domainconfig/ — a YAML fixture loader for initial state + todo lists,
//	                used by cmd/htnplan and integration tests.
//
// A minimal planning call:
//
//	d := domain.NewBuilder().
//		AddActions(map[string]domain.ActionFunc{"move": moveAction}).
//		AddUnigoalMethods("at", []domain.UnigoalMethodFunc{moveToMethod}).
//		Build()
//
//	p := engine.New(d)
//	plan, err := p.FindPlan(ctx, initialState, []todoitem.Item{
//		todoitem.Unigoal{Variable: "at", Argument: "robot1", Desired: state.String("dockB")},
//	})
//
// See cmd/htnplan for a runnable CLI over a YAML fixture.
package htnplan
