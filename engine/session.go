package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/graphops"
	"github.com/katalvlaran/htnplan/planlog"
	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/stn"
	"github.com/katalvlaran/htnplan/todoitem"
)

// session is the per-FindPlan-call working set: the solution graph under
// construction, the temporal network it is building alongside, the
// current rolling state, and the blacklist of already-failed
// (kind, subproblem, method) triples. It is owned exclusively by one
// FindPlan invocation and discarded afterward.
type session struct {
	planner   *Planner
	domain    *domain.Domain
	graph     *solutiongraph.Graph
	temporal  *stn.STN
	state     *state.State
	blacklist map[blacklistKey]bool

	// planID uniquely identifies this FindPlan call; it carries through
	// to the returned Plan and every log line logger below emits, so a
	// trace can be grepped back to the plan it belongs to.
	planID string
	logger planlog.Logger

	// stnEntry records the STN snapshot taken the moment each node was
	// first dispatched, before its own constraints were applied — so a
	// later Failed status on that node can undo exactly its own
	// contribution by restoring here.
	stnEntry map[int]stn.Snapshot
}

func newSession(p *Planner) *session {
	id := uuid.New().String()
	return &session{
		planner:   p,
		domain:    p.domain,
		graph:     solutiongraph.NewGraph(),
		temporal:  stn.New(),
		blacklist: make(map[blacklistKey]bool),
		planID:    id,
		logger:    p.logger.Plan(id),
		stnEntry:  make(map[int]stn.Snapshot),
	}
}

// FindPlan seeds a fresh session from s and todo, then drives the
// refinement loop to completion or exhaustion.
func (p *Planner) FindPlan(ctx context.Context, s *state.State, todo []todoitem.Item) (*Plan, error) {
	sess := newSession(p)
	sess.state = s.Snapshot()
	sess.graph.SaveSnapshot(solutiongraph.RootID, sess.state.Snapshot())
	graphops.Expand(sess.graph, sess.domain, solutiongraph.RootID, todo)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, ok := graphops.FindNextOpen(sess.graph, solutiongraph.RootID)
		if !ok {
			root, _ := sess.graph.Get(solutiongraph.RootID)
			if root.Status == solutiongraph.StatusFailed {
				sess.logger.Warnf("no plan resolves the given todo list")
				return nil, ErrUnresolvable
			}
			// Every reachable node is terminal and none failed: the whole
			// todo list resolved. ExtractPlan only descends into Closed
			// nodes, so root itself must become Closed here to be walked.
			sess.graph.SetStatus(solutiongraph.RootID, solutiongraph.StatusClosed)
			plan := &Plan{ID: sess.planID, Actions: graphops.ExtractPlan(sess.graph)}
			sess.logger.Infof("plan found: %d actions", len(plan.Actions))
			return plan, nil
		}

		sess.dispatch(ctx, id)
	}
}

// dispatch runs one node's constraint checks and kind-specific work, then
// backtracks immediately if either fails.
func (sess *session) dispatch(ctx context.Context, id int) {
	node, ok := sess.graph.Get(id)
	if !ok {
		return
	}
	sess.stnEntry[id] = sess.temporal.Snapshot()
	// Entry-time state, so a later backtrack that reopens this node (if it
	// is a Task/Goal/Multigoal with more methods to try) can restore
	// exactly what it saw before its chosen method ran. Leaf nodes
	// overwrite this with their post-work state in closeNode, which is
	// safe: a Closed node is never reopened as a retry target.
	sess.graph.SaveSnapshot(id, sess.state.Snapshot())
	sess.logger.Node(id).Depth(sess.depthOf(id)).Debugf("dispatch kind=%s", node.Kind)

	inner, constraints := todoitem.Unwrap(node.Info)
	if !sess.checkConstraints(ctx, node, constraints) {
		sess.fail(id)
		return
	}

	switch node.Kind {
	case solutiongraph.KindAction:
		if _, ok := inner.(todoitem.Action); !ok {
			sess.fail(id)
			return
		}
		sess.dispatchAction(node)
	case solutiongraph.KindTask:
		sess.dispatchRefinable(node)
	case solutiongraph.KindGoal:
		u, ok := inner.(todoitem.Unigoal)
		if !ok {
			sess.fail(id)
			return
		}
		if got, has := sess.state.Get(u.Variable, u.Argument); has && got.Equal(u.Desired) {
			sess.closeNode(node)
			return
		}
		sess.dispatchRefinable(node)
	case solutiongraph.KindMultigoal:
		sess.dispatchRefinable(node)
	case solutiongraph.KindVerifyGoal:
		sess.dispatchVerifyGoal(node)
	case solutiongraph.KindVerifyMultigoal:
		sess.dispatchVerifyMultigoal(node)
	default:
		// A node that still classifies as KindRoot at a non-root position
		// is a malformed todo item: empty or unrecognized head.
		sess.fail(id)
	}
}

// checkConstraints applies c's entity-capability and temporal requirements
// in order, reporting whether both held. A nil c trivially holds.
func (sess *session) checkConstraints(ctx context.Context, node *solutiongraph.Node, c *todoitem.Constraints) bool {
	var reqs []todoitem.EntityRequirement
	if c != nil {
		reqs = c.RequiresEntities
	}
	ok, err := matchEntities(ctx, sess.state, reqs)
	if err != nil || !ok {
		return false
	}
	return applyTemporalConstraints(sess.temporal, node.ID, c)
}

func (sess *session) closeNode(node *solutiongraph.Node) {
	sess.graph.SetStatus(node.ID, solutiongraph.StatusClosed)
	sess.graph.SaveSnapshot(node.ID, sess.state.Snapshot())
	sess.promoteAncestors(node.ID)
}

// promoteAncestors climbs from id toward the root, closing each ancestor
// whose successors have all become Closed. dispatchRefinable's non-empty
// expansion leaves a Task/Goal/Multigoal node Open while its children are
// worked; once the last child closes, the parent itself is done and must
// close too, or ExtractPlan (which only descends into Closed nodes) can
// never walk past it. The climb stops at the first ancestor that is not
// Open — root included, since root starts StatusNotApplicable and is
// force-closed separately by FindPlan once the whole todo list resolves.
func (sess *session) promoteAncestors(id int) {
	current := id
	for {
		predID, ok := graphops.FindPredecessor(sess.graph, current)
		if !ok {
			return
		}
		pred, ok := sess.graph.Get(predID)
		if !ok || pred.Status != solutiongraph.StatusOpen {
			return
		}

		allClosed := len(pred.Successors) > 0
		for _, succID := range pred.Successors {
			succ, ok := sess.graph.Get(succID)
			if !ok || succ.Status != solutiongraph.StatusClosed {
				allClosed = false
				break
			}
		}
		if !allClosed {
			return
		}

		sess.graph.SetStatus(predID, solutiongraph.StatusClosed)
		sess.graph.SaveSnapshot(predID, sess.state.Snapshot())
		current = predID
	}
}

// dispatchAction invokes node's bound action transformer, closing the node
// with the resulting state snapshot on success or failing it otherwise.
func (sess *session) dispatchAction(node *solutiongraph.Node) {
	if node.Action == nil {
		sess.fail(node.ID)
		return
	}
	newState, ok := safeCallAction(node.Action, sess.state)
	if !ok {
		sess.fail(node.ID)
		return
	}
	sess.state = newState
	sess.closeNode(node)
}

// dispatchRefinable runs the shared Task/Goal/Multigoal method-selection
// loop: pop the head method, skip it without invoking if blacklisted,
// invoke it otherwise, and either close (empty expansion), expand
// (non-empty expansion, node stays Open), or move to the next method on
// inapplicability. Exhausting AvailableMethods fails the node.
func (sess *session) dispatchRefinable(node *solutiongraph.Node) {
	fp := fingerprint(node.Info)

	for len(node.AvailableMethods) > 0 {
		method := node.AvailableMethods[0]
		node.AvailableMethods = node.AvailableMethods[1:]
		node.SelectedMethod++
		sess.graph.Update(node)

		key := blacklistKey{kind: node.Kind, fingerprint: fp, methodOrdinal: node.SelectedMethod}
		if sess.blacklist[key] {
			continue
		}

		subitems, ok := safeCallMethod(method, sess.state)
		if !ok {
			continue
		}

		if len(subitems) == 0 {
			sess.closeNode(node)
			return
		}

		ordered := reorderGoals(subitems, sess.domain)
		graphops.Expand(sess.graph, sess.domain, node.ID, ordered)
		return
	}

	sess.fail(node.ID)
}

func (sess *session) dispatchVerifyGoal(node *solutiongraph.Node) {
	goalID, ok := graphops.FindPredecessor(sess.graph, node.ID)
	if !ok {
		sess.fail(node.ID)
		return
	}
	goalNode, ok := sess.graph.Get(goalID)
	if !ok {
		sess.fail(node.ID)
		return
	}
	inner, _ := todoitem.Unwrap(goalNode.Info)
	u, ok := inner.(todoitem.Unigoal)
	if !ok {
		sess.fail(node.ID)
		return
	}
	if got, has := sess.state.Get(u.Variable, u.Argument); has && got.Equal(u.Desired) {
		sess.closeNode(node)
		return
	}
	sess.fail(node.ID)
}

func (sess *session) dispatchVerifyMultigoal(node *solutiongraph.Node) {
	mgID, ok := graphops.FindPredecessor(sess.graph, node.ID)
	if !ok {
		sess.fail(node.ID)
		return
	}
	mgNode, ok := sess.graph.Get(mgID)
	if !ok {
		sess.fail(node.ID)
		return
	}
	inner, _ := todoitem.Unwrap(mgNode.Info)
	mg, ok := inner.(todoitem.Multigoal)
	if !ok {
		sess.fail(node.ID)
		return
	}
	if mg.Satisfied(sess.state) {
		sess.closeNode(node)
		return
	}
	sess.fail(node.ID)
}

// fail marks id Failed and runs the backtracking climb.
func (sess *session) fail(id int) {
	sess.graph.SetStatus(id, solutiongraph.StatusFailed)
	sess.logger.Node(id).Debugf("node failed, backtracking")
	sess.backtrack(id)
}

// depthOf climbs id's predecessor chain to the root, purely for log
// annotation — not on any hot path that matters for planning correctness.
func (sess *session) depthOf(id int) int {
	depth := 0
	current := id
	for {
		pred, ok := graphops.FindPredecessor(sess.graph, current)
		if !ok {
			return depth
		}
		depth++
		current = pred
	}
}

// backtrack climbs from a just-failed node toward the root, undoing each
// visited node's own STN contribution and looking for the nearest
// ancestor with an untried method left. The first such ancestor is
// reopened, its descendants pruned, and its entry state snapshot
// restored as the session's current state — ready for the next pick. If
// the climb reaches the root with nothing left to try, the root itself
// is marked Failed and FindPlan's loop will report ErrUnresolvable.
func (sess *session) backtrack(failedID int) {
	current := failedID
	for {
		if snap, ok := sess.stnEntry[current]; ok {
			sess.temporal.Restore(snap)
		}

		predID, ok := graphops.FindPredecessor(sess.graph, current)
		if !ok {
			sess.graph.SetStatus(solutiongraph.RootID, solutiongraph.StatusFailed)
			return
		}

		pred, ok := sess.graph.Get(predID)
		if !ok {
			return
		}

		// pred's last-tried method is exactly what produced the now-failed
		// subtree rooted at current; blacklist it so this subproblem's
		// method is never retried, even from a different path, regardless
		// of whether pred has another method left to try.
		if pred.SelectedMethod >= 0 {
			key := blacklistKey{kind: pred.Kind, fingerprint: fingerprint(pred.Info), methodOrdinal: pred.SelectedMethod}
			sess.blacklist[key] = true
		}

		if len(pred.AvailableMethods) > 0 {
			graphops.RemoveDescendants(sess.graph, predID)
			if snap := sess.graph.GetSnapshot(predID); snap != nil {
				sess.state = snap.Snapshot()
			}
			sess.graph.SetStatus(predID, solutiongraph.StatusOpen)
			sess.logger.Node(predID).Debugf("reopened with next method")
			return
		}

		sess.graph.SetStatus(predID, solutiongraph.StatusFailed)
		current = predID
	}
}
