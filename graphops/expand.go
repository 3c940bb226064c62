package graphops

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// bindTaskMethod closes over a registered TaskMethodFunc and its arguments,
// producing a solutiongraph.Method with the uniform (state) -> (subitems,
// ok) signature the engine dispatches against without caring which of the
// four concrete method shapes it wraps.
func bindTaskMethod(fn domain.TaskMethodFunc, args []state.Value) solutiongraph.Method {
	return func(s *state.State) ([]todoitem.Item, bool) { return fn(s, args...) }
}

func bindUnigoalMethod(fn domain.UnigoalMethodFunc, argument string, desired state.Value) solutiongraph.Method {
	return func(s *state.State) ([]todoitem.Item, bool) { return fn(s, argument, desired) }
}

func bindMultigoalMethod(fn domain.MultigoalMethodFunc, mg todoitem.Multigoal) solutiongraph.Method {
	return func(s *state.State) ([]todoitem.Item, bool) { return fn(s, &mg) }
}

// methodsAndAction resolves the AvailableMethods list (or bound action) a
// freshly classified node should start with, by looking the item's head
// name up in d.
func methodsAndAction(d *domain.Domain, kind solutiongraph.NodeKind, inner todoitem.Item) ([]solutiongraph.Method, domain.ActionFunc) {
	switch kind {
	case solutiongraph.KindTask:
		t := inner.(todoitem.Task)
		fns := d.TaskMethods(t.Name)
		methods := make([]solutiongraph.Method, len(fns))
		for i, fn := range fns {
			methods[i] = bindTaskMethod(fn, t.Args)
		}
		return methods, nil
	case solutiongraph.KindGoal:
		u := inner.(todoitem.Unigoal)
		fns := d.UnigoalMethods(u.Variable)
		methods := make([]solutiongraph.Method, len(fns))
		for i, fn := range fns {
			methods[i] = bindUnigoalMethod(fn, u.Argument, u.Desired)
		}
		return methods, nil
	case solutiongraph.KindMultigoal:
		mg := inner.(todoitem.Multigoal)
		fns := d.MultigoalMethods()
		methods := make([]solutiongraph.Method, len(fns))
		for i, fn := range fns {
			methods[i] = bindMultigoalMethod(fn, mg)
		}
		return methods, nil
	case solutiongraph.KindAction:
		a := inner.(todoitem.Action)
		fn, ok := d.Action(a.Name)
		if !ok {
			return nil, nil
		}
		args := a.Args
		return nil, func(s *state.State, _ ...state.Value) (*state.State, bool) { return fn(s, args...) }
	default:
		return nil, nil
	}
}

// Expand classifies and creates one node per entry in children, links each
// as a successor of parentID, and — if parentID's own kind is Goal or
// Multigoal — appends one trailing VerifyGoal/VerifyMultigoal sibling.
// It returns every id created, in creation order (verification node last).
func Expand(g *solutiongraph.Graph, d *domain.Domain, parentID int, children []todoitem.Item) []int {
	ids := make([]int, 0, len(children)+1)

	for _, child := range children {
		inner, kind := Classify(child)
		methods, action := methodsAndAction(d, kind, inner)
		id := g.CreateNode(kind, child, methods, action)
		g.AddSuccessor(parentID, id)
		ids = append(ids, id)
	}

	parent, ok := g.Get(parentID)
	if !ok {
		return ids
	}
	switch parent.Kind {
	case solutiongraph.KindGoal:
		vid := g.CreateNode(solutiongraph.KindVerifyGoal, todoitem.Marker{Label: "VerifyGoal"}, nil, nil)
		g.AddSuccessor(parentID, vid)
		ids = append(ids, vid)
	case solutiongraph.KindMultigoal:
		vid := g.CreateNode(solutiongraph.KindVerifyMultigoal, todoitem.Marker{Label: "VerifyMultigoal"}, nil, nil)
		g.AddSuccessor(parentID, vid)
		ids = append(ids, vid)
	}
	return ids
}
