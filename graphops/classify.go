// Package graphops implements the solution graph's algorithmic content:
// node classification, successor expansion, open-node/predecessor lookup,
// descendant pruning, and plan extraction. It operates on a
// *solutiongraph.Graph plus a read-only *domain.Domain, mirroring the
// split between data (solutiongraph) and operations on that data.
package graphops

import (
	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/todoitem"
)

// Classify unwraps it (recursing through nested Wrapped values) and
// reports the NodeKind its innermost item belongs to, alongside that
// innermost item. An item that is none of Action/Task/Unigoal/Multigoal
// (only possible via a malformed Marker at a non-internal position)
// classifies as KindRoot — a degenerate node, per spec.md §7's "malformed
// item" error kind, handled by the engine as an immediate Failed.
func Classify(it todoitem.Item) (todoitem.Item, solutiongraph.NodeKind) {
	inner, _ := todoitem.Unwrap(it)
	switch inner.(type) {
	case todoitem.Multigoal:
		return inner, solutiongraph.KindMultigoal
	case todoitem.Action:
		return inner, solutiongraph.KindAction
	case todoitem.Task:
		return inner, solutiongraph.KindTask
	case todoitem.Unigoal:
		return inner, solutiongraph.KindGoal
	default:
		return inner, solutiongraph.KindRoot
	}
}
