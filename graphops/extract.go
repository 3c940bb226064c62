package graphops

import (
	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/todoitem"
)

// ExtractPlan walks the graph from its root in iterative preorder (pushing
// successors in reverse so the visit order matches a recursive left-to-
// right DFS), collecting the unwrapped Action of every Closed Action node.
// It never descends past a node that isn't Closed, so failed/abandoned
// branches contribute nothing.
func ExtractPlan(g *solutiongraph.Graph) []todoitem.Action {
	var plan []todoitem.Action
	toVisit := []int{solutiongraph.RootID}

	for len(toVisit) > 0 {
		id := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]

		node, ok := g.Get(id)
		if !ok {
			continue
		}

		if node.Kind == solutiongraph.KindAction && node.Status == solutiongraph.StatusClosed {
			inner, _ := todoitem.Unwrap(node.Info)
			if a, ok := inner.(todoitem.Action); ok {
				plan = append(plan, a)
			}
		}

		if node.Status != solutiongraph.StatusClosed {
			continue
		}
		for i := len(node.Successors) - 1; i >= 0; i-- {
			toVisit = append(toVisit, node.Successors[i])
		}
	}

	return plan
}
