package graphops

import "github.com/katalvlaran/htnplan/solutiongraph"

// FindOpen returns the first successor of parentID whose status is Open,
// scanning left-to-right, or (0, false) if none remain (every successor
// is terminal, or parentID has none).
func FindOpen(g *solutiongraph.Graph, parentID int) (int, bool) {
	parent, ok := g.Get(parentID)
	if !ok {
		return 0, false
	}
	for _, childID := range parent.Successors {
		child, ok := g.Get(childID)
		if ok && child.Status == solutiongraph.StatusOpen {
			return childID, true
		}
	}
	return 0, false
}

// FindNextOpen returns the first Open LEAF reachable from root in preorder
// (root, then its successors left-to-right, recursively) — the engine's
// pick step. A Task/Goal/Multigoal node whose method already produced
// children stays Open by design (so backtracking can still find it) but
// is no longer a leaf, so FindNextOpen descends into its successors
// instead of re-selecting it; a node with no successors yet is a leaf,
// picked iff it is still Open. Failed nodes are dead branches and are
// never descended into, even if stale children remain. Returns (0, false)
// once nothing reachable is an open leaf, which the caller reads as
// "root is done".
func FindNextOpen(g *solutiongraph.Graph, root int) (int, bool) {
	node, ok := g.Get(root)
	if !ok {
		return 0, false
	}
	if node.Status == solutiongraph.StatusFailed {
		return 0, false
	}
	if len(node.Successors) > 0 {
		for _, childID := range node.Successors {
			if id, ok := FindNextOpen(g, childID); ok {
				return id, true
			}
		}
		return 0, false
	}
	if node.Status == solutiongraph.StatusOpen {
		return root, true
	}
	return 0, false
}

// FindPredecessor linearly scans every node for one whose successor list
// contains id, returning (0, false) if none does (id is the root, or has
// already been pruned). The graph is a tree, so at most one node can ever
// match.
func FindPredecessor(g *solutiongraph.Graph, id int) (int, bool) {
	for _, candidateID := range g.IDs() {
		candidate, ok := g.Get(candidateID)
		if !ok {
			continue
		}
		for _, childID := range candidate.Successors {
			if childID == id {
				return candidateID, true
			}
		}
	}
	return 0, false
}

// RemoveDescendants deletes every node reachable from id's successors
// (not including id itself) and clears id's successor list, leaving id a
// childless leaf ready for re-expansion.
func RemoveDescendants(g *solutiongraph.Graph, id int) {
	node, ok := g.Get(id)
	if !ok {
		return
	}

	visited := make(map[int]bool)
	var toRemove []int
	collectDescendants(g, node.Successors, visited, &toRemove)

	for _, childID := range toRemove {
		g.Delete(childID)
	}
	node.Successors = nil
	g.Update(node)
}

func collectDescendants(g *solutiongraph.Graph, frontier []int, visited map[int]bool, result *[]int) {
	for _, id := range frontier {
		if visited[id] {
			continue
		}
		visited[id] = true
		*result = append(*result, id)

		node, ok := g.Get(id)
		if !ok || len(node.Successors) == 0 {
			continue
		}
		collectDescendants(g, node.Successors, visited, result)
	}
}
