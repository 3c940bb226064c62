package graphops

import (
	"strconv"

	"github.com/katalvlaran/htnplan/core"
	"github.com/katalvlaran/htnplan/solutiongraph"
)

// ToCoreGraph exports g's successor relation as a directed *core.Graph,
// one vertex per node ID (stringified) and one edge per parent→child
// link. Like AdjacencyMatrix, this is a diagnostic view for property
// tests — e.g. feeding dfs.DetectCycles to assert the solution graph
// never develops a cycle during backtracking.
func ToCoreGraph(g *solutiongraph.Graph) (*core.Graph, error) {
	cg := core.NewGraph(core.WithDirected(true))

	for _, id := range g.IDs() {
		if err := cg.AddVertex(strconv.Itoa(id)); err != nil {
			return nil, err
		}
	}
	for _, id := range g.IDs() {
		node, ok := g.Get(id)
		if !ok {
			continue
		}
		for _, childID := range node.Successors {
			if _, err := cg.AddEdge(strconv.Itoa(id), strconv.Itoa(childID), 0); err != nil {
				return nil, err
			}
		}
	}

	return cg, nil
}
