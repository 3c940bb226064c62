package graphops

import (
	"sort"

	"github.com/katalvlaran/htnplan/matrix"
	"github.com/katalvlaran/htnplan/solutiongraph"
)

// AdjacencyMatrix exports g's successor relation as a dense 0/1 matrix,
// plus the node id each row/column index corresponds to (ids sorted
// ascending for determinism). Entry [i][j] = 1 means ids[i] has ids[j] as
// a direct successor.
//
// This is a diagnostic view, not something the engine consults during
// planning: it exists to let property tests assert structural invariants
// cheaply, e.g. that the graph stays a tree (every non-root node has
// exactly one predecessor, i.e. every column except the root's column
// sums to exactly 1).
func AdjacencyMatrix(g *solutiongraph.Graph) (*matrix.Dense, []int, error) {
	ids := g.IDs()
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	if n == 0 {
		return nil, ids, nil
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	for _, id := range ids {
		node, ok := g.Get(id)
		if !ok {
			continue
		}
		row := index[id]
		for _, childID := range node.Successors {
			col, ok := index[childID]
			if !ok {
				continue
			}
			if err := m.Set(row, col, 1); err != nil {
				return nil, nil, err
			}
		}
	}

	return m, ids, nil
}

// IsTree reports whether g's successor relation currently forms a tree
// rooted at solutiongraph.RootID: every node other than the root has
// exactly one predecessor, and the root has zero. It is implemented as a
// column-sum check over AdjacencyMatrix.
func IsTree(g *solutiongraph.Graph) (bool, error) {
	m, ids, err := AdjacencyMatrix(g)
	if err != nil {
		return false, err
	}
	if m == nil {
		return true, nil
	}

	sums, err := matrix.ColSums(m)
	if err != nil {
		return false, err
	}

	for i, id := range ids {
		want := 1.0
		if id == solutiongraph.RootID {
			want = 0.0
		}
		if sums[i] != want {
			return false, nil
		}
	}
	return true, nil
}
