package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/htnplan/core"
)

// FordFulkerson computes the maximum flow from source→sink in a capacity
// network by repeatedly finding any augmenting path (via DFS) with
// positive residual capacity and augmenting along it until none remains.
//
// Use Ford–Fulkerson when you need a straightforward max-flow
// implementation. For stronger worst-case guarantees, prefer
// Edmonds–Karp or Dinic.
//
// Complexity: O(E · F) where F ≈ maxFlow / Epsilon
// Memory:     O(V + E) for the residual capacity map.
//
// Returns ErrSourceNotFound, ErrSinkNotFound, an EdgeError (negative
// capacity), or a context cancellation error.
func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow float64, residual *core.Graph, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	capMap, err := buildCapMap(g, opts)
	if err != nil {
		return 0, nil, err
	}

	for {
		visited := make(map[string]bool, len(capMap))
		path, bottle := dfsFindPath(capMap, source, sink, visited, math.Inf(1), opts.Epsilon)
		if len(path) == 0 {
			break
		}
		if opts.Verbose {
			fmt.Printf("augmenting path %v with δ=%g\n", path, bottle)
		}
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
		maxFlow += bottle

		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// dfsFindPath performs a DFS over capMap to locate any source→sink path
// with capacity > eps. Returns the path and its bottleneck flow, or an
// empty path if none found.
func dfsFindPath(
	capMap map[string]map[string]float64,
	u, sink string,
	visited map[string]bool,
	available, eps float64,
) ([]string, float64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for v, capUV := range capMap[u] {
		if visited[v] || capUV <= eps {
			continue
		}
		b := math.Min(available, capUV)
		path, flow := dfsFindPath(capMap, v, sink, visited, b, eps)
		if len(path) > 0 {
			return append([]string{u}, path...), flow
		}
	}
	return nil, 0
}
