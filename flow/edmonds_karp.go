package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/htnplan/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: non-nil on missing vertices or negative capacities.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (maxFlow float64, residual *core.Graph, err error) {
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
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		path, bottle := bfsAugmentingPath(ctx, capMap, source, sink, opts.Epsilon)
		if len(path) == 0 || bottle <= opts.Epsilon {
			break
		}
		if opts.Verbose {
			fmt.Printf("augmenting path %v with flow %.3g\n", path, bottle)
		}
		maxFlow += bottle

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	residual, err = buildCoreResidualFromCapMap(capMap, g, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in capMap from
// source→sink with positive capacity > eps, and returns that path plus its
// bottleneck capacity. Returns nil if no path found, or ctx is canceled.
func bfsAugmentingPath(
	ctx context.Context,
	capMap map[string]map[string]float64,
	source, sink string,
	eps float64,
) ([]string, float64) {
	parent := make(map[string]string, len(capMap))
	bottleneck := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}
		u := queue[i]
		for v, capUV := range capMap[u] {
			if visited[v] || capUV <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneck[v] = math.Min(bottleneck[u], capUV)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
