package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/htnplan/core"
	"github.com/katalvlaran/htnplan/flow"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// matchEntities reports whether s's registered entities can simultaneously
// satisfy every requirement in reqs, each requirement consuming a distinct
// entity (type equality plus capability superset). This is a set-cover /
// assignment problem in general — two requirements with overlapping
// eligible-entity sets must not be satisfied by the same entity — so it is
// modeled as bipartite maximum flow (source -> requirement -> entity ->
// sink, unit capacities) and solved with the teacher's EdmondsKarp rather
// than a greedy per-requirement scan, which can wrongly report success
// when requirements compete for the same entity.
func matchEntities(ctx context.Context, s *state.State, reqs []todoitem.EntityRequirement) (bool, error) {
	if len(reqs) == 0 {
		return true, nil
	}

	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	const source = "__source__"
	const sink = "__sink__"
	if err := g.AddVertex(source); err != nil {
		return false, err
	}
	if err := g.AddVertex(sink); err != nil {
		return false, err
	}

	entityIDs := s.Entities()
	entityVertex := func(id string) string { return "entity:" + id }
	for _, id := range entityIDs {
		if err := g.AddVertex(entityVertex(id)); err != nil {
			return false, err
		}
		if _, err := g.AddEdge(entityVertex(id), sink, 1); err != nil {
			return false, err
		}
	}

	for i, req := range reqs {
		reqVertex := fmt.Sprintf("req:%d", i)
		if err := g.AddVertex(reqVertex); err != nil {
			return false, err
		}
		if _, err := g.AddEdge(source, reqVertex, 1); err != nil {
			return false, err
		}
		for _, id := range entityIDs {
			info, ok := s.GetEntityCapability(id)
			if !ok || !entitySatisfies(info, req) {
				continue
			}
			if _, err := g.AddEdge(reqVertex, entityVertex(id), 1); err != nil {
				return false, err
			}
		}
	}

	opts := flow.DefaultOptions()
	opts.Ctx = ctx
	maxFlow, _, err := flow.EdmondsKarp(g, source, sink, opts)
	if err != nil {
		return false, err
	}
	return int(maxFlow) == len(reqs), nil
}

func entitySatisfies(info state.EntityInfo, req todoitem.EntityRequirement) bool {
	if info.Type != req.Type {
		return false
	}
	for _, c := range req.Capabilities {
		if !info.Capabilities[c] {
			return false
		}
	}
	return true
}
