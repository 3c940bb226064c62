package solutiongraph

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// Graph is the solution-graph arena: an id-keyed map of nodes, plus the
// monotonically increasing id counter. Node 0 is pre-created as
// Root/NotApplicable. Graph is not safe for concurrent use — by design,
// it is owned exclusively by a single engine.Planner for the duration of
// one planning call (see DESIGN.md for why this diverges from the
// teacher's thread-safe graph type).
type Graph struct {
	nodes  map[int]*Node
	nextID int
}

// NewGraph returns a Graph with its root node (id 0) pre-created.
func NewGraph() *Graph {
	g := &Graph{nodes: make(map[int]*Node)}
	g.nodes[0] = newNode(0, KindRoot, todoitem.Marker{Label: "root"}, nil, nil)
	g.nodes[0].Status = StatusNotApplicable
	g.nextID = 1
	return g
}

// RootID is the solution graph's pre-created root node id.
const RootID = 0

// CreateNode allocates a new node of the given kind carrying info, with
// methods as its initial AvailableMethods (nil for Action/Root/Verify*
// nodes, which have none) and action bound if kind is KindAction (nil
// otherwise). It returns the new node's id.
func (g *Graph) CreateNode(kind NodeKind, info todoitem.Item, methods []Method, action domain.ActionFunc) int {
	id := g.nextID
	g.nextID++
	g.nodes[id] = newNode(id, kind, info, methods, action)
	return id
}

// Get returns the node with id, or (nil, false) if it does not exist (or
// has been pruned).
func (g *Graph) Get(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Update replaces the stored node at n.ID with n.
func (g *Graph) Update(n *Node) {
	g.nodes[n.ID] = n
}

// AddSuccessor appends childID to parentID's successor list. It is a
// no-op if parentID does not exist.
func (g *Graph) AddSuccessor(parentID, childID int) {
	p, ok := g.nodes[parentID]
	if !ok {
		return
	}
	p.Successors = append(p.Successors, childID)
}

// SetStatus sets the status of node id, if it exists.
func (g *Graph) SetStatus(id int, status NodeStatus) {
	if n, ok := g.nodes[id]; ok {
		n.Status = status
	}
}

// SaveSnapshot stores snap as node id's StateSnapshot. Callers should pass
// a value produced by (*state.State).Snapshot so no later mutation of the
// live state can reach backwards into this node.
func (g *Graph) SaveSnapshot(id int, snap *state.State) {
	if n, ok := g.nodes[id]; ok {
		n.StateSnapshot = snap
	}
}

// GetSnapshot returns node id's saved state snapshot, or nil if none has
// been saved yet.
func (g *Graph) GetSnapshot(id int) *state.State {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.StateSnapshot
}

// Delete removes node id from the arena entirely (used by
// RemoveDescendants in package graphops).
func (g *Graph) Delete(id int) {
	delete(g.nodes, id)
}

// NextID reports the id that would be assigned to the next created node,
// for diagnostics.
func (g *Graph) NextID() int { return g.nextID }

// IDs returns every live node id, in unspecified order.
func (g *Graph) IDs() []int {
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	return out
}
