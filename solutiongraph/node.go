// Package solutiongraph implements the planner's AND/OR decomposition
// arena: nodes keyed by integer id, referenced by their parent's successor
// list rather than by pointer, so descendant pruning can sever links
// cleanly during backtracking.
package solutiongraph

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// NodeKind classifies a node's role in the decomposition tree.
type NodeKind string

const (
	KindRoot            NodeKind = "root"
	KindAction          NodeKind = "action"
	KindTask            NodeKind = "task"
	KindGoal            NodeKind = "goal"
	KindMultigoal       NodeKind = "multigoal"
	KindVerifyGoal      NodeKind = "verify_goal"
	KindVerifyMultigoal NodeKind = "verify_multigoal"
)

// String implements fmt.Stringer.
func (k NodeKind) String() string { return string(k) }

// NodeStatus is a node's lifecycle state.
type NodeStatus string

const (
	StatusOpen          NodeStatus = "open"
	StatusClosed        NodeStatus = "closed"
	StatusFailed        NodeStatus = "failed"
	StatusNotApplicable NodeStatus = "not_applicable"
)

// String implements fmt.Stringer.
func (s NodeStatus) String() string { return string(s) }

// Node is one entry in the solution graph arena.
type Node struct {
	ID     int
	Kind   NodeKind
	Status NodeStatus

	// Info is the original todo item this node refines (wrapped or bare).
	Info todoitem.Item

	// Successors is the ordered list of this node's children.
	Successors []int

	// StateSnapshot is the state as of entry to this node. Nil until
	// first saved.
	StateSnapshot *state.State

	// SelectedMethod records which method index was used last, so a
	// re-entry after backtracking resumes from AvailableMethods rather
	// than re-trying an exhausted one. -1 means no method has been tried
	// yet (or this node kind has no methods, e.g. Action/Root).
	SelectedMethod int

	// AvailableMethods holds the untried methods remaining for a
	// Task/Goal/Multigoal node, in the order they will be attempted. It
	// only ever shrinks.
	AvailableMethods []Method

	// Action is the bound state transformer for an Action node.
	Action domain.ActionFunc

	StartTime int64
	EndTime   int64
	Duration  int64
}

// Method is an opaque handle to one candidate decomposition for a
// Task/Goal/Multigoal node. Graph operations populate it from the domain;
// the engine invokes it polymorphically without knowing its concrete
// function type.
type Method func(s *state.State) ([]todoitem.Item, bool)

// newNode constructs a Node with id, defaulting to Open status and an
// empty successor list.
func newNode(id int, kind NodeKind, info todoitem.Item, methods []Method, action domain.ActionFunc) *Node {
	return &Node{
		ID:               id,
		Kind:             kind,
		Status:           StatusOpen,
		Info:             info,
		AvailableMethods: methods,
		Action:           action,
		SelectedMethod:   -1,
	}
}
