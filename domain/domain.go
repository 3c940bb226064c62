// Package domain holds the planner's library of actions and methods: a
// frozen, read-only collaborator the engine consults but never mutates.
// Construction happens through Builder, a separate phase from use.
package domain

import (
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// ActionFunc is a bound state transformer: given the current state and the
// action's arguments, it returns the new state and true on success, or
// (nil, false) if the action is not applicable right now. Implementations
// must treat the input state as read-only.
type ActionFunc func(s *state.State, args ...state.Value) (*state.State, bool)

// TaskMethodFunc decomposes a compound task into subitems, or reports it
// is not applicable to the given arguments/state by returning (nil, false).
type TaskMethodFunc func(s *state.State, args ...state.Value) ([]todoitem.Item, bool)

// UnigoalMethodFunc decomposes a single (variable, argument, value) goal
// into subitems, or reports inapplicability with (nil, false).
type UnigoalMethodFunc func(s *state.State, argument string, desired state.Value) ([]todoitem.Item, bool)

// MultigoalMethodFunc decomposes a multigoal into subitems, or reports
// inapplicability with (nil, false).
type MultigoalMethodFunc func(s *state.State, mg *todoitem.Multigoal) ([]todoitem.Item, bool)

// Domain is the planner's frozen library of actions and methods. It is
// built once via NewBuilder and never mutated afterward; the engine only
// calls its read accessors.
type Domain struct {
	actions          map[string]ActionFunc
	taskMethods      map[string][]TaskMethodFunc
	unigoalMethods   map[string][]UnigoalMethodFunc
	multigoalMethods []MultigoalMethodFunc
}

// Action returns the registered state transformer for name, or (nil,
// false) if no such action exists.
func (d *Domain) Action(name string) (ActionFunc, bool) {
	f, ok := d.actions[name]
	return f, ok
}

// HasAction reports whether name is registered as an action.
func (d *Domain) HasAction(name string) bool {
	_, ok := d.actions[name]
	return ok
}

// TaskMethods returns the ordered method list registered for the compound
// task name. The returned slice is a defensive copy.
func (d *Domain) TaskMethods(name string) []TaskMethodFunc {
	return append([]TaskMethodFunc(nil), d.taskMethods[name]...)
}

// HasTask reports whether name has at least one registered task method.
func (d *Domain) HasTask(name string) bool {
	_, ok := d.taskMethods[name]
	return ok
}

// UnigoalMethods returns the ordered method list registered for variable.
// The returned slice is a defensive copy.
func (d *Domain) UnigoalMethods(variable string) []UnigoalMethodFunc {
	return append([]UnigoalMethodFunc(nil), d.unigoalMethods[variable]...)
}

// HasUnigoal reports whether variable has at least one registered unigoal
// method.
func (d *Domain) HasUnigoal(variable string) bool {
	_, ok := d.unigoalMethods[variable]
	return ok
}

// MultigoalMethods returns the global ordered list of multigoal methods.
// The returned slice is a defensive copy.
func (d *Domain) MultigoalMethods() []MultigoalMethodFunc {
	return append([]MultigoalMethodFunc(nil), d.multigoalMethods...)
}
