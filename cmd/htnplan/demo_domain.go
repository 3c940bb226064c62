package main

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// demoDomain builds a tiny location-tracking domain: a "move" action that
// relocates an object, a "relocate" task that reduces to the at() unigoal,
// and an at() unigoal method that reduces to a single move action. It
// exists to give the CLI something to plan against without requiring a
// caller to compile in their own domain package.
func demoDomain() *domain.Domain {
	return domain.NewBuilder().
		AddActions(map[string]domain.ActionFunc{
			"move": moveAction,
		}).
		AddTaskMethods("relocate", []domain.TaskMethodFunc{relocateMethod}).
		AddUnigoalMethods("at", []domain.UnigoalMethodFunc{moveToMethod}).
		Build()
}

func moveAction(s *state.State, args ...state.Value) (*state.State, bool) {
	if len(args) != 3 {
		return nil, false
	}
	object, ok1 := args[0].AsString()
	from, ok2 := args[1].AsString()
	to, ok3 := args[2].AsString()
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}

	current, has := s.Get("at", object)
	if !has {
		return nil, false
	}
	if got, _ := current.AsString(); got != from {
		return nil, false
	}

	next := s.Snapshot()
	next.Set("at", object, state.String(to))
	return next, true
}

func relocateMethod(s *state.State, args ...state.Value) ([]todoitem.Item, bool) {
	if len(args) != 2 {
		return nil, false
	}
	object, ok1 := args[0].AsString()
	to, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return nil, false
	}
	return []todoitem.Item{
		todoitem.Unigoal{Variable: "at", Argument: object, Desired: state.String(to)},
	}, true
}

func moveToMethod(s *state.State, argument string, desired state.Value) ([]todoitem.Item, bool) {
	current, has := s.Get("at", argument)
	if !has {
		return nil, false
	}
	to, ok := desired.AsString()
	if !ok {
		return nil, false
	}
	from, ok := current.AsString()
	if !ok || from == to {
		return nil, false
	}
	return []todoitem.Item{
		todoitem.Action{Name: "move", Args: []state.Value{state.String(argument), state.String(from), state.String(to)}},
	}, true
}
