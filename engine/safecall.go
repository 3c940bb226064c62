package engine

import (
	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// safeCallAction invokes fn, treating a panic as equivalent to fn
// returning (nil, false) for this attempt — actions and methods are
// caller-supplied and must not be allowed to abort a planning call.
func safeCallAction(fn domain.ActionFunc, s *state.State, args ...state.Value) (result *state.State, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = nil, false
		}
	}()
	return fn(s, args...)
}

// safeCallMethod is safeCallAction's counterpart for solutiongraph.Method.
func safeCallMethod(fn solutiongraph.Method, s *state.State) (items []todoitem.Item, ok bool) {
	defer func() {
		if recover() != nil {
			items, ok = nil, false
		}
	}()
	return fn(s)
}
