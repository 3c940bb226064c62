package engine

import "errors"

// ErrUnresolvable is returned by FindPlan when the root node exhausts
// every available method combination without closing — backtracking
// climbed all the way to the root with no alternative left to try.
var ErrUnresolvable = errors.New("engine: no plan resolves the given todo list")

// ErrBudgetExhausted is returned by RunLazyRefineahead when maxTries is
// exceeded before the remaining todo list is fully committed. The
// last-observed state is still returned alongside this error.
var ErrBudgetExhausted = errors.New("engine: lazy refineahead exceeded its retry budget")
