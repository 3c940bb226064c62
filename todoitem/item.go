// Package todoitem defines the planner's closed sum type for todo items —
// Action, Task, Unigoal, Multigoal — plus the Wrapped carrier for optional
// temporal/entity constraints.
package todoitem

import "github.com/katalvlaran/htnplan/state"

// Item is the closed sum type over the four todo-item shapes plus the
// Marker and Wrapped carriers. isItem is unexported so no type outside this
// package may implement Item; callers discriminate via a type switch over
// the six concrete structs rather
// than a runtime tag, matching the exhaustive-pattern-match discipline
// called for when a language lacks sum types natively.
type Item interface {
	isItem()
}

// Action is a reference to a registered state transformer plus its
// arguments: `[action_name, arg1, arg2, ...]`.
type Action struct {
	Name string
	Args []state.Value
}

func (Action) isItem() {}

// Task is a reference to a registered compound task plus its arguments.
type Task struct {
	Name string
	Args []state.Value
}

func (Task) isItem() {}

// Unigoal targets a single (variable, argument, value) state fact.
type Unigoal struct {
	Variable string
	Argument string
	Desired  state.Value
}

func (Unigoal) isItem() {}

// Multigoal is a named conjunction of unigoals: Wants maps
// variable -> argument -> desired value.
type Multigoal struct {
	Name  string
	Wants map[string]map[string]state.Value
}

func (Multigoal) isItem() {}

// Marker is an internal bookkeeping item carrying no decomposable content
// of its own — used for solution-graph nodes whose existence is purely
// structural (verification nodes re-check an ancestor's goal rather than
// carrying new content to refine).
type Marker struct {
	Label string
}

func (Marker) isItem() {}

// Unmet returns every (variable, argument, desired) triple in m that does
// not currently hold in s — the set VerifyMultigoal re-checks.
func (m Multigoal) Unmet(s *state.State) []Unigoal {
	var out []Unigoal
	for variable, args := range m.Wants {
		for arg, desired := range args {
			got, ok := s.Get(variable, arg)
			if !ok || !got.Equal(desired) {
				out = append(out, Unigoal{Variable: variable, Argument: arg, Desired: desired})
			}
		}
	}
	return out
}

// Satisfied reports whether every want in m currently holds in s.
func (m Multigoal) Satisfied(s *state.State) bool {
	return len(m.Unmet(s)) == 0
}
