package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

func noopAction(s *state.State, _ ...state.Value) (*state.State, bool) {
	return s, true
}

func TestBuilderRoundTrip(t *testing.T) {
	d := domain.NewBuilder().
		AddActions(map[string]domain.ActionFunc{"noop": noopAction}).
		AddTaskMethods("deliver", []domain.TaskMethodFunc{
			func(s *state.State, args ...state.Value) ([]todoitem.Item, bool) {
				return nil, true
			},
		}).
		AddUnigoalMethods("pos", []domain.UnigoalMethodFunc{
			func(s *state.State, argument string, desired state.Value) ([]todoitem.Item, bool) {
				return nil, true
			},
		}).
		AddMultigoalMethods([]domain.MultigoalMethodFunc{
			func(s *state.State, mg *todoitem.Multigoal) ([]todoitem.Item, bool) {
				return nil, true
			},
		}).
		Build()

	require.True(t, d.HasAction("noop"))
	require.False(t, d.HasAction("missing"))
	require.True(t, d.HasTask("deliver"))
	require.True(t, d.HasUnigoal("pos"))
	require.Len(t, d.MultigoalMethods(), 1)

	fn, ok := d.Action("noop")
	require.True(t, ok)
	s2, ok := fn(state.New())
	require.True(t, ok)
	require.NotNil(t, s2)
}

func TestBuilderMethodListsAreDefensiveCopies(t *testing.T) {
	method := func(s *state.State, args ...state.Value) ([]todoitem.Item, bool) { return nil, false }
	b := domain.NewBuilder().AddTaskMethods("t", []domain.TaskMethodFunc{method})
	d := b.Build()

	ms := d.TaskMethods("t")
	ms[0] = nil // mutate the returned slice
	again := d.TaskMethods("t")
	require.NotNil(t, again[0], "Domain's internal method list must not be aliased by callers")
}
