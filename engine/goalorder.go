package engine

import (
	"sort"

	"github.com/katalvlaran/htnplan/domain"
	"github.com/katalvlaran/htnplan/todoitem"
)

// reorderGoals implements the goal-ordering optimization: when every item
// in subitems is (after unwrapping) a Unigoal, they are stably reordered
// so goals with fewer registered methods are attempted first — failing
// faster on an unachievable conjunction without changing soundness. Any
// other mix of item kinds is returned unchanged, since the spec only
// describes reordering "several unigoals simultaneously".
func reorderGoals(subitems []todoitem.Item, d *domain.Domain) []todoitem.Item {
	if len(subitems) < 2 {
		return subitems
	}

	type ranked struct {
		item    todoitem.Item
		methods int
	}
	ranks := make([]ranked, len(subitems))
	for i, it := range subitems {
		inner, _ := todoitem.Unwrap(it)
		u, ok := inner.(todoitem.Unigoal)
		if !ok {
			return subitems
		}
		ranks[i] = ranked{item: it, methods: len(d.UnigoalMethods(u.Variable))}
	}

	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].methods < ranks[j].methods })

	out := make([]todoitem.Item, len(ranks))
	for i, r := range ranks {
		out[i] = r.item
	}
	return out
}
