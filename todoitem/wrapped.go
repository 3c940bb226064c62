package todoitem

import "time"

// EntityRequirement names a capability-bearing entity a constrained item
// needs while it runs: any entity whose Type matches and whose capability
// set is a superset of Capabilities may satisfy it.
type EntityRequirement struct {
	Type         string
	Capabilities []string
}

// Constraints carries the optional temporal and resource requirements that
// may accompany any Item. A zero Constraints (Duration == 0, both time
// pointers nil, no requirements) is equivalent to "unconstrained".
type Constraints struct {
	Duration         time.Duration
	StartTime        *time.Time
	EndTime          *time.Time
	RequiresEntities []EntityRequirement
}

// IsZero reports whether c carries no constraints at all.
func (c *Constraints) IsZero() bool {
	return c == nil ||
		(c.Duration == 0 && c.StartTime == nil && c.EndTime == nil && len(c.RequiresEntities) == 0)
}

// Wrapped is the canonical carrier for a todo item plus its optional
// Constraints — the on-the-wire shape described at the external-interface
// boundary. A bare Item with nil Constraints is equivalent to a Wrapped
// with a zero Constraints.
type Wrapped struct {
	Item        Item
	Constraints *Constraints
}

func (Wrapped) isItem() {}

// Unwrap returns the inner item and constraints, recursing through nested
// Wrapped values (classification's step 1: "if wrapped with item, unwrap
// and recurse"). It returns the innermost non-Wrapped Item together with
// the outermost non-nil Constraints encountered, or nil if none were set.
func Unwrap(it Item) (Item, *Constraints) {
	var c *Constraints
	for {
		w, ok := it.(Wrapped)
		if !ok {
			return it, c
		}
		if c == nil {
			c = w.Constraints
		}
		it = w.Item
	}
}
