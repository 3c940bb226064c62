package state

// EntityInfo records an entity's declared type and the set of capability
// names it carries. Capabilities is a set, represented as a bool map so
// membership tests are O(1) and the zero value (false) never matters.
type EntityInfo struct {
	Type         string
	Capabilities map[string]bool
}

// cloneEntityInfo deep-copies an EntityInfo so snapshots never alias the
// live capability set.
func cloneEntityInfo(e EntityInfo) EntityInfo {
	caps := make(map[string]bool, len(e.Capabilities))
	for k, v := range e.Capabilities {
		caps[k] = v
	}
	return EntityInfo{Type: e.Type, Capabilities: caps}
}

// State is the planner's predicate store: variable -> argument -> Value,
// plus a side registry of entity capabilities. Every method that could
// expose an internal map to a caller instead returns a copy or a scalar,
// so a State can be frozen into an ancestor's snapshot without fear of a
// later mutation reaching backwards through it.
type State struct {
	vars     map[string]map[string]Value
	entities map[string]EntityInfo
}

// New returns an empty State.
func New() *State {
	return &State{
		vars:     make(map[string]map[string]Value),
		entities: make(map[string]EntityInfo),
	}
}

// Get returns the value bound to (variable, argument) and whether it is
// present. A missing variable or argument both report ok=false with the
// zero (absent) Value, exactly as a missing map entry would.
func (s *State) Get(variable, argument string) (Value, bool) {
	sub, ok := s.vars[variable]
	if !ok {
		return Value{}, false
	}
	v, ok := sub[argument]
	return v, ok
}

// Set binds (variable, argument) to v, creating the inner sub-mapping for
// variable on first use.
func (s *State) Set(variable, argument string, v Value) {
	sub, ok := s.vars[variable]
	if !ok {
		sub = make(map[string]Value)
		s.vars[variable] = sub
	}
	sub[argument] = v
}

// Has reports whether (variable, argument) is bound.
func (s *State) Has(variable, argument string) bool {
	_, ok := s.Get(variable, argument)
	return ok
}

// Variables returns the names of every state variable with at least one
// bound argument. Order is unspecified.
func (s *State) Variables() []string {
	out := make([]string, 0, len(s.vars))
	for k := range s.vars {
		out = append(out, k)
	}
	return out
}

// Arguments returns the bound arguments for variable. Order is unspecified.
func (s *State) Arguments(variable string) []string {
	sub, ok := s.vars[variable]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(sub))
	for k := range sub {
		out = append(out, k)
	}
	return out
}

// GetEntityCapability returns the EntityInfo for entityID and whether it
// exists. The returned Capabilities map is a defensive copy.
func (s *State) GetEntityCapability(entityID string) (EntityInfo, bool) {
	info, ok := s.entities[entityID]
	if !ok {
		return EntityInfo{}, false
	}
	return cloneEntityInfo(info), true
}

// SetEntityCapability registers or replaces entityID's type and capability
// set. capabilities is copied defensively.
func (s *State) SetEntityCapability(entityID, entityType string, capabilities []string) {
	caps := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		caps[c] = true
	}
	s.entities[entityID] = EntityInfo{Type: entityType, Capabilities: caps}
}

// HasEntity reports whether entityID is registered.
func (s *State) HasEntity(entityID string) bool {
	_, ok := s.entities[entityID]
	return ok
}

// Entities returns every registered entity id. Order is unspecified.
func (s *State) Entities() []string {
	out := make([]string, 0, len(s.entities))
	for k := range s.entities {
		out = append(out, k)
	}
	return out
}

// Snapshot returns a deep copy of s. Mutating the returned State — or
// mutating s afterwards — never affects the other; this is the sole
// mechanism by which ancestor nodes in the solution graph keep a frozen
// view of the world as it was when they were entered.
func (s *State) Snapshot() *State {
	out := New()
	for variable, sub := range s.vars {
		dup := make(map[string]Value, len(sub))
		for arg, v := range sub {
			dup[arg] = v
		}
		out.vars[variable] = dup
	}
	for id, info := range s.entities {
		out.entities[id] = cloneEntityInfo(info)
	}
	return out
}
