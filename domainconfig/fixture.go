package domainconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// Fixture is the root shape of a fixture YAML document: the world's
// initial state and the todo list to plan against.
type Fixture struct {
	State stateSpec  `yaml:"state"`
	Todo  []itemSpec `yaml:"todo"`
}

type stateSpec struct {
	Vars     map[string]map[string]scalarValue `yaml:"vars"`
	Entities map[string]entitySpec             `yaml:"entities"`
}

type entitySpec struct {
	Type         string   `yaml:"type"`
	Capabilities []string `yaml:"capabilities"`
}

// itemSpec is the YAML projection of todoitem.Item: exactly one of its
// fields is populated, naming which of the four concrete shapes (plus an
// optional wrapping constraints block) this entry describes.
type itemSpec struct {
	Action      *actionSpec      `yaml:"action"`
	Task        *taskSpec        `yaml:"task"`
	Unigoal     *unigoalSpec     `yaml:"unigoal"`
	Multigoal   *multigoalSpec   `yaml:"multigoal"`
	Constraints *constraintsSpec `yaml:"constraints"`
}

type actionSpec struct {
	Name string        `yaml:"name"`
	Args []scalarValue `yaml:"args"`
}

type taskSpec struct {
	Name string        `yaml:"name"`
	Args []scalarValue `yaml:"args"`
}

type unigoalSpec struct {
	Variable string      `yaml:"variable"`
	Argument string      `yaml:"argument"`
	Desired  scalarValue `yaml:"desired"`
}

type multigoalSpec struct {
	Name  string                            `yaml:"name"`
	Wants map[string]map[string]scalarValue `yaml:"wants"`
}

type constraintsSpec struct {
	Duration         string              `yaml:"duration"`
	StartTime        *time.Time          `yaml:"start_time"`
	EndTime          *time.Time          `yaml:"end_time"`
	RequiresEntities []entityRequirement `yaml:"requires_entities"`
}

type entityRequirement struct {
	Type         string   `yaml:"type"`
	Capabilities []string `yaml:"capabilities"`
}

// item converts one decoded itemSpec into the todoitem.Item it describes,
// wrapping it in todoitem.Wrapped iff a constraints block was present.
func (it itemSpec) item() (todoitem.Item, error) {
	inner, err := it.inner()
	if err != nil {
		return nil, err
	}
	if it.Constraints == nil {
		return inner, nil
	}
	c, err := it.Constraints.constraints()
	if err != nil {
		return nil, err
	}
	return todoitem.Wrapped{Item: inner, Constraints: c}, nil
}

func (it itemSpec) inner() (todoitem.Item, error) {
	set := 0
	var result todoitem.Item

	if it.Action != nil {
		set++
		result = todoitem.Action{Name: it.Action.Name, Args: scalarValues(it.Action.Args)}
	}
	if it.Task != nil {
		set++
		result = todoitem.Task{Name: it.Task.Name, Args: scalarValues(it.Task.Args)}
	}
	if it.Unigoal != nil {
		set++
		result = todoitem.Unigoal{
			Variable: it.Unigoal.Variable,
			Argument: it.Unigoal.Argument,
			Desired:  it.Unigoal.Desired.Value,
		}
	}
	if it.Multigoal != nil {
		set++
		wants := make(map[string]map[string]state.Value, len(it.Multigoal.Wants))
		for variable, args := range it.Multigoal.Wants {
			inner := make(map[string]state.Value, len(args))
			for arg, v := range args {
				inner[arg] = v.Value
			}
			wants[variable] = inner
		}
		result = todoitem.Multigoal{Name: it.Multigoal.Name, Wants: wants}
	}

	switch set {
	case 0:
		return nil, fmt.Errorf("domainconfig: todo entry has none of action/task/unigoal/multigoal set")
	case 1:
		return result, nil
	default:
		return nil, fmt.Errorf("domainconfig: todo entry has %d of action/task/unigoal/multigoal set, want exactly 1", set)
	}
}

func (c constraintsSpec) constraints() (*todoitem.Constraints, error) {
	out := &todoitem.Constraints{StartTime: c.StartTime, EndTime: c.EndTime}
	if c.Duration != "" {
		d, err := time.ParseDuration(c.Duration)
		if err != nil {
			return nil, fmt.Errorf("domainconfig: invalid duration %q: %w", c.Duration, err)
		}
		out.Duration = d
	}
	for _, r := range c.RequiresEntities {
		out.RequiresEntities = append(out.RequiresEntities, todoitem.EntityRequirement{
			Type:         r.Type,
			Capabilities: append([]string(nil), r.Capabilities...),
		})
	}
	return out, nil
}

func scalarValues(vs []scalarValue) []state.Value {
	out := make([]state.Value, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}

// Load reads and parses the fixture at path, returning the initial
// state.State it describes and the todoitem.Item list ready to hand to
// engine.Planner.FindPlan/RunLazyRefineahead.
func Load(path string) (*state.State, []todoitem.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("domainconfig: reading %s: %w", path, err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, nil, fmt.Errorf("domainconfig: parsing %s: %w", path, err)
	}

	s := state.New()
	for variable, args := range fx.State.Vars {
		for arg, v := range args {
			s.Set(variable, arg, v.Value)
		}
	}
	for id, e := range fx.State.Entities {
		s.SetEntityCapability(id, e.Type, e.Capabilities)
	}

	todo := make([]todoitem.Item, 0, len(fx.Todo))
	for i, spec := range fx.Todo {
		it, err := spec.item()
		if err != nil {
			return nil, nil, fmt.Errorf("domainconfig: %s: todo[%d]: %w", path, i, err)
		}
		todo = append(todo, it)
	}

	return s, todo, nil
}
