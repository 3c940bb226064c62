// Package domainconfig loads planning fixtures — initial state and a todo
// list — from YAML, so example scenarios and integration tests describe
// their world declaratively instead of constructing state.State and
// todoitem.Item values by hand. Domains themselves (actions and methods)
// remain Go code: a function cannot be serialized, so only the data half
// of a scenario lives here.
package domainconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/htnplan/state"
)

// scalarValue decodes a bare YAML scalar into a state.Value, preserving
// whichever of bool/int/float/string the node's tag resolved to. Unlike
// state.Value, it implements yaml.Unmarshaler so it can appear directly
// inside the larger fixture documents below.
type scalarValue struct {
	state.Value
}

func (v *scalarValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		v.Value = state.Bool(b)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		v.Value = state.Int(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		v.Value = state.Float(f)
	case "!!str":
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.Value = state.String(s)
	default:
		return fmt.Errorf("domainconfig: unsupported scalar tag %q", node.Tag)
	}
	return nil
}
