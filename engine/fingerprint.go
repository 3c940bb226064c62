package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/htnplan/solutiongraph"
	"github.com/katalvlaran/htnplan/state"
	"github.com/katalvlaran/htnplan/todoitem"
)

// blacklistKey identifies one (node-kind, subproblem, method) triple that
// has already been tried and failed during this planning request.
type blacklistKey struct {
	kind          solutiongraph.NodeKind
	fingerprint   string
	methodOrdinal int
}

// fingerprint returns a deterministic string identity for the innermost
// content of it, ignoring any Wrapped constraints — two todo items that
// would decompose identically (same name/variable/argument/desired/args)
// share a fingerprint regardless of which solution-graph node carries
// them, which is exactly the "same subproblem" the blacklist needs to
// recognize across separate decomposition paths.
func fingerprint(it todoitem.Item) string {
	inner, _ := todoitem.Unwrap(it)
	switch v := inner.(type) {
	case todoitem.Action:
		return "action:" + v.Name + ":" + argsFingerprint(v.Args)
	case todoitem.Task:
		return "task:" + v.Name + ":" + argsFingerprint(v.Args)
	case todoitem.Unigoal:
		return fmt.Sprintf("unigoal:%s:%s:%s", v.Variable, v.Argument, v.Desired.String())
	case todoitem.Multigoal:
		return "multigoal:" + v.Name
	case todoitem.Marker:
		return "marker:" + v.Label
	default:
		return "unknown"
	}
}

func argsFingerprint(args []state.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}
