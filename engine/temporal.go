package engine

import (
	"strconv"

	"github.com/katalvlaran/htnplan/stn"
	"github.com/katalvlaran/htnplan/todoitem"
)

// intervalID derives a unique STN interval identifier for a solution-graph
// node id, so AddDurative/AddInterval never collide between nodes even
// though each only ever adds its own interval once.
func intervalID(nodeID int) string {
	return "node" + strconv.Itoa(nodeID)
}

// applyTemporalConstraints anchors c's duration and, if present, start/end
// times onto temporal, returning whether the network stayed consistent. A
// nil or zero Constraints is trivially consistent. Absent bounds are passed
// to AddInterval as 0, which it treats as "leave unanchored" — a Duration
// with neither bound set stays floating relative to its own interval, not
// pinned to wall-clock time.
func applyTemporalConstraints(temporal *stn.STN, nodeID int, c *todoitem.Constraints) bool {
	if c == nil || c.IsZero() {
		return true
	}

	id := intervalID(nodeID)
	durationMicros := stn.DurationMicros(c.Duration)

	var start, end int64
	if c.StartTime != nil {
		start = int64(stn.ToMicros(*c.StartTime))
	}
	if c.EndTime != nil {
		end = int64(stn.ToMicros(*c.EndTime))
	}

	if !temporal.AddInterval(id, start, end, durationMicros) {
		return false
	}
	return temporal.IsConsistent()
}
