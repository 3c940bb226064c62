package flow

import (
	"context"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation/timeout for the run; normalized to context.Background().
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: if true, logs each augmentation when possible.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// Epsilon 1e-9, no verbose logging, Dinic never force-rebuilds its level
// graph early.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Epsilon: 1e-9}
}

// normalize fills in zero-value fields so callers may pass a bare
// FlowOptions{} (or one built by hand rather than via DefaultOptions).
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}
