package pkg

import "sync/atomic"

// RunGuard tags logical searches with a monotonically increasing run id so a
// caller can discard results of a search that was superseded by a newer one.
// The core query layer knows nothing about cancellation; this is an opt-in
// capability for interactive callers.
type RunGuard struct {
	current atomic.Uint64
}

// Next starts a new run and returns its id, superseding any previous run.
func (g *RunGuard) Next() uint64 {
	return g.current.Add(1)
}

// Current returns the id of the latest run.
func (g *RunGuard) Current() uint64 {
	return g.current.Load()
}

// IsCurrent reports whether the given run is still the latest one.
func (g *RunGuard) IsCurrent(id uint64) bool {
	return g.current.Load() == id
}
