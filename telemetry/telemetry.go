// Package telemetry implements a process-wide, optional counter set: a
// singleton guarded by a single mutex, every counter call a no-op until
// Enable is called. Scaled down from core.Graph's pattern, which guards its
// vertex/edge maps with a sync.RWMutex — counters have no separate
// read-heavy path to justify the split, so one plain sync.Mutex covers the
// whole struct.
package telemetry

import (
	"encoding/json"
	"sync"
)

// Counters holds every counter in the counter log format, plus an optional
// per-round BFS layer-size trace. The zero value is never used
// directly by callers — it is always reached through the package-level
// singleton, which may be nil.
type Counters struct {
	mu sync.Mutex

	modules         int64
	successfulCuts  int64
	failedCuts      int64
	duplicateMoves  int64
	collidedMoves   int64
	newUniqueStates int64
	bfsLayers       []int64
}

var current *Counters

// Enable installs a fresh, zeroed Counters as the process-wide singleton
// and returns it. Subsequent Inc*/Record* calls anywhere in the process
// start accumulating into it until Disable is called.
func Enable() *Counters {
	current = &Counters{}
	return current
}

// Disable removes the singleton; every counter call becomes a no-op again.
func Disable() {
	current = nil
}

// Current returns the active singleton, or nil if telemetry is disabled.
func Current() *Counters {
	return current
}

// IncModules adds n to the running module count.
func IncModules(n int64) {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.modules += n
	current.mu.Unlock()
}

// IncSuccessfulCuts increments the count of connectivity cuts that passed
// their two-sided connectivity check (connectivity.AllCutsByModule).
func IncSuccessfulCuts() {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.successfulCuts++
	current.mu.Unlock()
}

// IncFailedCuts increments the count of candidate cuts rejected for
// disconnecting one of their two sides.
func IncFailedCuts() {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.failedCuts++
	current.mu.Unlock()
}

// IncDuplicateMoves increments the count of generated moves whose result
// was already known to the search driver at no better cost.
func IncDuplicateMoves() {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.duplicateMoves++
	current.mu.Unlock()
}

// IncCollidedMoves increments the count of moves the move generator
// discarded because applying them produced overlapping voxels.
func IncCollidedMoves() {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.collidedMoves++
	current.mu.Unlock()
}

// IncNewUniqueStates increments the count of states the search driver
// recorded for the first time (a new parent-map equivalence class).
func IncNewUniqueStates() {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.newUniqueStates++
	current.mu.Unlock()
}

// RecordBFSLayer appends size to the optional per-round BFS layer trace.
func RecordBFSLayer(size int64) {
	if current == nil {
		return
	}
	current.mu.Lock()
	current.bfsLayers = append(current.bfsLayers, size)
	current.mu.Unlock()
}

// counterTotal is the wire shape of Counters' "total" object.
type counterTotal struct {
	Modules         int64 `json:"modules"`
	SuccessfulCuts  int64 `json:"successful_cuts"`
	FailedCuts      int64 `json:"failed_cuts"`
	DuplicateMoves  int64 `json:"duplicate_moves"`
	CollidedMoves   int64 `json:"collided_moves"`
	NewUniqueStates int64 `json:"new_unique_states"`
}

// counterDoc is the wire shape of the whole counter log.
type counterDoc struct {
	Total     counterTotal `json:"total"`
	BFSLayers []int64      `json:"bfs_layers,omitempty"`
}

// MarshalJSON produces the counter-log shape: a "total" object plus an
// optional "bfs_layers" array.
func (c *Counters) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal(counterDoc{})
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	doc := counterDoc{
		Total: counterTotal{
			Modules:         c.modules,
			SuccessfulCuts:  c.successfulCuts,
			FailedCuts:      c.failedCuts,
			DuplicateMoves:  c.duplicateMoves,
			CollidedMoves:   c.collidedMoves,
			NewUniqueStates: c.newUniqueStates,
		},
	}
	if len(c.bfsLayers) > 0 {
		doc.BFSLayers = append([]int64(nil), c.bfsLayers...)
	}
	return json.Marshal(doc)
}
