package search

import (
	"github.com/paradise-fi/rofivoxel/move"
	"github.com/paradise-fi/rofivoxel/world"
)

// StateGraph is the pluggable successor/equivalence source the search
// drivers are parameterized over. The voxel-world instantiation below
// (VoxelStateGraph) is the only one this repo ships, but the interface is
// kept separate from the drivers so a future state space (e.g. a
// connection-aware extension) can plug in without touching
// BFS/A*/bidirectional.
type StateGraph interface {
	// DebugCheckState validates a state's invariants; returns an error
	// describing the first violation found, nil if the state is sound.
	// Intended for assertions/tests, not the hot path.
	DebugCheckState(s State) error
	// InitCheck is a quick necessary condition checked before search
	// starts at all; false means the goal is provably unreachable without
	// running any search (the VoxelCountMismatch pre-check).
	InitCheck(init, goal State) bool
	// EquivalentStates returns every state in s's normalization-
	// equivalence class, s included.
	EquivalentStates(s State) ([]State, error)
	// NextStates enumerates every legal one-move successor of s.
	NextStates(s State) []State
}

// VoxelStateGraph is the StateGraph instantiation used throughout this
// repo: State = NormVoxelWorld, EquivalentStates = world.NormalizedEqWorlds,
// NextStates = move.AllNextWorlds, each successor normalized.
type VoxelStateGraph struct {
	// Kind selects which NormVoxelWorld representation new states are
	// built in (successor generation, rotation). Defaults to world.KindMap,
	// the safest representation, via the zero value.
	Kind world.Kind
}

// DebugCheckState delegates to world.Check.
func (g VoxelStateGraph) DebugCheckState(s State) error {
	return world.Check(s)
}

// InitCheck implements the VoxelCountMismatch pre-check: init
// and goal must have the same number of occupied voxels (hence the same
// module count) or no sequence of moves can possibly connect them, since
// every move conserves the voxel count.
func (g VoxelStateGraph) InitCheck(init, goal State) bool {
	return len(init.AllVoxels()) == len(goal.AllVoxels())
}

// EquivalentStates returns every normalized rotation of s.
func (g VoxelStateGraph) EquivalentStates(s State) ([]State, error) {
	return world.NormalizedEqWorlds(g.Kind, s)
}

// NextStates runs the full move generator over s and returns each
// successor normalized: the member of its equivalence class with the
// smallest Key, so every successor is one of its own EquivalentStates.
func (g VoxelStateGraph) NextStates(s State) []State {
	succ := move.AllNextWorlds(g.Kind, s)
	out := make([]State, 0, len(succ))
	for _, n := range succ {
		eqs, err := world.NormalizedEqWorlds(g.Kind, n)
		if err != nil || len(eqs) == 0 {
			continue
		}
		best, bestKey := eqs[0], Key(eqs[0])
		for _, e := range eqs[1:] {
			if k := Key(e); k < bestKey {
				best, bestKey = e, k
			}
		}
		out = append(out, best)
	}
	return out
}
