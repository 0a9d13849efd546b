package search

// AlgInfo is the pluggable search-strategy trait. Its
// associated NodeInfo type (default-constructible, cloneable in the source)
// becomes a plain `any` here: each concrete strategy (BFS, AStar) defines
// its own concrete NodeInfo type and type-asserts it back out of the `any`
// values the driver threads through, which is the idiomatic Go stand-in for
// an associated type only ever instantiated by the strategy that owns it.
type AlgInfo interface {
	// EarlyCheck reports whether this strategy tests a newly-discovered
	// state against the goal before adding it to the frontier (true,
	// e.g. BFS and the early-return A*) or only after popping a state off
	// the frontier (false, optimal A*).
	EarlyCheck() bool
	// DefaultInfo returns the NodeInfo a root (init equivalence-class
	// member) is seeded with.
	DefaultInfo() any
	// AddToVisit adds (key, state, info) to the strategy's frontier.
	AddToVisit(key string, state State, info any)
	// VisitNext pops and returns the next state to expand, along with its
	// recorded NodeInfo (re-read from the parent map, since a later
	// cheaper path may have updated it since this entry was enqueued).
	// ok is false once the frontier is exhausted.
	VisitNext(pm *ParentMap) (key string, state State, info any, ok bool)
	// GetNodeInfo computes the NodeInfo for transitioning from a parent
	// with parentInfo into newState, consulting pm to decide whether this
	// transition is worth recording at all. ok is false to silently skip
	// the transition (BFS: newState already visited; AStar: a cheaper
	// path to newState is already known).
	GetNodeInfo(parentInfo any, newState State, pm *ParentMap) (info any, ok bool)
}
