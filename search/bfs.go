package search

// BFS is the breadth-first AlgInfo strategy: NodeInfo = struct{}{},
// EARLY_CHECK = true (a newly-discovered state is checked against the
// goal the moment it is recorded, before it is ever popped). Grounded
// directly on the bfs/bfs.go walker: a plain FIFO queue of frontier items,
// visited-ness delegated entirely to ParentMap membership ("already a
// key" doubles as "already visited").
type BFS struct {
	queue []frontierItem
}

type frontierItem struct {
	key   string
	state State
}

// NewBFS returns a fresh BFS strategy.
func NewBFS() *BFS {
	return &BFS{}
}

// EarlyCheck is always true for BFS: BFS's shortest-path guarantee only
// needs the frontier to stop at the first goal discovery, not at the first
// goal pop.
func (b *BFS) EarlyCheck() bool { return true }

// DefaultInfo returns the unit NodeInfo every BFS node shares.
func (b *BFS) DefaultInfo() any { return struct{}{} }

// AddToVisit enqueues (key, state) at the back of the FIFO queue.
func (b *BFS) AddToVisit(key string, state State, _ any) {
	b.queue = append(b.queue, frontierItem{key: key, state: state})
}

// VisitNext dequeues the front of the FIFO queue.
func (b *BFS) VisitNext(pm *ParentMap) (string, State, any, bool) {
	if len(b.queue) == 0 {
		return "", nil, nil, false
	}
	item := b.queue[0]
	b.queue = b.queue[1:]
	info, _ := pm.Info(item.key)
	return item.key, item.state, info, true
}

// GetNodeInfo returns (struct{}{}, true) the first time newState's key is
// seen, and (nil, false) — skip — every time after, since BFS never
// revisits a state once recorded.
func (b *BFS) GetNodeInfo(_ any, newState State, pm *ParentMap) (any, bool) {
	if pm.Has(Key(newState)) {
		return nil, false
	}
	return struct{}{}, true
}
