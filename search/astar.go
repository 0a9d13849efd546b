package search

import "container/heap"

// Cost is A*'s NodeInfo: the real accumulated move-count from init plus a
// metric's potential estimate of the remaining distance to goal. Grounded
// on reconfig/algs/astar/mod.rs's Cost{cost,potential}.
type Cost struct {
	RealCost  uint32
	Potential float64
}

// AStar is the priority-queue-based AlgInfo strategy, generalizing the
// dijkstra/dijkstra.go container/heap + lazy-decrease-key pattern: pushing
// duplicates into the heap and ignoring stale pops rather than mutating
// heap entries in place. EARLY_CHECK selects between the early-return
// variant (goal checked the moment a state is discovered, fast but only
// optimal with an admissible metric used correctly) and the optimal
// variant (goal checked only once popped, guaranteeing shortest paths
// when the metric is admissible).
type AStar struct {
	metric   Metric
	goal     State
	early    bool
	initCost Cost
	pq       costHeap
}

// NewAStarEarly returns the early-return A* variant seeded from init/goal
// under metric.
func NewAStarEarly(init, goal State, metric Metric) *AStar {
	return newAStar(init, goal, metric, true)
}

// NewAStarOptimal returns the optimal A* variant (EARLY_CHECK = false)
// seeded from init/goal under metric. Optimality holds only when metric is
// admissible (Zero or Naive — not Assignment).
func NewAStarOptimal(init, goal State, metric Metric) *AStar {
	return newAStar(init, goal, metric, false)
}

func newAStar(init, goal State, metric Metric, early bool) *AStar {
	return &AStar{
		metric:   metric,
		goal:     goal,
		early:    early,
		initCost: Cost{RealCost: 0, Potential: metric.Potential(goal, init)},
	}
}

func (a *AStar) EarlyCheck() bool { return a.early }
func (a *AStar) DefaultInfo() any { return a.initCost }

func (a *AStar) AddToVisit(key string, state State, info any) {
	cost := info.(Cost)
	heap.Push(&a.pq, costHolder{
		key: key, state: state, cost: cost,
		estimated: a.metric.EstimatedCost(cost),
	})
}

// VisitNext pops the minimum-estimated-cost entry, re-checking it against
// the parent map's current info for that key: if a cheaper path to this
// key was recorded after this heap entry was pushed, the popped entry is
// stale and is discarded in favor of the next pop.
func (a *AStar) VisitNext(pm *ParentMap) (string, State, any, bool) {
	for a.pq.Len() > 0 {
		item := heap.Pop(&a.pq).(costHolder)
		info, ok := pm.Info(item.key)
		if !ok {
			continue
		}
		current := info.(Cost)
		if a.metric.EstimatedCost(current) < item.estimated {
			// A strictly better path was recorded since this entry was
			// pushed; skip the stale one.
			continue
		}
		return item.key, item.state, current, true
	}
	return "", nil, nil, false
}

// GetNodeInfo computes the real cost of reaching newState (parent's real
// cost + one move) and its potential under metric; it returns ok=false
// (skip) when a known path to newState is already at least as cheap.
func (a *AStar) GetNodeInfo(parentInfo any, newState State, pm *ParentMap) (any, bool) {
	parent := parentInfo.(Cost)
	newReal := parent.RealCost + 1

	key := Key(newState)
	if existing, ok := pm.Info(key); ok {
		old := existing.(Cost)
		if old.RealCost <= newReal {
			return nil, false
		}
	}
	return Cost{RealCost: newReal, Potential: a.metric.Potential(a.goal, newState)}, true
}

// costHolder is one entry in the A* priority queue: grounded on
// dijkstra.go's nodeItem, carrying the precomputed estimated cost so the
// heap's Less never needs to re-evaluate the metric.
type costHolder struct {
	key       string
	state     State
	cost      Cost
	estimated float64
}

// costHeap is a min-heap of costHolder ordered by estimated cost
// ascending; ties are resolved arbitrarily (container/heap does not
// guarantee FIFO among equal keys) — callers must not rely on a
// particular tie-break.
type costHeap []costHolder

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].estimated < h[j].estimated }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costHolder)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
