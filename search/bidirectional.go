package search

import "github.com/paradise-fi/rofivoxel/telemetry"

// RunBidirectional drives two strategies in lock-step, one expanding from
// init and one from goal. After each single-state expansion in either
// direction, the newly recorded states are checked against the other
// direction's parent map; a hit means the two searches have met, and the
// two half-paths are spliced at that state.
//
// fwdAlg and bwdAlg are independent AlgInfo instances (e.g. two *BFS, or a
// *BFS paired with an *AStar) — sharing one would corrupt the other
// direction's frontier. Moves are treated as reversible: both directions
// expand successors via the same graph.NextStates, matching the
// undirected-graph assumption in bfs/bfs.go and dijkstra/dijkstra.go (both
// walk g.Neighbors in a single direction with no separate "reverse graph").
func RunBidirectional(graph StateGraph, fwdAlg, bwdAlg AlgInfo, init, goal State) ([]State, error) {
	if !graph.InitCheck(init, goal) {
		return nil, ErrVoxelCountMismatch
	}

	fwdPM := NewParentMap()
	bwdPM := NewParentMap()

	initClass, err := graph.EquivalentStates(init)
	if err != nil {
		return nil, err
	}
	fwdPM.InsertRoot(keysOf(initClass), initClass, fwdAlg.DefaultInfo())

	goalClass, err := graph.EquivalentStates(goal)
	if err != nil {
		return nil, err
	}
	bwdPM.InsertRoot(keysOf(goalClass), goalClass, bwdAlg.DefaultInfo())

	canonicalInit, canonicalGoal := init, goal
	if !init.Sizes().IsNormalized() {
		canonicalInit = initClass[0]
	}
	if !goal.Sizes().IsNormalized() {
		canonicalGoal = goalClass[0]
	}
	fwdAlg.AddToVisit(Key(canonicalInit), canonicalInit, fwdAlg.DefaultInfo())
	bwdAlg.AddToVisit(Key(canonicalGoal), canonicalGoal, bwdAlg.DefaultInfo())

	for {
		meetKey, met, err := bidirectionalStep(graph, fwdAlg, fwdPM, bwdPM)
		if err != nil {
			return nil, err
		}
		if met {
			return spliceBidirectionalPath(fwdPM, bwdPM, meetKey), nil
		}

		meetKey, met, err = bidirectionalStep(graph, bwdAlg, bwdPM, fwdPM)
		if err != nil {
			return nil, err
		}
		if met {
			return spliceBidirectionalPath(fwdPM, bwdPM, meetKey), nil
		}
	}
}

// bidirectionalStep pops and expands exactly one state from ownPM's
// strategy, recording every freshly-discovered successor into ownPM. It
// returns the first key found to already be present in otherPM — either
// the popped state itself or one of its successors.
func bidirectionalStep(graph StateGraph, alg AlgInfo, ownPM, otherPM *ParentMap) (string, bool, error) {
	curKey, cur, curInfo, ok := alg.VisitNext(ownPM)
	if !ok {
		return "", false, ErrPathNotFound
	}
	if otherPM.Has(curKey) {
		return curKey, true, nil
	}

	for _, next := range graph.NextStates(cur) {
		info, okInfo := alg.GetNodeInfo(curInfo, next, ownPM)
		if !okInfo {
			telemetry.IncDuplicateMoves()
			continue
		}

		eqStates, err := graph.EquivalentStates(next)
		if err != nil {
			return "", false, err
		}
		eqKeys := keysOf(eqStates)
		nextKey := Key(next)
		isNewState := !ownPM.Has(nextKey)
		ownPM.InsertClass(eqKeys, eqStates, curKey, info)
		if isNewState {
			telemetry.IncNewUniqueStates()
		}

		if otherPM.Has(nextKey) {
			return nextKey, true, nil
		}
		alg.AddToVisit(nextKey, next, info)
	}
	return "", false, nil
}

// spliceBidirectionalPath joins the init-side path to meetKey with the
// reverse of the goal-side path to meetKey, dropping the goal-side path's
// first post-reversal element (meetKey itself) to avoid duplicating it.
func spliceBidirectionalPath(fwdPM, bwdPM *ParentMap, meetKey string) []State {
	fwdPath := fwdPM.PathTo(meetKey)
	bwdPath := bwdPM.PathTo(meetKey) // [goal, ..., meet]

	result := make([]State, 0, len(fwdPath)+len(bwdPath)-1)
	result = append(result, fwdPath...)
	for i := len(bwdPath) - 2; i >= 0; i-- {
		result = append(result, bwdPath[i])
	}
	return result
}
