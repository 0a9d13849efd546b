package search

import "github.com/paradise-fi/rofivoxel/telemetry"

// RunOneDirectional drives a single search strategy (BFS or one of the
// AStar variants) from init to goal over graph.
//
// It seeds the parent map with every member of init's equivalence class
// mapped to (no parent, alg's default info), seeds the strategy's own
// frontier with the canonical init, then loops: pop the next state to
// expand, optionally check it against the goal before expanding
// (EARLY_CHECK == false strategies check here), expand its successors,
// and — for EARLY_CHECK == true strategies — check each freshly-recorded
// successor against the goal as soon as it is discovered.
func RunOneDirectional(graph StateGraph, alg AlgInfo, init, goal State) ([]State, error) {
	if !graph.InitCheck(init, goal) {
		return nil, ErrVoxelCountMismatch
	}

	pm := NewParentMap()

	initClass, err := graph.EquivalentStates(init)
	if err != nil {
		return nil, err
	}
	initKeys := keysOf(initClass)
	pm.InsertRoot(initKeys, initClass, alg.DefaultInfo())

	goalKeys, err := goalKeySet(graph, goal)
	if err != nil {
		return nil, err
	}

	canonicalInit := init
	if !init.Sizes().IsNormalized() {
		canonicalInit = initClass[0]
	}
	canonicalInitKey := Key(canonicalInit)
	alg.AddToVisit(canonicalInitKey, canonicalInit, alg.DefaultInfo())

	for {
		curKey, cur, curInfo, ok := alg.VisitNext(pm)
		if !ok {
			return nil, ErrPathNotFound
		}

		if !alg.EarlyCheck() {
			if _, isGoal := goalKeys[curKey]; isGoal {
				return pm.PathTo(curKey), nil
			}
		}

		for _, next := range graph.NextStates(cur) {
			info, okInfo := alg.GetNodeInfo(curInfo, next, pm)
			if !okInfo {
				telemetry.IncDuplicateMoves()
				continue
			}

			eqStates, err := graph.EquivalentStates(next)
			if err != nil {
				return nil, err
			}
			eqKeys := keysOf(eqStates)
			nextKey := Key(next)
			isNewState := !pm.Has(nextKey)
			pm.InsertClass(eqKeys, eqStates, curKey, info)
			if isNewState {
				telemetry.IncNewUniqueStates()
			}

			if alg.EarlyCheck() {
				if _, isGoal := goalKeys[nextKey]; isGoal {
					return pm.PathTo(nextKey), nil
				}
			}
			alg.AddToVisit(nextKey, next, info)
		}
	}
}

func keysOf(states []State) []string {
	keys := make([]string, len(states))
	for i, s := range states {
		keys[i] = Key(s)
	}
	return keys
}

func goalKeySet(graph StateGraph, goal State) (map[string]struct{}, error) {
	class, err := graph.EquivalentStates(goal)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(class))
	for _, s := range class {
		set[Key(s)] = struct{}{}
	}
	return set, nil
}
