package search

import (
	"github.com/paradise-fi/rofivoxel/move"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// Metric is an A* heuristic plug-in: a potential function built from the
// goal, plus the rule for turning a Cost into the priority-queue order
// key. Grounded on reconfig/heuristic/{mod,naive}.rs.
type Metric interface {
	// Potential estimates the remaining cost from current to goal.
	Potential(goal, current State) float64
	// EstimatedCost combines a real/potential Cost pair into the order
	// key A* pops by (ascending).
	EstimatedCost(c Cost) float64
}

// ZeroMetric always estimates 0 remaining cost, turning A* into uniform-
// cost search (Dijkstra). It is the one metric guaranteed available
// regardless of what else is wired in — the planner must remain correct
// with just the Zero heuristic.
type ZeroMetric struct{}

func (ZeroMetric) Potential(State, State) float64 { return 0 }
func (ZeroMetric) EstimatedCost(c Cost) float64    { return float64(c.RealCost) }

// NaiveMetric evaluates every permutation of module-to-module assignments
// between goal and the current state (bounded by n!, n = module count),
// scoring each assignment by how many body-edges and joint positions
// differ, and takes the minimum over all permutations. Admissible (never
// overestimates: any single move can fix at most a bounded number of these
// mismatches) but quadratic-times-factorial, so only practical for small
// module counts.
type NaiveMetric struct{}

func (NaiveMetric) Potential(goal, current State) float64 {
	goalMods := move.Modules(goal)
	curMods := move.Modules(current)
	if len(goalMods) != len(curMods) {
		// Module counts must match by the time a Metric is consulted
		// (InitCheck already enforced this); treat a mismatch here as
		// "arbitrarily far" rather than panicking, since Potential must
		// stay total.
		return 1e18
	}
	n := len(curMods)
	if n == 0 {
		return 0
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := moduleAssignmentCost(curMods, goalMods, perm)
	for permuteNext(perm) {
		cost := moduleAssignmentCost(curMods, goalMods, perm)
		if cost < best {
			best = cost
		}
	}
	return best
}

func (NaiveMetric) EstimatedCost(c Cost) float64 {
	return float64(c.RealCost) + c.Potential
}

// moduleAssignmentCost scores assigning curMods[i] to goalMods[perm[i]]
// for every i: +1 per mismatched representative position, +1 per
// mismatched joint position (representative and partner counted
// separately), +1 per mismatched ShoeRotated flag.
func moduleAssignmentCost(curMods, goalMods []voxel.Module, perm []int) float64 {
	var cost float64
	for i, cm := range curMods {
		gm := goalMods[perm[i]]
		if cm.RPos != gm.RPos {
			cost++
		}
		if cm.Repr.JointPos != gm.Repr.JointPos {
			cost++
		}
		if cm.Part.JointPos != gm.Part.JointPos {
			cost++
		}
		if cm.Repr.ShoeRotated != gm.Repr.ShoeRotated {
			cost++
		}
		if cm.Part.ShoeRotated != gm.Part.ShoeRotated {
			cost++
		}
	}
	return cost
}

// permuteNext advances perm to the next lexicographic permutation in
// place, returning false once perm has cycled back to fully descending
// (i.e. every permutation has been produced).
func permuteNext(perm []int) bool {
	n := len(perm)
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}
	return true
}
