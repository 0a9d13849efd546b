package search

import (
	"math"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/matrix"
	"github.com/paradise-fi/rofivoxel/move"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
)

// AssignmentKind selects which per-module-pair cost AssignmentMetric uses.
type AssignmentKind int

const (
	// AssignmentPos costs a pairing by Euclidean distance between
	// representative positions, centered on each world's spatial median.
	AssignmentPos AssignmentKind = iota
	// AssignmentJoint costs a pairing by how many joint/orientation
	// fields differ.
	AssignmentJoint
	// AssignmentPosJoint sums both costs.
	AssignmentPosJoint
)

// AssignmentMetric builds a module x module cost matrix (position
// distance, joint-state difference, or their sum — per Kind), solves the
// resulting linear-sum-assignment problem with a hand-written Hungarian
// solver (no pack library ships one — see DESIGN.md), and takes the best
// result over every normalized-equivalent goal world. Grounded on
// reconfig/heuristic/assignment.rs.
//
// This metric is deliberately inadmissible: its
// EstimatedCost adds sqrt(real_cost) on top of the assignment potential, a
// "fast but lossy" mode that does not guarantee A* optimality. Zero and
// Naive remain the admissible options.
type AssignmentMetric struct {
	Kind AssignmentKind
}

func (m AssignmentMetric) Potential(goal, current State) float64 {
	curMods := move.Modules(current)
	eqGoals, err := world.NormalizedEqWorlds(world.KindMap, goal)
	if err != nil || len(eqGoals) == 0 {
		eqGoals = []State{goal}
	}

	best := math.Inf(1)
	for _, g := range eqGoals {
		goalMods := move.Modules(g)
		if len(goalMods) != len(curMods) {
			continue
		}
		cost, err := m.assignmentCost(curMods, goalMods)
		if err != nil {
			continue
		}
		if cost < best {
			best = cost
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// EstimatedCost adds sqrt(real_cost) on top of real_cost + potential —
// intentionally inadmissible.
func (m AssignmentMetric) EstimatedCost(c Cost) float64 {
	return float64(c.RealCost) + c.Potential + math.Sqrt(float64(c.RealCost))
}

// assignmentCost builds the n x n cost matrix for curMods vs goalMods
// (centered on each side's own spatial median) and returns the
// minimum-cost perfect matching's total cost.
func (m AssignmentMetric) assignmentCost(curMods, goalMods []voxel.Module) (float64, error) {
	n := len(curMods)
	if n == 0 {
		return 0, nil
	}
	curMedian := medianOf(curMods)
	goalMedian := medianOf(goalMods)

	costMat, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, err
	}
	for i, cm := range curMods {
		for j, gm := range goalMods {
			var c float64
			switch m.Kind {
			case AssignmentPos:
				c = posCost(cm, curMedian, gm, goalMedian)
			case AssignmentJoint:
				c = jointCost(cm, gm)
			default: // AssignmentPosJoint
				c = posCost(cm, curMedian, gm, goalMedian) + jointCost(cm, gm)
			}
			if err := costMat.Set(i, j, c); err != nil {
				return 0, err
			}
		}
	}
	return hungarianMinCost(costMat)
}

func posCost(cm voxel.Module, curMedian geom.Pos, gm voxel.Module, goalMedian geom.Pos) float64 {
	dx := float64((cm.RPos.X - curMedian.X) - (gm.RPos.X - goalMedian.X))
	dy := float64((cm.RPos.Y - curMedian.Y) - (gm.RPos.Y - goalMedian.Y))
	dz := float64((cm.RPos.Z - curMedian.Z) - (gm.RPos.Z - goalMedian.Z))
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func jointCost(cm, gm voxel.Module) float64 {
	var c float64
	if cm.Repr.JointPos != gm.Repr.JointPos {
		c++
	}
	if cm.Part.JointPos != gm.Part.JointPos {
		c++
	}
	if cm.Repr.ShoeRotated != gm.Repr.ShoeRotated {
		c++
	}
	if cm.Part.ShoeRotated != gm.Part.ShoeRotated {
		c++
	}
	return c
}

// medianOf returns the componentwise median of every module's
// representative position, used to center each side's cost contribution
// before comparing across worlds that may be translated relative to one
// another.
func medianOf(mods []voxel.Module) geom.Pos {
	n := len(mods)
	if n == 0 {
		return geom.Pos{}
	}
	xs := make([]int64, n)
	ys := make([]int64, n)
	zs := make([]int64, n)
	for i, mod := range mods {
		xs[i], ys[i], zs[i] = mod.RPos.X, mod.RPos.Y, mod.RPos.Z
	}
	return geom.Pos{X: medianInt64(xs), Y: medianInt64(ys), Z: medianInt64(zs)}
}

func medianInt64(vs []int64) int64 {
	sorted := append([]int64(nil), vs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted[len(sorted)/2]
}

// hungarianMinCost solves the square minimum-cost perfect matching on an
// n x n matrix.Dense cost matrix, via the standard O(n^3) primal-dual
// (Kuhn-Munkres with potentials) shortest-augmenting-path formulation.
// Ported in the deterministic, side-effect-free style of
// tsp/matching.go's greedyMatch (see DESIGN.md) — this solver, unlike that
// greedy one, finds the true minimum since the assignment metric's
// usefulness depends on an accurate (if still inadmissible-once-combined)
// cost estimate.
func hungarianMinCost(cost *matrix.Dense) (float64, error) {
	n := cost.Rows()
	if n == 0 {
		return 0, nil
	}
	const inf = math.MaxFloat64 / 4

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	at := func(row, col int) (float64, error) { return cost.At(row, col) }

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				c, err := at(i0-1, j-1)
				if err != nil {
					return 0, err
				}
				cur := c - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	var total float64
	for j := 1; j <= n; j++ {
		if p[j] == 0 {
			continue
		}
		c, err := at(p[j]-1, j-1)
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}
