package connectivity

import (
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/telemetry"
)

// Cut is a bipartition of a connectivity graph, induced by removing exactly
// one module's body edge. SideA contains the module's representative
// voxel, SideB its partner.
type Cut struct {
	SideA map[geom.Pos]struct{}
	SideB map[geom.Pos]struct{}
}

// leafPrune iteratively strips degree-1 vertices from g, minus the edge
// (pA,pB), protecting pA and pB from ever being pruned (they are always
// explicitly assigned a side). Returns the surviving "core" vertex set and,
// for every pruned leaf, the core vertex it ultimately hangs off of.
func leafPrune(g *Graph, pA, pB geom.Pos) (core map[geom.Pos]struct{}, anchorOf map[geom.Pos]geom.Pos) {
	// Working adjacency copy with the module edge removed.
	adj := make(map[geom.Pos]map[geom.Pos]struct{}, len(g.adjacency))
	for v, ns := range g.adjacency {
		cp := make(map[geom.Pos]struct{}, len(ns))
		for n := range ns {
			cp[n] = struct{}{}
		}
		adj[v] = cp
	}
	delete(adj[pA], pB)
	delete(adj[pB], pA)

	protected := map[geom.Pos]struct{}{pA: {}, pB: {}}
	parent := make(map[geom.Pos]geom.Pos)
	alive := make(map[geom.Pos]struct{}, len(adj))
	for v := range adj {
		alive[v] = struct{}{}
	}

	for {
		var toPrune []geom.Pos
		for v := range alive {
			if _, isProtected := protected[v]; isProtected {
				continue
			}
			if len(adj[v]) <= 1 {
				toPrune = append(toPrune, v)
			}
		}
		if len(toPrune) == 0 {
			break
		}
		for _, v := range toPrune {
			var only geom.Pos
			hasNeighbor := false
			for n := range adj[v] {
				only = n
				hasNeighbor = true
			}
			if hasNeighbor {
				parent[v] = only
				delete(adj[only], v)
			}
			delete(adj, v)
			delete(alive, v)
		}
	}

	core = alive
	anchorOf = make(map[geom.Pos]geom.Pos)
	var resolve func(geom.Pos) geom.Pos
	resolve = func(v geom.Pos) geom.Pos {
		if _, ok := core[v]; ok {
			return v
		}
		p, ok := parent[v]
		if !ok {
			return v
		}
		return resolve(p)
	}
	for v := range g.adjacency {
		if _, ok := core[v]; !ok {
			anchorOf[v] = resolve(v)
		}
	}
	return core, anchorOf
}

// isConnectedWithin reports whether every vertex in side is reachable from
// start using only edges of g (minus the module edge) whose both endpoints
// are in side.
func isConnectedWithin(g *Graph, start geom.Pos, side map[geom.Pos]struct{}, excludeEdge [2]geom.Pos) bool {
	if len(side) == 0 {
		return true
	}
	if _, ok := side[start]; !ok {
		return false
	}
	isExcluded := func(a, b geom.Pos) bool {
		return (a == excludeEdge[0] && b == excludeEdge[1]) || (a == excludeEdge[1] && b == excludeEdge[0])
	}
	visited := map[geom.Pos]struct{}{start: {}}
	queue := []geom.Pos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for n := range g.adjacency[cur] {
			if isExcluded(cur, n) {
				continue
			}
			if _, inSide := side[n]; !inSide {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == len(side)
}

// AllCutsByModule enumerates every admissible cut of g that splits the
// module (pA, pB): pA on SideA, pB on SideB, the (pA,pB) edge the only
// removed edge, both sides internally connected.
//
// The graph is first partitioned into "core" (survives
// iterative leaf-pruning) and "leaves" (hang off a unique core anchor).
// Leaves have no choice of side — they always follow their anchor — so
// only subsets of the core's non-module vertices are enumerated, and each
// candidate assignment is kept only if no edge other than (pA,pB) joins
// the two halves and both halves are connected. When the core is just
// {pA, pB} (the whole world is a chain), the enumeration has a single
// candidate, in which every leaf follows its anchor.
func AllCutsByModule(g *Graph, pA, pB geom.Pos) []Cut {
	core, anchorOf := leafPrune(g, pA, pB)
	excludeEdge := [2]geom.Pos{pA, pB}

	var coreExtra []geom.Pos
	for v := range core {
		if v != pA && v != pB {
			coreExtra = append(coreExtra, v)
		}
	}

	buildCut := func(extraOnA map[geom.Pos]struct{}) Cut {
		sideA := map[geom.Pos]struct{}{pA: {}}
		sideB := map[geom.Pos]struct{}{pB: {}}
		for _, v := range coreExtra {
			if _, onA := extraOnA[v]; onA {
				sideA[v] = struct{}{}
			} else {
				sideB[v] = struct{}{}
			}
		}
		for leaf, anchor := range anchorOf {
			if _, onA := sideA[anchor]; onA {
				sideA[leaf] = struct{}{}
			} else {
				sideB[leaf] = struct{}{}
			}
		}
		return Cut{SideA: sideA, SideB: sideB}
	}

	// onlyModuleEdgeCrosses reports whether (pA,pB) is the only edge of g
	// with one endpoint on each side of cut.
	onlyModuleEdgeCrosses := func(cut Cut) bool {
		for v := range cut.SideA {
			for n := range g.adjacency[v] {
				if _, onB := cut.SideB[n]; onB && !(v == pA && n == pB) {
					return false
				}
			}
		}
		return true
	}

	var out []Cut
	n := len(coreExtra)
	for mask := 0; mask < (1 << n); mask++ {
		extraOnA := make(map[geom.Pos]struct{})
		for i, v := range coreExtra {
			if mask&(1<<i) != 0 {
				extraOnA[v] = struct{}{}
			}
		}
		cut := buildCut(extraOnA)
		if onlyModuleEdgeCrosses(cut) && isConnectedWithin(g, pA, cut.SideA, excludeEdge) && isConnectedWithin(g, pB, cut.SideB, excludeEdge) {
			out = append(out, cut)
			telemetry.IncSuccessfulCuts()
		} else {
			telemetry.IncFailedCuts()
		}
	}
	return out
}
