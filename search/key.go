// Package search implements the state-space search engine: the StateGraph
// abstraction, the parent map, pluggable search strategies (BFS, A* in its
// early-return and optimal variants, one-directional and bidirectional
// drivers), and the metric (heuristic) plug-ins A* can use to prioritize
// its frontier. Grounded on
// voxelReconfig/src/reconfig/{mod,algs/{astar,bidir}}.rs, retargeted onto
// this repo's world package, and on the bfs/dijkstra packages for the
// Go-idiomatic walker/heap shapes.
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/world"
)

// State is the search engine's state type, specialized to the one
// instantiation this engine needs: a normalized voxel world. (The generic
// StateGraph/AlgInfo traits of the source are associated-type generics;
// Go's idiomatic equivalent for a single-instantiation abstraction is a
// concrete type alias rather than introducing type parameters nothing else
// would use.)
type State = world.NormVoxelWorld

// Key returns a canonical, content-addressed string for a state, suitable
// as a map key. Two worlds with identical sizes and voxel content (in any
// representation: Map, Matrix, SortVec) produce the same Key — this is
// what lets the parent map treat all three representations as
// interchangeable lookup keys. Members of one rotation-equivalence class
// differ in content and so have distinct Keys; the parent map records
// each of them as a separate key of one shared entry.
func Key(s State) string {
	sizes := s.Sizes()
	all := s.AllVoxels()
	sort.Slice(all, func(i, j int) bool { return lessPos(all[i].Pos, all[j].Pos) })

	var b strings.Builder
	b.Grow(32 + len(all)*12)
	writeInt := func(v int64) {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte(',')
	}
	writeInt(sizes.X)
	writeInt(sizes.Y)
	writeInt(sizes.Z)
	b.WriteByte('|')
	for _, pv := range all {
		writeInt(pv.Pos.X)
		writeInt(pv.Pos.Y)
		writeInt(pv.Pos.Z)
		b.WriteString(strconv.Itoa(int(pv.Voxel.Pack())))
		b.WriteByte(';')
	}
	return b.String()
}

func lessPos(a, b geom.Pos) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
