// Package connectivity builds the undirected connectivity graph over a
// world's voxel positions and enumerates the admissible "cuts" used by the
// move generator. Grounded on
// rust-rofi_voxel/src/connectivity/mod.rs (face-matching edge rule) and
// voxelReconfig/src/connectivity/graph.rs (cut-validity shape); the
// core/leaf cut-enumeration algorithm here takes the core/leaf partition
// over the brute-force enumeration in the only available source
// snapshot — see DESIGN.md.
package connectivity

import (
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
)

// Graph is an undirected adjacency-list graph over voxel positions,
// generalizing the map-of-maps adjacency-list idiom (core/adjacency_list.go)
// from string vertex IDs to geom.Pos.
type Graph struct {
	adjacency map[geom.Pos]map[geom.Pos]struct{}
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[geom.Pos]map[geom.Pos]struct{})}
}

// addVertex ensures pos has an (initially empty) adjacency set.
func (g *Graph) addVertex(pos geom.Pos) {
	if _, ok := g.adjacency[pos]; !ok {
		g.adjacency[pos] = make(map[geom.Pos]struct{})
	}
}

// addEdge records an undirected edge between a and b.
func (g *Graph) addEdge(a, b geom.Pos) {
	g.addVertex(a)
	g.addVertex(b)
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
}

// Neighbors returns the positions directly connected to pos.
func (g *Graph) Neighbors(pos geom.Pos) []geom.Pos {
	out := make([]geom.Pos, 0, len(g.adjacency[pos]))
	for n := range g.adjacency[pos] {
		out = append(out, n)
	}
	return out
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b geom.Pos) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Vertices returns every vertex in the graph.
func (g *Graph) Vertices() []geom.Pos {
	out := make([]geom.Pos, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	return out
}

// ComputeFrom builds the connectivity graph of w: each voxel is connected
// to its module partner, and to any neighbor whose connector set contains
// the opposite direction at the shared face (the face-matching rule from
// connectivity/mod.rs's get_bodies_connected_to_body).
func ComputeFrom(w world.VoxelWorld) *Graph {
	g := NewGraph()
	for _, pv := range w.AllVoxels() {
		g.addVertex(pv.Pos)
		g.addEdge(pv.Pos, voxel.OtherBodyPos(pv.Pos, pv.Voxel))
		for _, dir := range pv.Voxel.GetConnectorsDirs() {
			otherPos := dir.UpdatePosition(pv.Pos)
			otherVoxel, ok := w.GetVoxel(otherPos)
			if !ok {
				continue
			}
			matched := false
			for _, otherDir := range otherVoxel.GetConnectorsDirs() {
				if otherDir == dir.Opposite() {
					matched = true
					break
				}
			}
			if matched {
				g.addEdge(pv.Pos, otherPos)
			}
		}
	}
	return g
}

// reachableFrom performs a BFS reachability scan, generalizing the
// teacher's bfs.go walker/queue shape to plain visited-set accumulation
// (no parent pointers needed here — only membership matters).
func reachableFrom(g *Graph, start geom.Pos, excludeEdge [2]geom.Pos) map[geom.Pos]struct{} {
	visited := map[geom.Pos]struct{}{start: {}}
	queue := []geom.Pos{start}
	isExcluded := func(a, b geom.Pos) bool {
		return (a == excludeEdge[0] && b == excludeEdge[1]) || (a == excludeEdge[1] && b == excludeEdge[0])
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for n := range g.adjacency[cur] {
			if isExcluded(cur, n) {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return visited
}
