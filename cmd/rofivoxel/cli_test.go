package main

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/search"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/stretchr/testify/require"
)

func twoVoxelWorld(t *testing.T) world.NormVoxelWorld {
	t.Helper()
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	vs := []world.PosVoxel{
		{Pos: geom.NewPos(0, 0, 0), Voxel: repr},
		{Pos: geom.NewPos(1, 0, 0), Voxel: part},
	}
	w, err := world.FromVoxels(world.KindMap, vs)
	require.NoError(t, err)
	return w
}

func TestParseWorldKind(t *testing.T) {
	cases := map[string]world.Kind{
		"":        world.KindMap,
		"map":     world.KindMap,
		"matrix":  world.KindMatrix,
		"sortvec": world.KindSortVec,
	}
	for in, want := range cases {
		got, err := parseWorldKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := parseWorldKind("bogus")
	require.Error(t, err)
}

func TestSplitOptSuffix(t *testing.T) {
	rest, suffix, err := splitOptSuffix("astar-zero-opt")
	require.NoError(t, err)
	require.Equal(t, "astar-zero", rest)
	require.Equal(t, "opt", suffix)

	rest, suffix, err = splitOptSuffix("astar-naive-nopt")
	require.NoError(t, err)
	require.Equal(t, "astar-naive", rest)
	require.Equal(t, "nopt", suffix)

	_, _, err = splitOptSuffix("astar-zero")
	require.Error(t, err)
}

func TestParseAlgBFS(t *testing.T) {
	init, goal := twoVoxelWorld(t), twoVoxelWorld(t)
	alg, err := parseAlg("bfs", init, goal)
	require.NoError(t, err)
	require.True(t, alg.EarlyCheck())

	alg, err = parseAlg("", init, goal)
	require.NoError(t, err)
	require.True(t, alg.EarlyCheck())
}

func TestParseAlgAStarVariants(t *testing.T) {
	init, goal := twoVoxelWorld(t), twoVoxelWorld(t)

	early, err := parseAlg("astar-zero-nopt", init, goal)
	require.NoError(t, err)
	require.True(t, early.EarlyCheck())

	optimal, err := parseAlg("astar-naive-opt", init, goal)
	require.NoError(t, err)
	require.False(t, optimal.EarlyCheck())

	assignment, err := parseAlg("astar-assignment-posjoint-opt", init, goal)
	require.NoError(t, err)
	require.False(t, assignment.EarlyCheck())
}

func TestParseAlgUnknown(t *testing.T) {
	init, goal := twoVoxelWorld(t), twoVoxelWorld(t)
	_, err := parseAlg("astar-bogus-opt", init, goal)
	require.Error(t, err)

	_, err = parseAlg("astar-zero", init, goal)
	require.Error(t, err)
	require.Contains(t, err.Error(), "opt")
}

func TestInputReaderRejectsSecondStdin(t *testing.T) {
	r := &inputReader{}
	r.stdinUsed = true
	_, err := r.read(stdinPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "stdin")
}

func TestVoxelStateGraphInitCheckSmoke(t *testing.T) {
	// sanity check that a world built here is accepted as a search.State and
	// passes VoxelStateGraph's voxel-count pre-check against itself.
	init := twoVoxelWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}
	require.True(t, graph.InitCheck(init, init))
}
