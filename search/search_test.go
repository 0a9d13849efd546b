package search_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/search"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/stretchr/testify/require"
)

// twoModuleWorld builds a two-module, four-voxel chain: module 1 at
// (0,0,0)-(1,0,0), module 2 at (2,0,0)-(3,0,0) sharing no voxel (each
// module occupies its own pair of positions along X).
func twoModuleWorld(t *testing.T) world.NormVoxelWorld {
	t.Helper()
	m1repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	m1part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	m2repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	m2part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	vs := []world.PosVoxel{
		{Pos: geom.NewPos(0, 0, 0), Voxel: m1repr},
		{Pos: geom.NewPos(1, 0, 0), Voxel: m1part},
		{Pos: geom.NewPos(2, 0, 0), Voxel: m2repr},
		{Pos: geom.NewPos(3, 0, 0), Voxel: m2part},
	}
	w, err := world.FromVoxels(world.KindMap, vs)
	require.NoError(t, err)
	return w
}

func singleModuleWorld(t *testing.T) world.NormVoxelWorld {
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

func TestKeyIsStableUnderEquivalentRotations(t *testing.T) {
	w := singleModuleWorld(t)
	eq, err := world.NormalizedEqWorlds(world.KindMap, w)
	require.NoError(t, err)
	require.NotEmpty(t, eq)

	classKeys := make(map[string]bool, len(eq))
	for _, e := range eq {
		classKeys[search.Key(e)] = true
	}
	require.True(t, classKeys[search.Key(w)], "a normalized world's own key must be among its class keys")
	for _, e := range eq {
		eqE, err := world.NormalizedEqWorlds(world.KindMap, e)
		require.NoError(t, err)
		got := make(map[string]bool, len(eqE))
		for _, x := range eqE {
			got[search.Key(x)] = true
		}
		require.Equal(t, classKeys, got, "every equivalence-class member must yield the same set of class keys")
	}
}

// Trivial init==goal only terminates immediately under an EARLY_CHECK=false
// strategy (the goal check happens on pop, and init is the first thing
// popped); EARLY_CHECK=true strategies like BFS only ever test freshly
// discovered successors against the goal — this is the documented exact
// behavior, not a bug to route around here.
func TestRunOneDirectionalAStarOptimalFindsTrivialPath(t *testing.T) {
	w := singleModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}

	astar := search.NewAStarOptimal(w, w, search.ZeroMetric{})
	path, err := search.RunOneDirectional(graph, astar, w, w)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.True(t, world.Equal(path[0], w))
}

func TestRunOneDirectionalBFSFindsNonTrivialPath(t *testing.T) {
	init := twoModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}

	next := graph.NextStates(init)
	require.NotEmpty(t, next)
	goal := next[0]

	path, err := search.RunOneDirectional(graph, search.NewBFS(), init, goal)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	require.True(t, world.Equal(path[0], init))
	require.True(t, world.Equal(path[len(path)-1], goal))
}

func TestRunOneDirectionalVoxelCountMismatch(t *testing.T) {
	init := singleModuleWorld(t)
	goal := twoModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}

	_, err := search.RunOneDirectional(graph, search.NewBFS(), init, goal)
	require.ErrorIs(t, err, search.ErrVoxelCountMismatch)
}

func TestRunOneDirectionalAStarZeroMatchesBFSLength(t *testing.T) {
	init := twoModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}
	next := graph.NextStates(init)
	require.NotEmpty(t, next)
	goal := next[0]

	bfsPath, err := search.RunOneDirectional(graph, search.NewBFS(), init, goal)
	require.NoError(t, err)

	astar := search.NewAStarOptimal(init, goal, search.ZeroMetric{})
	astarPath, err := search.RunOneDirectional(graph, astar, init, goal)
	require.NoError(t, err)

	require.Equal(t, len(bfsPath), len(astarPath))
}

func TestRunOneDirectionalAStarNaiveFindsPath(t *testing.T) {
	init := twoModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}
	next := graph.NextStates(init)
	require.NotEmpty(t, next)
	goal := next[0]

	astar := search.NewAStarEarly(init, goal, search.NaiveMetric{})
	path, err := search.RunOneDirectional(graph, astar, init, goal)
	require.NoError(t, err)
	require.True(t, world.Equal(path[0], init))
	require.True(t, world.Equal(path[len(path)-1], goal))
}

func TestRunBidirectionalFindsSameLengthPathAsBFS(t *testing.T) {
	init := twoModuleWorld(t)
	graph := search.VoxelStateGraph{Kind: world.KindMap}
	next := graph.NextStates(init)
	require.NotEmpty(t, next)
	goal := next[0]

	bfsPath, err := search.RunOneDirectional(graph, search.NewBFS(), init, goal)
	require.NoError(t, err)

	bidiPath, err := search.RunBidirectional(graph, search.NewBFS(), search.NewBFS(), init, goal)
	require.NoError(t, err)

	require.True(t, world.Equal(bidiPath[0], init))
	require.True(t, world.Equal(bidiPath[len(bidiPath)-1], goal))
	require.Equal(t, len(bfsPath), len(bidiPath))
}

func TestAssignmentMetricPotentialIsZeroAtGoal(t *testing.T) {
	w := twoModuleWorld(t)
	m := search.AssignmentMetric{Kind: search.AssignmentPosJoint}
	require.Equal(t, float64(0), m.Potential(w, w))
}

func TestNaiveMetricPotentialIsZeroAtGoal(t *testing.T) {
	w := twoModuleWorld(t)
	var m search.NaiveMetric
	require.Equal(t, float64(0), m.Potential(w, w))
}

func TestParentMapPathToRoot(t *testing.T) {
	pm := search.NewParentMap()
	w := singleModuleWorld(t)
	key := search.Key(w)
	pm.InsertRoot([]string{key}, []search.State{w}, struct{}{})

	path := pm.PathTo(key)
	require.Len(t, path, 1)
	require.True(t, world.Equal(path[0], w))
}
