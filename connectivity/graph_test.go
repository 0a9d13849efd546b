package connectivity_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/connectivity"
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/stretchr/testify/require"
)

func singleModuleWorld() (world.NormVoxelWorld, geom.Pos, geom.Pos) {
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	vs := []world.PosVoxel{
		{Pos: geom.NewPos(0, 0, 0), Voxel: repr},
		{Pos: geom.NewPos(1, 0, 0), Voxel: part},
	}
	w, err := world.FromSizesAndVoxels(world.KindMap, geom.NewSizes(2, 1, 1), vs)
	if err != nil {
		panic(err)
	}
	return w, geom.NewPos(0, 0, 0), geom.NewPos(1, 0, 0)
}

func TestComputeFromBodyEdge(t *testing.T) {
	w, pA, pB := singleModuleWorld()
	g := connectivity.ComputeFrom(w)
	require.True(t, g.HasEdge(pA, pB))
}

func TestAllCutsByModuleSplitsModule(t *testing.T) {
	w, pA, pB := singleModuleWorld()
	g := connectivity.ComputeFrom(w)
	cuts := connectivity.AllCutsByModule(g, pA, pB)
	require.NotEmpty(t, cuts)
	for _, cut := range cuts {
		_, aHasA := cut.SideA[pA]
		_, bHasB := cut.SideB[pB]
		require.True(t, aHasA)
		require.True(t, bHasB)
		_, aHasB := cut.SideA[pB]
		require.False(t, aHasB)
	}
}
