package world_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/stretchr/testify/require"
)

// twoVoxels builds the minimal two-shoe module world used across tests:
// representative at (0,0,0) pointing +X, partner at (1,0,0) pointing -X.
func twoVoxels() []world.PosVoxel {
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	return []world.PosVoxel{
		{Pos: geom.NewPos(0, 0, 0), Voxel: repr},
		{Pos: geom.NewPos(1, 0, 0), Voxel: part},
	}
}

func TestFromVoxelsAllKinds(t *testing.T) {
	for _, kind := range []world.Kind{world.KindMap, world.KindMatrix, world.KindSortVec} {
		w, err := world.FromVoxels(kind, twoVoxels())
		require.NoError(t, err)
		require.Equal(t, geom.NewSizes(2, 1, 1), w.Sizes())
		require.NoError(t, world.Check(w))
	}
}

func TestFromVoxelsMissingOtherBody(t *testing.T) {
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	_, err := world.FromVoxels(world.KindMap, []world.PosVoxel{{Pos: geom.NewPos(0, 0, 0), Voxel: repr}})
	require.Error(t, err)
}

func TestFromSizesAndVoxelsDuplicate(t *testing.T) {
	vs := twoVoxels()
	vs = append(vs, world.PosVoxel{Pos: vs[0].Pos, Voxel: vs[0].Voxel})
	_, err := world.FromSizesAndVoxels(world.KindMap, geom.NewSizes(2, 1, 1), vs)
	require.ErrorIs(t, err, world.ErrDuplicateVoxels)
}

func TestEqualAcrossRepresentations(t *testing.T) {
	mapW, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)
	matW, err := world.FromVoxels(world.KindMatrix, twoVoxels())
	require.NoError(t, err)
	require.True(t, world.Equal(mapW, matW))
}

func TestRotateWorldPreservesValidity(t *testing.T) {
	w, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)

	for _, r := range world.AllWorldRotations() {
		rotated, err := r.RotateWorld(world.KindMap, w)
		require.NoError(t, err)
		require.NoError(t, world.Check(rotated))
	}
}

func TestNormalizedEqWorldsContainsSelfWhenNormalized(t *testing.T) {
	w, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)
	require.True(t, w.Sizes().IsNormalized())

	eqs, err := world.NormalizedEqWorlds(world.KindMap, w)
	require.NoError(t, err)
	require.NotEmpty(t, eqs)

	found := false
	for _, e := range eqs {
		if world.Equal(e, w) {
			found = true
			break
		}
	}
	require.True(t, found, "normalized_eq_worlds must contain w itself")
}

// TestNormalizedEqWorldsSameSetAcrossRotationalClass exercises spec §8's
// property 4: two worlds in the same rotational class must produce the
// same normalized-equivalence set. twoVoxels has sizes (2,1,1) — a Y=Z
// tie — so rotations with odd negation parity also land on normalized
// sizes here; all 24 WorldRotation values must be considered or the two
// sets end up disjoint instead of equal.
func TestNormalizedEqWorldsSameSetAcrossRotationalClass(t *testing.T) {
	w1, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)

	var oddRotation world.WorldRotation
	found := false
	for _, r := range world.AllWorldRotations() {
		negCount := 0
		for _, n := range r.NegAxis {
			if n {
				negCount++
			}
		}
		if negCount%2 != 0 {
			oddRotation = r
			found = true
			break
		}
	}
	require.True(t, found, "AllWorldRotations must include an odd-negation-parity rotation")

	w2, err := oddRotation.RotateWorld(world.KindMap, w1)
	require.NoError(t, err)

	eq1, err := world.NormalizedEqWorlds(world.KindMap, w1)
	require.NoError(t, err)
	eq2, err := world.NormalizedEqWorlds(world.KindMap, w2)
	require.NoError(t, err)

	require.Equal(t, len(eq1), len(eq2))
	for _, a := range eq1 {
		matched := false
		for _, b := range eq2 {
			if world.Equal(a, b) {
				matched = true
				break
			}
		}
		require.True(t, matched, "every member of w1's equivalence set must also appear in w2's")
	}
}

func TestSubworldComplement(t *testing.T) {
	w, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)

	left := world.NewSubworld(w, func(p geom.Pos) bool { return p.X == 0 })
	right := left.Complement()

	_, ok := left.GetVoxel(geom.NewPos(1, 0, 0))
	require.False(t, ok)
	_, ok = right.GetVoxel(geom.NewPos(1, 0, 0))
	require.True(t, ok)
}
