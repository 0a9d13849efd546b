package voxeljson_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/voxeljson"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/stretchr/testify/require"
)

func twoVoxels() []world.PosVoxel {
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointPlus90)
	return []world.PosVoxel{
		{Pos: geom.NewPos(0, 0, 0), Voxel: repr},
		{Pos: geom.NewPos(1, 0, 0), Voxel: part},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	w, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)

	data, err := voxeljson.EncodeWorld(w, true)
	require.NoError(t, err)

	got, err := voxeljson.DecodeWorld(world.KindMap, data)
	require.NoError(t, err)
	require.True(t, world.Equal(w, got))
}

func TestDecodeWorldNegativePositionsAreNormalized(t *testing.T) {
	data := []byte(`{"bodies": [
		{"pos": [-1, 0, 0], "body_dir": {"axis": "X", "is_positive": true}, "shoe_rotated": false, "joint_pos": 0},
		{"pos": [0, 0, 0], "body_dir": {"axis": "X", "is_positive": false}, "shoe_rotated": false, "joint_pos": 0}
	]}`)
	w, err := voxeljson.DecodeWorld(world.KindMap, data)
	require.NoError(t, err)
	require.Equal(t, geom.NewSizes(2, 1, 1), w.Sizes())
	require.NoError(t, world.Check(w))
}

func TestDecodeWorldUnknownFieldRejected(t *testing.T) {
	data := []byte(`{"bodies": [
		{"pos": [0,0,0], "body_dir": {"axis": "X", "is_positive": true}, "shoe_rotated": false, "joint_pos": 0, "extra": 1}
	]}`)
	_, err := voxeljson.DecodeWorld(world.KindMap, data)
	require.ErrorIs(t, err, voxeljson.ErrUnknownField)
}

func TestDecodeWorldInvalidJointPos(t *testing.T) {
	data := []byte(`{"bodies": [
		{"pos": [0,0,0], "body_dir": {"axis": "X", "is_positive": true}, "shoe_rotated": false, "joint_pos": 45}
	]}`)
	_, err := voxeljson.DecodeWorld(world.KindMap, data)
	require.Error(t, err)
}

func TestJointPosMarshalsAsBareInteger(t *testing.T) {
	w, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)

	data, err := voxeljson.EncodeWorld(w, true)
	require.NoError(t, err)
	require.Contains(t, string(data), `"joint_pos":90`)
}

func TestEncodeDecodeSequence(t *testing.T) {
	w1, err := world.FromVoxels(world.KindMap, twoVoxels())
	require.NoError(t, err)
	w2 := w1.Clone()

	data, err := voxeljson.EncodeSequence([]world.VoxelWorld{w1, w2}, true)
	require.NoError(t, err)

	seq, err := voxeljson.DecodeSequence(world.KindMap, data)
	require.NoError(t, err)
	require.Len(t, seq, 2)
	require.True(t, world.Equal(seq[0], w1))
	require.True(t, world.Equal(seq[1], w2))
}

func TestDecodeWorldEmptyIsError(t *testing.T) {
	_, err := voxeljson.DecodeWorld(world.KindMap, []byte(`{"bodies": []}`))
	require.ErrorIs(t, err, world.ErrEmptyWorld)
}
