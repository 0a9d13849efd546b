package voxel_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	v := voxel.New(geom.Direction{Axis: geom.Y, IsPositive: false}, true, voxel.JointPlus90)
	got := voxel.Unpack(v.Pack())
	require.Equal(t, v, got)
}

func TestJointPositionRotated(t *testing.T) {
	got, ok := voxel.JointZero.Rotated(geom.Plus90)
	require.True(t, ok)
	require.Equal(t, voxel.JointPlus90, got)

	got, ok = voxel.JointZero.Rotated(geom.Minus90)
	require.True(t, ok)
	require.Equal(t, voxel.JointMinus90, got)

	got, ok = voxel.JointPlus90.Rotated(geom.Minus90)
	require.True(t, ok)
	require.Equal(t, voxel.JointZero, got)

	_, ok = voxel.JointPlus90.Rotated(geom.Plus90)
	require.False(t, ok)

	_, ok = voxel.JointMinus90.Rotated(geom.Minus90)
	require.False(t, ok)
}

func TestGetConnectorsDirsCount(t *testing.T) {
	v := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	dirs := v.GetConnectorsDirs()
	require.Len(t, dirs, 3)
	// Z-connector, for JointZero, is exactly the opposite of OtherBodyDir.
	require.Equal(t, v.OtherBodyDir.Opposite(), dirs[2])
}

func TestRotateTwiceByOppositeAnglesIsIdentityOnSameAxis(t *testing.T) {
	v := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, true, voxel.JointPlus90)
	r := geom.NewRotation(geom.X, geom.Plus90)
	got := v.Rotate(r).Rotate(r.Inverse())
	require.Equal(t, v, got)
}

func TestRotateChangesOtherBodyDirWhenAxisDiffers(t *testing.T) {
	v := voxel.New(geom.Direction{Axis: geom.Y, IsPositive: true}, false, voxel.JointZero)
	r := geom.NewRotation(geom.X, geom.Plus90)
	got := v.Rotate(r)
	require.NotEqual(t, v.OtherBodyDir.Axis, got.OtherBodyDir.Axis)
}

func TestModuleJointAdmissible(t *testing.T) {
	repr := voxel.New(geom.Direction{Axis: geom.X, IsPositive: true}, false, voxel.JointZero)
	part := voxel.New(geom.Direction{Axis: geom.X, IsPositive: false}, false, voxel.JointZero)
	m := voxel.NewModule(geom.NewPos(0, 0, 0), repr, part)

	require.True(t, m.IsJointAdmissible(voxel.Gamma, geom.Plus90))
	require.True(t, m.IsJointAdmissible(voxel.Alpha, geom.Plus90))
	require.True(t, m.IsJointAdmissible(voxel.Beta, geom.Minus90))
}
