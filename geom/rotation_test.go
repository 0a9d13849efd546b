package geom_test

import (
	"testing"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/stretchr/testify/require"
)

func TestRotateInverse(t *testing.T) {
	p := geom.NewPos(1, 2, 3)
	for _, axis := range []geom.Axis{geom.X, geom.Y, geom.Z} {
		for _, angle := range []geom.RotationAngle{geom.Plus90, geom.Minus90} {
			r := geom.NewRotation(axis, angle)
			got := r.Inverse().Rotate(r.Rotate(p))
			require.Equal(t, p, got, "axis=%v angle=%+v", axis, angle)
		}
	}
}

func TestRotateSizesMatchesRotate(t *testing.T) {
	// Rotating a "sizes" triple must agree with rotating the corresponding
	// all-positive position vector, up to sign.
	sizes := geom.NewSizes(1, 2, 3)
	r := geom.NewRotation(geom.X, geom.Plus90)
	got := r.RotateSizes(sizes)
	require.Equal(t, geom.NewSizes(1, 3, 2), got)
}

func TestNewFromTo(t *testing.T) {
	d1 := geom.Direction{Axis: geom.X, IsPositive: true}
	d2 := geom.Direction{Axis: geom.Y, IsPositive: true}
	rot, ok := geom.NewFromTo(d1, d2)
	require.True(t, ok)
	require.Equal(t, d2, rot.RotateDir(d1))
}

func TestNewFromToSameAxisUndefined(t *testing.T) {
	d1 := geom.Direction{Axis: geom.X, IsPositive: true}
	d2 := geom.Direction{Axis: geom.X, IsPositive: false}
	_, ok := geom.NewFromTo(d1, d2)
	require.False(t, ok)
}

func TestAxisCycle(t *testing.T) {
	require.Equal(t, geom.Y, geom.X.Next())
	require.Equal(t, geom.Z, geom.Y.Next())
	require.Equal(t, geom.X, geom.Z.Next())
	require.Equal(t, geom.Z, geom.X.Prev())
}

func TestDirectionUpdatePosition(t *testing.T) {
	d := geom.Direction{Axis: geom.Z, IsPositive: false}
	got := d.UpdatePosition(geom.NewPos(0, 0, 0))
	require.Equal(t, geom.NewPos(0, 0, -1), got)
}
