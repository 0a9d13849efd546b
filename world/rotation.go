package world

import (
	"github.com/paradise-fi/rofivoxel/geom"
)

// WorldRotation is one of the 24 proper rotations of an axis-aligned cube:
// pick which axis X rotates to (3 choices), and independently negate each
// axis (2^3 choices); axesRotateTo always derives Y/Z's destinations with
// the permutation parity that matches the negation parity, so every one of
// the 3*2^3 = 24 values is orientation-preserving (no reflections are
// representable). Grounded on
// rust-rofi_voxel/src/voxel_world/world_rotation.rs.
type WorldRotation struct {
	XRotatesTo geom.Axis
	NegAxis    [3]bool
}

// AllWorldRotations enumerates all 24 WorldRotation values: 3 choices for
// which axis X rotates to, times 2^3 independent axis negations.
func AllWorldRotations() []WorldRotation {
	out := make([]WorldRotation, 0, 24)
	for _, xTo := range []geom.Axis{geom.X, geom.Y, geom.Z} {
		for nx := 0; nx < 2; nx++ {
			for ny := 0; ny < 2; ny++ {
				for nz := 0; nz < 2; nz++ {
					out = append(out, WorldRotation{
						XRotatesTo: xTo,
						NegAxis:    [3]bool{nx == 1, ny == 1, nz == 1},
					})
				}
			}
		}
	}
	return out
}

// swapsAxesOrder reports whether an odd number of axes are negated.
func (r WorldRotation) swapsAxesOrder() bool {
	count := 0
	for _, neg := range r.NegAxis {
		if neg {
			count++
		}
	}
	return count%2 != 0
}

// axesRotateTo returns [x_rotates_to, y_rotates_to, z_rotates_to].
func (r WorldRotation) axesRotateTo() [3]geom.Axis {
	if r.swapsAxesOrder() {
		return [3]geom.Axis{r.XRotatesTo, r.XRotatesTo.Prev(), r.XRotatesTo.Next()}
	}
	return [3]geom.Axis{r.XRotatesTo, r.XRotatesTo.Next(), r.XRotatesTo.Prev()}
}

// rotatedPosIndices inverts axesRotateTo: for each destination axis, which
// source axis lands in it.
func (r WorldRotation) rotatedPosIndices() [3]int {
	to := r.axesRotateTo()
	var result [3]int
	for i, axis := range to {
		result[axis.AsIndex()] = i
	}
	return result
}

// RotateAxis maps an axis through the rotation.
func (r WorldRotation) RotateAxis(axis geom.Axis) geom.Axis {
	return r.axesRotateTo()[axis.AsIndex()]
}

// RotateDirection rotates a direction, flipping sign per NegAxis.
func (r WorldRotation) RotateDirection(d geom.Direction) geom.Direction {
	isPositive := d.IsPositive != r.NegAxis[d.Axis.AsIndex()]
	return geom.Direction{Axis: r.RotateAxis(d.Axis), IsPositive: isPositive}
}

// RotateSizes permutes a size triple per the rotation, ignoring sign.
func (r WorldRotation) RotateSizes(sizes geom.Sizes) geom.Sizes {
	idx := r.rotatedPosIndices()
	arr := [3]int64{sizes.X, sizes.Y, sizes.Z}
	return geom.Sizes{X: arr[idx[0]], Y: arr[idx[1]], Z: arr[idx[2]]}
}

// RotatePos negates pos relative to origSizes per NegAxis then permutes,
// matching world_rotation.rs's rotate_pos.
func (r WorldRotation) RotatePos(pos geom.Pos, origSizes geom.Sizes) geom.Pos {
	p := [3]int64{pos.X, pos.Y, pos.Z}
	s := [3]int64{origSizes.X, origSizes.Y, origSizes.Z}
	var negated [3]int64
	for i := 0; i < 3; i++ {
		if r.NegAxis[i] {
			negated[i] = s[i] - 1 - p[i]
		} else {
			negated[i] = p[i]
		}
	}
	idx := r.rotatedPosIndices()
	return geom.Pos{X: negated[idx[0]], Y: negated[idx[1]], Z: negated[idx[2]]}
}
