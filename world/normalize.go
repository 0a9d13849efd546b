package world

import (
	"github.com/paradise-fi/rofivoxel/voxel"
)

// RotateVoxel rotates a single voxel as part of rotating the whole world it
// belongs to: flips ShoeRotated according to the rotation's axis-swap
// parity and recomputes JointPos so the rotated Z-connector still encodes
// the same physical connector. Ported from WorldRotation::rotate_body.
func (r WorldRotation) RotateVoxel(v voxel.Voxel) voxel.Voxel {
	otherBodyDir := r.RotateDirection(v.OtherBodyDir)
	shoeRotated := r.swapsAxesOrder() != v.ShoeRotated

	jointDir := v.ZConnDir()
	var jointPos voxel.JointPosition
	if r.RotateDirection(jointDir).IsPositive == jointDir.IsPositive {
		jointPos = v.JointPos
	} else {
		jointPos = v.JointPos.Opposite()
	}
	return voxel.New(otherBodyDir, shoeRotated, jointPos)
}

// RotateWorld rebuilds w with every voxel and position rotated by r,
// producing a new world of the rotated sizes. The result is guaranteed
// valid whenever w was, since rotation is a bijection on positions and
// preserves the pairing/connector invariants voxel by voxel.
func (r WorldRotation) RotateWorld(kind Kind, w NormVoxelWorld) (NormVoxelWorld, error) {
	origSizes := w.Sizes()
	newSizes := r.RotateSizes(origSizes)
	all := w.AllVoxels()
	rotated := make([]PosVoxel, len(all))
	for i, pv := range all {
		rotated[i] = PosVoxel{
			Pos:   r.RotatePos(pv.Pos, origSizes),
			Voxel: r.RotateVoxel(pv.Voxel),
		}
	}
	return FromSizesAndVoxels(kind, newSizes, rotated)
}

// NormalizedEqWorlds returns every normalized world obtainable from w by
// applying a WorldRotation whose rotated sizes satisfy the x>=y>=z
// ordering. All 24 WorldRotation values are proper rotations (by
// construction of axesRotateTo, every one of them has matching
// permutation/negation parity — see WorldRotation doc), so every one of
// them is a candidate; only the size-ordering filters them. The set is
// finite and non-empty (w's own sizes, possibly after applying the
// identity rotation, always qualify once permuted into order) and may
// contain syntactically distinct worlds for the same physical shape, by
// design: every member is inserted into the search's parent map so any
// later encounter of an equivalent configuration is recognized in O(1).
func NormalizedEqWorlds(kind Kind, w NormVoxelWorld) ([]NormVoxelWorld, error) {
	var out []NormVoxelWorld
	for _, r := range AllWorldRotations() {
		sizes := r.RotateSizes(w.Sizes())
		if !sizes.IsNormalized() {
			continue
		}
		rotated, err := r.RotateWorld(kind, w)
		if err != nil {
			return nil, err
		}
		out = append(out, rotated)
	}
	return out, nil
}
