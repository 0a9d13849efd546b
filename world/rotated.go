package world

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// RotateVoxelStandalone is the free-function counterpart of
// WorldRotation.RotateVoxel used by RotatedWorld, grounded on
// rust-rofi_voxel/src/voxel_world/rotated.rs's standalone rotate_body /
// rotate_voxel (duplicated there from VoxelBody::rotated for use outside
// the voxel type, over a geom.Rotation rather than a WorldRotation).
func RotateVoxelStandalone(v voxel.Voxel, rot geom.Rotation) voxel.Voxel {
	return v.Rotate(rot)
}

// RotatedWorld applies a single quarter-turn geom.Rotation to a
// CenteredWorld view: positions rotate by rot, voxels rotate by rot too so
// their connectors remain physically consistent.
type RotatedWorld struct {
	rotation geom.Rotation
	world    *CenteredWorld
}

// NewRotatedWorld builds a RotatedWorld borrowing a CenteredWorld view.
func NewRotatedWorld(w *CenteredWorld, rot geom.Rotation) *RotatedWorld {
	return &RotatedWorld{rotation: rot, world: w}
}

func (r *RotatedWorld) getRelPos(rotPos geom.Pos) geom.Pos {
	return r.rotation.Inverse().Rotate(rotPos)
}

func (r *RotatedWorld) getRotPos(relPos geom.Pos) geom.Pos {
	return r.rotation.Rotate(relPos)
}

// SizeRanges returns the rotated bounding box.
func (r *RotatedWorld) SizeRanges() geom.SizeRanges {
	under := r.world.SizeRanges()
	a := r.rotation.Rotate(under.Min)
	b := r.rotation.Rotate(geom.Pos{X: under.Max.X - 1, Y: under.Max.Y - 1, Z: under.Max.Z - 1})
	return boundingBoxOf(a, b)
}

func boundingBoxOf(a, b geom.Pos) geom.SizeRanges {
	min := geom.Pos{X: minI(a.X, b.X), Y: minI(a.Y, b.Y), Z: minI(a.Z, b.Z)}
	max := geom.Pos{X: maxI(a.X, b.X) + 1, Y: maxI(a.Y, b.Y) + 1, Z: maxI(a.Z, b.Z) + 1}
	return geom.SizeRanges{Min: min, Max: max}
}

func minI(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// GetVoxel looks up a voxel by a rotated-frame position.
func (r *RotatedWorld) GetVoxel(rotPos geom.Pos) (voxel.Voxel, bool) {
	v, ok := r.world.GetVoxel(r.getRelPos(rotPos))
	if !ok {
		return voxel.Voxel{}, false
	}
	return RotateVoxelStandalone(v, r.rotation), true
}

// AllVoxels returns every occupied voxel, rotated into this view's frame.
func (r *RotatedWorld) AllVoxels() []PosVoxel {
	under := r.world.AllVoxels()
	out := make([]PosVoxel, len(under))
	for i, pv := range under {
		out[i] = PosVoxel{
			Pos:   r.getRotPos(pv.Pos),
			Voxel: RotateVoxelStandalone(pv.Voxel, r.rotation),
		}
	}
	return out
}

// CombineWith unions this rotated view with another centered view into a
// normalized world, returning the world and the position of the rotation
// center in that world's coordinates (so callers can translate further
// positions). This
// is *the* collision detector: if the two views place voxels
// at the same combined position, CombineWith fails with ErrDuplicateVoxels
// rather than silently overwriting.
func (r *RotatedWorld) CombineWith(kind Kind, other *CenteredWorld) (NormVoxelWorld, geom.Pos, error) {
	selfRanges := r.SizeRanges()
	otherRanges := other.SizeRanges()

	contains0 := func(rng geom.SizeRanges, axis func(geom.Pos) int64) bool {
		return axis(rng.Min) <= 0 && 0 < axis(rng.Max)
	}
	axes := []func(geom.Pos) int64{
		func(p geom.Pos) int64 { return p.X },
		func(p geom.Pos) int64 { return p.Y },
		func(p geom.Pos) int64 { return p.Z },
	}
	for _, axis := range axes {
		if !contains0(selfRanges, axis) && !contains0(otherRanges, axis) {
			return nil, geom.Pos{}, fmt.Errorf("world: neither side of combine_with contains the rotation center")
		}
	}

	minOf := func(a, b int64) int64 { return minI(a, b) }
	maxOf := func(a, b int64) int64 { return maxI(a, b) }
	combinedMin := geom.Pos{
		X: minOf(selfRanges.Min.X, otherRanges.Min.X),
		Y: minOf(selfRanges.Min.Y, otherRanges.Min.Y),
		Z: minOf(selfRanges.Min.Z, otherRanges.Min.Z),
	}
	combinedMax := geom.Pos{
		X: maxOf(selfRanges.Max.X, otherRanges.Max.X),
		Y: maxOf(selfRanges.Max.Y, otherRanges.Max.Y),
		Z: maxOf(selfRanges.Max.Z, otherRanges.Max.Z),
	}
	sizes := geom.Sizes{X: combinedMax.X - combinedMin.X, Y: combinedMax.Y - combinedMin.Y, Z: combinedMax.Z - combinedMin.Z}
	center := geom.Pos{X: -combinedMin.X, Y: -combinedMin.Y, Z: -combinedMin.Z}

	toAbs := func(rel geom.Pos) geom.Pos { return rel.Add(center) }

	var voxels []PosVoxel
	for _, pv := range r.AllVoxels() {
		voxels = append(voxels, PosVoxel{Pos: toAbs(pv.Pos), Voxel: pv.Voxel})
	}
	for _, pv := range other.AllVoxels() {
		voxels = append(voxels, PosVoxel{Pos: toAbs(pv.Pos), Voxel: pv.Voxel})
	}

	combined, err := PartialFromSizesAndVoxels(kind, sizes, voxels)
	if err != nil {
		return nil, geom.Pos{}, err
	}
	return combined, center, nil
}
