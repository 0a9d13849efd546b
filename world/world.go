// Package world implements the VoxelWorld / NormVoxelWorld contracts: a
// polymorphic "set of positioned voxels" with three interchangeable
// representations (Map, Matrix, SortVec), rotation/normalization, and the
// Centered/Rotated/Subworld view overlays. Grounded on
// rust-rofi_voxel/src/voxel_world/{mod,world_rotation,centered,rotated,subworld}.rs.
package world

import (
	"errors"
	"fmt"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// Sentinel errors for world validation, mirroring the per-package ErrXxx
// convention (core/types.go).
var (
	// ErrMissingOtherBody indicates a voxel's partner is absent or does not
	// point back.
	ErrMissingOtherBody = errors.New("world: voxel missing its paired other body")
	// ErrDuplicateVoxels indicates two voxels were placed at the same
	// position — the collision detector's failure mode.
	ErrDuplicateVoxels = errors.New("world: duplicate voxels at the same position")
	// ErrNotMinimalSize indicates the world's declared sizes are larger
	// than the minimal bounding box of its occupied positions.
	ErrNotMinimalSize = errors.New("world: bounding box is not minimal")
	// ErrVoxelOutOfBounds indicates a voxel was placed outside [0, sizes).
	ErrVoxelOutOfBounds = errors.New("world: voxel position out of bounds")
	// ErrEmptyWorld indicates a builder was given zero voxels.
	ErrEmptyWorld = errors.New("world: world has no voxels")
)

// PosVoxel pairs a position with the voxel occupying it.
type PosVoxel struct {
	Pos   geom.Pos
	Voxel voxel.Voxel
}

// VoxelWorld is the common, read-only contract shared by every
// representation and every view overlay.
type VoxelWorld interface {
	// SizeRanges returns the world's bounding box.
	SizeRanges() geom.SizeRanges
	// AllVoxels returns every occupied (position, voxel) pair. Order is
	// representation-defined; callers must not depend on it.
	AllVoxels() []PosVoxel
	// GetVoxel returns the voxel at pos, if any.
	GetVoxel(pos geom.Pos) (voxel.Voxel, bool)
}

// NormVoxelWorld is a VoxelWorld whose bounding box starts at the origin,
// plus mutation and a Sizes accessor.
type NormVoxelWorld interface {
	VoxelWorld
	// Sizes returns the extents of [0, sizes).
	Sizes() geom.Sizes
	// SetVoxel places v at pos, which must be in bounds.
	SetVoxel(pos geom.Pos, v voxel.Voxel) error
	// Clone returns an independent copy of the same concrete type.
	Clone() NormVoxelWorld
}

// Builders implemented per-representation in this file; concrete
// representations (map_world.go, matrix_world.go, sortvec_world.go) each
// provide a `NewXxx(sizes geom.Sizes) NormVoxelWorld` constructor for an
// empty world, used by the generic builders below.

// Kind is the factory tag that newEmptyOfKind uses to build a fresh, empty
// world. KindMap, KindMatrix, KindSortVec select the concrete type;
// PartialFromSizesAndVoxels etc. default to Map, the safest
// representation.
type Kind int

const (
	KindMap Kind = iota
	KindMatrix
	KindSortVec
)

func newEmptyOfKind(kind Kind, sizes geom.Sizes) NormVoxelWorld {
	switch kind {
	case KindMatrix:
		return NewMatrixWorld(sizes)
	case KindSortVec:
		return NewSortVecWorld(sizes)
	default:
		return NewMapWorld(sizes)
	}
}

// PartialFromSizesAndVoxels places voxels into a world of the given sizes
// without validating the result — the result may be an invalid world. Used
// internally by FromSizesAndVoxels (which validates afterwards) and by
// RotatedWorld.CombineWith.
func PartialFromSizesAndVoxels(kind Kind, sizes geom.Sizes, voxels []PosVoxel) (NormVoxelWorld, error) {
	w := newEmptyOfKind(kind, sizes)
	ranges := geom.SizeRanges{Min: geom.Pos{}, Max: geom.Pos{X: sizes.X, Y: sizes.Y, Z: sizes.Z}}
	seen := make(map[geom.Pos]struct{}, len(voxels))
	for _, pv := range voxels {
		if !ranges.Contains(pv.Pos) {
			return nil, fmt.Errorf("%w: pos %v sizes %v", ErrVoxelOutOfBounds, pv.Pos, sizes)
		}
		if _, dup := seen[pv.Pos]; dup {
			return nil, fmt.Errorf("%w: pos %v", ErrDuplicateVoxels, pv.Pos)
		}
		seen[pv.Pos] = struct{}{}
		if err := w.SetVoxel(pv.Pos, pv.Voxel); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// FromSizesAndVoxels places voxels into a world of the given sizes and
// validates the result (every voxel's partner exists and points back, and
// the bounding box is minimal).
func FromSizesAndVoxels(kind Kind, sizes geom.Sizes, voxels []PosVoxel) (NormVoxelWorld, error) {
	w, err := PartialFromSizesAndVoxels(kind, sizes, voxels)
	if err != nil {
		return nil, err
	}
	if err := Check(w); err != nil {
		return nil, err
	}
	return w, nil
}

// FromVoxels computes the minimal bounding box of voxels, shifts every
// position so the box starts at the origin, and delegates to
// FromSizesAndVoxels.
func FromVoxels(kind Kind, voxels []PosVoxel) (NormVoxelWorld, error) {
	if len(voxels) == 0 {
		return nil, ErrEmptyWorld
	}
	ranges := computeMinimalSizeRanges(voxels)
	sizes := ranges.Sizes()
	shifted := make([]PosVoxel, len(voxels))
	for i, pv := range voxels {
		shifted[i] = PosVoxel{Pos: pv.Pos.Sub(ranges.Min), Voxel: pv.Voxel}
	}
	return FromSizesAndVoxels(kind, sizes, shifted)
}

// computeMinimalSizeRanges returns the smallest bounding box containing
// every position in voxels.
func computeMinimalSizeRanges(voxels []PosVoxel) geom.SizeRanges {
	min := voxels[0].Pos
	max := voxels[0].Pos
	for _, pv := range voxels[1:] {
		p := pv.Pos
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return geom.SizeRanges{Min: min, Max: geom.Pos{X: max.X + 1, Y: max.Y + 1, Z: max.Z + 1}}
}

// IsMinimalSize reports whether w's bounding box equals the minimal hull of
// its own occupied positions.
func IsMinimalSize(w VoxelWorld) bool {
	all := w.AllVoxels()
	if len(all) == 0 {
		return true
	}
	minimal := computeMinimalSizeRanges(all)
	current := w.SizeRanges()
	return minimal.Min == current.Min && minimal.Max == current.Max
}

// Check validates a world: positive sizes, minimal bounding box, and
// every voxel's partner exists and points back.
func Check(w NormVoxelWorld) error {
	sizes := w.Sizes()
	if sizes.X <= 0 || sizes.Y <= 0 || sizes.Z <= 0 {
		return fmt.Errorf("%w: sizes %v", ErrVoxelOutOfBounds, sizes)
	}
	if !IsMinimalSize(w) {
		return fmt.Errorf("%w: sizes %v", ErrNotMinimalSize, sizes)
	}
	for _, pv := range w.AllVoxels() {
		neighbourPos := voxel.OtherBodyPos(pv.Pos, pv.Voxel)
		neighbour, ok := w.GetVoxel(neighbourPos)
		if !ok {
			return fmt.Errorf("%w: pos %v", ErrMissingOtherBody, pv.Pos)
		}
		if voxel.OtherBodyPos(neighbourPos, neighbour) != pv.Pos {
			return fmt.Errorf("%w: pos %v", ErrMissingOtherBody, pv.Pos)
		}
	}
	return nil
}

// Equal reports whether two worlds have identical sizes and voxel content,
// regardless of representation.
func Equal(a, b VoxelWorld) bool {
	av, bv := a.AllVoxels(), b.AllVoxels()
	if len(av) != len(bv) {
		return false
	}
	bm := make(map[geom.Pos]voxel.Voxel, len(bv))
	for _, pv := range bv {
		bm[pv.Pos] = pv.Voxel
	}
	for _, pv := range av {
		other, ok := bm[pv.Pos]
		if !ok || other != pv.Voxel {
			return false
		}
	}
	return true
}
