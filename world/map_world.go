package world

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// MapWorld is the NormVoxelWorld representation backed by a plain Go map
// from position to voxel, generalizing the adjacency-list idiom
// (core/adjacency_list.go's map-of-maps) down to a single flat map keyed by
// geom.Pos. It is the safest default representation: no pre-allocation,
// O(1) amortized access, linear memory in the number of occupied voxels.
type MapWorld struct {
	sizes  geom.Sizes
	voxels map[geom.Pos]voxel.Voxel
}

// NewMapWorld returns an empty MapWorld of the given sizes.
func NewMapWorld(sizes geom.Sizes) *MapWorld {
	return &MapWorld{sizes: sizes, voxels: make(map[geom.Pos]voxel.Voxel)}
}

func (w *MapWorld) SizeRanges() geom.SizeRanges {
	return geom.SizeRanges{Min: geom.Pos{}, Max: geom.Pos{X: w.sizes.X, Y: w.sizes.Y, Z: w.sizes.Z}}
}

func (w *MapWorld) Sizes() geom.Sizes { return w.sizes }

func (w *MapWorld) AllVoxels() []PosVoxel {
	out := make([]PosVoxel, 0, len(w.voxels))
	for pos, v := range w.voxels {
		out = append(out, PosVoxel{Pos: pos, Voxel: v})
	}
	return out
}

func (w *MapWorld) GetVoxel(pos geom.Pos) (voxel.Voxel, bool) {
	v, ok := w.voxels[pos]
	return v, ok
}

func (w *MapWorld) SetVoxel(pos geom.Pos, v voxel.Voxel) error {
	if !w.SizeRanges().Contains(pos) {
		return fmt.Errorf("%w: pos %v sizes %v", ErrVoxelOutOfBounds, pos, w.sizes)
	}
	w.voxels[pos] = v
	return nil
}

func (w *MapWorld) Clone() NormVoxelWorld {
	out := NewMapWorld(w.sizes)
	for pos, v := range w.voxels {
		out.voxels[pos] = v
	}
	return out
}
