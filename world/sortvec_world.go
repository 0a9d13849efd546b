package world

import (
	"fmt"
	"sort"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// SortVecWorld is the sorted-vector representation: a slice of (Pos, Voxel)
// pairs kept sorted by position, looked up by binary search; each voxel is
// inserted at its sorted position as it is added. Favors
// compact memory over Matrix at the cost of O(log n) lookups and O(n)
// insertion.
type SortVecWorld struct {
	sizes geom.Sizes
	vec   []PosVoxel
}

// NewSortVecWorld returns an empty SortVecWorld of the given sizes.
func NewSortVecWorld(sizes geom.Sizes) *SortVecWorld {
	return &SortVecWorld{sizes: sizes}
}

func lessPos(a, b geom.Pos) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func (w *SortVecWorld) search(pos geom.Pos) (int, bool) {
	i := sort.Search(len(w.vec), func(i int) bool { return !lessPos(w.vec[i].Pos, pos) })
	if i < len(w.vec) && w.vec[i].Pos == pos {
		return i, true
	}
	return i, false
}

func (w *SortVecWorld) SizeRanges() geom.SizeRanges {
	return geom.SizeRanges{Min: geom.Pos{}, Max: geom.Pos{X: w.sizes.X, Y: w.sizes.Y, Z: w.sizes.Z}}
}

func (w *SortVecWorld) Sizes() geom.Sizes { return w.sizes }

func (w *SortVecWorld) AllVoxels() []PosVoxel {
	out := make([]PosVoxel, len(w.vec))
	copy(out, w.vec)
	return out
}

func (w *SortVecWorld) GetVoxel(pos geom.Pos) (voxel.Voxel, bool) {
	i, ok := w.search(pos)
	if !ok {
		return voxel.Voxel{}, false
	}
	return w.vec[i].Voxel, true
}

func (w *SortVecWorld) SetVoxel(pos geom.Pos, v voxel.Voxel) error {
	if !w.SizeRanges().Contains(pos) {
		return fmt.Errorf("%w: pos %v sizes %v", ErrVoxelOutOfBounds, pos, w.sizes)
	}
	i, ok := w.search(pos)
	if ok {
		w.vec[i].Voxel = v
		return nil
	}
	w.vec = append(w.vec, PosVoxel{})
	copy(w.vec[i+1:], w.vec[i:])
	w.vec[i] = PosVoxel{Pos: pos, Voxel: v}
	return nil
}

func (w *SortVecWorld) Clone() NormVoxelWorld {
	out := NewSortVecWorld(w.sizes)
	out.vec = append([]PosVoxel(nil), w.vec...)
	return out
}
