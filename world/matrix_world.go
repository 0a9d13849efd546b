package world

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// MatrixWorld is the dense, row-major representation: one optional voxel
// slot per grid cell, addressed by the same stride arithmetic as the
// teacher's matrix package (matrix/dense.go) and the original source's
// Vec3D<T> (atoms/vec_3d.rs). Best for workloads that scan or random-access
// most of the bounding box; wastes space on sparse worlds.
type MatrixWorld struct {
	sizes    geom.Sizes
	occupied []bool
	data     []voxel.Voxel
}

// NewMatrixWorld returns an empty MatrixWorld of the given sizes.
func NewMatrixWorld(sizes geom.Sizes) *MatrixWorld {
	n := int(sizes.Volume())
	if n < 0 {
		n = 0
	}
	return &MatrixWorld{
		sizes:    sizes,
		occupied: make([]bool, n),
		data:     make([]voxel.Voxel, n),
	}
}

// index computes the flat row-major offset for pos, mirroring Vec3D's
// inner_index fold (value*size + idx, outermost axis first).
func (w *MatrixWorld) index(pos geom.Pos) int {
	return int((pos.X*w.sizes.Y+pos.Y)*w.sizes.Z + pos.Z)
}

func (w *MatrixWorld) SizeRanges() geom.SizeRanges {
	return geom.SizeRanges{Min: geom.Pos{}, Max: geom.Pos{X: w.sizes.X, Y: w.sizes.Y, Z: w.sizes.Z}}
}

func (w *MatrixWorld) Sizes() geom.Sizes { return w.sizes }

func (w *MatrixWorld) AllVoxels() []PosVoxel {
	out := make([]PosVoxel, 0, len(w.data))
	for x := int64(0); x < w.sizes.X; x++ {
		for y := int64(0); y < w.sizes.Y; y++ {
			for z := int64(0); z < w.sizes.Z; z++ {
				pos := geom.Pos{X: x, Y: y, Z: z}
				idx := w.index(pos)
				if w.occupied[idx] {
					out = append(out, PosVoxel{Pos: pos, Voxel: w.data[idx]})
				}
			}
		}
	}
	return out
}

func (w *MatrixWorld) GetVoxel(pos geom.Pos) (voxel.Voxel, bool) {
	if !w.SizeRanges().Contains(pos) {
		return voxel.Voxel{}, false
	}
	idx := w.index(pos)
	if !w.occupied[idx] {
		return voxel.Voxel{}, false
	}
	return w.data[idx], true
}

func (w *MatrixWorld) SetVoxel(pos geom.Pos, v voxel.Voxel) error {
	if !w.SizeRanges().Contains(pos) {
		return fmt.Errorf("%w: pos %v sizes %v", ErrVoxelOutOfBounds, pos, w.sizes)
	}
	idx := w.index(pos)
	w.occupied[idx] = true
	w.data[idx] = v
	return nil
}

func (w *MatrixWorld) Clone() NormVoxelWorld {
	out := NewMatrixWorld(w.sizes)
	copy(out.occupied, w.occupied)
	copy(out.data, w.data)
	return out
}
