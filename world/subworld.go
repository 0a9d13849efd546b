package world

import (
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// Subworld keeps only the positions of an underlying world that pass a
// predicate; GetVoxel returns false (not a zero-value "present but empty"
// voxel) for excluded positions. Grounded on
// rust-rofi_voxel/src/voxel_world/subworld.rs.
type Subworld struct {
	world     VoxelWorld
	included  map[geom.Pos]struct{}
	sizeRange geom.SizeRanges
}

// NewSubworld filters w's occupied positions by predicate, computing the
// minimal hull of what remains.
func NewSubworld(w VoxelWorld, predicate func(geom.Pos) bool) *Subworld {
	included := make(map[geom.Pos]struct{})
	var kept []PosVoxel
	for _, pv := range w.AllVoxels() {
		if predicate(pv.Pos) {
			included[pv.Pos] = struct{}{}
			kept = append(kept, pv)
		}
	}
	var ranges geom.SizeRanges
	if len(kept) > 0 {
		ranges = computeMinimalSizeRanges(kept)
	}
	return &Subworld{world: w, included: included, sizeRange: ranges}
}

// Complement returns the subworld of positions NOT included in s.
func (s *Subworld) Complement() *Subworld {
	return NewSubworld(s.world, func(p geom.Pos) bool {
		_, ok := s.included[p]
		return !ok
	})
}

func (s *Subworld) SizeRanges() geom.SizeRanges { return s.sizeRange }

func (s *Subworld) GetVoxel(pos geom.Pos) (voxel.Voxel, bool) {
	if _, ok := s.included[pos]; !ok {
		return voxel.Voxel{}, false
	}
	return s.world.GetVoxel(pos)
}

func (s *Subworld) AllVoxels() []PosVoxel {
	out := make([]PosVoxel, 0, len(s.included))
	for _, pv := range s.world.AllVoxels() {
		if _, ok := s.included[pv.Pos]; ok {
			out = append(out, pv)
		}
	}
	return out
}
