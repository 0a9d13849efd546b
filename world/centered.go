package world

import (
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
)

// CenteredWorld translates an underlying world so that `center` becomes the
// origin. Views never own their underlying world; they borrow it for the
// lifetime of one successor-generation step. Grounded on
// rust-rofi_voxel/src/voxel_world/centered.rs.
type CenteredWorld struct {
	center geom.Pos
	world  VoxelWorld
}

// NewCenteredWorld builds a CenteredWorld borrowing world, centered at center.
func NewCenteredWorld(w VoxelWorld, center geom.Pos) *CenteredWorld {
	return &CenteredWorld{center: center, world: w}
}

// Center returns the absolute position this view treats as the origin.
func (c *CenteredWorld) Center() geom.Pos { return c.center }

// GetRelPos converts an absolute position to one relative to Center.
func (c *CenteredWorld) GetRelPos(abs geom.Pos) geom.Pos { return abs.Sub(c.center) }

// GetAbsPos converts a position relative to Center back to absolute.
func (c *CenteredWorld) GetAbsPos(rel geom.Pos) geom.Pos { return rel.Add(c.center) }

// SizeRanges returns the underlying world's bounding box, expressed
// relative to Center.
func (c *CenteredWorld) SizeRanges() geom.SizeRanges {
	under := c.world.SizeRanges()
	return geom.SizeRanges{
		Min: c.GetRelPos(under.Min),
		Max: c.GetRelPos(under.Max),
	}
}

// GetVoxel looks up a voxel by a position relative to Center.
func (c *CenteredWorld) GetVoxel(rel geom.Pos) (voxel.Voxel, bool) {
	return c.world.GetVoxel(c.GetAbsPos(rel))
}

// AllVoxels returns every occupied voxel, with positions relative to Center.
func (c *CenteredWorld) AllVoxels() []PosVoxel {
	under := c.world.AllVoxels()
	out := make([]PosVoxel, len(under))
	for i, pv := range under {
		out[i] = PosVoxel{Pos: c.GetRelPos(pv.Pos), Voxel: pv.Voxel}
	}
	return out
}
