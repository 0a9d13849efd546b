package geom

// Pos is a signed integer position in the voxel grid. It is used as-is as a
// Go map key throughout world and connectivity, so it must stay comparable.
type Pos struct {
	X, Y, Z int64
}

// NewPos builds a Pos from three coordinates.
func NewPos(x, y, z int64) Pos { return Pos{X: x, Y: y, Z: z} }

// Add returns p + q componentwise.
func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q componentwise.
func (p Pos) Sub(q Pos) Pos {
	return Pos{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Coord returns the coordinate on the given axis.
func (p Pos) Coord(a Axis) int64 {
	switch a {
	case X:
		return p.X
	case Y:
		return p.Y
	default:
		return p.Z
	}
}

// WithCoord returns a copy of p with the coordinate on axis a replaced.
func (p Pos) WithCoord(a Axis, v int64) Pos {
	q := p
	switch a {
	case X:
		q.X = v
	case Y:
		q.Y = v
	default:
		q.Z = v
	}
	return q
}

// Sizes is a size triple (one extent per axis), used for both bounding-box
// sizes and matrix-world strides.
type Sizes struct {
	X, Y, Z int64
}

// NewSizes builds a Sizes triple.
func NewSizes(x, y, z int64) Sizes { return Sizes{X: x, Y: y, Z: z} }

// Coord returns the size on the given axis.
func (s Sizes) Coord(a Axis) int64 {
	switch a {
	case X:
		return s.X
	case Y:
		return s.Y
	default:
		return s.Z
	}
}

// Volume returns the product of the three extents.
func (s Sizes) Volume() int64 { return s.X * s.Y * s.Z }

// IsNormalized reports whether s.X >= s.Y >= s.Z, the canonical ordering
// used to deduplicate rotation-equivalent worlds.
func (s Sizes) IsNormalized() bool { return s.X >= s.Y && s.Y >= s.Z }

// SizeRanges describes the inclusive-exclusive bounding box [Min, Max) of a
// world's occupied positions.
type SizeRanges struct {
	Min, Max Pos
}

// Sizes returns the extents of the bounding box.
func (r SizeRanges) Sizes() Sizes {
	return Sizes{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y, r.Max.Z - r.Min.Z}
}

// Contains reports whether p lies within [Min, Max).
func (r SizeRanges) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y &&
		p.Z >= r.Min.Z && p.Z < r.Max.Z
}
