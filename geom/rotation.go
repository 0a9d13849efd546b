package geom

// RotationAngle is a signed quarter turn: +90 or -90 degrees.
type RotationAngle struct {
	IsPositive bool
}

// Plus90 and Minus90 are the two RotationAngle values.
var (
	Plus90  = RotationAngle{true}
	Minus90 = RotationAngle{false}
)

// Opposite returns the other angle; involutive.
func (a RotationAngle) Opposite() RotationAngle { return RotationAngle{!a.IsPositive} }

// Rotation models one quarter-turn about an axis-aligned line: six total
// values (3 axes × 2 angles).
type Rotation struct {
	Axis  Axis
	Angle RotationAngle
}

// NewRotation builds a Rotation from an axis and an angle.
func NewRotation(axis Axis, angle RotationAngle) Rotation {
	return Rotation{Axis: axis, Angle: angle}
}

// NewFromDir builds the rotation about `dir`'s axis, flipping the angle
// when dir points in the negative direction — so that "rotate by angle in
// the dir sense" always means the same physical turn regardless of which
// of the two directions on that axis was named.
func NewFromDir(dir Direction, angle RotationAngle) Rotation {
	a := angle
	if !dir.IsPositive {
		a = a.Opposite()
	}
	return Rotation{Axis: dir.Axis, Angle: a}
}

// NewFromTo returns the unique quarter-turn rotation that takes direction
// d1 to direction d2. Undefined (ok=false) when d1.Axis == d2.Axis: no
// single quarter turn maps a direction to itself or its opposite along the
// same axis — callers must ensure the axes differ.
func NewFromTo(d1, d2 Direction) (rot Rotation, ok bool) {
	if d1.Axis == d2.Axis {
		return Rotation{}, false
	}
	// Try both angles about the axis not spanned by d1/d2 and see which
	// maps d1 onto d2.
	thirdAxis := thirdAxisOf(d1.Axis, d2.Axis)
	for _, angle := range []RotationAngle{Plus90, Minus90} {
		r := Rotation{Axis: thirdAxis, Angle: angle}
		if r.RotateDir(d1) == d2 {
			return r, true
		}
	}
	return Rotation{}, false
}

func thirdAxisOf(a, b Axis) Axis {
	for _, c := range []Axis{X, Y, Z} {
		if c != a && c != b {
			return c
		}
	}
	panic("geom: thirdAxisOf called with a == b")
}

// Inverse returns the rotation that undoes r: same axis, opposite angle.
func (r Rotation) Inverse() Rotation {
	return Rotation{Axis: r.Axis, Angle: r.Angle.Opposite()}
}

// Rotate applies the rotation's fixed 3x3 permutation-with-sign matrix to a
// position, grounded bit-for-bit on the six hand-written match arms of the
// original rotation.rs:
//
//	(X,+90): [x,y,z] -> [x,-z,y]
//	(X,-90): [x,y,z] -> [x,z,-y]
//	(Y,+90): [x,y,z] -> [z,y,-x]
//	(Y,-90): [x,y,z] -> [-z,y,x]
//	(Z,+90): [x,y,z] -> [-y,x,z]
//	(Z,-90): [x,y,z] -> [y,-x,z]
func (r Rotation) Rotate(p Pos) Pos {
	x, y, z := p.X, p.Y, p.Z
	switch r.Axis {
	case X:
		if r.Angle.IsPositive {
			return Pos{x, -z, y}
		}
		return Pos{x, z, -y}
	case Y:
		if r.Angle.IsPositive {
			return Pos{z, y, -x}
		}
		return Pos{-z, y, x}
	default: // Z
		if r.Angle.IsPositive {
			return Pos{-y, x, z}
		}
		return Pos{y, -x, z}
	}
}

// RotateSizes permutes a size triple the way Rotate permutes a position,
// ignoring sign (extents are never negative):
//
//	X: [x,y,z] -> [x,z,y]
//	Y: [x,y,z] -> [z,y,x]
//	Z: [x,y,z] -> [y,x,z]
func (r Rotation) RotateSizes(s Sizes) Sizes {
	switch r.Axis {
	case X:
		return Sizes{s.X, s.Z, s.Y}
	case Y:
		return Sizes{s.Z, s.Y, s.X}
	default:
		return Sizes{s.Y, s.X, s.Z}
	}
}

// RotateDir rotates a direction: same machinery as Rotate, applied to the
// direction's unit vector and read back off as axis+sign.
func (r Rotation) RotateDir(d Direction) Direction {
	unit := Pos{}
	switch d.Axis {
	case X:
		unit.X = d.Unit()
	case Y:
		unit.Y = d.Unit()
	case Z:
		unit.Z = d.Unit()
	}
	rotated := r.Rotate(unit)
	switch {
	case rotated.X != 0:
		return Direction{X, rotated.X > 0}
	case rotated.Y != 0:
		return Direction{Y, rotated.Y > 0}
	default:
		return Direction{Z, rotated.Z > 0}
	}
}
