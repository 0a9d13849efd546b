// Package geom implements the geometric atoms shared by the rest of the
// planner: axes, signed directions, quarter-turn rotations and integer
// position vectors. Everything here is pure, total (except Rotation's
// NewFromTo) and allocation-free — these are value types meant to be passed
// and compared by value, the same way the core package treats its small
// identifier types.
package geom

import "fmt"

// Axis names one of the three coordinate axes of the voxel grid.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

// AsIndex returns the axis as a 0/1/2 array index.
func (a Axis) AsIndex() int { return int(a) }

// Next returns the cyclically-next axis: X->Y->Z->X.
func (a Axis) Next() Axis { return (a + 1) % 3 }

// Prev returns the cyclically-previous axis: X->Z->Y->X.
func (a Axis) Prev() Axis { return (a + 2) % 3 }

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}
