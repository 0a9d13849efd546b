// Package voxel implements the bit-packed Voxel record that describes one
// shoe of a RoFI module, and the two-shoe Module abstraction layered on top.
// The packing and the rotation algebra are grounded bit-for-bit on the
// original rust-rofi_voxel voxel/body.rs implementation.
package voxel

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/geom"
)

// JointPosition is the discrete state of a shoe's joint: the zero position,
// or rotated 90 degrees in one of the two signs.
type JointPosition uint8

const (
	JointZero JointPosition = iota
	JointPlus90
	JointMinus90
)

// Opposite returns the sign-flipped joint position; Zero maps to itself.
func (j JointPosition) Opposite() JointPosition {
	switch j {
	case JointPlus90:
		return JointMinus90
	case JointMinus90:
		return JointPlus90
	default:
		return JointZero
	}
}

// Rotated applies a signed quarter-turn to the joint position. Zero always
// succeeds; a joint already at +90 or -90 can only legally continue back
// towards Zero (opposite sign) — turning further in the same sign has no
// valid joint state, so ok is false.
func (j JointPosition) Rotated(angle geom.RotationAngle) (JointPosition, bool) {
	switch j {
	case JointZero:
		if angle.IsPositive {
			return JointPlus90, true
		}
		return JointMinus90, true
	case JointPlus90:
		if !angle.IsPositive {
			return JointZero, true
		}
		return 0, false
	default: // JointMinus90
		if angle.IsPositive {
			return JointZero, true
		}
		return 0, false
	}
}

func (j JointPosition) String() string {
	switch j {
	case JointPlus90:
		return "+90"
	case JointMinus90:
		return "-90"
	default:
		return "0"
	}
}

// Voxel is one shoe of a module, packed into 6 bits (one byte):
//
//	bits 0-1: other_body_dir.Axis
//	bit  2:   other_body_dir.IsPositive
//	bit  3:   shoe_rotated
//	bits 4-5: joint_pos
//
// Canonical encoding: the representative voxel of a module is the one whose other_body_dir
// points with positive sign, and ShoeRotated/JointPos together pin down the
// connector layout relative to that direction.
type Voxel struct {
	OtherBodyDir geom.Direction
	ShoeRotated  bool
	JointPos     JointPosition
}

// New builds a Voxel from its three logical fields.
func New(otherBodyDir geom.Direction, shoeRotated bool, jointPos JointPosition) Voxel {
	return Voxel{OtherBodyDir: otherBodyDir, ShoeRotated: shoeRotated, JointPos: jointPos}
}

// Pack encodes the voxel into a single byte, per the layout documented on
// the Voxel type.
func (v Voxel) Pack() byte {
	var b byte
	b |= byte(v.OtherBodyDir.Axis) & 0x3
	if v.OtherBodyDir.IsPositive {
		b |= 1 << 2
	}
	if v.ShoeRotated {
		b |= 1 << 3
	}
	b |= (byte(v.JointPos) & 0x3) << 4
	return b
}

// Unpack decodes a byte produced by Pack back into a Voxel.
func Unpack(b byte) Voxel {
	axis := geom.Axis(b & 0x3)
	isPositive := b&(1<<2) != 0
	shoeRotated := b&(1<<3) != 0
	jointPos := JointPosition((b >> 4) & 0x3)
	return Voxel{
		OtherBodyDir: geom.Direction{Axis: axis, IsPositive: isPositive},
		ShoeRotated:  shoeRotated,
		JointPos:     jointPos,
	}
}

// OtherBodyPos returns the grid position of this voxel's partner shoe.
func OtherBodyPos(pos geom.Pos, v Voxel) geom.Pos {
	return v.OtherBodyDir.UpdatePosition(pos)
}

// XConnsAxis returns the axis along which the two X-connectors lie.
func (v Voxel) XConnsAxis() geom.Axis {
	otherBodyAxis := v.OtherBodyDir.Axis
	if v.ShoeRotated {
		return otherBodyAxis.Prev()
	}
	return otherBodyAxis.Next()
}

// ZConnDir returns the direction of the Z-connector.
func (v Voxel) ZConnDir() geom.Direction {
	otherBodyAxis := v.OtherBodyDir.Axis
	var zConnAxis geom.Axis
	if v.ShoeRotated {
		zConnAxis = otherBodyAxis.Next()
	} else {
		zConnAxis = otherBodyAxis.Prev()
	}
	switch v.JointPos {
	case JointZero:
		return v.OtherBodyDir.Opposite()
	case JointPlus90:
		return geom.Direction{Axis: zConnAxis, IsPositive: true}
	default: // JointMinus90
		return geom.Direction{Axis: zConnAxis, IsPositive: false}
	}
}

// GetConnectorsDirs returns the three connector directions: the two
// X-connectors (both signs along XConnsAxis) and the Z-connector.
func (v Voxel) GetConnectorsDirs() [3]geom.Direction {
	axis := v.XConnsAxis()
	return [3]geom.Direction{
		{Axis: axis, IsPositive: true},
		{Axis: axis, IsPositive: false},
		v.ZConnDir(),
	}
}

// Rotate produces the voxel that results from rigidly rotating v by rot:
// flips ShoeRotated, rewrites OtherBodyDir via
// rot.RotateDir, and recomputes JointPos so the *rotated* Z-connector still
// encodes the same physical connector. Ported case-by-case from
// VoxelBody::rotated in the original source; see DESIGN.md.
func (v Voxel) Rotate(rot geom.Rotation) Voxel {
	otherAxis := v.OtherBodyDir.Axis

	switch otherAxis {
	case rot.Axis:
		// Rotating about the module's own body axis: the connector plane
		// spins in place.
		switch {
		case (v.ShoeRotated && rot.Angle.IsPositive) || (!v.ShoeRotated && !rot.Angle.IsPositive):
			return Voxel{OtherBodyDir: v.OtherBodyDir, ShoeRotated: !v.ShoeRotated, JointPos: v.JointPos}
		default:
			return Voxel{OtherBodyDir: v.OtherBodyDir, ShoeRotated: !v.ShoeRotated, JointPos: v.JointPos.Opposite()}
		}

	case rot.Axis.Next():
		sign := v.OtherBodyDir.IsPositive
		if !rot.Angle.IsPositive {
			sign = !sign
		}
		newOtherBodyDir := geom.Direction{Axis: rot.Axis.Prev(), IsPositive: sign}

		var newJointPos JointPosition
		if v.ShoeRotated {
			newJointPos = v.JointPos
		} else if rot.Angle.IsPositive {
			newJointPos = v.JointPos.Opposite()
		} else {
			newJointPos = v.JointPos
		}

		return Voxel{OtherBodyDir: newOtherBodyDir, ShoeRotated: !v.ShoeRotated, JointPos: newJointPos}

	default: // otherAxis == rot.Axis.Prev()
		newOtherBodyDir := geom.Direction{
			Axis:       rot.Axis.Next(),
			IsPositive: v.OtherBodyDir.IsPositive != rot.Angle.IsPositive,
		}

		var newJointPos JointPosition
		if !v.ShoeRotated {
			newJointPos = v.JointPos
		} else if rot.Angle.IsPositive {
			newJointPos = v.JointPos
		} else {
			newJointPos = v.JointPos.Opposite()
		}

		return Voxel{OtherBodyDir: newOtherBodyDir, ShoeRotated: !v.ShoeRotated, JointPos: newJointPos}
	}
}

func (v Voxel) String() string {
	return fmt.Sprintf("Voxel{dir=%v, rotated=%v, joint=%v}", v.OtherBodyDir, v.ShoeRotated, v.JointPos)
}
