package voxel

import "github.com/paradise-fi/rofivoxel/geom"

// Joint names one of a module's three actuated degrees of freedom.
type Joint uint8

const (
	// Alpha pivots at the representative voxel.
	Alpha Joint = iota
	// Beta pivots at the partner voxel.
	Beta
	// Gamma twists the whole module about its long (body) axis.
	Gamma
)

func (j Joint) String() string {
	switch j {
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	default:
		return "Gamma"
	}
}

// Module is a pair of adjacent voxels sharing a body-direction axis: the
// representative (whose OtherBodyDir points with positive sign) at RPos,
// and its partner at PPos = OtherBodyPos(RPos, Repr).
type Module struct {
	RPos geom.Pos
	Repr Voxel
	PPos geom.Pos
	Part Voxel
}

// NewModule builds a Module, deriving PPos from RPos and Repr.
func NewModule(rPos geom.Pos, repr Voxel, part Voxel) Module {
	return Module{RPos: rPos, Repr: repr, PPos: OtherBodyPos(rPos, repr), Part: part}
}

// IsJointAdmissible reports whether (joint, angle) is a legal move on this
// module: Gamma is always admissible; Alpha/Beta are admissible iff the
// targeted shoe's JointPos can legally rotate by angle.
func (m Module) IsJointAdmissible(joint Joint, angle geom.RotationAngle) bool {
	switch joint {
	case Gamma:
		return true
	case Alpha:
		_, ok := m.Repr.JointPos.Rotated(angle)
		return ok
	default: // Beta
		_, ok := m.Part.JointPos.Rotated(angle)
		return ok
	}
}
