// Package move implements the move generator: for a world and a module,
// enumerate admissible cuts and joint-moves, apply the corresponding rigid
// rotation to one side, detect collisions, and yield legal successor
// worlds. Grounded bit-for-bit on rust-rofi_voxel/src/module_move.rs.
package move

import (
	"errors"

	"github.com/paradise-fi/rofivoxel/connectivity"
	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/telemetry"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
)

// ErrMoveNotPossible indicates the targeted joint cannot legally rotate by
// the given angle (illegal joint rotation) — callers should treat this as
// a silent skip, not propagate it as a user-facing error.
var ErrMoveNotPossible = errors.New("move: joint cannot rotate by the given angle")

// Move is a (joint, angle) pair applied to a module.
type Move struct {
	Joint voxel.Joint
	Angle geom.RotationAngle
}

// AllMoves enumerates the six (joint, angle) combinations.
func AllMoves() []Move {
	joints := []voxel.Joint{voxel.Alpha, voxel.Beta, voxel.Gamma}
	angles := []geom.RotationAngle{geom.Plus90, geom.Minus90}
	out := make([]Move, 0, len(joints)*len(angles))
	for _, j := range joints {
		for _, a := range angles {
			out = append(out, Move{Joint: j, Angle: a})
		}
	}
	return out
}

// IsPossible reports whether m can be applied to a module whose
// representative/partner bodies are bodyA/bodyB: Gamma is always
// admissible; Alpha/Beta require the targeted shoe's JointPos to be able
// to legally rotate by Angle.
func (m Move) IsPossible(bodyA, bodyB voxel.Voxel) bool {
	switch m.Joint {
	case voxel.Gamma:
		return true
	case voxel.Alpha:
		_, ok := bodyA.JointPos.Rotated(m.Angle)
		return ok
	default: // Beta
		_, ok := bodyB.JointPos.Rotated(m.Angle)
		return ok
	}
}

func (m Move) rotationCenter(aPos, bPos geom.Pos) geom.Pos {
	if m.Joint == voxel.Beta {
		return bPos
	}
	return aPos
}

// getAlphaRotation picks the 90 degree rotation about XConnsAxis whose
// effect on the partner-ward direction matches angle's sign when the joint
// is at Zero; otherwise it's the unique rotation taking OtherBodyDir to the
// opposite of ZConnDir. Ported from Move::get_alpha_rotation.
func getAlphaRotation(angle geom.RotationAngle, bodyA voxel.Voxel) geom.Rotation {
	switch bodyA.JointPos {
	case voxel.JointZero:
		firstRot := geom.NewRotation(bodyA.XConnsAxis(), geom.Plus90)
		if firstRot.RotateDir(bodyA.OtherBodyDir).IsPositive == angle.IsPositive {
			return firstRot
		}
		return geom.NewRotation(bodyA.XConnsAxis(), geom.Minus90)
	default: // Plus90 or Minus90
		rot, _ := geom.NewFromTo(bodyA.OtherBodyDir, bodyA.ZConnDir().Opposite())
		return rot
	}
}

// getBetaRotation mirrors getAlphaRotation with the roles of OtherBodyDir
// and ZConnDir swapped, per Move::get_beta_rotation.
func getBetaRotation(angle geom.RotationAngle, bodyB voxel.Voxel) geom.Rotation {
	switch bodyB.JointPos {
	case voxel.JointZero:
		firstRot := geom.NewRotation(bodyB.XConnsAxis(), geom.Plus90)
		if firstRot.RotateDir(bodyB.ZConnDir()).IsPositive == angle.IsPositive {
			return firstRot
		}
		return geom.NewRotation(bodyB.XConnsAxis(), geom.Minus90)
	default:
		rot, _ := geom.NewFromTo(bodyB.ZConnDir(), bodyB.OtherBodyDir.Opposite())
		return rot
	}
}

func (m Move) rotation(bodyA, bodyB voxel.Voxel) geom.Rotation {
	switch m.Joint {
	case voxel.Alpha:
		return getAlphaRotation(m.Angle, bodyA)
	case voxel.Beta:
		return getBetaRotation(m.Angle, bodyB)
	default: // Gamma: twist about the module's own long axis
		return geom.NewFromDir(bodyA.OtherBodyDir, m.Angle)
	}
}

// Apply applies m to the module represented at pA within w, splitting the
// world along cut (SideA holds pA, SideB holds pA's partner). It returns
// the resulting world, or an error (collision, wrapping world.ErrDuplicateVoxels)
// that callers — including the successor generator below — filter out
// silently.
func (m Move) Apply(kind world.Kind, w world.NormVoxelWorld, pA geom.Pos, cut connectivity.Cut) (world.NormVoxelWorld, error) {
	bodyA, ok := w.GetVoxel(pA)
	if !ok {
		return nil, ErrMoveNotPossible
	}
	pB := voxel.OtherBodyPos(pA, bodyA)
	bodyB, ok := w.GetVoxel(pB)
	if !ok {
		return nil, ErrMoveNotPossible
	}
	if !m.IsPossible(bodyA, bodyB) {
		return nil, ErrMoveNotPossible
	}

	sideA := world.NewSubworld(w, func(p geom.Pos) bool { _, ok := cut.SideA[p]; return ok })
	sideB := sideA.Complement()

	rotCenter := m.rotationCenter(pA, pB)
	rotation := m.rotation(bodyA, bodyB)
	origRotBody, ok := w.GetVoxel(rotCenter)
	if !ok {
		return nil, ErrMoveNotPossible
	}

	firstCentered := world.NewCenteredWorld(sideA, rotCenter)
	secondCentered := world.NewCenteredWorld(sideB, rotCenter)
	secondRotated := world.NewRotatedWorld(secondCentered, rotation)

	combined, newRotCenter, err := secondRotated.CombineWith(kind, firstCentered)
	if err != nil {
		return nil, err
	}

	applyToRotationCenter(combined, m, newRotCenter, origRotBody, rotation)

	return combined, nil
}

// applyToRotationCenter implements the pivot-voxel correction using the
// newer of two documented rules: Gamma
// leaves the pivot untouched; Alpha rotates the pivot and advances its
// joint via ZConnDir's sign; Beta keeps the pivot's original orientation
// and advances its joint via the move's own signed angle.
func applyToRotationCenter(w world.NormVoxelWorld, m Move, newRotCenter geom.Pos, origRotBody voxel.Voxel, rotation geom.Rotation) {
	switch m.Joint {
	case voxel.Gamma:
		return
	case voxel.Alpha:
		var newJointPos voxel.JointPosition
		if origRotBody.JointPos == voxel.JointZero {
			if origRotBody.ZConnDir().IsPositive {
				newJointPos = voxel.JointPlus90
			} else {
				newJointPos = voxel.JointMinus90
			}
		} else {
			newJointPos = voxel.JointZero
		}
		rotated := origRotBody.Rotate(rotation)
		rotated.JointPos = newJointPos
		_ = w.SetVoxel(newRotCenter, rotated)
	case voxel.Beta:
		var newJointPos voxel.JointPosition
		if origRotBody.JointPos == voxel.JointZero {
			if m.Angle.IsPositive {
				newJointPos = voxel.JointPlus90
			} else {
				newJointPos = voxel.JointMinus90
			}
		} else {
			newJointPos = voxel.JointZero
		}
		updated := origRotBody
		updated.JointPos = newJointPos
		_ = w.SetVoxel(newRotCenter, updated)
	}
}

// Modules enumerates every module in w: each voxel whose OtherBodyDir
// points with positive sign is a representative.
func Modules(w world.VoxelWorld) []voxel.Module {
	var mods []voxel.Module
	for _, pv := range w.AllVoxels() {
		if !pv.Voxel.OtherBodyDir.IsPositive {
			continue
		}
		partPos := voxel.OtherBodyPos(pv.Pos, pv.Voxel)
		part, ok := w.GetVoxel(partPos)
		if !ok {
			continue
		}
		mods = append(mods, voxel.NewModule(pv.Pos, pv.Voxel, part))
	}
	return mods
}

// AllNextWorlds implements the full move-generator pipeline: for every
// module, every admissible cut, and every admissible joint-move, apply the
// move and keep the result unless it collides.
func AllNextWorlds(kind world.Kind, w world.NormVoxelWorld) []world.NormVoxelWorld {
	var out []world.NormVoxelWorld
	g := connectivity.ComputeFrom(w)
	mods := Modules(w)
	telemetry.IncModules(int64(len(mods)))
	for _, mod := range mods {
		cuts := connectivity.AllCutsByModule(g, mod.RPos, mod.PPos)
		for _, cut := range cuts {
			for _, mv := range AllMoves() {
				if !mv.IsPossible(mod.Repr, mod.Part) {
					continue
				}
				result, err := mv.Apply(kind, w, mod.RPos, cut)
				if err != nil {
					telemetry.IncCollidedMoves()
					continue
				}
				out = append(out, result)
			}
		}
	}
	return out
}
