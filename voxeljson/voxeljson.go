// Package voxeljson implements the JSON wire format for voxel worlds and
// reconfiguration sequences: a "bodies" array of per-voxel records, and a
// sequence encoded as a plain JSON array of world objects. Field names are
// exact and unknown fields are rejected — grounded on this codebase's strict
// per-package validation style (world.Check), here applied to the decode
// boundary instead of the domain boundary.
package voxeljson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paradise-fi/rofivoxel/geom"
	"github.com/paradise-fi/rofivoxel/voxel"
	"github.com/paradise-fi/rofivoxel/world"
)

// ErrUnknownField is wrapped into the error returned when a world document
// contains a field outside this package's exact schema.
var ErrUnknownField = errors.New("voxeljson: unknown field in input")

// bodyDir is the wire shape of a geom.Direction.
type bodyDir struct {
	Axis       string `json:"axis"`
	IsPositive bool   `json:"is_positive"`
}

// body is the wire shape of one world.PosVoxel.
type body struct {
	Pos         [3]int64 `json:"pos"`
	BodyDir     bodyDir  `json:"body_dir"`
	ShoeRotated bool     `json:"shoe_rotated"`
	JointPos    int      `json:"joint_pos"`
}

// document is the wire shape of a whole world: `{"bodies": [...]}`.
type document struct {
	Bodies []body `json:"bodies"`
}

func axisToString(a geom.Axis) string {
	return a.String()
}

func axisFromString(s string) (geom.Axis, error) {
	switch s {
	case "X":
		return geom.X, nil
	case "Y":
		return geom.Y, nil
	case "Z":
		return geom.Z, nil
	default:
		return 0, fmt.Errorf("voxeljson: invalid axis %q", s)
	}
}

func jointToInt(j voxel.JointPosition) int {
	switch j {
	case voxel.JointPlus90:
		return 90
	case voxel.JointMinus90:
		return -90
	default:
		return 0
	}
}

func jointFromInt(v int) (voxel.JointPosition, error) {
	switch v {
	case 0:
		return voxel.JointZero, nil
	case 90:
		return voxel.JointPlus90, nil
	case -90:
		return voxel.JointMinus90, nil
	default:
		return 0, fmt.Errorf("voxeljson: invalid joint_pos %d", v)
	}
}

func bodyFromVoxel(pv world.PosVoxel) body {
	v := pv.Voxel
	return body{
		Pos: [3]int64{pv.Pos.X, pv.Pos.Y, pv.Pos.Z},
		BodyDir: bodyDir{
			Axis:       axisToString(v.OtherBodyDir.Axis),
			IsPositive: v.OtherBodyDir.IsPositive,
		},
		ShoeRotated: v.ShoeRotated,
		JointPos:    jointToInt(v.JointPos),
	}
}

func (b body) toPosVoxel() (world.PosVoxel, error) {
	axis, err := axisFromString(b.BodyDir.Axis)
	if err != nil {
		return world.PosVoxel{}, err
	}
	jointPos, err := jointFromInt(b.JointPos)
	if err != nil {
		return world.PosVoxel{}, err
	}
	return world.PosVoxel{
		Pos: geom.Pos{X: b.Pos[0], Y: b.Pos[1], Z: b.Pos[2]},
		Voxel: voxel.Voxel{
			OtherBodyDir: geom.Direction{Axis: axis, IsPositive: b.BodyDir.IsPositive},
			ShoeRotated:  b.ShoeRotated,
			JointPos:     jointPos,
		},
	}, nil
}

// decodeStrict runs json.Decoder with DisallowUnknownFields over data into
// v, wrapping any field-related failure in ErrUnknownField.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return fmt.Errorf("voxeljson: %w", err)
	}
	return nil
}

// DecodeWorld parses one world document into a world of the requested
// representation. Positions may be negative; FromVoxels re-centers them on
// the minimal bounding box, normalizing the world on load.
func DecodeWorld(kind world.Kind, data []byte) (world.NormVoxelWorld, error) {
	var doc document
	if err := decodeStrict(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Bodies) == 0 {
		return nil, world.ErrEmptyWorld
	}
	voxels := make([]world.PosVoxel, len(doc.Bodies))
	for i, b := range doc.Bodies {
		pv, err := b.toPosVoxel()
		if err != nil {
			return nil, err
		}
		voxels[i] = pv
	}
	return world.FromVoxels(kind, voxels)
}

// EncodeWorld marshals w into the `{"bodies": [...]}` document shape.
// When short is true, output has no indentation; otherwise it is
// pretty-printed with a two-space indent.
func EncodeWorld(w world.VoxelWorld, short bool) ([]byte, error) {
	all := w.AllVoxels()
	doc := document{Bodies: make([]body, len(all))}
	for i, pv := range all {
		doc.Bodies[i] = bodyFromVoxel(pv)
	}
	if short {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeSequence parses a JSON array of world documents into a slice of
// worlds, in order: the first element is the (normalized) init, the last
// the (normalized) goal.
func DecodeSequence(kind world.Kind, data []byte) ([]world.NormVoxelWorld, error) {
	var raws []json.RawMessage
	if err := decodeStrict(data, &raws); err != nil {
		return nil, err
	}
	seq := make([]world.NormVoxelWorld, len(raws))
	for i, raw := range raws {
		w, err := DecodeWorld(kind, raw)
		if err != nil {
			return nil, fmt.Errorf("voxeljson: sequence element %d: %w", i, err)
		}
		seq[i] = w
	}
	return seq, nil
}

// EncodeSequence marshals a slice of worlds into a JSON array of world
// documents.
func EncodeSequence(worlds []world.VoxelWorld, short bool) ([]byte, error) {
	docs := make([]document, len(worlds))
	for i, w := range worlds {
		all := w.AllVoxels()
		docs[i] = document{Bodies: make([]body, len(all))}
		for j, pv := range all {
			docs[i].Bodies[j] = bodyFromVoxel(pv)
		}
	}
	if short {
		return json.Marshal(docs)
	}
	return json.MarshalIndent(docs, "", "  ")
}
