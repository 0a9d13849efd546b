package main

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/move"
	"github.com/paradise-fi/rofivoxel/voxeljson"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/urfave/cli/v2"
)

func oneStepCommand() *cli.Command {
	return &cli.Command{
		Name:      "one-step",
		Usage:     "output the normalized input world followed by every one-move successor",
		ArgsUsage: "WORLD_PATH",
		Flags: append(commonWorldFlags(),
			&cli.BoolFlag{Name: "normalize", Usage: "normalize the input before generating successors (otherwise it must already be normalized)"},
		),
		Action: runOneStep,
	}
}

func runOneStep(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("rofivoxel one-step: expected WORLD_PATH, got %d args", c.Args().Len())
	}
	kind, err := parseWorldKind(c.String("world-repr"))
	if err != nil {
		return err
	}

	r := &inputReader{}
	data, err := r.read(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("rofivoxel: reading world: %w", err)
	}
	w, err := voxeljson.DecodeWorld(kind, data)
	if err != nil {
		return fmt.Errorf("rofivoxel: decoding world: %w", err)
	}

	if c.Bool("normalize") {
		eqs, err := world.NormalizedEqWorlds(kind, w)
		if err != nil {
			return fmt.Errorf("rofivoxel: normalizing world: %w", err)
		}
		w = eqs[0]
	}

	successors := move.AllNextWorlds(kind, w)
	out := make([]world.VoxelWorld, 0, len(successors)+1)
	out = append(out, w)
	for _, s := range successors {
		out = append(out, s)
	}

	data, err = voxeljson.EncodeSequence(out, c.Bool("short"))
	if err != nil {
		return err
	}
	return writeOutput(c.String("out"), data)
}
