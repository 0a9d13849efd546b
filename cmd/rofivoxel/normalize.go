package main

import (
	"fmt"

	"github.com/paradise-fi/rofivoxel/search"
	"github.com/paradise-fi/rofivoxel/voxeljson"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/urfave/cli/v2"
)

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "output every unique normalized rotation-equivalent of a world",
		ArgsUsage: "WORLD_PATH",
		Flags:     commonWorldFlags(),
		Action:    runNormalize,
	}
}

func runNormalize(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("rofivoxel normalize: expected WORLD_PATH, got %d args", c.Args().Len())
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

	eqs, err := world.NormalizedEqWorlds(kind, w)
	if err != nil {
		return fmt.Errorf("rofivoxel: normalizing world: %w", err)
	}

	unique := dedupeWorlds(eqs)
	out := make([]world.VoxelWorld, len(unique))
	for i, s := range unique {
		out[i] = s
	}

	data, err = voxeljson.EncodeSequence(out, c.Bool("short"))
	if err != nil {
		return err
	}
	return writeOutput(c.String("out"), data)
}

// dedupeWorlds collapses normalization-equivalent duplicates (the rotation
// set may legitimately contain the same shape more than once) down to one
// representative per distinct (sizes, voxel-set) content, using
// search.Key's content-addressed string as the dedup key.
func dedupeWorlds(worlds []world.NormVoxelWorld) []world.NormVoxelWorld {
	seen := make(map[string]struct{}, len(worlds))
	out := make([]world.NormVoxelWorld, 0, len(worlds))
	for _, w := range worlds {
		k := search.Key(w)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, w)
	}
	return out
}
