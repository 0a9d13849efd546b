package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paradise-fi/rofivoxel/search"
	"github.com/paradise-fi/rofivoxel/telemetry"
	"github.com/paradise-fi/rofivoxel/voxeljson"
	"github.com/paradise-fi/rofivoxel/world"
	"github.com/urfave/cli/v2"
)

func reconfigureCommand() *cli.Command {
	return &cli.Command{
		Name:      "reconfigure",
		Usage:     "search for a move sequence from an init world to a goal world",
		ArgsUsage: "INIT_PATH GOAL_PATH",
		Flags: append(commonWorldFlags(),
			&cli.StringFlag{Name: "alg", Value: "bfs", Usage: "search algorithm: bfs | astar-zero[-opt|-nopt] | astar-naive[-opt|-nopt] | astar-assignment-{pos,joint,posjoint}[-opt|-nopt]"},
			&cli.BoolFlag{Name: "bidirectional", Usage: "run the bidirectional driver instead of one-directional"},
			&cli.StringFlag{Name: "connections-mode", Value: "none", Usage: "connectivity representation: none (face-matching only; map/set connection-aware mode is not implemented)"},
			&cli.StringFlag{Name: "counter-log", Usage: "path to write the telemetry counter log to"},
		),
		Action: runReconfigure,
	}
}

func runReconfigure(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("rofivoxel reconfigure: expected INIT_PATH GOAL_PATH, got %d args", c.Args().Len())
	}
	if mode := c.String("connections-mode"); mode != "none" {
		return fmt.Errorf("rofivoxel reconfigure: connections-mode %q is not implemented (only \"none\" is supported)", mode)
	}
	kind, err := parseWorldKind(c.String("world-repr"))
	if err != nil {
		return err
	}

	if c.String("counter-log") != "" {
		telemetry.Enable()
		defer telemetry.Disable()
	}

	r := &inputReader{}
	init, goal, err := readInitGoal(r, kind, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	graph := search.VoxelStateGraph{Kind: kind}

	var path []search.State
	if c.Bool("bidirectional") {
		var fwdAlg, bwdAlg search.AlgInfo
		fwdAlg, err = parseAlg(c.String("alg"), init, goal)
		if err != nil {
			return err
		}
		bwdAlg, err = parseAlg(c.String("alg"), goal, init)
		if err != nil {
			return err
		}
		path, err = search.RunBidirectional(graph, fwdAlg, bwdAlg, init, goal)
	} else {
		var alg search.AlgInfo
		alg, err = parseAlg(c.String("alg"), init, goal)
		if err != nil {
			return err
		}
		path, err = search.RunOneDirectional(graph, alg, init, goal)
	}

	if logPath := c.String("counter-log"); logPath != "" {
		logData, mErr := json.Marshal(telemetry.Current())
		if mErr == nil {
			_ = writeOutput(logPath, logData)
		}
	}

	if err != nil {
		if errors.Is(err, search.ErrVoxelCountMismatch) || errors.Is(err, search.ErrPathNotFound) {
			return cli.Exit(err.Error(), 1)
		}
		return err
	}

	worlds := make([]world.VoxelWorld, len(path))
	for i, s := range path {
		worlds[i] = s
	}
	out, err := voxeljson.EncodeSequence(worlds, c.Bool("short"))
	if err != nil {
		return err
	}
	return writeOutput(c.String("out"), out)
}

// readInitGoal decodes the init and goal world documents from their
// respective paths, sharing one inputReader so the "at most one stdin"
// rule spans both.
func readInitGoal(r *inputReader, kind world.Kind, initPath, goalPath string) (init, goal world.NormVoxelWorld, err error) {
	initData, err := r.read(initPath)
	if err != nil {
		return nil, nil, fmt.Errorf("rofivoxel: reading init world: %w", err)
	}
	goalData, err := r.read(goalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("rofivoxel: reading goal world: %w", err)
	}
	init, err = voxeljson.DecodeWorld(kind, initData)
	if err != nil {
		return nil, nil, fmt.Errorf("rofivoxel: decoding init world: %w", err)
	}
	goal, err = voxeljson.DecodeWorld(kind, goalData)
	if err != nil {
		return nil, nil, fmt.Errorf("rofivoxel: decoding goal world: %w", err)
	}
	return init, goal, nil
}
