package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paradise-fi/rofivoxel/search"
	"github.com/paradise-fi/rofivoxel/voxeljson"
	"github.com/urfave/cli/v2"
)

func nextStepCountCommand() *cli.Command {
	return &cli.Command{
		Name:      "next-step-count",
		Usage:     "expand the reachable state space round-by-round, reporting per-round growth statistics",
		ArgsUsage: "WORLD_PATH",
		Flags: append(commonWorldFlags(),
			&cli.IntFlag{Name: "rounds", Value: 5, Usage: "number of BFS rounds to expand"},
		),
		Action: runNextStepCount,
	}
}

// roundStat is one element of next-step-count's output: a round of BFS
// expansion.
type roundStat struct {
	Round           int     `json:"round"`
	NewStates       int     `json:"new_states"`
	ParentMapSize   int     `json:"cumulative_parent_map_size"`
	WallTimeSeconds float64 `json:"wall_time_seconds"`
}

func runNextStepCount(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("rofivoxel next-step-count: expected WORLD_PATH, got %d args", c.Args().Len())
	}
	kind, err := parseWorldKind(c.String("world-repr"))
	if err != nil {
		return err
	}
	rounds := c.Int("rounds")
	if rounds < 1 {
		return fmt.Errorf("rofivoxel next-step-count: --rounds must be >= 1, got %d", rounds)
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

	graph := search.VoxelStateGraph{Kind: kind}
	initClass, err := graph.EquivalentStates(w)
	if err != nil {
		return fmt.Errorf("rofivoxel: normalizing world: %w", err)
	}

	seen := make(map[string]struct{})
	for _, s := range initClass {
		seen[search.Key(s)] = struct{}{}
	}
	frontier := []search.State{w}

	stats := make([]roundStat, 0, rounds)
	for round := 1; round <= rounds && len(frontier) > 0; round++ {
		start := time.Now()
		var nextFrontier []search.State
		newCount := 0
		for _, cur := range frontier {
			for _, next := range graph.NextStates(cur) {
				key := search.Key(next)
				if _, ok := seen[key]; ok {
					continue
				}
				eqClass, err := graph.EquivalentStates(next)
				if err != nil {
					return fmt.Errorf("rofivoxel: normalizing successor: %w", err)
				}
				for _, eq := range eqClass {
					seen[search.Key(eq)] = struct{}{}
				}
				newCount++
				nextFrontier = append(nextFrontier, next)
			}
		}
		stats = append(stats, roundStat{
			Round:           round,
			NewStates:       newCount,
			ParentMapSize:   len(seen),
			WallTimeSeconds: time.Since(start).Seconds(),
		})
		frontier = nextFrontier
	}

	out, err := json.MarshalIndent(stats, "", "  ")
	if c.Bool("short") {
		out, err = json.Marshal(stats)
	}
	if err != nil {
		return err
	}
	return writeOutput(c.String("out"), out)
}
