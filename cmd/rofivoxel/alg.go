package main

import (
	"fmt"
	"strings"

	"github.com/paradise-fi/rofivoxel/search"
)

// parseAlg builds a fresh search.AlgInfo from the CLI's algorithm selector
// flag: "bfs", "astar-zero", "astar-naive", each astar variant
// suffixed with "-opt" (optimal, EARLY_CHECK=false) or "-nopt" (early-
// return, EARLY_CHECK=true), plus the three assignment variants
// ("astar-assignment-pos", "-joint", "-posjoint"), also opt/nopt-suffixed.
// Called twice for a bidirectional run, once per direction, since AlgInfo
// instances are not shareable across directions.
func parseAlg(name string, init, goal search.State) (search.AlgInfo, error) {
	if name == "" || name == "bfs" {
		return search.NewBFS(), nil
	}

	rest, suffix, err := splitOptSuffix(name)
	if err != nil {
		return nil, err
	}

	metric, err := parseMetric(rest)
	if err != nil {
		return nil, err
	}

	if suffix == "opt" {
		return search.NewAStarOptimal(init, goal, metric), nil
	}
	return search.NewAStarEarly(init, goal, metric), nil
}

func splitOptSuffix(name string) (rest, suffix string, err error) {
	switch {
	case strings.HasSuffix(name, "-opt"):
		return strings.TrimSuffix(name, "-opt"), "opt", nil
	case strings.HasSuffix(name, "-nopt"):
		return strings.TrimSuffix(name, "-nopt"), "nopt", nil
	default:
		return "", "", fmt.Errorf("rofivoxel: astar algorithm %q must end in -opt or -nopt", name)
	}
}

func parseMetric(name string) (search.Metric, error) {
	switch name {
	case "astar-zero":
		return search.ZeroMetric{}, nil
	case "astar-naive":
		return search.NaiveMetric{}, nil
	case "astar-assignment-pos":
		return search.AssignmentMetric{Kind: search.AssignmentPos}, nil
	case "astar-assignment-joint":
		return search.AssignmentMetric{Kind: search.AssignmentJoint}, nil
	case "astar-assignment-posjoint":
		return search.AssignmentMetric{Kind: search.AssignmentPosJoint}, nil
	default:
		return nil, fmt.Errorf("rofivoxel: unknown algorithm %q", name)
	}
}
