// Command rofivoxel is the CLI surface of the planner: a thin external
// collaborator around the search/world/voxeljson packages, providing the
// reconfigure, one-step, normalize, and next-step-count subcommands. Built
// on github.com/urfave/cli/v2, pulled in from the retrieval pack's
// viamrobotics-rdk dependency stack as the ambient CLI-framework stack this
// package otherwise has no caller for (see DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rofivoxel",
		Usage: "voxel-based modular-robot reconfiguration planner",
		Commands: []*cli.Command{
			reconfigureCommand(),
			oneStepCommand(),
			normalizeCommand(),
			nextStepCountCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rofivoxel:", err)
		os.Exit(1)
	}
}

// commonWorldFlags are the input/output flags shared by every subcommand
// that reads or writes world JSON.
func commonWorldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "short", Usage: "emit compact JSON instead of indented"},
		&cli.StringFlag{Name: "world-repr", Value: "map", Usage: "world representation: map | matrix | sortvec"},
		&cli.StringFlag{Name: "out", Usage: "write output to this path instead of stdout"},
		&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbosity level (repeatable count via -vv is not supported; pass a number)"},
	}
}
