package main

import (
	"fmt"
	"io"
	"os"

	"github.com/paradise-fi/rofivoxel/world"
)

// stdinPath is the sentinel value path flags accept for "read this input
// from stdin instead of a file".
const stdinPath = "-"

// inputReader tracks how many of a single invocation's path arguments were
// "-", enforcing an "at most one '-' across all inputs" rule.
type inputReader struct {
	stdinUsed bool
}

// read loads the bytes at path, treating stdinPath as standard input. It
// returns an error if a second path in the same invocation also asks for
// stdin.
func (r *inputReader) read(path string) ([]byte, error) {
	if path == stdinPath {
		if r.stdinUsed {
			return nil, fmt.Errorf("rofivoxel: only one input may be read from stdin (%q) per invocation", stdinPath)
		}
		r.stdinUsed = true
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parseWorldKind maps the CLI's world-representation selector flag onto
// world.Kind.
func parseWorldKind(s string) (world.Kind, error) {
	switch s {
	case "", "map":
		return world.KindMap, nil
	case "matrix":
		return world.KindMatrix, nil
	case "sortvec":
		return world.KindSortVec, nil
	default:
		return 0, fmt.Errorf("rofivoxel: unknown world representation %q (want map|matrix|sortvec)", s)
	}
}

// writeOutput writes data followed by a trailing newline to stdout, unless
// outPath is set, in which case it writes to that file instead.
func writeOutput(outPath string, data []byte) error {
	data = append(data, '\n')
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
