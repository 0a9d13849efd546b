package search

import "errors"

// Sentinel errors for the search engine, mirroring the per-package ErrXxx
// convention.
var (
	// ErrVoxelCountMismatch is a quick pre-check: init and
	// goal have different voxel counts, so no move sequence (each of
	// which conserves voxel count) can possibly connect them.
	ErrVoxelCountMismatch = errors.New("search: init and goal have different voxel counts")
	// ErrPathNotFound is returned when a search strategy exhausts its
	// reachable state space without encountering a goal representative.
	ErrPathNotFound = errors.New("search: goal not reachable from init")
)
