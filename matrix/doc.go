// Package matrix provides a dense float64 matrix type used by the search
// package's Assignment heuristic to hold module-pairing cost matrices.
//
// A fuller matrix package would also ship Floyd-Warshall closure,
// elementwise ops, and LU/QR/eigen decomposition over this same Dense type;
// none of those have a caller anywhere in a voxel-reconfiguration planner
// (no graph-distance closure, no elementwise transform, no decomposition is
// ever computed here), so they were dropped rather than kept unwired — see
// DESIGN.md for the itemized disposition.
package matrix
