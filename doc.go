// Package rofivoxel plans reconfiguration sequences for voxel-based modular
// robots.
//
// A robot is a set of cube modules placed on an integer grid, each one
// packed into the RoFI voxel body-pose encoding (geom, voxel); a set of
// modules forms a world (world) that can be normalized against the 24
// proper cube rotations, queried for connector-level adjacency
// (connectivity), and stepped through single-joint reconfiguration moves
// (move). The search package drives BFS or A* (optionally with an
// admissible Naive heuristic or the faster but inadmissible Assignment
// heuristic) over the move graph to find a path from one world to another.
//
// voxeljson reads and writes the JSON world/sequence wire format; cmd/rofivoxel
// wires all of it into a CLI.
package rofivoxel
