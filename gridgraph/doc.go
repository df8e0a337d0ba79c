// SPDX-License-Identifier: MIT

// Package gridgraph builds navigation graphs implicitly from a rectangular
// lattice instead of an authored node/edge list.
//
// What:
//
//   - Lattice holds column/row/cell-size geometry; no edge list is needed.
//   - Node (i,j) sits at world position (i·CellSize, j·CellSize) with ID "i,j".
//   - Each node connects to its 4 neighbours within bounds, listed left,
//     right, down, up; searches break cost ties in that order.
//   - ToCoreGraph produces a *core.Graph using the core.Lattice cost model:
//     unit cost per step, Manhattan distance (in steps) as the admissible
//     heuristic.
//   - Snap converts an arbitrary world position to the nearest lattice node,
//     clamped into the grid; NaN coordinates are rejected.
//
// Complexity:
//
//   - NewLattice:   O(1).
//   - ToCoreGraph:  O(C×R) time and memory, C = Columns+1, R = Rows+1.
//   - Snap:         O(1).
//
// Errors:
//
//   - ErrBadDimensions: columns or rows below 1.
//   - ErrBadCellSize: cell size not positive and finite.
//   - ErrBadNodeID: Coordinate received a string that is not "i,j".
//   - ErrBadPosition: Snap received a NaN coordinate.
package gridgraph
