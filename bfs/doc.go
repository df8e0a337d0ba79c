// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, ignoring
// edge costs: hop distances and visit order, optionally bounded in depth,
// plus connected components.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result (Order, Depth). WithMaxDepth bounds the radius and
//     WithOnVisit streams each node as it is dequeued; pathfinder.Within
//     uses both for hop-radius queries.
//   - Components labels each node with its connected component so callers
//     can reject unreachable goals before running a weighted search.
//
// Determinism
//
//	core.Graph returns neighbours in edge insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrStartNotFound  if the start node does not exist.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
