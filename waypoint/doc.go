// SPDX-License-Identifier: MIT

// Package waypoint answers spatial questions about a navigation graph:
// which node is nearest to a world position, which node to wander to next,
// and where the closest point on the path network lies.
//
// An Index is built once per graph snapshot and is read-only afterwards, so
// any number of goroutines may query it concurrently. Node positions and
// edge segments are kept in two R-trees (github.com/dhconnelly/rtreego).
// Every R-tree probe is refined with exact planar distances, so results are
// identical to a linear scan with ties broken by node insertion order.
//
// Random deliberately reproduces a simple, non-uniform rule: draw a node
// uniformly and, if it is the excluded one, take the next node in insertion
// order instead. The node following the excluded one is therefore twice as
// likely as any other. Callers that rely on a seeded sequence get the same
// nodes every run.
package waypoint
