// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only getters over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ID returns the snapshot identity assigned when the Graph was created.
//
// NewGraph draws a random ID unless WithSnapshotID pins one, so the value
// can key caches and correlate logs across rebuilds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) ID() uuid.UUID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.id
}

// Metric returns the cost model fixed at construction.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Metric() Metric {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.metric
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Bounds returns the axis-aligned bounding box of all node positions.
// An empty graph reports the zero Bound.
// Complexity: O(1).
func (g *Graph) Bounds() orb.Bound {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.bound
}

// Stats produces a read-only snapshot of identity, cost model and sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock once so all fields describe one state.
//   - Stage 2: Copy scalars into a value object.
//
// Returns:
//   - GraphStats: value copy safe to log or serialise.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		ID:        g.id,
		Metric:    g.metric.String(),
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Bounds:    g.bound,
	}
}
