// SPDX-License-Identifier: MIT

// Package core: node and edge method implementations.
//
// Adjacency is stored as index slices (adjacency[i] = neighbour indices of
// nodes[i]); every undirected edge is mirrored so symmetry holds by
// construction.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts n into the Graph.
// Returns ErrEmptyNodeID if n.ID is empty, ErrFrozen after Freeze, and
// ErrDuplicateNode if the ID is taken.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	// Validate input: empty IDs are not allowed
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, exists := g.index[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	// Grow bounds with the new position
	if len(g.nodes) == 0 {
		g.bound = n.Position.Bound()
	} else {
		g.bound = g.bound.Extend(n.Position)
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adjacency = append(g.adjacency, nil)

	return nil
}

// AddEdge connects a and b in both directions.
// Adding an edge that already exists (in either orientation) is a no-op.
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, ErrFrozen, or ErrNodeNotFound
// (wrapped with the missing ID).
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) AddEdge(a, b string) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}

	// 2) Both endpoints must already exist
	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	// 3) Idempotent insertion; the mirror entry is present iff the forward one is
	if slices.Contains(g.adjacency[ia], ib) {
		return nil
	}
	g.adjacency[ia] = append(g.adjacency[ia], ib)
	g.adjacency[ib] = append(g.adjacency[ib], ia)
	g.edges = append(g.edges, Edge{A: a, B: b})

	return nil
}

// Freeze makes g read-only: later AddNode and AddEdge calls fail with
// ErrFrozen. Freezing is one-way and idempotent.
// Complexity: O(1).
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given ID or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return g.nodes[i], nil
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.nodes)
}

// NeighborIDs returns the IDs adjacent to id in edge insertion order.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]string, len(g.adjacency[i]))
	for k, j := range g.adjacency[i] {
		out[k] = g.nodes[j].ID
	}

	return out, nil
}

// Neighbors returns the nodes adjacent to id in edge insertion order.
// Search uses this form to avoid a lookup per neighbour.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Node, len(g.adjacency[i]))
	for k, j := range g.adjacency[i] {
		out[k] = g.nodes[j]
	}

	return out, nil
}

// HasEdge reports whether a and b are adjacent. Orientation does not matter.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return false
	}

	return slices.Contains(g.adjacency[ia], ib)
}

// Edges returns every undirected edge once, in insertion order.
// Complexity: O(S).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}
