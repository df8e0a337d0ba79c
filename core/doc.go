// SPDX-License-Identifier: MIT

// Package core provides the navigation graph shared by every other waypath
// package: spatial nodes, undirected edges and the cost model that turns a
// pair of positions into an edge cost and a heuristic estimate.
//
// The Graph G = (N,S) is built once from a topology snapshot and then only
// read:
//
//   - Nodes carry a stable string ID and a planar position (orb.Point).
//   - Edges are unordered pairs; AddEdge mirrors adjacency both ways so the
//     symmetry invariant (b ∈ N(a) ⇔ a ∈ N(b)) always holds.
//   - Duplicate edges (in either orientation) are idempotent; self-loops are
//     rejected.
//   - Iteration is deterministic: Nodes() follows insertion order, and
//     NeighborIDs()/Neighbors() follow edge insertion order.
//   - Every Graph gets a uuid snapshot ID at construction, so caches and logs
//     can tell two builds of the same topology apart.
//   - A single sync.RWMutex guards storage, so concurrent searches may read
//     the graph while nothing mutates it.
//
// Cost models (Metric):
//
//	– Euclidean{}             edge cost = planar distance; estimate = planar distance.
//	– Lattice{CellSize: c}    edge cost = 1 per step; estimate = Manhattan distance / c.
//
// Both estimates never exceed the true remaining cost on graphs built with
// the matching cost model, which keeps A* optimal.
//
// Core Methods:
//
//	AddNode(n Node) error                      // O(1)
//	AddEdge(a, b string) error                 // O(deg(a)+deg(b))
//	Node(id string) (Node, error)              // O(1)
//	Nodes() []Node                             // O(N)
//	NeighborIDs(id string) ([]string, error)   // O(deg)
//	Neighbors(id string) ([]Node, error)       // O(deg)
//	HasEdge(a, b string) bool                  // O(deg(a))
//	Edges() []Edge                             // O(S)
//	Bounds() orb.Bound                         // O(1)
//	Stats() GraphStats                         // O(1)
//
// Errors:
//
//	ErrEmptyNodeID     – zero-length node ID
//	ErrDuplicateNode   – node ID already present
//	ErrNodeNotFound    – missing node
//	ErrLoopNotAllowed  – edge from a node to itself
//	ErrFrozen          – AddNode/AddEdge after Freeze
package core
