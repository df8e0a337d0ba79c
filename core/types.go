// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node and Edge types, and provides
// thread-safe primitives for building and querying navigation graphs.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID already exists.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation of a Graph after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Node is a point in the navigation topology.
//
// ID uniquely identifies this Node within its Graph.
// Position is the planar location used by the cost model.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id"`

	// Position is the node location on the navigation plane.
	Position orb.Point `json:"position"`
}

// Edge is an undirected connection between two nodes.
// The traversal cost is not stored; it is derived from the Graph's Metric.
type Edge struct {
	// A is the first endpoint ID.
	A string `json:"a"`

	// B is the second endpoint ID.
	B string `json:"b"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMetric sets the cost model used for edge costs and heuristic estimates.
// Panics on nil to surface programmer error early.
func WithMetric(m Metric) GraphOption {
	if m == nil {
		panic("core: WithMetric(nil)")
	}
	return func(g *Graph) { g.metric = m }
}

// WithSnapshotID overrides the generated snapshot ID, e.g. with one derived
// from the topology content so equal inputs share an ID across processes.
func WithSnapshotID(id uuid.UUID) GraphOption {
	return func(g *Graph) { g.id = id }
}

// Graph is the navigation graph data structure.
//
// nodes keeps insertion order; index maps ID → position in nodes;
// adjacency[i] lists neighbour indices of nodes[i] in edge insertion order.
// edges records each undirected edge once, in insertion order.
// mu guards all storage.
type Graph struct {
	mu sync.RWMutex

	id     uuid.UUID // snapshot identity
	metric Metric    // cost model

	nodes     []Node
	index     map[string]int
	adjacency [][]int
	edges     []Edge
	bound     orb.Bound
	frozen    bool
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph uses the Euclidean cost model and a random snapshot ID.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:     uuid.New(),
		metric: Euclidean{},
		index:  make(map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	ID        uuid.UUID `json:"id"`
	Metric    string    `json:"metric"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	Bounds    orb.Bound `json:"bounds"`
}
