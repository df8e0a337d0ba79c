// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// build.go - public constructors.
//
// All constructors share one validation path (build) so that General, Chain
// and FromSegments input fails in exactly the same way.

package builder

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/gridgraph"
)

// Segment is one authored line piece between two world positions.
type Segment struct {
	Start orb.Point
	End   orb.Point
}

// Build creates a navigation graph from explicit nodes and undirected edges.
//
// Rules:
//   - fewer than MinNodes nodes or no edges ⇒ ErrConfiguration;
//   - empty or duplicate node IDs ⇒ ErrConfiguration (core sentinel kept);
//   - an edge naming an undeclared node ⇒ ErrInvalidNodeReference;
//   - a self edge (a,a) ⇒ ErrConfiguration wrapping core.ErrLoopNotAllowed;
//   - repeated edges, in either orientation, are merged.
//
// Node order and edge order are preserved, so neighbour lists are deterministic.
// Complexity: O(N + E·d), d = max degree.
func Build(nodes []core.Node, edges []core.Edge, opts ...BuilderOption) (*core.Graph, error) {
	return build(MethodBuild, nodes, edges, newBuilderConfig(opts...))
}

// Chain connects consecutive nodes in order: n0–n1, n1–n2, ...
// It needs at least MinNodes nodes.
// Complexity: O(N).
func Chain(nodes []core.Node, opts ...BuilderOption) (*core.Graph, error) {
	edges := make([]core.Edge, 0, max(len(nodes)-1, 0))
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, core.Edge{A: nodes[i-1].ID, B: nodes[i].ID})
	}

	return build(MethodChain, nodes, edges, newBuilderConfig(opts...))
}

// FromSegments turns a soup of line segments into a navigation graph.
// Endpoints closer than the merge tolerance (WithMergeTolerance) collapse into
// one waypoint; waypoints are numbered in first-seen order and named by the
// ID scheme (WithIDScheme, default "w0","w1",...). Each segment becomes an edge.
// A zero-length segment collapses to a self edge and fails with ErrConfiguration.
// Complexity: O(S·W) where W is the number of distinct waypoints.
func FromSegments(segments []Segment, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	var nodes []core.Node
	lookup := func(p orb.Point) string {
		for _, n := range nodes {
			if planar.Distance(n.Position, p) <= cfg.mergeTolerance {
				return n.ID
			}
		}
		n := core.Node{ID: cfg.idFn(len(nodes)), Position: p}
		nodes = append(nodes, n)
		return n.ID
	}

	edges := make([]core.Edge, 0, len(segments))
	for _, s := range segments {
		a := lookup(s.Start)
		b := lookup(s.End)
		edges = append(edges, core.Edge{A: a, B: b})
	}

	return build(MethodFromSegments, nodes, edges, cfg)
}

// Grid builds a lattice graph of (columns+1)×(rows+1) nodes spaced cellSize
// apart (see gridgraph.Lattice). Geometry errors are reported as
// ErrConfiguration with the gridgraph sentinel kept in the chain.
// The metric defaults to core.Lattice unless WithMetric is given.
// Complexity: O(columns·rows).
func Grid(columns, rows int, cellSize float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	l, err := gridgraph.NewLattice(columns, rows, cellSize)
	if err != nil {
		return nil, builderErrorf(MethodGrid, "%w: %w", ErrConfiguration, err)
	}
	g, err := l.ToCoreGraph(cfg.graphOptions()...)
	if err != nil {
		return nil, builderErrorf(MethodGrid, "%w: %w", ErrConfiguration, err)
	}

	return g, nil
}

// build is the shared validation and insertion path.
func build(method string, nodes []core.Node, edges []core.Edge, cfg builderConfig) (*core.Graph, error) {
	// 1) Size checks
	if len(nodes) < MinNodes {
		return nil, builderErrorf(method, "%w: need at least %d nodes, got %d", ErrConfiguration, MinNodes, len(nodes))
	}
	if len(edges) < MinEdges {
		return nil, builderErrorf(method, "%w: no edges", ErrConfiguration)
	}

	g := core.NewGraph(cfg.graphOptions()...)

	// 2) Nodes, in declaration order
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, builderErrorf(method, "%w: node %q: %w", ErrConfiguration, n.ID, err)
		}
	}

	// 3) Edges, mirrored and merged by core
	for i, e := range edges {
		err := g.AddEdge(e.A, e.B)
		switch {
		case err == nil:
		case errors.Is(err, core.ErrNodeNotFound), errors.Is(err, core.ErrEmptyNodeID):
			return nil, builderErrorf(method, "%w: edge %d (%q,%q): %w", ErrInvalidNodeReference, i, e.A, e.B, err)
		default:
			return nil, builderErrorf(method, "%w: edge %d (%q,%q): %w", ErrConfiguration, i, e.A, e.B, err)
		}
	}

	return g, nil
}
