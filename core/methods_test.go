// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

// line returns A(0,0) B(1,0) C(2,0) with edges A–B, B–C.
func line(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "A", Position: orb.Point{0, 0}}))
	require.NoError(t, g.AddNode(core.Node{ID: "B", Position: orb.Point{1, 0}}))
	require.NoError(t, g.AddNode(core.Node{ID: "C", Position: orb.Point{2, 0}}))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	return g
}

func TestAddNode_Errors(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode(core.Node{ID: "A"}))
	require.ErrorIs(t, g.AddNode(core.Node{ID: "A", Position: orb.Point{5, 5}}), core.ErrDuplicateNode)

	// The rejected duplicate must not overwrite the original.
	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{0, 0}, n.Position)
}

func TestAddEdge_Errors(t *testing.T) {
	g := line(t)

	cases := []struct {
		name string
		a, b string
		err  error
	}{
		{"EmptyA", "", "B", core.ErrEmptyNodeID},
		{"EmptyB", "A", "", core.ErrEmptyNodeID},
		{"Loop", "A", "A", core.ErrLoopNotAllowed},
		{"MissingA", "X", "B", core.ErrNodeNotFound},
		{"MissingB", "A", "Y", core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.a, tc.b), tc.err)
		})
	}
	assert.Equal(t, 2, g.EdgeCount(), "failed inserts must not add edges")
}

func TestAddEdge_SymmetricAndIdempotent(t *testing.T) {
	g := line(t)

	// Duplicate in both orientations.
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 2, g.EdgeCount())

	for _, e := range g.Edges() {
		assert.True(t, g.HasEdge(e.A, e.B), "%s→%s", e.A, e.B)
		assert.True(t, g.HasEdge(e.B, e.A), "%s→%s", e.B, e.A)
	}

	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nb, "insertion order, no duplicates")

	nbA, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbA)

	assert.False(t, g.HasEdge("A", "C"))
	assert.False(t, g.HasEdge("A", "missing"))
}

func TestNeighbors_CarryPositions(t *testing.T) {
	g := line(t)
	nodes, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, core.Node{ID: "A", Position: orb.Point{0, 0}}, nodes[0])
	assert.Equal(t, core.Node{ID: "C", Position: orb.Point{2, 0}}, nodes[1])

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.NeighborIDs("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNodes_InsertionOrderAndCopy(t *testing.T) {
	g := line(t)
	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "A", nodes[0].ID)
	assert.Equal(t, "C", nodes[2].ID)

	// Mutating the copy leaves the graph untouched.
	nodes[0].ID = "mutated"
	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.ID)
	assert.True(t, g.HasNode("A"))
	assert.False(t, g.HasNode("mutated"))
}

func TestStats(t *testing.T) {
	id := uuid.MustParse("6f1c1a43-8d8e-4f4e-9a53-5b3c0e3c8a11")
	g := core.NewGraph(core.WithSnapshotID(id), core.WithMetric(core.Lattice{CellSize: 2}))
	require.NoError(t, g.AddNode(core.Node{ID: "p", Position: orb.Point{-1, 4}}))
	require.NoError(t, g.AddNode(core.Node{ID: "q", Position: orb.Point{3, -2}}))
	require.NoError(t, g.AddEdge("p", "q"))

	s := g.Stats()
	assert.Equal(t, id, s.ID)
	assert.Equal(t, id, g.ID())
	assert.Equal(t, "lattice", s.Metric)
	assert.Equal(t, 2, s.NodeCount)
	assert.Equal(t, 1, s.EdgeCount)
	assert.Equal(t, orb.Bound{Min: orb.Point{-1, -2}, Max: orb.Point{3, 4}}, s.Bounds)
	assert.Equal(t, s.Bounds, g.Bounds())
}

func TestFreeze(t *testing.T) {
	g := line(t)
	assert.False(t, g.Frozen())
	g.Freeze()
	g.Freeze()
	assert.True(t, g.Frozen())

	require.ErrorIs(t, g.AddNode(core.Node{ID: "D"}), core.ErrFrozen)
	require.ErrorIs(t, g.AddEdge("A", "C"), core.ErrFrozen)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasNode("D"))
	assert.False(t, g.HasEdge("A", "C"))
}

func TestNewGraph_DistinctSnapshotIDs(t *testing.T) {
	assert.NotEqual(t, core.NewGraph().ID(), core.NewGraph().ID())
	assert.Equal(t, "euclidean", core.NewGraph().Metric().String())
}

func TestWithMetric_NilPanics(t *testing.T) {
	assert.Panics(t, func() { core.WithMetric(nil) })
}
