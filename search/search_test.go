// SPDX-License-Identifier: MIT

// Package search_test contains unit tests for Search: validation order,
// reference scenarios, optimality of A* against Dijkstra, determinism,
// path contiguity and the safeguards (expansion limit, cancellation).
package search_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/search"
)

var modes = []search.Mode{search.ModeAStar, search.ModeDijkstra}

// lineWithIsland builds A(0,0)–B(1,0)–C(2,0) plus an unconnected D(5,5).
func lineWithIsland(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Build([]core.Node{
		{ID: "A", Position: orb.Point{0, 0}},
		{ID: "B", Position: orb.Point{1, 0}},
		{ID: "C", Position: orb.Point{2, 0}},
		{ID: "D", Position: orb.Point{5, 5}},
	}, []core.Edge{{A: "A", B: "B"}, {A: "B", B: "C"}})
	require.NoError(t, err)
	return g
}

// requireContiguous checks that consecutive nodes are adjacent and that
// Positions mirror the node positions.
func requireContiguous(t *testing.T, g *core.Graph, res search.Result) {
	t.Helper()
	require.Len(t, res.Positions, len(res.Nodes))
	for i, id := range res.Nodes {
		n, err := g.Node(id)
		require.NoError(t, err)
		assert.Equal(t, n.Position, res.Positions[i])
		if i > 0 {
			assert.True(t, g.HasEdge(res.Nodes[i-1], id), "%s–%s not adjacent", res.Nodes[i-1], id)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := lineWithIsland(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		g           *core.Graph
		start, goal string
		err         error
	}{
		{"EmptyStart", g, "", "C", search.ErrEmptyNode},
		{"EmptyGoal", g, "A", "", search.ErrEmptyNode},
		{"EmptyBeatsNilGraph", nil, "", "C", search.ErrEmptyNode},
		{"NilGraph", nil, "A", "C", search.ErrNilGraph},
		{"UnknownStart", g, "Z", "C", search.ErrNodeNotFound},
		{"UnknownGoal", g, "A", "Z", search.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.Search(ctx, tc.g, tc.start, tc.goal)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestSearch_ScenarioLine(t *testing.T) {
	g := lineWithIsland(t)
	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			res, err := search.Search(context.Background(), g, "A", "C", search.WithMode(m))
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, res.Nodes)
			assert.InDelta(t, 2.0, res.Cost, 1e-9)
			assert.Equal(t, m, res.Mode)
			requireContiguous(t, g, res)
		})
	}
}

func TestSearch_ScenarioUnreachable(t *testing.T) {
	g := lineWithIsland(t)
	for _, m := range modes {
		_, err := search.Search(context.Background(), g, "A", "D", search.WithMode(m))
		assert.ErrorIs(t, err, search.ErrPathNotFound, m.String())
	}
}

// TestSearch_ScenarioGrid checks the exact A* path on a 2×2-cell lattice.
func TestSearch_ScenarioGrid(t *testing.T) {
	g, err := builder.Grid(2, 2, 1)
	require.NoError(t, err)

	res, err := search.Search(context.Background(), g, "0,0", "2,2")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "2,0", "2,1", "2,2"}, res.Nodes)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
	requireContiguous(t, g, res)

	res, err = search.Search(context.Background(), g, "0,0", "2,2", search.WithMode(search.ModeDijkstra))
	require.NoError(t, err)
	assert.Len(t, res.Nodes, 5, "Manhattan-optimal path has 4 edges")
	requireContiguous(t, g, res)
}

// TestSearch_GridTieOrder pins which of the equal-cost lattice routes wins:
// neighbours are admitted left, right, down, up, so the top row is walked
// before the right column.
func TestSearch_GridTieOrder(t *testing.T) {
	g, err := builder.Grid(2, 2, 1)
	require.NoError(t, err)

	res, err := search.Search(context.Background(), g, "0,2", "2,0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0,2", "1,2", "2,2", "2,1", "2,0"}, res.Nodes)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
	requireContiguous(t, g, res)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := lineWithIsland(t)
	res, err := search.Search(context.Background(), g, "D", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, res.Nodes)
	assert.Equal(t, orb.LineString{{5, 5}}, res.Positions)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Expanded)
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// tableMetric charges per-edge costs from a table keyed by endpoint X
// coordinates and estimates nothing.
type tableMetric map[[2]float64]float64

func (m tableMetric) Cost(a, b orb.Point) float64 {
	if c, ok := m[[2]float64{a.X(), b.X()}]; ok {
		return c
	}
	return m[[2]float64{b.X(), a.X()}]
}
func (tableMetric) Estimate(_, _ orb.Point) float64 { return 0 }
func (tableMetric) String() string                  { return "table" }

// TestSearch_ImprovesOpenNode forces B to be discovered through an expensive
// edge first and then improved through A.
func TestSearch_ImprovesOpenNode(t *testing.T) {
	metric := tableMetric{{0, 1}: 1, {0, 2}: 10, {1, 2}: 1, {2, 3}: 1}
	g, err := builder.Build([]core.Node{
		{ID: "S", Position: orb.Point{0, 0}},
		{ID: "A", Position: orb.Point{1, 0}},
		{ID: "B", Position: orb.Point{2, 0}},
		{ID: "G", Position: orb.Point{3, 0}},
	}, []core.Edge{{A: "S", B: "A"}, {A: "S", B: "B"}, {A: "A", B: "B"}, {A: "B", B: "G"}},
		builder.WithMetric(metric))
	require.NoError(t, err)

	for _, m := range modes {
		res, err := search.Search(context.Background(), g, "S", "G", search.WithMode(m))
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "A", "B", "G"}, res.Nodes)
		assert.InDelta(t, 3.0, res.Cost, 1e-9)
	}
}

// randomGraph scatters n nodes over a 100×100 square and connects each node
// to a few random others. Some nodes may end up isolated from the rest.
func randomGraph(t *testing.T, rng *rand.Rand, n int) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: fmt.Sprintf("n%d", i), Position: orb.Point{rng.Float64() * 100, rng.Float64() * 100}}
	}
	var edges []core.Edge
	for i := 0; i < n; i++ {
		for k := 0; k < 2; k++ {
			j := rng.Intn(n)
			if j != i {
				edges = append(edges, core.Edge{A: nodes[i].ID, B: nodes[j].ID})
			}
		}
	}
	g, err := builder.Build(nodes, edges)
	require.NoError(t, err)
	return g
}

// TestSearch_AStarMatchesDijkstra compares costs over many random queries.
func TestSearch_AStarMatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ctx := context.Background()
	for round := 0; round < 5; round++ {
		g := randomGraph(t, rng, 60)
		for q := 0; q < 40; q++ {
			s := fmt.Sprintf("n%d", rng.Intn(60))
			d := fmt.Sprintf("n%d", rng.Intn(60))

			a, errA := search.Search(ctx, g, s, d)
			b, errB := search.Search(ctx, g, s, d, search.WithMode(search.ModeDijkstra))
			if errB != nil {
				require.ErrorIs(t, errB, search.ErrPathNotFound)
				require.ErrorIs(t, errA, search.ErrPathNotFound)
				continue
			}
			require.NoError(t, errA)
			assert.InDelta(t, b.Cost, a.Cost, 1e-9, "%s→%s", s, d)
			assert.LessOrEqual(t, a.Expanded, g.NodeCount())
			requireContiguous(t, g, a)
			requireContiguous(t, g, b)
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g, err := builder.Grid(8, 8, 2)
	require.NoError(t, err)

	first, err := search.Search(context.Background(), g, "0,0", "8,8")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := search.Search(context.Background(), g, "0,0", "8,8")
		require.NoError(t, err)
		assert.Equal(t, first.Nodes, again.Nodes)
		assert.Equal(t, first.Expanded, again.Expanded)
	}
}

// ------------------------------------------------------------------------
// 4. Safeguards and options
// ------------------------------------------------------------------------

func TestSearch_MaxExpansions(t *testing.T) {
	g, err := builder.Grid(10, 10, 1)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = search.Search(ctx, g, "0,0", "10,10", search.WithMaxExpansions(3))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)

	res, err := search.Search(ctx, g, "0,0", "10,10", search.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Cost, 1e-9)

	_, err = search.Search(ctx, g, "0,0", "10,10", search.WithMaxExpansions(res.Expanded))
	assert.NoError(t, err, "a bound equal to the needed pops is enough")
}

func TestSearch_ContextCancelled(t *testing.T) {
	g, err := builder.Grid(4, 4, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Search(ctx, g, "0,0", "4,4")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]search.Mode{
		"astar": search.ModeAStar, "A*": search.ModeAStar, " a-star ": search.ModeAStar,
		"Dijkstra": search.ModeDijkstra,
	} {
		got, err := search.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseMode("bfs")
	assert.ErrorIs(t, err, search.ErrUnknownMode)

	assert.Equal(t, "astar", search.ModeAStar.String())
	assert.Equal(t, "dijkstra", search.ModeDijkstra.String())
	assert.Equal(t, "Mode(9)", search.Mode(9).String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { search.WithMaxExpansions(-1) })
	assert.Panics(t, func() { search.WithMode(search.Mode(42)) })
}
