// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
)

// diamond builds A–B–D, A–C–D plus an isolated E.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := bfs.BFS(ctx, nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(ctx, diamond(t), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	assert.Panics(t, func() { bfs.WithMaxDepth(-1) })
	assert.Panics(t, func() { bfs.WithOnVisit(nil) })
}

func TestBFS_DepthsAndOrder(t *testing.T) {
	res, err := bfs.BFS(context.Background(), diamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.NotContains(t, res.Depth, "E")
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.Grid(4, 4, 1)
	require.NoError(t, err)

	res, err := bfs.BFS(context.Background(), g, "0,0", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0", "0,1"}, res.Order)

	var depths []int
	_, err = bfs.BFS(context.Background(), g, "2,2", bfs.WithMaxDepth(2),
		bfs.WithOnVisit(func(_ string, depth int) error {
			depths = append(depths, depth)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2}, depths)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	_, err := bfs.BFS(context.Background(), diamond(t), "A", bfs.WithOnVisit(func(id string, depth int) error {
		seen = append(seen, id)
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(ctx, diamond(t), "A")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	labels, n := bfs.Components(diamond(t))
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "E": 1}, labels)

	assert.True(t, bfs.Connected(labels, "A", "D"))
	assert.False(t, bfs.Connected(labels, "A", "E"))
	assert.False(t, bfs.Connected(labels, "A", "missing"))

	labels, n = bfs.Components(nil)
	assert.Empty(t, labels)
	assert.Zero(t, n)
}
