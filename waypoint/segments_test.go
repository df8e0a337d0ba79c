// SPDX-License-Identifier: MIT

package waypoint_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/waypoint"
)

func TestNearestPointOnPath(t *testing.T) {
	idx, err := waypoint.NewIndex(lShape(t))
	require.NoError(t, err)

	cases := []struct {
		name string
		p    orb.Point
		want orb.Point
	}{
		{"AboveFirstLeg", orb.Point{5, 3}, orb.Point{5, 0}},
		{"RightOfSecondLeg", orb.Point{12, 5}, orb.Point{10, 5}},
		{"BeforeStartClamps", orb.Point{-3, -4}, orb.Point{0, 0}},
		{"PastEndClamps", orb.Point{10, 25}, orb.Point{10, 10}},
		{"OnSegment", orb.Point{10, 7}, orb.Point{10, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := idx.NearestPointOnPath(tc.p)
			assert.InDelta(t, tc.want.X(), got.X(), 1e-9)
			assert.InDelta(t, tc.want.Y(), got.Y(), 1e-9)
		})
	}
}

func TestOnPath(t *testing.T) {
	idx, err := waypoint.NewIndex(lShape(t))
	require.NoError(t, err)

	assert.True(t, idx.OnPath(orb.Point{5, 0}, 0))
	assert.True(t, idx.OnPath(orb.Point{5, 0.05}, 0.1))
	assert.True(t, idx.OnPath(orb.Point{10.05, 5}, 0.1))
	assert.False(t, idx.OnPath(orb.Point{5, 1}, 0.1))
	assert.False(t, idx.OnPath(orb.Point{5, 5}, -1))
}

// TestSegments_NoEdges falls back to node positions.
func TestSegments_NoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "x", Position: orb.Point{3, 4}}))
	idx, err := waypoint.NewIndex(g)
	require.NoError(t, err)

	assert.Equal(t, orb.Point{3, 4}, idx.NearestPointOnPath(orb.Point{0, 0}))
	assert.False(t, idx.OnPath(orb.Point{3, 4}, 1))
}
