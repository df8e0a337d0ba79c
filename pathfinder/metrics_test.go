// SPDX-License-Identifier: MIT

package pathfinder

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/pathcache"
	"github.com/katalvlaran/waypath/search"
	"github.com/katalvlaran/waypath/topology"
)

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	pf := New(WithRegisterer(reg), WithCache(pathcache.NewMemory(8)), WithMaxExpansions(1))

	topo := topology.Topology{
		Nodes: []core.Node{
			{ID: "A", Position: orb.Point{0, 0}},
			{ID: "B", Position: orb.Point{1, 0}},
			{ID: "C", Position: orb.Point{2, 0}},
			{ID: "D", Position: orb.Point{9, 9}},
		},
		Edges: []core.Edge{{A: "A", B: "B"}, {A: "B", B: "C"}},
	}
	require.Error(t, pf.Build(ctx, topology.Topology{}))
	require.NoError(t, pf.Build(ctx, topo))

	_, err := pf.FindPath(ctx, "A", "C", search.WithMaxExpansions(0))
	require.NoError(t, err)
	_, err = pf.FindPath(ctx, "A", "C", search.WithMaxExpansions(0))
	require.NoError(t, err)
	_, err = pf.FindPath(ctx, "A", "D", search.WithMaxExpansions(0), search.WithMode(search.ModeDijkstra))
	require.ErrorIs(t, err, search.ErrPathNotFound)
	_, err = pf.FindPath(ctx, "A", "C", search.WithMode(search.ModeDijkstra))
	require.ErrorIs(t, err, search.ErrExpansionLimit)

	m := pf.metrics
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("astar", resultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("dijkstra", resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("dijkstra", resultLimit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.builds.WithLabelValues(buildSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.builds.WithLabelValues(buildFailure)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.nodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.components))

	n, err := testutil.GatherAndCount(reg, "waypath_path_search_seconds", "waypath_path_expanded_nodes")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "two search-duration series plus the expansion histogram")
}

// TestMetrics_PrivateRegistries lets two PathFinders coexist without a
// duplicate-registration panic.
func TestMetrics_PrivateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, search.ModeAStar, cfg.mode)
	assert.Zero(t, cfg.maxExpansions)
	assert.NotNil(t, cfg.rng)
	assert.NotNil(t, cfg.logger)
	assert.NotNil(t, cfg.registerer)
	assert.NotNil(t, cfg.tracer)
	assert.Nil(t, cfg.cache)
}
