// SPDX-License-Identifier: MIT

package pathfinder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes, used as the "result" label.
const (
	resultFound     = "found"
	resultNotFound  = "not_found"
	resultLimit     = "limit"
	resultCancelled = "cancelled"
	resultError     = "error"

	buildSuccess = "success"
	buildFailure = "failure"
)

// metrics are per-PathFinder collectors registered on the configured registerer.
type metrics struct {
	requests   *prometheus.CounterVec
	expanded   prometheus.Histogram
	duration   *prometheus.HistogramVec
	builds     *prometheus.CounterVec
	nodes      prometheus.Gauge
	components prometheus.Gauge
	cacheHits  prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waypath_path_requests_total",
			Help: "Path requests by search mode and outcome",
		}, []string{"mode", "result"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_path_expanded_nodes",
			Help:    "Nodes popped from the open set per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waypath_path_search_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}, []string{"mode"}),
		builds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "waypath_graph_builds_total",
			Help: "Graph builds and rebuilds by outcome",
		}, []string{"result"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "waypath_graph_nodes",
			Help: "Nodes in the serving graph snapshot",
		}),
		components: f.NewGauge(prometheus.GaugeOpts{
			Name: "waypath_graph_components",
			Help: "Connected components in the serving graph snapshot",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "waypath_path_cache_hits_total",
			Help: "Path requests answered from the cache",
		}),
	}
}
