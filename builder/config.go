// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • metric         = nil     (core.Euclidean, or core.Lattice for Grid)
//   • idFn           = WaypointIDFn ("w0","w1",...)
//   • snapshotID     = uuid.Nil (core generates one)
//   • mergeTolerance = DefaultMergeTolerance

package builder

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/waypath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Cost model; nil keeps the constructor's natural default.
	metric core.Metric
	// Waypoint ID strategy for FromSegments: index -> ID.
	idFn IDFn
	// Pinned snapshot identity; uuid.Nil means "generate".
	snapshotID uuid.UUID
	// Endpoint merge distance for FromSegments.
	mergeTolerance float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:           WaypointIDFn,
		mergeTolerance: DefaultMergeTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// graphOptions translates the config into core.GraphOption values.
// Only explicitly set knobs are forwarded.
func (c builderConfig) graphOptions() []core.GraphOption {
	var gopts []core.GraphOption
	if c.metric != nil {
		gopts = append(gopts, core.WithMetric(c.metric))
	}
	if c.snapshotID != uuid.Nil {
		gopts = append(gopts, core.WithSnapshotID(c.snapshotID))
	}

	return gopts
}
