// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return errors.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/katalvlaran/waypath/core"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithMetric sets the cost model of the produced graph.
// Panics on nil.
func WithMetric(m core.Metric) BuilderOption {
	if m == nil {
		panic("builder: WithMetric(nil)")
	}
	return func(c *builderConfig) {
		c.metric = m
	}
}

// WithIDScheme sets the ID generator used by FromSegments for the waypoints
// it discovers. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSnapshotID pins the snapshot ID of the produced graph instead of
// generating a random one (see topology.Topology.SnapshotID for a
// content-derived ID). The zero UUID is rejected with a panic.
func WithSnapshotID(id uuid.UUID) BuilderOption {
	if id == uuid.Nil {
		panic("builder: WithSnapshotID(uuid.Nil)")
	}
	return func(c *builderConfig) {
		c.snapshotID = id
	}
}

// WithMergeTolerance sets the distance under which two segment endpoints are
// treated as the same waypoint in FromSegments. Panics if eps < 0.
func WithMergeTolerance(eps float64) BuilderOption {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("builder: WithMergeTolerance(%v)", eps))
	}
	return func(c *builderConfig) {
		c.mergeTolerance = eps
	}
}
