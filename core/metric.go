// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Metric is the cost model of a Graph.
//
// Cost returns the traversal cost of an edge between two adjacent positions.
// Estimate returns a heuristic for the remaining cost between any two
// positions; it must never exceed the true shortest-path cost under Cost.
type Metric interface {
	Cost(a, b orb.Point) float64
	Estimate(a, b orb.Point) float64
	String() string
}

// Euclidean charges the planar distance between endpoints.
// The straight-line distance is a lower bound on any path, so the estimate is
// admissible.
type Euclidean struct{}

// Cost returns the planar distance between a and b.
func (Euclidean) Cost(a, b orb.Point) float64 { return planar.Distance(a, b) }

// Estimate returns the planar distance between a and b.
func (Euclidean) Estimate(a, b orb.Point) float64 { return planar.Distance(a, b) }

// String implements fmt.Stringer.
func (Euclidean) String() string { return "euclidean" }

// Lattice charges one unit per step on an axis-aligned lattice whose spacing
// is CellSize. Estimate is the Manhattan distance measured in steps.
type Lattice struct {
	CellSize float64
}

// Cost returns 1 for every edge.
func (Lattice) Cost(_, _ orb.Point) float64 { return 1 }

// Estimate returns (|Δx| + |Δy|) / CellSize, or 0 when CellSize is not positive.
func (l Lattice) Estimate(a, b orb.Point) float64 {
	if l.CellSize <= 0 {
		return 0
	}
	return (math.Abs(a.X()-b.X()) + math.Abs(a.Y()-b.Y())) / l.CellSize
}

// String implements fmt.Stringer.
func (Lattice) String() string { return "lattice" }
