// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/waypath/core"
)

func TestEuclidean(t *testing.T) {
	m := core.Euclidean{}
	a, b := orb.Point{0, 0}, orb.Point{3, 4}
	assert.InDelta(t, 5.0, m.Cost(a, b), 1e-12)
	assert.InDelta(t, 5.0, m.Estimate(a, b), 1e-12)
	assert.Equal(t, 0.0, m.Cost(a, a))
}

func TestLattice(t *testing.T) {
	m := core.Lattice{CellSize: 10}
	a, b := orb.Point{0, 0}, orb.Point{20, 30}
	assert.Equal(t, 1.0, m.Cost(a, b))
	assert.InDelta(t, 5.0, m.Estimate(a, b), 1e-12)

	// Degenerate cell size degrades to an always-admissible zero estimate.
	assert.Equal(t, 0.0, core.Lattice{}.Estimate(a, b))
}
