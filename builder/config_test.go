// SPDX-License-Identifier: MIT

// Package builder contains unit tests for builderConfig resolution.
package builder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/waypath/core"
)

// TestNewBuilderConfig_Defaults checks the documented deterministic defaults.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.metric)
	assert.Equal(t, "w7", cfg.idFn(7))
	assert.Equal(t, uuid.Nil, cfg.snapshotID)
	assert.Equal(t, DefaultMergeTolerance, cfg.mergeTolerance)
	assert.Empty(t, cfg.graphOptions(), "defaults forward nothing to core")
}

// TestNewBuilderConfig_LastWins verifies options apply in order.
func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	assert.Equal(t, "AB", cfg.idFn(27))

	cfg = newBuilderConfig(WithMetric(core.Lattice{CellSize: 1}), WithMetric(core.Euclidean{}))
	assert.Equal(t, core.Euclidean{}, cfg.metric)

	cfg = newBuilderConfig(WithSnapshotID(uuid.New()), WithMergeTolerance(0))
	assert.Len(t, cfg.graphOptions(), 1)
	assert.Zero(t, cfg.mergeTolerance)
}
