// SPDX-License-Identifier: MIT

package topology

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
)

// snapshotSpace namespaces content-derived snapshot IDs.
var snapshotSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/waypath/topology"))

var (
	// ErrUnsupportedGeometry indicates a GeoJSON geometry other than Point,
	// LineString or MultiLineString.
	ErrUnsupportedGeometry = errors.New("topology: unsupported geometry")
	// ErrMissingNodeID indicates a Point without an ID, or a LineString with
	// only one of its "from"/"to" properties.
	ErrMissingNodeID = errors.New("topology: missing node id")
	// ErrAmbiguousTopology indicates a Topology that sets both Grid and
	// Nodes/Edges.
	ErrAmbiguousTopology = errors.New("topology: both grid and node list given")
)

// GridSpec is lattice geometry: Columns×Rows cells of CellSize.
type GridSpec struct {
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	CellSize float64 `json:"cell_size"`
}

// Topology is an immutable snapshot of authored navigation input.
// Exactly one of Grid or Nodes/Edges is meaningful.
type Topology struct {
	Nodes []core.Node
	Edges []core.Edge
	Grid  *GridSpec
}

// IsGrid reports whether t describes a lattice.
func (t Topology) IsGrid() bool { return t.Grid != nil }

// Validate rejects a Topology that mixes both modes.
// Size and reference checks are left to the builder.
func (t Topology) Validate() error {
	if t.Grid != nil && (len(t.Nodes) > 0 || len(t.Edges) > 0) {
		return ErrAmbiguousTopology
	}
	return nil
}

// SnapshotID derives a name-based (SHA-1) UUID from t's content: equal
// topologies yield equal IDs in every process, so caches keyed by the
// graph ID are shared between them. Node and edge order is significant,
// as it is for the built graph.
func (t Topology) SnapshotID() uuid.UUID {
	var buf bytes.Buffer
	if t.Grid != nil {
		fmt.Fprintf(&buf, "grid %d %d %v\n", t.Grid.Columns, t.Grid.Rows, t.Grid.CellSize)
	}
	for _, n := range t.Nodes {
		fmt.Fprintf(&buf, "node %q %v %v\n", n.ID, n.Position.X(), n.Position.Y())
	}
	for _, e := range t.Edges {
		fmt.Fprintf(&buf, "edge %q %q\n", e.A, e.B)
	}
	return uuid.NewSHA1(snapshotSpace, buf.Bytes())
}

// Build turns t into a graph with builder.Grid or builder.Build.
func (t Topology) Build(opts ...builder.BuilderOption) (*core.Graph, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", builder.ErrConfiguration, err)
	}
	if t.IsGrid() {
		return builder.Grid(t.Grid.Columns, t.Grid.Rows, t.Grid.CellSize, opts...)
	}
	return builder.Build(t.Nodes, t.Edges, opts...)
}
