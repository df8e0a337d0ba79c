// SPDX-License-Identifier: MIT

// Package builder turns authored topology into validated navigation graphs.
//
// Constructors:
//
//   - Build:        explicit nodes + undirected edges (general mode).
//   - Chain:        nodes linked in declaration order.
//   - FromSegments: line segments whose endpoints become waypoints.
//   - Grid:         a (columns+1)×(rows+1) lattice via gridgraph.
//
// Every constructor returns a fresh *core.Graph or an error; nothing is
// partially built. Invalid configuration (too few nodes, no edges, duplicate
// IDs, self edges, bad grid geometry) wraps ErrConfiguration. Edges naming
// undeclared nodes wrap ErrInvalidNodeReference. The lower-level core or
// gridgraph sentinel always stays in the chain for errors.Is.
//
// Options (BuilderOption) follow the functional-options pattern and panic on
// nonsense input (nil metric, nil ID scheme, negative tolerance):
//
//	WithMetric(core.Metric)      // default: core.Euclidean (core.Lattice for Grid)
//	WithIDScheme(IDFn)           // FromSegments IDs, default "w0","w1",...
//	WithSnapshotID(uuid.UUID)    // pin the graph snapshot ID
//	WithMergeTolerance(float64)  // FromSegments endpoint merge distance
//
// Determinism: identical input and options yield identical node order,
// neighbour order and IDs (the snapshot ID excepted unless pinned).
package builder
