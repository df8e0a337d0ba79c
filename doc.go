// SPDX-License-Identifier: MIT

// Package waypath finds routes for agents moving across a navigation graph:
// authored waypoint networks or implicit grids, searched with A* or Dijkstra.
//
// What is inside?
//
//	core/        - Graph, Node, Edge and the Metric (cost + heuristic) abstraction
//	gridgraph/   - lattice geometry, "i,j" node IDs, world↔grid snapping
//	builder/     - one-shot graph construction from lists, chains, segments, grids
//	topology/    - authored input as a value; GeoJSON decode/encode
//	search/      - switchable A*/Dijkstra over an indexed binary heap
//	waypoint/    - R-tree nearest-node, random waypoint, nearest point on path
//	pathcache/   - in-memory and Redis result caches keyed by snapshot
//	pathfinder/  - the facade: Build/Rebuild lifecycle, RW-locked queries,
//	               slog logging, Prometheus metrics, OpenTelemetry spans
//	mcpserver/   - PathFinder tools over the Model Context Protocol
//	cmd/waypath/ - CLI: one-shot query or MCP stdio server
//
// Quick ASCII example:
//
//	A───B───C        D
//
//	FindPath(A, C) → [A B C], cost 2
//	FindPath(A, D) → search.ErrPathNotFound
//
// A PathFinder moves Uninitialized → Built → Ready on Build and
// Ready → Rebuilding → Ready on Rebuild. Queries hold a read lock; Rebuild
// swaps the whole snapshot under the write lock, so no query ever sees a
// half-built graph.
package waypath
