// SPDX-License-Identifier: MIT

// Package pathfinder is the entry point consumers hold on to: it owns the
// current graph snapshot, serves path and waypoint queries against it, and
// swaps it for a new one on Rebuild.
//
// Lifecycle:
//
//	Uninitialized ──Build──▶ Built ──▶ Ready ──Rebuild──▶ Rebuilding ──▶ Ready
//
// Queries before Build fail with ErrUninitialized. Build failures leave the
// PathFinder Uninitialized. Rebuild failures keep the previous snapshot
// serving.
//
// Concurrency: queries share a read lock and run fully in parallel; Build and
// Rebuild take the write lock, so a query never sees a half-built graph and
// queries issued during a rebuild wait for it to finish. State is readable
// without locking. The random-goal generator has its own mutex.
//
// Every snapshot carries connected-component labels (see package bfs), so a
// goal on another island fails with search.ErrPathNotFound without expanding
// a single node.
//
// Snapshot IDs are derived from the topology content, so two processes that
// load the same topology share cache entries. The published graph is frozen;
// mutate a Topology and Rebuild instead.
//
// Ambient concerns are injected, never global:
//
//   - WithLogger(*slog.Logger): structured events; silent by default.
//   - WithRegisterer(prometheus.Registerer): metrics; a private registry by default.
//   - WithTracerProvider(trace.TracerProvider): spans; the otel global by default.
//   - WithCache(pathcache.Cache): memoised explicit-goal searches; off by default.
package pathfinder
