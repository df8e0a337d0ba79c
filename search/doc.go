// SPDX-License-Identifier: MIT

// Package search implements point-to-point shortest-path search over a
// core.Graph with two interchangeable strategies: A* and Dijkstra.
//
// Both strategies share one loop. A node's priority is f = g + h, where g is
// the accumulated Metric.Cost from start and h is Metric.Estimate to the goal
// (A*) or zero (Dijkstra). The open set is a binary heap keyed by
// (f, h, admission order), so among equally promising nodes the one closer to
// the goal wins, and after that the one discovered first. Paths are therefore
// deterministic for a given graph and request.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Options:
//
//   - WithMode(ModeAStar | ModeDijkstra): strategy, default ModeAStar.
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n pops; 0 = no limit.
//
// Errors (sentinel):
//
//   - ErrEmptyNode      start or goal ID is empty.
//   - ErrNilGraph       graph pointer is nil.
//   - ErrNodeNotFound   start or goal is not in the graph.
//   - ErrPathNotFound   goal is unreachable (recoverable).
//   - ErrExpansionLimit the expansion bound was hit.
//   - ctx.Err()         the context was cancelled or timed out.
//
// Example usage:
//
//	res, err := search.Search(ctx, g, "A", "C", search.WithMode(search.ModeDijkstra))
//	if errors.Is(err, search.ErrPathNotFound) {
//	    // pick another goal
//	}
//	fmt.Println(res.Nodes, res.Cost)
package search
