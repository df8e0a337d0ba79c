// SPDX-License-Identifier: MIT

package search

import (
	"container/heap"
	"context"
	"fmt"
	"slices"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/core"
)

// Search finds a minimum-cost path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. start and goal must be non-empty (ErrEmptyNode).
//  2. g must be non-nil (ErrNilGraph).
//  3. start and goal must exist in g (ErrNodeNotFound).
//
// Behaviour:
//
//   - The open set is a binary heap ordered by (f, h, admission order), where
//     f = g + h. Admission order is fixed the first time a node enters the
//     open set; improving an open node re-orders it but keeps its place among
//     equals. Identical inputs therefore always produce identical paths.
//   - The first time goal is popped its cost is minimal: the Metric's
//     Estimate must never exceed the true remaining cost.
//   - start == goal returns [start] with cost 0.
//   - An exhausted open set returns ErrPathNotFound.
//   - ctx is checked once per pop; cancellation returns ctx.Err().
//   - WithMaxExpansions(n) returns ErrExpansionLimit once n nodes have been
//     popped without reaching goal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Search(ctx context.Context, g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	// 1) Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validation
	if start == "" || goal == "" {
		return Result{}, ErrEmptyNode
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	startNode, err := g.Node(start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	goalNode, err := g.Node(goal)
	if err != nil {
		return Result{}, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 3) Trivial path
	if start == goal {
		return Result{
			Nodes:     []string{start},
			Positions: orb.LineString{startNode.Position},
			Mode:      cfg.Mode,
		}, nil
	}

	r := &runner{
		ctx:     ctx,
		g:       g,
		metric:  g.Metric(),
		options: cfg,
		goal:    goalNode,
		seen:    make(map[string]*entry),
	}

	return r.run(startNode)
}

// runner holds the mutable state of one Search call.
type runner struct {
	ctx     context.Context
	g       *core.Graph
	metric  core.Metric
	options Options
	goal    core.Node

	open     openSet
	seen     map[string]*entry
	nextSeq  uint64
	expanded int
}

// estimate returns the heuristic for pos, or 0 in Dijkstra mode.
func (r *runner) estimate(pos orb.Point) float64 {
	if r.options.Mode == ModeDijkstra {
		return 0
	}
	return r.metric.Estimate(pos, r.goal.Position)
}

// admit pushes a new entry and assigns its admission sequence.
func (r *runner) admit(e *entry) {
	e.seq = r.nextSeq
	r.nextSeq++
	r.seen[e.id] = e
	heap.Push(&r.open, e)
}

func (r *runner) run(start core.Node) (Result, error) {
	r.admit(&entry{id: start.ID, pos: start.Position, h: r.estimate(start.Position)})

	for r.open.Len() > 0 {
		if err := r.ctx.Err(); err != nil {
			return Result{}, err
		}

		// 1) Pop the best open node and close it.
		cur := heap.Pop(&r.open).(*entry)
		cur.closed = true
		r.expanded++

		// 2) Goal reached: its g is final.
		if cur.id == r.goal.ID {
			return r.reconstruct(cur), nil
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{}, fmt.Errorf("%w: %d nodes expanded", ErrExpansionLimit, r.expanded)
		}

		// 3) Relax neighbours.
		if err := r.relax(cur); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("%w: %q → %q", ErrPathNotFound, start.ID, r.goal.ID)
}

// relax examines every neighbour of cur that is not closed and records a
// strictly cheaper route to it.
func (r *runner) relax(cur *entry) error {
	neighbors, err := r.g.Neighbors(cur.id)
	if err != nil {
		return fmt.Errorf("search: neighbours of %q: %w", cur.id, err)
	}

	for _, nb := range neighbors {
		e, ok := r.seen[nb.ID]
		if ok && e.closed {
			continue
		}
		tentative := cur.g + r.metric.Cost(cur.pos, nb.Position)
		if !ok {
			r.admit(&entry{
				id:     nb.ID,
				pos:    nb.Position,
				g:      tentative,
				h:      r.estimate(nb.Position),
				parent: cur,
			})
			continue
		}
		if tentative < e.g {
			e.g = tentative
			e.parent = cur
			heap.Fix(&r.open, e.index)
		}
	}

	return nil
}

// reconstruct walks parent links from goal back to start.
func (r *runner) reconstruct(goal *entry) Result {
	var ids []string
	var pts orb.LineString
	for e := goal; e != nil; e = e.parent {
		ids = append(ids, e.id)
		pts = append(pts, e.pos)
	}
	slices.Reverse(ids)
	slices.Reverse(pts)

	return Result{
		Nodes:     ids,
		Positions: pts,
		Cost:      goal.g,
		Expanded:  r.expanded,
		Mode:      r.options.Mode,
	}
}
