// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// hop is one queued node and its distance in edges from the start.
type hop struct {
	id    string
	depth int
}

// walker holds the per-call traversal state. res.Depth doubles as the
// visited set.
type walker struct {
	g     *core.Graph
	opts  Options
	ctx   context.Context
	queue []hop
	res   *Result
}

// BFS runs breadth-first search on g from start, ignoring edge costs.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, ctx.Err() on
// cancellation, or a wrapped OnVisit error. On error the partial Result is
// still returned.
func BFS(ctx context.Context, g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	size := g.NodeCount()
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   ctx,
		queue: make([]hop, 0, size),
		res: &Result{
			Order: make([]string, 0, size),
			Depth: make(map[string]int, size),
		},
	}
	w.push(start, 0)

	return w.res, w.run()
}

func (w *walker) push(id string, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, hop{id: id, depth: depth})
}

// run drains the queue front to back; head advances instead of reslicing.
func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[head]

		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.g.NeighborIDs(cur.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", cur.id, err)
		}
		for _, nb := range nbrs {
			if _, seen := w.res.Depth[nb]; !seen {
				w.push(nb, cur.depth+1)
			}
		}
	}
	return nil
}
