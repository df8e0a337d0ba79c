// SPDX-License-Identifier: MIT

package waypoint

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/core"
)

// ErrEmptyIndex indicates an attempt to index a graph without nodes.
var ErrEmptyIndex = errors.New("waypoint: graph has no nodes")

const (
	// R-tree fan-out (min, max entries per node).
	treeMinChildren = 4
	treeMaxChildren = 16
	// pad inflates degenerate (zero-area) rectangles so rtreego accepts them.
	pad = 1e-9
)

// nodeEntry is a node stored in the point tree.
type nodeEntry struct {
	order int
	node  core.Node
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.rect }

// Index is an immutable spatial index over one graph snapshot.
type Index struct {
	nodes    []core.Node
	points   *rtreego.Rtree
	segments *rtreego.Rtree // nil when the graph has no edges
}

// NewIndex bulk-loads the node positions and edge segments of g.
// Returns ErrEmptyIndex if g is nil or has no nodes.
// Complexity: O((V + E) log(V + E)).
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, ErrEmptyIndex
	}

	nodes := g.Nodes()
	objs := make([]rtreego.Spatial, 0, len(nodes))
	for i, n := range nodes {
		rect, err := toRect(n.Position.Bound().Pad(pad))
		if err != nil {
			return nil, fmt.Errorf("waypoint: node %q: %w", n.ID, err)
		}
		objs = append(objs, &nodeEntry{order: i, node: n, rect: rect})
	}

	idx := &Index{
		nodes:  nodes,
		points: rtreego.NewTree(2, treeMinChildren, treeMaxChildren, objs...),
	}

	segs, err := newSegmentTree(g)
	if err != nil {
		return nil, err
	}
	idx.segments = segs

	return idx, nil
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int { return len(x.nodes) }

// Nearest returns the node closest to p by Euclidean distance.
// Among equidistant nodes the one inserted first wins.
// Complexity: O(log V + k), k = candidates inside the refinement box.
func (x *Index) Nearest(p orb.Point) core.Node {
	probe, ok := x.points.NearestNeighbor(rtreego.Point{p.X(), p.Y()}).(*nodeEntry)
	if !ok {
		// Unreachable for a non-empty tree; fall back to the scan.
		return x.scanNearest(p)
	}

	// Every node at least as close as the probe lies inside this box.
	d := planar.Distance(p, probe.node.Position) + 2*pad
	box, err := toRect(p.Bound().Pad(d))
	if err != nil {
		return x.scanNearest(p)
	}

	best := probe
	bestDist := planar.DistanceSquared(p, probe.node.Position)
	for _, s := range x.points.SearchIntersect(box) {
		e := s.(*nodeEntry)
		dd := planar.DistanceSquared(p, e.node.Position)
		if dd < bestDist || (dd == bestDist && e.order < best.order) {
			best, bestDist = e, dd
		}
	}

	return best.node
}

// scanNearest is the reference linear scan: strict < keeps the first minimum.
func (x *Index) scanNearest(p orb.Point) core.Node {
	best := x.nodes[0]
	bestDist := planar.DistanceSquared(p, best.Position)
	for _, n := range x.nodes[1:] {
		if dd := planar.DistanceSquared(p, n.Position); dd < bestDist {
			best, bestDist = n, dd
		}
	}
	return best
}

// Random draws a node with rng and, when the draw is the node whose ID equals
// excluding, returns the next node in insertion order (wrapping around).
// A single-node index returns that node even if it is excluded.
// rng must not be shared with other goroutines without synchronisation.
func (x *Index) Random(excluding string, rng *rand.Rand) core.Node {
	n := len(x.nodes)
	i := rng.Intn(n)
	if x.nodes[i].ID == excluding {
		i = (i + 1) % n
	}
	return x.nodes[i]
}

// Node returns the i-th node in insertion order.
func (x *Index) Node(i int) (core.Node, error) {
	if i < 0 || i >= len(x.nodes) {
		return core.Node{}, fmt.Errorf("waypoint: node index %d out of range [0,%d)", i, len(x.nodes))
	}
	return x.nodes[i], nil
}

// toRect converts an orb.Bound into an rtreego rectangle.
func toRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()},
	)
}
