// SPDX-License-Identifier: MIT

package waypoint

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/core"
)

// segmentEntry is one undirected edge stored in the segment tree.
type segmentEntry struct {
	order int
	a, b  orb.Point
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *segmentEntry) Bounds() rtreego.Rect { return e.rect }

// newSegmentTree indexes every edge of g as a segment. Returns nil, nil for
// a graph without edges.
func newSegmentTree(g *core.Graph) (*rtreego.Rtree, error) {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, nil
	}

	objs := make([]rtreego.Spatial, 0, len(edges))
	for i, e := range edges {
		na, err := g.Node(e.A)
		if err != nil {
			return nil, fmt.Errorf("waypoint: edge %d: %w", i, err)
		}
		nb, err := g.Node(e.B)
		if err != nil {
			return nil, fmt.Errorf("waypoint: edge %d: %w", i, err)
		}
		rect, err := toRect(orb.LineString{na.Position, nb.Position}.Bound().Pad(pad))
		if err != nil {
			return nil, fmt.Errorf("waypoint: edge %d: %w", i, err)
		}
		objs = append(objs, &segmentEntry{order: i, a: na.Position, b: nb.Position, rect: rect})
	}

	return rtreego.NewTree(2, treeMinChildren, treeMaxChildren, objs...), nil
}

// closestOnSegment projects p onto segment ab, clamped to the endpoints.
func closestOnSegment(a, b, p orb.Point) orb.Point {
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return a
	}
	t := ((p.X()-a.X())*dx + (p.Y()-a.Y())*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return orb.Point{a.X() + t*dx, a.Y() + t*dy}
}

// NearestPointOnPath returns the point on any edge segment closest to p.
// Ties go to the edge inserted first. For a graph without edges the nearest
// node position is returned.
// Complexity: O(log E + k).
func (x *Index) NearestPointOnPath(p orb.Point) orb.Point {
	if x.segments == nil {
		return x.Nearest(p).Position
	}

	// The probe's true distance bounds the search box: any closer segment
	// must have its bounding box inside it.
	probe := x.segments.NearestNeighbor(rtreego.Point{p.X(), p.Y()}).(*segmentEntry)
	d := planar.DistanceFromSegment(probe.a, probe.b, p) + 2*pad
	box, err := toRect(p.Bound().Pad(d))
	if err != nil {
		return closestOnSegment(probe.a, probe.b, p)
	}

	best := probe
	bestDist := planar.DistanceFromSegmentSquared(probe.a, probe.b, p)
	for _, s := range x.segments.SearchIntersect(box) {
		e := s.(*segmentEntry)
		dd := planar.DistanceFromSegmentSquared(e.a, e.b, p)
		if dd < bestDist || (dd == bestDist && e.order < best.order) {
			best, bestDist = e, dd
		}
	}

	return closestOnSegment(best.a, best.b, p)
}

// OnPath reports whether p lies within tolerance of any edge segment.
// A negative tolerance is treated as zero.
func (x *Index) OnPath(p orb.Point, tolerance float64) bool {
	if x.segments == nil {
		return false
	}
	tolerance = math.Max(tolerance, 0)

	box, err := toRect(p.Bound().Pad(tolerance + pad))
	if err != nil {
		return false
	}
	for _, s := range x.segments.SearchIntersect(box) {
		e := s.(*segmentEntry)
		if planar.DistanceFromSegment(e.a, e.b, p) <= tolerance {
			return true
		}
	}
	return false
}
