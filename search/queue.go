// SPDX-License-Identifier: MIT

package search

import "github.com/paulmach/orb"

// entry is the per-node search record. It lives in the open heap until popped,
// then stays in the seen map with closed = true.
type entry struct {
	id     string
	pos    orb.Point
	g      float64 // cost from start
	h      float64 // estimate to goal (0 for Dijkstra)
	seq    uint64  // admission order; fixed at first admission
	parent *entry
	closed bool
	index  int // heap position, -1 once popped
}

func (e *entry) f() float64 { return e.g + e.h }

// openSet is a min-heap of *entry ordered by (f, h, seq).
// It implements container/heap.Interface and keeps entry.index current so
// that an improved entry can be re-ordered in place with heap.Fix.
type openSet []*entry

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	a, b := q[i], q[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x (an *entry) to the heap. Called by heap.Push.
func (q *openSet) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
