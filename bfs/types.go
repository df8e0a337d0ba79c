// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behaviour via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customise BFS execution.
type Options struct {
	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int
}

// DefaultOptions returns Options with no depth limit and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS. Panics on nil fn.
func WithOnVisit(fn func(id string, depth int) error) Option {
	if fn == nil {
		panic("bfs: WithOnVisit(nil)")
	}
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth stops the search after depth d hops. 0 means no limit.
// Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("bfs: WithMaxDepth(%d)", d))
	}
	return func(o *Options) { o.MaxDepth = d }
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop count from the start.
type Result struct {
	Order []string
	Depth map[string]int
}
