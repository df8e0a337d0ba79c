// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by Search.
var (
	// ErrEmptyNode indicates an empty start or goal ID.
	ErrEmptyNode = errors.New("search: start or goal ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates that start or goal does not exist in the graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrPathNotFound indicates that goal is unreachable from start.
	// It is an ordinary, recoverable outcome: callers branch with errors.Is.
	ErrPathNotFound = errors.New("search: no path between start and goal")

	// ErrExpansionLimit indicates that WithMaxExpansions stopped the search
	// before the goal was reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrUnknownMode indicates a string that ParseMode does not recognise.
	ErrUnknownMode = errors.New("search: unknown mode")
)

// Mode selects the search strategy.
//
// ModeAStar    – ranks open nodes by g + h, h = Metric.Estimate(node, goal).
// ModeDijkstra – the same loop with h ≡ 0 (uniform-cost search).
type Mode int

const (
	// ModeAStar is heuristic-guided best-first search. Default.
	ModeAStar Mode = iota

	// ModeDijkstra is uniform-cost search.
	ModeDijkstra
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeAStar:
		return "astar"
	case ModeDijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText encodes m by name, so JSON carries "astar"/"dijkstra".
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeAStar && m != ModeDijkstra {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts every spelling ParseMode does.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode maps "astar" (also "a*", "a-star") and "dijkstra" to a Mode,
// ignoring case and surrounding spaces. Returns ErrUnknownMode otherwise.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return ModeAStar, nil
	case "dijkstra":
		return ModeDijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options configures a single Search call.
//
// Mode          – ModeAStar (default) or ModeDijkstra.
// MaxExpansions – upper bound on popped nodes; 0 means unlimited.
type Options struct {
	Mode          Mode
	MaxExpansions int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMode selects the search strategy. Panics on an undefined Mode.
func WithMode(m Mode) Option {
	if m != ModeAStar && m != ModeDijkstra {
		panic(fmt.Sprintf("search: WithMode(%d)", int(m)))
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// WithMaxExpansions bounds the number of nodes popped from the open set.
// Zero disables the bound. Panics if n < 0.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("search: WithMaxExpansions(%d)", n))
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// DefaultOptions returns A* with no expansion bound.
func DefaultOptions() Options {
	return Options{Mode: ModeAStar}
}

// Result is a found path.
//
// Nodes holds the IDs from start to goal inclusive; consecutive entries are
// always adjacent in the graph. Positions mirrors Nodes as a polyline.
// Cost is the sum of Metric.Cost over the traversed edges.
// Expanded counts nodes popped from the open set.
type Result struct {
	Nodes     []string
	Positions orb.LineString
	Cost      float64
	Expanded  int
	Mode      Mode
}
