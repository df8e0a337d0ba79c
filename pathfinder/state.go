// SPDX-License-Identifier: MIT

package pathfinder

import "fmt"

// State is the lifecycle phase of a PathFinder.
type State int32

const (
	// StateUninitialized means no graph has been built yet.
	StateUninitialized State = iota
	// StateBuilt means the graph exists but its spatial index is not ready.
	StateBuilt
	// StateReady means queries are served.
	StateReady
	// StateRebuilding means a replacement snapshot is being built.
	StateRebuilding
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilt:
		return "built"
	case StateReady:
		return "ready"
	case StateRebuilding:
		return "rebuilding"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
