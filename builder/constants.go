// SPDX-License-Identifier: MIT

package builder

// Constructor names, used to prefix errors.
const (
	// MethodBuild is the canonical name for the Build constructor.
	MethodBuild = "Build"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodFromSegments is the canonical name for the FromSegments constructor.
	MethodFromSegments = "FromSegments"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

const (
	// MinNodes is the smallest node count a navigation graph may have.
	MinNodes = 2
	// MinEdges is the smallest edge count a navigation graph may have.
	MinEdges = 1
	// WaypointIDPrefix prefixes IDs generated by WaypointIDFn.
	WaypointIDPrefix = "w"
	// DefaultMergeTolerance is the endpoint merge distance used by FromSegments.
	DefaultMergeTolerance = 1e-5
)
