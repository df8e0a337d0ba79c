// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w and keep the lower-level core
//     sentinel in the chain (errors.Is(err, core.ErrDuplicateNode) still works).
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates a topology that cannot become a navigation graph:
// fewer than MinNodes nodes, no edges, duplicate or empty node IDs, self edges,
// or invalid grid geometry. It is fatal for initialization.
// Usage: if errors.Is(err, ErrConfiguration) { /* halt startup */ }.
var ErrConfiguration = errors.New("builder: invalid navigation configuration")

// ErrInvalidNodeReference indicates an edge naming a node that was not declared.
// Such edges are reported, never silently skipped.
var ErrInvalidNodeReference = errors.New("builder: edge references unknown node")

// builderErrorf prefixes a wrapped error with the constructor name, giving
// "<Method>: <message>". Every %w verb in format stays visible to errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
