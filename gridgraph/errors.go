// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates columns or rows below 1.
	ErrBadDimensions = errors.New("gridgraph: columns and rows must be at least 1")
	// ErrBadCellSize indicates a cell size that is not a positive finite number.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive and finite")
	// ErrBadNodeID indicates a string that is not a lattice node ID "i,j".
	ErrBadNodeID = errors.New("gridgraph: malformed lattice node ID")
	// ErrBadPosition indicates a world position with a NaN coordinate.
	ErrBadPosition = errors.New("gridgraph: position is not a number")
)
