// SPDX-License-Identifier: MIT

package gridgraph

// Lattice describes a (Columns+1)×(Rows+1) grid of navigation nodes spaced
// CellSize apart. Columns and Rows count cells, not nodes: a 2×2 lattice has
// nine nodes at (0..2)·CellSize on each axis. It is immutable once built.
type Lattice struct {
	Columns  int
	Rows     int
	CellSize float64
}
