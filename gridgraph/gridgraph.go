// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/core"
)

// nodeIDFmt is the fixed, documented lattice ID scheme "i,j".
const nodeIDFmt = "%d,%d"

// NewLattice validates grid geometry and returns a Lattice.
// Returns ErrBadDimensions if columns or rows < 1,
// ErrBadCellSize if cellSize is not a positive finite number.
// Complexity: O(1).
func NewLattice(columns, rows int, cellSize float64) (*Lattice, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: columns=%d rows=%d", ErrBadDimensions, columns, rows)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cellSize)
	}

	return &Lattice{
		Columns:  columns,
		Rows:     rows,
		CellSize: cellSize,
	}, nil
}

// InBounds reports whether lattice coordinate (i,j) exists.
// Both ranges are inclusive: i ∈ [0, Columns], j ∈ [0, Rows].
// Complexity: O(1).
func (l *Lattice) InBounds(i, j int) bool {
	return i >= 0 && i <= l.Columns && j >= 0 && j <= l.Rows
}

// NodeCount returns (Columns+1)×(Rows+1).
func (l *Lattice) NodeCount() int {
	return (l.Columns + 1) * (l.Rows + 1)
}

// NodeID formats the node identifier for lattice coordinate (i,j).
func (l *Lattice) NodeID(i, j int) string {
	return fmt.Sprintf(nodeIDFmt, i, j)
}

// Coordinate parses a node ID produced by NodeID.
// Returns ErrBadNodeID when id is malformed or out of bounds.
func (l *Lattice) Coordinate(id string) (i, j int, err error) {
	is, js, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if i, err = strconv.Atoi(is); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if j, err = strconv.Atoi(js); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	if !l.InBounds(i, j) {
		return 0, 0, fmt.Errorf("%w: %q out of bounds", ErrBadNodeID, id)
	}

	return i, j, nil
}

// WorldPos returns the world position of lattice coordinate (i,j).
// Complexity: O(1).
func (l *Lattice) WorldPos(i, j int) orb.Point {
	return orb.Point{float64(i) * l.CellSize, float64(j) * l.CellSize}
}

// Snap maps a world position to the nearest lattice coordinate.
// Each axis is divided by CellSize, rounded half-to-even and clamped into the
// grid, so positions outside the lattice (infinities included) snap to its
// border. Returns ErrBadPosition if either coordinate is NaN.
// Complexity: O(1).
func (l *Lattice) Snap(p orb.Point) (i, j int, err error) {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadPosition, p)
	}
	return l.snapAxis(p.X(), l.Columns), l.snapAxis(p.Y(), l.Rows), nil
}

// SnapID is Snap followed by NodeID.
func (l *Lattice) SnapID(p orb.Point) (string, error) {
	i, j, err := l.Snap(p)
	if err != nil {
		return "", err
	}
	return l.NodeID(i, j), nil
}

// snapAxis clamps before converting: int() of an out-of-range float is
// implementation-defined.
func (l *Lattice) snapAxis(v float64, hi int) int {
	c := math.RoundToEven(v / l.CellSize)
	return int(math.Max(0, math.Min(float64(hi), c)))
}

// ToCoreGraph converts the Lattice into a *core.Graph.
// Nodes are inserted column by column (i outer, j inner). All horizontal
// edges follow, then all vertical ones, each 4-neighbour pair exactly once;
// neighbours of every node are therefore listed left, right, down, up. The graph uses core.Lattice{CellSize} unless
// opts override the metric.
// Complexity: O(C×R) time, Memory: O(C×R).
func (l *Lattice) ToCoreGraph(opts ...core.GraphOption) (*core.Graph, error) {
	base := []core.GraphOption{core.WithMetric(core.Lattice{CellSize: l.CellSize})}
	g := core.NewGraph(append(base, opts...)...)

	// Add all nodes
	for i := 0; i <= l.Columns; i++ {
		for j := 0; j <= l.Rows; j++ {
			n := core.Node{ID: l.NodeID(i, j), Position: l.WorldPos(i, j)}
			if err := g.AddNode(n); err != nil {
				return nil, fmt.Errorf("gridgraph: AddNode(%s): %w", n.ID, err)
			}
		}
	}
	// Horizontal edges row by row, then vertical edges column by column, so
	// every adjacency list reads left, right, down, up.
	for j := 0; j <= l.Rows; j++ {
		for i := 0; i < l.Columns; i++ {
			if err := l.connect(g, i, j, i+1, j); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i <= l.Columns; i++ {
		for j := 0; j < l.Rows; j++ {
			if err := l.connect(g, i, j, i, j+1); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func (l *Lattice) connect(g *core.Graph, i, j, ni, nj int) error {
	u := l.NodeID(i, j)
	if err := g.AddEdge(u, l.NodeID(ni, nj)); err != nil {
		return fmt.Errorf("gridgraph: AddEdge(%s): %w", u, err)
	}
	return nil
}
