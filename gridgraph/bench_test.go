// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/gridgraph"
)

// BenchmarkToCoreGraph measures materialising a 200×200-cell lattice.
// Complexity: O(C×R)
func BenchmarkToCoreGraph(b *testing.B) {
	l, err := gridgraph.NewLattice(200, 200, 1)
	if err != nil {
		b.Fatalf("setup NewLattice failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.ToCoreGraph(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSnap measures snapping a world position onto the lattice.
func BenchmarkSnap(b *testing.B) {
	l, _ := gridgraph.NewLattice(200, 200, 0.5)
	p := orb.Point{37.3, 81.9}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = l.Snap(p)
	}
}
