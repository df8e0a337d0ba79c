// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/builder"
)

// BenchmarkBFS_Grid measures BFS over a 100×100 lattice (10 201 nodes).
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.Grid(100, 100, 1)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(ctx, g, "0,0")
	}
}

// BenchmarkComponents measures component labelling on the same lattice.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.Grid(100, 100, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
