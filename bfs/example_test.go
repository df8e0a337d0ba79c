// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
)

// ExampleBFS shows hop layering on a 2×2 lattice (nine nodes).
func ExampleBFS() {
	g, _ := builder.Grid(2, 2, 1)

	res, err := bfs.BFS(context.Background(), g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["2,2"])
	// Output:
	// [0,0 1,0 0,1 2,0 1,1 0,2 2,1 1,2 2,2]
	// 4
}

// ExampleComponents labels the islands of a route network.
func ExampleComponents() {
	g, err := builder.Build(
		[]core.Node{
			{ID: "A", Position: orb.Point{0, 0}},
			{ID: "B", Position: orb.Point{1, 0}},
			{ID: "C", Position: orb.Point{5, 5}},
			{ID: "D", Position: orb.Point{6, 5}},
		},
		[]core.Edge{{A: "A", B: "B"}, {A: "C", B: "D"}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	labels, n := bfs.Components(g)
	fmt.Println(n, labels["B"], labels["D"])
	fmt.Println(bfs.Connected(labels, "A", "D"))
	// Output:
	// 2 0 1
	// false
}
