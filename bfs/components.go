// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/waypath/core"

// Components labels every node of g with the index of its connected
// component. Labels follow node insertion order: the component holding the
// first node is 0, the next unlabelled node starts component 1, and so on.
// Returns the labels and the component count.
// Complexity: O(V + E).
func Components(g *core.Graph) (map[string]int, int) {
	if g == nil {
		return map[string]int{}, 0
	}
	nodes := g.Nodes()
	label := make(map[string]int, len(nodes))
	count := 0
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		if _, seen := label[n.ID]; seen {
			continue
		}
		label[n.ID] = count
		queue = append(queue[:0], n.ID)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			// Every queued ID is a node of g, so NeighborIDs cannot fail.
			nbrs, _ := g.NeighborIDs(id)
			for _, nb := range nbrs {
				if _, seen := label[nb]; !seen {
					label[nb] = count
					queue = append(queue, nb)
				}
			}
		}
		count++
	}

	return label, count
}

// Connected reports whether a and b share a component of labels.
// Unknown IDs are never connected.
func Connected(labels map[string]int, a, b string) bool {
	la, okA := labels[a]
	lb, okB := labels[b]
	return okA && okB && la == lb
}
