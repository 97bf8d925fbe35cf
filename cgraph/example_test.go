package cgraph_test

import (
	"fmt"

	"github.com/tanakalab/csar/cgraph"
)

// ExampleGraph_MaximumSpanningTree mirrors spec.md §8 scenario S3: a
// triangle with weights 1, 2, 3 on edges (0,1), (1,2), (0,2). The MST keeps
// the two heaviest edges, dropping edge 0.
func ExampleGraph_MaximumSpanningTree() {
	g := cgraph.FromEdges([]cgraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})

	tree, err := g.MaximumSpanningTree([]float64{1, 2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tree)
	// Output: [2 1]
}
