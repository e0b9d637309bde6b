package genealogy_test

import (
	"fmt"

	"github.com/katalvlaran/coalescence/genealogy"
	"github.com/katalvlaran/coalescence/partition"
)

// ExampleGenealogy walks a fixed three-individual history through every
// derived statistic and the explicit ancestry tree.
func ExampleGenealogy() {
	// 1. Replay a fixed history: (1,2) merge after 0.3, (0,1) after 0.5.
	state := partition.New(3)
	path := []*partition.Partition{state.Clone()}
	steps := [][2]int{{1, 2}, {0, 1}}
	for _, pair := range steps {
		state.Union(pair[0], pair[1])
		path = append(path, state.Clone())
	}
	g := genealogy.New(path, steps, []float64{0.3, 0.5})

	// 2. Scalar statistics.
	fmt.Printf("depth: %.1f\n", g.Depth())
	fmt.Printf("length: %.1f\n", g.Length()) // 3·0.3 + 2·0.5
	fmt.Printf("divergence(1,2): %.1f\n", g.Divergence(1, 2))
	fmt.Printf("divergence(0,2): %.1f\n", g.Divergence(0, 2))

	// 3. The explicit tree: 2n−1 nodes, 2(n−1) edges.
	tree := g.Tree()
	fmt.Printf("tree: %d nodes, %d edges\n", tree.NodeCount(), tree.EdgeCount())
	// Output:
	// depth: 0.8
	// length: 1.9
	// divergence(1,2): 0.6
	// divergence(0,2): 1.6
	// tree: 5 nodes, 4 edges
}
