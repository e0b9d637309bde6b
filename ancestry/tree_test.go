// File: ancestry/tree_test.go
package ancestry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// leaf is shorthand for a generation-0 node in tests.
func leaf(i int) Node { return Node{Generation: 0, Lineage: i} }

// TestAddNode verifies insertion and duplicate rejection.
func TestAddNode(t *testing.T) {
	tr := NewTree()
	require.True(t, tr.AddNode(leaf(0)))
	require.False(t, tr.AddNode(leaf(0)), "duplicate insert must report false")
	require.Equal(t, 1, tr.NodeCount())
	require.True(t, tr.HasNode(leaf(0)))
	require.False(t, tr.HasNode(leaf(1)))
}

// TestAddEdge verifies edge insertion and every error condition.
func TestAddEdge(t *testing.T) {
	tr := NewTree()
	tr.AddNode(leaf(0))
	tr.AddNode(leaf(1))
	parent := Node{Generation: 1, Lineage: 0}
	tr.AddNode(parent)

	require.ErrorIs(t, tr.AddEdge(leaf(0), leaf(0), 1.0), ErrLoopEdge)
	require.ErrorIs(t, tr.AddEdge(leaf(0), leaf(7), 1.0), ErrNodeNotFound)
	require.ErrorIs(t, tr.AddEdge(leaf(7), leaf(0), 1.0), ErrNodeNotFound)

	require.NoError(t, tr.AddEdge(parent, leaf(0), 0.25))
	require.NoError(t, tr.AddEdge(parent, leaf(1), 0.25))
	require.ErrorIs(t, tr.AddEdge(leaf(0), parent, 0.5), ErrEdgeExists)

	require.Equal(t, 2, tr.EdgeCount())
	require.True(t, tr.HasEdge(leaf(0), parent), "undirected: both directions visible")

	w, err := tr.Weight(leaf(1), parent)
	require.NoError(t, err)
	require.Equal(t, 0.25, w)
}

// TestWeight_ErrorTaxonomy verifies Weight distinguishes a missing endpoint
// from a missing edge between existing nodes.
func TestWeight_ErrorTaxonomy(t *testing.T) {
	tr := NewTree()
	tr.AddNode(leaf(0))
	tr.AddNode(leaf(1))

	_, err := tr.Weight(leaf(0), leaf(9))
	require.ErrorIs(t, err, ErrNodeNotFound)
	_, err = tr.Weight(leaf(9), leaf(0))
	require.ErrorIs(t, err, ErrNodeNotFound)

	// Both nodes present, never joined.
	_, err = tr.Weight(leaf(0), leaf(1))
	require.ErrorIs(t, err, ErrEdgeNotFound)
}

// TestNodesSorted verifies the (Generation, Lineage) ordering contract.
func TestNodesSorted(t *testing.T) {
	tr := NewTree()
	tr.AddNode(Node{Generation: 2, Lineage: 0})
	tr.AddNode(leaf(3))
	tr.AddNode(leaf(1))
	tr.AddNode(Node{Generation: 1, Lineage: 2})

	want := []Node{
		{Generation: 0, Lineage: 1},
		{Generation: 0, Lineage: 3},
		{Generation: 1, Lineage: 2},
		{Generation: 2, Lineage: 0},
	}
	require.Equal(t, want, tr.Nodes())
}

// TestNeighborsAndDegree verifies adjacency queries.
func TestNeighborsAndDegree(t *testing.T) {
	tr := NewTree()
	parent := Node{Generation: 1, Lineage: 0}
	tr.AddNode(leaf(0))
	tr.AddNode(leaf(1))
	tr.AddNode(parent)
	require.NoError(t, tr.AddEdge(parent, leaf(1), 1.5))
	require.NoError(t, tr.AddEdge(parent, leaf(0), 1.5))

	neighbors, err := tr.Neighbors(parent)
	require.NoError(t, err)
	require.Equal(t, []Node{leaf(0), leaf(1)}, neighbors)

	deg, err := tr.Degree(parent)
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	_, err = tr.Neighbors(leaf(9))
	require.ErrorIs(t, err, ErrNodeNotFound)
	_, err = tr.Degree(leaf(9))
	require.ErrorIs(t, err, ErrNodeNotFound)
}

// TestClone_Independence verifies deep-copy semantics.
func TestClone_Independence(t *testing.T) {
	tr := NewTree()
	tr.AddNode(leaf(0))
	tr.AddNode(leaf(1))
	require.NoError(t, tr.AddEdge(leaf(0), leaf(1), 2.0))

	clone := tr.Clone()
	require.Equal(t, tr.Nodes(), clone.Nodes())
	require.Equal(t, tr.Edges(), clone.Edges())

	clone.AddNode(leaf(2))
	require.False(t, tr.HasNode(leaf(2)))
	require.Equal(t, 2, tr.NodeCount())
	require.Equal(t, 3, clone.NodeCount())
}

// TestConcurrentReads exercises parallel read methods under the race
// detector.
func TestConcurrentReads(t *testing.T) {
	tr := NewTree()
	parent := Node{Generation: 1, Lineage: 0}
	tr.AddNode(leaf(0))
	tr.AddNode(leaf(1))
	tr.AddNode(parent)
	require.NoError(t, tr.AddEdge(parent, leaf(0), 1.0))
	require.NoError(t, tr.AddEdge(parent, leaf(1), 1.0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = tr.Nodes()
				_ = tr.Edges()
				_, _ = tr.Neighbors(parent)
				_ = tr.NodeCount()
				_ = tr.TotalWeight()
			}
		}()
	}
	wg.Wait()
}
