// File: ancestry/types.go
// Role: Node/Edge/Tree type declarations, sentinel errors, constructor.
package ancestry

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for ancestry tree operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that was
	// never added to the tree.
	ErrNodeNotFound = errors.New("ancestry: node not found")

	// ErrLoopEdge indicates an attempt to join a node to itself.
	ErrLoopEdge = errors.New("ancestry: self-loop not allowed")

	// ErrEdgeExists indicates an attempt to add a second edge between a
	// pair of nodes.
	ErrEdgeExists = errors.New("ancestry: edge already exists")

	// ErrEdgeNotFound indicates both endpoints exist but no edge joins
	// them.
	ErrEdgeNotFound = errors.New("ancestry: edge not found")
)

// Node labels a lineage at a point in the merge history.
//
// Generation 0 nodes are the original sampled individuals (Lineage is the
// individual's index). A node of generation g ≥ 1 is the common ancestor
// created by the g-th merge event; its Lineage is the canonical
// representative (smallest member) of the merged set.
type Node struct {
	// Generation counts merge events: 0 for leaves, g for the node created
	// by event g.
	Generation int

	// Lineage is the representative index of the set this node stands for.
	Lineage int
}

// String renders the node as "(generation,lineage)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.Generation, n.Lineage)
}

// Edge is an undirected, weighted connection between two nodes. Weight is
// the waiting time of the merge event that created the edge.
type Edge struct {
	From   Node
	To     Node
	Weight float64
}

// Tree is the undirected weighted ancestry graph.
//
// mu guards nodes, adj and edges. Read methods take the read lock, so
// concurrent queries are safe; interleaved mutation needs external
// synchronization.
type Tree struct {
	mu sync.RWMutex

	nodes map[Node]struct{}         // node set
	adj   map[Node]map[Node]float64 // adjacency with weights, both directions
	edges []Edge                    // insertion order, one entry per edge
}

// NewTree creates an empty ancestry tree.
// Complexity: O(1).
func NewTree() *Tree {
	return &Tree{
		nodes: make(map[Node]struct{}),
		adj:   make(map[Node]map[Node]float64),
	}
}
