// File: ancestry/tree.go
// Role: Tree mutation, queries and cloning.
// Determinism:
//   - Nodes() sorts by (Generation, Lineage); Edges() preserves insertion
//     order, which for genealogies is merge-event order.
package ancestry

import "sort"

// AddNode inserts n into the tree. Returns false if n was already present.
// Complexity: O(1).
func (t *Tree) AddNode(n Node) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.nodes[n]; ok {
		return false
	}
	t.nodes[n] = struct{}{}
	t.adj[n] = make(map[Node]float64)

	return true
}

// AddEdge joins two existing nodes with an undirected weighted edge.
//
// Error conditions:
//   - ErrLoopEdge      : from == to.
//   - ErrNodeNotFound  : either endpoint has not been added.
//   - ErrEdgeExists    : the pair is already joined.
//
// Complexity: O(1).
func (t *Tree) AddEdge(from, to Node, weight float64) error {
	if from == to {
		return ErrLoopEdge
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.nodes[from]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := t.nodes[to]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := t.adj[from][to]; ok {
		return ErrEdgeExists
	}
	t.adj[from][to] = weight
	t.adj[to][from] = weight
	t.edges = append(t.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// HasNode reports whether n belongs to the tree.
// Complexity: O(1).
func (t *Tree) HasNode(n Node) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.nodes[n]

	return ok
}

// HasEdge reports whether a and b are joined (in either direction).
// Complexity: O(1).
func (t *Tree) HasEdge(a, b Node) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.adj[a][b]

	return ok
}

// Weight returns the weight of the edge joining a and b.
//
// Error conditions:
//   - ErrNodeNotFound : either endpoint has not been added.
//   - ErrEdgeNotFound : both endpoints exist, no edge joins them.
//
// Complexity: O(1).
func (t *Tree) Weight(a, b Node) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.nodes[a]; !ok {
		return 0, ErrNodeNotFound
	}
	if _, ok := t.nodes[b]; !ok {
		return 0, ErrNodeNotFound
	}
	w, ok := t.adj[a][b]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (t *Tree) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (t *Tree) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.edges)
}

// Nodes returns all nodes sorted by (Generation, Lineage).
// Complexity: O(V log V).
func (t *Tree) Nodes() []Node {
	t.mu.RLock()
	nodes := make([]Node, 0, len(t.nodes))
	for n := range t.nodes {
		nodes = append(nodes, n)
	}
	t.mu.RUnlock()
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Generation != nodes[j].Generation {
			return nodes[i].Generation < nodes[j].Generation
		}

		return nodes[i].Lineage < nodes[j].Lineage
	})

	return nodes
}

// Edges returns a copy of all edges in insertion (merge-event) order.
// Complexity: O(E).
func (t *Tree) Edges() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()
	edges := make([]Edge, len(t.edges))
	copy(edges, t.edges)

	return edges
}

// Neighbors returns the nodes adjacent to n, sorted by (Generation,
// Lineage). Returns ErrNodeNotFound for unknown n.
// Complexity: O(deg log deg).
func (t *Tree) Neighbors(n Node) ([]Node, error) {
	t.mu.RLock()
	row, ok := t.adj[n]
	if !ok {
		t.mu.RUnlock()

		return nil, ErrNodeNotFound
	}
	neighbors := make([]Node, 0, len(row))
	for m := range row {
		neighbors = append(neighbors, m)
	}
	t.mu.RUnlock()
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Generation != neighbors[j].Generation {
			return neighbors[i].Generation < neighbors[j].Generation
		}

		return neighbors[i].Lineage < neighbors[j].Lineage
	})

	return neighbors, nil
}

// Degree returns the number of edges incident to n.
// Complexity: O(1).
func (t *Tree) Degree(n Node) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.adj[n]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(row), nil
}

// TotalWeight returns the sum of all edge weights: for a genealogy this is
// NOT the tree length (which weighs simultaneous lineages), just the raw
// edge-weight sum.
// Complexity: O(E).
func (t *Tree) TotalWeight() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var sum float64
	for _, e := range t.edges {
		sum += e.Weight
	}

	return sum
}

// Clone returns a deep copy of the tree: nodes, adjacency and edge list.
// Complexity: O(V + E).
func (t *Tree) Clone() *Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()
	clone := NewTree()
	for n := range t.nodes {
		clone.nodes[n] = struct{}{}
		clone.adj[n] = make(map[Node]float64, len(t.adj[n]))
	}
	for n, row := range t.adj {
		for m, w := range row {
			clone.adj[n][m] = w
		}
	}
	clone.edges = make([]Edge, len(t.edges))
	copy(clone.edges, t.edges)

	return clone
}
