// Package ancestry defines the undirected, weighted genealogic tree produced
// from a coalescent realization.
//
// What:
//
//   - Node labels carry a (Generation, Lineage) pair: generation 0 nodes are
//     the n sampled individuals; each merge event adds one internal node.
//   - Edge weights are the waiting times of the merge events, so path
//     lengths in the tree are elapsed simulated time.
//   - Tree is a plain graph container: add nodes and edges, query degree,
//     neighbors and counts, clone.
//
// Why:
//
//   - The tree is the exportable product of a genealogy: external plotting
//     or analysis collaborators walk it; this package never renders or
//     serializes anything itself.
//
// Concurrency:
//
//   - Read methods take an RWMutex read lock and are safe for concurrent
//     use; mutations require external coordination, as in core graph
//     containers of this kind.
//
// Errors:
//
//   - ErrNodeNotFound: an edge endpoint or query target is absent.
//   - ErrEdgeNotFound: both endpoints exist but no edge joins them.
//   - ErrLoopEdge: self-loops never occur in a genealogy and are rejected.
//   - ErrEdgeExists: at most one edge may join a pair of nodes.
package ancestry
