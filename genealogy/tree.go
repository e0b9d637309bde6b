// File: genealogy/tree.go
// Role: lazy, memoized construction of the explicit ancestry tree.
// Determinism:
//   - Node labels use the canonical (smallest-member) representative of
//     each lineage, so identical records build identical trees.
package genealogy

import (
	"github.com/katalvlaran/coalescence/ancestry"
	"github.com/katalvlaran/coalescence/partition"
)

// Tree returns the explicit ancestry tree for this realization, building it
// on first call and returning the same instance afterwards. The result is a
// pure function of (path, steps, timeSteps); since a Genealogy never
// mutates, no invalidation is needed.
//
// Structure: the n generation-0 leaves are the sampled individuals; merge
// event g adds one internal node (g+1, min(rep1, rep2)) joined to the most
// recent node of each merged lineage by two edges weighted with the event's
// waiting time. A single-individual genealogy is the lone node (0,0) with
// no edges. For n ≥ 2 the tree has exactly 2n−1 nodes and 2(n−1) edges.
//
// Complexity: O(n·α(n)) on first call, O(1) memoized.
func (g *Genealogy) Tree() *ancestry.Tree {
	g.once.Do(func() { g.tree = g.buildTree() })

	return g.tree
}

// buildTree replays the merge history once, keeping for every live lineage
// its canonical representative and the generation at which its most recent
// node was created. This avoids recomputing set membership per generation.
func (g *Genealogy) buildTree() *ancestry.Tree {
	tree := ancestry.NewTree()
	if len(g.steps) == 0 {
		// Zero events: a lone root, no edges (n == 0 or n == 1).
		tree.AddNode(ancestry.Node{Generation: 0, Lineage: 0})

		return tree
	}

	n := g.GroupSize()
	state := partition.New(n)
	canonical := make([]int, n)  // root index → smallest member of its set
	latestGen := make([]int, n)  // canonical representative → generation of newest node
	var i int
	for i = 0; i < n; i++ {
		tree.AddNode(ancestry.Node{Generation: 0, Lineage: i})
		canonical[i] = i
	}

	var gen, rep1, rep2, repNew, root int
	var parent ancestry.Node
	for gen = range g.steps {
		// Resolve the recorded members to canonical lineage representatives.
		rep1 = canonical[state.Find(g.steps[gen][0])]
		rep2 = canonical[state.Find(g.steps[gen][1])]
		repNew = min(rep1, rep2)

		// One new ancestor node per event.
		parent = ancestry.Node{Generation: gen + 1, Lineage: repNew}
		tree.AddNode(parent)

		// Join the parent to the newest node of each merged lineage. The
		// endpoints always exist and differ, so errors cannot occur here.
		_ = tree.AddEdge(parent, ancestry.Node{Generation: latestGen[rep1], Lineage: rep1}, g.timeSteps[gen])
		_ = tree.AddEdge(parent, ancestry.Node{Generation: latestGen[rep2], Lineage: rep2}, g.timeSteps[gen])

		// Advance the replayed state and the lineage bookkeeping.
		root = state.Union(g.steps[gen][0], g.steps[gen][1])
		canonical[root] = repNew
		latestGen[repNew] = gen + 1
	}

	return tree
}
