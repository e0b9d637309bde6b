// File: genealogy/genealogy.go
// Role: the immutable realization record and its derived statistics.
// Determinism:
//   - All statistics are pure functions of (path, steps, timeSteps).
// Concurrency:
//   - A Genealogy is immutable after construction; statistics query the
//     stored snapshots through the read-only partition methods and Tree()
//     memoizes through sync.Once, so all methods are safe for concurrent
//     use.
package genealogy

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/coalescence/ancestry"
	"github.com/katalvlaran/coalescence/partition"
)

// Genealogy is the realized history of one coalescent run: n−1 merge events
// carrying a group of n individuals from all-singletons to a single common
// ancestor.
//
// Construct with New (typically via coalescent.Process.SampleGenealogy).
// The record owns its slices outright; accessors return internal state that
// callers must treat as read-only.
type Genealogy struct {
	path      []*partition.Partition // snapshot k = state after k merges; snapshot 0 = singletons
	steps     [][2]int               // representative pair merged at each event
	timeSteps []float64              // waiting time of each event, all > 0

	once sync.Once
	tree *ancestry.Tree // built on first Tree() call, then reused
}

// New assembles a Genealogy from a completed realization.
//
// Invariants (violations panic — a malformed record is a logic bug, not a
// recoverable condition):
//   - len(path) ≥ 1 and every snapshot non-nil;
//   - len(steps) == len(timeSteps) == len(path) − 1;
//   - len(path) == max(GroupSize, 1);
//   - every waiting time strictly positive.
//
// Complexity: O(n) validation.
func New(path []*partition.Partition, steps [][2]int, timeSteps []float64) *Genealogy {
	if len(path) == 0 {
		panic("genealogy: New: empty path")
	}
	if len(steps) != len(path)-1 || len(timeSteps) != len(steps) {
		panic(fmt.Sprintf("genealogy: New: mismatched lengths: path=%d steps=%d timeSteps=%d",
			len(path), len(steps), len(timeSteps)))
	}
	var i int
	for i = range path {
		if path[i] == nil {
			panic(fmt.Sprintf("genealogy: New: nil snapshot at %d", i))
		}
	}
	n := path[0].Len()
	if want := max(n, 1); len(path) != want {
		panic(fmt.Sprintf("genealogy: New: path length %d for group size %d (want %d)",
			len(path), n, want))
	}
	for i = range timeSteps {
		if timeSteps[i] <= 0 {
			panic(fmt.Sprintf("genealogy: New: non-positive waiting time %g at event %d", timeSteps[i], i))
		}
	}

	return &Genealogy{path: path, steps: steps, timeSteps: timeSteps}
}

// GroupSize returns n, the number of sampled individuals.
// Complexity: O(1).
func (g *Genealogy) GroupSize() int { return g.path[0].Len() }

// Path returns the partition snapshots: index 0 is all singletons, index k
// the state after k merges, the last a single set. Read-only.
func (g *Genealogy) Path() []*partition.Partition { return g.path }

// Steps returns the representative pair merged at each event. Read-only.
func (g *Genealogy) Steps() [][2]int { return g.steps }

// TimeSteps returns the waiting time preceding each merge event. Read-only.
func (g *Genealogy) TimeSteps() []float64 { return g.timeSteps }

// Depth returns the total elapsed time from n singletons to the most recent
// common ancestor — the height of the genealogic tree in time units.
// Complexity: O(n).
func (g *Genealogy) Depth() float64 {
	var sum float64
	for _, dt := range g.timeSteps {
		sum += dt
	}

	return sum
}

// Length returns the total branch length of the tree: during the interval
// of duration timeSteps[i] exactly n−i lineages are alive, each
// contributing that duration.
// Complexity: O(n).
func (g *Genealogy) Length() float64 {
	n := g.GroupSize()
	var sum float64
	for i, dt := range g.timeSteps {
		sum += float64(n-i) * dt
	}

	return sum
}

// Divergence returns the patristic distance between individuals index1 and
// index2: twice the time to their most recent common ancestor (up from one
// tip, down to the other). Divergence(i, i) == 0.
//
// Panics when an index lies outside [0, GroupSize()): querying a
// nonexistent individual is a precondition failure, not a runtime error.
//
// For the mean over all pairs prefer MeanPairwiseDivergence, which avoids
// the O(n²) pairwise scan.
//
// Complexity: O(n log n).
func (g *Genealogy) Divergence(index1, index2 int) float64 {
	n := g.GroupSize()
	if index1 < 0 || index1 >= n || index2 < 0 || index2 >= n {
		panic(fmt.Sprintf("genealogy: Divergence(%d,%d): index out of range [0,%d)", index1, index2, n))
	}
	// Count events until the two indices first share a set.
	events := 0
	for _, state := range g.path {
		if state.SameSet(index1, index2) {
			break
		}
		events++
	}
	var sum float64
	for _, dt := range g.timeSteps[:events] {
		sum += dt
	}

	return 2.0 * sum
}

// MeanPairwiseDivergence returns the average patristic distance over all
// C(n,2) unordered pairs in O(n): each merge event joins sets of sizes
// s1 and s2 at cumulative depth tCum, settling s1·s2 cross-pairs at
// divergence 2·tCum.
//
// For n ≤ 1 there are no pairs and the mean is defined as 0.
//
// Complexity: O(n log n).
func (g *Genealogy) MeanPairwiseDivergence() float64 {
	n := g.GroupSize()
	if n <= 1 {
		return 0
	}
	var tCum, total float64
	for i, pair := range g.steps {
		state := g.path[i] // state just before event i
		tCum += g.timeSteps[i]

		// Event i settles exactly s1·s2 cross-pairs at depth tCum.
		pairs := state.SizeOf(pair[0]) * state.SizeOf(pair[1])
		total += (2.0 * tCum) * float64(pairs)
	}

	// Accumulate first, normalize last: total × 2 / (n(n−1)).
	return total * 2.0 / float64(n*(n-1))
}
