// File: partition/partition.go
// Role: merge-only union-find over the index set {0,…,n−1}.
// Determinism:
//   - Sets() enumerates sets ordered by smallest member, members ascending.
// Concurrency:
//   - SameSet, SizeOf and Sets never mutate the forest and are safe for
//     concurrent use with each other. Find and Union mutate (path
//     compression, merging) and need external synchronization. Distinct
//     Partitions are fully independent.
package partition

import "fmt"

// Partition is a set-partition of {0,…,n−1} supporting merges only.
//
// The zero value is not usable; construct with New. All index arguments
// must lie in [0, Len()); violations panic (fail fast on programmer error
// rather than silently clamping).
type Partition struct {
	parent []int // parent[i] = parent of i in the forest; roots satisfy parent[i] == i
	size   []int // size[r] = members of the set rooted at r (valid for roots only)
	count  int   // number of sets currently alive
}

// New returns the all-singletons partition over n elements.
// n == 0 yields a legal empty partition with zero sets.
// Panics if n < 0.
// Complexity: O(n).
func New(n int) *Partition {
	if n < 0 {
		panic(fmt.Sprintf("partition: New(%d): negative size", n))
	}
	p := &Partition{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	var i int
	for i = 0; i < n; i++ {
		p.parent[i] = i
		p.size[i] = 1
	}

	return p
}

// Len returns the number of elements n the partition was built over.
// Complexity: O(1).
func (p *Partition) Len() int { return len(p.parent) }

// Count returns the number of sets currently alive.
// Complexity: O(1).
func (p *Partition) Count() int { return p.count }

// check panics when i is outside [0, Len()).
func (p *Partition) check(i int) {
	if i < 0 || i >= len(p.parent) {
		panic(fmt.Sprintf("partition: index %d out of range [0,%d)", i, len(p.parent)))
	}
}

// Find returns the root representative of the set containing i.
// Uses iterative path compression (grandparent hop), the same idiom as a
// textbook Kruskal DSU, to keep trees shallow without recursion. The
// compression writes to the forest: callers sharing a Partition across
// goroutines must use SameSet/SizeOf/Sets instead.
// Complexity: O(α(n)) amortized.
func (p *Partition) Find(i int) int {
	p.check(i)
	for p.parent[i] != i {
		// Path compression: make i point to its grandparent.
		p.parent[i] = p.parent[p.parent[i]]
		i = p.parent[i]
	}

	return i
}

// root returns the root of i without path compression. Read-only: safe for
// concurrent use, which Find's compression writes are not. Union by size
// keeps trees O(log n) deep, so skipping compression costs little on the
// frozen snapshots this serves.
func (p *Partition) root(i int) int {
	p.check(i)
	for p.parent[i] != i {
		i = p.parent[i]
	}

	return i
}

// SameSet reports whether a and b currently belong to the same set.
// Never mutates the forest; safe for concurrent use with other queries.
// Complexity: O(log n) worst case.
func (p *Partition) SameSet(a, b int) bool {
	return p.root(a) == p.root(b)
}

// Union merges the sets containing a and b (union by size) and returns the
// surviving root. Merging a set with itself is a no-op that returns the
// common root and does not change Count.
// Complexity: O(α(n)) amortized.
func (p *Partition) Union(a, b int) int {
	rootA := p.Find(a)
	rootB := p.Find(b)
	if rootA == rootB {
		// Already in the same set; no action needed.
		return rootA
	}
	// Attach the smaller tree under the larger root.
	if p.size[rootA] < p.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	p.parent[rootB] = rootA
	p.size[rootA] += p.size[rootB]
	p.count--

	return rootA
}

// SizeOf returns the number of members in the set containing i.
// Never mutates the forest; safe for concurrent use with other queries.
// Complexity: O(log n) worst case.
func (p *Partition) SizeOf(i int) int {
	return p.size[p.root(i)]
}

// Sets returns every current set as a slice of its member indices.
//
// Enumeration order is deterministic: sets appear ordered by their smallest
// member, and members within a set appear in ascending order. In particular
// Sets()[k][0] is the smallest member of the k-th set — the stable
// "representative" convention used by the coalescent process.
//
// Never mutates the forest; safe for concurrent use with other queries.
//
// Complexity: O(n log n) worst case, O(n) memory.
func (p *Partition) Sets() [][]int {
	n := len(p.parent)
	sets := make([][]int, 0, p.count)
	bucket := make(map[int]int, p.count) // root → index into sets
	var i, root, at int
	var ok bool
	for i = 0; i < n; i++ {
		root = p.root(i)
		if at, ok = bucket[root]; !ok {
			// First (therefore smallest) member opens the set's bucket.
			at = len(sets)
			bucket[root] = at
			sets = append(sets, make([]int, 0, p.size[root]))
		}
		sets[at] = append(sets[at], i)
	}

	return sets
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(n).
func (p *Partition) Clone() *Partition {
	clone := &Partition{
		parent: make([]int, len(p.parent)),
		size:   make([]int, len(p.size)),
		count:  p.count,
	}
	copy(clone.parent, p.parent)
	copy(clone.size, p.size)

	return clone
}
