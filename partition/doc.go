// Package partition implements a merge-only set-partition of {0,…,n−1}
// backed by a union-find (disjoint-set) forest.
//
// What:
//
//   - Partition tracks which indices currently share a set.
//   - Union merges two sets; sets never split (monotone coarsening).
//   - Find/SameSet answer membership queries in near-constant amortized time.
//   - Sets enumerates every current set in a stable, deterministic order.
//
// Why:
//
//   - Coalescent histories are sequences of pairwise merges; the evolving
//     partition is the state of the process.
//   - Genealogy statistics replay merge histories and need cheap
//     SameSet/SizeOf queries plus full-set enumeration.
//
// Determinism:
//
//   - Sets orders sets by their smallest member and members ascending, so
//     "the i-th set" and "the first member of a set" are stable conventions
//     shared by every consumer of a Partition.
//
// Concurrency:
//
//   - SameSet, SizeOf and Sets walk the forest without compressing it and
//     are safe for concurrent use with each other; Find and Union mutate
//     and are not.
//
// Complexity:
//
//   - Find/Union: O(α(n)) amortized. SameSet/SizeOf: O(log n) worst case.
//   - Count: O(1). Sets/Clone: O(n log n) / O(n).
//
// Errors:
//
//   - Out-of-range indices are programmer errors and panic; see the
//     package-level fail-fast convention in the method docs.
package partition
