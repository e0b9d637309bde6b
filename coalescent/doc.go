// Package coalescent implements the n-coalescent process engine: a
// continuous-time Markov chain on set-partitions of {0,…,n−1} that starts
// from n singletons and merges one uniformly chosen pair of sets per event
// until a single set remains.
//
// What:
//
//   - Process owns a mutable partition state and a random Source.
//   - PeekNextStep draws the next event (waiting time + merged pair)
//     without mutating the state; NextStep applies it.
//   - SamplePath / SampleGenealogy drive an independent copy of the process
//     to completion, leaving the receiver untouched while advancing the
//     caller's Source by exactly the randomness consumed.
//
// Why:
//
//   - Waiting times follow Exp(k(k−1)/2) where k is the number of live
//     lineages: the first of all pairwise merges to fire in a race where
//     each unordered pair coalesces at rate 1.
//   - The fork-and-commit Source discipline keeps repeated samples from a
//     single caller distinct while never mutating the process they peek at.
//
// Determinism:
//
//   - A Process seeded with WithSeed, or driven by a Source built with
//     randx.New, reproduces the same realization draw for draw.
//
// Degenerate inputs:
//
//   - Group sizes 0 and 1 are legal: the process is terminal at birth and
//     sampling yields a zero-event genealogy, not an error.
//
// Complexity:
//
//   - One step: O(n log n) (set enumeration dominates).
//   - Full realization: O(n² log n) time, O(n²) memory for the snapshots.
package coalescent
