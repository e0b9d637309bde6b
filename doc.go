// Package coalescence simulates the n-coalescent: the continuous-time
// Markov process on set-partitions of {0,…,n−1} that models the random
// ancestry of a sample of n individuals back to their most recent common
// ancestor.
//
// 🚀 What is coalescence?
//
//	A small, deterministic-when-seeded simulation library that brings together:
//		• Process engine: exponential waiting times + uniform pairwise merges
//		• Genealogies: immutable realizations with O(n) derived statistics
//		• Ancestry trees: lazily built, undirected, weighted genealogic graphs
//		• Partitions: a coarsening union-find tuned for merge-only histories
//		• Randomness: snapshotable PCG sources with exponential draws
//
// ✨ Why choose coalescence?
//
//   - Exact semantics – waiting times follow Exp(k(k−1)/2), pairs are uniform
//   - Reproducible – every draw flows through an explicit, clonable Source
//   - Embarrassingly parallel – independent replicates share no mutable state
//   - Pure computation – no I/O, no hidden globals, no background goroutines
//
// Under the hood, everything is organized under five subpackages:
//
//	coalescent/ — the Process: step-wise evolution and full-path sampling
//	genealogy/  — Genealogy: depth, length, divergence, pairwise statistics
//	ancestry/   — Tree: the undirected weighted ancestry graph product
//	partition/  — merge-only set-partition (union-find with set enumeration)
//	randx/      — seeded, snapshotable random source (PCG + exponential)
//
// Quick sketch of one realization for n = 4:
//
//	{0}{1}{2}{3} ──t₁──▶ {0,2}{1}{3} ──t₂──▶ {0,2}{1,3} ──t₃──▶ {0,1,2,3}
//
// Each arrow is one merge event; tᵢ are independent exponential waiting
// times whose rate shrinks as lineages disappear.
//
//	go get github.com/katalvlaran/coalescence
package coalescence
