// Package randx provides the seeded, snapshotable random source consumed by
// the coalescent process.
//
// What:
//
//   - Source wraps a PCG generator (golang.org/x/exp/rand) whose entire
//     state is a plain value, so it can be cloned and restored.
//   - ExpFloat64 draws from an exponential distribution with a given rate
//     via gonum's distuv.
//   - Pick2 chooses two of k items uniformly without replacement.
//
// Why:
//
//   - Sampling a genealogy must advance the caller's randomness without
//     mutating the calling process: the sampler forks a Source, drives the
//     fork, then commits the advanced state back via Restore.
//   - math/rand cannot expose or restore its source state, which rules it
//     out for this clone-and-commit discipline.
//
// Determinism:
//
//   - Two Sources built with the same seed produce identical draw sequences.
//
// Errors:
//
//   - Malformed parameters (rate ≤ 0, k < 2, n ≤ 0) are programmer errors
//     and panic rather than produce silently wrong statistics.
package randx
