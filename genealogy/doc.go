// Package genealogy records one completed realization of the coalescent
// process and derives ancestry statistics from it.
//
// What:
//
//   - Genealogy is the immutable triple (path, steps, timeSteps): the
//     partition snapshot after every merge, the representative pair merged
//     at each event, and the strictly positive waiting time of each event.
//   - Depth, Length, Divergence and MeanPairwiseDivergence compute the
//     classical coalescent statistics directly from that record.
//   - Tree lazily builds the explicit undirected weighted ancestry tree,
//     computing it at most once per Genealogy.
//
// Why:
//
//   - The realization record is cheap to carry around and query; the
//     explicit tree is only materialized when an exporter or walker needs
//     structure rather than numbers.
//
// Concurrency:
//
//   - A Genealogy never mutates after construction and its statistics read
//     the stored snapshots through the non-compressing partition queries,
//     so all methods are safe for concurrent use.
//
// Complexity:
//
//   - Depth/Length: O(n). MeanPairwiseDivergence: O(n log n).
//   - Divergence: O(n log n) over the stored snapshots.
//   - Tree: O(n·α(n)) on first call, O(1) after (memoized).
//
// Errors:
//
//   - Mismatched slice lengths or non-positive waiting times fed to New are
//     invariant violations: New panics rather than construct a Genealogy
//     that would yield silently wrong statistics.
//   - Divergence panics on indices outside [0, GroupSize()).
package genealogy
