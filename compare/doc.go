// Package compare applies a distance metric across many sequence pairs:
// best-match queries, full score vectors, and pairwise argmin selection
// over a library of numeric sequences.
//
// ✨ Key features:
//   - Query: index of the library sequence closest to q, with the running
//     best distance used as a tightening early-abandon bound
//   - Score: exact distance from q to every library entry
//   - NewDistanceMatrix: symmetric matrix of all pairwise distances,
//     each off-diagonal pair computed once, immutable after construction
//   - PairwiseArgmin: index with the minimum row sum — the most central
//     sequence of the library
//   - optional worker pool (errgroup); sequential and parallel execution
//     return identical indices for identical inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelet/compare"
//
//	opts := compare.DefaultOptions()
//	opts.Workers = 4
//	best, err := compare.Query(q, library, opts)
//	medoid, err := compare.PairwiseArgmin(library, opts)
//
// Determinism:
//
//	Workers partition the library into independent ranges; each produces a
//	private partial result and a final sequential merge applies the same
//	lowest-index tie-break as the sequential path. Result parity between
//	worker counts is a hard guarantee, covered by tests.
//
// Error policy:
//
//	Metric failures are not caught or retried — a single invalid pair
//	fails the whole call.
package compare
