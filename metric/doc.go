// Package metric computes dissimilarity between univariate numeric
// sequences: Dynamic Time Warping (DTW) with a banded warping window and
// early abandon, and the Euclidean distance for equal-length operands.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative cost.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Time-series clustering & shapelet extraction
//
// ✨ Key features:
//   - Sakoe–Chiba band expressed as a fraction w ∈ [0,1] of the longer
//     sequence (w=0 → diagonal only, w=1 → unconstrained)
//   - early abandon: once a whole DP row exceeds the bound r, the call
//     returns the row minimum — a valid lower bound for pruning
//   - rolling two-row storage for distance-only calls, O(min cost) memory
//   - Align for the full alignment path (r=∞), used by barycenter averaging
//   - metric selection by closed enum tag (DTW, Euclidean), no callables
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelet/metric"
//
//	opts := metric.DefaultOptions() // DTW, Window=0.9, Abandon=+Inf
//	dist, err := metric.Distance(a, b, opts)
//
// Early abandon contract:
//
//	With a finite Abandon bound r, the returned value is either the exact
//	distance (when it never exceeded r) or a partial lower bound strictly
//	greater than r. Callers needing exact distances must keep r = +Inf.
//
// Performance:
//
//   - Time:   O(N·M) worst case, O(N·band) with a window
//   - Memory: O(M) for Distance, O(N·M) for Align
package metric
