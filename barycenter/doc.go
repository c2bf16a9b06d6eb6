// Package barycenter synthesizes a consensus sequence from a set of
// candidate subsequences — the representative shapelet of the set.
//
// ✨ Two synthesis modes:
//   - Average — resample every candidate to the mean candidate length via
//     linear interpolation and take the elementwise mean. Cheap and
//     order-insensitive; blurs features when candidates are warped.
//   - Interpolated — DTW barycenter averaging (DBA): start from the
//     Average result, then repeatedly realign every candidate to the
//     current reference with an exact DTW path and replace each reference
//     position with the mean of the samples aligned to it. Stops on
//     convergence (max pointwise change below Tolerance) or after
//     MaxIterations — the cap is a hard bound, the procedure is a
//     heuristic without a convergence proof.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelet/barycenter"
//
//	ref, err := barycenter.Average(set)
//	ref, err = barycenter.Interpolated(set, barycenter.DefaultOptions())
//
// The result is always freshly allocated: it never aliases the candidate
// set's storage.
//
// Complexity: Average is O(k·L); Interpolated is O(iters·k·L²) for k
// candidates of typical length L.
package barycenter
