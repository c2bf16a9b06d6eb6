package barycenter

import (
	"math"

	"github.com/katalvlaran/shapelet/metric"
)

// Interpolated computes a DTW barycenter average (DBA) of the set.
//
// The reference is initialized to the Average-mode result, then refined:
// each pass aligns every candidate to the current reference with an
// exact, unconstrained DTW path (no early abandon) and replaces every
// reference position with the mean of all candidate samples aligned to
// it. Passes repeat until the maximum pointwise change of the reference
// drops below opts.Tolerance, or unconditionally stop after
// opts.MaxIterations — the cap bounds the cost even without convergence.
//
// Complexity: O(MaxIterations·k·L²) for k candidates of typical length L.
func Interpolated(set [][]float64, opts Options) ([]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ref, err := Average(set)
	if err != nil {
		return nil, err
	}

	sums := make([]float64, len(ref))
	counts := make([]int, len(ref))
	for iter := 0; iter < opts.MaxIterations; iter++ {
		for j := range ref {
			sums[j], counts[j] = 0, 0
		}

		// Alignment pass: every warping path covers all reference
		// positions, so every count ends up ≥ 1.
		for _, c := range set {
			_, path, aerr := metric.Align(c, ref, 1)
			if aerr != nil {
				return nil, aerr
			}
			for _, p := range path {
				sums[p.J] += c[p.I]
				counts[p.J]++
			}
		}

		var delta float64
		for j := range ref {
			next := sums[j] / float64(counts[j])
			if d := math.Abs(next - ref[j]); d > delta {
				delta = d
			}
			ref[j] = next
		}

		if delta < opts.Tolerance {
			break
		}
	}

	return ref, nil
}
