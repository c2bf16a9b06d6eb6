package metric

import "math"

// Distance computes the dissimilarity between a and b according to
// opts.Metric. The result is ≥ 0 and 0 for identical inputs.
//
// Contracts:
//   - Both sequences must be non-empty (ErrEmptyInput).
//   - Euclidean requires len(a) == len(b) (ErrShapeMismatch).
//   - With a finite opts.Abandon, the result may be a partial lower bound;
//     see the package doc for the early-abandon contract.
//
// Complexity: O(len(a)·len(b)) for DTW, O(len(a)) for Euclidean.
func Distance(a, b []float64, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}

	switch opts.Metric {
	case DTW:
		return dtwDistance(a, b, opts.Window, opts.Abandon), nil
	case Euclidean:
		return euclidean(a, b, opts.Abandon)
	default:
		return 0, ErrUnknownMetric
	}
}

// bandHalfWidth converts the window fraction into a cell count.
// w=0 keeps only the diagonal; w=1 covers the whole matrix.
func bandHalfWidth(w float64, n, m int) int {
	longest := n
	if m > longest {
		longest = m
	}

	return int(math.Ceil(w * float64(longest)))
}

// dtwDistance fills the accumulated-cost matrix restricted to a Sakoe–Chiba
// band of halfwidth ⌈w·max(n,m)⌉ using two rolling rows.
//
// Recurrence for an in-band cell (i,j), 1-based over a (n+1)×(m+1) grid
// seeded with D[0][0]=0 and +Inf borders:
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//
// Early abandon: after each row, if the row's in-band minimum exceeds r,
// the function stops and returns that minimum. Any warping path must pass
// through the row, so the value is a lower bound of the true distance and
// strictly greater than r — sufficient for pruning, not an exact distance.
//
// With w=0 and len(a) != len(b) the terminal cell is unreachable and the
// result is +Inf; that is a documented degenerate case, not an error.
func dtwDistance(a, b []float64, w, r float64) float64 {
	n, m := len(a), len(b)
	band := bandHalfWidth(w, n, m)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := i-band, i+band
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}

		curr[0] = inf
		for j := 1; j < lo; j++ {
			curr[j] = inf
		}
		for j := hi + 1; j <= m; j++ {
			curr[j] = inf
		}

		rowMin := inf
		for j := lo; j <= hi; j++ {
			best := min3(prev[j], curr[j-1], prev[j-1])
			if math.IsInf(best, 1) {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > r {
			return rowMin
		}

		prev, curr = curr, prev
	}

	return prev[m]
}

// euclidean returns the L2 norm of pointwise differences, abandoning once
// the accumulated squared sum exceeds r². The abandoned value (the root of
// the partial sum) is a lower bound of the full distance and exceeds r.
func euclidean(a, b []float64, r float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrShapeMismatch
	}

	rsq := r * r // +Inf stays +Inf: the abandon branch never fires
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
		if sum > rsq {
			return math.Sqrt(sum), nil
		}
	}

	return math.Sqrt(sum), nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
