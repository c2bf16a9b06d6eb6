package metric

import "math"

// Align computes the exact DTW distance between a and b (no early abandon)
// together with the optimal warping path. window is the band fraction with
// the same meaning as Options.Window; pass 1 for unconstrained alignment.
//
// The path is returned in forward order: path[0] == {0,0} and the last
// point matches the final samples of both sequences. Each Coord pairs a
// sample of a (I) with the sample of b (J) it is aligned to.
//
// When the band makes the terminal cell unreachable (e.g. window=0 with
// unequal lengths) the distance is +Inf and the path is nil.
//
// Complexity: O(n·m) time and memory — path recovery needs the full matrix.
func Align(a, b []float64, window float64) (float64, []Coord, error) {
	if math.IsNaN(window) || window < 0 || window > 1 {
		return 0, nil, ErrBadConfig
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	band := bandHalfWidth(window, n, m)
	inf := math.Inf(1)

	// Stage 1 - fill the full accumulated-cost matrix.
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := i-band, i+band
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}
		for j := lo; j <= hi; j++ {
			best := min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
			if math.IsInf(best, 1) {
				continue
			}
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	dist := dp[n][m]
	if math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	// Stage 2 - backtrack from (n,m), preferring the diagonal on ties so
	// the recovered path is unique and as short as possible.
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}

		ni, nj, best := i-1, j-1, inf
		if i > 1 && j > 1 {
			best = dp[i-1][j-1]
		}
		if i > 1 && dp[i-1][j] < best {
			ni, nj, best = i-1, j, dp[i-1][j]
		}
		if j > 1 && dp[i][j-1] < best {
			ni, nj = i, j-1
		}
		i, j = ni, nj
	}

	// Reverse in place: backtracking produced the path tail-first.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return dist, path, nil
}
