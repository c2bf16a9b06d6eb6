package compare

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shapelet/metric"
)

// Query returns the index of the library sequence closest to q; ties are
// broken by the lowest index.
//
// The running best distance tightens the early-abandon bound of every
// subsequent metric call, so later comparisons are never more expensive
// than necessary. Abandoned calls return values above the current bound
// and can never displace the running best, which keeps the result exact.
//
// Complexity: O(len(library)) distance calls, each O(n·m) worst case.
func Query(q []float64, library [][]float64, opts Options) (int, error) {
	if len(library) == 0 {
		return 0, ErrEmptyLibrary
	}

	if opts.workers() == 1 || len(library) == 1 {
		return queryRange(q, library, 0, len(library), opts)
	}

	// Parallel path: scan contiguous chunks with chunk-local tightening,
	// then merge the exact per-chunk minima with the sequential tie-break.
	parts := partition(len(library), opts.workers())
	partial := make([]struct {
		idx  int
		dist float64
	}, len(parts))

	var g errgroup.Group
	for w, p := range parts {
		w, p := w, p
		g.Go(func() error {
			idx, err := queryRange(q, library, p[0], p[1], opts)
			if err != nil {
				return err
			}
			d, err := exactDistance(q, library[idx], opts)
			if err != nil {
				return err
			}
			partial[w].idx, partial[w].dist = idx, d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	best, bestIdx := math.Inf(1), -1
	for _, p := range partial {
		if bestIdx == -1 || p.dist < best || (p.dist == best && p.idx < bestIdx) {
			best, bestIdx = p.dist, p.idx
		}
	}

	return bestIdx, nil
}

// queryRange is the sequential scan over library[lo:hi] with a tightening
// abandon bound. It returns an index into the full library.
func queryRange(q []float64, library [][]float64, lo, hi int, opts Options) (int, error) {
	mo := opts.metricOptions()
	best, bestIdx := math.Inf(1), -1
	for i := lo; i < hi; i++ {
		// Tighten the bound to the running best. A zero best cannot be a
		// valid bound (r must stay positive) and cannot be beaten anyway,
		// so the previous bound is kept in that case.
		if best > 0 && best < mo.Abandon {
			mo.Abandon = best
		}
		d, err := metric.Distance(q, library[i], mo)
		if err != nil {
			return 0, err
		}
		if bestIdx == -1 || d < best {
			best, bestIdx = d, i
		}
	}

	return bestIdx, nil
}

// exactDistance recomputes a single distance without early abandon, so
// per-chunk minima merge on true values rather than pruned bounds.
func exactDistance(q, c []float64, opts Options) (float64, error) {
	mo := opts.metricOptions()
	mo.Abandon = math.Inf(1)

	return metric.Distance(q, c, mo)
}

// Score returns the distance from q to every library entry, in library
// order. Distances are exact: the early-abandon bound is forced to +Inf.
//
// Complexity: O(len(library)) distance calls, chunked across workers.
func Score(q []float64, library [][]float64, opts Options) ([]float64, error) {
	if len(library) == 0 {
		return nil, ErrEmptyLibrary
	}

	scores := make([]float64, len(library))
	scoreRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			d, err := exactDistance(q, library[i], opts)
			if err != nil {
				return err
			}
			scores[i] = d
		}

		return nil
	}

	if opts.workers() == 1 {
		if err := scoreRange(0, len(library)); err != nil {
			return nil, err
		}

		return scores, nil
	}

	var g errgroup.Group
	for _, p := range partition(len(library), opts.workers()) {
		p := p
		g.Go(func() error { return scoreRange(p[0], p[1]) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// PairwiseArgmin returns the index of the library sequence with the
// minimum total distance to all the others; ties are broken by the lowest
// index. It is the selection step of the pairwise shapelet strategies.
//
// The symmetric distance matrix is built first (each off-diagonal pair
// computed once, in parallel when opts.Workers > 1) and the argmin over
// row sums is always sequential, so the returned index does not depend on
// the worker count.
//
// Complexity: O(k²/2) distance calls for k sequences, then O(k²) sums.
func PairwiseArgmin(library [][]float64, opts Options) (int, error) {
	dm, err := NewDistanceMatrix(library, opts)
	if err != nil {
		return 0, err
	}

	bestIdx, bestSum := 0, dm.RowSum(0)
	for i := 1; i < dm.Len(); i++ {
		if s := dm.RowSum(i); s < bestSum {
			bestIdx, bestSum = i, s
		}
	}

	return bestIdx, nil
}

// partition splits n items into at most k contiguous [lo,hi) ranges of
// near-equal size. Every range is non-empty.
func partition(n, k int) [][2]int {
	if k > n {
		k = n
	}
	parts := make([][2]int, 0, k)
	size, rem := n/k, n%k
	lo := 0
	for w := 0; w < k; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		parts = append(parts, [2]int{lo, hi})
		lo = hi
	}

	return parts
}
