package compare

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shapelet/metric"
)

// DistanceMatrix is the square, symmetric matrix of pairwise distances
// over a sequence library. The diagonal is exactly zero. It is built once
// and never mutated afterwards, so concurrent reads are safe.
type DistanceMatrix struct {
	n    int
	vals []float64 // row-major n×n
}

// NewDistanceMatrix computes all pairwise distances of the library. Each
// off-diagonal pair is computed once and mirrored. Entries are exact: the
// early-abandon bound is forced to +Inf, since a pruned bound would
// corrupt the row sums both cells contribute to.
//
// When opts.Workers > 1, rows are distributed round-robin across workers
// (row i owns pairs (i, j>i), so later rows carry fewer pairs and a
// contiguous split would be lopsided). Every cell has exactly one writer.
//
// Complexity: O(k²/2) distance calls for k sequences.
func NewDistanceMatrix(library [][]float64, opts Options) (*DistanceMatrix, error) {
	k := len(library)
	if k == 0 {
		return nil, ErrEmptyLibrary
	}

	mo := opts.metricOptions()
	mo.Abandon = math.Inf(1)

	dm := &DistanceMatrix{n: k, vals: make([]float64, k*k)}
	fillRows := func(first, stride int) error {
		for i := first; i < k; i += stride {
			for j := i + 1; j < k; j++ {
				d, err := metric.Distance(library[i], library[j], mo)
				if err != nil {
					return err
				}
				dm.vals[i*k+j] = d
				dm.vals[j*k+i] = d
			}
		}

		return nil
	}

	workers := opts.workers()
	if workers == 1 || k < 2 {
		if err := fillRows(0, 1); err != nil {
			return nil, err
		}

		return dm, nil
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error { return fillRows(w, workers) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dm, nil
}

// Len returns the number of sequences the matrix was built over.
func (m *DistanceMatrix) Len() int { return m.n }

// At returns the distance between sequences i and j. At(i,i) is 0 and
// At(i,j) == At(j,i) by construction.
func (m *DistanceMatrix) At(i, j int) float64 { return m.vals[i*m.n+j] }

// RowSum returns the total distance from sequence i to all the others.
// The zero diagonal contributes nothing.
func (m *DistanceMatrix) RowSum(i int) float64 {
	var sum float64
	row := m.vals[i*m.n : (i+1)*m.n]
	for _, v := range row {
		sum += v
	}

	return sum
}
