package compare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapelet/compare"
	"github.com/katalvlaran/shapelet/metric"
)

// euclideanOpts returns engine options for exact Euclidean comparisons.
func euclideanOpts(workers int) compare.Options {
	opts := compare.DefaultOptions()
	opts.Metric = metric.Euclidean
	opts.Workers = workers

	return opts
}

// TestQuery_EuclideanExample pins the documented query example: the exact
// match at index 1 wins.
func TestQuery_EuclideanExample(t *testing.T) {
	q := []float64{0, 1, 2}
	library := [][]float64{{5, 6, 7}, {0, 1, 2}, {9, 9, 9}}

	idx, err := compare.Query(q, library, euclideanOpts(1))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

// TestQuery_TieBreaksLowestIndex verifies equal distances resolve to the
// lowest library index.
func TestQuery_TieBreaksLowestIndex(t *testing.T) {
	q := []float64{0, 0, 0}
	library := [][]float64{{1, 1, 1}, {1, 1, 1}, {-1, -1, -1}}

	for _, workers := range []int{1, 3} {
		idx, err := compare.Query(q, library, euclideanOpts(workers))
		require.NoError(t, err)
		assert.Equal(t, 0, idx, "tie must resolve to the lowest index (workers=%d)", workers)
	}
}

// TestQuery_TighteningBoundKeepsResultExact checks that the running-best
// abandon bound never changes the selected index.
func TestQuery_TighteningBoundKeepsResultExact(t *testing.T) {
	q := []float64{0, 1, 2, 3, 4}
	library := [][]float64{
		{9, 9, 9, 9, 9},
		{0, 1, 2, 3, 5},
		{5, 5, 5, 5, 5},
		{0, 1, 2, 3, 4},
		{7, 6, 5, 4, 3},
	}

	opts := compare.DefaultOptions()
	opts.Window = 1
	idx, err := compare.Query(q, library, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, idx, "exact match must win despite pruned rivals")
}

// TestQuery_SequentialParallelParity checks index parity across worker
// counts on a synthetic library.
func TestQuery_SequentialParallelParity(t *testing.T) {
	q := make([]float64, 40)
	for i := range q {
		q[i] = math.Sin(float64(i) / 5)
	}
	library := make([][]float64, 17)
	for k := range library {
		c := make([]float64, 40)
		for i := range c {
			c[i] = math.Sin(float64(i)/5 + float64(k)/3)
		}
		library[k] = c
	}

	want, err := compare.Query(q, library, euclideanOpts(1))
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 8, 64} {
		got, gerr := compare.Query(q, library, euclideanOpts(workers))
		require.NoError(t, gerr)
		assert.Equal(t, want, got, "parity with %d workers", workers)
	}
}

// TestQuery_ErrorPropagation verifies a single invalid pair fails the
// whole call, sequentially and in parallel.
func TestQuery_ErrorPropagation(t *testing.T) {
	q := []float64{0, 1, 2}
	library := [][]float64{{1, 2, 3}, {1, 2}, {4, 5, 6}} // middle entry mismatches

	for _, workers := range []int{1, 3} {
		_, err := compare.Query(q, library, euclideanOpts(workers))
		assert.ErrorIs(t, err, metric.ErrShapeMismatch, "workers=%d", workers)
	}
}

// TestQuery_EmptyLibrary verifies the empty-library sentinel.
func TestQuery_EmptyLibrary(t *testing.T) {
	_, err := compare.Query([]float64{1}, nil, compare.DefaultOptions())
	assert.ErrorIs(t, err, compare.ErrEmptyLibrary)
}

// TestScore_MatchesDistance verifies Score returns exact per-entry
// distances in library order, regardless of worker count.
func TestScore_MatchesDistance(t *testing.T) {
	q := []float64{1, 2, 3}
	library := [][]float64{{1, 2, 3}, {2, 3, 4}, {0, 0, 0}, {3, 2, 1}}

	mo := metric.DefaultOptions()
	mo.Metric = metric.Euclidean
	want := make([]float64, len(library))
	for i, c := range library {
		d, err := metric.Distance(q, c, mo)
		require.NoError(t, err)
		want[i] = d
	}

	for _, workers := range []int{1, 2, 16} {
		got, err := compare.Score(q, library, euclideanOpts(workers))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

// TestPairwiseArgmin_Example pins the documented sliding-window example:
// three equally spaced candidates select the middle one.
func TestPairwiseArgmin_Example(t *testing.T) {
	library := [][]float64{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}

	idx, err := compare.PairwiseArgmin(library, euclideanOpts(1))
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "middle candidate has the lowest total distance")
}

// TestPairwiseArgmin_Parity checks index parity across worker counts.
func TestPairwiseArgmin_Parity(t *testing.T) {
	library := make([][]float64, 13)
	for k := range library {
		c := make([]float64, 30)
		for i := range c {
			c[i] = math.Cos(float64(i)/4 + float64(k)/2)
		}
		library[k] = c
	}

	opts := compare.DefaultOptions()
	opts.Window = 1
	want, err := compare.PairwiseArgmin(library, opts)
	require.NoError(t, err)

	for _, workers := range []int{2, 5, 32} {
		opts.Workers = workers
		got, gerr := compare.PairwiseArgmin(library, opts)
		require.NoError(t, gerr)
		assert.Equal(t, want, got, "parity with %d workers", workers)
	}
}

// TestPairwiseArgmin_SingleCandidate verifies the trivial library.
func TestPairwiseArgmin_SingleCandidate(t *testing.T) {
	idx, err := compare.PairwiseArgmin([][]float64{{1, 2, 3}}, compare.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}
