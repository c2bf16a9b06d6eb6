package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapelet/metric"
)

// TestDistance_EmptyInput verifies that both metrics reject empty sequences.
func TestDistance_EmptyInput(t *testing.T) {
	opts := metric.DefaultOptions()

	_, err := metric.Distance(nil, []float64{1, 2, 3}, opts)
	assert.ErrorIs(t, err, metric.ErrEmptyInput, "empty first sequence should error")

	_, err = metric.Distance([]float64{1, 2, 3}, []float64{}, opts)
	assert.ErrorIs(t, err, metric.ErrEmptyInput, "empty second sequence should error")

	opts.Metric = metric.Euclidean
	_, err = metric.Distance(nil, nil, opts)
	assert.ErrorIs(t, err, metric.ErrEmptyInput, "euclidean on empty input should error")
}

// TestDistance_BadConfig verifies the window and abandon bounds are
// validated before any computation.
func TestDistance_BadConfig(t *testing.T) {
	a, b := []float64{1}, []float64{1}

	opts := metric.DefaultOptions()
	opts.Window = 1.5
	_, err := metric.Distance(a, b, opts)
	assert.ErrorIs(t, err, metric.ErrBadConfig, "window > 1 must error")

	opts = metric.DefaultOptions()
	opts.Window = -0.1
	_, err = metric.Distance(a, b, opts)
	assert.ErrorIs(t, err, metric.ErrBadConfig, "window < 0 must error")

	opts = metric.DefaultOptions()
	opts.Abandon = 0
	_, err = metric.Distance(a, b, opts)
	assert.ErrorIs(t, err, metric.ErrBadConfig, "abandon bound must be positive")

	opts = metric.DefaultOptions()
	opts.Metric = metric.Metric(42)
	_, err = metric.Distance(a, b, opts)
	assert.ErrorIs(t, err, metric.ErrUnknownMetric, "tags outside the closed set must error")
}

// TestDTW_Identity checks distance(a, a) == 0 for any window.
func TestDTW_Identity(t *testing.T) {
	a := []float64{4.2, 1.7, 3.3, 9.8, 2.2, 5.5}
	for _, w := range []float64{0, 0.3, 0.9, 1} {
		opts := metric.DefaultOptions()
		opts.Window = w

		dist, err := metric.Distance(a, a, opts)
		require.NoError(t, err)
		assert.Zero(t, dist, "identical sequences must have zero distance at w=%v", w)
	}
}

// TestDTW_Symmetry checks distance(a,b) == distance(b,a) with r=∞.
func TestDTW_Symmetry(t *testing.T) {
	a := []float64{0, 1, 2, 3, 2, 1}
	b := []float64{0, 2, 2, 1}
	opts := metric.DefaultOptions()
	opts.Window = 1

	ab, err := metric.Distance(a, b, opts)
	require.NoError(t, err)
	ba, err := metric.Distance(b, a, opts)
	require.NoError(t, err)
	assert.Equal(t, ab, ba, "DTW must be symmetric")
}

// TestDTW_KnownDistance pins the accumulated-cost recurrence on a small
// hand-computed instance.
func TestDTW_KnownDistance(t *testing.T) {
	opts := metric.DefaultOptions()
	opts.Window = 1

	dist, err := metric.Distance([]float64{0, 1, 2}, []float64{0, 2, 2}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dist, 1e-12, "hand-computed DTW distance")
}

// TestDTW_BandMonotonicity checks that widening the band never increases
// the optimal cost.
func TestDTW_BandMonotonicity(t *testing.T) {
	a := []float64{0, 0, 1, 2, 1, 0, 3, 1}
	b := []float64{0, 1, 1, 1, 0, 2}

	prev := math.Inf(1)
	for _, w := range []float64{0, 0.2, 0.5, 1} {
		opts := metric.DefaultOptions()
		opts.Window = w

		dist, err := metric.Distance(a, b, opts)
		require.NoError(t, err)
		assert.LessOrEqual(t, dist, prev, "wider band must not increase cost (w=%v)", w)
		prev = dist
	}
}

// TestDTW_ZeroWindowDegenerate verifies the documented degenerate case:
// w=0 with unequal lengths has an unreachable terminal cell and yields
// +Inf, not an error.
func TestDTW_ZeroWindowDegenerate(t *testing.T) {
	opts := metric.DefaultOptions()
	opts.Window = 0

	dist, err := metric.Distance([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "w=0 with length mismatch should yield +Inf")

	// Equal lengths degrade to a pointwise alignment.
	dist, err = metric.Distance([]float64{1, 2, 3}, []float64{2, 2, 5}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1+0+2, dist, 1e-12, "w=0 equal lengths is the pointwise cost sum")
}

// TestDTW_EarlyAbandon checks the abandon contract: the partial result is
// strictly above the bound and never above the exact distance.
func TestDTW_EarlyAbandon(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{10, 10, 10}

	exactOpts := metric.DefaultOptions()
	exactOpts.Window = 1
	exact, err := metric.Distance(a, b, exactOpts)
	require.NoError(t, err)
	require.Equal(t, 30.0, exact, "sanity: exact distance of the instance")

	opts := exactOpts
	opts.Abandon = 5
	partial, err := metric.Distance(a, b, opts)
	require.NoError(t, err)
	assert.Greater(t, partial, opts.Abandon, "abandoned value must exceed the bound")
	assert.LessOrEqual(t, partial, exact, "abandoned value is a lower bound of the exact distance")

	// A bound above the exact distance never triggers abandoning.
	opts.Abandon = 100
	full, err := metric.Distance(a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, exact, full, "generous bound must reproduce the exact distance")
}

// TestEuclidean_KnownDistance pins the L2 result and the shape contract.
func TestEuclidean_KnownDistance(t *testing.T) {
	opts := metric.DefaultOptions()
	opts.Metric = metric.Euclidean

	dist, err := metric.Distance([]float64{0, 1, 2}, []float64{3, 4, 5}, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(27), dist, 1e-12)

	_, err = metric.Distance([]float64{0, 1, 2}, []float64{3, 4}, opts)
	assert.ErrorIs(t, err, metric.ErrShapeMismatch, "unequal lengths must error")
}

// TestEuclidean_EarlyAbandon checks the squared-sum abandon path.
func TestEuclidean_EarlyAbandon(t *testing.T) {
	a := []float64{0, 0, 0, 0}
	b := []float64{5, 5, 5, 5}

	opts := metric.DefaultOptions()
	opts.Metric = metric.Euclidean
	exact, err := metric.Distance(a, b, opts)
	require.NoError(t, err)

	opts.Abandon = 6
	partial, err := metric.Distance(a, b, opts)
	require.NoError(t, err)
	assert.Greater(t, partial, opts.Abandon)
	assert.LessOrEqual(t, partial, exact)
}

// TestMetric_String covers the tag names used in diagnostics.
func TestMetric_String(t *testing.T) {
	assert.Equal(t, "dtw", metric.DTW.String())
	assert.Equal(t, "euclidean", metric.Euclidean.String())
	assert.Equal(t, "unknown", metric.Metric(42).String())
}
