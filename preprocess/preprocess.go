package preprocess

import (
	"errors"
	"math"

	"github.com/katalvlaran/shapelet/stats"
)

var (
	// ErrEmptySeries indicates a transform over zero samples.
	ErrEmptySeries = errors.New("preprocess: series must be non-empty")

	// ErrBadLength indicates a non-positive target length, a pad target
	// shorter than the input, or a smoothing period longer than the input.
	ErrBadLength = errors.New("preprocess: invalid target length or period")

	// ErrBadFactor indicates a rescale factor that is not a positive finite
	// number or would produce an empty output.
	ErrBadFactor = errors.New("preprocess: rescale factor must be positive and keep at least one sample")

	// ErrConstantSeries indicates a normalization that divides by the
	// spread of a constant series.
	ErrConstantSeries = errors.New("preprocess: series has zero spread")
)

// Resample interpolates s linearly onto `length` evenly spaced positions
// over its original index range [0, len(s)-1]. Resampling to the original
// length is the identity transform.
//
// Complexity: O(length).
func Resample(s []float64, length int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if length <= 0 {
		return nil, ErrBadLength
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = s[0]

		return out, nil
	}

	span := float64(len(s)-1) / float64(length-1)
	for k := range out {
		pos := float64(k) * span
		lo := int(pos)
		if lo >= len(s)-1 {
			out[k] = s[len(s)-1]
			continue
		}
		frac := pos - float64(lo)
		out[k] = s[lo] + frac*(s[lo+1]-s[lo])
	}

	return out, nil
}

// Rescale resamples s to ⌊len(s)·factor⌋ samples.
func Rescale(s []float64, factor float64) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return nil, ErrBadFactor
	}

	length := int(float64(len(s)) * factor)
	if length < 1 {
		return nil, ErrBadFactor
	}

	return Resample(s, length)
}

// Reinterpolate tiles s end-to-end until windowLength samples are filled,
// truncating the last repetition. Useful to stretch a short shapelet onto
// a fixed comparison window.
func Reinterpolate(s []float64, windowLength int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if windowLength <= 0 {
		return nil, ErrBadLength
	}

	out := make([]float64, windowLength)
	for i := range out {
		out[i] = s[i%len(s)]
	}

	return out, nil
}

// Pad right-pads s with zeros to the target length.
func Pad(s []float64, length int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if length < len(s) {
		return nil, ErrBadLength
	}

	out := make([]float64, length)
	copy(out, s)

	return out, nil
}

// Smooth applies a centered moving average of the given period. The
// output has len(s)-period+1 samples: the window never extends past the
// series, so the edges are dropped rather than padded.
//
// Complexity: O(len(s)) via a running cumulative sum.
func Smooth(s []float64, period int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if period <= 0 || period > len(s) {
		return nil, ErrBadLength
	}

	out := make([]float64, len(s)-period+1)
	var window float64
	for i, v := range s {
		window += v
		if i >= period {
			window -= s[i-period]
		}
		if i >= period-1 {
			out[i-period+1] = window / float64(period)
		}
	}

	return out, nil
}

// ZNormalize subtracts the mean and divides by the population standard
// deviation. A constant series has zero spread and is rejected.
func ZNormalize(s []float64) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	mu, _ := stats.Of(s, stats.Mean)
	sigma, _ := stats.Of(s, stats.Std)
	if sigma == 0 {
		return nil, ErrConstantSeries
	}

	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = (v - mu) / sigma
	}

	return out, nil
}

// QuantileNormalize subtracts the q-th quantile, centering the series on
// a robust baseline instead of the mean.
func QuantileNormalize(s []float64, q float64) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	base, err := stats.Quantile(s, q)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v - base
	}

	return out, nil
}

// MinMaxNormalize rescales the series into [0,1]. A constant series has
// zero range and is rejected.
func MinMaxNormalize(s []float64) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	lo, _ := stats.Of(s, stats.Min)
	hi, _ := stats.Of(s, stats.Max)
	if hi == lo {
		return nil, ErrConstantSeries
	}

	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = (v - lo) / (hi - lo)
	}

	return out, nil
}

// PhaseSync drops the prefix of s before its first prominent peak, so
// that several recordings of the same cyclic process start in phase.
//
// A sample qualifies as the first peak when the first difference turns
// from positive to negative, the second difference is negative, and the
// sample exceeds the series quantile at thres. If no sample qualifies the
// series is returned unchanged (as a copy).
func PhaseSync(s []float64, thres float64) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	cut, err := stats.Quantile(s, thres)
	if err != nil {
		return nil, err
	}

	first := 0
	prevDiff := 0.0
	for i := 1; i < len(s)-1; i++ {
		diff := s[i] - s[i-1]
		if i > 1 && diff < 0 && prevDiff > 0 && diff-prevDiff < 0 && s[i] > cut {
			first = i
			break
		}
		prevDiff = diff
	}

	out := make([]float64, len(s)-first)
	copy(out, s[first:])

	return out, nil
}
