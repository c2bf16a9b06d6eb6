package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptySeries indicates a statistic over zero samples.
	ErrEmptySeries = errors.New("stats: series must be non-empty")

	// ErrBadQuantile indicates a quantile outside [0,1].
	ErrBadQuantile = errors.New("stats: quantile must be in [0,1]")

	// ErrUnknownFeature indicates a Feature tag outside the closed set.
	ErrUnknownFeature = errors.New("stats: unknown feature tag")
)

// Feature selects a statistic by tag. The tag set is closed and the
// implementations are registered once at package init: callers pick tags,
// they do not inject callables.
type Feature uint8

const (
	Min Feature = iota
	Max
	Mean
	Median
	Variance
	Std
	Skewness
	Kurtosis
	IQR
	Energy
	ZeroCrossings
)

// String returns the canonical lowercase name of the feature tag.
func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}

	return "unknown"
}

var featureNames = [...]string{
	"min", "max", "mean", "median", "var", "std",
	"skewness", "kurtosis", "iqr", "energy", "zero_crossings",
}

// featureFns maps each tag to a pure function over a non-empty series.
// Indexed by Feature; order must match the constant block above.
var featureFns = [...]func([]float64) float64{
	minOf, maxOf, meanOf, medianOf, varianceOf, stdOf,
	skewnessOf, kurtosisOf, iqrOf, energyOf, zeroCrossingsOf,
}

// Extract evaluates the requested features over s and returns them keyed
// by tag. The input is validated once; an unknown tag fails the whole
// call with ErrUnknownFeature.
//
// Complexity: O(len(features)·n), plus O(n·log n) when a quantile-based
// feature (Median, IQR) is requested.
func Extract(s []float64, features ...Feature) (map[Feature]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}

	out := make(map[Feature]float64, len(features))
	for _, f := range features {
		if int(f) >= len(featureFns) {
			return nil, ErrUnknownFeature
		}
		out[f] = featureFns[f](s)
	}

	return out, nil
}

// Quantile returns the q-th quantile of s using linear interpolation
// between the closest order statistics.
func Quantile(s []float64, q float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, ErrBadQuantile
	}

	return quantileOf(s, q), nil
}

// Of returns the value of a single feature over s.
func Of(s []float64, f Feature) (float64, error) {
	out, err := Extract(s, f)
	if err != nil {
		return 0, err
	}

	return out[f], nil
}

func minOf(s []float64) float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

func maxOf(s []float64) float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

func meanOf(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}

	return sum / float64(len(s))
}

func medianOf(s []float64) float64 { return quantileOf(s, 0.5) }

func varianceOf(s []float64) float64 {
	mu := meanOf(s)
	var sum float64
	for _, v := range s {
		d := v - mu
		sum += d * d
	}

	return sum / float64(len(s))
}

func stdOf(s []float64) float64 { return math.Sqrt(varianceOf(s)) }

// standardizedMoment returns E[(x-μ)^p] / σ^p. NaN for constant input
// (σ=0), matching the usual numeric convention.
func standardizedMoment(s []float64, p float64) float64 {
	mu, sigma := meanOf(s), stdOf(s)
	var sum float64
	for _, v := range s {
		sum += math.Pow(v-mu, p)
	}

	return sum / float64(len(s)) / math.Pow(sigma, p)
}

func skewnessOf(s []float64) float64 { return standardizedMoment(s, 3) }

func kurtosisOf(s []float64) float64 { return standardizedMoment(s, 4) }

func iqrOf(s []float64) float64 { return quantileOf(s, 0.75) - quantileOf(s, 0.25) }

func energyOf(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v * v
	}

	return sum
}

// zeroCrossingsOf counts sign changes between consecutive samples, where
// zero is its own sign (a touch of the axis counts as a change).
func zeroCrossingsOf(s []float64) float64 {
	var count int
	for i := 1; i < len(s); i++ {
		if sign(s[i]) != sign(s[i-1]) {
			count++
		}
	}

	return float64(count)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// quantileOf assumes a non-empty series and a validated q.
func quantileOf(s []float64, q float64) float64 {
	sorted := make([]float64, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
