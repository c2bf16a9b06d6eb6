package extract

import "errors"

var (
	// ErrEmptySeries indicates extraction from a series with no samples.
	ErrEmptySeries = errors.New("extract: source series must be non-empty")

	// ErrInvalidConfig indicates bound violations: non-positive lengths,
	// MinDist > MaxDist, bounds exceeding the series length, a threshold
	// outside [0,1], or a non-positive candidate count.
	ErrInvalidConfig = errors.New("extract: invalid extraction bounds")

	// ErrInsufficientCandidates indicates the strategy could not satisfy
	// the requested peak constraints — fewer than two qualifying peaks, or
	// no pair of consecutive peaks within the separation bounds.
	ErrInsufficientCandidates = errors.New("extract: not enough qualifying candidates")
)

// Candidate is a contiguous subsequence of a source series, materialized
// as its own copy and tagged with its origin for traceability.
type Candidate struct {
	// Values holds the extracted samples; it does not alias the source.
	Values []float64

	// Start is the offset of the first sample in the source series.
	Start int

	// Length equals len(Values).
	Length int
}

// Defaults for extraction bounds, matching a ~1Hz cyclic signal sampled
// at the rates the strategies were tuned on.
const (
	DefaultMinDist = 60
	DefaultMaxDist = 150
	DefaultThres   = 0.9
)

// defaultSeed is the fixed seed used when callers pass Seed==0, keeping
// the zero-value Options deterministic.
const defaultSeed int64 = 1

// Options bounds an extraction run.
//
// Fields:
//   - MinDist, MaxDist — candidate length bounds for Random, and peak
//     separation bounds for PeakBounded. 0 < MinDist ≤ MaxDist ≤ len(series).
//   - Thres — quantile of the series amplitude a peak must exceed
//     (PeakBounded only), in [0,1].
//   - Seed — RNG seed for Random; 0 selects a fixed default seed.
type Options struct {
	MinDist int
	MaxDist int
	Thres   float64
	Seed    int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinDist: DefaultMinDist,
		MaxDist: DefaultMaxDist,
		Thres:   DefaultThres,
	}
}

// validate rejects malformed bounds against a concrete series length
// before any computation begins.
func (o Options) validate(seriesLen int) error {
	if o.MinDist <= 0 || o.MaxDist <= 0 || o.MinDist > o.MaxDist || o.MaxDist > seriesLen {
		return ErrInvalidConfig
	}
	if o.Thres < 0 || o.Thres > 1 {
		return ErrInvalidConfig
	}

	return nil
}
