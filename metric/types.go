package metric

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("metric: input sequences must be non-empty")

	// ErrShapeMismatch indicates Euclidean distance on unequal-length operands.
	ErrShapeMismatch = errors.New("metric: euclidean distance requires equal-length sequences")

	// ErrBadConfig indicates Window outside [0,1], a non-positive Abandon
	// bound, or a NaN parameter.
	ErrBadConfig = errors.New("metric: window must be in [0,1] and abandon bound must be positive")

	// ErrUnknownMetric indicates a Metric tag outside the closed set.
	ErrUnknownMetric = errors.New("metric: unknown metric tag")
)

// Metric selects the distance function by tag. The tag set is closed:
// callers pick a tag, they do not inject callables.
type Metric uint8

const (
	// DTW is Dynamic Time Warping with a banded warping window.
	DTW Metric = iota

	// Euclidean is the L2 norm of pointwise differences; operands must
	// have equal length.
	Euclidean
)

// String returns the canonical lowercase name of the metric tag.
func (m Metric) String() string {
	switch m {
	case DTW:
		return "dtw"
	case Euclidean:
		return "euclidean"
	default:
		return "unknown"
	}
}

// DefaultWindow is the default warping-window fraction. The band halfwidth
// is ⌈Window·max(len(a),len(b))⌉ cells around the diagonal.
const DefaultWindow = 0.9

// Options configures a distance computation.
//
// Fields:
//   - Metric  — distance function tag (DTW or Euclidean).
//   - Window  — warping-window fraction w ∈ [0,1]; 0 forces diagonal-only
//     alignment, 1 leaves DTW unconstrained. Ignored by Euclidean.
//   - Abandon — early-abandon bound r ∈ (0, +Inf]. When the running cost
//     provably exceeds r the computation stops and returns a partial
//     lower bound. +Inf disables abandoning (exact distance).
type Options struct {
	Metric  Metric
	Window  float64
	Abandon float64
}

// DefaultOptions returns the documented defaults: DTW, Window=DefaultWindow,
// Abandon=+Inf (exact distances).
func DefaultOptions() Options {
	return Options{
		Metric:  DTW,
		Window:  DefaultWindow,
		Abandon: math.Inf(1),
	}
}

// Coord is one point of a DTW alignment path: sample I of the first
// sequence is matched to sample J of the second (both 0-based).
type Coord struct {
	I, J int
}

// validate rejects malformed options before any computation begins.
func (o Options) validate() error {
	if math.IsNaN(o.Window) || o.Window < 0 || o.Window > 1 {
		return ErrBadConfig
	}
	if math.IsNaN(o.Abandon) || o.Abandon <= 0 {
		return ErrBadConfig
	}
	switch o.Metric {
	case DTW, Euclidean:
		return nil
	default:
		return ErrUnknownMetric
	}
}
