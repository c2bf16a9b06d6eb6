package shapelet

import (
	"errors"
	"math"

	"github.com/katalvlaran/shapelet/barycenter"
	"github.com/katalvlaran/shapelet/extract"
	"github.com/katalvlaran/shapelet/metric"
)

// ErrUnknownBarycenter indicates a BarycenterMode tag outside the closed set.
var ErrUnknownBarycenter = errors.New("shapelet: unknown barycenter mode")

// BarycenterMode selects how the Barycenter strategy synthesizes the
// shapelet from the candidate set.
type BarycenterMode uint8

const (
	// BarycenterInterpolated is DTW barycenter averaging (DBA); see
	// barycenter.Interpolated.
	BarycenterInterpolated BarycenterMode = iota

	// BarycenterAverage is the resample-and-mean mode; see
	// barycenter.Average.
	BarycenterAverage
)

// String returns the canonical lowercase name of the mode tag.
func (m BarycenterMode) String() string {
	switch m {
	case BarycenterInterpolated:
		return "interpolated"
	case BarycenterAverage:
		return "average"
	default:
		return "unknown"
	}
}

// Options is the full configuration of an end-to-end extraction. Every
// strategy reads only the fields it needs; unread fields are ignored.
//
// Fields:
//   - MinDist, MaxDist — candidate length / peak separation bounds
//     (Random, Barycenter).
//   - WindowLength, Step — sliding-window geometry (Exhaustive).
//   - Thres — peak amplitude quantile in [0,1] (Barycenter).
//   - Window, Abandon, Metric — distance configuration; see metric.Options.
//   - Workers — worker count for pairwise selection; see compare.Options.
//   - Barycenter, MaxIterations, Tolerance — synthesis mode and DBA
//     bounds; see barycenter.Options.
//   - Seed — RNG seed for Random; 0 selects a fixed default seed.
type Options struct {
	MinDist      int
	MaxDist      int
	WindowLength int
	Step         int
	Thres        float64

	Window  float64
	Abandon float64
	Metric  metric.Metric
	Workers int

	Barycenter    BarycenterMode
	MaxIterations int
	Tolerance     float64

	Seed int64
}

// DefaultWindowLength and DefaultStep bound the Exhaustive strategy's
// sliding window.
const (
	DefaultWindowLength = 80
	DefaultStep         = 1
)

// DefaultOptions returns the documented defaults: DTW with a 0.9 warping
// window and exact distances, sequential execution, peak bounds of
// [60, 150] at the 0.9 amplitude quantile, an 80-sample window sliding by
// one, and interpolated (DBA) barycenter synthesis.
func DefaultOptions() Options {
	return Options{
		MinDist:      extract.DefaultMinDist,
		MaxDist:      extract.DefaultMaxDist,
		WindowLength: DefaultWindowLength,
		Step:         DefaultStep,
		Thres:        extract.DefaultThres,

		Window:  metric.DefaultWindow,
		Abandon: math.Inf(1),
		Metric:  metric.DTW,
		Workers: 1,

		Barycenter:    BarycenterInterpolated,
		MaxIterations: barycenter.DefaultMaxIterations,
		Tolerance:     barycenter.DefaultTolerance,
	}
}

// Result is the outcome of an end-to-end strategy. The shapelet is the
// only value intended to outlive the call; the candidate set is retained
// for inspection and plotting.
type Result struct {
	// Shapelet is the representative sequence. For selection strategies
	// it references the winning candidate's values; for barycenter
	// synthesis it is freshly allocated.
	Shapelet []float64

	// Candidates is the full extracted candidate set, in extraction order.
	Candidates []extract.Candidate

	// Index is the position of the selected candidate, or -1 when the
	// shapelet was synthesized rather than selected.
	Index int
}
