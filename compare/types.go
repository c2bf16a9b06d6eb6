package compare

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/shapelet/metric"
)

// ErrEmptyLibrary indicates a query or selection over zero sequences.
var ErrEmptyLibrary = errors.New("compare: library must contain at least one sequence")

// Options configures library-wide distance computations.
//
// Fields:
//   - Metric, Window, Abandon — forwarded to the metric package; see
//     metric.Options for their exact semantics.
//   - Workers — requested worker count. Values ≤ 1 select the sequential
//     path; larger values are clamped to runtime.NumCPU().
type Options struct {
	Metric  metric.Metric
	Window  float64
	Abandon float64
	Workers int
}

// DefaultOptions returns the metric defaults with sequential execution.
func DefaultOptions() Options {
	mo := metric.DefaultOptions()

	return Options{
		Metric:  mo.Metric,
		Window:  mo.Window,
		Abandon: mo.Abandon,
		Workers: 1,
	}
}

// metricOptions projects the engine options onto a per-call metric.Options.
func (o Options) metricOptions() metric.Options {
	return metric.Options{
		Metric:  o.Metric,
		Window:  o.Window,
		Abandon: o.Abandon,
	}
}

// workers clamps the requested worker count to [1, runtime.NumCPU()].
func (o Options) workers() int {
	w := o.Workers
	if w < 1 {
		w = 1
	}
	if n := runtime.NumCPU(); w > n {
		w = n
	}

	return w
}
