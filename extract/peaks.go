package extract

import (
	"sort"

	"github.com/katalvlaran/shapelet/stats"
)

// Peaks returns the indices of the prominent local maxima of the series,
// in ascending order.
//
// A sample is a local maximum when it is strictly greater than both
// neighbors (endpoints never qualify). Maxima below the series amplitude
// quantile at thres are dropped. The remaining peaks are then thinned so
// that no two are closer than minDist samples, with taller peaks taking
// priority over shorter ones (equal heights: the earlier peak wins).
//
// The threshold is a quantile of the whole series, not of the peak
// heights — a peak qualifies when it rises above the bulk of the signal.
//
// Complexity: O(n + k²) for k raw maxima; k is small for real signals.
func Peaks(series []float64, minDist int, thres float64) ([]int, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if minDist < 1 || thres < 0 || thres > 1 {
		return nil, ErrInvalidConfig
	}

	cut, err := stats.Quantile(series, thres)
	if err != nil {
		return nil, err
	}

	// Stage 1 - strict local maxima above the amplitude cut.
	var raw []int
	for i := 1; i < len(series)-1; i++ {
		if series[i] > series[i-1] && series[i] > series[i+1] && series[i] >= cut {
			raw = append(raw, i)
		}
	}

	// Stage 2 - enforce minimum separation, tallest first.
	order := make([]int, len(raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return series[raw[order[a]]] > series[raw[order[b]]]
	})

	kept := make([]int, 0, len(raw))
	for _, k := range order {
		p := raw[k]
		ok := true
		for _, q := range kept {
			if abs(p-q) < minDist {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, p)
		}
	}
	sort.Ints(kept)

	return kept, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
