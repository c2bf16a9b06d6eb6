package barycenter

import (
	"math"

	"github.com/katalvlaran/shapelet/preprocess"
)

// Average resamples every sequence of the set to the mean set length
// (rounded to nearest) via linear interpolation and returns the
// elementwise mean. For a set of identical equal-length sequences the
// resampling is the identity transform and the result equals the input.
//
// Complexity: O(k·L) for k sequences of target length L.
func Average(set [][]float64) ([]float64, error) {
	if len(set) == 0 {
		return nil, ErrEmptySet
	}

	var total int
	for _, c := range set {
		if len(c) == 0 {
			return nil, ErrEmptySet
		}
		total += len(c)
	}
	length := int(math.Round(float64(total) / float64(len(set))))

	out := make([]float64, length)
	for _, c := range set {
		r, err := preprocess.Resample(c, length)
		if err != nil {
			return nil, err
		}
		for j, v := range r {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(len(set))
	}

	return out, nil
}
