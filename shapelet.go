package shapelet

import (
	"github.com/katalvlaran/shapelet/barycenter"
	"github.com/katalvlaran/shapelet/compare"
	"github.com/katalvlaran/shapelet/extract"
)

// Random extracts qty random candidates with lengths in
// [opts.MinDist, opts.MaxDist] and selects the one with the minimum total
// pairwise distance to the others.
//
// Complexity: O(qty²/2) distance calls after extraction.
func Random(series []float64, qty int, opts Options) (Result, error) {
	cands, err := extract.Random(series, qty, extractOptions(opts))
	if err != nil {
		return Result{}, err
	}

	return selectByPairwise(cands, opts)
}

// Exhaustive extracts every sliding-window candidate
// (opts.WindowLength, opts.Step) and selects the one with the minimum
// total pairwise distance to the others.
//
// Complexity: O(k²/2) distance calls for k = ⌊(n-L)/S⌋+1 candidates.
func Exhaustive(series []float64, opts Options) (Result, error) {
	cands, err := extract.Windowed(series, opts.WindowLength, opts.Step)
	if err != nil {
		return Result{}, err
	}

	return selectByPairwise(cands, opts)
}

// Barycenter extracts the subsequences between prominent peaks and
// synthesizes their consensus sequence in the mode selected by
// opts.Barycenter. The returned shapelet is freshly allocated and
// Result.Index is -1.
func Barycenter(series []float64, opts Options) (Result, error) {
	cands, err := extract.PeakBounded(series, extractOptions(opts))
	if err != nil {
		return Result{}, err
	}

	var ref []float64
	switch opts.Barycenter {
	case BarycenterAverage:
		ref, err = barycenter.Average(values(cands))
	case BarycenterInterpolated:
		ref, err = barycenter.Interpolated(values(cands), barycenter.Options{
			MaxIterations: opts.MaxIterations,
			Tolerance:     opts.Tolerance,
		})
	default:
		return Result{}, ErrUnknownBarycenter
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Shapelet: ref, Candidates: cands, Index: -1}, nil
}

// selectByPairwise runs the pairwise-argmin selection over the candidate
// set; the winning candidate becomes the shapelet, by reference.
func selectByPairwise(cands []extract.Candidate, opts Options) (Result, error) {
	idx, err := compare.PairwiseArgmin(values(cands), compare.Options{
		Metric:  opts.Metric,
		Window:  opts.Window,
		Abandon: opts.Abandon,
		Workers: opts.Workers,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Shapelet: cands[idx].Values, Candidates: cands, Index: idx}, nil
}

// extractOptions projects the strategy options onto extract.Options.
func extractOptions(opts Options) extract.Options {
	return extract.Options{
		MinDist: opts.MinDist,
		MaxDist: opts.MaxDist,
		Thres:   opts.Thres,
		Seed:    opts.Seed,
	}
}

// values exposes the candidate samples as a plain sequence library.
func values(cands []extract.Candidate) [][]float64 {
	out := make([][]float64, len(cands))
	for i, c := range cands {
		out[i] = c.Values
	}

	return out
}
