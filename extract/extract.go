package extract

import "math/rand"

// newCandidate copies series[start:start+length] into a tagged Candidate.
func newCandidate(series []float64, start, length int) Candidate {
	values := make([]float64, length)
	copy(values, series[start:start+length])

	return Candidate{Values: values, Start: start, Length: length}
}

// Random extracts qty subsequences of uniformly random length within
// [MinDist, MaxDist], each at a uniformly random offset such that the
// subsequence fits in the series. Overlaps and duplicates are allowed.
//
// The draw is deterministic for a given opts.Seed (0 ⇒ fixed default).
//
// Complexity: O(qty·MaxDist).
func Random(series []float64, qty int, opts Options) ([]Candidate, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if qty <= 0 {
		return nil, ErrInvalidConfig
	}
	if err := opts.validate(len(series)); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]Candidate, 0, qty)
	for i := 0; i < qty; i++ {
		length := opts.MinDist + rng.Intn(opts.MaxDist-opts.MinDist+1)
		start := rng.Intn(len(series) - length + 1)
		out = append(out, newCandidate(series, start, length))
	}

	return out, nil
}

// Windowed extracts fixed-length subsequences at offsets 0, step, 2·step, …
// while the window still fits. A series of length n yields exactly
// ⌊(n-windowLength)/step⌋+1 candidates of length windowLength.
//
// Complexity: O(n·windowLength/step).
func Windowed(series []float64, windowLength, step int) ([]Candidate, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if windowLength <= 0 || step <= 0 || windowLength > len(series) {
		return nil, ErrInvalidConfig
	}

	out := make([]Candidate, 0, (len(series)-windowLength)/step+1)
	for start := 0; start+windowLength <= len(series); start += step {
		out = append(out, newCandidate(series, start, windowLength))
	}

	return out, nil
}

// PeakBounded extracts the subsequences between consecutive qualifying
// peaks. A peak qualifies when it exceeds the series quantile at
// opts.Thres and is at least opts.MinDist samples from any taller kept
// peak (see Peaks). A candidate is emitted for every consecutive peak
// pair whose separation lies within [MinDist, MaxDist]; pairs outside the
// bounds are skipped, never merged or split.
//
// Fails with ErrInsufficientCandidates when fewer than two peaks qualify
// or when no pair falls within the separation bounds — a degraded
// candidate set is never silently returned.
func PeakBounded(series []float64, opts Options) ([]Candidate, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if err := opts.validate(len(series)); err != nil {
		return nil, err
	}

	peaks, err := Peaks(series, opts.MinDist, opts.Thres)
	if err != nil {
		return nil, err
	}
	if len(peaks) < 2 {
		return nil, ErrInsufficientCandidates
	}

	out := make([]Candidate, 0, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		sep := peaks[i] - peaks[i-1]
		if sep < opts.MinDist || sep > opts.MaxDist {
			continue
		}
		out = append(out, newCandidate(series, peaks[i-1], sep))
	}
	if len(out) == 0 {
		return nil, ErrInsufficientCandidates
	}

	return out, nil
}
