// Package preprocess prepares univariate numeric sequences for shapelet
// extraction: smoothing, normalization, resampling and phase alignment.
// It is a thin collaborator of the pipeline — every function takes a
// sequence and returns a new one, never mutating its input.
//
// ✨ Provided transforms:
//   - Smooth            — centered moving average (output shrinks by period−1)
//   - ZNormalize        — subtract the mean, divide by the std deviation
//   - QuantileNormalize — subtract a chosen quantile
//   - MinMaxNormalize   — rescale into [0,1]
//   - Resample          — linear interpolation to an exact target length
//   - Rescale           — Resample by a length factor
//   - Reinterpolate     — tile a sequence up to a window length
//   - Pad               — zero-pad on the right to a target length
//   - PhaseSync         — drop the prefix before the first prominent peak
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapelet/preprocess"
//
//	s, err := preprocess.Smooth(raw, 5)
//	s, err = preprocess.ZNormalize(s)
//	s, err = preprocess.PhaseSync(s, 0.9)
package preprocess
