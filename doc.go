// Package shapelet extracts representative subsequences (“shapelets”)
// from univariate time series, using Dynamic Time Warping as the core
// similarity measure.
//
// 🚀 What is a shapelet?
//
//	A shapelet is a single subsequence that summarizes a set of candidate
//	subsequences drawn from a longer series — the “typical cycle” of a
//	gait recording, the “canonical beat” of an ECG, the recurring motif
//	of a sensor trace. Shapelets are widely used in:
//	  • Time-series classification & clustering
//	  • Gesture and activity recognition
//	  • Anomaly detection over repetitive signals
//
// ✨ What the module provides:
//   - metric/     — banded, early-abandoning DTW + Euclidean distance
//   - compare/    — query / score / pairwise-argmin over sequence libraries,
//     sequential or parallel with identical results
//   - extract/    — random, sliding-window and peak-bounded candidate extraction
//   - barycenter/ — consensus sequences: interpolated average & DTW barycenter averaging
//   - preprocess/ — smoothing, normalization, resampling, phase alignment
//   - stats/      — descriptive statistics & simple series features
//
// The root package ties these together into three end-to-end strategies:
//
//	res, err := shapelet.Exhaustive(series, shapelet.DefaultOptions())
//	res, err := shapelet.Random(series, 100, opts)
//	res, err := shapelet.Barycenter(series, opts)
//
// Every stage is a pure function: it takes inputs, returns a new value, and
// never mutates shared state. All randomness is seeded and deterministic.
//
//	go get github.com/katalvlaran/shapelet
package shapelet
