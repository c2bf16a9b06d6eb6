// Package stats computes descriptive statistics and simple features over
// univariate numeric sequences: moments, quantiles, energy and zero
// crossings. It is a thin collaborator of the shapelet pipeline — a
// feature-extraction stage consuming the sequences the pipeline produces.
//
// Individual accessors (Mean, Std, Quantile, …) validate their input and
// return plain float64 values. Extract evaluates a batch of features
// selected by the closed Feature tag set:
//
//	import "github.com/katalvlaran/shapelet/stats"
//
//	feats, err := stats.Extract(series, stats.Mean, stats.Std, stats.Energy)
//	fmt.Println(feats[stats.Mean])
//
// Conventions: variance and standard deviation are population moments
// (divide by n); skewness and kurtosis are the standardized third and
// fourth moments (kurtosis is not excess-adjusted); quantiles use linear
// interpolation between order statistics.
package stats
