package barycenter

import (
	"errors"
	"math"
)

var (
	// ErrEmptySet indicates a barycenter over zero sequences or a set
	// containing an empty sequence.
	ErrEmptySet = errors.New("barycenter: candidate set must contain non-empty sequences")

	// ErrBadConfig indicates a non-positive iteration cap or a negative
	// or NaN convergence tolerance.
	ErrBadConfig = errors.New("barycenter: iteration cap must be positive and tolerance non-negative")
)

// Defaults for the iterative (DBA) mode. The cap is deliberately
// conservative: DBA usually settles within a handful of iterations, and
// the cap bounds the cost when it does not.
const (
	DefaultMaxIterations = 15
	DefaultTolerance     = 1e-6
)

// Options configures the Interpolated (DBA) mode.
//
// Fields:
//   - MaxIterations — hard bound on refinement passes (≥ 1).
//   - Tolerance — convergence threshold on the maximum pointwise change
//     of the reference between passes; 0 disables the convergence exit
//     and always runs MaxIterations passes.
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// validate rejects malformed options before any computation begins.
func (o Options) validate() error {
	if o.MaxIterations < 1 {
		return ErrBadConfig
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return ErrBadConfig
	}

	return nil
}
