// Package support computes evidential support statistics (scaled
// log-likelihood ratios) for categorical tables and one-way ANOVA contrasts,
// with profile-likelihood intervals for the two-category case.
package support

import (
	"math"

	"gosupport/domain/core"
	"gosupport/internal"
)

// Engine computes support statistics. It holds no cross-call state; every
// analysis is independent and callers may run many in parallel.
type Engine struct {
	log *internal.Logger
}

// NewEngine creates a support engine using the default logger.
func NewEngine() *Engine {
	return &Engine{log: internal.DefaultLogger}
}

// NewEngineWithLogger creates a support engine with an explicit logger.
func NewEngineWithLogger(log *internal.Logger) *Engine {
	return &Engine{log: log}
}

// floorOne applies the zero-count floor: a zero count contributes ln(1)=0
// instead of ln(0)=-Inf. The convention applies to the logarithm only, never
// to the count itself.
func floorOne(count float64) float64 {
	if count == 0 {
		return 1
	}
	return count
}

// validateCounts checks a sequence of categorical counts for missing or
// negative entries.
func validateCounts(counts []float64) error {
	for i, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return core.NewCategoryError(i, core.ErrMissingValue)
		}
		if c < 0 {
			return core.NewCategoryError(i, core.ErrNegativeCount)
		}
	}
	return nil
}

// tooGood computes the variance-support diagnostic
// df/2 * ln(df/chi2) - (df-chi2)/2. Positive values flag observed variation
// suspiciously close to the null expectation. Returns +Inf for chi2 == 0
// (observed exactly equal to expected).
func tooGood(df int, chiSquare float64) float64 {
	if chiSquare <= 0 {
		return math.Inf(1)
	}
	d := float64(df)
	return d/2*math.Log(d/chiSquare) - (d-chiSquare)/2
}
