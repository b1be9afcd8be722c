package support

import (
	"fmt"
	"math"

	"gosupport/domain/core"
	"gosupport/domain/stats"
	"gosupport/internal/distributions"
	"gosupport/internal/solver"
)

// OneWay computes support statistics for a one-way categorical table.
// A nil opts.ExpectedProb means the uniform null model over categories.
// When the table has exactly 2 categories the result additionally carries
// the binomial profile: MLE, null probability and the solved confidence,
// support and plot-extent intervals.
func (e *Engine) OneWay(observed []float64, opts stats.CategoricalOptions) (*stats.OneWayResult, error) {
	opts = opts.Normalize()

	if len(observed) < 2 {
		return nil, core.NewValidationError("observed", core.ErrTooFewCategories)
	}
	if err := validateCounts(observed); err != nil {
		return nil, err
	}

	k := len(observed)
	n := 0.0
	for _, c := range observed {
		n += c
	}
	if n <= 0 {
		return nil, core.NewValidationError("observed", core.ErrInsufficientData)
	}

	expProb, err := expectedProbabilities(opts.ExpectedProb, k)
	if err != nil {
		return nil, err
	}

	// The two-category path requires both counts strictly positive: the MLE
	// would sit on the boundary of (0,1) otherwise and the profile
	// likelihood is undefined there.
	if k == 2 && (observed[0] == 0 || observed[1] == 0) {
		return nil, core.NewValidationError("observed", core.ErrZeroBinomialCount)
	}

	expected := make([]float64, k)
	for i, p := range expProb {
		expected[i] = p * n
	}

	res := &stats.OneWayResult{
		ID:         core.NewAnalysisID(),
		Kind:       stats.AnalysisOneWay,
		Observed:   append([]float64(nil), observed...),
		Expected:   expected,
		Metrics:    categoricalMetrics(observed, expected, k-1, int(n)),
		ComputedAt: core.Now(),
	}

	if k == 2 {
		profile, warnings, err := e.binomialProfile(observed[0], observed[1], expProb[0], opts)
		if err != nil {
			return nil, err
		}
		res.Binomial = profile
		res.Warnings = warnings
	}

	return res, nil
}

// expectedProbabilities validates an expected probability vector, defaulting
// to uniform when absent.
func expectedProbabilities(expProb []float64, k int) ([]float64, error) {
	if expProb == nil {
		uniform := make([]float64, k)
		for i := range uniform {
			uniform[i] = 1 / float64(k)
		}
		return uniform, nil
	}
	if len(expProb) != k {
		return nil, core.NewValidationError("expected",
			fmt.Errorf("length %d does not match %d categories: %w", len(expProb), k, core.ErrMissingValue))
	}
	sum := 0.0
	for i, p := range expProb {
		if math.IsNaN(p) {
			return nil, core.NewCategoryError(i, core.ErrMissingValue)
		}
		if p <= 0 {
			return nil, core.NewCategoryError(i, core.ErrZeroExpected)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-6 {
		return nil, core.NewValidationError("expected", core.ErrExpectedNotUnit)
	}
	return expProb, nil
}

// categoricalMetrics computes the shared support block for observed counts
// against expected counts.
func categoricalMetrics(observed, expected []float64, df, sampleSize int) stats.SupportMetrics {
	s := 0.0
	chi := 0.0
	for i, obs := range observed {
		exp := expected[i]
		s += obs * (math.Log(floorOne(obs)) - math.Log(exp))
		d := obs - exp
		chi += d * d / exp
	}
	g := 2 * s

	return stats.SupportMetrics{
		Support:          s,
		CorrectedSupport: s - float64(df-1)/2,
		DF:               df,
		ChiSquare:        chi,
		ChiSquareP:       distributions.ChiSquarePValue(chi, df),
		G:                g,
		GP:               distributions.ChiSquarePValue(g, df),
		TooGood:          tooGood(df, chi),
		SampleSize:       sampleSize,
	}
}

// binomialProfile solves the three interval families for a two-category
// table. All three use the same solver and bracketing, varying only the
// target log-likelihood offset; nothing is cached between them.
func (e *Engine) binomialProfile(a, r, null float64, opts stats.CategoricalOptions) (*stats.BinomialProfile, []string, error) {
	b, err := solver.NewBinomial(a, r)
	if err != nil {
		return nil, nil, core.NewValidationError("observed", err)
	}

	ciGoal := -distributions.ChiSquareQuantile(1-opts.Alpha, 1) / 2
	supGoal := -opts.SupportUnits
	plotGoal := opts.PlotFloor

	ci := toInterval(solver.SolveInterval(b, ciGoal, opts.Tolerance), stats.IntervalConfidence, 1-opts.Alpha)
	sup := toInterval(solver.SolveInterval(b, supGoal, opts.Tolerance), stats.IntervalSupport, opts.SupportUnits)
	plot := toInterval(solver.SolveInterval(b, plotGoal, opts.Tolerance), stats.IntervalPlotExtent, -opts.PlotFloor)

	var warnings []string
	for _, iv := range []stats.Interval{ci, sup, plot} {
		if !iv.Converged {
			msg := fmt.Sprintf("%s interval: degraded precision (residuals %.3g / %.3g)",
				iv.Kind, iv.LowerResidual, iv.UpperResidual)
			warnings = append(warnings, msg)
			e.log.Warn("oneway: %s", msg)
		}
	}

	return &stats.BinomialProfile{
		Successes:  a,
		Failures:   r,
		MLE:        b.MLE(),
		Null:       null,
		Confidence: ci,
		Support:    sup,
		PlotExtent: plot,
	}, warnings, nil
}

func toInterval(bounds solver.IntervalBounds, kind stats.IntervalKind, level float64) stats.Interval {
	return stats.Interval{
		Kind:          kind,
		Level:         level,
		Lower:         bounds.Lower,
		Upper:         bounds.Upper,
		LowerResidual: bounds.LowerResidual,
		UpperResidual: bounds.UpperResidual,
		Converged:     bounds.Converged,
	}
}
