package stats

import (
	"fmt"
	"math"

	"gosupport/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// AnalysisKind defines the data shape an analysis was computed for
type AnalysisKind string

const (
	AnalysisOneWay     AnalysisKind = "oneway_categorical"
	AnalysisTwoWay     AnalysisKind = "twoway_categorical"
	AnalysisANOVA      AnalysisKind = "oneway_anova"
	AnalysisSampleSize AnalysisKind = "ttest_sample_size"
)

// IntervalKind tags which family an interval belongs to
type IntervalKind string

const (
	IntervalConfidence IntervalKind = "confidence" // classical 1-alpha interval
	IntervalSupport    IntervalKind = "support"    // L-unit likelihood interval
	IntervalPlotExtent IntervalKind = "plot"       // sizing for likelihood-curve display only
)

// Interval is a solved parameter-space interval.
// INVARIANTS:
// - Lower < Upper
// - Level is 1-alpha for confidence intervals, support units otherwise
// - LowerResidual/UpperResidual are the objective values at each bound;
//   near-zero means the solver hit the target likelihood level
type Interval struct {
	Kind          IntervalKind `json:"kind"`
	Level         float64      `json:"level"`
	Lower         float64      `json:"lower"`
	Upper         float64      `json:"upper"`
	LowerResidual float64      `json:"lower_residual"`
	UpperResidual float64      `json:"upper_residual"`
	Converged     bool         `json:"converged"`
}

// Contains reports whether x lies strictly inside the interval.
func (iv Interval) Contains(x float64) bool {
	return iv.Lower < x && x < iv.Upper
}

// Width returns the interval width in parameter space.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// SupportMetrics contains the statistics every categorical analysis reports.
// INVARIANTS:
// - G = 2 * Support (definitional identity)
// - CorrectedSupport = Support - (DF-1)/2
// - p-values in [0, 1]
type SupportMetrics struct {
	Support          float64 `json:"support"`           // uncorrected S
	CorrectedSupport float64 `json:"corrected_support"` // AIC-style Sc
	DF               int     `json:"df"`
	ChiSquare        float64 `json:"chi_square"`
	ChiSquareP       float64 `json:"chi_square_p"`
	G                float64 `json:"g"` // likelihood-ratio statistic, 2S
	GP               float64 `json:"g_p"`
	TooGood          float64 `json:"too_good"` // variance-support diagnostic
	SampleSize       int     `json:"sample_size"`
}

// BinomialProfile is the extra payload for the two-category path, consumed by
// the reporting collaborator to draw the likelihood curve.
type BinomialProfile struct {
	Successes  float64  `json:"successes"`
	Failures   float64  `json:"failures"`
	MLE        float64  `json:"mle"`
	Null       float64  `json:"null"` // expected probability of the first category
	Confidence Interval `json:"confidence"`
	Support    Interval `json:"support"`
	PlotExtent Interval `json:"plot_extent"`
}

// ============================================================================
// ANALYSIS RESULTS (value objects, one per call, never mutated)
// ============================================================================

// OneWayResult holds a one-way categorical support analysis.
type OneWayResult struct {
	ID         core.AnalysisID `json:"id"`
	Kind       AnalysisKind    `json:"kind"`
	Observed   []float64       `json:"observed"`
	Expected   []float64       `json:"expected"` // expected counts under the model
	Metrics    SupportMetrics  `json:"metrics"`
	Binomial   *BinomialProfile `json:"binomial,omitempty"` // set iff exactly 2 categories
	Warnings   []string        `json:"warnings,omitempty"`
	ComputedAt core.Timestamp  `json:"computed_at"`
}

// MainEffect is a marginal support block in a two-way analysis.
type MainEffect struct {
	Support          float64 `json:"support"`
	CorrectedSupport float64 `json:"corrected_support"`
	DF               int     `json:"df"`
}

// TrendResult is the linear-by-linear association statistic for tables with
// at least 3 ordered columns.
type TrendResult struct {
	Support   float64 `json:"support"` // M^2 / 2
	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
	DF        int     `json:"df"` // always 1
}

// TwoWayResult holds a two-way contingency table support analysis.
// Metrics describes the interaction (independence) test.
type TwoWayResult struct {
	ID           core.AnalysisID `json:"id"`
	Kind         AnalysisKind    `json:"kind"`
	Rows         int             `json:"rows"`
	Cols         int             `json:"cols"`
	Metrics      SupportMetrics  `json:"metrics"`
	RowEffect    MainEffect      `json:"row_effect"`
	ColumnEffect MainEffect      `json:"column_effect"`
	TotalSupport float64         `json:"total_support"`
	Trend        *TrendResult    `json:"trend,omitempty"` // set iff cols >= 3
	Warnings     []string        `json:"warnings,omitempty"`
	ComputedAt   core.Timestamp  `json:"computed_at"`
}

// ContrastSupport compares one mean model against another.
type ContrastSupport struct {
	Support          float64 `json:"support"`
	CorrectedSupport float64 `json:"corrected_support"`
	F                float64 `json:"f"`
	PValue           float64 `json:"p_value"`
}

// ANOVAResult holds a one-way ANOVA support analysis.
type ANOVAResult struct {
	ID         core.AnalysisID `json:"id"`
	Kind       AnalysisKind    `json:"kind"`
	Groups     int             `json:"groups"`
	N          int             `json:"n"`
	GroupSizes []int           `json:"group_sizes"`
	GroupMeans []float64       `json:"group_means"`

	SSBetween float64 `json:"ss_between"`
	SSWithin  float64 `json:"ss_within"`
	SSTotal   float64 `json:"ss_total"`
	DFBetween int     `json:"df_between"`
	DFWithin  int     `json:"df_within"`
	F         float64 `json:"f"`
	PValue    float64 `json:"p_value"`

	// Support for the full-groups model against the null (no grouping),
	// Hurvich-Tsai corrected for small samples.
	Support          float64 `json:"support"`
	CorrectedSupport float64 `json:"corrected_support"`

	Contrast1 []float64        `json:"contrast1,omitempty"`
	Contrast2 []float64        `json:"contrast2,omitempty"`
	Contrast1VsGroups    *ContrastSupport `json:"contrast1_vs_groups,omitempty"`
	Contrast1VsContrast2 *ContrastSupport `json:"contrast1_vs_contrast2,omitempty"`

	Warnings   []string       `json:"warnings,omitempty"`
	ComputedAt core.Timestamp `json:"computed_at"`
}

// ============================================================================
// OPTIONS (explicit defaults instead of overloaded signatures)
// ============================================================================

// Default analysis parameters.
const (
	DefaultSupportUnits = 2.0
	DefaultAlpha        = 0.05
	DefaultTolerance    = 1e-4
	DefaultPlotFloor    = -10.0 // support offset bounding the plotted curve
)

// CategoricalOptions configures a one-way categorical analysis.
type CategoricalOptions struct {
	ExpectedProb []float64 // nil means uniform over categories
	SupportUnits float64   // L-unit support interval, default 2
	Alpha        float64   // confidence interval level, default 0.05
	Tolerance    float64   // solver bracket tolerance, default 1e-4
	PlotFloor    float64   // plot-extent support offset, default -10
}

// DefaultCategoricalOptions returns the documented defaults.
func DefaultCategoricalOptions() CategoricalOptions {
	return CategoricalOptions{
		SupportUnits: DefaultSupportUnits,
		Alpha:        DefaultAlpha,
		Tolerance:    DefaultTolerance,
		PlotFloor:    DefaultPlotFloor,
	}
}

// Normalize fills zero-valued fields with defaults.
func (o CategoricalOptions) Normalize() CategoricalOptions {
	if o.SupportUnits <= 0 {
		o.SupportUnits = DefaultSupportUnits
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		o.Alpha = DefaultAlpha
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.PlotFloor >= 0 {
		o.PlotFloor = DefaultPlotFloor
	}
	return o
}

// ANOVAOptions configures a one-way ANOVA analysis.
// Nil contrasts default to centered polynomial linear and quadratic
// coefficients over the encoded group order.
type ANOVAOptions struct {
	Contrast1 []float64
	Contrast2 []float64
}

// SampleSizeSpec configures a t-test sample size computation.
type SampleSizeSpec struct {
	MisleadingWeakProb float64 // combined misleading+weak-evidence target
	SD                 float64
	EffectSize         float64 // Cohen's d
	SupportLevel       float64 // target support S
	Paired             bool
}

// Validate checks the spec's numeric ranges.
func (s SampleSizeSpec) Validate() error {
	if math.IsNaN(s.MisleadingWeakProb) || s.MisleadingWeakProb <= 0 || s.MisleadingWeakProb >= 1 {
		return fmt.Errorf("misleading+weak probability must be in (0,1), got %v", s.MisleadingWeakProb)
	}
	if math.IsNaN(s.SD) || s.SD <= 0 {
		return fmt.Errorf("standard deviation must be > 0, got %v", s.SD)
	}
	if math.IsNaN(s.EffectSize) || s.EffectSize == 0 {
		return fmt.Errorf("effect size must be nonzero, got %v", s.EffectSize)
	}
	if math.IsNaN(s.SupportLevel) || s.SupportLevel <= 0 {
		return fmt.Errorf("support level must be > 0, got %v", s.SupportLevel)
	}
	return nil
}
