// Package report formats analysis results for human consumption. It consumes
// finished result records and never feeds anything back into the numeric
// core.
package report

import (
	"fmt"
	"io"
	"math"

	"gosupport/domain/stats"
)

// TextReporter writes plain-text reports, optionally with an ASCII
// likelihood curve for the two-category case.
type TextReporter struct {
	w         io.Writer
	PlotCurve bool
	Scale     CurveScale
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w, Scale: ScaleLinear}
}

// ReportOneWay writes a one-way categorical report.
func (t *TextReporter) ReportOneWay(res *stats.OneWayResult) error {
	fmt.Fprintf(t.w, "One-way categorical support (n=%d, %d categories)\n",
		res.Metrics.SampleSize, len(res.Observed))
	t.writeMetrics(res.Metrics)

	if res.Binomial != nil {
		b := res.Binomial
		fmt.Fprintf(t.w, "  MLE p = %.4f  (null %.4f)\n", b.MLE, b.Null)
		t.writeInterval("confidence", b.Confidence)
		t.writeInterval("support", b.Support)
		if t.PlotCurve {
			fmt.Fprintln(t.w, "Likelihood curve:")
			fmt.Fprint(t.w, RenderASCII(b, t.Scale, 64, 14))
		}
	}
	t.writeWarnings(res.Warnings)
	return nil
}

// ReportTwoWay writes a two-way contingency table report.
func (t *TextReporter) ReportTwoWay(res *stats.TwoWayResult) error {
	fmt.Fprintf(t.w, "Two-way categorical support (%dx%d table, n=%d)\n",
		res.Rows, res.Cols, res.Metrics.SampleSize)
	fmt.Fprintln(t.w, "Interaction:")
	t.writeMetrics(res.Metrics)
	fmt.Fprintf(t.w, "  row main effect      S = %8.4f  Sc = %8.4f  df = %d\n",
		res.RowEffect.Support, res.RowEffect.CorrectedSupport, res.RowEffect.DF)
	fmt.Fprintf(t.w, "  column main effect   S = %8.4f  Sc = %8.4f  df = %d\n",
		res.ColumnEffect.Support, res.ColumnEffect.CorrectedSupport, res.ColumnEffect.DF)
	fmt.Fprintf(t.w, "  total table support  S = %8.4f\n", res.TotalSupport)
	if res.Trend != nil {
		fmt.Fprintf(t.w, "  linear trend         S = %8.4f  chi2 = %.4f  p = %.4g\n",
			res.Trend.Support, res.Trend.ChiSquare, res.Trend.PValue)
	}
	t.writeWarnings(res.Warnings)
	return nil
}

// ReportANOVA writes a one-way ANOVA report.
func (t *TextReporter) ReportANOVA(res *stats.ANOVAResult) error {
	fmt.Fprintf(t.w, "One-way ANOVA support (%d groups, n=%d)\n", res.Groups, res.N)
	fmt.Fprintf(t.w, "  SS between = %.4f (df %d)  SS within = %.4f (df %d)\n",
		res.SSBetween, res.DFBetween, res.SSWithin, res.DFWithin)
	fmt.Fprintf(t.w, "  F = %.4f  p = %.4g\n", res.F, res.PValue)
	fmt.Fprintf(t.w, "  groups vs null       S = %8.4f  Sc = %8.4f\n",
		res.Support, res.CorrectedSupport)
	if cs := res.Contrast1VsGroups; cs != nil {
		fmt.Fprintf(t.w, "  contrast1 vs groups  S = %8.4f  Sc = %8.4f  F = %.4f  p = %.4g\n",
			cs.Support, cs.CorrectedSupport, cs.F, cs.PValue)
	}
	if cs := res.Contrast1VsContrast2; cs != nil {
		fmt.Fprintf(t.w, "  contrast1 vs contrast2  S = %8.4f  F = %.4f  p = %.4g\n",
			cs.Support, cs.F, cs.PValue)
	}
	t.writeWarnings(res.Warnings)
	return nil
}

func (t *TextReporter) writeMetrics(m stats.SupportMetrics) {
	fmt.Fprintf(t.w, "  S = %.4f  Sc = %.4f  df = %d\n", m.Support, m.CorrectedSupport, m.DF)
	fmt.Fprintf(t.w, "  chi2 = %.4f (p = %.4g)  G = %.4f (p = %.4g)\n",
		m.ChiSquare, m.ChiSquareP, m.G, m.GP)
	if math.IsInf(m.TooGood, 1) {
		fmt.Fprintf(t.w, "  too-good diagnostic: observed exactly matches expected\n")
	} else {
		fmt.Fprintf(t.w, "  too-good diagnostic = %.4f\n", m.TooGood)
	}
}

func (t *TextReporter) writeInterval(name string, iv stats.Interval) {
	fmt.Fprintf(t.w, "  %-10s interval (level %.4g): [%.4f, %.4f]  residuals %.2e / %.2e\n",
		name, iv.Level, iv.Lower, iv.Upper, iv.LowerResidual, iv.UpperResidual)
}

func (t *TextReporter) writeWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(t.w, "  warning: %s\n", w)
	}
}
