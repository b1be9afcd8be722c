package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gosupport/domain/stats"
)

// MarkdownOneWay renders a one-way result as a markdown document.
func MarkdownOneWay(res *stats.OneWayResult) string {
	var sb strings.Builder
	sb.WriteString("## One-way categorical support\n\n")
	writeMetricsTable(&sb, res.Metrics)
	if b := res.Binomial; b != nil {
		sb.WriteString(fmt.Sprintf("\nMLE p = %.4f, null p = %.4f\n\n", b.MLE, b.Null))
		sb.WriteString("| interval | level | lower | upper |\n|---|---|---|---|\n")
		for _, iv := range []stats.Interval{b.Confidence, b.Support} {
			sb.WriteString(fmt.Sprintf("| %s | %.4g | %.4f | %.4f |\n",
				iv.Kind, iv.Level, iv.Lower, iv.Upper))
		}
	}
	writeWarningList(&sb, res.Warnings)
	return sb.String()
}

// MarkdownTwoWay renders a two-way result as a markdown document.
func MarkdownTwoWay(res *stats.TwoWayResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Two-way categorical support (%dx%d)\n\n", res.Rows, res.Cols))
	writeMetricsTable(&sb, res.Metrics)
	sb.WriteString(fmt.Sprintf("\n- row main effect: S = %.4f (Sc = %.4f, df %d)\n",
		res.RowEffect.Support, res.RowEffect.CorrectedSupport, res.RowEffect.DF))
	sb.WriteString(fmt.Sprintf("- column main effect: S = %.4f (Sc = %.4f, df %d)\n",
		res.ColumnEffect.Support, res.ColumnEffect.CorrectedSupport, res.ColumnEffect.DF))
	sb.WriteString(fmt.Sprintf("- total table support: S = %.4f\n", res.TotalSupport))
	if res.Trend != nil {
		sb.WriteString(fmt.Sprintf("- linear trend: S = %.4f, chi2 = %.4f, p = %.4g\n",
			res.Trend.Support, res.Trend.ChiSquare, res.Trend.PValue))
	}
	writeWarningList(&sb, res.Warnings)
	return sb.String()
}

// MarkdownANOVA renders an ANOVA result as a markdown document.
func MarkdownANOVA(res *stats.ANOVAResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## One-way ANOVA support (%d groups, n = %d)\n\n", res.Groups, res.N))
	sb.WriteString(fmt.Sprintf("F(%d, %d) = %.4f, p = %.4g\n\n", res.DFBetween, res.DFWithin, res.F, res.PValue))
	sb.WriteString(fmt.Sprintf("- groups vs null: S = %.4f (Sc = %.4f)\n", res.Support, res.CorrectedSupport))
	if cs := res.Contrast1VsGroups; cs != nil {
		sb.WriteString(fmt.Sprintf("- contrast1 vs groups: S = %.4f (Sc = %.4f), F = %.4f, p = %.4g\n",
			cs.Support, cs.CorrectedSupport, cs.F, cs.PValue))
	}
	if cs := res.Contrast1VsContrast2; cs != nil {
		sb.WriteString(fmt.Sprintf("- contrast1 vs contrast2: S = %.4f, F = %.4f, p = %.4g\n",
			cs.Support, cs.F, cs.PValue))
	}
	writeWarningList(&sb, res.Warnings)
	return sb.String()
}

// RenderHTML converts a markdown report to an HTML fragment.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func writeMetricsTable(sb *strings.Builder, m stats.SupportMetrics) {
	tooGood := fmt.Sprintf("%.4f", m.TooGood)
	if math.IsInf(m.TooGood, 1) {
		tooGood = "inf"
	}
	sb.WriteString("| S | Sc | df | chi2 | p(chi2) | G | p(G) | too-good |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")
	sb.WriteString(fmt.Sprintf("| %.4f | %.4f | %d | %.4f | %.4g | %.4f | %.4g | %s |\n",
		m.Support, m.CorrectedSupport, m.DF, m.ChiSquare, m.ChiSquareP, m.G, m.GP, tooGood))
}

func writeWarningList(sb *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("> warning: %s\n", w))
	}
}
