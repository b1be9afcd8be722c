package report

import (
	"fmt"
	"math"
	"strings"

	"gosupport/domain/stats"
	"gosupport/internal/solver"
)

// CurveScale selects how the likelihood curve is plotted.
type CurveScale string

const (
	ScaleLinear CurveScale = "linear" // normalized likelihood exp(S)
	ScaleLog    CurveScale = "log"    // support units (natural log)
)

// CurvePoint is one sample of the profile likelihood curve.
type CurvePoint struct {
	X          float64 `json:"x"`
	Support    float64 `json:"support"`    // log-likelihood ratio to the MLE
	Likelihood float64 `json:"likelihood"` // exp(Support), 1 at the MLE
}

// SampleCurve evaluates the profile likelihood over the plot-extent interval.
// The extent was solved for exactly this purpose; evaluation stays strictly
// inside (0,1).
func SampleCurve(profile *stats.BinomialProfile, points int) []CurvePoint {
	if points < 2 {
		points = 100
	}
	b := solver.Binomial{Successes: profile.Successes, Failures: profile.Failures}
	lo, hi := profile.PlotExtent.Lower, profile.PlotExtent.Upper

	out := make([]CurvePoint, points)
	step := (hi - lo) / float64(points-1)
	for i := range out {
		x := lo + float64(i)*step
		s := b.LogLikRatio(x)
		out[i] = CurvePoint{X: x, Support: s, Likelihood: math.Exp(s)}
	}
	return out
}

// RenderASCII draws the likelihood curve as a text chart, marking the MLE
// ('M'), the null value ('N') and the support-interval band ('=').
func RenderASCII(profile *stats.BinomialProfile, scale CurveScale, width, height int) string {
	if width < 20 {
		width = 60
	}
	if height < 5 {
		height = 15
	}
	points := SampleCurve(profile, width)

	value := func(p CurvePoint) float64 {
		if scale == ScaleLog {
			return p.Support
		}
		return p.Likelihood
	}
	minV, maxV := value(points[0]), value(points[0])
	for _, p := range points {
		v := value(p)
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		maxV = minV + 1
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}

	lo, hi := profile.PlotExtent.Lower, profile.PlotExtent.Upper
	col := func(x float64) int {
		c := int(math.Round((x - lo) / (hi - lo) * float64(width-1)))
		if c < 0 {
			c = 0
		}
		if c >= width {
			c = width - 1
		}
		return c
	}

	for i, p := range points {
		row := height - 1 - int(math.Round((value(p)-minV)/(maxV-minV)*float64(height-1)))
		grid[row][i] = '*'
	}

	// Support band on the bottom line, then the markers on top of it.
	band := grid[height-1]
	for c := col(profile.Support.Lower); c <= col(profile.Support.Upper); c++ {
		if band[c] == ' ' {
			band[c] = '='
		}
	}
	band[col(profile.MLE)] = 'M'
	if profile.Null > lo && profile.Null < hi {
		band[col(profile.Null)] = 'N'
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf("x: [%.4f, %.4f]  M=MLE %.4f  N=null %.4f  ==support interval\n",
		lo, hi, profile.MLE, profile.Null))
	return sb.String()
}
