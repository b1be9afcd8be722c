package stats

import (
	"math"
	"testing"
)

func TestCategoricalOptionsNormalize(t *testing.T) {
	opts := CategoricalOptions{}.Normalize()
	if opts.SupportUnits != DefaultSupportUnits {
		t.Errorf("SupportUnits = %f, want %f", opts.SupportUnits, DefaultSupportUnits)
	}
	if opts.Alpha != DefaultAlpha {
		t.Errorf("Alpha = %f, want %f", opts.Alpha, DefaultAlpha)
	}
	if opts.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %g, want %g", opts.Tolerance, DefaultTolerance)
	}
	if opts.PlotFloor != DefaultPlotFloor {
		t.Errorf("PlotFloor = %f, want %f", opts.PlotFloor, DefaultPlotFloor)
	}
}

func TestCategoricalOptionsNormalizeKeepsExplicit(t *testing.T) {
	in := CategoricalOptions{
		ExpectedProb: []float64{0.3, 0.7},
		SupportUnits: 3,
		Alpha:        0.01,
		Tolerance:    1e-6,
		PlotFloor:    -5,
	}
	out := in.Normalize()
	if out.SupportUnits != 3 || out.Alpha != 0.01 || out.Tolerance != 1e-6 || out.PlotFloor != -5 {
		t.Errorf("explicit options overwritten: %+v", out)
	}
	if len(out.ExpectedProb) != 2 {
		t.Errorf("expected probabilities dropped: %v", out.ExpectedProb)
	}
}

func TestCategoricalOptionsNormalizeRejectsBadValues(t *testing.T) {
	out := CategoricalOptions{SupportUnits: -1, Alpha: 1.5, Tolerance: -1e-4, PlotFloor: 2}.Normalize()
	if out.SupportUnits != DefaultSupportUnits || out.Alpha != DefaultAlpha {
		t.Errorf("out-of-range values not replaced: %+v", out)
	}
	if out.Tolerance != DefaultTolerance || out.PlotFloor != DefaultPlotFloor {
		t.Errorf("out-of-range values not replaced: %+v", out)
	}
}

func TestIntervalContainsAndWidth(t *testing.T) {
	iv := Interval{Kind: IntervalConfidence, Level: 0.95, Lower: 0.3, Upper: 0.8}
	if !iv.Contains(0.5) {
		t.Error("0.5 should be inside [0.3, 0.8]")
	}
	if iv.Contains(0.2) || iv.Contains(0.9) {
		t.Error("points outside the bounds reported as contained")
	}
	if math.Abs(iv.Width()-0.5) > 1e-12 {
		t.Errorf("width = %f, want 0.5", iv.Width())
	}
}
