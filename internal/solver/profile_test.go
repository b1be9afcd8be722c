package solver

import (
	"math"
	"testing"
)

func TestNewBinomial_RejectsBoundaryCounts(t *testing.T) {
	cases := []struct {
		name string
		a, r float64
	}{
		{"zero successes", 0, 5},
		{"zero failures", 5, 0},
		{"negative", -1, 5},
		{"nan", math.NaN(), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewBinomial(tc.a, tc.r); err == nil {
				t.Errorf("expected error for a=%v r=%v", tc.a, tc.r)
			}
		})
	}
}

func TestBinomial_MLEAndRatio(t *testing.T) {
	b, err := NewBinomial(6, 4)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(b.MLE()-0.6) > 1e-12 {
		t.Errorf("expected MLE 0.6, got %f", b.MLE())
	}
	if r := b.LogLikRatio(b.MLE()); math.Abs(r) > 1e-12 {
		t.Errorf("log-likelihood ratio at the MLE should be 0, got %g", r)
	}
	if r := b.LogLikRatio(0.3); r >= 0 {
		t.Errorf("ratio away from the MLE should be negative, got %g", r)
	}

	// The spec scenario value: 6 ln(0.6/0.5) + 4 ln(0.4/0.5).
	want := 6*math.Log(0.6/0.5) + 4*math.Log(0.4/0.5)
	if got := b.LogLikRatio(0.5); math.Abs(got-(-want)) > 1e-9 {
		t.Errorf("ratio at 0.5 = %g, want %g", got, -want)
	}
}

func TestSolveInterval_BracketsMLE(t *testing.T) {
	b, _ := NewBinomial(6, 4)

	iv := SolveInterval(b, -2, 1e-4)

	if !iv.Converged {
		t.Fatalf("expected convergence, residuals %g / %g", iv.LowerResidual, iv.UpperResidual)
	}
	p := b.MLE()
	if !(iv.Lower < p && p < iv.Upper) {
		t.Errorf("interval [%f, %f] must bracket the MLE %f", iv.Lower, iv.Upper, p)
	}
	if iv.Lower <= 0 || iv.Upper >= 1 {
		t.Errorf("bounds must stay inside (0,1): [%f, %f]", iv.Lower, iv.Upper)
	}
	// At each bound the profile has dropped by 2 support units.
	for _, x := range []float64{iv.Lower, iv.Upper} {
		if d := b.LogLikRatio(x) - (-2); math.Abs(d) > 0.01 {
			t.Errorf("profile at bound %f off target by %g", x, d)
		}
	}
}

func TestSolveInterval_Idempotent(t *testing.T) {
	b, _ := NewBinomial(17, 33)

	a1 := SolveInterval(b, -2, 1e-4)
	a2 := SolveInterval(b, -2, 1e-4)

	if math.Abs(a1.Lower-a2.Lower) > 1e-4 || math.Abs(a1.Upper-a2.Upper) > 1e-4 {
		t.Errorf("reruns differ beyond tolerance: %v vs %v", a1, a2)
	}
}

func TestSolveInterval_MonotoneInGoal(t *testing.T) {
	b, _ := NewBinomial(6, 4)

	narrow := SolveInterval(b, -1, 1e-4)
	wide := SolveInterval(b, -3, 1e-4)

	if wide.Upper-wide.Lower < narrow.Upper-narrow.Lower {
		t.Errorf("larger support units must not shrink the interval: %f < %f",
			wide.Upper-wide.Lower, narrow.Upper-narrow.Lower)
	}
}

func TestSolveInterval_SymmetricWhenBalanced(t *testing.T) {
	b, _ := NewBinomial(7, 7)

	if b.MLE() != 0.5 {
		t.Fatalf("expected MLE 0.5, got %f", b.MLE())
	}
	iv := SolveInterval(b, -2, 1e-4)

	left := 0.5 - iv.Lower
	right := iv.Upper - 0.5
	if math.Abs(left-right) > 2e-4 {
		t.Errorf("interval should be symmetric about 0.5: left %f right %f", left, right)
	}
}
