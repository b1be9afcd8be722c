package stats

import (
	"errors"
	"math"
	"testing"

	"gosupport/domain/core"
)

func TestPolynomialLinearContrast(t *testing.T) {
	c := PolynomialLinearContrast(3)
	want := []float64{-1, 0, 1}
	for i := range want {
		if math.Abs(c[i]-want[i]) > 1e-12 {
			t.Errorf("linear[%d] = %f, want %f", i, c[i], want[i])
		}
	}

	c4 := PolynomialLinearContrast(4)
	want4 := []float64{-1.5, -0.5, 0.5, 1.5}
	for i := range want4 {
		if math.Abs(c4[i]-want4[i]) > 1e-12 {
			t.Errorf("linear4[%d] = %f, want %f", i, c4[i], want4[i])
		}
	}
}

func TestPolynomialContrastsCenteredAndOrthogonal(t *testing.T) {
	for k := 3; k <= 7; k++ {
		lin := PolynomialLinearContrast(k)
		quad := PolynomialQuadraticContrast(k)

		var sumL, sumQ, dot float64
		for i := range lin {
			sumL += lin[i]
			sumQ += quad[i]
			dot += lin[i] * quad[i]
		}
		if math.Abs(sumL) > 1e-9 {
			t.Errorf("k=%d: linear contrast sums to %f, want 0", k, sumL)
		}
		if math.Abs(sumQ) > 1e-9 {
			t.Errorf("k=%d: quadratic contrast sums to %f, want 0", k, sumQ)
		}
		if math.Abs(dot) > 1e-9 {
			t.Errorf("k=%d: contrasts not orthogonal, dot = %f", k, dot)
		}
	}
}

func TestValidateContrast(t *testing.T) {
	if err := ValidateContrast([]float64{-1, 0, 1}, 3); err != nil {
		t.Errorf("valid contrast rejected: %v", err)
	}

	err := ValidateContrast([]float64{-1, 1}, 3)
	if !errors.Is(err, core.ErrContrastLength) {
		t.Errorf("wrong length: got %v", err)
	}

	err = ValidateContrast([]float64{-1, math.NaN(), 1}, 3)
	if !errors.Is(err, core.ErrMissingValue) {
		t.Errorf("NaN coefficient: got %v", err)
	}

	err = ValidateContrast([]float64{0, 0, 0}, 3)
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("all-zero contrast: got %v", err)
	}
}
