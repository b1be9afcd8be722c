package stats

import (
	"math"

	"gosupport/domain/core"
)

// PolynomialLinearContrast returns centered, equally spaced linear contrast
// coefficients over k groups, respecting the encoded group order.
func PolynomialLinearContrast(k int) []float64 {
	c := make([]float64, k)
	mid := float64(k+1) / 2
	for i := range c {
		c[i] = float64(i+1) - mid
	}
	return c
}

// PolynomialQuadraticContrast returns centered quadratic contrast
// coefficients over k groups, orthogonal to the linear contrast.
func PolynomialQuadraticContrast(k int) []float64 {
	c := make([]float64, k)
	mid := float64(k+1) / 2
	// Subtracting the mean squared deviation centers the coefficients.
	shift := (float64(k)*float64(k) - 1) / 12
	for i := range c {
		d := float64(i+1) - mid
		c[i] = d*d - shift
	}
	return c
}

// ValidateContrast checks a contrast against the group count. By convention
// coefficients often sum to zero, but that is not enforced.
func ValidateContrast(contrast []float64, groups int) error {
	if len(contrast) != groups {
		return core.NewValidationError("contrast", core.ErrContrastLength)
	}
	allZero := true
	for _, c := range contrast {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return core.NewValidationError("contrast", core.ErrMissingValue)
		}
		if c != 0 {
			allZero = false
		}
	}
	if allZero {
		return core.NewValidationError("contrast", core.ErrInsufficientData)
	}
	return nil
}
