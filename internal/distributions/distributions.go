// Package distributions provides unified access to the reference
// distributions the support engine needs, backed by gonum.
package distributions

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquarePValue computes the upper-tail p-value for a chi-square statistic.
func ChiSquarePValue(chiSquare float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return 1 - chiDist.CDF(chiSquare)
}

// ChiSquareQuantile computes the chi-square quantile (inverse CDF).
func ChiSquareQuantile(p float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 || p <= 0 || p >= 1 {
		return 0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return chiDist.Quantile(p)
}

// FTestPValue computes the upper-tail p-value for an F statistic (ANOVA).
func FTestPValue(fStatistic float64, df1, df2 int) float64 {
	if df1 <= 0 || df2 <= 0 {
		return 1.0
	}
	fDist := distuv.F{D1: float64(df1), D2: float64(df2)}
	return 1 - fDist.CDF(fStatistic)
}

// NormalCDF computes the standard normal cumulative distribution function.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the standard normal quantile (inverse CDF).
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
