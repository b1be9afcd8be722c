package support

import (
	"fmt"
	"math"

	"gosupport/domain/core"
	"gosupport/domain/stats"
	"gosupport/internal/distributions"
)

// TwoWay computes support statistics for a two-way contingency table:
// the interaction support against the independence model, row and column
// main-effect supports from the marginal totals, the total table support,
// and, for tables with at least 3 ordered columns, the linear trend
// statistic.
func (e *Engine) TwoWay(table [][]float64) (*stats.TwoWayResult, error) {
	rows, cols, err := validateTable(table)
	if err != nil {
		return nil, err
	}

	rowTotals := make([]float64, rows)
	colTotals := make([]float64, cols)
	n := 0.0
	for i, row := range table {
		for j, cell := range row {
			rowTotals[i] += cell
			colTotals[j] += cell
			n += cell
		}
	}
	for i, t := range rowTotals {
		if t == 0 {
			return nil, core.NewValidationError(fmt.Sprintf("row %d", i), core.ErrZeroMarginal)
		}
	}
	for j, t := range colTotals {
		if t == 0 {
			return nil, core.NewValidationError(fmt.Sprintf("column %d", j), core.ErrZeroMarginal)
		}
	}

	// Interaction: observed against independence-model expected counts.
	dfInt := (rows - 1) * (cols - 1)
	sInt := 0.0
	chi := 0.0
	for i, row := range table {
		for j, obs := range row {
			exp := rowTotals[i] * colTotals[j] / n
			sInt += obs * (math.Log(floorOne(obs)) - math.Log(exp))
			d := obs - exp
			chi += d * d / exp
		}
	}
	g := 2 * sInt

	res := &stats.TwoWayResult{
		ID:   core.NewAnalysisID(),
		Kind: stats.AnalysisTwoWay,
		Rows: rows,
		Cols: cols,
		Metrics: stats.SupportMetrics{
			Support:          sInt,
			CorrectedSupport: sInt - float64(dfInt-1)/2,
			DF:               dfInt,
			ChiSquare:        chi,
			ChiSquareP:       distributions.ChiSquarePValue(chi, dfInt),
			G:                g,
			GP:               distributions.ChiSquarePValue(g, dfInt),
			TooGood:          tooGood(dfInt, chi),
			SampleSize:       int(n),
		},
		RowEffect:    marginalEffect(rowTotals, n),
		ColumnEffect: marginalEffect(colTotals, n),
		TotalSupport: totalSupport(table, n, rows*cols),
		ComputedAt:   core.Now(),
	}

	if cols >= 3 {
		res.Trend = linearTrend(table, rowTotals, colTotals, n)
	}

	return res, nil
}

// validateTable checks shape and cell values, returning the dimensions.
func validateTable(table [][]float64) (rows, cols int, err error) {
	rows = len(table)
	if rows < 2 {
		return 0, 0, core.NewValidationError("table", core.ErrTooFewRows)
	}
	cols = len(table[0])
	for i, row := range table {
		if len(row) != cols {
			return 0, 0, core.NewValidationError(fmt.Sprintf("row %d", i), core.ErrRaggedTable)
		}
		for j, cell := range row {
			if math.IsNaN(cell) || math.IsInf(cell, 0) {
				return 0, 0, core.NewCellError(i, j, core.ErrMissingValue)
			}
			if cell < 0 {
				return 0, 0, core.NewCellError(i, j, core.ErrNegativeCount)
			}
		}
	}
	if cols < 2 {
		return 0, 0, core.NewValidationError("table", core.ErrTooFewColumns)
	}
	return rows, cols, nil
}

// marginalEffect computes a main-effect support from marginal totals against
// an equal split, corrected by ((levels-1)-1)/2.
func marginalEffect(totals []float64, n float64) stats.MainEffect {
	levels := len(totals)
	uniform := n / float64(levels)
	s := 0.0
	for _, t := range totals {
		s += t * (math.Log(floorOne(t)) - math.Log(uniform))
	}
	df := levels - 1
	return stats.MainEffect{
		Support:          s,
		CorrectedSupport: s - float64(df-1)/2,
		DF:               df,
	}
}

// totalSupport is the whole-table support against a uniform spread over all
// cells. When no zero-count floor fires it decomposes exactly into
// row + column + interaction supports.
func totalSupport(table [][]float64, n float64, cells int) float64 {
	uniform := n / float64(cells)
	s := 0.0
	for _, row := range table {
		for _, obs := range row {
			s += obs * (math.Log(floorOne(obs)) - math.Log(uniform))
		}
	}
	return s
}

// linearTrend computes the linear-by-linear association statistic
// M^2 = (n-1) r^2 with integer scores over the encoded row and column order.
// The trend support is M^2 / 2.
func linearTrend(table [][]float64, rowTotals, colTotals []float64, n float64) *stats.TrendResult {
	var sumUV, sumU, sumV, sumU2, sumV2 float64
	for i, row := range table {
		u := float64(i + 1)
		for j, cell := range row {
			v := float64(j + 1)
			sumUV += cell * u * v
		}
	}
	for i, t := range rowTotals {
		u := float64(i + 1)
		sumU += t * u
		sumU2 += t * u * u
	}
	for j, t := range colTotals {
		v := float64(j + 1)
		sumV += t * v
		sumV2 += t * v * v
	}

	num := sumUV - sumU*sumV/n
	den := math.Sqrt((sumU2 - sumU*sumU/n) * (sumV2 - sumV*sumV/n))
	r := 0.0
	if den > 0 {
		r = num / den
	}
	m2 := (n - 1) * r * r

	return &stats.TrendResult{
		Support:   m2 / 2,
		ChiSquare: m2,
		PValue:    distributions.ChiSquarePValue(m2, 1),
		DF:        1,
	}
}
