package support

import (
	"fmt"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"gosupport/domain/core"
	"gosupport/domain/stats"
	"gosupport/internal/distributions"
)

// OneWayANOVA computes support for the full-groups model against the null
// (no grouping) from the sum-of-squares decomposition, plus contrast
// comparisons: contrast1 against the full-groups model and contrast1 against
// contrast2. Nil contrasts default to centered polynomial linear and
// quadratic coefficients over the sorted group labels. Unequal group sizes
// are handled by size-weighted contrast sums of squares.
func (e *Engine) OneWayANOVA(data []float64, groupLabels []int, opts stats.ANOVAOptions) (*stats.ANOVAResult, error) {
	grouped, labels, err := partitionGroups(data, groupLabels)
	if err != nil {
		return nil, err
	}
	k := len(labels)
	n := len(data)

	groupSizes := make([]int, k)
	groupMeans := make([]float64, k)
	for gi, values := range grouped {
		groupSizes[gi] = len(values)
		m, _ := mstats.Mean(values)
		groupMeans[gi] = m
	}

	grand, _ := mstats.Mean(data)
	ssTotal := 0.0
	for _, y := range data {
		d := y - grand
		ssTotal += d * d
	}
	ssWithin := 0.0
	for gi, values := range grouped {
		for _, y := range values {
			d := y - groupMeans[gi]
			ssWithin += d * d
		}
	}
	ssBetween := ssTotal - ssWithin

	if ssWithin <= 0 {
		return nil, core.NewValidationError("data",
			fmt.Errorf("zero within-group variance: %w", core.ErrInsufficientData))
	}

	dfBetween := k - 1
	dfWithin := n - k
	f := (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin))

	res := &stats.ANOVAResult{
		ID:         core.NewAnalysisID(),
		Kind:       stats.AnalysisANOVA,
		Groups:     k,
		N:          n,
		GroupSizes: groupSizes,
		GroupMeans: groupMeans,
		SSBetween:  ssBetween,
		SSWithin:   ssWithin,
		SSTotal:    ssTotal,
		DFBetween:  dfBetween,
		DFWithin:   dfWithin,
		F:          f,
		PValue:     distributions.FTestPValue(f, dfBetween, dfWithin),
		ComputedAt: core.Now(),
	}

	// Support for the groups model over the null, from the normal-model
	// identity S = (n/2) ln(SSE_null / SSE_full).
	s := float64(n) / 2 * math.Log(ssTotal/ssWithin)
	res.Support = s

	// Hurvich-Tsai small-sample correction: AICc penalty k*n/(n-k-1) per
	// model, with k counting means plus the variance parameter.
	kFull := k + 1
	kNull := 2
	if corrected, ok := aiccCorrected(s, n, kFull, kNull); ok {
		res.CorrectedSupport = corrected
	} else {
		res.CorrectedSupport = s - float64(kFull-kNull)
		res.Warnings = append(res.Warnings,
			"sample too small for Hurvich-Tsai correction, plain AIC penalty applied")
	}

	c1, c2, err := resolveContrasts(opts, k)
	if err != nil {
		return nil, err
	}
	res.Contrast1 = c1
	res.Contrast2 = c2

	if c1 != nil {
		cs, err := e.contrastVsGroups(c1, groupMeans, groupSizes, ssTotal, ssWithin, n, k, dfWithin)
		if err != nil {
			return nil, err
		}
		res.Contrast1VsGroups = cs
	}
	if c1 != nil && c2 != nil {
		cs, err := e.contrastVsContrast(c1, c2, groupMeans, groupSizes, ssTotal, ssWithin, n, dfWithin)
		if err != nil {
			return nil, err
		}
		res.Contrast1VsContrast2 = cs
	}

	return res, nil
}

// partitionGroups validates the observations and splits them by sorted group
// label, preserving the encoded group order.
func partitionGroups(data []float64, groupLabels []int) ([][]float64, []int, error) {
	if len(data) != len(groupLabels) {
		return nil, nil, core.NewValidationError("groups",
			fmt.Errorf("%d observations but %d group labels: %w", len(data), len(groupLabels), core.ErrMissingValue))
	}
	if len(data) == 0 {
		return nil, nil, core.NewValidationError("data", core.ErrInsufficientData)
	}
	for i, y := range data {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, core.NewValidationError(fmt.Sprintf("data[%d]", i), core.ErrMissingValue)
		}
	}

	byLabel := make(map[int][]float64)
	for i, y := range data {
		byLabel[groupLabels[i]] = append(byLabel[groupLabels[i]], y)
	}
	labels := make([]int, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	if len(labels) < 2 {
		return nil, nil, core.NewValidationError("groups", core.ErrTooFewGroups)
	}
	if len(data)-len(labels) < 1 {
		return nil, nil, core.NewValidationError("data", core.ErrInsufficientData)
	}

	grouped := make([][]float64, len(labels))
	for gi, label := range labels {
		grouped[gi] = byLabel[label]
	}
	return grouped, labels, nil
}

// resolveContrasts fills in the polynomial defaults. The quadratic default
// only exists for 3 or more groups.
func resolveContrasts(opts stats.ANOVAOptions, k int) (c1, c2 []float64, err error) {
	c1 = opts.Contrast1
	if c1 == nil {
		c1 = stats.PolynomialLinearContrast(k)
	}
	if err := stats.ValidateContrast(c1, k); err != nil {
		return nil, nil, err
	}

	c2 = opts.Contrast2
	if c2 == nil && k >= 3 {
		c2 = stats.PolynomialQuadraticContrast(k)
	}
	if c2 != nil {
		if err := stats.ValidateContrast(c2, k); err != nil {
			return nil, nil, err
		}
	}
	return c1, c2, nil
}

// contrastSS is the size-weighted contrast sum of squares
// (sum c_i m_i)^2 / (sum c_i^2 / n_i).
func contrastSS(contrast, means []float64, sizes []int) float64 {
	num := 0.0
	den := 0.0
	for i, c := range contrast {
		num += c * means[i]
		den += c * c / float64(sizes[i])
	}
	return num * num / den
}

// contrastVsGroups compares the single-contrast mean model (2 mean
// parameters) against the full-groups model. F and PValue are the classical
// single-df contrast test.
func (e *Engine) contrastVsGroups(contrast, means []float64, sizes []int, ssTotal, ssWithin float64, n, k, dfWithin int) (*stats.ContrastSupport, error) {
	ssC := contrastSS(contrast, means, sizes)
	sseContrast := ssTotal - ssC
	if sseContrast <= 0 {
		return nil, core.NewValidationError("contrast1",
			fmt.Errorf("contrast absorbs all variation: %w", core.ErrInsufficientData))
	}

	s := float64(n) / 2 * math.Log(ssWithin/sseContrast)
	corrected, ok := aiccCorrected(s, n, 3, k+1)
	if !ok {
		corrected = s - float64(3-(k+1))
	}

	fC := ssC / (ssWithin / float64(dfWithin))
	return &stats.ContrastSupport{
		Support:          s,
		CorrectedSupport: corrected,
		F:                fC,
		PValue:           distributions.FTestPValue(fC, 1, dfWithin),
	}, nil
}

// contrastVsContrast compares two single-contrast mean models. Both have the
// same parameter count, so no complexity correction applies; F and PValue
// report the classical test of the second contrast.
func (e *Engine) contrastVsContrast(c1, c2, means []float64, sizes []int, ssTotal, ssWithin float64, n, dfWithin int) (*stats.ContrastSupport, error) {
	sse1 := ssTotal - contrastSS(c1, means, sizes)
	ssC2 := contrastSS(c2, means, sizes)
	sse2 := ssTotal - ssC2
	if sse1 <= 0 || sse2 <= 0 {
		return nil, core.NewValidationError("contrasts",
			fmt.Errorf("contrast absorbs all variation: %w", core.ErrInsufficientData))
	}

	s := float64(n) / 2 * math.Log(sse2/sse1)
	fC2 := ssC2 / (ssWithin / float64(dfWithin))
	return &stats.ContrastSupport{
		Support:          s,
		CorrectedSupport: s,
		F:                fC2,
		PValue:           distributions.FTestPValue(fC2, 1, dfWithin),
	}, nil
}

// aiccCorrected applies the Hurvich-Tsai penalty difference to a support
// value. Reports false when either denominator n-k-1 is not positive.
func aiccCorrected(s float64, n, kA, kB int) (float64, bool) {
	if n-kA-1 <= 0 || n-kB-1 <= 0 {
		return 0, false
	}
	penalty := func(k int) float64 {
		return float64(k) * float64(n) / float64(n-k-1)
	}
	return s - (penalty(kA) - penalty(kB)), true
}
