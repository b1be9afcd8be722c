package support

import (
	"math"

	"gosupport/domain/stats"
	"gosupport/internal/distributions"
)

// TTestSampleSize computes the minimal sample size for a t-test to reach
// support level S with the given combined misleading+weak-evidence
// probability. Closed form, no iteration:
//
//	n = ((z + sqrt(2S)) * sd / d)^2, z = Phi^-1(1 - MW)
//
// For a paired design n is the number of pairs; for independent groups the
// variance of the mean difference doubles, so the per-group size is 2n.
func (e *Engine) TTestSampleSize(spec stats.SampleSizeSpec) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	z := distributions.NormalQuantile(1 - spec.MisleadingWeakProb)
	base := (z + math.Sqrt(2*spec.SupportLevel)) * spec.SD / math.Abs(spec.EffectSize)
	n := base * base
	if !spec.Paired {
		n *= 2
	}

	size := int(math.Ceil(n))
	if size < 2 {
		size = 2
	}
	return size, nil
}
