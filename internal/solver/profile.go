package solver

import (
	"fmt"
	"math"
)

// epsInside keeps evaluation strictly inside (0,1); the log-likelihood is
// undefined at the boundary.
const epsInside = 1e-9

// Binomial is the profile-likelihood function for a two-category table with
// a successes and r failures. Both counts must be strictly positive; the MLE
// sits on the boundary otherwise and the bracketing below is undefined.
type Binomial struct {
	Successes float64 // a
	Failures  float64 // r
}

// NewBinomial validates the counts and returns the profile function.
func NewBinomial(a, r float64) (Binomial, error) {
	if math.IsNaN(a) || math.IsNaN(r) {
		return Binomial{}, fmt.Errorf("binomial counts must be defined, got a=%v r=%v", a, r)
	}
	if a <= 0 || r <= 0 {
		return Binomial{}, fmt.Errorf("binomial counts must both be > 0, got a=%v r=%v", a, r)
	}
	return Binomial{Successes: a, Failures: r}, nil
}

// MLE returns the maximum-likelihood estimate a/(a+r).
func (b Binomial) MLE() float64 {
	return b.Successes / (b.Successes + b.Failures)
}

// LogLikRatio evaluates the log-likelihood at x relative to its maximum:
// a ln x + r ln(1-x) - [a ln p + r ln(1-p)]. Zero at the MLE, negative
// elsewhere. x must be strictly inside (0,1).
func (b Binomial) LogLikRatio(x float64) float64 {
	p := b.MLE()
	return b.Successes*math.Log(x) + b.Failures*math.Log(1-x) -
		(b.Successes*math.Log(p) + b.Failures*math.Log(1-p))
}

// Objective returns the squared deviation of the log-likelihood ratio from
// goal. It is zero exactly at the two parameter values where the profile
// drops by -goal relative to the MLE.
func (b Binomial) Objective(goal float64) func(float64) float64 {
	return func(x float64) float64 {
		d := b.LogLikRatio(x) - goal
		return d * d
	}
}

// IntervalBounds is a solved two-sided profile-likelihood interval.
type IntervalBounds struct {
	Lower, Upper                 float64
	LowerResidual, UpperResidual float64
	Converged                    bool
}

// SolveInterval locates the two roots of the profile-likelihood equation for
// the given goal (a negative log-likelihood offset), minimizing the squared
// objective independently on (0, p) and (p, 1). tol bounds the bracket width
// on each side.
func SolveInterval(b Binomial, goal, tol float64) IntervalBounds {
	p := b.MLE()
	f := b.Objective(goal)

	left := Minimize(f, epsInside, p, tol)
	right := Minimize(f, p, 1-epsInside, tol)

	return IntervalBounds{
		Lower:         left.X,
		Upper:         right.X,
		LowerResidual: left.Objective,
		UpperResidual: right.Objective,
		Converged: left.Converged && right.Converged &&
			ResidualTolerable(left.Objective, goal) && ResidualTolerable(right.Objective, goal),
	}
}
