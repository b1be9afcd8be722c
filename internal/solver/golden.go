// Package solver implements the bounded one-dimensional minimization that
// locates profile-likelihood interval endpoints. The search is derivative-free
// (golden-section) over a closed bracket, iterating until the bracket width
// falls below the caller's tolerance, with a hard iteration cap in case of a
// pathological (flat) objective.
package solver

import (
	"math"
)

// invphi = 1/phi, the golden-section ratio.
const invphi = 0.6180339887498949

// maxIterations caps the search defensively; at the default tolerance the
// bracket shrinks below it in well under 60 iterations.
const maxIterations = 200

// Result is the outcome of a bounded minimization.
// Objective is the function value at X; for a squared-residual objective a
// near-zero value means the root was actually found, and a value well above
// zero is a non-convergence signal the caller must surface.
type Result struct {
	X          float64
	Objective  float64
	Iterations int
	Converged  bool
}

// Minimize runs a golden-section search for the minimum of f on [lo, hi].
// tol bounds the final bracket width. The final X is the bracket midpoint.
func Minimize(f func(float64) float64, lo, hi, tol float64) Result {
	if hi < lo {
		lo, hi = hi, lo
	}
	if tol <= 0 {
		tol = 1e-4
	}

	a, b := lo, hi
	c := b - invphi*(b-a)
	d := a + invphi*(b-a)
	fc := f(c)
	fd := f(d)

	iter := 0
	for b-a > tol && iter < maxIterations {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invphi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invphi*(b-a)
			fd = f(d)
		}
		iter++
	}

	x := (a + b) / 2
	return Result{
		X:          x,
		Objective:  f(x),
		Iterations: iter,
		Converged:  b-a <= tol,
	}
}

// ResidualTolerable reports whether the residual of a squared-residual
// objective corresponds to an acceptable deviation from the target
// log-likelihood level. The deviation is sqrt(residual) in support units;
// the allowance scales with the goal since the likelihood surface steepens
// far from the MLE.
func ResidualTolerable(residual, goal float64) bool {
	return math.Sqrt(math.Abs(residual)) < 0.01*(1+math.Abs(goal))
}
