package solver

import (
	"math"
	"testing"
)

func TestMinimize_Quadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 0.3) * (x - 0.3) }

	res := Minimize(f, 0, 1, 1e-6)

	if !res.Converged {
		t.Fatalf("expected convergence, iterations=%d", res.Iterations)
	}
	if math.Abs(res.X-0.3) > 1e-5 {
		t.Errorf("expected minimum near 0.3, got %f", res.X)
	}
	if res.Objective > 1e-9 {
		t.Errorf("expected near-zero objective, got %g", res.Objective)
	}
}

func TestMinimize_SwappedBounds(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	res := Minimize(f, 1, -1, 1e-5)

	if math.Abs(res.X) > 1e-4 {
		t.Errorf("expected minimum near 0, got %f", res.X)
	}
}

func TestMinimize_IterationCap(t *testing.T) {
	// A flat surface never narrows the value, but the bracket still shrinks
	// geometrically; the cap guards pathological tolerances.
	flat := func(x float64) float64 { return 1.0 }

	res := Minimize(flat, 0, 1, 1e-300)

	if res.Iterations > maxIterations {
		t.Errorf("iteration cap exceeded: %d", res.Iterations)
	}
	if res.Converged {
		t.Error("expected non-convergence at unreachable tolerance")
	}
}

func TestMinimize_Deterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(3 * x) }

	a := Minimize(f, 0, 2, 1e-4)
	b := Minimize(f, 0, 2, 1e-4)

	if a.X != b.X || a.Objective != b.Objective {
		t.Errorf("expected identical reruns, got %v vs %v", a, b)
	}
}

func TestResidualTolerable(t *testing.T) {
	if !ResidualTolerable(1e-8, 2) {
		t.Error("tiny residual should be tolerable")
	}
	if ResidualTolerable(1.0, 2) {
		t.Error("unit residual should not be tolerable")
	}
	// Allowance widens with the goal magnitude.
	if !ResidualTolerable(0.01, 10) {
		t.Error("residual 0.01 should pass at goal -10")
	}
}
