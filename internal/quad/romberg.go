// Package quad provides the small set of quadrature routines the module
// needs: Romberg integration with a hard refinement ceiling for the
// coefficient engine, and composite Simpson on nonuniform grids for the
// post-processing integrals.
package quad

import "math"

// Config controls Romberg refinement.
type Config struct {
	RelTol   float64 // relative tolerance on successive diagonal entries
	AbsTol   float64 // absolute tolerance on successive diagonal entries
	MaxDepth int     // maximum number of interval halvings
}

// DefaultConfig returns the tolerances used by the coefficient engine.
func DefaultConfig() Config {
	return Config{RelTol: 1.48e-8, AbsTol: 1.48e-8, MaxDepth: 10}
}

// Romberg integrates f over [a, b] by dyadic trapezoid refinement with
// Richardson extrapolation. Convergence is declared when two successive
// diagonal estimates differ by at most max(AbsTol, RelTol*|estimate|).
// When MaxDepth is reached first, the deepest estimate is returned with
// converged = false; the caller decides whether that is worth a warning.
func Romberg(f func(float64) float64, a, b float64, cfg Config) (value float64, converged bool) {
	if a == b {
		return 0, true
	}

	maxDepth := cfg.MaxDepth
	if maxDepth < 1 {
		maxDepth = 1
	}

	h := b - a
	prev := make([]float64, 1, maxDepth+1)
	prev[0] = 0.5 * h * (f(a) + f(b))
	best := prev[0]
	intervals := 1

	for depth := 1; depth <= maxDepth; depth++ {
		h *= 0.5

		var sum float64
		for k := 0; k < intervals; k++ {
			sum += f(a + float64(2*k+1)*h)
		}
		intervals *= 2

		row := make([]float64, depth+1)
		row[0] = 0.5*prev[0] + h*sum

		pow4 := 1.0
		for m := 1; m <= depth; m++ {
			pow4 *= 4
			row[m] = row[m-1] + (row[m-1]-prev[m-1])/(pow4-1)
		}

		best = row[depth]
		if math.Abs(best-prev[depth-1]) <= math.Max(cfg.AbsTol, cfg.RelTol*math.Abs(best)) {
			return best, true
		}

		prev = row
	}

	return best, false
}
