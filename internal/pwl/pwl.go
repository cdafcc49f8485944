// Package pwl provides the piecewise power-law helpers shared by the
// coefficient engine and the post-processing code: the local log-log
// slope of a tabulated segment and the power-law segment primitive.
package pwl

import "math"

// Floors shared across the module. Densities and fluxes at or below
// DensityFloor make their segment contribute zero; running sums below
// SumFloor are reset to exactly zero so denormals never accumulate.
const (
	DensityFloor = 1e-100
	SumFloor     = 1e-200

	// SlopeLimit bounds the local power-law index. Near-zero or
	// inverted value ratios would otherwise produce indices that blow
	// up the segment integrals.
	SlopeLimit = 8.0
)

// Slope returns the local power-law index of the segment
// (x0, y0)-(x1, y1), defined by y ~ x^(-q), clamped to
// [-SlopeLimit, SlopeLimit]. The abscissas must be distinct and
// positive; that is the caller's invariant.
func Slope(x0, x1, y0, y1 float64) float64 {
	q := -math.Log(y1/y0) / math.Log(x1/x0)
	if q > SlopeLimit {
		return SlopeLimit
	}
	if q < -SlopeLimit {
		return -SlopeLimit
	}
	return q
}

// P is the power-law primitive integral(u^(-s) du) over [1, x]:
// (x^(1-s) - 1)/(1-s), switching to ln(x) when s is within eps of 1.
func P(x, s, eps float64) float64 {
	if math.Abs(1-s) < eps {
		return math.Log(x)
	}
	return (math.Pow(x, 1-s) - 1) / (1 - s)
}
