// Package radtrans provides the radiative-transfer geometry factor for
// a homogeneous spherical emitting region: the fraction of internally
// produced radiation that escapes through the self-absorbing plasma.
package radtrans

import "math"

// OptDepthBlob returns the escape fraction of a uniform sphere of
// radius R [cm] with absorption coefficient a [cm^-1], evaluated from
// the optical depth tau = 2 R a across the diameter:
//
//	u(tau) = (3/tau) (1/2 - (1 - e^-tau (tau+1)) / tau^2)
//
// u -> 1 for an optically thin source and 3/(2 tau) for an optically
// thick one (surface emission only).
func OptDepthBlob(a, R float64) float64 {
	tau := 2 * a * R
	if tau < 1e-4 {
		// Series expansion; the closed form loses all precision to
		// cancellation at small tau.
		return 1 - 0.375*tau + 0.1*tau*tau
	}
	return 3 / tau * (0.5 - (1-math.Exp(-tau)*(tau+1))/(tau*tau))
}

// OptDepthBlobVec applies OptDepthBlob per frequency.
func OptDepthBlobVec(a []float64, R float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = OptDepthBlob(v, R)
	}
	return out
}

// OptDepthBlobGrid applies OptDepthBlob over a time x frequency grid.
func OptDepthBlobGrid(a [][]float64, R float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = OptDepthBlobVec(row, R)
	}
	return out
}
