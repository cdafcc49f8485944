// Package mbs computes magnetobremsstrahlung (synchrotron) emissivity
// and self-absorption coefficients for tabulated relativistic particle
// distributions.
//
// The distribution is a piecewise power law: a strictly increasing
// Lorentz-factor grid with one number density per point. For every
// requested frequency the engine integrates a single-particle kernel
// against each grid segment with adaptive Romberg quadrature in
// log-Lorentz-factor space, fanning the independent per-frequency
// integrals out over a bounded worker pool.
//
// Several interchangeable kernels are available, from the exact
// Whittaker-function form of Crusius & Schlickeiser (1986) down to
// cheap published fits; see [Kernel].
//
// # Usage
//
// Compute an emissivity spectrum for a two-decade power law:
//
//	g := []float64{1e2, 1e3, 1e4}
//	n := []float64{1, 1e-2, 1e-4}
//	nu := []float64{1e9, 1e10, 1e11, 1e12}
//	jnu, err := mbs.Emissivity(nu, g, n, 0.1)
//
// The absorption coefficient uses the same inputs:
//
//	anu, err := mbs.Absorption(nu, g, n, 0.1)
//
// All units are Gaussian CGS: frequencies in Hz, field strength in
// gauss, emissivity per unit volume per unit frequency per steradian,
// absorption per unit length.
package mbs
