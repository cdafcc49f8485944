// Package srtoolkit provides the special-relativity kinematics shared
// by the radiation post-processing: velocity/Lorentz-factor mappings,
// Doppler beaming, and the observer-to-comoving time transformation.
package srtoolkit

import (
	"math"

	"github.com/altjerue/SAPyto/constants"
)

// BetaOfGamma returns v/c for Lorentz factor g >= 1.
func BetaOfGamma(g float64) float64 {
	return math.Sqrt(1 - 1/(g*g))
}

// Beta2OfGamma returns (v/c)^2 for Lorentz factor g >= 1.
func Beta2OfGamma(g float64) float64 {
	return 1 - 1/(g*g)
}

// GammaOfBeta returns the Lorentz factor for speed beta < 1.
func GammaOfBeta(beta float64) float64 {
	return 1 / math.Sqrt(1-beta*beta)
}

// Doppler returns the Doppler factor 1/(Gamma (1 - beta mu)) of a
// source with bulk Lorentz factor bulkGamma seen at viewing-angle
// cosine mu.
func Doppler(bulkGamma, mu float64) float64 {
	return 1 / (bulkGamma * (1 - BetaOfGamma(bulkGamma)*mu))
}

// TComoving maps observer time t (with cosmological redshift z) to the
// comoving time of a source moving with bulk Lorentz factor bulkGamma
// at viewing-angle cosine mu for an emission point displaced x [cm]
// along the line of sight.
func TComoving(t, z, bulkGamma, mu, x float64) float64 {
	return (t/(1+z) + mu*x/constants.CLight) / bulkGamma
}
