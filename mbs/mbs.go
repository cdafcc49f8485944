package mbs

import (
	"math"

	"github.com/altjerue/SAPyto/constants"
)

// FieldConfig holds the particle charge/mass parameters and pitch angle
// used by the frequency mapping. The zero value is not useful; start
// from DefaultFieldConfig and override fields as needed. Values are
// immutable once passed in; nothing in this package mutates shared
// defaults.
type FieldConfig struct {
	Z          float64 // charge number
	Mass       float64 // particle mass [g]
	PitchAngle float64 // pitch angle [rad]
}

// DefaultFieldConfig returns electron parameters with a perpendicular
// (isotropic-approximation) pitch angle.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{Z: 1, Mass: constants.Me, PitchAngle: constants.HalfPi}
}

// NuG returns the cyclotron frequency Z e B / (2 pi m c).
func (fc FieldConfig) NuG(B float64) float64 {
	return constants.ECharge * fc.Z * B / (constants.TwoPi * fc.Mass * constants.CLight)
}

// NuB returns the relativistic gyrofrequency NuG/gamma.
func (fc FieldConfig) NuB(B, g float64) float64 {
	return fc.NuG(B) / g
}

// NuC returns the synchrotron critical frequency
// 1.5 NuG sin(alpha) gamma^2 for the configured pitch angle.
func (fc FieldConfig) NuC(B, g float64) float64 {
	return 1.5 * fc.NuG(B) * math.Sin(fc.PitchAngle) * g * g
}

// NuCIso returns the critical frequency in the isotropic approximation,
// 1.5 NuG gamma^2.
func (fc FieldConfig) NuCIso(B, g float64) float64 {
	return 1.5 * fc.NuG(B) * g * g
}

// Chi returns the harmonic number nu/NuG.
func (fc FieldConfig) Chi(B, nu float64) float64 {
	return nu / fc.NuG(B)
}

// PsynIso returns the total synchrotron power radiated by a single
// particle with an isotropic velocity distribution,
// Rybicki & Lightman (1985) eq. (6.7b).
func (fc FieldConfig) PsynIso(B, g float64) float64 {
	beta2 := 1 - 1/(g*g)
	return 4 * constants.SigmaT * constants.CLight * beta2 * g * g * B * B / (24 * math.Pi)
}
