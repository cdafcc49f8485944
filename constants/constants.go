// Package constants provides the physical constants used throughout the
// module, in Gaussian CGS units, plus the derived normalization factors
// of the synchrotron emissivity and self-absorption coefficients.
package constants

import "math"

// Fundamental constants (CGS).
const (
	CLight  = 2.99792458e10    // speed of light [cm/s]
	ECharge = 4.80320425e-10   // elementary charge [esu]
	Me      = 9.1093837015e-28 // electron mass [g]
	Mp      = 1.67262192369e-24 // proton mass [g]
	SigmaT  = 6.6524587321e-25 // Thomson cross-section [cm^2]
	HPlanck = 6.62607015e-27   // Planck constant [erg s]
	KBoltz  = 1.380649e-16     // Boltzmann constant [erg/K]
	Parsec  = 3.08567758149137e18 // parsec [cm]
)

// Common angles.
const (
	TwoPi  = 2 * math.Pi
	HalfPi = math.Pi / 2
)

// Derived synchrotron normalizations. NuConst*B is the electron
// cyclotron frequency; the emissivity and absorption drivers multiply
// their harmonic-space sums by JmbConst*NuConst*B and
// AmbConst*NuConst*B/nu^2 respectively, which reproduces the standard
// per-steradian prefactors sqrt(3) e^3 B / (4 pi me c^2) and
// sqrt(3) e^3 B / (8 pi me^2 c^2 nu^2).
var (
	// NuConst is e/(2 pi me c) [Hz/G].
	NuConst = ECharge / (TwoPi * Me * CLight)

	// JmbConst is sqrt(3) e^2 / (2 c).
	JmbConst = math.Sqrt(3) * ECharge * ECharge / (2 * CLight)

	// AmbConst is sqrt(3) e^2 / (4 me c).
	AmbConst = math.Sqrt(3) * ECharge * ECharge / (4 * Me * CLight)
)
