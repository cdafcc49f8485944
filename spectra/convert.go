package spectra

import "github.com/altjerue/SAPyto/constants"

// Unit conversions used when assembling observer-frame outputs.

// ErgToJansky converts a flux density in erg cm^-2 s^-1 Hz^-1 to Jy.
func ErgToJansky(flux float64) float64 { return flux * 1e23 }

// JanskyToErg converts a flux density in Jy to erg cm^-2 s^-1 Hz^-1.
func JanskyToErg(flux float64) float64 { return flux * 1e-23 }

// HzToEV converts a frequency in Hz to a photon energy in eV.
func HzToEV(nu float64) float64 { return nu * 4.135667662e-15 }

// EVToHz converts a photon energy in eV to a frequency in Hz.
func EVToHz(ev float64) float64 { return ev * 2.4179937422321953e14 }

// HzToMeters converts a frequency in Hz to a wavelength in m.
func HzToMeters(nu float64) float64 { return constants.CLight * 1e-2 / nu }

// MetersToHz converts a wavelength in m to a frequency in Hz.
func MetersToHz(wavelength float64) float64 { return constants.CLight * 1e-2 / wavelength }

// SecToDay converts seconds to days.
func SecToDay(t float64) float64 { return t / 8.64e4 }

// DayToSec converts days to seconds.
func DayToSec(t float64) float64 { return t * 8.64e4 }

// SecToHour converts seconds to hours.
func SecToHour(t float64) float64 { return t / 3.6e3 }

// HourToSec converts hours to seconds.
func HourToSec(t float64) float64 { return t * 3.6e3 }

// PcToCm converts parsecs to centimeters.
func PcToCm(d float64) float64 { return d * constants.Parsec }

// CmToPc converts centimeters to parsecs.
func CmToPc(d float64) float64 { return d / constants.Parsec }
