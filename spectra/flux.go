package spectra

import (
	"errors"
	"math"

	"github.com/altjerue/SAPyto/internal/quad"
	"github.com/altjerue/SAPyto/radtrans"
)

var (
	ErrBandOutOfRange = errors.New("spectra: requested band outside tabulated range")
	ErrEmptyBand      = errors.New("spectra: band limits must differ")
	ErrShapeMismatch  = errors.New("spectra: array lengths do not match")
)

// SpecEnergyFlux returns the spectral energy flux F_nu of a spherical
// source of the given radius and volume, boosted by the Doppler factor,
// at luminosity distance dL and redshift z, attenuated by its own
// synchrotron opacity.
func SpecEnergyFlux(jnu, anu []float64, dL, z, doppler, radius, volume float64) ([]float64, error) {
	if len(jnu) != len(anu) {
		return nil, ErrShapeMismatch
	}
	boost := doppler * doppler * doppler * (1 + z) * volume / (4 * math.Pi * dL * dL)
	out := make([]float64, len(jnu))
	for i := range jnu {
		out[i] = boost * jnu[i] * radtrans.OptDepthBlob(anu[i], radius)
	}
	return out, nil
}

// EnergyFlux returns nu*F_nu of the same source.
func EnergyFlux(nu, jnu, anu []float64, dL, doppler, radius, volume float64) ([]float64, error) {
	if len(jnu) != len(anu) || len(nu) != len(jnu) {
		return nil, ErrShapeMismatch
	}
	boost := doppler * doppler * doppler * doppler * volume / (4 * math.Pi * dL * dL)
	out := make([]float64, len(jnu))
	for i := range jnu {
		out[i] = boost * nu[i] * jnu[i] * radtrans.OptDepthBlob(anu[i], radius)
	}
	return out, nil
}

// SpecLuminosity returns the spectral luminosity L_nu of the source.
func SpecLuminosity(jnu, anu []float64, doppler, radius, volume float64) ([]float64, error) {
	if len(jnu) != len(anu) {
		return nil, ErrShapeMismatch
	}
	boost := doppler * doppler * doppler * volume
	out := make([]float64, len(jnu))
	for i := range jnu {
		out[i] = boost * jnu[i] * radtrans.OptDepthBlob(anu[i], radius)
	}
	return out, nil
}

// Luminosity returns nu*L_nu of the source.
func Luminosity(nu, jnu, anu []float64, doppler, radius, volume float64) ([]float64, error) {
	if len(jnu) != len(anu) || len(nu) != len(jnu) {
		return nil, ErrShapeMismatch
	}
	boost := doppler * doppler * doppler * doppler * volume
	out := make([]float64, len(jnu))
	for i := range jnu {
		out[i] = boost * nu[i] * jnu[i] * radtrans.OptDepthBlob(anu[i], radius)
	}
	return out, nil
}

// Band restricts an integral to [Min, Max].
type Band struct {
	Min, Max float64
}

// BolometricLuminosity integrates L_nu over frequency. With a nil band
// the whole grid is used; otherwise the band must lie inside the
// tabulated range and have distinct, ordered limits.
func BolometricLuminosity(freqs, lum []float64, band *Band) (float64, error) {
	if len(freqs) != len(lum) {
		return 0, ErrShapeMismatch
	}
	nus, l := freqs, lum
	if band != nil {
		if band.Min == band.Max {
			return 0, ErrEmptyBand
		}
		if band.Min < freqs[0] || band.Max > freqs[len(freqs)-1] {
			return 0, ErrBandOutOfRange
		}
		lo, hi := maskRange(freqs, band.Min, band.Max)
		nus, l = freqs[lo:hi], lum[lo:hi]
	}
	return logIntegral(nus, l), nil
}

// logIntegral evaluates integral(f dnu) as integral(nu f dln nu).
func logIntegral(nus, f []float64) float64 {
	lnNu := make([]float64, len(nus))
	integrand := make([]float64, len(nus))
	for i := range nus {
		lnNu[i] = math.Log(nus[i])
		integrand[i] = nus[i] * f[i]
	}
	return quad.Simpson(lnNu, integrand)
}

// maskRange returns the half-open index range of x values inside
// [lo, hi]. x must be sorted ascending.
func maskRange(x []float64, lo, hi float64) (int, int) {
	first := 0
	for first < len(x) && x[first] < lo {
		first++
	}
	last := len(x)
	for last > first && x[last-1] > hi {
		last--
	}
	return first, last
}
