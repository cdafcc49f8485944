package spectra

import (
	"math"

	"github.com/altjerue/SAPyto/constants"
	"github.com/altjerue/SAPyto/internal/pwl"
)

// PhotonFluxResult holds a band photon flux and the per-segment
// spectral photon flux it was accumulated from.
type PhotonFluxResult struct {
	Freqs        []float64 // segment start frequencies inside the band
	SpectralFlux []float64 // photon flux density F_nu/nu at those frequencies
	Total        float64   // band-integrated photon flux [photons cm^-2 s^-1]
}

// PhotonFlux computes the photon flux in [nuMin, nuMax] from a flux
// density spectrum by summing exact power-law segment integrals.
func PhotonFlux(nuMin, nuMax float64, freqs, fnu []float64) (PhotonFluxResult, error) {
	if len(freqs) != len(fnu) {
		return PhotonFluxResult{}, ErrShapeMismatch
	}
	if nuMin < freqs[0] || nuMax > freqs[len(freqs)-1] {
		return PhotonFluxResult{}, ErrBandOutOfRange
	}

	lo, hi := maskRange(freqs, nuMin, nuMax)
	nus := freqs[lo:hi]

	phFlux := make([]float64, len(nus))
	for i := range nus {
		phFlux[i] = fnu[lo+i] / nus[i]
	}

	var integral float64
	for i := 0; i+1 < len(nus); i++ {
		if phFlux[i] > pwl.DensityFloor && phFlux[i+1] > pwl.DensityFloor {
			s := pwl.Slope(nus[i], nus[i+1], phFlux[i], phFlux[i+1])
			integral += phFlux[i] * nus[i] * pwl.P(nus[i+1]/nus[i], s, 1e-6)
		}
	}

	n := len(nus) - 1
	return PhotonFluxResult{
		Freqs:        nus[:n],
		SpectralFlux: phFlux[:n],
		Total:        integral / constants.HPlanck,
	}, nil
}

// PhotonIndexFit is an ordinary least-squares power-law fit to a
// spectrum in log-log space.
type PhotonIndexFit struct {
	Slope     float64   // d log10(F) / d log10(nu)
	Intercept float64   // log10(F) at log10(nu) = 0
	Model     []float64 // fitted flux evaluated on the input grid
}

// PhotonIndex fits log10(flux) against log10(freqs) with a straight
// line. Fluxes are floored at 1e-100 before taking logs, matching the
// floor used everywhere else in the pipeline.
func PhotonIndex(freqs, flux []float64) PhotonIndexFit {
	n := float64(len(freqs))
	var sx, sy, sxx, sxy float64
	for i := range freqs {
		x := math.Log10(freqs[i])
		y := math.Log10(math.Max(flux[i], pwl.DensityFloor))
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	slope := (n*sxy - sx*sy) / (n*sxx - sx*sx)
	intercept := (sy - slope*sx) / n

	model := make([]float64, len(freqs))
	for i := range freqs {
		model[i] = math.Pow(10, slope*math.Log10(freqs[i])+intercept)
	}
	return PhotonIndexFit{Slope: slope, Intercept: intercept, Model: model}
}
