package spectra

import (
	"log/slog"
	"math"

	"github.com/altjerue/SAPyto/internal/pwl"
	"github.com/altjerue/SAPyto/internal/quad"
)

// findNearest returns the index and value of the grid entry closest to
// v.
func findNearest(grid []float64, v float64) (int, float64) {
	best := 0
	for i := 1; i < len(grid); i++ {
		if math.Abs(grid[i]-v) < math.Abs(grid[best]-v) {
			best = i
		}
	}
	return best, grid[best]
}

// LightCurve extracts time series at fixed frequency from a
// time x frequency energy-flux grid (nu*F_nu, as produced by
// EnergyFlux). The optional Logger reports which tabulated frequency
// was actually used.
type LightCurve struct {
	Logger *slog.Logger
}

func (lc LightCurve) logger() *slog.Logger {
	if lc.Logger != nil {
		return lc.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Nearest returns the light curve of the tabulated frequency closest
// to nuIn.
func (lc LightCurve) Nearest(nuIn float64, nus []float64, flux [][]float64) []float64 {
	pos, nu := findNearest(nus, nuIn)
	lc.logger().Info("using nearest tabulated frequency", "requested", nuIn, "used", nu)
	out := make([]float64, len(flux))
	for i := range flux {
		out[i] = flux[i][pos]
	}
	return out
}

// PowerLawInterp returns the flux-density light curve F_nu at nuIn,
// power-law interpolated between the two tabulated frequencies
// bracketing it. Samples whose endpoints sit at the density floor are
// left at zero.
func (lc LightCurve) PowerLawInterp(nuIn float64, t, nus []float64, flux [][]float64) []float64 {
	if len(nus) < 2 {
		return lc.Nearest(nuIn, nus, flux)
	}

	pos, nu := findNearest(nus, nuIn)
	if nu > nuIn && pos > 0 {
		pos--
	}
	if pos >= len(nus)-1 {
		pos = len(nus) - 2
	}

	out := make([]float64, len(t))
	for i := range t {
		f0 := flux[i][pos] / nus[pos]
		f1 := flux[i][pos+1] / nus[pos+1]
		if f0 > pwl.DensityFloor && f1 > pwl.DensityFloor {
			s := pwl.Slope(nus[pos], nus[pos+1], f0, f1)
			out[i] = f0 * math.Pow(nuIn/nus[pos], -s)
		}
	}
	return out
}

// BandIntegrated returns the band flux light curve
// integral(F_nu dnu) over [nuMin, nuMax], which must lie inside the
// tabulated range; the integral is evaluated logarithmically as
// integral(nu F_nu dln nu). With nuMin == nuMax the energy flux is
// log-log interpolated at that single frequency instead.
func (lc LightCurve) BandIntegrated(nuMin, nuMax float64, t, freqs []float64, flux [][]float64) ([]float64, error) {
	if nuMin < freqs[0] || nuMax > freqs[len(freqs)-1] {
		lc.logger().Warn("frequency band outside tabulated range",
			"nuMin", nuMin, "nuMax", nuMax,
			"gridMin", freqs[0], "gridMax", freqs[len(freqs)-1])
		return make([]float64, len(t)), ErrBandOutOfRange
	}

	out := make([]float64, len(t))

	if nuMin == nuMax {
		for i := range t {
			out[i] = logLogInterp(nuMax, freqs, flux[i])
		}
		return out, nil
	}

	lo, hi := maskRange(freqs, nuMin, nuMax)
	lnNu := make([]float64, hi-lo)
	for j := lo; j < hi; j++ {
		lnNu[j-lo] = math.Log(freqs[j])
	}
	for i := range t {
		// integral(F/nu dnu) on the log grid is just Simpson of F
		// against ln nu.
		out[i] = quad.Simpson(lnNu, flux[i][lo:hi])
	}
	return out, nil
}

// logLogInterp linearly interpolates ln(y) against ln(x), flooring
// non-positive samples, and returns the result in linear space.
func logLogInterp(x0 float64, x, y []float64) float64 {
	if x0 <= x[0] {
		return math.Max(y[0], 0)
	}
	if x0 >= x[len(x)-1] {
		return math.Max(y[len(y)-1], 0)
	}
	j := 0
	for x[j+1] < x0 {
		j++
	}
	y0 := math.Max(y[j], pwl.DensityFloor)
	y1 := math.Max(y[j+1], pwl.DensityFloor)
	w := math.Log(x0/x[j]) / math.Log(x[j+1]/x[j])
	return math.Exp((1-w)*math.Log(y0) + w*math.Log(y1))
}
