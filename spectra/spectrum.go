package spectra

import (
	"log/slog"
	"math"

	"github.com/altjerue/SAPyto/internal/pwl"
	"github.com/altjerue/SAPyto/internal/quad"
)

// Spectrum extracts frequency slices at fixed time from a
// time x frequency flux grid. The optional Logger reports nearest-time
// lookups and window clamping.
type Spectrum struct {
	Logger *slog.Logger
}

func (s Spectrum) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Nearest returns the spectrum at the tabulated time closest to tIn.
func (s Spectrum) Nearest(tIn float64, times []float64, flux [][]float64) []float64 {
	pos, tt := findNearest(times, tIn)
	s.logger().Info("using nearest tabulated time", "requested", tIn, "used", tt)
	out := make([]float64, len(flux[pos]))
	copy(out, flux[pos])
	return out
}

// PowerLawInterp returns the spectrum at tIn, power-law interpolated in
// time between the two bracketing tabulated epochs. Frequencies whose
// endpoint fluxes sit at the density floor are left at zero.
func (s Spectrum) PowerLawInterp(tIn float64, nu, times []float64, flux [][]float64) []float64 {
	pos, tt := findNearest(times, tIn)
	if tt > tIn && pos > 0 {
		pos--
	}
	if pos >= len(times)-1 {
		pos = len(times) - 2
	}

	out := make([]float64, len(nu))
	for j := range nu {
		f0 := flux[pos][j]
		f1 := flux[pos+1][j]
		if f0 > pwl.DensityFloor && f1 > pwl.DensityFloor {
			sl := pwl.Slope(times[pos], times[pos+1], f0, f1)
			out[j] = f0 * math.Pow(tIn/times[pos], -sl)
		}
	}
	return out
}

// TimeIntegrated integrates the flux grid over the window
// [tMin, tMax]. Windows reaching past the tabulated range are clamped
// (logged); a window fully outside it is an error. A degenerate window
// falls back to interpolation at tMin.
func (s Spectrum) TimeIntegrated(tMin, tMax float64, nu, times []float64, flux [][]float64) ([]float64, error) {
	spec, _, err := s.timeIntegrated(tMin, tMax, nu, times, flux)
	return spec, err
}

// TimeAveraged is TimeIntegrated divided by the effective window
// length.
func (s Spectrum) TimeAveraged(tMin, tMax float64, nu, times []float64, flux [][]float64) ([]float64, error) {
	spec, tt, err := s.timeIntegrated(tMin, tMax, nu, times, flux)
	if err != nil {
		return spec, err
	}
	if span := tt[len(tt)-1] - tt[0]; span > 0 {
		for j := range spec {
			spec[j] /= span
		}
	}
	return spec, nil
}

func (s Spectrum) timeIntegrated(tMin, tMax float64, nu, times []float64, flux [][]float64) ([]float64, []float64, error) {
	last := times[len(times)-1]
	if tMax < times[0] || tMin > last {
		s.logger().Warn("time window outside tabulated range",
			"tMin", tMin, "tMax", tMax, "gridMin", times[0], "gridMax", last)
		return make([]float64, len(nu)), times, ErrBandOutOfRange
	}

	if tMin < times[0] {
		s.logger().Info("clamping window start to grid", "tMin", tMin, "gridMin", times[0])
		tMin = times[0]
	}
	if tMax > last {
		s.logger().Info("clamping window end to grid", "tMax", tMax, "gridMax", last)
		tMax = last
	}

	if tMin == tMax {
		return s.PowerLawInterp(tMin, nu, times, flux), times, nil
	}

	lo, hi := maskRange(times, tMin, tMax)
	tt := times[lo:hi]

	lnT := make([]float64, len(tt))
	for i := range tt {
		lnT[i] = math.Log(tt[i])
	}

	spec := make([]float64, len(nu))
	col := make([]float64, len(tt))
	for j := range nu {
		for i := range tt {
			col[i] = tt[i] * flux[lo+i][j]
		}
		spec[j] = quad.Simpson(lnT, col)
	}
	return spec, tt, nil
}

// ComptonDominanceResult locates the synchrotron and inverse-Compton
// peaks of a two-hump spectral energy distribution.
type ComptonDominanceResult struct {
	NuSync float64 // synchrotron peak frequency
	NuIC   float64 // inverse-Compton peak frequency
	Ratio  float64 // IC peak flux over synchrotron peak flux
}

// ComptonDominance time-integrates the synchrotron and inverse-Compton
// flux grids over [tMin, tMax] and compares their peaks.
func (s Spectrum) ComptonDominance(tMin, tMax float64, nus, times []float64, fSyn, fIC [][]float64) (ComptonDominanceResult, error) {
	synInt, err := s.TimeIntegrated(tMin, tMax, nus, times, fSyn)
	if err != nil {
		return ComptonDominanceResult{}, err
	}
	icInt, err := s.TimeIntegrated(tMin, tMax, nus, times, fIC)
	if err != nil {
		return ComptonDominanceResult{}, err
	}

	synPos := argmax(synInt)
	icPos := argmax(icInt)
	return ComptonDominanceResult{
		NuSync: nus[synPos],
		NuIC:   nus[icPos],
		Ratio:  icInt[icPos] / synInt[synPos],
	}, nil
}

func argmax(x []float64) int {
	best := 0
	for i := range x {
		if x[i] > x[best] {
			best = i
		}
	}
	return best
}
