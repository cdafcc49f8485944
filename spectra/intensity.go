package spectra

import (
	"math"

	"github.com/altjerue/SAPyto/constants"
	"github.com/altjerue/SAPyto/internal/pwl"
	"github.com/altjerue/SAPyto/srtoolkit"
)

// ObservedIntensity builds the observer-frame intensity map of an
// emitting shell from the comoving emissivity history jnut (laid out
// jnut[timeIndex][freqIndex]). Light-travel-time effects couple each
// observed epoch to a window of earlier comoving epochs: the window
// depth is set by where the accumulated path senLum crosses the shell
// diameter 2*R*muc, and each earlier epoch contributes a power-law
// segment of the emissivity history mapped through the comoving-time
// transformation.
//
// muc is the direction cosine of the ray inside the source, bulkGamma
// and muo the bulk Lorentz factor and observer-frame viewing cosine, z
// the redshift and doppler the Doppler factor of the source.
func ObservedIntensity(t, nu, senLum []float64, jnut [][]float64, R, muc, bulkGamma, muo, z, doppler float64) [][]float64 {
	out := make([][]float64, len(t))
	for i := range out {
		out[i] = make([]float64, len(nu))
	}

	diameter := 2 * R * muc
	iEdge, _ := findNearest(senLum, diameter)
	if senLum[iEdge] > diameter && iEdge > 0 {
		iEdge--
	}

	beaming := bulkGamma * muc * (muo - srtoolkit.BetaOfGamma(bulkGamma)) * doppler

	for j := range nu {
		for i := range t {
			iStart := 0
			if i > iEdge {
				iStart = i - iEdge
			}

			for ii := iStart; ii < i; ii++ {
				xPrev := 0.0
				if ii > 0 {
					xPrev = t[ii-1] * constants.CLight * muc
				}
				tobMin := srtoolkit.TComoving(t[i], z, bulkGamma, muo, xPrev)
				tobMax := srtoolkit.TComoving(t[i], z, bulkGamma, muo, t[ii]*constants.CLight*muc)

				if ii == 0 {
					out[i][j] = math.Abs(tobMax-tobMin) * jnut[0][j]
					continue
				}
				if jnut[ii][j] > pwl.DensityFloor && jnut[ii-1][j] > pwl.DensityFloor {
					sind := pwl.Slope(tobMin, tobMax, jnut[ii-1][j], jnut[ii][j])
					out[i][j] += jnut[ii-1][j] * tobMin *
						pwl.P(tobMax/tobMin, sind, 1e-6) / beaming
				}
			}
		}
	}
	return out
}
