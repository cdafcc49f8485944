package spectra

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var ErrShortSeries = errors.New("spectra: power spectrum needs at least two samples")

// Periodogram holds the one-sided power spectrum of an evenly sampled
// light curve.
type Periodogram struct {
	Freqs []float64 // bin frequencies [Hz], DC to Nyquist
	Power []float64 // |X_k|^2, mean removed before transform
}

// PowerSpectrum computes the FFT periodogram of an evenly sampled
// light curve with sample spacing dt [s]. The mean is subtracted first
// so the variability power is not buried under the DC bin, and the
// series is zero-padded to the next power of two.
func PowerSpectrum(flux []float64, dt float64) (Periodogram, error) {
	if len(flux) < 2 {
		return Periodogram{}, ErrShortSeries
	}
	if dt <= 0 {
		return Periodogram{}, errors.New("spectra: sample spacing must be positive")
	}

	var mean float64
	for _, v := range flux {
		mean += v
	}
	mean /= float64(len(flux))

	size := nextPowerOf2(len(flux))
	in := make([]complex128, size)
	for i, v := range flux {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Periodogram{}, fmt.Errorf("spectra: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Periodogram{}, fmt.Errorf("spectra: forward FFT failed: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) / (float64(size) * dt)
	}
	return Periodogram{Freqs: freqs, Power: power}, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
