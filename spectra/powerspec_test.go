package spectra

import (
	"math"
	"testing"
)

func TestPowerSpectrumSinusoid(t *testing.T) {
	// A sinusoid at bin 8 of a 128-sample series concentrates its power
	// in exactly that bin.
	const n = 128
	const dt = 0.5
	flux := make([]float64, n)
	for i := range flux {
		flux[i] = 3.0 + math.Sin(2*math.Pi*8*float64(i)/n)
	}

	pg, err := PowerSpectrum(flux, dt)
	if err != nil {
		t.Fatal(err)
	}
	if len(pg.Freqs) != n/2+1 || len(pg.Power) != n/2+1 {
		t.Fatalf("got %d bins, want %d", len(pg.Power), n/2+1)
	}

	peak := 0
	for i := range pg.Power {
		if pg.Power[i] > pg.Power[peak] {
			peak = i
		}
	}
	if peak != 8 {
		t.Fatalf("peak at bin %d, want 8", peak)
	}
	if want := 8.0 / (n * dt); math.Abs(pg.Freqs[peak]-want) > 1e-12 {
		t.Fatalf("peak frequency = %g, want %g", pg.Freqs[peak], want)
	}
	if pg.Power[0] > 1e-12*pg.Power[peak] {
		t.Fatalf("DC bin not suppressed by mean removal: %g", pg.Power[0])
	}
}

func TestPowerSpectrumZeroPads(t *testing.T) {
	flux := make([]float64, 100)
	for i := range flux {
		flux[i] = float64(i % 7)
	}
	pg, err := PowerSpectrum(flux, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pg.Power) != 65 {
		t.Fatalf("padding to 128 samples should give 65 bins, got %d", len(pg.Power))
	}
}

func TestPowerSpectrumErrors(t *testing.T) {
	if _, err := PowerSpectrum([]float64{1}, 1.0); err != ErrShortSeries {
		t.Fatalf("single sample: err = %v", err)
	}
	if _, err := PowerSpectrum([]float64{1, 2}, 0); err == nil {
		t.Fatal("zero spacing must error")
	}
}
