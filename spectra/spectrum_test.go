package spectra

import (
	"math"
	"testing"
)

func TestSpectrumNearestCopies(t *testing.T) {
	times := []float64{1, 10, 100}
	nus := []float64{1e9, 1e10}
	flux := powerLawFluxGrid(times, nus, func(tt float64) float64 { return tt }, 1)

	var sp Spectrum
	got := sp.Nearest(12, times, flux)
	if got[0] != flux[1][0] || got[1] != flux[1][1] {
		t.Fatalf("nearest spectrum = %v, want row 1", got)
	}
	got[0] = -1
	if flux[1][0] == -1 {
		t.Fatal("Nearest must return a copy, not alias the grid")
	}
}

func TestSpectrumPowerLawInterp(t *testing.T) {
	// Flux decaying as t^-1.2 at every frequency.
	times := logGrid(1, 1e3, 7)
	nus := []float64{1e9, 1e10}
	flux := powerLawFluxGrid(times, nus, func(tt float64) float64 { return math.Pow(tt, -1.2) }, 0)

	var sp Spectrum
	tIn := 37.0
	got := sp.PowerLawInterp(tIn, nus, times, flux)
	want := math.Pow(tIn, -1.2)
	for j := range nus {
		if math.Abs(got[j]-want)/want > 1e-10 {
			t.Fatalf("spec[%d] = %g, want %g", j, got[j], want)
		}
	}
}

func TestSpectrumTimeIntegratedConstant(t *testing.T) {
	// Constant flux integrates to flux * window length.
	times := logGrid(1, 100, 41)
	nus := []float64{1e9, 1e10}
	const F = 2.5e-11
	flux := powerLawFluxGrid(times, nus, func(float64) float64 { return F }, 0)

	var sp Spectrum
	got, err := sp.TimeIntegrated(1, 100, nus, times, flux)
	if err != nil {
		t.Fatal(err)
	}
	want := F * 99.0
	for j := range nus {
		if math.Abs(got[j]-want)/want > 1e-3 {
			t.Fatalf("integrated[%d] = %g, want %g", j, got[j], want)
		}
	}

	avg, err := sp.TimeAveraged(1, 100, nus, times, flux)
	if err != nil {
		t.Fatal(err)
	}
	for j := range nus {
		if math.Abs(avg[j]-F)/F > 1e-3 {
			t.Fatalf("averaged[%d] = %g, want %g", j, avg[j], F)
		}
	}
}

func TestSpectrumWindowClamping(t *testing.T) {
	times := logGrid(1, 100, 21)
	nus := []float64{1e9}
	flux := powerLawFluxGrid(times, nus, func(float64) float64 { return 1 }, 0)

	var sp Spectrum
	clamped, err := sp.TimeIntegrated(0.1, 1e4, nus, times, flux)
	if err != nil {
		t.Fatal(err)
	}
	full, err := sp.TimeIntegrated(1, 100, nus, times, flux)
	if err != nil {
		t.Fatal(err)
	}
	if clamped[0] != full[0] {
		t.Fatalf("clamped window %g != full window %g", clamped[0], full[0])
	}

	if _, err := sp.TimeIntegrated(200, 300, nus, times, flux); err != ErrBandOutOfRange {
		t.Fatalf("window past the grid: err = %v", err)
	}
}

func TestComptonDominance(t *testing.T) {
	times := logGrid(1, 10, 11)
	nus := logGrid(1e9, 1e27, 55)

	hump := func(center, height float64) []float64 {
		row := make([]float64, len(nus))
		for j, nu := range nus {
			l := math.Log10(nu / center)
			row[j] = height * math.Exp(-l*l)
		}
		return row
	}
	fSyn := make([][]float64, len(times))
	fIC := make([][]float64, len(times))
	for i := range times {
		fSyn[i] = hump(1e13, 1)
		fIC[i] = hump(1e22, 3)
	}

	var sp Spectrum
	res, err := sp.ComptonDominance(1, 10, nus, times, fSyn, fIC)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(math.Log10(res.NuSync/1e13)) > 0.2 {
		t.Fatalf("synchrotron peak at %g", res.NuSync)
	}
	if math.Abs(math.Log10(res.NuIC/1e22)) > 0.2 {
		t.Fatalf("IC peak at %g", res.NuIC)
	}
	if math.Abs(res.Ratio-3)/3 > 0.05 {
		t.Fatalf("Compton dominance %g, want about 3", res.Ratio)
	}
}
