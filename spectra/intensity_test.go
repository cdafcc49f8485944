package spectra

import (
	"math"
	"testing"

	"github.com/altjerue/SAPyto/constants"
	"github.com/altjerue/SAPyto/srtoolkit"
)

func TestObservedIntensityShapeAndSign(t *testing.T) {
	times := logGrid(1e2, 1e5, 12)
	nus := logGrid(1e9, 1e12, 5)

	jnut := make([][]float64, len(times))
	senLum := make([]float64, len(times))
	for i := range times {
		jnut[i] = make([]float64, len(nus))
		for j := range nus {
			jnut[i][j] = 1e-20 * math.Pow(nus[j]/1e9, -0.7)
		}
		senLum[i] = times[i] * constants.CLight
	}

	const (
		R         = 1e16
		muc       = 0.5
		bulkGamma = 10.0
		z         = 0.3
		muo       = 0.9999
	)
	doppler := srtoolkit.Doppler(bulkGamma, muo)

	out := ObservedIntensity(times, nus, senLum, jnut, R, muc, bulkGamma, muo, z, doppler)
	if len(out) != len(times) || len(out[0]) != len(nus) {
		t.Fatalf("intensity map is %dx%d, want %dx%d", len(out), len(out[0]), len(times), len(nus))
	}
	for i := range out {
		for j := range out[i] {
			if out[i][j] < 0 || math.IsNaN(out[i][j]) {
				t.Fatalf("intensity[%d][%d] = %g", i, j, out[i][j])
			}
		}
	}
	if out[0][0] != 0 {
		t.Fatalf("first epoch has no accumulated emission, got %g", out[0][0])
	}

	var total float64
	for i := range out {
		for j := range out[i] {
			total += out[i][j]
		}
	}
	if total == 0 {
		t.Fatal("intensity map is identically zero")
	}
}

func TestObservedIntensitySpectralShapePreserved(t *testing.T) {
	// A time-constant emissivity with spectral index 0.7 yields an
	// intensity map with the same frequency dependence at every epoch.
	times := logGrid(1e3, 1e4, 8)
	nus := []float64{1e9, 1e10}

	jnut := make([][]float64, len(times))
	senLum := make([]float64, len(times))
	for i := range times {
		jnut[i] = []float64{1e-20, 1e-20 * math.Pow(10, -0.7)}
		senLum[i] = times[i] * constants.CLight
	}

	doppler := srtoolkit.Doppler(5, 0.99)
	out := ObservedIntensity(times, nus, senLum, jnut, 1e16, 0.8, 5, 0.99, 0.1, doppler)

	want := math.Pow(10, -0.7)
	for i := 1; i < len(times); i++ {
		if out[i][0] == 0 {
			continue
		}
		got := out[i][1] / out[i][0]
		if math.Abs(got-want)/want > 1e-10 {
			t.Fatalf("epoch %d ratio = %g, want %g", i, got, want)
		}
	}
}
