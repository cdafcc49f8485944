package constants

import (
	"math"
	"testing"
)

func TestCyclotronFrequencyPerGauss(t *testing.T) {
	// e B / (2 pi me c) for B = 1 G is about 2.799 MHz.
	if math.Abs(NuConst-2.7992e6) > 1e3 {
		t.Fatalf("NuConst = %g, want about 2.7992e6", NuConst)
	}
}

func TestEmissivityPrefactor(t *testing.T) {
	// JmbConst*NuConst must equal sqrt(3) e^3 / (4 pi me c^2).
	want := math.Sqrt(3) * ECharge * ECharge * ECharge / (4 * math.Pi * Me * CLight * CLight)
	got := JmbConst * NuConst
	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("JmbConst*NuConst = %g, want %g", got, want)
	}
}

func TestAbsorptionPrefactor(t *testing.T) {
	// AmbConst*NuConst must equal sqrt(3) e^3 / (8 pi me^2 c^2).
	want := math.Sqrt(3) * math.Pow(ECharge, 3) / (8 * math.Pi * Me * Me * CLight * CLight)
	got := AmbConst * NuConst
	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("AmbConst*NuConst = %g, want %g", got, want)
	}
}
