package specfun

import (
	"math"
	"testing"
)

func TestBesselKHalfClosedForm(t *testing.T) {
	// K_(1/2)(y) = sqrt(pi/(2y)) exp(-y).
	for _, y := range []float64{0.1, 1, 5, 20} {
		want := math.Sqrt(math.Pi/(2*y)) * math.Exp(-y)
		got := BesselK(0.5, y)
		if math.Abs(got-want)/want > 1e-8 {
			t.Fatalf("K_1/2(%v) = %g, want %g", y, got, want)
		}
	}
}

func TestSynchrotronFLowAsymptotic(t *testing.T) {
	// F(x) -> 4 pi (x/2)^(1/3) / (sqrt(3) Gamma(1/3)) for x << 1.
	x := 5e-4
	want := 4 * math.Pi * math.Pow(0.5*x, 1.0/3.0) / (math.Sqrt(3) * math.Gamma(1.0/3.0))
	got := SynchrotronF(x)
	if math.Abs(got-want)/want > 1e-2 {
		t.Fatalf("F(%v) = %g, want about %g", x, got, want)
	}
}

func TestSynchrotronFHighAsymptotic(t *testing.T) {
	// F(x) -> sqrt(pi x / 2) exp(-x) for x >> 1; the next-order
	// correction is O(1/x), so 50 gives about 1.5% agreement.
	x := 50.0
	want := math.Sqrt(math.Pi*x/2) * math.Exp(-x)
	got := SynchrotronF(x)
	if math.Abs(got-want)/want > 2e-2 {
		t.Fatalf("F(%v) = %g, want about %g", x, got, want)
	}
}

func TestSynchrotronFUnderflowsToZero(t *testing.T) {
	if got := SynchrotronF(1e4); got != 0 {
		t.Fatalf("F(1e4) = %g, want 0", got)
	}
}

func TestWhittakerBesselIdentity(t *testing.T) {
	// W_(0,mu)(z) = sqrt(z/pi) K_mu(z/2), with the two halves computed
	// through independent integral representations.
	for _, tc := range []struct{ mu, z float64 }{
		{1.0 / 3.0, 0.5},
		{1.0 / 3.0, 2.0},
		{4.0 / 3.0, 1.0},
		{4.0 / 3.0, 6.0},
	} {
		want := math.Sqrt(tc.z/math.Pi) * BesselK(tc.mu, 0.5*tc.z)
		got := WhittakerW(0, tc.mu, tc.z)
		if math.Abs(got-want)/want > 1e-5 {
			t.Fatalf("W(0,%v)(%v) = %g, want %g", tc.mu, tc.z, got, want)
		}
	}
}
