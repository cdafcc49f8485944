package srtoolkit

import (
	"math"
	"testing"
)

func TestBetaGammaRoundTrip(t *testing.T) {
	for _, g := range []float64{1.01, 2, 10, 1e3} {
		if got := GammaOfBeta(BetaOfGamma(g)); math.Abs(got-g)/g > 1e-9 {
			t.Fatalf("round trip gamma %v -> %v", g, got)
		}
	}
}

func TestBeta2Consistency(t *testing.T) {
	g := 7.5
	b := BetaOfGamma(g)
	if got := Beta2OfGamma(g); math.Abs(got-b*b) > 1e-15 {
		t.Fatalf("Beta2OfGamma = %v, want %v", got, b*b)
	}
}

func TestDopplerLimits(t *testing.T) {
	const g = 10.0
	// Head-on: D = Gamma (1 + beta).
	headOn := Doppler(g, 1)
	want := g * (1 + BetaOfGamma(g))
	if math.Abs(headOn-want)/want > 1e-12 {
		t.Fatalf("head-on Doppler = %v, want %v", headOn, want)
	}
	// Transverse: D = 1/Gamma.
	if got := Doppler(g, 0); math.Abs(got-1/g) > 1e-12 {
		t.Fatalf("transverse Doppler = %v, want %v", got, 1/g)
	}
}

func TestTComovingAtRest(t *testing.T) {
	// No motion, no redshift, no displacement: identity.
	if got := TComoving(42, 0, 1, 1, 0); got != 42 {
		t.Fatalf("TComoving = %v, want 42", got)
	}
	// Time dilation alone divides by the bulk Lorentz factor.
	if got := TComoving(42, 0, 10, 1, 0); math.Abs(got-4.2) > 1e-12 {
		t.Fatalf("TComoving = %v, want 4.2", got)
	}
}
