package mbs

import (
	"errors"
	"math"

	"github.com/altjerue/SAPyto/constants"
	"github.com/altjerue/SAPyto/internal/pwl"
	"github.com/altjerue/SAPyto/internal/quad"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

var (
	ErrGridTooShort     = errors.New("mbs: lorentz grid needs at least two points")
	ErrGridOrder        = errors.New("mbs: lorentz grid must be strictly increasing")
	ErrGridMismatch     = errors.New("mbs: density grid length must match lorentz grid")
	ErrFieldNonPositive = errors.New("mbs: magnetic field must be positive")
	ErrSingularGamma    = errors.New("mbs: lorentz grid must be greater than 1 for absorption")
)

// Emissivity computes the synchrotron emissivity j_nu [erg cm^-3 s^-1
// Hz^-1 sr^-1] of the tabulated distribution (g, n) in a field of B
// gauss, one value per entry of nu, in input order.
func Emissivity(nu, g, n []float64, B float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(DefaultEmissivityConfig(), opts)
	if err := validateGrid(g, n, B, false); err != nil {
		return nil, err
	}
	return compute(nu, g, n, B, cfg, false), nil
}

// Absorption computes the synchrotron self-absorption coefficient
// a_nu [cm^-1] of the tabulated distribution (g, n) in a field of B
// gauss, one value per entry of nu, in input order.
//
// The stimulated-emission factor is singular at gamma = 1, so the grid
// must start above 1.
func Absorption(nu, g, n []float64, B float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(DefaultAbsorptionConfig(), opts)
	if err := validateGrid(g, n, B, true); err != nil {
		return nil, err
	}
	return compute(nu, g, n, B, cfg, true), nil
}

func validateGrid(g, n []float64, B float64, absorption bool) error {
	if len(g) < 2 {
		return ErrGridTooShort
	}
	if len(n) != len(g) {
		return ErrGridMismatch
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return ErrGridOrder
		}
	}
	if absorption && g[0] <= 1 {
		return ErrSingularGamma
	}
	if B <= 0 {
		return ErrFieldNonPositive
	}
	return nil
}

// compute fans the per-frequency integrals out over a bounded pool.
// Each task reads only the immutable inputs and writes exactly one
// slot of the preallocated output, so results keep input order and the
// in-task reduction stays serial and deterministic.
func compute(nu, g, n []float64, B float64, cfg Config, absorption bool) []float64 {
	nuB := cfg.Field.NuG(B)
	out := make([]float64, len(nu))

	var grp errgroup.Group
	grp.SetLimit(cfg.Workers)
	for i := range nu {
		grp.Go(func() error {
			out[i] = integrateSegments(nu[i]/nuB, g, n, cfg, absorption)
			return nil
		})
	}
	_ = grp.Wait() // tasks never fail

	if absorption {
		vecmath.ScaleBlockInPlace(out, constants.AmbConst*nuB)
		for i := range out {
			out[i] /= nu[i] * nu[i]
		}
	} else {
		vecmath.ScaleBlockInPlace(out, constants.JmbConst*nuB)
	}
	return out
}

// integrateSegments sums the kernel integral over every power-law
// segment of the distribution for one frequency, expressed as the
// harmonic ratio c = nu/nuB.
func integrateSegments(c float64, g, n []float64, cfg Config, absorption bool) float64 {
	qcfg := quad.Config{RelTol: cfg.RelTol, AbsTol: cfg.AbsTol, MaxDepth: cfg.MaxDepth}

	var sum float64
	var stalled int
	for k := 0; k+1 < len(g); k++ {
		if n[k] <= pwl.DensityFloor || n[k+1] <= pwl.DensityFloor {
			continue
		}
		q := pwl.Slope(g[k], g[k+1], n[k], n[k+1])

		f := func(l float64) float64 {
			gamma := math.Exp(l)
			x := 2 * c / (3 * gamma * gamma)
			kv := cfg.Kernel.eval(x, gamma)
			if absorption {
				g2 := gamma * gamma
				return math.Pow(gamma, -q) * kv * (q + 1 + g2/(g2-1))
			}
			return math.Pow(gamma, 1-q) * kv
		}

		seg, ok := quad.Romberg(f, math.Log(g[k]), math.Log(g[k+1]), qcfg)
		if !ok {
			stalled++
		}
		sum += n[k] * seg * math.Pow(g[k], q)
		if sum < pwl.SumFloor {
			sum = 0
		}
	}

	if stalled > 0 {
		cfg.Logger.Warn("quadrature hit refinement ceiling",
			"kernel", cfg.Kernel.String(),
			"harmonic", c,
			"segments", stalled,
			"maxDepth", cfg.MaxDepth)
	}
	return sum
}
