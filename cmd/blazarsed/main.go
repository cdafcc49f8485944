// Command blazarsed computes the synchrotron self-absorbed spectral
// energy distribution of a spherical blazar emission zone.
//
// Usage:
//
//	blazarsed [flags]
//
// Examples:
//
//	blazarsed
//	blazarsed -B 0.5 -q 2.3 -gamma 20
//	blazarsed -kernel exact -points 40
//	blazarsed -numin 1e8 -numax 1e20 -v
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/altjerue/SAPyto/constants"
	"github.com/altjerue/SAPyto/mbs"
	"github.com/altjerue/SAPyto/spectra"
	"github.com/altjerue/SAPyto/srtoolkit"
	"github.com/lmittmann/tint"
)

var kernels = map[string]mbs.Kernel{
	"rma-fit":   mbs.KernelRMAFit,
	"exact":     mbs.KernelExact,
	"fdb08":     mbs.KernelFDB08,
	"rma":       mbs.KernelRMA,
	"asym-low":  mbs.KernelAsymLow,
	"asym-high": mbs.KernelAsymHigh,
}

func main() {
	var (
		bField    = flag.Float64("B", 0.1, "magnetic field strength [G]")
		gMin      = flag.Float64("gmin", 1e2, "minimum electron Lorentz factor")
		gMax      = flag.Float64("gmax", 1e6, "maximum electron Lorentz factor")
		index     = flag.Float64("q", 2.5, "electron power-law index")
		points    = flag.Int("points", 32, "electron grid points")
		nuMin     = flag.Float64("numin", 1e8, "minimum observed frequency [Hz]")
		nuMax     = flag.Float64("numax", 1e18, "maximum observed frequency [Hz]")
		nuPoints  = flag.Int("nupoints", 41, "frequency grid points")
		kernel    = flag.String("kernel", "rma-fit", "emissivity kernel (rma-fit, exact, fdb08, rma, asym-low, asym-high)")
		bulkGamma = flag.Float64("gamma", 10, "bulk Lorentz factor of the jet")
		theta     = flag.Float64("theta", 3, "viewing angle [deg]")
		redshift  = flag.Float64("z", 0.3, "source redshift")
		distPc    = flag.Float64("dl", 1.26e9, "luminosity distance [pc]")
		radius    = flag.Float64("R", 1e16, "emission zone radius [cm]")
		verbose   = flag.Bool("v", false, "log quadrature diagnostics")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))

	k, ok := kernels[*kernel]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown kernel %q\n", *kernel)
		flag.Usage()
		os.Exit(2)
	}

	g, n := powerLawDistribution(*gMin, *gMax, *points, *index)
	nus := logspace(*nuMin, *nuMax, *nuPoints)

	// Comoving-frame frequencies: the fluid sees nu/doppler.
	mu := math.Cos(*theta * math.Pi / 180)
	doppler := srtoolkit.Doppler(*bulkGamma, mu)
	nusCom := make([]float64, len(nus))
	for i, nu := range nus {
		nusCom[i] = nu * (1 + *redshift) / doppler
	}

	jnu, err := mbs.Emissivity(nusCom, g, n, *bField,
		mbs.WithKernel(k), mbs.WithLogger(logger))
	if err != nil {
		logger.Error("emissivity failed", "err", err)
		os.Exit(1)
	}
	anu, err := mbs.Absorption(nusCom, g, n, *bField,
		mbs.WithKernel(k), mbs.WithLogger(logger))
	if err != nil {
		logger.Error("absorption failed", "err", err)
		os.Exit(1)
	}

	dL := spectra.PcToCm(*distPc)
	volume := 4 * math.Pi * *radius * *radius * *radius / 3
	fnu, err := spectra.SpecEnergyFlux(jnu, anu, dL, *redshift, doppler, *radius, volume)
	if err != nil {
		logger.Error("flux failed", "err", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "nu [Hz]\tF_nu [erg/cm2/s/Hz]\tF_nu [mJy]\tnu*F_nu [erg/cm2/s]")
	for i := range nus {
		fmt.Fprintf(w, "%.3e\t%.4e\t%.4e\t%.4e\n",
			nus[i], fnu[i], 1e3*spectra.ErgToJansky(fnu[i]), nus[i]*fnu[i])
	}
	w.Flush()

	// 1 keV upward
	if xNus, xFnu := inBand(nus, fnu, 2.4e17, *nuMax); len(xNus) >= 2 {
		fit := spectra.PhotonIndex(xNus, xFnu)
		fmt.Printf("\nX-ray photon index: %.3f\n", 1-fit.Slope)
	}
	fmt.Printf("gyrofrequency nu_B: %.4e Hz\n", constants.NuConst**bField)
}

func powerLawDistribution(gMin, gMax float64, points int, q float64) (g, n []float64) {
	g = logspace(gMin, gMax, points)
	n = make([]float64, points)
	for i := range g {
		n[i] = math.Pow(g[i]/gMin, -q)
	}
	return g, n
}

func logspace(lo, hi float64, points int) []float64 {
	out := make([]float64, points)
	step := math.Log(hi/lo) / float64(points-1)
	for i := range out {
		out[i] = lo * math.Exp(float64(i)*step)
	}
	return out
}

func inBand(nus, f []float64, lo, hi float64) (x, y []float64) {
	for i := range nus {
		if nus[i] >= lo && nus[i] <= hi {
			x = append(x, nus[i])
			y = append(y, f[i])
		}
	}
	return x, y
}
