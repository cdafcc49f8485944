// Package spectra turns the emissivity and absorption arrays produced
// by package mbs into observable quantities: energy fluxes and
// luminosities of a moving spherical source, band-integrated and
// interpolated light curves, time-integrated and averaged spectra,
// Compton dominance, photon fluxes and photon indices, and a simple
// periodogram for evenly sampled light curves.
//
// Time/frequency-resolved inputs use the layout flux[timeIndex][freqIndex].
// Out-of-range band or window requests are reported as errors;
// partially covered windows are clamped to the grid and noted on the
// optional slog.Logger carried by LightCurve and Spectrum.
package spectra
