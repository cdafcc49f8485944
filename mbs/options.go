package mbs

import (
	"log/slog"
	"runtime"
)

// Config holds the knobs of a coefficient computation.
type Config struct {
	Field    FieldConfig
	Kernel   Kernel
	RelTol   float64      // Romberg relative tolerance
	AbsTol   float64      // Romberg absolute tolerance
	MaxDepth int          // Romberg refinement ceiling
	Workers  int          // worker pool size; <= 0 means NumCPU
	Logger   *slog.Logger // diagnostics sink; nil discards
}

// Option mutates a Config.
type Option func(*Config)

// DefaultEmissivityConfig returns the default emissivity settings.
func DefaultEmissivityConfig() Config {
	return Config{
		Field:    DefaultFieldConfig(),
		Kernel:   KernelRMAFit,
		RelTol:   1.48e-8,
		AbsTol:   1.48e-8,
		MaxDepth: 10,
	}
}

// DefaultAbsorptionConfig returns the default absorption settings.
// The absorption integrand is harder on the quadrature, so its
// default tolerances are looser.
func DefaultAbsorptionConfig() Config {
	cfg := DefaultEmissivityConfig()
	cfg.RelTol = 1.48e-5
	cfg.AbsTol = 1.48e-5
	return cfg
}

// WithKernel selects the synchrotron kernel variant.
func WithKernel(k Kernel) Option {
	return func(cfg *Config) {
		cfg.Kernel = k
	}
}

// WithTolerances sets the quadrature tolerances.
func WithTolerances(rel, abs float64) Option {
	return func(cfg *Config) {
		if rel > 0 {
			cfg.RelTol = rel
		}
		if abs > 0 {
			cfg.AbsTol = abs
		}
	}
}

// WithMaxDepth sets the Romberg refinement ceiling.
func WithMaxDepth(depth int) Option {
	return func(cfg *Config) {
		if depth > 0 {
			cfg.MaxDepth = depth
		}
	}
}

// WithWorkers bounds the frequency worker pool.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithFieldConfig overrides the charge, mass and pitch-angle defaults.
func WithFieldConfig(fc FieldConfig) Option {
	return func(cfg *Config) {
		cfg.Field = fc
	}
}

// WithLogger sets the sink for numerical diagnostics such as
// quadrature non-convergence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

func applyOptions(cfg Config, opts []Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
