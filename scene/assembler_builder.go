package scene

import (
	"github.com/Carmen-Shannon/atomvis-go/compose"
	"github.com/Carmen-Shannon/atomvis-go/orbital"
)

// AssemblerBuilderOption configures an assembler during construction.
type AssemblerBuilderOption func(*assembler)

// WithWorkers overrides the sampling worker count. Values below 1 are
// ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - AssemblerBuilderOption: the option
func WithWorkers(n int) AssemblerBuilderOption {
	return func(a *assembler) {
		if n >= 1 {
			a.workers = n
		}
	}
}

// WithSamplerFactory overrides how per-job samplers are created. Tests
// use this to inject seeded samplers.
//
// Parameters:
//   - f: the factory, called once per sampling job
//
// Returns:
//   - AssemblerBuilderOption: the option
func WithSamplerFactory(f func() orbital.Sampler) AssemblerBuilderOption {
	return func(a *assembler) {
		if f != nil {
			a.newSampler = f
		}
	}
}

// WithSourceFactory overrides how random sources are created for
// nucleus shuffling and bond clouds.
//
// Parameters:
//   - f: the factory, called once per consumer
//
// Returns:
//   - AssemblerBuilderOption: the option
func WithSourceFactory(f func() orbital.Source) AssemblerBuilderOption {
	return func(a *assembler) {
		if f != nil {
			a.newSource = f
		}
	}
}

// WithPalette overrides the nucleon color palette.
//
// Parameters:
//   - p: the palette
//
// Returns:
//   - AssemblerBuilderOption: the option
func WithPalette(p compose.Palette) AssemblerBuilderOption {
	return func(a *assembler) {
		a.palette = p
	}
}
