package orbital

// SamplerBuilderOption is a functional option for configuring a Sampler during construction.
type SamplerBuilderOption func(*sampler)

// WithSource sets the random source the sampler draws from. Tests pass
// a seeded source; production code normally omits this option.
//
// Parameters:
//   - src: the random source to use
//
// Returns:
//   - SamplerBuilderOption: functional option to set the source
func WithSource(src Source) SamplerBuilderOption {
	return func(s *sampler) {
		s.src = src
	}
}
