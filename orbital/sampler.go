package orbital

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sample is one weighted point of an orbital cloud. Density is
// unnormalized and only meaningful relative to other samples of the
// same subshell.
type Sample struct {
	// Position is the sample location in scene space.
	Position mgl32.Vec3

	// Density is radialDensity × angularWeight, both in [0, 1]. Used for
	// relative color and opacity weighting, never as a true probability.
	Density float64
}

// Sampler produces point clouds approximating |ψₙₗₘ|² for hydrogen-like
// orbitals. Implementations are not safe for concurrent use; create one
// sampler per goroutine.
type Sampler interface {
	// SampleOrbital produces exactly count samples for the orbital with
	// quantum numbers (n, l, m). Rejection exhaustion is handled by
	// deterministic fallbacks, never by dropping samples.
	//
	// Parameters:
	//   - n: principal quantum number (>= 1)
	//   - l: angular quantum number (0..3, l < n)
	//   - m: magnetic quantum number (−l..+l)
	//   - count: the number of samples to produce
	//
	// Returns:
	//   - []Sample: count weighted point samples
	SampleOrbital(n, l, m, count int) []Sample

	// SampleRadius draws one scene-space radius and its relative radial
	// density for the (n, l) radial distribution.
	//
	// Parameters:
	//   - n: principal quantum number
	//   - l: angular quantum number
	//
	// Returns:
	//   - float64: radius >= 0 in scene units
	//   - float64: radial density in [0, 1]
	SampleRadius(n, l int) (float64, float64)
}

type sampler struct {
	src   Source
	peaks map[[2]int]float64
}

var _ Sampler = &sampler{}

// NewSampler creates a Sampler configured with the given options. The
// default random source is unseeded.
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(options ...SamplerBuilderOption) Sampler {
	s := &sampler{
		peaks: make(map[[2]int]float64),
	}
	for _, option := range options {
		option(s)
	}
	if s.src == nil {
		s.src = NewSource()
	}
	return s
}

func (s *sampler) SampleOrbital(n, l, m, count int) []Sample {
	if count <= 0 {
		return nil
	}
	out := make([]Sample, count)
	for i := range out {
		radius, radialDensity := s.sampleRadius(n, l)
		dir, angular := s.sampleDirection(l, m)
		out[i] = Sample{
			Position: dir.Mul(float32(radius)),
			Density:  radialDensity * angular,
		}
	}
	return out
}

func (s *sampler) SampleRadius(n, l int) (float64, float64) {
	return s.sampleRadius(n, l)
}
