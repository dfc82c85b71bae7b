// Package orbital produces weighted 3D point samples approximating
// hydrogen-like orbital probability densities |ψₙₗₘ|² for n up to 7 and
// l = 0..3. The radial and angular parts are rejection sampled
// independently; both are tuned for visual legibility, not physical
// exactness.
package orbital

import "math/rand/v2"

// Source is the random stream the samplers draw from. Abstracted so
// tests can inject a seeded generator; production uses an unseeded
// default. Implementations need not be safe for concurrent use; each
// sampler owns its source.
type Source interface {
	// Float64 returns a uniformly distributed value in [0, 1).
	Float64() float64
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

// NewSource returns an unseeded random source suitable for production
// sampling. Two calls return independently seeded streams.
//
// Returns:
//   - Source: a new unseeded random stream
func NewSource() Source {
	return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a deterministic random source for tests.
//
// Parameters:
//   - seed: the stream seed
//
// Returns:
//   - Source: a seeded random stream
func NewSeededSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
