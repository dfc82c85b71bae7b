package orbital

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// radialGridPoints is the resolution of the coarse grid used to
	// estimate the radial density maximum for rejection sampling.
	radialGridPoints = 201

	// rejectionMargin scales the estimated maximum so grid undersampling
	// between knots cannot bias acceptance.
	rejectionMargin = 1.05

	// maxAttempts bounds both the radial and angular rejection loops;
	// exhaustion falls back to a deterministic sample instead of failing.
	maxAttempts = 500

	// fallbackRadialDensity is the density reported for a fallback
	// radial sample.
	fallbackRadialDensity = 0.3
)

// RadialScale returns the visual shell scale for principal quantum
// number n. Chosen so successive shells are visibly separated; not a
// physical length.
//
// Parameters:
//   - n: the principal quantum number
//
// Returns:
//   - float64: the scene-space scale of shell n
func RadialScale(n int) float64 {
	return 2.5 + 2.0*float64(n-1)
}

// rhoMax is the practical truncation of the scaled radius domain. The
// true support is infinite; 3n+4 keeps the tail visually negligible.
func rhoMax(n int) float64 {
	return 3.0*float64(n) + 4.0
}

// laguerre evaluates the generalized Laguerre polynomial L_k^alpha(x)
// via the standard three-term recurrence.
func laguerre(k int, alpha, x float64) float64 {
	if k <= 0 {
		return 1
	}
	prev := 1.0
	cur := 1.0 + alpha - x
	for i := 2; i <= k; i++ {
		next := ((float64(2*i-1)+alpha-x)*cur - (float64(i-1)+alpha)*prev) / float64(i)
		prev, cur = cur, next
	}
	return cur
}

// radialShape is the unnormalized radial probability
// P(ρ) = ρ² · [ρ^l · L(ρ)]² · e^(−ρ) with L of degree n−l−1 and order
// 2l+1. This carries exactly n−l−1 radial nodes, matching quantum
// theory.
func radialShape(n, l int, rho float64) float64 {
	if rho < 0 {
		return 0
	}
	lag := laguerre(n-l-1, float64(2*l+1), rho)
	amp := math.Pow(rho, float64(l)) * lag
	return rho * rho * amp * amp * math.Exp(-rho)
}

// radialPeak estimates the maximum of radialShape over [0, ρ_max] on a
// coarse grid. The result is cached per (n, l) by the sampler.
func radialPeak(n, l int) float64 {
	grid := make([]float64, radialGridPoints)
	limit := rhoMax(n)
	for i := range grid {
		rho := limit * float64(i) / float64(radialGridPoints-1)
		grid[i] = radialShape(n, l, rho)
	}
	peak := floats.Max(grid)
	if peak <= 0 {
		// Degenerate inputs (l >= n) have an identically zero shape;
		// keep the rejection loop well-defined.
		peak = 1
	}
	return peak
}

// sampleRadius draws one scene-space radius for the (n, l) radial
// distribution by rejection against the grid-estimated peak. On
// attempt exhaustion it returns the mid-shell fallback so every call
// yields a usable sample.
func (s *sampler) sampleRadius(n, l int) (radius, density float64) {
	peak := s.peakFor(n, l) * rejectionMargin
	limit := rhoMax(n)
	scale := RadialScale(n)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		rho := s.src.Float64() * limit
		p := radialShape(n, l, rho)
		if s.src.Float64()*peak < p {
			d := p / peak
			if d > 1 {
				d = 1
			}
			return rho * scale / (2.0 * float64(n)), d
		}
	}
	return 0.5 * scale, fallbackRadialDensity
}

// peakFor returns the cached rejection ceiling for (n, l), computing
// and storing it on first use.
func (s *sampler) peakFor(n, l int) float64 {
	key := [2]int{n, l}
	if p, ok := s.peaks[key]; ok {
		return p
	}
	p := radialPeak(n, l)
	s.peaks[key] = p
	return p
}
