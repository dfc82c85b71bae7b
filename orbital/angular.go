package orbital

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Steepening exponents applied to the angular acceptance weight.
// Larger exponents carve sharper nodal separation between lobes than
// the true ψ² exponent would; this is a deliberate legibility choice
// and must not be "corrected" toward the physical value.
const (
	steepnessP = 3.5
	steepnessD = 2.5
	steepnessF = 2.0
)

// angularWeight returns the l,mₗ-specific acceptance weight in [0, 1]
// for a unit direction. For l=0 the weight is identically 1.
func angularWeight(l, m int, x, y, z float64) float64 {
	switch l {
	case 0:
		return 1
	case 1:
		// Lobe axis by mₗ: 0 → y, +1 → x, −1 → z.
		switch m {
		case 1:
			return x * x
		case -1:
			return z * z
		default:
			return y * y
		}
	case 2:
		return dWeight(m, x, y, z)
	case 3:
		return fWeight(m, x, y, z)
	default:
		return 1
	}
}

// dWeight holds the five closed-form d-orbital angular shapes. Each is
// scaled so its natural maximum sits at 1 and capped defensively.
func dWeight(m int, x, y, z float64) float64 {
	var w float64
	switch m {
	case 0: // dz²
		a := (3*z*z - 1) / 2
		w = a * a
	case 1: // dxz
		w = 4 * x * x * z * z
	case -1: // dyz
		w = 4 * y * y * z * z
	case 2: // dx²−y²
		a := x*x - y*y
		w = a * a
	case -2: // dxy
		w = 4 * x * x * y * y
	}
	return capWeight(w)
}

// fWeight holds the seven f-orbital angular shapes in the cubic set,
// each scaled toward a unit maximum and capped.
func fWeight(m int, x, y, z float64) float64 {
	var w float64
	switch m {
	case 0: // fz³
		a := (5*z*z*z - 3*z) / 2
		w = a * a
	case 1: // fxz²
		a := x * (5*z*z - 1)
		w = 0.5 * a * a
	case -1: // fyz²
		a := y * (5*z*z - 1)
		w = 0.5 * a * a
	case 2: // fz(x²−y²)
		a := z * (x*x - y*y)
		w = 6.75 * a * a
	case -2: // fxyz
		a := x * y * z
		w = 27 * a * a
	case 3: // fx(x²−3y²)
		a := x * (x*x - 3*y*y)
		w = a * a
	case -3: // fy(3x²−y²)
		a := y * (3*x*x - y*y)
		w = a * a
	}
	return capWeight(w)
}

func capWeight(w float64) float64 {
	if w > 1 {
		return 1
	}
	if w < 0 {
		return 0
	}
	return w
}

// steepness returns the rejection exponent for angular quantum number l.
func steepness(l int) float64 {
	switch l {
	case 1:
		return steepnessP
	case 2:
		return steepnessD
	case 3:
		return steepnessF
	default:
		return 1
	}
}

// fallbackDirections maps each (l, mₗ) pair to a known peak-density
// direction for that orbital. When the angular rejection loop exhausts
// its attempts the sample is snapped here instead of being discarded,
// so every requested sample is produced.
var fallbackDirections = map[[2]int]mgl32.Vec3{
	{0, 0}: {0, 1, 0},

	{1, 0}:  {0, 1, 0},
	{1, 1}:  {1, 0, 0},
	{1, -1}: {0, 0, 1},

	{2, 0}:  {0, 0, 1},
	{2, 1}:  {0.7071, 0, 0.7071},
	{2, -1}: {0, 0.7071, 0.7071},
	{2, 2}:  {1, 0, 0},
	{2, -2}: {0.7071, 0.7071, 0},

	{3, 0}:  {0, 0, 1},
	{3, 1}:  {0.5164, 0, 0.8563},
	{3, -1}: {0, 0.5164, 0.8563},
	{3, 2}:  {0.8165, 0, 0.5774},
	{3, -2}: {0.5774, 0.5774, 0.5774},
	{3, 3}:  {1, 0, 0},
	{3, -3}: {0, 1, 0},
}

// FallbackDirection returns the canonical peak direction for (l, mₗ).
//
// Parameters:
//   - l: the angular quantum number (0..3)
//   - m: the magnetic quantum number (−l..+l)
//
// Returns:
//   - mgl32.Vec3: the unit fallback direction
//   - bool: false when (l, m) is outside the supported table
func FallbackDirection(l, m int) (mgl32.Vec3, bool) {
	d, ok := fallbackDirections[[2]int{l, m}]
	return d, ok
}

// sampleDirection draws one unit direction for the (l, mₗ) angular
// distribution: uniform sphere candidates accepted by the steepened
// angular weight, with the canonical peak direction as deterministic
// fallback. The returned weight is the pre-steepening angular weight
// used for density shading.
func (s *sampler) sampleDirection(l, m int) (dir mgl32.Vec3, weight float64) {
	if l == 0 {
		return s.uniformDirection(), 1
	}

	exp := steepness(l)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		d := s.uniformDirection()
		w := angularWeight(l, m, float64(d[0]), float64(d[1]), float64(d[2]))
		if s.src.Float64() < math.Pow(w, exp) {
			return d, w
		}
	}

	if d, ok := fallbackDirections[[2]int{l, m}]; ok {
		return d, 1
	}
	return s.uniformDirection(), 1
}

// uniformDirection draws a direction uniformly on the unit sphere.
func (s *sampler) uniformDirection() mgl32.Vec3 {
	z := 1 - 2*s.src.Float64()
	phi := 2 * math.Pi * s.src.Float64()
	sinTheta := math.Sqrt(1 - z*z)
	return mgl32.Vec3{
		float32(sinTheta * math.Cos(phi)),
		float32(sinTheta * math.Sin(phi)),
		float32(z),
	}
}
