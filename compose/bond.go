package compose

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
	"github.com/Carmen-Shannon/atomvis-go/orbital"
)

// BondType selects the display treatment of a bond.
type BondType string

const (
	Covalent BondType = "covalent"
	Polar    BondType = "polar"
	Ionic    BondType = "ionic"
)

// bondColors keys the cylinder tint by bond type.
var bondColors = map[BondType]common.Color{
	Covalent: {R: 0.72, G: 0.84, B: 0.78},
	Polar:    {R: 0.30, G: 0.74, B: 0.86},
	Ionic:    {R: 0.95, G: 0.60, B: 0.24},
}

const (
	// bondOffsetSpacing separates the parallel cylinders of double and
	// triple bonds.
	bondOffsetSpacing = 0.45

	// bondRadius and bondGlowRadius size each cylinder pair.
	bondRadius     = 0.09
	bondGlowRadius = 0.20

	// bondCloudSpan is the fraction of the bond length the shared
	// electron cloud occupies, centered on the midpoint.
	bondCloudSpan = 0.7

	// bondCloudSigma is the Gaussian spread perpendicular to the axis.
	bondCloudSigma = 0.5

	// bondCloudSigmaClamp bounds perpendicular outliers.
	bondCloudSigmaClamp = 3.0

	// degenerateBondLength is the length below which a bond is treated
	// as zero-length.
	degenerateBondLength = 1e-6
)

// BondSegment is one cylinder of a composed bond. Each offset axis
// yields a solid segment and a wider translucent glow segment.
type BondSegment struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
	Color  common.Color
	Glow   bool
}

// ComposeBond computes the parallel cylinder segments for a bond of the
// given order. Order 1 yields one centered axis, order 2 a symmetric ±
// pair, order 3 a centered axis plus a symmetric pair; every offset is
// perpendicular to the bond direction. Unknown orders are clamped to
// the 1..3 range.
//
// Parameters:
//   - a: first endpoint
//   - b: second endpoint
//   - order: bond order 1..3
//   - typ: bond type keying the color
//
// Returns:
//   - []BondSegment: solid and glow segments, empty for degenerate bonds
func ComposeBond(a, b mgl32.Vec3, order int, typ BondType) []BondSegment {
	axis := b.Sub(a)
	if axis.Len() < degenerateBondLength {
		return nil
	}
	if order < 1 {
		order = 1
	}
	if order > 3 {
		order = 3
	}

	perp := common.StablePerpendicular(axis)
	color, ok := bondColors[typ]
	if !ok {
		color = bondColors[Covalent]
	}

	var offsets []float32
	switch order {
	case 1:
		offsets = []float32{0}
	case 2:
		offsets = []float32{bondOffsetSpacing, -bondOffsetSpacing}
	case 3:
		offsets = []float32{0, bondOffsetSpacing, -bondOffsetSpacing}
	}

	segments := make([]BondSegment, 0, len(offsets)*2)
	for _, off := range offsets {
		shift := perp.Mul(off)
		start := a.Add(shift)
		end := b.Add(shift)
		segments = append(segments,
			BondSegment{Start: start, End: end, Radius: bondRadius, Color: color},
			BondSegment{Start: start, End: end, Radius: bondGlowRadius, Color: color, Glow: true},
		)
	}
	return segments
}

// BuildBondCloud emits a density-weighted point cloud for the shared
// electron density of a bond: samples spread along the middle 70% of
// the axis, Gaussian-distributed in the perpendicular plane with a 3σ
// clamp, density falling with distance from the bond center. Degenerate
// bonds produce no cloud, and non-finite positions are substituted with
// the bond midpoint rather than reaching the render buffers.
//
// Parameters:
//   - a: first endpoint
//   - b: second endpoint
//   - count: the number of samples to produce
//   - src: random source
//
// Returns:
//   - []orbital.Sample: count samples, or nil for a degenerate bond
func BuildBondCloud(a, b mgl32.Vec3, count int, src orbital.Source) []orbital.Sample {
	axis := b.Sub(a)
	length := float64(axis.Len())
	if length < degenerateBondLength || count <= 0 {
		return nil
	}

	dir := axis.Mul(float32(1 / length))
	perpU := common.StablePerpendicular(axis)
	perpV := dir.Cross(perpU)
	mid := a.Add(axis.Mul(0.5))

	samples := make([]orbital.Sample, count)
	for i := range samples {
		// Axial placement inside the centered 70% span.
		t := (1-bondCloudSpan)/2 + bondCloudSpan*src.Float64()
		along := a.Add(axis.Mul(float32(t)))

		// Perpendicular Gaussian radius via the log of a safeguarded
		// uniform draw, clamped to 3σ.
		u := src.Float64()
		if u < 1e-9 {
			u = 1e-9
		}
		radius := bondCloudSigma * math.Sqrt(-2*math.Log(u))
		if radius > bondCloudSigma*bondCloudSigmaClamp {
			radius = bondCloudSigma * bondCloudSigmaClamp
		}
		theta := 2 * math.Pi * src.Float64()

		pos := along.
			Add(perpU.Mul(float32(radius * math.Cos(theta)))).
			Add(perpV.Mul(float32(radius * math.Sin(theta))))
		if !common.IsFinite(pos) {
			pos = mid
		}

		// Density peaks at the bond center and fades toward the span
		// edges and radially outward.
		axial := 1 - math.Abs(t-0.5)/(bondCloudSpan/2)
		radial := 1 - radius/(bondCloudSigma*bondCloudSigmaClamp)
		samples[i] = orbital.Sample{
			Position: pos,
			Density:  common.Clamp(axial*radial, 0, 1),
		}
	}
	return samples
}

// BondColor returns the display color for a bond type.
//
// Parameters:
//   - typ: the bond type
//
// Returns:
//   - common.Color: the tint, defaulting to covalent for unknown types
func BondColor(typ BondType) common.Color {
	if c, ok := bondColors[typ]; ok {
		return c
	}
	return bondColors[Covalent]
}
