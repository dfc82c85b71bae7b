// Package compose arranges the non-cloud geometry of an atom or
// molecule view: nucleon clusters, bond cylinders, and the shared
// electron cloud along a bond axis.
package compose

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
	"github.com/Carmen-Shannon/atomvis-go/orbital"
)

// NucleonType distinguishes protons from neutrons in a cluster.
type NucleonType int

const (
	Proton NucleonType = iota
	Neutron
)

// Nucleon is one positioned particle of a nucleus cluster.
type Nucleon struct {
	Type     NucleonType
	Position mgl32.Vec3
	Color    common.Color
}

// NucleusCluster is the composed nucleus: positioned nucleons plus an
// optional translucent glow shell.
type NucleusCluster struct {
	// Nucleons holds the shuffled, positioned particles.
	Nucleons []Nucleon

	// ParticleRadius is the render radius of one nucleon.
	ParticleRadius float32

	// GlowRadius is the translucent shell radius, 0 when glow is
	// disabled.
	GlowRadius float32
}

// Palette supplies the display colors for the two nucleon types.
type Palette struct {
	Proton  common.Color
	Neutron common.Color
}

// DefaultPalette is the standard red-proton / blue-neutron scheme.
var DefaultPalette = Palette{
	Proton:  common.Color{R: 0.93, G: 0.26, B: 0.21},
	Neutron: common.Color{R: 0.26, G: 0.52, B: 0.96},
}

const (
	// baseNucleonRadius is the unscaled render radius of one nucleon.
	baseNucleonRadius = 0.34

	// glowRadiusFactor scales the particle radius up to the glow shell.
	glowRadiusFactor = 2.5

	// goldenAngle is the azimuth step of the spherical Fibonacci layout.
	goldenAngle = math.Pi * (3 - 2.2360679774997896) // π(3−√5)
)

// ComposeNucleus arranges protons and neutrons into a compact cluster.
// The type list (protons first, then neutrons) is Fisher–Yates shuffled
// with src so color is spatially uncorrelated; the first shuffled
// particle sits at the exact origin and the rest follow a spherical
// Fibonacci-like layout with radius growing as the cube root of the
// normalized index.
//
// Parameters:
//   - protons: the proton count
//   - neutrons: the neutron count
//   - scale: the nucleus scale factor from the visualization state
//   - glow: whether to emit the translucent glow shell
//   - palette: nucleon display colors
//   - src: random source for the shuffle
//
// Returns:
//   - NucleusCluster: the composed cluster (empty for zero particles)
func ComposeNucleus(protons, neutrons int, scale float64, glow bool, palette Palette, src orbital.Source) NucleusCluster {
	count := protons + neutrons
	cluster := NucleusCluster{
		ParticleRadius: float32(baseNucleonRadius * scale),
	}
	if glow {
		cluster.GlowRadius = float32(baseNucleonRadius * scale * glowRadiusFactor)
	}
	if count <= 0 {
		return cluster
	}

	types := make([]NucleonType, 0, count)
	for i := 0; i < protons; i++ {
		types = append(types, Proton)
	}
	for i := 0; i < neutrons; i++ {
		types = append(types, Neutron)
	}
	shuffle(types, src)

	// Cluster radius approximates dense packing: volume grows linearly
	// with particle count, so the hull grows as its cube root.
	hull := float64(cluster.ParticleRadius) * 1.9 * math.Cbrt(float64(count))

	cluster.Nucleons = make([]Nucleon, count)
	for i, typ := range types {
		var pos mgl32.Vec3
		if i > 0 {
			t := float64(i) / float64(count)
			radius := hull * math.Cbrt(t)
			polar := math.Acos(1 - 2*t)
			azimuth := float64(i) * goldenAngle
			sinP := math.Sin(polar)
			pos = mgl32.Vec3{
				float32(radius * sinP * math.Cos(azimuth)),
				float32(radius * math.Cos(polar)),
				float32(radius * sinP * math.Sin(azimuth)),
			}
		}
		color := palette.Proton
		if typ == Neutron {
			color = palette.Neutron
		}
		cluster.Nucleons[i] = Nucleon{Type: typ, Position: pos, Color: color}
	}
	return cluster
}

// shuffle applies a Fisher–Yates permutation driven by src.
func shuffle(types []NucleonType, src orbital.Source) {
	for i := len(types) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		types[i], types[j] = types[j], types[i]
	}
}
