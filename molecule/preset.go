// Package molecule holds the static molecule preset catalog and the
// YAML loader for user-supplied preset files.
package molecule

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/compose"
	"github.com/Carmen-Shannon/atomvis-go/element"
)

// Atom places one element within a preset.
type Atom struct {
	// Z is the atomic number of the element.
	Z int

	// Position is the nucleus location in scene space.
	Position mgl32.Vec3
}

// Bond joins two atoms of a preset by index.
type Bond struct {
	// A and B index into the preset's atom list.
	A, B int

	// Order is the bond order, 1..3.
	Order int

	// Type selects the display treatment.
	Type compose.BondType
}

// Preset is one read-only catalog entry describing a molecule.
type Preset struct {
	ID          string
	Name        string
	Description string
	Atoms       []Atom
	Bonds       []Bond
}

// Validate checks the structural integrity of a preset: at least one
// atom, every Z in the element catalog, bond indices in range, bond
// order 1..3, and a known bond type.
//
// Returns:
//   - error: the first violation found, or nil
func (p Preset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preset has no id")
	}
	if len(p.Atoms) == 0 {
		return fmt.Errorf("preset %q has no atoms", p.ID)
	}
	for i, a := range p.Atoms {
		if _, ok := element.Lookup(a.Z); !ok {
			return fmt.Errorf("preset %q atom %d: unsupported atomic number %d", p.ID, i, a.Z)
		}
	}
	for i, b := range p.Bonds {
		if b.A < 0 || b.A >= len(p.Atoms) || b.B < 0 || b.B >= len(p.Atoms) {
			return fmt.Errorf("preset %q bond %d: atom index out of range", p.ID, i)
		}
		if b.A == b.B {
			return fmt.Errorf("preset %q bond %d: bonds an atom to itself", p.ID, i)
		}
		if b.Order < 1 || b.Order > 3 {
			return fmt.Errorf("preset %q bond %d: order %d outside 1..3", p.ID, i, b.Order)
		}
		switch b.Type {
		case compose.Covalent, compose.Polar, compose.Ionic:
		default:
			return fmt.Errorf("preset %q bond %d: unknown bond type %q", p.ID, i, b.Type)
		}
	}
	return nil
}

// Centroid returns the mean atom position, used for camera framing.
//
// Returns:
//   - mgl32.Vec3: the centroid, zero for an empty preset
func (p Preset) Centroid() mgl32.Vec3 {
	if len(p.Atoms) == 0 {
		return mgl32.Vec3{}
	}
	var sum mgl32.Vec3
	for _, a := range p.Atoms {
		sum = sum.Add(a.Position)
	}
	return sum.Mul(1 / float32(len(p.Atoms)))
}

// MaxExtent returns the largest atom-to-centroid distance.
//
// Returns:
//   - float32: the extent, 0 for an empty preset
func (p Preset) MaxExtent() float32 {
	c := p.Centroid()
	var max float32
	for _, a := range p.Atoms {
		if d := a.Position.Sub(c).Len(); d > max {
			max = d
		}
	}
	return max
}
