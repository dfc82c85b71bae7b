package molecule

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/compose"
)

// Catalog is the lookup table of molecule presets. It is seeded with
// the builtin molecules and can absorb additional presets from YAML
// files at runtime.
type Catalog struct {
	mu      sync.RWMutex
	presets map[string]Preset
	order   []string
}

// NewCatalog builds a catalog seeded with the builtin presets.
//
// Returns:
//   - *Catalog: the seeded catalog
func NewCatalog() *Catalog {
	c := &Catalog{presets: make(map[string]Preset)}
	for _, p := range builtinPresets {
		c.presets[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

// Get looks up a preset by its identifier.
//
// Parameters:
//   - id: the preset identifier, e.g. "h2o"
//
// Returns:
//   - Preset: the preset, zero when absent
//   - bool: whether the preset exists
func (c *Catalog) Get(id string) (Preset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.presets[id]
	return p, ok
}

// All returns the presets in registration order.
//
// Returns:
//   - []Preset: a fresh slice the caller may modify
func (c *Catalog) All() []Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Preset, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.presets[id])
	}
	return out
}

// Add validates a preset and registers it. Re-adding an existing id
// replaces the earlier entry while keeping its position.
//
// Parameters:
//   - p: the preset to register
//
// Returns:
//   - error: a validation failure, or nil
func (c *Catalog) Add(p Preset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.presets[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.presets[p.ID] = p
	return nil
}

// Builtin geometry uses scene units, not angstroms. Nuclei sit far
// enough apart that the electron clouds of neighbouring atoms stay
// visually distinct.
var builtinPresets = []Preset{
	{
		ID:          "h2",
		Name:        "Hydrogen (H₂)",
		Description: "Two hydrogen atoms sharing a single covalent bond.",
		Atoms: []Atom{
			{Z: 1, Position: mgl32.Vec3{-3, 0, 0}},
			{Z: 1, Position: mgl32.Vec3{3, 0, 0}},
		},
		Bonds: []Bond{{A: 0, B: 1, Order: 1, Type: compose.Covalent}},
	},
	{
		ID:          "o2",
		Name:        "Oxygen (O₂)",
		Description: "Molecular oxygen with a double bond.",
		Atoms: []Atom{
			{Z: 8, Position: mgl32.Vec3{-3.5, 0, 0}},
			{Z: 8, Position: mgl32.Vec3{3.5, 0, 0}},
		},
		Bonds: []Bond{{A: 0, B: 1, Order: 2, Type: compose.Covalent}},
	},
	{
		ID:          "n2",
		Name:        "Nitrogen (N₂)",
		Description: "Molecular nitrogen, triple bonded.",
		Atoms: []Atom{
			{Z: 7, Position: mgl32.Vec3{-3.3, 0, 0}},
			{Z: 7, Position: mgl32.Vec3{3.3, 0, 0}},
		},
		Bonds: []Bond{{A: 0, B: 1, Order: 3, Type: compose.Covalent}},
	},
	{
		ID:          "h2o",
		Name:        "Water (H₂O)",
		Description: "Bent geometry with a 104.5° bond angle.",
		Atoms: []Atom{
			{Z: 8, Position: mgl32.Vec3{0, 0.8, 0}},
			{Z: 1, Position: mgl32.Vec3{-3.7, -2.1, 0}},
			{Z: 1, Position: mgl32.Vec3{3.7, -2.1, 0}},
		},
		Bonds: []Bond{
			{A: 0, B: 1, Order: 1, Type: compose.Polar},
			{A: 0, B: 2, Order: 1, Type: compose.Polar},
		},
	},
	{
		ID:          "co2",
		Name:        "Carbon Dioxide (CO₂)",
		Description: "Linear molecule with two polar double bonds.",
		Atoms: []Atom{
			{Z: 6, Position: mgl32.Vec3{0, 0, 0}},
			{Z: 8, Position: mgl32.Vec3{-6, 0, 0}},
			{Z: 8, Position: mgl32.Vec3{6, 0, 0}},
		},
		Bonds: []Bond{
			{A: 0, B: 1, Order: 2, Type: compose.Polar},
			{A: 0, B: 2, Order: 2, Type: compose.Polar},
		},
	},
	{
		ID:          "ch4",
		Name:        "Methane (CH₄)",
		Description: "Tetrahedral carbon bonded to four hydrogens.",
		Atoms: []Atom{
			{Z: 6, Position: mgl32.Vec3{0, 0, 0}},
			{Z: 1, Position: mgl32.Vec3{2.9, 2.9, 2.9}},
			{Z: 1, Position: mgl32.Vec3{2.9, -2.9, -2.9}},
			{Z: 1, Position: mgl32.Vec3{-2.9, 2.9, -2.9}},
			{Z: 1, Position: mgl32.Vec3{-2.9, -2.9, 2.9}},
		},
		Bonds: []Bond{
			{A: 0, B: 1, Order: 1, Type: compose.Covalent},
			{A: 0, B: 2, Order: 1, Type: compose.Covalent},
			{A: 0, B: 3, Order: 1, Type: compose.Covalent},
			{A: 0, B: 4, Order: 1, Type: compose.Covalent},
		},
	},
	{
		ID:          "nh3",
		Name:        "Ammonia (NH₃)",
		Description: "Trigonal pyramid with nitrogen at the apex.",
		Atoms: []Atom{
			{Z: 7, Position: mgl32.Vec3{0, 1.2, 0}},
			{Z: 1, Position: mgl32.Vec3{0, -1.4, 4.2}},
			{Z: 1, Position: mgl32.Vec3{3.6, -1.4, -2.1}},
			{Z: 1, Position: mgl32.Vec3{-3.6, -1.4, -2.1}},
		},
		Bonds: []Bond{
			{A: 0, B: 1, Order: 1, Type: compose.Polar},
			{A: 0, B: 2, Order: 1, Type: compose.Polar},
			{A: 0, B: 3, Order: 1, Type: compose.Polar},
		},
	},
	{
		ID:          "nacl",
		Name:        "Sodium Chloride (NaCl)",
		Description: "Ionic pair, drawn as a single unit.",
		Atoms: []Atom{
			{Z: 11, Position: mgl32.Vec3{-4.5, 0, 0}},
			{Z: 17, Position: mgl32.Vec3{4.5, 0, 0}},
		},
		Bonds: []Bond{{A: 0, B: 1, Order: 1, Type: compose.Ionic}},
	},
	{
		ID:          "hcl",
		Name:        "Hydrogen Chloride (HCl)",
		Description: "Strongly polar single bond.",
		Atoms: []Atom{
			{Z: 1, Position: mgl32.Vec3{-4, 0, 0}},
			{Z: 17, Position: mgl32.Vec3{3, 0, 0}},
		},
		Bonds: []Bond{{A: 0, B: 1, Order: 1, Type: compose.Polar}},
	},
}
