package molecule

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Carmen-Shannon/atomvis-go/compose"
	"github.com/go-gl/mathgl/mgl32"
)

// presetFile mirrors the YAML layout of a catalog extension file:
//
//	molecules:
//	  - id: h2o2
//	    name: Hydrogen Peroxide
//	    atoms:
//	      - z: 8
//	        position: [1.1, 0, 0]
//	    bonds:
//	      - a: 0
//	        b: 1
//	        order: 1
//	        type: covalent
type presetFile struct {
	Molecules []presetEntry `koanf:"molecules"`
}

type presetEntry struct {
	ID          string      `koanf:"id"`
	Name        string      `koanf:"name"`
	Description string      `koanf:"description"`
	Atoms       []atomEntry `koanf:"atoms"`
	Bonds       []bondEntry `koanf:"bonds"`
}

type atomEntry struct {
	Z        int        `koanf:"z"`
	Position [3]float32 `koanf:"position"`
}

type bondEntry struct {
	A     int    `koanf:"a"`
	B     int    `koanf:"b"`
	Order int    `koanf:"order"`
	Type  string `koanf:"type"`
}

// LoadFile reads a YAML preset file and registers every molecule it
// declares. Entries are validated before registration, and the first
// invalid entry aborts the load without touching the catalog.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - int: the number of presets registered
//   - error: a read, parse, or validation failure, or nil
func (c *Catalog) LoadFile(path string) (int, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return 0, fmt.Errorf("reading presets %s: %w", path, err)
	}

	var pf presetFile
	if err := k.Unmarshal("", &pf); err != nil {
		return 0, fmt.Errorf("unmarshalling presets %s: %w", path, err)
	}

	presets := make([]Preset, 0, len(pf.Molecules))
	for _, e := range pf.Molecules {
		p := e.toPreset()
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("presets %s: %w", path, err)
		}
		presets = append(presets, p)
	}

	for _, p := range presets {
		if err := c.Add(p); err != nil {
			return 0, err
		}
	}
	return len(presets), nil
}

func (e presetEntry) toPreset() Preset {
	p := Preset{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
	}
	for _, a := range e.Atoms {
		p.Atoms = append(p.Atoms, Atom{
			Z:        a.Z,
			Position: mgl32.Vec3{a.Position[0], a.Position[1], a.Position[2]},
		})
	}
	for _, b := range e.Bonds {
		p.Bonds = append(p.Bonds, Bond{
			A:     b.A,
			B:     b.B,
			Order: b.Order,
			Type:  compose.BondType(b.Type),
		})
	}
	return p
}
