package molecule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/compose"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	c := NewCatalog()
	all := c.All()
	if len(all) != 9 {
		t.Fatalf("expected 9 builtin presets, got %d", len(all))
	}
	for _, p := range all {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin %q failed validation: %v", p.ID, err)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	c := NewCatalog()

	water, ok := c.Get("h2o")
	if !ok {
		t.Fatal("water preset missing")
	}
	if len(water.Atoms) != 3 {
		t.Errorf("water has %d atoms, want 3", len(water.Atoms))
	}
	if len(water.Bonds) != 2 {
		t.Errorf("water has %d bonds, want 2", len(water.Bonds))
	}
	if water.Atoms[0].Z != 8 {
		t.Errorf("water atom 0 has Z=%d, want oxygen", water.Atoms[0].Z)
	}

	if _, ok := c.Get("c60"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestMethaneGeometry(t *testing.T) {
	c := NewCatalog()
	ch4, ok := c.Get("ch4")
	if !ok {
		t.Fatal("methane preset missing")
	}
	center := ch4.Atoms[0].Position
	want := ch4.Atoms[1].Position.Sub(center).Len()
	for i := 2; i < 5; i++ {
		got := ch4.Atoms[i].Position.Sub(center).Len()
		if d := got - want; d > 1e-4 || d < -1e-4 {
			t.Errorf("C-H %d length %v, want %v", i, got, want)
		}
	}
}

func TestValidateRejections(t *testing.T) {
	base := Preset{
		ID:    "x",
		Atoms: []Atom{{Z: 1}, {Z: 1}},
		Bonds: []Bond{{A: 0, B: 1, Order: 1, Type: compose.Covalent}},
	}

	cases := []struct {
		name   string
		mutate func(*Preset)
	}{
		{"no id", func(p *Preset) { p.ID = "" }},
		{"no atoms", func(p *Preset) { p.Atoms = nil }},
		{"bad z", func(p *Preset) { p.Atoms[0].Z = 99 }},
		{"index out of range", func(p *Preset) { p.Bonds[0].B = 7 }},
		{"self bond", func(p *Preset) { p.Bonds[0].B = 0 }},
		{"order zero", func(p *Preset) { p.Bonds[0].Order = 0 }},
		{"order four", func(p *Preset) { p.Bonds[0].Order = 4 }},
		{"bad type", func(p *Preset) { p.Bonds[0].Type = "metallic" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			p.Atoms = append([]Atom(nil), base.Atoms...)
			p.Bonds = append([]Bond(nil), base.Bonds...)
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCentroidAndExtent(t *testing.T) {
	p := Preset{
		ID: "pair",
		Atoms: []Atom{
			{Z: 1, Position: mgl32.Vec3{-2, 0, 0}},
			{Z: 1, Position: mgl32.Vec3{4, 0, 0}},
		},
	}
	c := p.Centroid()
	if c.X() != 1 || c.Y() != 0 || c.Z() != 0 {
		t.Errorf("centroid = %v, want (1,0,0)", c)
	}
	if e := p.MaxExtent(); e != 3 {
		t.Errorf("extent = %v, want 3", e)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yml")
	data := `molecules:
  - id: h2o2
    name: Hydrogen Peroxide
    description: Two hydroxyl groups joined by an oxygen-oxygen bond.
    atoms:
      - z: 8
        position: [-1.2, 0.4, 0]
      - z: 8
        position: [1.2, -0.4, 0]
      - z: 1
        position: [-3.8, -0.9, 1.1]
      - z: 1
        position: [3.8, 0.9, 1.1]
    bonds:
      - a: 0
        b: 1
        order: 1
        type: covalent
      - a: 0
        b: 2
        order: 1
        type: polar
      - a: 1
        b: 3
        order: 1
        type: polar
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	n, err := c.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n != 1 {
		t.Fatalf("registered %d presets, want 1", n)
	}

	p, ok := c.Get("h2o2")
	if !ok {
		t.Fatal("loaded preset missing")
	}
	if len(p.Atoms) != 4 || len(p.Bonds) != 3 {
		t.Errorf("got %d atoms %d bonds, want 4 and 3", len(p.Atoms), len(p.Bonds))
	}
	if p.Atoms[2].Position.Z() != 1.1 {
		t.Errorf("atom position not decoded: %v", p.Atoms[2].Position)
	}
	if p.Bonds[1].Type != compose.Polar {
		t.Errorf("bond type = %q, want polar", p.Bonds[1].Type)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	data := `molecules:
  - id: broken
    name: Broken
    atoms:
      - z: 8
        position: [0, 0, 0]
    bonds:
      - a: 0
        b: 5
        order: 1
        type: covalent
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	before := len(c.All())
	if _, err := c.LoadFile(path); err == nil {
		t.Fatal("expected validation error")
	}
	if after := len(c.All()); after != before {
		t.Errorf("invalid load mutated catalog: %d -> %d", before, after)
	}
}
