// Package element holds the static periodic-table catalog for the
// supported range Z = 1..36 (hydrogen through krypton).
package element

import (
	"strings"

	"github.com/Carmen-Shannon/atomvis-go/common"
)

// MaxAtomicNumber is the highest atomic number in the catalog.
const MaxAtomicNumber = 36

// Element describes one catalog entry. Entries are immutable; the
// catalog is built once at package init.
type Element struct {
	// AtomicNumber is the proton count Z (1..MaxAtomicNumber).
	AtomicNumber int

	// Symbol is the one- or two-letter element symbol.
	Symbol string

	// Name is the English element name.
	Name string

	// NeutronCount is the neutron count of the most abundant isotope.
	NeutronCount int

	// Color is the CPK-style display color used for nucleus glow and
	// molecule atom tinting.
	Color common.Color

	// CovalentRadius is a relative display radius (carbon = 1.0), not a
	// physical length. Used to scale nuclei in molecule views.
	CovalentRadius float32
}

var catalog = []Element{
	{1, "H", "Hydrogen", 0, common.Color{R: 0.95, G: 0.95, B: 0.95}, 0.42},
	{2, "He", "Helium", 2, common.Color{R: 0.85, G: 1.00, B: 1.00}, 0.37},
	{3, "Li", "Lithium", 4, common.Color{R: 0.80, G: 0.50, B: 1.00}, 1.68},
	{4, "Be", "Beryllium", 5, common.Color{R: 0.76, G: 1.00, B: 0.00}, 1.26},
	{5, "B", "Boron", 6, common.Color{R: 1.00, G: 0.71, B: 0.71}, 1.09},
	{6, "C", "Carbon", 6, common.Color{R: 0.56, G: 0.56, B: 0.56}, 1.00},
	{7, "N", "Nitrogen", 7, common.Color{R: 0.19, G: 0.31, B: 0.97}, 0.93},
	{8, "O", "Oxygen", 8, common.Color{R: 1.00, G: 0.05, B: 0.05}, 0.87},
	{9, "F", "Fluorine", 10, common.Color{R: 0.56, G: 0.88, B: 0.31}, 0.75},
	{10, "Ne", "Neon", 10, common.Color{R: 0.70, G: 0.89, B: 0.96}, 0.76},
	{11, "Na", "Sodium", 12, common.Color{R: 0.67, G: 0.36, B: 0.95}, 2.18},
	{12, "Mg", "Magnesium", 12, common.Color{R: 0.54, G: 1.00, B: 0.00}, 1.85},
	{13, "Al", "Aluminium", 14, common.Color{R: 0.75, G: 0.65, B: 0.65}, 1.59},
	{14, "Si", "Silicon", 14, common.Color{R: 0.94, G: 0.78, B: 0.63}, 1.46},
	{15, "P", "Phosphorus", 16, common.Color{R: 1.00, G: 0.50, B: 0.00}, 1.41},
	{16, "S", "Sulfur", 16, common.Color{R: 1.00, G: 1.00, B: 0.19}, 1.38},
	{17, "Cl", "Chlorine", 18, common.Color{R: 0.12, G: 0.94, B: 0.12}, 1.33},
	{18, "Ar", "Argon", 22, common.Color{R: 0.50, G: 0.82, B: 0.89}, 1.39},
	{19, "K", "Potassium", 20, common.Color{R: 0.56, G: 0.25, B: 0.83}, 2.67},
	{20, "Ca", "Calcium", 20, common.Color{R: 0.24, G: 1.00, B: 0.00}, 2.32},
	{21, "Sc", "Scandium", 24, common.Color{R: 0.90, G: 0.90, B: 0.90}, 2.24},
	{22, "Ti", "Titanium", 26, common.Color{R: 0.75, G: 0.76, B: 0.78}, 2.11},
	{23, "V", "Vanadium", 28, common.Color{R: 0.65, G: 0.65, B: 0.67}, 2.01},
	{24, "Cr", "Chromium", 28, common.Color{R: 0.54, G: 0.60, B: 0.78}, 1.95},
	{25, "Mn", "Manganese", 30, common.Color{R: 0.61, G: 0.48, B: 0.78}, 1.87},
	{26, "Fe", "Iron", 30, common.Color{R: 0.88, G: 0.40, B: 0.20}, 1.82},
	{27, "Co", "Cobalt", 32, common.Color{R: 0.94, G: 0.56, B: 0.63}, 1.77},
	{28, "Ni", "Nickel", 30, common.Color{R: 0.31, G: 0.82, B: 0.31}, 1.74},
	{29, "Cu", "Copper", 34, common.Color{R: 0.78, G: 0.50, B: 0.20}, 1.71},
	{30, "Zn", "Zinc", 34, common.Color{R: 0.49, G: 0.50, B: 0.69}, 1.68},
	{31, "Ga", "Gallium", 38, common.Color{R: 0.76, G: 0.56, B: 0.56}, 1.64},
	{32, "Ge", "Germanium", 42, common.Color{R: 0.40, G: 0.56, B: 0.56}, 1.57},
	{33, "As", "Arsenic", 42, common.Color{R: 0.74, G: 0.50, B: 0.89}, 1.51},
	{34, "Se", "Selenium", 46, common.Color{R: 1.00, G: 0.63, B: 0.00}, 1.45},
	{35, "Br", "Bromine", 44, common.Color{R: 0.65, G: 0.16, B: 0.16}, 1.40},
	{36, "Kr", "Krypton", 48, common.Color{R: 0.36, G: 0.72, B: 0.82}, 1.42},
}

var bySymbol = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[strings.ToLower(e.Symbol)] = i
	}
	return m
}()

// Lookup returns the element with the given atomic number.
//
// Parameters:
//   - z: the atomic number (1..MaxAtomicNumber)
//
// Returns:
//   - Element: the catalog entry (zero value when not found)
//   - bool: true if z is in the supported range
func Lookup(z int) (Element, bool) {
	if z < 1 || z > len(catalog) {
		return Element{}, false
	}
	return catalog[z-1], true
}

// LookupSymbol returns the element with the given symbol. The match is
// case-insensitive.
//
// Parameters:
//   - symbol: the element symbol, e.g. "Fe" or "fe"
//
// Returns:
//   - Element: the catalog entry (zero value when not found)
//   - bool: true if the symbol is known
func LookupSymbol(symbol string) (Element, bool) {
	i, ok := bySymbol[strings.ToLower(symbol)]
	if !ok {
		return Element{}, false
	}
	return catalog[i], true
}

// All returns a copy of the full catalog ordered by atomic number.
//
// Returns:
//   - []Element: all supported elements
func All() []Element {
	out := make([]Element, len(catalog))
	copy(out, catalog)
	return out
}
