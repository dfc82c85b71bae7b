// Package electron derives ground-state electron configurations via the
// Aufbau filling order and exposes the per-orbital fill rule and the
// energy-level diagram model consumed by the UI layer.
package electron

import "strings"

// subshellLabels maps angular quantum number l to its letter.
var subshellLabels = [4]string{"s", "p", "d", "f"}

// aufbauOrder is the conventional subshell filling sequence. Real atoms
// deviate for some transition metals (Cr, Cu, ...); those anomalies are
// intentionally not modeled.
var aufbauOrder = []struct{ n, l int }{
	{1, 0},
	{2, 0}, {2, 1},
	{3, 0}, {3, 1},
	{4, 0}, {3, 2}, {4, 1},
	{5, 0}, {4, 2}, {5, 1},
	{6, 0}, {4, 3}, {5, 2}, {6, 1},
	{7, 0}, {5, 3}, {6, 2}, {7, 1},
}

// Subshell is one filled entry of an electron configuration.
type Subshell struct {
	// N is the principal quantum number.
	N int

	// L is the angular quantum number (0..3 → s,p,d,f).
	L int

	// Label combines N and the subshell letter, e.g. "2p".
	Label string

	// Electrons is the number of electrons assigned to this subshell.
	Electrons int
}

// Capacity returns the maximum electron count of the subshell, 2(2l+1).
//
// Returns:
//   - int: the subshell capacity
func (s Subshell) Capacity() int {
	return 2 * (2*s.L + 1)
}

// Configure fills subshells in Aufbau order for the given atomic number
// and returns the occupied sequence. Each subshell takes
// min(remaining, capacity) electrons; filling stops once all z electrons
// are placed. A non-positive z yields an empty configuration.
//
// Parameters:
//   - z: the atomic number (electron count of the neutral atom)
//
// Returns:
//   - []Subshell: the ordered occupied subshells
func Configure(z int) []Subshell {
	remaining := z
	var out []Subshell
	for _, o := range aufbauOrder {
		if remaining <= 0 {
			break
		}
		capacity := 2 * (2*o.l + 1)
		take := min(remaining, capacity)
		out = append(out, Subshell{
			N:         o.n,
			L:         o.l,
			Label:     label(o.n, o.l),
			Electrons: take,
		})
		remaining -= take
	}
	return out
}

// label formats a subshell label like "3d".
func label(n, l int) string {
	var b strings.Builder
	b.WriteByte(byte('0' + n))
	b.WriteString(subshellLabels[l])
	return b.String()
}

// superscripts maps decimal digits to their Unicode superscript glyphs.
var superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// Format renders a configuration as a human-readable string using
// superscript electron counts, e.g. "1s² 2s² 2p²" for carbon.
//
// Parameters:
//   - config: the subshell sequence from Configure
//
// Returns:
//   - string: the formatted configuration, empty for an empty sequence
func Format(config []Subshell) string {
	var b strings.Builder
	for i, s := range config {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Label)
		b.WriteString(superscript(s.Electrons))
	}
	return b.String()
}

// superscript converts a non-negative integer to superscript glyphs.
func superscript(v int) string {
	if v == 0 {
		return string(superscripts[0])
	}
	var digits []rune
	for v > 0 {
		digits = append([]rune{superscripts[v%10]}, digits...)
		v /= 10
	}
	return string(digits)
}

// OrbitalFill distributes a subshell's electrons over its orbitals,
// iterating mₗ from −l to +l and assigning min(remaining, 2) per
// orbital. Filling stops once every electron is placed, so the result
// holds only occupied orbitals. Stable for a given (l, electrons) pair
// and never exceeds the two-electron cap.
//
// Parameters:
//   - l: the angular quantum number
//   - electrons: the electron count of the subshell
//
// Returns:
//   - []OrbitalOccupancy: one entry per occupied orbital, in mₗ order
func OrbitalFill(l, electrons int) []OrbitalOccupancy {
	out := make([]OrbitalOccupancy, 0, 2*l+1)
	remaining := electrons
	for m := -l; m <= l && remaining > 0; m++ {
		take := min(remaining, 2)
		out = append(out, OrbitalOccupancy{M: m, Electrons: take})
		remaining -= take
	}
	return out
}

// OrbitalOccupancy is the electron count of a single orbital within a
// subshell.
type OrbitalOccupancy struct {
	// M is the magnetic quantum number, −l..+l.
	M int

	// Electrons is 0, 1, or 2.
	Electrons int
}
