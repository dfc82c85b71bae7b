package electron

// DiagramRow describes one subshell of the energy-level diagram: label,
// fill order, whether the subshell is occupied for the current atom, and
// the spin pair counts per orbital box. Pixel layout (arrow, boxes,
// up/down glyphs) is a UI concern.
type DiagramRow struct {
	// Label is the subshell label, e.g. "3d".
	Label string

	// Order is the 0-based position in the Aufbau sequence.
	Order int

	// Active is true when the atom has electrons in this subshell.
	Active bool

	// Orbitals holds per-mₗ spin counts: Up is 1 when the orbital has at
	// least one electron, Down is 1 when it is paired.
	Orbitals []DiagramOrbital
}

// DiagramOrbital is the spin occupancy of a single orbital box.
type DiagramOrbital struct {
	M    int
	Up   int
	Down int
}

// Diagram builds the full energy-level diagram rows for an atom. Every
// subshell of the Aufbau sequence is present so the UI can render the
// complete ladder; only rows the atom occupies are Active.
//
// Parameters:
//   - z: the atomic number
//
// Returns:
//   - []DiagramRow: one row per Aufbau subshell, in order
func Diagram(z int) []DiagramRow {
	filled := make(map[string]int)
	for _, s := range Configure(z) {
		filled[s.Label] = s.Electrons
	}

	rows := make([]DiagramRow, 0, len(aufbauOrder))
	for i, o := range aufbauOrder {
		lbl := label(o.n, o.l)
		electrons := filled[lbl]
		row := DiagramRow{
			Label:  lbl,
			Order:  i,
			Active: electrons > 0,
		}
		// Unlike OrbitalFill, every box of the subshell is present so
		// the UI can draw the empty ones.
		remaining := electrons
		for m := -o.l; m <= o.l; m++ {
			take := min(remaining, 2)
			remaining -= take
			orb := DiagramOrbital{M: m}
			if take >= 1 {
				orb.Up = 1
			}
			if take == 2 {
				orb.Down = 1
			}
			row.Orbitals = append(row.Orbitals, orb)
		}
		rows = append(rows, row)
	}
	return rows
}
