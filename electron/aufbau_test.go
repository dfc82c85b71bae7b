package electron

import "testing"

func TestConfigureSumsToZ(t *testing.T) {
	for z := 1; z <= 36; z++ {
		total := 0
		for _, s := range Configure(z) {
			if s.Electrons <= 0 {
				t.Errorf("Z=%d: subshell %s has %d electrons", z, s.Label, s.Electrons)
			}
			if s.Electrons > s.Capacity() {
				t.Errorf("Z=%d: subshell %s holds %d > capacity %d", z, s.Label, s.Electrons, s.Capacity())
			}
			total += s.Electrons
		}
		if total != z {
			t.Errorf("Z=%d: configuration sums to %d", z, total)
		}
	}
}

func TestConfigureAufbauOrder(t *testing.T) {
	// Potassium is the first element where strict Aufbau order matters:
	// 4s fills before 3d.
	cfg := Configure(19)
	want := []string{"1s", "2s", "2p", "3s", "3p", "4s"}
	if len(cfg) != len(want) {
		t.Fatalf("Z=19: got %d subshells, want %d", len(cfg), len(want))
	}
	for i, s := range cfg {
		if s.Label != want[i] {
			t.Errorf("Z=19 subshell[%d] = %s, want %s", i, s.Label, want[i])
		}
	}

	// Scandium reaches into 3d after 4s.
	cfg = Configure(21)
	last := cfg[len(cfg)-1]
	if last.Label != "3d" || last.Electrons != 1 {
		t.Errorf("Z=21 last subshell = %s(%d), want 3d(1)", last.Label, last.Electrons)
	}
}

func TestConfigureCarbon(t *testing.T) {
	cfg := Configure(6)
	want := []struct {
		label     string
		electrons int
	}{
		{"1s", 2}, {"2s", 2}, {"2p", 2},
	}
	if len(cfg) != len(want) {
		t.Fatalf("Z=6: got %d subshells, want %d", len(cfg), len(want))
	}
	for i, s := range cfg {
		if s.Label != want[i].label || s.Electrons != want[i].electrons {
			t.Errorf("Z=6 subshell[%d] = %s(%d), want %s(%d)",
				i, s.Label, s.Electrons, want[i].label, want[i].electrons)
		}
	}
}

func TestConfigureEmpty(t *testing.T) {
	if cfg := Configure(0); len(cfg) != 0 {
		t.Errorf("Configure(0) = %v, want empty", cfg)
	}
	if cfg := Configure(-3); len(cfg) != 0 {
		t.Errorf("Configure(-3) = %v, want empty", cfg)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		z    int
		want string
	}{
		{1, "1s¹"},
		{2, "1s²"},
		{6, "1s² 2s² 2p²"},
		{10, "1s² 2s² 2p⁶"},
		{26, "1s² 2s² 2p⁶ 3s² 3p⁶ 4s² 3d⁶"},
	}
	for _, tc := range cases {
		if got := Format(Configure(tc.z)); got != tc.want {
			t.Errorf("Format(Configure(%d)) = %q, want %q", tc.z, got, tc.want)
		}
	}
}

func TestOrbitalFill(t *testing.T) {
	// Hund-style single occupancy before pairing is not modeled; the rule
	// is min(remaining, 2) walking m from -l to +l until nothing remains.
	occ := OrbitalFill(1, 3)
	wantElectrons := []int{2, 1}
	wantM := []int{-1, 0}
	if len(occ) != 2 {
		t.Fatalf("OrbitalFill(1,3) has %d orbitals, want 2", len(occ))
	}
	for i, o := range occ {
		if o.M != wantM[i] || o.Electrons != wantElectrons[i] {
			t.Errorf("orbital[%d] = m=%d e=%d, want m=%d e=%d",
				i, o.M, o.Electrons, wantM[i], wantElectrons[i])
		}
	}

	// Full subshell fills every orbital.
	full := OrbitalFill(2, 10)
	if len(full) != 5 {
		t.Fatalf("OrbitalFill(2,10) has %d orbitals, want 5", len(full))
	}
	for _, o := range full {
		if o.Electrons != 2 {
			t.Errorf("full d subshell orbital m=%d has %d electrons", o.M, o.Electrons)
		}
	}

	// Never more than 2 per orbital, total preserved.
	occ = OrbitalFill(3, 9)
	total := 0
	for _, o := range occ {
		if o.Electrons > 2 {
			t.Errorf("orbital m=%d exceeds pair cap: %d", o.M, o.Electrons)
		}
		total += o.Electrons
	}
	if total != 9 {
		t.Errorf("OrbitalFill(3,9) total = %d", total)
	}
}

func TestOrbitalFillOmitsEmptyOrbitals(t *testing.T) {
	// A 2p pair occupies a single orbital; the remaining boxes carry no
	// electrons and must not appear in the result.
	occ := OrbitalFill(1, 2)
	if len(occ) != 1 {
		t.Fatalf("OrbitalFill(1,2) has %d orbitals, want 1", len(occ))
	}
	if occ[0].M != -1 || occ[0].Electrons != 2 {
		t.Errorf("OrbitalFill(1,2)[0] = m=%d e=%d, want m=-1 e=2", occ[0].M, occ[0].Electrons)
	}
	for _, o := range occ {
		if o.Electrons == 0 {
			t.Errorf("orbital m=%d has zero electrons", o.M)
		}
	}

	if occ := OrbitalFill(2, 0); len(occ) != 0 {
		t.Errorf("OrbitalFill(2,0) = %v, want empty", occ)
	}
}

func TestDiagram(t *testing.T) {
	rows := Diagram(6)
	if len(rows) != len(aufbauOrder) {
		t.Fatalf("Diagram(6) has %d rows, want %d", len(rows), len(aufbauOrder))
	}
	if !rows[0].Active || rows[0].Label != "1s" {
		t.Errorf("row 0 = %+v, want active 1s", rows[0])
	}
	// 2p of carbon: two electrons across three boxes under the pair-first
	// fill rule -> first box paired, rest empty.
	var p2 DiagramRow
	for _, r := range rows {
		if r.Label == "2p" {
			p2 = r
		}
	}
	if !p2.Active {
		t.Fatal("2p row inactive for carbon")
	}
	if p2.Orbitals[0].Up != 1 || p2.Orbitals[0].Down != 1 {
		t.Errorf("2p first orbital = %+v, want paired", p2.Orbitals[0])
	}
	if p2.Orbitals[1].Up != 0 || p2.Orbitals[2].Up != 0 {
		t.Error("2p trailing orbitals should be empty for carbon")
	}
	// 3d must be inactive and come after 4s.
	var saw4s bool
	for _, r := range rows {
		if r.Label == "4s" {
			saw4s = true
		}
		if r.Label == "3d" {
			if !saw4s {
				t.Error("3d ordered before 4s in diagram")
			}
			if r.Active {
				t.Error("3d active for carbon")
			}
		}
	}
}
