package scene

import (
	"testing"

	"github.com/Carmen-Shannon/atomvis-go/molecule"
	"github.com/Carmen-Shannon/atomvis-go/orbital"
)

// testState keeps sample counts small enough for fast test runs.
func testState() VisualizationState {
	s := DefaultState()
	s.CloudDensityFactor = 0.01
	return s
}

func testAssembler(t *testing.T) Assembler {
	t.Helper()
	seed := uint64(0)
	return NewAssembler(molecule.NewCatalog(),
		WithWorkers(2),
		WithSamplerFactory(func() orbital.Sampler {
			seed++
			return orbital.NewSampler(orbital.WithSource(orbital.NewSeededSource(seed)))
		}),
		WithSourceFactory(func() orbital.Source {
			return orbital.NewSeededSource(7)
		}),
	)
}

func TestAssembleCarbonAtom(t *testing.T) {
	a := testAssembler(t)
	asm := a.AssembleAtom(6, testState())
	if asm == nil {
		t.Fatal("carbon build returned nil")
	}

	if asm.ConfigString != "1s² 2s² 2p²" {
		t.Errorf("config string = %q, want 1s² 2s² 2p²", asm.ConfigString)
	}
	if asm.Mode != ModeAtom {
		t.Errorf("mode = %q, want atom", asm.Mode)
	}

	// Carbon fills 1s, 2s, and a single 2p orbital under the
	// two-per-orbital assignment rule.
	if len(asm.Clouds) != 3 {
		t.Fatalf("carbon has %d clouds, want 3", len(asm.Clouds))
	}
	wantCount := 100 // 2 electrons x 5000 x 0.01
	for _, c := range asm.Clouds {
		if c.Electrons != 2 {
			t.Errorf("cloud %s has %d electrons, want 2", c.Label, c.Electrons)
		}
		if c.Len() != wantCount {
			t.Errorf("cloud %s has %d points, want %d", c.Label, c.Len(), wantCount)
		}
		if len(c.Colors) != c.Len() {
			t.Errorf("cloud %s has %d colors for %d points", c.Label, len(c.Colors), c.Len())
		}
	}

	// 12 nucleons, each with a glow shell.
	if len(asm.Spheres) != 24 {
		t.Errorf("carbon has %d spheres, want 24", len(asm.Spheres))
	}
	if len(asm.Legend) != 3 {
		t.Errorf("legend has %d rows, want 3", len(asm.Legend))
	}
	if len(asm.Diagram) == 0 {
		t.Error("diagram missing")
	}
	if len(asm.Labels) != 1 || asm.Labels[0].Text != "C" {
		t.Errorf("labels = %v, want single C", asm.Labels)
	}
}

func TestAssembleBuildsOnlyOccupiedOrbitals(t *testing.T) {
	a := testAssembler(t)
	asm := a.AssembleAtom(7, testState())
	if asm == nil {
		t.Fatal("nitrogen build returned nil")
	}

	// 1s, 2s, and two 2p orbitals (2+1 electrons); the empty 2p box
	// must not produce a cloud.
	if len(asm.Clouds) != 4 {
		t.Fatalf("nitrogen has %d clouds, want 4", len(asm.Clouds))
	}
	for _, c := range asm.Clouds {
		if c.Electrons < 1 {
			t.Errorf("cloud %s (m=%d) has no electrons", c.Label, c.M)
		}
		if c.Len() == 0 {
			t.Errorf("cloud %s (m=%d) has no points", c.Label, c.M)
		}
	}
}

func TestAssembleUnknownElementSkips(t *testing.T) {
	a := testAssembler(t)
	first := a.AssembleAtom(1, testState())
	if first == nil {
		t.Fatal("hydrogen build returned nil")
	}

	if got := a.AssembleAtom(99, testState()); got != nil {
		t.Error("unknown Z should return nil")
	}
	if a.Current() != first {
		t.Error("skipped build must leave the current assembly untouched")
	}
	if first.Arena().Released() {
		t.Error("skipped build must not dispose the live scene")
	}
}

func TestAssembleUnknownMoleculeSkips(t *testing.T) {
	a := testAssembler(t)
	if got := a.AssembleMolecule("c60", testState()); got != nil {
		t.Error("unknown preset should return nil")
	}
	if a.Current() != nil {
		t.Error("no assembly should be live after a skipped first build")
	}
}

func TestRebuildDisposesPreviousScene(t *testing.T) {
	a := testAssembler(t)
	first := a.AssembleAtom(6, testState())
	second := a.AssembleAtom(8, testState())
	if second == nil {
		t.Fatal("oxygen build returned nil")
	}

	if !first.Arena().Released() {
		t.Error("previous arena still live after rebuild")
	}
	for i, c := range first.Clouds {
		if c.Len() != 0 || len(c.Colors) != 0 {
			t.Errorf("cloud %d of disposed scene still holds buffers", i)
		}
	}
	if second.Arena().Released() {
		t.Error("new arena must be live")
	}
	if a.Current() != second {
		t.Error("current assembly not updated")
	}
}

func TestAtomRebuildIsIdempotent(t *testing.T) {
	a := testAssembler(t)
	state := testState()

	first := a.AssembleAtom(26, state)
	tags := make([][4]int, len(first.Clouds))
	counts := make([]int, len(first.Clouds))
	for i, c := range first.Clouds {
		tags[i] = [4]int{c.N, c.L, c.M, c.Electrons}
		counts[i] = c.Len()
	}

	second := a.AssembleAtom(26, state)
	if len(second.Clouds) != len(first.Clouds) {
		t.Fatalf("cloud count changed across rebuild: %d vs %d", len(first.Clouds), len(second.Clouds))
	}
	for i, c := range second.Clouds {
		if tags[i] != [4]int{c.N, c.L, c.M, c.Electrons} {
			t.Errorf("cloud %d tags changed across rebuild", i)
		}
		if counts[i] != c.Len() {
			t.Errorf("cloud %d count changed across rebuild: %d vs %d", i, counts[i], c.Len())
		}
	}
}

func TestAssembleHydrogenMolecule(t *testing.T) {
	a := testAssembler(t)
	asm := a.AssembleMolecule("h2", testState())
	if asm == nil {
		t.Fatal("h2 build returned nil")
	}

	// Two single-proton nuclei, each with a glow shell.
	var solid int
	for _, s := range asm.Spheres {
		if s.Alpha == 1 {
			solid++
		}
	}
	if solid != 2 {
		t.Errorf("h2 has %d nucleons, want 2", solid)
	}

	// Order-1 covalent bond: one solid segment plus one glow segment.
	if len(asm.Cylinders) != 2 {
		t.Errorf("h2 has %d cylinders, want 2", len(asm.Cylinders))
	}

	var bondClouds, orbitalClouds int
	for _, c := range asm.Clouds {
		if c.Label == "bond" {
			bondClouds++
			if c.Len() == 0 {
				t.Error("bond cloud is empty for a non-degenerate bond")
			}
		} else {
			orbitalClouds++
		}
	}
	if bondClouds != 1 {
		t.Errorf("h2 has %d bond clouds, want 1", bondClouds)
	}
	if orbitalClouds != 2 {
		t.Errorf("h2 has %d orbital clouds, want 2", orbitalClouds)
	}
}

func TestAssembleMethane(t *testing.T) {
	a := testAssembler(t)
	asm := a.AssembleMolecule("ch4", testState())
	if asm == nil {
		t.Fatal("ch4 build returned nil")
	}

	var bondClouds, orbitalClouds int
	for _, c := range asm.Clouds {
		if c.Label == "bond" {
			bondClouds++
		} else {
			orbitalClouds++
		}
	}
	if bondClouds != 4 {
		t.Errorf("ch4 has %d bond clouds, want 4", bondClouds)
	}
	// Carbon contributes 3 occupied orbitals, each hydrogen 1.
	if orbitalClouds != 7 {
		t.Errorf("ch4 has %d orbital clouds, want 7", orbitalClouds)
	}

	// 12 carbon nucleons plus 4 single-proton nuclei.
	var solid int
	for _, s := range asm.Spheres {
		if s.Alpha == 1 {
			solid++
		}
	}
	if solid != 16 {
		t.Errorf("ch4 has %d nucleons, want 16", solid)
	}

	// 4 atom labels, the carbon label, and the molecule name.
	if len(asm.Labels) != 6 {
		t.Errorf("ch4 has %d labels, want 6", len(asm.Labels))
	}
}

func TestMoleculeCameraFramingIsDeterministic(t *testing.T) {
	a := testAssembler(t)
	state := testState()

	first := a.AssembleMolecule("h2o", state)
	second := a.AssembleMolecule("h2o", state)
	if first.CameraTarget != second.CameraTarget {
		t.Errorf("camera target varies: %v vs %v", first.CameraTarget, second.CameraTarget)
	}
	if first.CameraEye != second.CameraEye {
		t.Errorf("camera eye varies: %v vs %v", first.CameraEye, second.CameraEye)
	}
	if first.CameraEye == first.CameraTarget {
		t.Error("camera eye coincides with target")
	}
}

func TestGlowDisabled(t *testing.T) {
	a := testAssembler(t)
	state := testState()
	state.GlowEnabled = false

	asm := a.AssembleMolecule("h2", state)
	for i, s := range asm.Spheres {
		if s.Alpha < 1 {
			t.Errorf("sphere %d is a glow shell with glow disabled", i)
		}
	}
	for i, c := range asm.Cylinders {
		if c.Alpha < 1 {
			t.Errorf("cylinder %d is a glow segment with glow disabled", i)
		}
	}
}

func TestElementColorScheme(t *testing.T) {
	a := testAssembler(t)
	state := testState()
	state.ColorScheme = SchemeElement

	// Hydrogen's element color is near-white, so element-scheme tints
	// stay grey: equal channels.
	asm := a.AssembleAtom(1, state)
	c := asm.Clouds[0]
	for i := range c.Colors {
		col := c.Colors[i]
		if col.R != col.G || col.G != col.B {
			t.Fatalf("point %d color %v is not a hydrogen grey", i, col)
		}
	}
}

func TestPerOrbitalLegend(t *testing.T) {
	a := testAssembler(t)
	state := testState()
	state.ShowPerOrbitalClouds = true

	// Nitrogen: 1s2 2s2 2p3, and the p electrons spread over two
	// orbitals under the two-per-orbital rule.
	asm := a.AssembleAtom(7, state)
	if len(asm.Legend) != 4 {
		t.Fatalf("per-orbital legend has %d rows, want 4", len(asm.Legend))
	}
	if asm.Legend[2].Subshell != "2p" || asm.Legend[3].Subshell != "2p" {
		t.Error("expanded rows must keep the bare subshell label for highlighting")
	}
}
