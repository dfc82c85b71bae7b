package scene

import (
	"log"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/atomvis-go/common"
	"github.com/Carmen-Shannon/atomvis-go/compose"
	"github.com/Carmen-Shannon/atomvis-go/electron"
	"github.com/Carmen-Shannon/atomvis-go/element"
	"github.com/Carmen-Shannon/atomvis-go/molecule"
	"github.com/Carmen-Shannon/atomvis-go/orbital"
)

const (
	// samplesPerElectron sets the reference point count per electron in
	// atom clouds. Visual tuning, not physics.
	samplesPerElectron = 5000

	// bondSamplesPerOrder sets the reference point count per bond
	// order in bond clouds.
	bondSamplesPerOrder = 2000

	// bondCloudLabel tags bond clouds in place of a subshell label.
	bondCloudLabel = "bond"

	glowAlpha     = 0.14
	bondGlowAlpha = 0.10

	// Camera framing factors. Atom mode frames the outermost shell,
	// molecule mode frames the centroid and max atom distance.
	atomEyeDistance     = 2.6
	atomEyeLift         = 0.35
	moleculeEyeDistance = 2.2
	moleculeEyeLift     = 0.45
	framingPadding      = 6.0
)

// Assembly is one live scene: every renderable node built by a single
// rebuild, plus the metadata the UI layer needs. All resources are
// owned by the assembly's arena and die with it.
type Assembly struct {
	Mode  Mode
	Title string

	// ConfigString is the formatted electron configuration, e.g.
	// "1s² 2s² 2p²". Empty in molecule mode.
	ConfigString string

	Clouds    []*OrbitalCloud
	Spheres   []Sphere
	Cylinders []Cylinder
	Labels    []Label

	Legend  []LegendEntry
	Diagram []electron.DiagramRow

	CameraTarget mgl32.Vec3
	CameraEye    mgl32.Vec3

	arena *Arena
}

// Arena returns the arena owning the assembly's resources.
//
// Returns:
//   - *Arena: the owning arena
func (a *Assembly) Arena() *Arena {
	return a.arena
}

// Assembler builds atom and molecule assemblies. At most one assembly
// is live at a time; every rebuild fully disposes the previous one
// before constructing the next.
type Assembler interface {
	// AssembleAtom rebuilds the scene for a single atom. An atomic
	// number outside the catalog is skipped: the current assembly is
	// left untouched and nil is returned.
	AssembleAtom(z int, state VisualizationState) *Assembly

	// AssembleMolecule rebuilds the scene for a molecule preset. An
	// unknown preset id is skipped the same way.
	AssembleMolecule(id string, state VisualizationState) *Assembly

	// Current returns the live assembly, nil before the first build.
	Current() *Assembly

	// Dispose releases the live assembly.
	Dispose()
}

type assembler struct {
	mu      *sync.Mutex
	catalog *molecule.Catalog
	palette compose.Palette

	// newSampler builds a per-task sampler so parallel sampling jobs
	// never share a random stream.
	newSampler func() orbital.Sampler
	newSource  func() orbital.Source

	pool    worker.DynamicWorkerPool
	workers int

	current *Assembly
}

var _ Assembler = &assembler{}

// NewAssembler creates an Assembler backed by the given preset catalog.
// The catalog is required and NewAssembler panics if it is nil.
//
// Parameters:
//   - catalog: the molecule preset catalog (must not be nil)
//   - options: functional options to further configure the assembler
//
// Returns:
//   - Assembler: the newly created assembler
func NewAssembler(catalog *molecule.Catalog, options ...AssemblerBuilderOption) Assembler {
	if catalog == nil {
		panic("scene: NewAssembler requires a non-nil catalog")
	}

	a := &assembler{
		mu:         &sync.Mutex{},
		catalog:    catalog,
		palette:    compose.DefaultPalette,
		newSampler: func() orbital.Sampler { return orbital.NewSampler() },
		newSource:  orbital.NewSource,
		workers:    max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(a)
	}

	// Queue size of 64 covers the orbital count of any Z ≤ 36 atom or
	// builtin molecule with headroom.
	a.pool = worker.NewDynamicWorkerPool(a.workers, 64, 1*time.Second)

	return a
}

// cloudJob is one parallel sampling unit: a single (n, l, m) orbital or
// one bond cloud.
type cloudJob struct {
	n, l, m   int
	electrons int
	label     string
	count     int
	offset    mgl32.Vec3
	tint      common.Color
	scheme    ColorScheme

	// bond clouds sample along an axis instead of around a nucleus
	bond  bool
	bondA mgl32.Vec3
	bondB mgl32.Vec3
}

func (a *assembler) AssembleAtom(z int, state VisualizationState) *Assembly {
	a.mu.Lock()
	defer a.mu.Unlock()

	el, ok := element.Lookup(z)
	if !ok {
		log.Printf("[assembler] skipping build: no element with atomic number %d", z)
		return nil
	}

	a.disposeLocked()

	config := electron.Configure(z)
	jobs := make([]cloudJob, 0, len(config)*3)
	maxN := 1
	for _, sub := range config {
		if sub.N > maxN {
			maxN = sub.N
		}
		for _, orb := range electron.OrbitalFill(sub.L, sub.Electrons) {
			jobs = append(jobs, cloudJob{
				n:         sub.N,
				l:         sub.L,
				m:         orb.M,
				electrons: orb.Electrons,
				label:     sub.Label,
				count:     sampleCount(orb.Electrons, samplesPerElectron, state.CloudDensityFactor),
				tint:      el.Color,
				scheme:    state.ColorScheme,
			})
		}
	}

	asm := &Assembly{
		Mode:         ModeAtom,
		Title:        el.Name,
		ConfigString: electron.Format(config),
		Legend:       BuildLegend(config, state.ShowPerOrbitalClouds),
		Diagram:      electron.Diagram(z),
		arena:        NewArena(),
	}

	asm.Clouds = a.buildClouds(asm.arena, jobs)
	a.placeNucleus(asm, mgl32.Vec3{}, el, state)

	extent := float32(orbital.RadialScale(maxN))
	asm.CameraTarget = mgl32.Vec3{}
	asm.CameraEye = mgl32.Vec3{
		0,
		extent * atomEyeLift,
		extent*atomEyeDistance + framingPadding,
	}

	if state.ShowLabels {
		asm.Labels = append(asm.Labels, Label{
			Position: mgl32.Vec3{0, extent * 1.15, 0},
			Text:     el.Symbol,
		})
	}

	a.current = asm
	log.Printf("[assembler] built atom scene for %s: %d clouds, %d spheres", el.Symbol, len(asm.Clouds), len(asm.Spheres))
	return asm
}

func (a *assembler) AssembleMolecule(id string, state VisualizationState) *Assembly {
	a.mu.Lock()
	defer a.mu.Unlock()

	preset, ok := a.catalog.Get(id)
	if !ok {
		log.Printf("[assembler] skipping build: no molecule preset %q", id)
		return nil
	}

	a.disposeLocked()

	asm := &Assembly{
		Mode:  ModeMolecule,
		Title: preset.Name,
		arena: NewArena(),
	}

	var jobs []cloudJob
	for _, atom := range preset.Atoms {
		el, ok := element.Lookup(atom.Z)
		if !ok {
			// Validated presets cannot reach this, but a catalog is
			// mutable at runtime.
			log.Printf("[assembler] skipping atom with unknown atomic number %d", atom.Z)
			continue
		}
		for _, sub := range electron.Configure(atom.Z) {
			for _, orb := range electron.OrbitalFill(sub.L, sub.Electrons) {
				jobs = append(jobs, cloudJob{
					n:         sub.N,
					l:         sub.L,
					m:         orb.M,
					electrons: orb.Electrons,
					label:     sub.Label,
					count:     sampleCount(orb.Electrons, samplesPerElectron, state.CloudDensityFactor),
					offset:    atom.Position,
					tint:      el.Color,
					scheme:    state.ColorScheme,
				})
			}
		}
		a.placeNucleus(asm, atom.Position, el, state)
		if state.ShowLabels {
			asm.Labels = append(asm.Labels, Label{
				Position: atom.Position.Add(mgl32.Vec3{0, 2.2, 0}),
				Text:     el.Symbol,
			})
		}
	}

	for _, bond := range preset.Bonds {
		start := preset.Atoms[bond.A].Position
		end := preset.Atoms[bond.B].Position
		for _, seg := range compose.ComposeBond(start, end, bond.Order, bond.Type) {
			alpha := float32(1.0)
			if seg.Glow {
				if !state.GlowEnabled {
					continue
				}
				alpha = bondGlowAlpha
			}
			asm.Cylinders = append(asm.Cylinders, Cylinder{
				Start:  seg.Start,
				End:    seg.End,
				Radius: seg.Radius,
				Color:  seg.Color,
				Alpha:  alpha,
			})
		}
		jobs = append(jobs, cloudJob{
			label:  bondCloudLabel,
			count:  sampleCount(bond.Order, bondSamplesPerOrder, state.CloudDensityFactor),
			tint:   compose.BondColor(bond.Type),
			scheme: state.ColorScheme,
			bond:   true,
			bondA:  start,
			bondB:  end,
		})
	}

	asm.Clouds = a.buildClouds(asm.arena, jobs)

	centroid := preset.Centroid()
	extent := preset.MaxExtent()
	asm.CameraTarget = centroid
	asm.CameraEye = centroid.Add(mgl32.Vec3{
		0,
		extent * moleculeEyeLift,
		extent*moleculeEyeDistance + framingPadding,
	})

	if state.ShowLabels {
		asm.Labels = append(asm.Labels, Label{
			Position: centroid.Add(mgl32.Vec3{0, extent + 3.5, 0}),
			Text:     preset.Name,
		})
	}

	a.current = asm
	log.Printf("[assembler] built molecule scene for %s: %d clouds, %d spheres, %d cylinders",
		preset.Name, len(asm.Clouds), len(asm.Spheres), len(asm.Cylinders))
	return asm
}

func (a *assembler) Current() *Assembly {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *assembler) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disposeLocked()
}

// disposeLocked releases the live assembly before a rebuild starts so
// peak memory stays bounded to one scene plus the build in progress.
func (a *assembler) disposeLocked() {
	if a.current == nil {
		return
	}
	a.current.arena.Release()
	a.current = nil
}

// buildClouds fans the sampling jobs out on the worker pool and blocks
// until every cloud is filled. Each job owns its slot in the result
// slice and its own sampler, so no synchronization is needed beyond
// the barrier. Rebuilds stay synchronous: the caller gets a complete
// assembly or none.
func (a *assembler) buildClouds(arena *Arena, jobs []cloudJob) []*OrbitalCloud {
	clouds := make([]*OrbitalCloud, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		slot := i
		j := job
		a.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				clouds[slot] = a.sampleCloud(j)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for _, c := range clouds {
		arena.Track(c)
	}
	return clouds
}

// sampleCloud runs one job to completion on the calling goroutine.
func (a *assembler) sampleCloud(j cloudJob) *OrbitalCloud {
	var samples []orbital.Sample
	center := j.offset
	if j.bond {
		samples = compose.BuildBondCloud(j.bondA, j.bondB, j.count, a.newSource())
		center = j.bondA.Add(j.bondB).Mul(0.5)
	} else {
		samples = a.newSampler().SampleOrbital(j.n, j.l, j.m, j.count)
	}

	points := make([]mgl32.Vec3, len(samples))
	colors := make([]common.Color, len(samples))
	for i, s := range samples {
		points[i] = s.Position.Add(j.offset)
		colors[i] = pointColor(j.scheme, j.tint, s.Density)
	}
	return newCloud(j.n, j.l, j.m, j.electrons, j.label, center, points, colors)
}

// placeNucleus composes the nucleon cluster for one atom and appends
// its spheres at the given center.
func (a *assembler) placeNucleus(asm *Assembly, center mgl32.Vec3, el element.Element, state VisualizationState) {
	cluster := compose.ComposeNucleus(el.AtomicNumber, el.NeutronCount, state.NucleusScaleFactor, state.GlowEnabled, a.palette, a.newSource())
	for _, n := range cluster.Nucleons {
		pos := center.Add(n.Position)
		asm.Spheres = append(asm.Spheres, Sphere{
			Center: pos,
			Radius: cluster.ParticleRadius,
			Color:  n.Color,
			Alpha:  1,
		})
		if cluster.GlowRadius > 0 {
			asm.Spheres = append(asm.Spheres, Sphere{
				Center: pos,
				Radius: cluster.GlowRadius,
				Color:  n.Color,
				Alpha:  glowAlpha,
			})
		}
	}
}

// sampleCount applies the density factor and rounds to nearest.
func sampleCount(units, perUnit int, densityFactor float64) int {
	n := int(math.Round(float64(units*perUnit) * densityFactor))
	if n < 0 {
		return 0
	}
	return n
}

// pointColor tints one sample per the active color scheme.
func pointColor(scheme ColorScheme, tint common.Color, density float64) common.Color {
	if scheme == SchemeElement {
		f := float32(0.35 + 0.65*common.Clamp(density, 0, 1))
		return common.Color{R: tint.R * f, G: tint.G * f, B: tint.B * f}
	}
	return orbital.DensityToColor(density)
}
