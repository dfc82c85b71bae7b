package viewer

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/atomvis-go/element"
	"github.com/Carmen-Shannon/atomvis-go/molecule"
	"github.com/Carmen-Shannon/atomvis-go/scene"
	"github.com/Carmen-Shannon/atomvis-go/viewer/camera"
	"github.com/Carmen-Shannon/atomvis-go/viewer/window"
)

// Viewer owns the window, camera, renderer, and the frame loop, and
// routes input into visualization state changes.
//
// Controls: middle-drag orbits, scroll zooms, left/right switch the
// element or preset, H cycles the highlighted subshell, G toggles
// glow, L toggles labels, P toggles the per-orbital legend, M switches
// between atom and molecule mode, escape quits.
type Viewer interface {
	// Run builds the initial scene and blocks in the frame loop until
	// the window closes.
	//
	// Returns:
	//   - error: a window teardown failure, or nil
	Run() error
}

type viewer struct {
	win       window.Window
	cam       camera.OrbitCamera
	renderer  Renderer
	assembler scene.Assembler
	catalog   *molecule.Catalog

	state scene.VisualizationState
	stats *frameStats
	start time.Time

	// highlightCycle is rebuilt from the legend after every rebuild:
	// "all" followed by each distinct subshell label.
	highlightCycle []string
	highlightIdx   int

	moleculeIDs []string
	moleculeIdx int

	title         string
	width, height int
	statsInterval time.Duration
}

var _ Viewer = &viewer{}

// New creates a viewer: a window, a WebGPU renderer bound to its
// surface, and an orbit camera. Both collaborators are required and
// New panics if either is nil.
//
// Parameters:
//   - assembler: the scene assembler (must not be nil)
//   - catalog: the molecule preset catalog (must not be nil)
//   - state: the initial visualization state
//   - options: functional options to further configure the viewer
//
// Returns:
//   - Viewer: the newly created viewer
func New(assembler scene.Assembler, catalog *molecule.Catalog, state scene.VisualizationState, options ...ViewerBuilderOption) Viewer {
	if assembler == nil {
		panic("viewer: New requires a non-nil Assembler")
	}
	if catalog == nil {
		panic("viewer: New requires a non-nil catalog")
	}

	v := &viewer{
		assembler:     assembler,
		catalog:       catalog,
		state:         state,
		title:         "atomvis",
		width:         1280,
		height:        800,
		statsInterval: 5 * time.Second,
	}
	for _, option := range options {
		option(v)
	}

	for _, p := range catalog.All() {
		v.moleculeIDs = append(v.moleculeIDs, p.ID)
		if p.ID == state.SelectedMolecule {
			v.moleculeIdx = len(v.moleculeIDs) - 1
		}
	}

	v.win = window.NewWindow(
		window.WithTitle(v.title),
		window.WithSize(v.width, v.height),
	)
	v.renderer = NewRenderer(v.win.SurfaceDescriptor(), v.win.Width(), v.win.Height())
	v.cam = camera.NewOrbitCamera()
	v.stats = newFrameStats(v.statsInterval)

	return v
}

func (v *viewer) Run() error {
	v.rebuild()
	v.start = time.Now()

	v.win.SetResizeCallback(func(width, height int) {
		v.renderer.Resize(width, height)
	})
	v.win.SetScrollCallback(func(delta float32) {
		v.cam.Zoom(delta)
	})
	v.win.SetDragCallback(func(dx, dy float32) {
		v.cam.Drag(dx, dy)
	})
	v.win.SetKeyDownCallback(v.handleKey)
	v.win.SetRenderCallback(v.frame)

	v.win.Run()

	v.renderer.Release()
	v.assembler.Dispose()
	return v.win.Close()
}

// frame is the per-tick callback: animate, render, count.
func (v *viewer) frame() {
	asm := v.assembler.Current()
	elapsed := time.Since(v.start).Seconds()
	scene.Animate(asm, elapsed, v.state)

	if err := v.renderer.RenderFrame(asm, v.cam); err != nil {
		log.Printf("[viewer] dropped frame: %v", err)
		return
	}

	points := 0
	if asm != nil {
		for _, c := range asm.Clouds {
			points += c.Len()
		}
	}
	v.stats.Tick(points)
}

// rebuild runs the assembler for the current state and reframes the
// camera and highlight cycle from the result.
func (v *viewer) rebuild() {
	var asm *scene.Assembly
	switch v.state.Mode {
	case scene.ModeMolecule:
		asm = v.assembler.AssembleMolecule(v.state.SelectedMolecule, v.state)
	default:
		asm = v.assembler.AssembleAtom(v.state.SelectedElement, v.state)
	}
	if asm == nil {
		return
	}

	v.cam.Frame(asm.CameraEye, asm.CameraTarget)

	v.highlightCycle = v.highlightCycle[:0]
	v.highlightCycle = append(v.highlightCycle, scene.HighlightAll)
	seen := make(map[string]bool)
	for _, entry := range asm.Legend {
		if !seen[entry.Subshell] {
			seen[entry.Subshell] = true
			v.highlightCycle = append(v.highlightCycle, entry.Subshell)
		}
	}
	v.highlightIdx = 0
	v.state.HighlightedSubshell = scene.HighlightAll

	if asm.ConfigString != "" {
		log.Printf("[viewer] %s: %s", asm.Title, asm.ConfigString)
	} else {
		log.Printf("[viewer] %s", asm.Title)
	}
}

func (v *viewer) handleKey(keyCode uint32) {
	switch keyCode {
	case window.KeyRight:
		v.step(1)
	case window.KeyLeft:
		v.step(-1)
	case window.KeyM:
		if v.state.Mode == scene.ModeAtom {
			v.state.Mode = scene.ModeMolecule
			if v.state.SelectedMolecule == "" && len(v.moleculeIDs) > 0 {
				v.state.SelectedMolecule = v.moleculeIDs[0]
			}
		} else {
			v.state.Mode = scene.ModeAtom
		}
		v.rebuild()
	case window.KeyG:
		v.state.GlowEnabled = !v.state.GlowEnabled
		v.rebuild()
	case window.KeyL:
		v.state.ShowLabels = !v.state.ShowLabels
		v.rebuild()
	case window.KeyP:
		v.state.ShowPerOrbitalClouds = !v.state.ShowPerOrbitalClouds
		v.rebuild()
	case window.KeyH:
		// Highlight changes are visual-only: the animator picks the
		// new label up on the next frame, no rebuild needed.
		if len(v.highlightCycle) == 0 {
			return
		}
		v.highlightIdx = (v.highlightIdx + 1) % len(v.highlightCycle)
		v.state.HighlightedSubshell = v.highlightCycle[v.highlightIdx]
		log.Printf("[viewer] highlighting %s", v.state.HighlightedSubshell)
	}
}

// step advances to the neighbouring element or preset and rebuilds.
func (v *viewer) step(dir int) {
	switch v.state.Mode {
	case scene.ModeMolecule:
		if len(v.moleculeIDs) == 0 {
			return
		}
		v.moleculeIdx = (v.moleculeIdx + dir + len(v.moleculeIDs)) % len(v.moleculeIDs)
		v.state.SelectedMolecule = v.moleculeIDs[v.moleculeIdx]
	default:
		z := v.state.SelectedElement + dir
		if z < 1 {
			z = element.MaxAtomicNumber
		}
		if z > element.MaxAtomicNumber {
			z = 1
		}
		v.state.SelectedElement = z
	}
	v.rebuild()
}
