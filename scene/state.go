// Package scene assembles atom and molecule visualizations into a
// renderable set of point clouds, spheres, cylinders, and labels, and
// animates the live assembly each frame.
package scene

// Mode selects what the current assembly shows.
type Mode string

const (
	ModeAtom     Mode = "atom"
	ModeMolecule Mode = "molecule"
)

// ColorScheme selects how cloud points are tinted.
type ColorScheme string

const (
	// SchemeHeatmap maps each sample's density through the heatmap ramp.
	SchemeHeatmap ColorScheme = "heatmap"

	// SchemeElement tints every point with the owning element's color,
	// scaled by sample density.
	SchemeElement ColorScheme = "element"
)

// HighlightAll marks every subshell as highlighted.
const HighlightAll = "all"

// VisualizationState carries every user-tunable display parameter. It
// is owned and mutated by the orchestration layer only; the assembler
// and animator read it and never write it. Any mutation is followed by
// either a full rebuild or a cheap visual-only update.
type VisualizationState struct {
	// Mode is the current assembly kind.
	Mode Mode

	// SelectedElement is the atomic number shown in atom mode.
	SelectedElement int

	// SelectedMolecule is the preset id shown in molecule mode.
	SelectedMolecule string

	// CloudDensityFactor scales every cloud's sample count. 1.0 is the
	// reference density.
	CloudDensityFactor float64

	// NucleusScaleFactor scales nucleon particle radii and spacing.
	NucleusScaleFactor float64

	// ShowLabels toggles text label nodes.
	ShowLabels bool

	// GlowEnabled toggles the translucent glow shells around nucleons
	// and bonds.
	GlowEnabled bool

	// ShowPerOrbitalClouds expands the legend to one row per occupied
	// orbital instead of one row per subshell.
	ShowPerOrbitalClouds bool

	// HighlightedSubshell is a subshell label such as "2p", or
	// HighlightAll to brighten every cloud.
	HighlightedSubshell string

	// ColorScheme selects the cloud tinting strategy.
	ColorScheme ColorScheme

	// AnimationSpeedFactor scales the breathing and jitter rates. 1.0
	// is the reference speed.
	AnimationSpeedFactor float64
}

// DefaultState returns the state a fresh viewer starts with: hydrogen
// in atom mode, reference density and speed, everything visible.
//
// Returns:
//   - VisualizationState: the default state
func DefaultState() VisualizationState {
	return VisualizationState{
		Mode:                 ModeAtom,
		SelectedElement:      1,
		CloudDensityFactor:   1.0,
		NucleusScaleFactor:   1.0,
		ShowLabels:           true,
		GlowEnabled:          true,
		ShowPerOrbitalClouds: false,
		HighlightedSubshell:  HighlightAll,
		ColorScheme:          SchemeHeatmap,
		AnimationSpeedFactor: 1.0,
	}
}
