package scene

import (
	"fmt"

	"github.com/Carmen-Shannon/atomvis-go/common"
	"github.com/Carmen-Shannon/atomvis-go/electron"
)

// LegendEntry describes one row of the subshell legend the UI layer
// renders beside the scene.
type LegendEntry struct {
	// Label is the subshell label, optionally suffixed with the
	// orbital's m value in per-orbital mode.
	Label string

	// Subshell is the bare subshell label used for highlight matching.
	Subshell string

	N, L      int
	Electrons int

	// Color is the representative swatch for the row.
	Color common.Color
}

// Swatch colors keyed by l, loosely following the common s/p/d/f
// textbook coding.
var subshellSwatches = [4]common.Color{
	{R: 0.35, G: 0.62, B: 0.95},
	{R: 0.95, G: 0.65, B: 0.25},
	{R: 0.45, G: 0.85, B: 0.45},
	{R: 0.85, G: 0.40, B: 0.85},
}

// BuildLegend converts an electron configuration into legend rows. In
// per-orbital mode every occupied orbital gets its own row; otherwise
// one row per subshell.
//
// Parameters:
//   - config: the occupied subshells in Aufbau order
//   - perOrbital: whether to expand rows per occupied orbital
//
// Returns:
//   - []LegendEntry: the legend rows in configuration order
func BuildLegend(config []electron.Subshell, perOrbital bool) []LegendEntry {
	var out []LegendEntry
	for _, sub := range config {
		if !perOrbital {
			out = append(out, LegendEntry{
				Label:     sub.Label,
				Subshell:  sub.Label,
				N:         sub.N,
				L:         sub.L,
				Electrons: sub.Electrons,
				Color:     subshellSwatches[sub.L],
			})
			continue
		}
		for _, orb := range electron.OrbitalFill(sub.L, sub.Electrons) {
			out = append(out, LegendEntry{
				Label:     fmt.Sprintf("%s (m=%+d)", sub.Label, orb.M),
				Subshell:  sub.Label,
				N:         sub.N,
				L:         sub.L,
				Electrons: orb.Electrons,
				Color:     subshellSwatches[sub.L],
			})
		}
	}
	return out
}
