package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/atomvis-go/element"
	"github.com/Carmen-Shannon/atomvis-go/scene"
)

var atomCmd = &cobra.Command{
	Use:   "atom",
	Short: "Visualize a single atom's electron clouds",
	Long: `Opens the viewer showing the orbital probability clouds of one atom.
The left and right arrow keys step through the periodic table without
restarting.`,
	RunE: runAtom,
}

func init() {
	atomCmd.Flags().Int("z", 1, fmt.Sprintf("atomic number (1-%d)", element.MaxAtomicNumber))
	atomCmd.Flags().Float64("density", 0, "cloud density factor (overrides config)")
	atomCmd.Flags().Bool("no-glow", false, "disable nucleon glow shells")
	atomCmd.Flags().String("highlight", scene.HighlightAll, `subshell to highlight, e.g. "2p"`)
	atomCmd.Flags().String("scheme", "", "color scheme: heatmap or element (overrides config)")
	rootCmd.AddCommand(atomCmd)
}

func runAtom(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	z, _ := cmd.Flags().GetInt("z")
	if _, ok := element.Lookup(z); !ok {
		return fmt.Errorf("atomic number %d outside the supported range 1-%d", z, element.MaxAtomicNumber)
	}

	state := cfg.State()
	state.Mode = scene.ModeAtom
	state.SelectedElement = z

	if density, _ := cmd.Flags().GetFloat64("density"); density > 0 {
		state.CloudDensityFactor = density
	}
	if noGlow, _ := cmd.Flags().GetBool("no-glow"); noGlow {
		state.GlowEnabled = false
	}
	if highlight, _ := cmd.Flags().GetString("highlight"); highlight != "" {
		state.HighlightedSubshell = highlight
	}
	if schemeFlag, _ := cmd.Flags().GetString("scheme"); schemeFlag != "" {
		scheme := scene.ColorScheme(schemeFlag)
		if scheme != scene.SchemeHeatmap && scheme != scene.SchemeElement {
			return fmt.Errorf("unknown color scheme %q", schemeFlag)
		}
		state.ColorScheme = scheme
	}

	catalog, err := buildCatalog(nil)
	if err != nil {
		return err
	}
	return runViewer(cfg, catalog, state)
}
