package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/atomvis-go/scene"
)

var moleculeCmd = &cobra.Command{
	Use:   "molecule <id>",
	Short: "Visualize a molecule preset",
	Long: `Opens the viewer showing a molecule from the preset catalog: its
atoms' electron clouds, nuclei, and bond geometry. Use "atomvis
molecules" to list the available ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runMolecule,
}

func init() {
	moleculeCmd.Flags().StringSlice("presets", nil, "extra preset YAML files to load")
	moleculeCmd.Flags().Float64("density", 0, "cloud density factor (overrides config)")
	moleculeCmd.Flags().Bool("no-glow", false, "disable glow shells and bond halos")
	rootCmd.AddCommand(moleculeCmd)
}

func runMolecule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	presetFiles, _ := cmd.Flags().GetStringSlice("presets")
	catalog, err := buildCatalog(presetFiles)
	if err != nil {
		return err
	}

	id := args[0]
	if _, ok := catalog.Get(id); !ok {
		return fmt.Errorf("no molecule preset %q, try \"atomvis molecules\"", id)
	}

	state := cfg.State()
	state.Mode = scene.ModeMolecule
	state.SelectedMolecule = id

	if density, _ := cmd.Flags().GetFloat64("density"); density > 0 {
		state.CloudDensityFactor = density
	}
	if noGlow, _ := cmd.Flags().GetBool("no-glow"); noGlow {
		state.GlowEnabled = false
	}

	return runViewer(cfg, catalog, state)
}
