package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/atomvis-go/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or initialize the atomvis config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("config file:      %s\n", cfgFile)
	fmt.Printf("density_factor:   %g\n", cfg.DensityFactor)
	fmt.Printf("nucleus_scale:    %g\n", cfg.NucleusScale)
	fmt.Printf("animation_speed:  %g\n", cfg.AnimationSpeed)
	fmt.Printf("color_scheme:     %s\n", cfg.ColorScheme)
	fmt.Printf("show_labels:      %t\n", cfg.ShowLabels)
	fmt.Printf("glow:             %t\n", cfg.Glow)
	fmt.Printf("window:           %dx%d\n", cfg.WindowWidth, cfg.WindowHeight)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil {
		return fmt.Errorf("config file %s already exists", cfgFile)
	}
	if err := config.DefaultConfig().Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfgFile)
	return nil
}
