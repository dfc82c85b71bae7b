// Package cmd wires the atomvis command-line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/atomvis-go/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "atomvis",
	Short: "Interactive electron cloud visualization for atoms and molecules",
	Long: `Atomvis renders quantum orbital probability clouds for the first 36
elements and a catalog of simple molecules. Orbitals are shaped by
hydrogen-like radial and angular distributions and drawn as animated
point clouds in a WebGPU window.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}

// loadConfig reads the config file named by the persistent flag and
// validates it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}
