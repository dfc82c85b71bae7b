package cmd

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/atomvis-go/config"
	"github.com/Carmen-Shannon/atomvis-go/molecule"
	"github.com/Carmen-Shannon/atomvis-go/scene"
	"github.com/Carmen-Shannon/atomvis-go/viewer"
)

// buildCatalog creates the preset catalog and loads any extra preset
// files given on the command line.
func buildCatalog(presetFiles []string) (*molecule.Catalog, error) {
	catalog := molecule.NewCatalog()
	for _, path := range presetFiles {
		n, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[atomvis] loaded %d presets from %s", n, path)
	}
	return catalog, nil
}

// runViewer opens the window and blocks until it closes.
func runViewer(cfg *config.Config, catalog *molecule.Catalog, state scene.VisualizationState) error {
	assembler := scene.NewAssembler(catalog)
	v := viewer.New(assembler, catalog, state,
		viewer.WithTitle(fmt.Sprintf("atomvis: %s", titleFor(catalog, state))),
		viewer.WithSize(cfg.WindowWidth, cfg.WindowHeight),
	)
	return v.Run()
}

func titleFor(catalog *molecule.Catalog, state scene.VisualizationState) string {
	if state.Mode == scene.ModeMolecule {
		if p, ok := catalog.Get(state.SelectedMolecule); ok {
			return p.Name
		}
		return state.SelectedMolecule
	}
	return fmt.Sprintf("Z=%d", state.SelectedElement)
}
