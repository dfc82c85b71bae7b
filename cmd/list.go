package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/atomvis-go/electron"
	"github.com/Carmen-Shannon/atomvis-go/element"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the supported elements and their configurations",
	RunE:  runElements,
}

var moleculesCmd = &cobra.Command{
	Use:   "molecules",
	Short: "List the molecule presets",
	RunE:  runMolecules,
}

func init() {
	moleculesCmd.Flags().StringSlice("presets", nil, "extra preset YAML files to load")
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(moleculesCmd)
}

func runElements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tNAME\tCONFIGURATION")
	for _, el := range element.All() {
		config := electron.Format(electron.Configure(el.AtomicNumber))
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", el.AtomicNumber, el.Symbol, el.Name, config)
	}
	return w.Flush()
}

func runMolecules(cmd *cobra.Command, args []string) error {
	presetFiles, _ := cmd.Flags().GetStringSlice("presets")
	catalog, err := buildCatalog(presetFiles)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tATOMS\tBONDS\tDESCRIPTION")
	for _, p := range catalog.All() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, len(p.Atoms), len(p.Bonds), p.Description)
	}
	return w.Flush()
}
