package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lnsy/pochade/internal/scaffold"
	"github.com/lnsy/pochade/internal/ui"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available project variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := scaffold.NewScaffoldManager().Presets()

		var rows [][]string
		for i, name := range manager.Available() {
			preset, _ := manager.Get(name)
			def := ""
			if i == 0 {
				def = "✓"
			}
			rows = append(rows, []string{name, preset.Description(), def})
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"VARIANT", "DESCRIPTION", "DEFAULT"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
