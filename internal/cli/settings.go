// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"sort"

	"github.com/spf13/cobra"
)

// addSettingsCommands adds label customization commands.
func addSettingsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage UI label settings",
		Long:  "Store free-form label customizations, e.g. the journal title shown on reports.",
	}

	cmd.AddCommand(newSettingsSetCmd(app))
	cmd.AddCommand(newSettingsListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a label setting",
		Example: `  journal settings set title "My Trading Journal"
  journal settings set currency USD`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			settings := app.Journal.Settings()
			settings[args[0]] = args[1]
			if err := app.Journal.SaveSettings(settings); err != nil {
				return reportMutation(output, err)
			}
			output.Success("Setting %q saved", args[0])
			return nil
		},
	}
}

func newSettingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List label settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			settings := app.Journal.Settings()
			if output.IsJSON() {
				return output.JSON(settings)
			}

			if len(settings) == 0 {
				output.Info("No settings stored.")
				return nil
			}

			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			table := NewTable(output, "Key", "Value")
			for _, k := range keys {
				table.AddRow(k, settings[k])
			}
			table.Render()
			return nil
		},
	}
}
