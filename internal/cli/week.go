// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trade-journal/internal/journal"
)

// addWeekCommands adds week management commands.
func addWeekCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Manage journal weeks",
		Long:  "Add, rename, delete and select the weeks that group your trades.",
	}

	cmd.AddCommand(newWeekAddCmd(app))
	cmd.AddCommand(newWeekListCmd(app))
	cmd.AddCommand(newWeekRenameCmd(app))
	cmd.AddCommand(newWeekDeleteCmd(app))
	cmd.AddCommand(newWeekSelectCmd(app))

	rootCmd.AddCommand(cmd)
}

func newWeekAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new week",
		Long:  "Add a new empty week and make it the current selection.",
		Example: `  journal week add "Week 14"
  journal week add "Feb 2026 - 1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			week, err := app.Journal.AddWeek(args[0])
			if err := reportMutation(output, err); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(week)
			}
			output.Success("Week %q added (%s)", week.Name, week.ID)
			return nil
		},
	}
}

func newWeekListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			j := app.Journal.Journal()

			if output.IsJSON() {
				return output.JSON(j.Weeks)
			}

			if len(j.Weeks) == 0 {
				output.Info("No weeks in the journal.")
				return nil
			}

			current := app.Journal.CurrentWeekID()
			table := NewTable(output, "", "ID", "Name", "Trades", "Gain")
			for _, w := range j.Weeks {
				marker := ""
				if w.ID == current {
					marker = "*"
				}
				table.AddRow(
					marker,
					w.ID,
					w.Name,
					fmt.Sprintf("%d", len(w.Trades)),
					output.FormatGain(w.PercentGain),
				)
			}
			table.Render()
			output.Println()
			output.Printf("Total gain: %s\n", output.FormatGain(j.TotalPercentGain))
			return nil
		},
	}
}

func newWeekRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <week-id> <name>",
		Short: "Rename a week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			name := args[1]
			err := app.Journal.UpdateWeek(args[0], journal.WeekPatch{Name: &name})
			if err := reportMutation(output, err); err != nil {
				return err
			}
			output.Success("Week renamed to %q", name)
			return nil
		},
	}
}

func newWeekDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <week-id>",
		Short: "Delete a week and all its trades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			err := app.Journal.DeleteWeek(args[0])
			if err := reportMutation(output, err); err != nil {
				return err
			}
			output.Success("Week deleted")
			return nil
		},
	}
}

func newWeekSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <week-id>",
		Short: "Make a week the current selection",
		Long:  "Trade commands default to the selected week when --week is omitted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if err := app.Journal.SelectWeek(args[0]); err != nil {
				return err
			}
			output.Success("Week selected")
			return nil
		},
	}
}
