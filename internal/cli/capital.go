// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	apperrors "trade-journal/internal/errors"
)

// addCapitalCommands adds capital tracking commands.
func addCapitalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "capital",
		Short: "Track trading capital",
		Long:  "Set the initial capital and see it adjusted by the journal's total profit/loss.",
	}

	cmd.AddCommand(newCapitalSetCmd(app))
	cmd.AddCommand(newCapitalShowCmd(app))
	cmd.AddCommand(newCapitalLossCmd(app))

	rootCmd.AddCommand(cmd)
}

func newCapitalSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the initial capital",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return apperrors.NewValidationError("capital", args[0], "must be a positive number")
			}

			if err := app.Journal.SetCapital(amount); err != nil {
				return reportMutation(output, err)
			}
			output.Success("Initial capital set to %.2f", amount)
			return nil
		},
	}
}

func newCapitalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show initial and current capital",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			initial, ok, err := app.Journal.Capital()
			if err != nil {
				return err
			}
			if !ok {
				output.Info("No capital set. Use 'journal capital set <amount>'.")
				return nil
			}

			current, _, err := app.Journal.CurrentCapital()
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]float64{
					"initial": initial,
					"current": current,
				})
			}

			output.Printf("Initial capital:  %.2f\n", initial)
			change := current - initial
			output.Printf("Current capital:  %s\n",
				output.ColoredString(output.GainColor(change), strconv.FormatFloat(current, 'f', 2, 64)))
			return nil
		},
	}
}

func newCapitalLossCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "loss <amount>",
		Short: "Report a loss against the stored capital",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || amount <= 0 {
				return apperrors.NewValidationError("loss", args[0], "must be a positive number")
			}

			capital, ok, err := app.Journal.Capital()
			if err != nil {
				return err
			}
			if !ok {
				return apperrors.ErrCapitalNotSet
			}

			output.Warning("Loss reported: %.2f against capital: %.2f", amount, capital)
			app.Logger.Info().Float64("loss", amount).Float64("capital", capital).Msg("Loss reported")
			return nil
		},
	}
}
