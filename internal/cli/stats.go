// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"trade-journal/internal/derive"
)

// addStatsCommands adds the dashboard statistics command.
func addStatsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Long:  "Show win/loss statistics and the cumulative per-week performance curve.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			j := app.Journal.Journal()
			stats := app.Journal.Stats()
			series := derive.CumulativeSeries(j)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stats":       stats,
					"performance": series,
				})
			}

			output.Bold("Dashboard")
			output.Printf("  Total Trades:     %d\n", stats.TotalTrades)
			output.Printf("  Wins:             %d\n", stats.WinTrades)
			output.Printf("  Losses:           %d\n", stats.LoseTrades)
			output.Printf("  Breakeven:        %d\n", stats.BreakevenTrades)
			output.Printf("  Win Rate:         %.2f%%\n", stats.WinRate)
			output.Printf("  Avg Risk/Reward:  %s\n", FormatRiskReward(stats.RiskRewardAverage))
			output.Printf("  Total P/L:        %s\n", output.FormatGain(stats.TotalProfitLossPercent))
			output.Println()

			if len(series) == 0 {
				return nil
			}

			output.Bold("Performance")
			table := NewTable(output, "Week", "Trades", "Gain", "Cumulative")
			for i, point := range series {
				table.AddRow(
					point.WeekName,
					fmt.Sprintf("%d", len(j.Weeks[i].Trades)),
					output.FormatGain(point.Gain),
					output.FormatGain(point.Cumulative),
				)
			}
			table.Render()
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
