// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"trade-journal/internal/export"
)

// addExportCommands adds CSV and report export commands.
func addExportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal",
		Long:  "Export the journal as CSV rows or as a rendered report document.",
	}

	cmd.AddCommand(newExportCSVCmd(app))
	cmd.AddCommand(newExportReportCmd(app))

	rootCmd.AddCommand(cmd)
}

func newExportCSVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export all trades as CSV",
		Long:  "Write one CSV row per trade across all weeks, to stdout or to a file.",
		Example: `  journal export csv
  journal export csv -o journal.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			outPath, _ := cmd.Flags().GetString("output")

			j := app.Journal.Journal()

			if outPath == "" {
				return export.WriteCSV(cmd.OutOrStdout(), j)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, j); err != nil {
				return fmt.Errorf("exporting CSV: %w", err)
			}
			output.Success("Journal exported to %s", outPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	return cmd
}

func newExportReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the journal report",
		Long: `Build the journal report: dashboard summary, weekly breakdown with
cumulative gain, and the per-trade detail listing. Rendered for the
terminal by default, or written as markdown with -o.`,
		Example: `  journal export report
  journal export report -o report.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			outPath, _ := cmd.Flags().GetString("output")
			plain, _ := cmd.Flags().GetBool("plain")

			j := app.Journal.Journal()
			stats := app.Journal.Stats()
			doc := export.ReportMarkdown(j, stats, time.Now())

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				output.Success("Report written to %s", outPath)
				return nil
			}

			if plain {
				output.Printf("%s", doc)
				return nil
			}

			rendered, err := glamour.Render(doc, "dark")
			if err != nil {
				// Report the render failure but keep the journal usable:
				// fall back to the raw markdown.
				app.Logger.Warn().Err(err).Msg("Report rendering failed")
				output.Printf("%s", doc)
				return nil
			}
			output.Printf("%s", rendered)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "write markdown to a file instead of the terminal")
	cmd.Flags().Bool("plain", false, "print raw markdown without terminal styling")

	return cmd
}
