// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "trade-journal/internal/errors"
	"trade-journal/internal/journal"
	"trade-journal/internal/models"
)

// addTradeCommands adds trade management commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Manage trades",
		Long:  "Log, update, delete and list trades. Risk/reward and gain/loss are derived automatically.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeUpdateCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

// resolveWeekID returns the --week flag value or the current selection.
func resolveWeekID(cmd *cobra.Command, app *App) (string, error) {
	weekID, _ := cmd.Flags().GetString("week")
	if weekID == "" {
		weekID = app.Journal.CurrentWeekID()
	}
	if weekID == "" {
		return "", apperrors.ErrWeekNotFound
	}
	return weekID, nil
}

func parseTradeType(s string) (models.TradeType, error) {
	switch strings.ToLower(s) {
	case "long":
		return models.Long, nil
	case "short":
		return models.Short, nil
	}
	return "", apperrors.NewValidationError("type", s, "must be Long or Short")
}

func parseStatus(s string) (models.TradeStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return models.StatusPending, nil
	case "done":
		return models.StatusDone, nil
	}
	return "", apperrors.NewValidationError("status", s, "must be Pending or Done")
}

func parseResult(s string) (models.TradeResult, error) {
	switch strings.ToLower(s) {
	case "":
		return models.ResultNone, nil
	case "win":
		return models.ResultWin, nil
	case "loss":
		return models.ResultLoss, nil
	case "breakeven":
		return models.ResultBreakeven, nil
	}
	return "", apperrors.NewValidationError("result", s, "must be Win, Loss or Breakeven")
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new trade",
		Long: `Log a new trade in the selected week (or the week given by --week).

Risk/reward is derived from the entry, stop and target prices; gain/loss
from the result and the risk percentage.`,
		Example: `  journal trade add --pair EURUSD --type Long --entry 1.0850 --stop 1.0800 --target 1.0950 --risk 1
  journal trade add --pair XAUUSD --type Short --entry 2400 --stop 2420 --target 2350 --status Done --result Win`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			weekID, err := resolveWeekID(cmd, app)
			if err != nil {
				return err
			}

			pair, _ := cmd.Flags().GetString("pair")
			typeStr, _ := cmd.Flags().GetString("type")
			entry, _ := cmd.Flags().GetFloat64("entry")
			stop, _ := cmd.Flags().GetFloat64("stop")
			target, _ := cmd.Flags().GetFloat64("target")
			risk, _ := cmd.Flags().GetFloat64("risk")
			dateStr, _ := cmd.Flags().GetString("date")
			statusStr, _ := cmd.Flags().GetString("status")
			resultStr, _ := cmd.Flags().GetString("result")
			comment, _ := cmd.Flags().GetString("comment")
			beforeImage, _ := cmd.Flags().GetString("before-image")
			afterImage, _ := cmd.Flags().GetString("after-image")

			if pair == "" {
				pair = app.Config.Trading.DefaultPair
			}
			if pair == "" {
				return apperrors.NewValidationError("pair", pair, "must not be empty")
			}
			if !cmd.Flags().Changed("risk") {
				risk = app.Config.Trading.DefaultRisk
			}
			if risk <= 0 {
				return apperrors.NewValidationError("risk", risk, "must be greater than zero")
			}

			tradeType, err := parseTradeType(typeStr)
			if err != nil {
				return err
			}
			status, err := parseStatus(statusStr)
			if err != nil {
				return err
			}
			result, err := parseResult(resultStr)
			if err != nil {
				return err
			}

			date := time.Now()
			if dateStr != "" {
				date, err = ParseDate(dateStr)
				if err != nil {
					return apperrors.NewValidationError("date", dateStr, "must be YYYY-MM-DD")
				}
			}

			trade, err := app.Journal.AddTrade(weekID, models.Trade{
				Date:        date,
				Pair:        pair,
				Type:        tradeType,
				Entry:       entry,
				StopLoss:    stop,
				TakeProfit:  target,
				Risk:        risk,
				Status:      status,
				Result:      result,
				Comment:     comment,
				BeforeImage: beforeImage,
				AfterImage:  afterImage,
			})
			if err := reportMutation(output, err); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Trade added for %s (%s)", trade.Pair, trade.ID)
			output.Printf("  Risk/Reward: %s\n", FormatRiskReward(trade.RiskReward))
			if trade.Status == models.StatusDone {
				output.Printf("  Gain/Loss:   %s\n", output.FormatGain(trade.GainLossPercent))
			}
			return nil
		},
	}

	cmd.Flags().String("week", "", "week id (default: current selection)")
	cmd.Flags().String("pair", "", "instrument, e.g. EURUSD")
	cmd.Flags().String("type", "Long", "trade direction: Long or Short")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("stop", 0, "stop loss price")
	cmd.Flags().Float64("target", 0, "take profit price")
	cmd.Flags().Float64("risk", 0, "percent of capital risked")
	cmd.Flags().String("date", "", "trade date as YYYY-MM-DD (default: today)")
	cmd.Flags().String("status", "Pending", "Pending or Done")
	cmd.Flags().String("result", "", "Win, Loss or Breakeven (Done trades)")
	cmd.Flags().String("comment", "", "free-form note")
	cmd.Flags().String("before-image", "", "chart screenshot reference taken before the trade")
	cmd.Flags().String("after-image", "", "chart screenshot reference taken after the trade")

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		Long:  "List the trades of the selected week, or of all weeks with --all.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			all, _ := cmd.Flags().GetBool("all")

			j := app.Journal.Journal()
			weeks := j.Weeks
			if !all {
				weekID, err := resolveWeekID(cmd, app)
				if err != nil {
					return err
				}
				week := j.Week(weekID)
				if week == nil {
					return apperrors.ErrWeekNotFound
				}
				weeks = []models.Week{*week}
			}

			if output.IsJSON() {
				return output.JSON(weeks)
			}

			for _, week := range weeks {
				output.Bold("%s  (%s)", week.Name, output.FormatGain(week.PercentGain))
				if len(week.Trades) == 0 {
					output.Dim("  no trades")
					output.Println()
					continue
				}
				table := NewTable(output, "ID", "Date", "Pair", "Type", "Entry", "Stop", "Target", "Risk", "R/R", "Status", "Result", "Gain")
				for _, t := range week.Trades {
					gain := "-"
					if t.Status == models.StatusDone {
						gain = output.FormatGain(t.GainLossPercent)
					}
					table.AddRow(
						t.ID,
						FormatDate(t.Date),
						t.Pair,
						string(t.Type),
						FormatPrice(t.Entry),
						FormatPrice(t.StopLoss),
						FormatPrice(t.TakeProfit),
						fmt.Sprintf("%g%%", t.Risk),
						FormatRiskReward(t.RiskReward),
						string(t.Status),
						string(t.Result),
						gain,
					)
				}
				table.Render()
				output.Println()
			}
			return nil
		},
	}

	cmd.Flags().String("week", "", "week id (default: current selection)")
	cmd.Flags().Bool("all", false, "list trades of every week")

	return cmd
}

func newTradeUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <trade-id>",
		Short: "Update a trade",
		Long: `Update fields of an existing trade. Only flags that are set are applied;
risk/reward and gain/loss are re-derived from the merged fields.`,
		Example: `  journal trade update 01HV... --status Done --result Win
  journal trade update 01HV... --entry 1.0860 --stop 1.0820`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			weekID, err := resolveWeekID(cmd, app)
			if err != nil {
				return err
			}

			var patch journal.TradePatch

			if cmd.Flags().Changed("pair") {
				v, _ := cmd.Flags().GetString("pair")
				if v == "" {
					return apperrors.NewValidationError("pair", v, "must not be empty")
				}
				patch.Pair = &v
			}
			if cmd.Flags().Changed("type") {
				v, _ := cmd.Flags().GetString("type")
				t, err := parseTradeType(v)
				if err != nil {
					return err
				}
				patch.Type = &t
			}
			if cmd.Flags().Changed("entry") {
				v, _ := cmd.Flags().GetFloat64("entry")
				patch.Entry = &v
			}
			if cmd.Flags().Changed("stop") {
				v, _ := cmd.Flags().GetFloat64("stop")
				patch.StopLoss = &v
			}
			if cmd.Flags().Changed("target") {
				v, _ := cmd.Flags().GetFloat64("target")
				patch.TakeProfit = &v
			}
			if cmd.Flags().Changed("risk") {
				v, _ := cmd.Flags().GetFloat64("risk")
				if v <= 0 {
					return apperrors.NewValidationError("risk", v, "must be greater than zero")
				}
				patch.Risk = &v
			}
			if cmd.Flags().Changed("date") {
				v, _ := cmd.Flags().GetString("date")
				date, err := ParseDate(v)
				if err != nil {
					return apperrors.NewValidationError("date", v, "must be YYYY-MM-DD")
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				status, err := parseStatus(v)
				if err != nil {
					return err
				}
				patch.Status = &status
			}
			if cmd.Flags().Changed("result") {
				v, _ := cmd.Flags().GetString("result")
				result, err := parseResult(v)
				if err != nil {
					return err
				}
				patch.Result = &result
			}
			if cmd.Flags().Changed("comment") {
				v, _ := cmd.Flags().GetString("comment")
				patch.Comment = &v
			}
			if cmd.Flags().Changed("before-image") {
				v, _ := cmd.Flags().GetString("before-image")
				patch.BeforeImage = &v
			}
			if cmd.Flags().Changed("after-image") {
				v, _ := cmd.Flags().GetString("after-image")
				patch.AfterImage = &v
			}

			trade, err := app.Journal.UpdateTrade(weekID, args[0], patch)
			if err := reportMutation(output, err); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("Trade %s updated", trade.ID)
			output.Printf("  Risk/Reward: %s\n", FormatRiskReward(trade.RiskReward))
			if trade.Status == models.StatusDone {
				output.Printf("  Gain/Loss:   %s\n", output.FormatGain(trade.GainLossPercent))
			}
			return nil
		},
	}

	cmd.Flags().String("week", "", "week id (default: current selection)")
	cmd.Flags().String("pair", "", "instrument, e.g. EURUSD")
	cmd.Flags().String("type", "", "trade direction: Long or Short")
	cmd.Flags().Float64("entry", 0, "entry price")
	cmd.Flags().Float64("stop", 0, "stop loss price")
	cmd.Flags().Float64("target", 0, "take profit price")
	cmd.Flags().Float64("risk", 0, "percent of capital risked")
	cmd.Flags().String("date", "", "trade date as YYYY-MM-DD")
	cmd.Flags().String("status", "", "Pending or Done")
	cmd.Flags().String("result", "", "Win, Loss or Breakeven")
	cmd.Flags().String("comment", "", "free-form note")
	cmd.Flags().String("before-image", "", "chart screenshot reference taken before the trade")
	cmd.Flags().String("after-image", "", "chart screenshot reference taken after the trade")

	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			weekID, err := resolveWeekID(cmd, app)
			if err != nil {
				return err
			}

			err = app.Journal.DeleteTrade(weekID, args[0])
			if err := reportMutation(output, err); err != nil {
				return err
			}
			output.Success("Trade deleted")
			return nil
		},
	}

	cmd.Flags().String("week", "", "week id (default: current selection)")

	return cmd
}
