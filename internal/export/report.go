package export

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"trade-journal/internal/derive"
	"trade-journal/internal/models"
)

// ReportMarkdown builds the journal report document: the dashboard
// summary, the per-week breakdown with cumulative gain, and the
// per-trade detail listing.
func ReportMarkdown(j models.TradeJournal, stats models.DashboardStats, generatedAt time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trading Journal Report")
	doc.PlainText(fmt.Sprintf("Generated on %s", generatedAt.Format(csvDateFormat)))

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Trades", fmt.Sprintf("%d", stats.TotalTrades)},
			{"Wins", fmt.Sprintf("%d", stats.WinTrades)},
			{"Losses", fmt.Sprintf("%d", stats.LoseTrades)},
			{"Breakeven", fmt.Sprintf("%d", stats.BreakevenTrades)},
			{"Win Rate", fmt.Sprintf("%.2f%%", stats.WinRate)},
			{"Avg Risk/Reward", fmt.Sprintf("%.2f", stats.RiskRewardAverage)},
			{"Total P/L", formatSignedPercent(stats.TotalProfitLossPercent)},
		},
	})

	doc.H2("Weekly Breakdown")
	weekly := md.TableSet{
		Header: []string{"Week", "Trades", "Gain", "Cumulative"},
		Rows:   [][]string{},
	}
	series := derive.CumulativeSeries(j)
	for i, point := range series {
		weekly.Rows = append(weekly.Rows, []string{
			point.WeekName,
			fmt.Sprintf("%d", len(j.Weeks[i].Trades)),
			formatSignedPercent(point.Gain),
			formatSignedPercent(point.Cumulative),
		})
	}
	doc.Table(weekly)

	doc.H2("Trades")
	for _, week := range j.Weeks {
		doc.H3(week.Name)
		if len(week.Trades) == 0 {
			doc.PlainText("No trades recorded.")
			continue
		}
		table := md.TableSet{
			Header: []string{"Date", "Pair", "Type", "Entry", "Stop", "Target", "Risk", "R/R", "Status", "Result", "Gain/Loss"},
			Rows:   [][]string{},
		}
		for _, t := range week.Trades {
			date := ""
			if !t.Date.IsZero() {
				date = t.Date.Format(csvDateFormat)
			}
			gain := "-"
			if t.Status == models.StatusDone {
				gain = formatSignedPercent(t.GainLossPercent)
			}
			table.Rows = append(table.Rows, []string{
				date,
				t.Pair,
				string(t.Type),
				fmt.Sprintf("%g", t.Entry),
				fmt.Sprintf("%g", t.StopLoss),
				fmt.Sprintf("%g", t.TakeProfit),
				fmt.Sprintf("%g%%", t.Risk),
				fmt.Sprintf("%.2f", t.RiskReward),
				string(t.Status),
				string(t.Result),
				gain,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

func formatSignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
