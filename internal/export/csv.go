// Package export serializes journal snapshots to CSV and to the report
// document. Values are read from the snapshot as-is; nothing is
// recomputed here.
package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"trade-journal/internal/models"
)

// csvDateFormat is the calendar-day format used in exported rows.
const csvDateFormat = "2006-01-02"

type csvRow struct {
	Week       string  `csv:"Week"`
	Date       string  `csv:"Date"`
	Pair       string  `csv:"Pair"`
	Type       string  `csv:"Type"`
	Entry      float64 `csv:"Entry"`
	StopLoss   float64 `csv:"Stop Loss"`
	TakeProfit float64 `csv:"Take Profit"`
	Risk       float64 `csv:"Risk %"`
	RiskReward float64 `csv:"Risk/Reward"`
	Status     string  `csv:"Status"`
	Result     string  `csv:"Result"`
	GainLoss   float64 `csv:"Gain/Loss %"`
	Comment    string  `csv:"Comment"`
}

// WriteCSV writes one row per trade across all weeks, in journal order.
// Quoting follows RFC 4180, so comments with embedded quotes come out
// with the quotes doubled.
func WriteCSV(w io.Writer, j models.TradeJournal) error {
	rows := make([]csvRow, 0)
	for _, week := range j.Weeks {
		for _, t := range week.Trades {
			date := ""
			if !t.Date.IsZero() {
				date = t.Date.Format(csvDateFormat)
			}
			rows = append(rows, csvRow{
				Week:       week.Name,
				Date:       date,
				Pair:       t.Pair,
				Type:       string(t.Type),
				Entry:      t.Entry,
				StopLoss:   t.StopLoss,
				TakeProfit: t.TakeProfit,
				Risk:       t.Risk,
				RiskReward: t.RiskReward,
				Status:     string(t.Status),
				Result:     string(t.Result),
				GainLoss:   t.GainLossPercent,
				Comment:    t.Comment,
			})
		}
	}
	return gocsv.Marshal(&rows, w)
}
