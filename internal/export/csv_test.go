package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/internal/models"
)

func sampleJournal() models.TradeJournal {
	return models.TradeJournal{
		Weeks: []models.Week{
			{
				ID:   "w1",
				Name: "Week 1",
				Trades: []models.Trade{
					{
						ID:              "t1",
						Date:            time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC),
						Pair:            "EURUSD",
						Type:            models.Long,
						Entry:           1.085,
						StopLoss:        1.08,
						TakeProfit:      1.095,
						Risk:            1,
						RiskReward:      2,
						Status:          models.StatusDone,
						Result:          models.ResultWin,
						GainLossPercent: 2,
						Comment:         `entered on "news spike", held`,
					},
					{
						ID:     "t2",
						Pair:   "XAUUSD",
						Type:   models.Short,
						Risk:   0.5,
						Status: models.StatusPending,
					},
				},
				PercentGain: 2,
			},
			{
				ID:          "w2",
				Name:        "Week 2",
				Trades:      []models.Trade{},
				PercentGain: 0,
			},
		},
		TotalPercentGain: 2,
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, models.TradeJournal{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"Week,Date,Pair,Type,Entry,Stop Loss,Take Profit,Risk %,Risk/Reward,Status,Result,Gain/Loss %,Comment",
		lines[0])
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleJournal()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 trades

	row := records[1]
	assert.Equal(t, "Week 1", row[0])
	assert.Equal(t, "2026-02-10", row[1])
	assert.Equal(t, "EURUSD", row[2])
	assert.Equal(t, "Long", row[3])
	assert.Equal(t, "1.085", row[4])
	assert.Equal(t, "1.08", row[5])
	assert.Equal(t, "1.095", row[6])
	assert.Equal(t, "1", row[7])
	assert.Equal(t, "2", row[8])
	assert.Equal(t, "Done", row[9])
	assert.Equal(t, "Win", row[10])
	assert.Equal(t, "2", row[11])
	assert.Equal(t, `entered on "news spike", held`, row[12])

	// Pending trade with no date or result exports empty cells.
	row = records[2]
	assert.Equal(t, "", row[1])
	assert.Equal(t, "Pending", row[9])
	assert.Equal(t, "", row[10])
}

func TestWriteCSVQuotesComment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleJournal()))

	// Internal quotes come out doubled per RFC 4180.
	assert.Contains(t, buf.String(), `"entered on ""news spike"", held"`)
}
