package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-journal/internal/models"
)

func TestRiskReward(t *testing.T) {
	tests := []struct {
		name       string
		tradeType  models.TradeType
		entry      float64
		stopLoss   float64
		takeProfit float64
		want       float64
	}{
		{"long 2R", models.Long, 100, 90, 120, 2.00},
		{"short 2R", models.Short, 100, 110, 80, 2.00},
		{"long fractional", models.Long, 1.0850, 1.0800, 1.0950, 2.00},
		{"zero risk distance", models.Long, 100, 100, 120, 0},
		{"stop above entry on long", models.Long, 100, 110, 120, 0},
		{"stop below entry on short", models.Short, 100, 90, 80, 0},
		{"missing entry", models.Long, 0, 90, 120, 0},
		{"missing stop", models.Long, 100, 0, 120, 0},
		{"missing target", models.Long, 100, 90, 0, 0},
		{"negative reward allowed", models.Long, 100, 90, 95, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskReward(tt.tradeType, tt.entry, tt.stopLoss, tt.takeProfit)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRiskRewardRounding(t *testing.T) {
	// risk 3, reward 10 -> 3.3333... rounds to 3.33
	assert.Equal(t, 3.33, RiskReward(models.Long, 100, 97, 110))
}

func TestGainLossPercent(t *testing.T) {
	assert.Equal(t, 2.00, GainLossPercent(models.ResultWin, 1, 2))
	assert.Equal(t, -1.0, GainLossPercent(models.ResultLoss, 1, 2))
	assert.Equal(t, 0.0, GainLossPercent(models.ResultBreakeven, 1, 2))
	assert.Equal(t, 0.0, GainLossPercent(models.ResultNone, 1, 2))

	// Zero risk or risk/reward short-circuits to zero.
	assert.Equal(t, 0.0, GainLossPercent(models.ResultWin, 0, 2))
	assert.Equal(t, 0.0, GainLossPercent(models.ResultWin, 1, 0))

	// Rounding on wins.
	assert.Equal(t, 2.34, GainLossPercent(models.ResultWin, 2, 1.17))
}

func TestWeekPercentGainIgnoresPending(t *testing.T) {
	trades := []models.Trade{
		{Status: models.StatusDone, GainLossPercent: 5},
		// Stale gain on a pending trade must not count.
		{Status: models.StatusPending, GainLossPercent: 99},
	}
	assert.Equal(t, 5.0, WeekPercentGain(trades))
}

func TestTotalPercentGain(t *testing.T) {
	weeks := []models.Week{
		{PercentGain: 2.5},
		{PercentGain: -1.0},
		{PercentGain: 0},
	}
	assert.Equal(t, 1.5, TotalPercentGain(weeks))
	assert.Equal(t, 0.0, TotalPercentGain(nil))
}

func TestStats(t *testing.T) {
	j := models.TradeJournal{
		Weeks: []models.Week{
			{
				Trades: []models.Trade{
					{Status: models.StatusDone, Result: models.ResultWin, RiskReward: 2, GainLossPercent: 2},
					{Status: models.StatusDone, Result: models.ResultLoss, RiskReward: 3, GainLossPercent: -1},
					{Status: models.StatusPending, Result: models.ResultWin, RiskReward: 9, GainLossPercent: 9},
				},
			},
			{
				Trades: []models.Trade{
					{Status: models.StatusDone, Result: models.ResultBreakeven, RiskReward: 1, GainLossPercent: 0},
				},
			},
		},
	}

	s := Stats(j)
	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 1, s.WinTrades)
	assert.Equal(t, 1, s.LoseTrades)
	assert.Equal(t, 1, s.BreakevenTrades)
	assert.InDelta(t, 33.333333, s.WinRate, 1e-4)
	assert.InDelta(t, 2.0, s.RiskRewardAverage, 1e-9)
	assert.InDelta(t, 1.0, s.TotalProfitLossPercent, 1e-9)
}

func TestStatsEmptyJournal(t *testing.T) {
	s := Stats(models.TradeJournal{})
	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, 0.0, s.WinRate)
	assert.Equal(t, 0.0, s.RiskRewardAverage)
	assert.Equal(t, 0.0, s.TotalProfitLossPercent)
}

func TestStatsIdempotent(t *testing.T) {
	j := models.TradeJournal{
		Weeks: []models.Week{
			{Trades: []models.Trade{
				{Status: models.StatusDone, Result: models.ResultWin, RiskReward: 2.5, GainLossPercent: 2.5},
			}},
		},
	}
	assert.Equal(t, Stats(j), Stats(j))
}

func TestCumulativeSeries(t *testing.T) {
	j := models.TradeJournal{
		Weeks: []models.Week{
			{ID: "w1", Name: "Week 1", PercentGain: 2},
			{ID: "w2", Name: "Week 2", PercentGain: -1},
			{ID: "w3", Name: "Week 3", PercentGain: 3},
		},
	}

	series := CumulativeSeries(j)
	assert.Len(t, series, 3)
	assert.Equal(t, 2.0, series[0].Cumulative)
	assert.Equal(t, 1.0, series[1].Cumulative)
	assert.Equal(t, 4.0, series[2].Cumulative)
	assert.Equal(t, "Week 2", series[1].WeekName)
}
