// Package derive holds the pure calculation functions behind the journal:
// risk/reward ratios, gain/loss percentages and the week and journal
// rollups. Every function is total; edge cases (missing prices, zero
// risk distance, empty journals) resolve to 0 rather than an error, so
// the store can re-derive everything deterministically after any mutation.
package derive

import (
	"math"

	"trade-journal/internal/models"
)

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RiskReward computes the reward distance divided by the risk distance
// for the planned levels of a trade. Returns 0 if any price is missing
// or the stop is placed on the wrong side of the entry (risk distance
// would be zero or negative).
func RiskReward(tradeType models.TradeType, entry, stopLoss, takeProfit float64) float64 {
	if entry == 0 || stopLoss == 0 || takeProfit == 0 {
		return 0
	}

	var riskPoints, rewardPoints float64
	if tradeType == models.Short {
		riskPoints = stopLoss - entry
		rewardPoints = entry - takeProfit
	} else {
		riskPoints = entry - stopLoss
		rewardPoints = takeProfit - entry
	}

	if riskPoints <= 0 {
		return 0
	}
	return round2(rewardPoints / riskPoints)
}

// GainLossPercent computes the realized percentage outcome of a trade
// from its result, the percentage of capital risked and the risk/reward
// ratio. A win realizes risk x riskReward, a loss realizes -risk, and
// breakeven (or no result) realizes 0.
func GainLossPercent(result models.TradeResult, risk, riskReward float64) float64 {
	if risk == 0 || riskReward == 0 {
		return 0
	}
	switch result {
	case models.ResultWin:
		return round2(risk * riskReward)
	case models.ResultLoss:
		return -risk
	default:
		return 0
	}
}

// WeekPercentGain sums GainLossPercent over Done trades. Pending trades
// contribute nothing regardless of any stale values they hold.
func WeekPercentGain(trades []models.Trade) float64 {
	var total float64
	for _, t := range trades {
		if t.Status == models.StatusDone {
			total += t.GainLossPercent
		}
	}
	return total
}

// TotalPercentGain sums the cached week rollups.
func TotalPercentGain(weeks []models.Week) float64 {
	var total float64
	for _, w := range weeks {
		total += w.PercentGain
	}
	return total
}

// Stats computes the dashboard projection in a single pass over all
// trades. Only Done trades are counted; with no completed trades every
// ratio is 0, never NaN.
func Stats(j models.TradeJournal) models.DashboardStats {
	var s models.DashboardStats
	var totalRiskReward float64

	for _, w := range j.Weeks {
		for _, t := range w.Trades {
			if t.Status != models.StatusDone {
				continue
			}
			s.TotalTrades++
			switch t.Result {
			case models.ResultWin:
				s.WinTrades++
			case models.ResultLoss:
				s.LoseTrades++
			case models.ResultBreakeven:
				s.BreakevenTrades++
			}
			totalRiskReward += t.RiskReward
			s.TotalProfitLossPercent += t.GainLossPercent
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.WinTrades) / float64(s.TotalTrades) * 100
		s.RiskRewardAverage = totalRiskReward / float64(s.TotalTrades)
	}
	return s
}

// SeriesPoint is one week on the cumulative performance curve.
type SeriesPoint struct {
	WeekID     string  `json:"weekId"`
	WeekName   string  `json:"weekName"`
	Gain       float64 `json:"gain"`
	Cumulative float64 `json:"cumulative"`
}

// CumulativeSeries returns the per-week gains with a running total, in
// journal order. This is the data behind the performance curve.
func CumulativeSeries(j models.TradeJournal) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(j.Weeks))
	var running float64
	for _, w := range j.Weeks {
		running += w.PercentGain
		points = append(points, SeriesPoint{
			WeekID:     w.ID,
			WeekName:   w.Name,
			Gain:       w.PercentGain,
			Cumulative: running,
		})
	}
	return points
}
