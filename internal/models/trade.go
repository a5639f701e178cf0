// Package models defines the trading journal domain types.
package models

import "time"

// TradeType is the direction of a position.
type TradeType string

const (
	Long  TradeType = "Long"
	Short TradeType = "Short"
)

// TradeStatus tells whether a trade has been closed out.
// Only Done trades contribute to statistics.
type TradeStatus string

const (
	StatusPending TradeStatus = "Pending"
	StatusDone    TradeStatus = "Done"
)

// TradeResult is the outcome of a completed trade. The empty string
// means no result has been recorded yet.
type TradeResult string

const (
	ResultNone      TradeResult = ""
	ResultWin       TradeResult = "Win"
	ResultLoss      TradeResult = "Loss"
	ResultBreakeven TradeResult = "Breakeven"
)

// Trade is one logged position.
//
// RiskReward and GainLossPercent are derived fields. They are recomputed
// from the other fields on every mutation and must never be set
// independently.
type Trade struct {
	ID              string      `json:"id"`
	Date            time.Time   `json:"date"`
	Pair            string      `json:"pair"`
	Type            TradeType   `json:"type"`
	Entry           float64     `json:"entry"`
	StopLoss        float64     `json:"stopLoss"`
	TakeProfit      float64     `json:"takeProfit"`
	Risk            float64     `json:"risk"`
	RiskReward      float64     `json:"riskReward"`
	Status          TradeStatus `json:"status"`
	Result          TradeResult `json:"result,omitempty"`
	GainLossPercent float64     `json:"gainLossPercent"`
	Comment         string      `json:"comment"`
	BeforeImage     string      `json:"beforeTradeImage,omitempty"`
	AfterImage      string      `json:"afterTradeImage,omitempty"`
}

// Week is a named bucket of trades. Trade order is insertion order.
// PercentGain is a cached rollup over Done trades, kept consistent by
// the journal store.
type Week struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Trades      []Trade `json:"trades"`
	PercentGain float64 `json:"percentGain"`
}

// TradeJournal is the whole journal document. TotalPercentGain is a
// cached sum of all week rollups.
type TradeJournal struct {
	Weeks            []Week  `json:"weeks"`
	TotalPercentGain float64 `json:"totalPercentGain"`
}

// DashboardStats is a read-only projection over all Done trades in the
// journal. It is recomputed on demand and never mutated independently.
type DashboardStats struct {
	TotalTrades            int     `json:"totalTrades"`
	WinTrades              int     `json:"winTrades"`
	LoseTrades             int     `json:"loseTrades"`
	BreakevenTrades        int     `json:"breakevenTrades"`
	WinRate                float64 `json:"winRate"`
	RiskRewardAverage      float64 `json:"riskRewardAverage"`
	TotalProfitLossPercent float64 `json:"totalProfitLossPercent"`
}

// Clone returns a deep copy of the journal so callers can hold a
// snapshot without observing later mutations.
func (j TradeJournal) Clone() TradeJournal {
	out := TradeJournal{
		Weeks:            make([]Week, len(j.Weeks)),
		TotalPercentGain: j.TotalPercentGain,
	}
	for i, w := range j.Weeks {
		cw := w
		cw.Trades = make([]Trade, len(w.Trades))
		copy(cw.Trades, w.Trades)
		out.Weeks[i] = cw
	}
	return out
}

// Week returns the week with the given id, or nil.
func (j *TradeJournal) Week(id string) *Week {
	for i := range j.Weeks {
		if j.Weeks[i].ID == id {
			return &j.Weeks[i]
		}
	}
	return nil
}

// Trade returns the trade with the given id, or nil.
func (w *Week) Trade(id string) *Trade {
	for i := range w.Trades {
		if w.Trades[i].ID == id {
			return &w.Trades[i]
		}
	}
	return nil
}
