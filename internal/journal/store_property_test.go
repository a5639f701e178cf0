package journal

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"trade-journal/internal/derive"
	"trade-journal/internal/models"
	"trade-journal/internal/store"
)

// Property: after any sequence of store mutations, every cached rollup
// equals a live recomputation over the current trades, and the journal
// total equals the sum of the week rollups.
func TestProperty_AggregateConsistency(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	pairs := []string{"EURUSD", "GBPUSD", "XAUUSD", "USDJPY", "BTCUSD"}

	opGen := gen.IntRange(0, 4) // 0 addWeek, 1 addTrade, 2 updateTrade, 3 deleteTrade, 4 deleteWeek

	properties.Property("rollups equal live recomputation after random mutations", prop.ForAll(
		func(ops []int, prices []float64, results []int) bool {
			s := Open(store.NewMemoryKV(), zerolog.Nop())

			price := func(i int) float64 {
				if len(prices) == 0 {
					return 100
				}
				return prices[i%len(prices)]
			}
			result := func(i int) models.TradeResult {
				if len(results) == 0 {
					return models.ResultNone
				}
				switch results[i%len(results)] % 4 {
				case 0:
					return models.ResultWin
				case 1:
					return models.ResultLoss
				case 2:
					return models.ResultBreakeven
				default:
					return models.ResultNone
				}
			}

			for i, op := range ops {
				j := s.Journal()
				switch op {
				case 0:
					s.AddWeek("Week")
				case 1:
					if weekID := s.CurrentWeekID(); weekID != "" {
						status := models.StatusDone
						if i%3 == 0 {
							status = models.StatusPending
						}
						s.AddTrade(weekID, models.Trade{
							Date:       time.Now(),
							Pair:       pairs[i%len(pairs)],
							Type:       models.Long,
							Entry:      100,
							StopLoss:   100 - price(i),
							TakeProfit: 100 + price(i+1),
							Risk:       1 + float64(i%3),
							Status:     status,
							Result:     result(i),
						})
					}
				case 2:
					if len(j.Weeks) > 0 && len(j.Weeks[0].Trades) > 0 {
						r := result(i)
						done := models.StatusDone
						s.UpdateTrade(j.Weeks[0].ID, j.Weeks[0].Trades[0].ID, TradePatch{
							Result: &r,
							Status: &done,
						})
					}
				case 3:
					if len(j.Weeks) > 0 && len(j.Weeks[0].Trades) > 0 {
						s.DeleteTrade(j.Weeks[0].ID, j.Weeks[0].Trades[0].ID)
					}
				case 4:
					if len(j.Weeks) > 1 {
						s.DeleteWeek(j.Weeks[len(j.Weeks)-1].ID)
					}
				}
			}

			final := s.Journal()
			var total float64
			for _, w := range final.Weeks {
				if w.PercentGain != derive.WeekPercentGain(w.Trades) {
					t.Logf("week %s rollup drifted: cached=%v live=%v", w.ID, w.PercentGain, derive.WeekPercentGain(w.Trades))
					return false
				}
				total += w.PercentGain
			}
			if final.TotalPercentGain != derive.TotalPercentGain(final.Weeks) {
				t.Logf("journal rollup drifted: cached=%v live=%v", final.TotalPercentGain, derive.TotalPercentGain(final.Weeks))
				return false
			}
			if final.TotalPercentGain != total {
				return false
			}

			// Selection always points at an existing week, or at nothing
			// when the journal is empty.
			if current := s.CurrentWeekID(); current != "" {
				if final.Week(current) == nil {
					t.Logf("selection points at deleted week %s", current)
					return false
				}
			} else if len(final.Weeks) > 0 {
				// Open always selects a week when one exists, and
				// mutations only clear the selection on the last delete.
				return false
			}

			return true
		},
		gen.SliceOf(opGen),
		gen.SliceOf(gen.Float64Range(1, 50)),
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("stats projection is idempotent", prop.ForAll(
		func(tradeCount int) bool {
			s := Open(store.NewMemoryKV(), zerolog.Nop())
			weekID := s.CurrentWeekID()
			for i := 0; i < tradeCount; i++ {
				s.AddTrade(weekID, models.Trade{
					Date:       time.Now(),
					Pair:       pairs[i%len(pairs)],
					Type:       models.Short,
					Entry:      100,
					StopLoss:   110,
					TakeProfit: 80,
					Risk:       1,
					Status:     models.StatusDone,
					Result:     models.ResultWin,
				})
			}
			return s.Stats() == s.Stats()
		},
		gen.IntRange(0, 25),
	))

	properties.TestingRun(t)
}
