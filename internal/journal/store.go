// Package journal owns the canonical trade journal tree.
//
// The Store is the single writer: every mutation goes through it, fully
// recomputes the cached rollups before returning, and then persists the
// whole journal to the local store as a fire-and-forget side effect. A
// failed write is reported but never rolls back the in-memory mutation.
package journal

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"trade-journal/internal/derive"
	apperrors "trade-journal/internal/errors"
	"trade-journal/internal/models"
	"trade-journal/internal/store"
)

// DefaultWeekName is the name of the week a fresh journal starts with.
const DefaultWeekName = "Week 1"

// Store holds the journal, the current week selection and the
// persistence handle.
type Store struct {
	mu            sync.RWMutex
	kv            store.KV
	log           zerolog.Logger
	journal       models.TradeJournal
	currentWeekID string
}

// Open loads the journal from the local store, or starts from the
// one-week default when nothing is persisted yet. A malformed payload
// is treated as absent: it is logged and replaced by the default, never
// surfaced as a fatal error.
func Open(kv store.KV, logger zerolog.Logger) *Store {
	s := &Store{kv: kv, log: logger}

	payload, err := kv.Get(store.KeyJournal)
	switch {
	case err == nil:
		var j models.TradeJournal
		if jsonErr := json.Unmarshal([]byte(payload), &j); jsonErr != nil {
			logger.Warn().Err(jsonErr).Msg("Stored journal is malformed, starting fresh")
			s.journal = defaultJournal()
		} else {
			s.journal = j
		}
	case apperrors.Is(err, apperrors.ErrKeyNotFound):
		s.journal = defaultJournal()
	default:
		logger.Warn().Err(err).Msg("Failed to load journal, starting fresh")
		s.journal = defaultJournal()
	}

	// Heal any rollup drift in persisted data.
	s.recompute()

	if len(s.journal.Weeks) > 0 {
		s.currentWeekID = s.journal.Weeks[0].ID
	}
	return s
}

func defaultJournal() models.TradeJournal {
	return models.TradeJournal{
		Weeks: []models.Week{{
			ID:     newID(),
			Name:   DefaultWeekName,
			Trades: []models.Trade{},
		}},
	}
}

func newID() string {
	return ulid.Make().String()
}

// recompute re-derives every cached rollup from the trades. All
// mutations funnel through here before they are observable.
func (s *Store) recompute() {
	for i := range s.journal.Weeks {
		s.journal.Weeks[i].PercentGain = derive.WeekPercentGain(s.journal.Weeks[i].Trades)
	}
	s.journal.TotalPercentGain = derive.TotalPercentGain(s.journal.Weeks)
}

// persist writes the journal to the local store. The in-memory state is
// already committed by the time this runs; a failure is logged and
// wrapped in a PersistError for the caller to surface as a warning.
func (s *Store) persist() error {
	data, err := json.Marshal(s.journal)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode journal")
		return apperrors.NewPersistError(store.KeyJournal, err)
	}
	if err := s.kv.Set(store.KeyJournal, string(data)); err != nil {
		s.log.Warn().Err(err).Msg("Failed to persist journal")
		return apperrors.NewPersistError(store.KeyJournal, err)
	}
	return nil
}

// Journal returns a snapshot of the journal.
func (s *Store) Journal() models.TradeJournal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal.Clone()
}

// Stats returns the dashboard projection, recomputed fresh.
func (s *Store) Stats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.Stats(s.journal)
}

// CurrentWeekID returns the id of the selected week, or "" when the
// journal has no weeks.
func (s *Store) CurrentWeekID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentWeekID
}

// SelectWeek makes the given week the current selection.
func (s *Store) SelectWeek(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.journal.Week(id) == nil {
		return apperrors.ErrWeekNotFound
	}
	s.currentWeekID = id
	return nil
}

// AddWeek appends a new empty week and makes it the current selection.
func (s *Store) AddWeek(name string) (models.Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := models.Week{
		ID:     newID(),
		Name:   name,
		Trades: []models.Trade{},
	}
	s.journal.Weeks = append(s.journal.Weeks, week)
	s.recompute()
	s.currentWeekID = week.ID

	s.log.Info().Str("week_id", week.ID).Str("name", name).Msg("Week added")
	return week, s.persist()
}

// WeekPatch is a partial update for a week. Nil fields are untouched.
type WeekPatch struct {
	Name *string
}

// UpdateWeek merges the patch into the matching week.
func (s *Store) UpdateWeek(id string, patch WeekPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.journal.Week(id)
	if week == nil {
		return apperrors.ErrWeekNotFound
	}
	if patch.Name != nil {
		week.Name = *patch.Name
	}
	s.recompute()
	return s.persist()
}

// DeleteWeek removes the week. If it was the current selection, the
// selection moves to the first remaining week, or to none when the
// journal is left empty.
func (s *Store) DeleteWeek(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.journal.Weeks {
		if s.journal.Weeks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrWeekNotFound
	}

	name := s.journal.Weeks[idx].Name
	s.journal.Weeks = append(s.journal.Weeks[:idx], s.journal.Weeks[idx+1:]...)
	s.recompute()

	if s.currentWeekID == id {
		if len(s.journal.Weeks) > 0 {
			s.currentWeekID = s.journal.Weeks[0].ID
		} else {
			s.currentWeekID = ""
		}
	}

	s.log.Info().Str("week_id", id).Str("name", name).Msg("Week deleted")
	return s.persist()
}

// AddTrade assigns a new id to the trade, derives its RiskReward and
// GainLossPercent, and appends it to the week. The caller-supplied
// derived fields are ignored.
func (s *Store) AddTrade(weekID string, trade models.Trade) (models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.journal.Week(weekID)
	if week == nil {
		return models.Trade{}, apperrors.ErrWeekNotFound
	}

	trade.ID = newID()
	deriveTrade(&trade)
	week.Trades = append(week.Trades, trade)
	s.recompute()

	s.log.Info().Str("trade_id", trade.ID).Str("pair", trade.Pair).Msg("Trade added")
	return trade, s.persist()
}

// TradePatch is a partial update for a trade. Nil fields are untouched.
// RiskReward and GainLossPercent are not patchable; they are always
// re-derived from the merged source fields.
type TradePatch struct {
	Date        *time.Time
	Pair        *string
	Type        *models.TradeType
	Entry       *float64
	StopLoss    *float64
	TakeProfit  *float64
	Risk        *float64
	Status      *models.TradeStatus
	Result      *models.TradeResult
	Comment     *string
	BeforeImage *string
	AfterImage  *string
}

// UpdateTrade merges the patch into the matching trade and re-derives
// its dependent fields and the rollups.
func (s *Store) UpdateTrade(weekID, tradeID string, patch TradePatch) (models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.journal.Week(weekID)
	if week == nil {
		return models.Trade{}, apperrors.ErrWeekNotFound
	}
	trade := week.Trade(tradeID)
	if trade == nil {
		return models.Trade{}, apperrors.ErrTradeNotFound
	}

	applyTradePatch(trade, patch)
	deriveTrade(trade)
	s.recompute()

	return *trade, s.persist()
}

// DeleteTrade removes the trade from the week.
func (s *Store) DeleteTrade(weekID, tradeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := s.journal.Week(weekID)
	if week == nil {
		return apperrors.ErrWeekNotFound
	}

	idx := -1
	for i := range week.Trades {
		if week.Trades[i].ID == tradeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrTradeNotFound
	}

	week.Trades = append(week.Trades[:idx], week.Trades[idx+1:]...)
	s.recompute()

	s.log.Info().Str("trade_id", tradeID).Msg("Trade deleted")
	return s.persist()
}

// deriveTrade recomputes the dependent fields of a trade in place, so
// they can never drift from the source fields.
func deriveTrade(t *models.Trade) {
	t.RiskReward = derive.RiskReward(t.Type, t.Entry, t.StopLoss, t.TakeProfit)
	t.GainLossPercent = derive.GainLossPercent(t.Result, t.Risk, t.RiskReward)
}

func applyTradePatch(t *models.Trade, p TradePatch) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Pair != nil {
		t.Pair = *p.Pair
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Entry != nil {
		t.Entry = *p.Entry
	}
	if p.StopLoss != nil {
		t.StopLoss = *p.StopLoss
	}
	if p.TakeProfit != nil {
		t.TakeProfit = *p.TakeProfit
	}
	if p.Risk != nil {
		t.Risk = *p.Risk
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Result != nil {
		t.Result = *p.Result
	}
	if p.Comment != nil {
		t.Comment = *p.Comment
	}
	if p.BeforeImage != nil {
		t.BeforeImage = *p.BeforeImage
	}
	if p.AfterImage != nil {
		t.AfterImage = *p.AfterImage
	}
}

// Capital returns the stored initial capital. The second return value
// is false when no capital has been set yet.
func (s *Store) Capital() (float64, bool, error) {
	raw, err := s.kv.Get(store.KeyCapital)
	if apperrors.Is(err, apperrors.ErrKeyNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.log.Warn().Str("value", raw).Msg("Stored capital is not numeric, ignoring")
		return 0, false, nil
	}
	return v, true, nil
}

// SetCapital stores the initial capital as a plain numeric string.
func (s *Store) SetCapital(v float64) error {
	if v <= 0 {
		return apperrors.NewValidationError("capital", v, "must be greater than zero")
	}
	if err := s.kv.Set(store.KeyCapital, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
		return apperrors.NewPersistError(store.KeyCapital, err)
	}
	return nil
}

// CurrentCapital applies the journal's total profit/loss to the stored
// initial capital.
func (s *Store) CurrentCapital() (float64, bool, error) {
	capital, ok, err := s.Capital()
	if !ok || err != nil {
		return 0, ok, err
	}
	stats := s.Stats()
	return capital * (1 + stats.TotalProfitLossPercent/100), true, nil
}

// Settings returns the free-form label settings. A missing or malformed
// entry yields an empty map.
func (s *Store) Settings() map[string]string {
	raw, err := s.kv.Get(store.KeySettings)
	if err != nil {
		return map[string]string{}
	}
	settings := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Warn().Err(err).Msg("Stored settings are malformed, ignoring")
		return map[string]string{}
	}
	return settings
}

// SaveSettings stores the label settings as a JSON object.
func (s *Store) SaveSettings(settings map[string]string) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return apperrors.NewPersistError(store.KeySettings, err)
	}
	if err := s.kv.Set(store.KeySettings, string(data)); err != nil {
		return apperrors.NewPersistError(store.KeySettings, err)
	}
	return nil
}
