// Package session implements the game-session state machine: it owns the
// price series, the regime, the player's cash and position, and the countdown
// clock. Every exported method is a single atomic transition; interleaving is
// only possible across transitions, never within one.
package session

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/zappabad/tickrush/internal/candle"
	"github.com/zappabad/tickrush/internal/engine"
	"github.com/zappabad/tickrush/internal/indicator"
)

// ErrInvalidPercent is returned for a purchase percent outside 10..100 or not
// a multiple of 10.
var ErrInvalidPercent = errors.New("purchase percent must be in [10,100] in steps of 10")

// Session is the state machine governing one round of play.
type Session struct {
	mu     sync.Mutex
	cfg    Config
	logger *zap.Logger

	src    engine.Source
	regime *engine.RegimeController

	series       []float64
	historyLimit int

	cash             float64
	shares           float64
	purchasePercent  int
	secondsRemaining int
	phase            Phase
}

// New creates a session in the waiting phase with a freshly seeded series.
func New(cfg Config, src engine.Source, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		src = engine.NewTimeSource()
	}

	s := &Session{
		cfg:             cfg,
		logger:          logger,
		src:             src,
		historyLimit:    cfg.HistoryLimit,
		purchasePercent: cfg.PurchasePercent,
	}
	s.regime = engine.NewRegimeController(src, engine.Regime{
		Drift:      cfg.InitialDrift,
		Volatility: cfg.InitialVolatility,
	})
	s.initLocked()
	return s
}

// initLocked returns every session field to its initial value and re-seeds
// the price series with the same rule a fresh session uses.
func (s *Session) initLocked() {
	s.regime.Reset()
	s.series = engine.GenerateInitialSeries(
		s.src, s.cfg.InitialSeriesLen, s.cfg.StartPrice, s.cfg.InitialDrift, s.cfg.InitialVolatility)
	s.truncateLocked()
	s.cash = s.cfg.StartingBalance
	s.shares = 0
	s.secondsRemaining = 0
	s.phase = PhaseWaiting
}

// Tick advances the regime and extends the price series by one sample. It
// runs in every phase; the market keeps moving while the player waits.
func (s *Session) Tick() TickSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	shock := s.regime.Step()
	reg := s.regime.Current()
	next := engine.NextPrice(s.src, s.series[len(s.series)-1], reg.Drift, reg.Volatility)
	s.series = append(s.series, next)
	s.truncateLocked()

	return s.tickSnapshotLocked(shock)
}

// CountdownTick decrements the session clock by one second, floored at zero.
// The tick that reaches zero finalizes the session in the same transition:
// the position is liquidated into cash and the end report is returned.
// Outside the running phase it is a no-op returning nil.
func (s *Session) CountdownTick() *EndReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return nil
	}
	if s.secondsRemaining > 0 {
		s.secondsRemaining--
	}
	if s.secondsRemaining > 0 {
		return nil
	}

	price := s.series[len(s.series)-1]
	finalValue := s.cash + s.shares*price
	s.cash += s.shares * price
	s.shares = 0
	s.phase = PhaseFinished

	pf := (finalValue - s.cfg.StartingBalance) / s.cfg.StartingBalance
	s.logger.Info("session finished",
		zap.Float64("final_value", finalValue),
		zap.Float64("profit_fraction", pf))

	return &EndReport{
		FinalValue:     finalValue,
		ProfitFraction: pf,
		ReturnPercent:  pf * 100,
	}
}

// Trade applies a player gesture. A buy gesture while waiting is the
// qualifying start gesture: it starts the countdown and then executes as a
// normal buy. Any other gesture outside the running phase is rejected with
// no side effects.
func (s *Session) Trade(g Gesture) TradeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := s.series[len(s.series)-1]
	res := TradeResult{Price: price, CashAfter: s.cash, SharesAfter: s.shares}

	switch s.phase {
	case PhaseFinished:
		res.Outcome = TradeRejectedNotRunning
		return res
	case PhaseWaiting:
		if g != GestureBuy {
			res.Outcome = TradeRejectedNotRunning
			return res
		}
		if s.cash < s.cfg.MinBuyCash {
			// A rejected gesture must leave the session untouched, so the
			// clock does not start either.
			res.Outcome = TradeRejectedInsufficientCash
			return res
		}
		s.phase = PhaseRunning
		s.secondsRemaining = s.cfg.SessionLength
		res.Started = true
		s.logger.Info("session started", zap.Int("seconds", s.secondsRemaining))
	}

	switch g {
	case GestureBuy:
		if s.cash < s.cfg.MinBuyCash {
			res.Outcome = TradeRejectedInsufficientCash
			return res
		}
		spend := s.cash * float64(s.purchasePercent) / 100
		s.cash -= spend
		s.shares += spend / price
		res.Outcome = TradeExecuted
		res.BalanceDelta = -spend
	case GestureSell:
		if s.shares == 0 {
			res.Outcome = TradeNoPosition
			return res
		}
		proceeds := s.shares * price
		s.cash += proceeds
		s.shares = 0
		res.Outcome = TradeExecuted
		res.BalanceDelta = proceeds
	}

	res.CashAfter = s.cash
	res.SharesAfter = s.shares
	s.logger.Info("trade executed",
		zap.Stringer("gesture", g),
		zap.Float64("price", price),
		zap.Float64("cash", s.cash),
		zap.Float64("shares", s.shares))
	return res
}

// Reset returns the session to the waiting phase from any phase: balance,
// position, clock, regime, and series all go back to their initial values.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initLocked()
	s.logger.Info("session reset")
}

// SetPurchasePercent sets the fraction of cash a buy spends. Valid values are
// 10..100 in steps of 10.
func (s *Session) SetPurchasePercent(p int) error {
	if p < 10 || p > 100 || p%10 != 0 {
		return ErrInvalidPercent
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchasePercent = p
	return nil
}

// SetHistoryLimit caps the retained price series. The active chart mode
// decides the cap; a smaller cap truncates immediately.
func (s *Session) SetHistoryLimit(n int) {
	if n <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyLimit = n
	s.truncateLocked()
}

// Snapshot returns the current bookkeeping for display.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	price := s.series[len(s.series)-1]
	return State{
		Phase:            s.phase,
		SecondsRemaining: s.secondsRemaining,
		Cash:             s.cash,
		Shares:           s.shares,
		Equity:           s.cash + s.shares*price,
		Price:            price,
		PurchasePercent:  s.purchasePercent,
	}
}

// Series returns a copy of the retained price series.
func (s *Session) Series() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.series...)
}

func (s *Session) truncateLocked() {
	if s.historyLimit > 0 && len(s.series) > s.historyLimit {
		s.series = s.series[len(s.series)-s.historyLimit:]
	}
}

// tickSnapshotLocked derives the read-only views from the current series.
// The series is copied so the UI never observes a later mutation.
func (s *Session) tickSnapshotLocked(shock bool) TickSnapshot {
	series := append([]float64(nil), s.series...)
	return TickSnapshot{
		Price:    series[len(series)-1],
		Series:   series,
		Candles:  candle.Build(series, s.cfg.BucketSize),
		SMAShort: indicator.SMA(series, s.cfg.SMAShortWindow),
		SMALong:  indicator.SMA(series, s.cfg.SMALongWindow),
		EMA:      indicator.EMA(series, s.cfg.EMAWindow),
		Regime:   s.regime.Current(),
		VolShock: shock,
	}
}
