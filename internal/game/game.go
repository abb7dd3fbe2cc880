// Package game wires the session, the economy, and the progress store
// together and drives them from two timers: the price tick (cadence set by
// the active chart mode) and the one-second countdown. A single run loop owns
// both tickers, so a chart-mode change swaps the price ticker in place and
// duplicate timers cannot accumulate.
package game

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/tickrush/internal/economy"
	"github.com/zappabad/tickrush/internal/engine"
	"github.com/zappabad/tickrush/internal/session"
	"github.com/zappabad/tickrush/internal/storage/progress"
)

// Game owns the game subsystems and manages their lifecycle.
type Game struct {
	Session *session.Session
	Economy *economy.Economy

	cfg    Config
	logger *zap.Logger
	store  *progress.Store

	events        chan Event
	droppedEvents atomic.Int64

	setMode chan economy.Item

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a Game with the given configuration, restores persisted
// progress when a profile directory is configured, and starts the run loop.
func New(cfg Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultConfig().EventBuffer
	}

	econ := economy.New(logger)

	var store *progress.Store
	if cfg.ProfileDir != "" {
		var err error
		store, err = progress.NewStore(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
		st, err := store.Load()
		if err != nil {
			logger.Warn("failed to load progress, starting fresh", zap.Error(err))
		} else if st != nil {
			if err := econ.Restore(*st); err != nil {
				logger.Warn("failed to restore progress, starting fresh", zap.Error(err))
			}
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mode := econ.ActiveChartMode()
	sess := session.New(cfg.Session, engine.NewSource(seed), logger)
	sess.SetHistoryLimit(mode.HistoryLimit)

	g := &Game{
		Session: sess,
		Economy: econ,
		cfg:     cfg,
		logger:  logger,
		store:   store,
		events:  make(chan Event, cfg.EventBuffer),
		setMode: make(chan economy.Item, 1),
		closed:  make(chan struct{}),
	}

	g.wg.Add(1)
	go g.run(mode)
	return g, nil
}

func (g *Game) run(mode economy.Item) {
	defer g.wg.Done()

	priceTicker := time.NewTicker(mode.TickInterval)
	defer func() { priceTicker.Stop() }()
	countdown := time.NewTicker(time.Second)
	defer countdown.Stop()

	for {
		select {
		case <-g.closed:
			return

		case m := <-g.setMode:
			// Swap the price timer for the new cadence; the old one is
			// stopped before the new one starts ticking.
			priceTicker.Stop()
			priceTicker = time.NewTicker(m.TickInterval)
			g.Session.SetHistoryLimit(m.HistoryLimit)
			g.logger.Info("chart mode changed",
				zap.String("mode", m.ID),
				zap.Duration("tick_interval", m.TickInterval),
				zap.Int("history_limit", m.HistoryLimit))

		case <-priceTicker.C:
			snap := g.Session.Tick()
			g.publish(TickEvent{Snapshot: snap, State: g.Session.Snapshot()})
			if snap.VolShock {
				g.publish(ShockEvent{Volatility: snap.Regime.Volatility})
			}

		case <-countdown.C:
			report := g.Session.CountdownTick()
			state := g.Session.Snapshot()
			g.publish(CountdownEvent{SecondsRemaining: state.SecondsRemaining})
			if report == nil {
				continue
			}
			earned := g.Economy.AwardFromSession(report.ProfitFraction)
			g.persist()
			g.publish(SessionEndEvent{
				FinalValue:     report.FinalValue,
				ReturnPercent:  report.ReturnPercent,
				CurrencyEarned: earned,
			})
		}
	}
}

// Trade applies a player gesture and publishes the result.
func (g *Game) Trade(gesture session.Gesture) session.TradeResult {
	res := g.Session.Trade(gesture)
	g.publish(TradeEvent{Gesture: gesture, Result: res})
	return res
}

// ResetSession returns the session to its initial waiting state. Price
// ticking continues; the countdown is inert outside the running phase.
func (g *Game) ResetSession() {
	g.Session.Reset()
}

// SetPurchasePercent forwards to the session.
func (g *Game) SetPurchasePercent(p int) error {
	return g.Session.SetPurchasePercent(p)
}

// Purchase buys a shop item and persists progress on success.
func (g *Game) Purchase(id string) economy.PurchaseOutcome {
	outcome := g.Economy.Purchase(id)
	if outcome == economy.PurchaseExecuted {
		g.persist()
	}
	return outcome
}

// SelectItem activates an unlocked item. Selecting a chart mode also swaps
// the price-tick cadence and history cap.
func (g *Game) SelectItem(id string) error {
	if err := g.Economy.Select(id); err != nil {
		return err
	}

	item, _ := g.Economy.Item(id)
	if item.Category == economy.CategoryChartMode {
		select {
		case g.setMode <- item:
		case <-g.closed:
		}
	}
	g.persist()
	return nil
}

// Events returns the channel of events consumed by the presentation layer.
func (g *Game) Events() <-chan Event {
	return g.events
}

// DroppedEvents returns the count of events dropped on overflow.
func (g *Game) DroppedEvents() int64 {
	return g.droppedEvents.Load()
}

// Close stops the timers, persists progress, and releases the store.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		close(g.closed)
	})
	g.wg.Wait()

	g.persist()
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			g.logger.Warn("failed to close progress store", zap.Error(err))
		}
	}
}

func (g *Game) publish(ev Event) {
	if g.cfg.DropEvents {
		select {
		case g.events <- ev:
		default:
			g.droppedEvents.Add(1)
		}
		return
	}

	select {
	case g.events <- ev:
	case <-g.closed:
	}
}

func (g *Game) persist() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.Economy.Snapshot()); err != nil {
		g.logger.Warn("failed to persist progress", zap.Error(err))
	}
}
