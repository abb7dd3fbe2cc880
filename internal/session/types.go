package session

import (
	"github.com/zappabad/tickrush/internal/candle"
	"github.com/zappabad/tickrush/internal/engine"
)

// Phase is the session lifecycle state.
type Phase uint8

const (
	PhaseWaiting Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "WAITING"
	case PhaseRunning:
		return "RUNNING"
	case PhaseFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Gesture is a trade intent from the player. Exactly one side applies to a
// given gesture, never both.
type Gesture uint8

const (
	GestureBuy Gesture = iota
	GestureSell
)

func (g Gesture) String() string {
	switch g {
	case GestureBuy:
		return "BUY"
	case GestureSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// TradeOutcome distinguishes success from each named rejection reason.
// Rejections are result values, not errors; the session is left unchanged
// on any of them.
type TradeOutcome uint8

const (
	// TradeExecuted means the gesture mutated cash and position.
	TradeExecuted TradeOutcome = iota
	// TradeRejectedNotRunning means the gesture arrived outside a running
	// session (and was not the qualifying start gesture).
	TradeRejectedNotRunning
	// TradeRejectedInsufficientCash means a buy with cash below the minimum.
	TradeRejectedInsufficientCash
	// TradeNoPosition means a sell with nothing to liquidate; a no-op.
	TradeNoPosition
)

func (o TradeOutcome) String() string {
	switch o {
	case TradeExecuted:
		return "EXECUTED"
	case TradeRejectedNotRunning:
		return "REJECTED_NOT_RUNNING"
	case TradeRejectedInsufficientCash:
		return "REJECTED_INSUFFICIENT_CASH"
	case TradeNoPosition:
		return "NO_POSITION"
	default:
		return "UNKNOWN"
	}
}

// TradeResult reports the effect of a gesture.
type TradeResult struct {
	Outcome TradeOutcome
	// BalanceDelta is the signed cash change (negative for buys).
	BalanceDelta float64
	CashAfter    float64
	SharesAfter  float64
	// Price is the price the trade was (or would have been) executed at.
	Price float64
	// Started is true when this gesture transitioned the session from
	// waiting to running.
	Started bool
}

// TickSnapshot is the pull-based view published after each price update.
type TickSnapshot struct {
	Price    float64
	Series   []float64
	Candles  []candle.Candle
	SMAShort []float64
	SMALong  []float64
	EMA      []float64
	Regime   engine.Regime
	// VolShock is true when this tick resampled volatility.
	VolShock bool
}

// EndReport is produced exactly once, when the countdown reaches zero.
type EndReport struct {
	FinalValue     float64
	ProfitFraction float64
	ReturnPercent  float64
}

// State is a read-only snapshot of the session bookkeeping.
type State struct {
	Phase            Phase
	SecondsRemaining int
	Cash             float64
	Shares           float64
	// Equity is cash plus position marked at the current price.
	Equity          float64
	Price           float64
	PurchasePercent int
}
