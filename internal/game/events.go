package game

import (
	"github.com/shopspring/decimal"

	"github.com/zappabad/tickrush/internal/session"
)

// Event is the union of everything the game publishes to the presentation
// layer. The UI only consumes; it never decides.
type Event interface {
	Type() string
}

// TickEvent carries the derived views after one price update, plus the
// session bookkeeping for the HUD.
type TickEvent struct {
	Snapshot session.TickSnapshot
	State    session.State
}

func (TickEvent) Type() string { return "tick" }

// TradeEvent reports the result of a player gesture.
type TradeEvent struct {
	Gesture session.Gesture
	Result  session.TradeResult
}

func (TradeEvent) Type() string { return "trade" }

// ShockEvent fires when the regime resamples volatility; the UI shows it as
// a banner.
type ShockEvent struct {
	Volatility float64
}

func (ShockEvent) Type() string { return "shock" }

// CountdownEvent carries the once-per-second clock update.
type CountdownEvent struct {
	SecondsRemaining int
}

func (CountdownEvent) Type() string { return "countdown" }

// SessionEndEvent fires exactly once when the countdown reaches zero.
type SessionEndEvent struct {
	FinalValue     float64
	ReturnPercent  float64
	CurrencyEarned decimal.Decimal
}

func (SessionEndEvent) Type() string { return "session_end" }
