package session

// Config holds the fixed parameters of a trading session.
type Config struct {
	// SessionLength is the countdown length in seconds.
	SessionLength int
	// StartingBalance is the cash a fresh session begins with.
	StartingBalance float64
	// MinBuyCash is the minimum cash required for a buy to execute.
	MinBuyCash float64
	// PurchasePercent is the default fraction of cash spent per buy, in
	// whole percent (10..100, step 10).
	PurchasePercent int
	// BucketSize is the number of ticks aggregated into one candle.
	BucketSize int
	// SMAShortWindow and SMALongWindow are the two SMA overlays.
	SMAShortWindow int
	SMALongWindow  int
	// EMAWindow is the EMA overlay window.
	EMAWindow int
	// InitialSeriesLen is how many ticks the session pre-seeds before play.
	InitialSeriesLen int
	// StartPrice seeds the price series.
	StartPrice float64
	// InitialDrift and InitialVolatility seed the regime.
	InitialDrift      float64
	InitialVolatility float64
	// HistoryLimit caps the retained price series; the active chart mode
	// may override it at runtime.
	HistoryLimit int
}

// DefaultConfig returns a Config with the standard game parameters.
func DefaultConfig() Config {
	return Config{
		SessionLength:     60,
		StartingBalance:   100,
		MinBuyCash:        10,
		PurchasePercent:   50,
		BucketSize:        5,
		SMAShortWindow:    5,
		SMALongWindow:     20,
		EMAWindow:         10,
		InitialSeriesLen:  50,
		StartPrice:        100,
		InitialDrift:      0,
		InitialVolatility: 0.02,
		HistoryLimit:      120,
	}
}
