package economy

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category tags a shop item. Each item belongs to exactly one category and
// the effect payload depends on it.
type Category uint8

const (
	// CategoryTheme recolors the UI; one theme is active at a time.
	CategoryTheme Category = iota
	// CategoryChartMode changes how the chart renders, how often the price
	// ticks, and how much history is retained; one mode is active at a time.
	CategoryChartMode
	// CategoryIndicator enables an extra chart overlay; any unlocked subset
	// may be enabled at once.
	CategoryIndicator
)

func (c Category) String() string {
	switch c {
	case CategoryTheme:
		return "THEME"
	case CategoryChartMode:
		return "CHART_MODE"
	case CategoryIndicator:
		return "INDICATOR"
	default:
		return "UNKNOWN"
	}
}

// Item is one purchasable unlock.
type Item struct {
	ID       string
	Name     string
	Category Category
	Cost     decimal.Decimal

	// Chart-mode payload: tick cadence and retained history.
	TickInterval time.Duration
	HistoryLimit int

	// Indicator payload: lookback period (zero for period-less overlays).
	Period int
}

// Free reports whether the item costs nothing and starts unlocked.
func (i Item) Free() bool {
	return i.Cost.IsZero()
}

// Well-known item IDs.
const (
	ThemeClassic = "theme-classic"
	ThemeNeon    = "theme-neon"
	ThemeSolar   = "theme-solar"
	ChartLine    = "chart-line"
	ChartCandle  = "chart-candle"
	ChartDense   = "chart-dense"
	IndicatorRSI = "ind-rsi"
	IndicatorMAC = "ind-macd"
)

// DefaultCatalog returns the stock shop. The free theme and chart mode are
// the initial selections.
func DefaultCatalog() []Item {
	return []Item{
		{ID: ThemeClassic, Name: "Classic", Category: CategoryTheme, Cost: decimal.Zero},
		{ID: ThemeNeon, Name: "Neon", Category: CategoryTheme, Cost: decimal.NewFromInt(50)},
		{ID: ThemeSolar, Name: "Solar", Category: CategoryTheme, Cost: decimal.NewFromInt(75)},
		{
			ID: ChartLine, Name: "Line chart", Category: CategoryChartMode,
			Cost:         decimal.Zero,
			TickInterval: 400 * time.Millisecond,
			HistoryLimit: 120,
		},
		{
			ID: ChartCandle, Name: "Candle chart", Category: CategoryChartMode,
			Cost:         decimal.NewFromInt(100),
			TickInterval: 400 * time.Millisecond,
			HistoryLimit: 150,
		},
		{
			ID: ChartDense, Name: "Dense chart", Category: CategoryChartMode,
			Cost:         decimal.NewFromInt(150),
			TickInterval: 150 * time.Millisecond,
			HistoryLimit: 240,
		},
		{ID: IndicatorRSI, Name: "RSI overlay", Category: CategoryIndicator, Cost: decimal.NewFromInt(60), Period: 14},
		{ID: IndicatorMAC, Name: "MACD overlay", Category: CategoryIndicator, Cost: decimal.NewFromInt(80)},
	}
}
