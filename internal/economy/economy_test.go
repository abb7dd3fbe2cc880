package economy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEconomy() *Economy {
	return New(zap.NewNop())
}

func TestAwardFromSession(t *testing.T) {
	e := newTestEconomy()

	// +20% return mints 20 units.
	delta := e.AwardFromSession(0.2)
	require.True(t, decimal.NewFromInt(20).Equal(delta), "got %s", delta)
	require.True(t, decimal.NewFromInt(20).Equal(e.Balance()))
}

func TestAwardNeverNegative(t *testing.T) {
	e := newTestEconomy()
	e.AwardFromSession(0.5)

	require.True(t, e.AwardFromSession(-0.1).IsZero(), "losses never subtract")
	require.True(t, e.AwardFromSession(0).IsZero())
	require.True(t, decimal.NewFromInt(50).Equal(e.Balance()))
}

func TestFreeItemsStartUnlocked(t *testing.T) {
	e := newTestEconomy()

	require.True(t, e.Unlocked(ThemeClassic))
	require.True(t, e.Unlocked(ChartLine))
	require.False(t, e.Unlocked(ThemeNeon))
	require.Equal(t, ThemeClassic, e.ActiveTheme().ID)
	require.Equal(t, ChartLine, e.ActiveChartMode().ID)
}

func TestPurchaseFlow(t *testing.T) {
	e := newTestEconomy()

	require.Equal(t, PurchaseInsufficientFunds, e.Purchase(ThemeNeon))
	require.True(t, e.Balance().IsZero(), "failed purchase must not touch the balance")
	require.False(t, e.Unlocked(ThemeNeon), "failed purchase must not unlock")

	e.AwardFromSession(0.6) // 60 units
	require.Equal(t, PurchaseExecuted, e.Purchase(ThemeNeon))
	require.True(t, e.Unlocked(ThemeNeon))
	require.True(t, decimal.NewFromInt(10).Equal(e.Balance()))

	require.Equal(t, PurchaseAlreadyOwned, e.Purchase(ThemeNeon))
	require.True(t, decimal.NewFromInt(10).Equal(e.Balance()), "re-purchase must not charge")

	require.Equal(t, PurchaseUnknownItem, e.Purchase("no-such-item"))
}

func TestSelectRequiresUnlock(t *testing.T) {
	e := newTestEconomy()

	require.ErrorIs(t, e.Select(ThemeNeon), ErrItemLocked)
	require.Equal(t, ThemeClassic, e.ActiveTheme().ID)
	require.ErrorIs(t, e.Select("no-such-item"), ErrUnknownItem)

	e.AwardFromSession(1) // 100 units
	require.Equal(t, PurchaseExecuted, e.Purchase(ThemeNeon))
	require.NoError(t, e.Select(ThemeNeon))
	require.Equal(t, ThemeNeon, e.ActiveTheme().ID)
}

func TestSelectChartMode(t *testing.T) {
	e := newTestEconomy()
	e.AwardFromSession(1.5) // 150

	require.Equal(t, PurchaseExecuted, e.Purchase(ChartCandle))
	require.NoError(t, e.Select(ChartCandle))
	require.Equal(t, ChartCandle, e.ActiveChartMode().ID)

	// Selecting a chart mode leaves the theme alone.
	require.Equal(t, ThemeClassic, e.ActiveTheme().ID)
}

func TestIndicatorToggle(t *testing.T) {
	e := newTestEconomy()
	e.AwardFromSession(1) // 100

	require.Equal(t, PurchaseExecuted, e.Purchase(IndicatorRSI))
	require.Empty(t, e.EnabledIndicators(), "purchase does not enable")

	require.NoError(t, e.Select(IndicatorRSI))
	enabled := e.EnabledIndicators()
	require.Len(t, enabled, 1)
	require.Equal(t, IndicatorRSI, enabled[0].ID)

	// Selecting again toggles off.
	require.NoError(t, e.Select(IndicatorRSI))
	require.Empty(t, e.EnabledIndicators())
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	e := newTestEconomy()
	e.AwardFromSession(3) // 300
	require.Equal(t, PurchaseExecuted, e.Purchase(ThemeNeon))
	require.Equal(t, PurchaseExecuted, e.Purchase(ChartDense))
	require.Equal(t, PurchaseExecuted, e.Purchase(IndicatorRSI))
	require.NoError(t, e.Select(ThemeNeon))
	require.NoError(t, e.Select(ChartDense))
	require.NoError(t, e.Select(IndicatorRSI))

	restored := newTestEconomy()
	require.NoError(t, restored.Restore(e.Snapshot()))

	require.True(t, e.Balance().Equal(restored.Balance()))
	require.True(t, restored.Unlocked(ThemeNeon))
	require.True(t, restored.Unlocked(ChartDense))
	require.Equal(t, ThemeNeon, restored.ActiveTheme().ID)
	require.Equal(t, ChartDense, restored.ActiveChartMode().ID)
	require.Len(t, restored.EnabledIndicators(), 1)
}

func TestRestoreSkipsUnknownItems(t *testing.T) {
	e := newTestEconomy()

	err := e.Restore(State{
		Balance:     "12.5",
		Unlocked:    []string{"retired-item", ThemeNeon},
		ActiveTheme: "retired-item",
		ActiveChart: ChartCandle, // not unlocked: selection falls back
	})

	require.NoError(t, err)
	require.True(t, decimal.NewFromFloat(12.5).Equal(e.Balance()))
	require.True(t, e.Unlocked(ThemeNeon))
	require.Equal(t, ThemeClassic, e.ActiveTheme().ID)
	require.Equal(t, ChartLine, e.ActiveChartMode().ID)
}

func TestRestoreBadBalance(t *testing.T) {
	e := newTestEconomy()
	require.Error(t, e.Restore(State{Balance: "not-a-number"}))
}

func TestCatalogCategories(t *testing.T) {
	counts := map[Category]int{}
	for _, item := range DefaultCatalog() {
		counts[item.Category]++
	}
	require.GreaterOrEqual(t, counts[CategoryTheme], 2)
	require.GreaterOrEqual(t, counts[CategoryChartMode], 3)
	require.GreaterOrEqual(t, counts[CategoryIndicator], 2)
}

func TestChartModeItemsCarryTimerPayload(t *testing.T) {
	for _, item := range DefaultCatalog() {
		if item.Category != CategoryChartMode {
			continue
		}
		require.Positive(t, item.TickInterval, "chart mode %s needs a cadence", item.ID)
		require.Positive(t, item.HistoryLimit, "chart mode %s needs a history cap", item.ID)
	}
}
