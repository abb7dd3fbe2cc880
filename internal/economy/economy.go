// Package economy tracks the persistent reward currency minted from finished
// sessions and the unlockable cosmetic/functional shop built on top of it.
package economy

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// rewardPerProfitUnit converts a session's profit fraction into currency:
// a +20% return mints 20 units.
var rewardPerProfitUnit = decimal.NewFromInt(100)

var (
	// ErrUnknownItem is returned when an item ID is not in the catalog.
	ErrUnknownItem = errors.New("unknown shop item")
	// ErrItemLocked is returned when selecting an item that has not been
	// purchased.
	ErrItemLocked = errors.New("shop item is not unlocked")
)

// PurchaseOutcome distinguishes a successful purchase from each named
// rejection reason. None is fatal and state is unchanged on rejection.
type PurchaseOutcome uint8

const (
	PurchaseExecuted PurchaseOutcome = iota
	PurchaseUnknownItem
	PurchaseInsufficientFunds
	PurchaseAlreadyOwned
)

func (o PurchaseOutcome) String() string {
	switch o {
	case PurchaseExecuted:
		return "EXECUTED"
	case PurchaseUnknownItem:
		return "UNKNOWN_ITEM"
	case PurchaseInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case PurchaseAlreadyOwned:
		return "ALREADY_OWNED"
	default:
		return "UNKNOWN"
	}
}

// State is the persistent slice of the economy, shaped for serialization.
// Amounts travel as decimal strings.
type State struct {
	Balance           string   `json:"balance"`
	Unlocked          []string `json:"unlocked"`
	ActiveTheme       string   `json:"active_theme"`
	ActiveChart       string   `json:"active_chart"`
	EnabledIndicators []string `json:"enabled_indicators"`
}

// Economy owns the reward balance, the unlocked sets, and the active
// selections. It lives across sessions.
type Economy struct {
	mu     sync.Mutex
	logger *zap.Logger

	catalog map[string]Item
	order   []string

	balance           decimal.Decimal
	unlocked          map[string]bool
	activeTheme       string
	activeChart       string
	enabledIndicators map[string]bool
}

// New creates an economy with the default catalog, free items unlocked and
// selected, and a zero balance.
func New(logger *zap.Logger) *Economy {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Economy{
		logger:            logger,
		catalog:           make(map[string]Item),
		balance:           decimal.Zero,
		unlocked:          make(map[string]bool),
		enabledIndicators: make(map[string]bool),
	}
	for _, item := range DefaultCatalog() {
		e.catalog[item.ID] = item
		e.order = append(e.order, item.ID)
		if item.Free() {
			e.unlocked[item.ID] = true
		}
	}
	e.activeTheme = ThemeClassic
	e.activeChart = ChartLine
	return e
}

// AwardFromSession mints currency from a finished session's profit fraction.
// Only positive profit mints; losses never subtract. Returns the delta.
func (e *Economy) AwardFromSession(profitFraction float64) decimal.Decimal {
	if profitFraction <= 0 {
		return decimal.Zero
	}

	delta := decimal.NewFromFloat(profitFraction).Mul(rewardPerProfitUnit)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.balance = e.balance.Add(delta)
	e.logger.Info("reward minted",
		zap.String("delta", delta.String()),
		zap.String("balance", e.balance.String()))
	return delta
}

// Balance returns the current reward currency.
func (e *Economy) Balance() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

// Purchase unlocks an item, deducting its cost. The operation is atomic:
// either the item joins the unlocked set and the cost is deducted, or
// neither happens.
func (e *Economy) Purchase(id string) PurchaseOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.catalog[id]
	if !ok {
		return PurchaseUnknownItem
	}
	if e.unlocked[id] {
		return PurchaseAlreadyOwned
	}
	if e.balance.LessThan(item.Cost) {
		return PurchaseInsufficientFunds
	}

	e.balance = e.balance.Sub(item.Cost)
	e.unlocked[id] = true
	e.logger.Info("item purchased",
		zap.String("item", id),
		zap.String("cost", item.Cost.String()),
		zap.String("balance", e.balance.String()))
	return PurchaseExecuted
}

// Select makes an unlocked theme or chart mode the active choice, or toggles
// an unlocked indicator overlay.
func (e *Economy) Select(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := e.catalog[id]
	if !ok {
		return ErrUnknownItem
	}
	if !e.unlocked[id] {
		return ErrItemLocked
	}

	switch item.Category {
	case CategoryTheme:
		e.activeTheme = id
	case CategoryChartMode:
		e.activeChart = id
	case CategoryIndicator:
		e.enabledIndicators[id] = !e.enabledIndicators[id]
	}
	return nil
}

// Item looks up a catalog entry.
func (e *Economy) Item(id string) (Item, bool) {
	item, ok := e.catalog[id]
	return item, ok
}

// Items returns the catalog in stable order.
func (e *Economy) Items() []Item {
	items := make([]Item, 0, len(e.order))
	for _, id := range e.order {
		items = append(items, e.catalog[id])
	}
	return items
}

// Unlocked reports whether the item has been purchased (or was free).
func (e *Economy) Unlocked(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlocked[id]
}

// ActiveTheme returns the selected theme item.
func (e *Economy) ActiveTheme() Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog[e.activeTheme]
}

// ActiveChartMode returns the selected chart-mode item.
func (e *Economy) ActiveChartMode() Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog[e.activeChart]
}

// EnabledIndicators returns the enabled indicator items in catalog order.
func (e *Economy) EnabledIndicators() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	var items []Item
	for _, id := range e.order {
		if e.enabledIndicators[id] {
			items = append(items, e.catalog[id])
		}
	}
	return items
}

// Snapshot exports the persistent state.
func (e *Economy) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		Balance:     e.balance.String(),
		ActiveTheme: e.activeTheme,
		ActiveChart: e.activeChart,
	}
	for _, id := range e.order {
		if e.unlocked[id] {
			st.Unlocked = append(st.Unlocked, id)
		}
		if e.enabledIndicators[id] {
			st.EnabledIndicators = append(st.EnabledIndicators, id)
		}
	}
	return st
}

// Restore applies a previously exported state. Unknown item IDs are skipped
// so an old profile survives catalog changes; selections of still-locked
// items fall back to the defaults.
func (e *Economy) Restore(st State) error {
	balance := decimal.Zero
	if st.Balance != "" {
		parsed, err := decimal.NewFromString(st.Balance)
		if err != nil {
			return err
		}
		balance = parsed
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.balance = balance
	for _, id := range st.Unlocked {
		if _, ok := e.catalog[id]; ok {
			e.unlocked[id] = true
		}
	}
	if e.unlocked[st.ActiveTheme] {
		e.activeTheme = st.ActiveTheme
	}
	if e.unlocked[st.ActiveChart] {
		e.activeChart = st.ActiveChart
	}
	for _, id := range st.EnabledIndicators {
		if e.unlocked[id] {
			e.enabledIndicators[id] = true
		}
	}
	return nil
}
