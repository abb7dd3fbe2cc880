// Package ui is the bubbletea presentation layer. It consumes game events
// and renders them; every decision (trade acceptance, pricing, unlocks)
// lives behind the game facade.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/tickrush/internal/economy"
	"github.com/zappabad/tickrush/internal/game"
	"github.com/zappabad/tickrush/internal/indicator"
	"github.com/zappabad/tickrush/internal/session"
)

const (
	frameInterval  = 100 * time.Millisecond
	floatLifetime  = 1500 * time.Millisecond
	bannerLifetime = 2 * time.Second
)

// gameEventMsg wraps an event from the game loop.
type gameEventMsg struct {
	event game.Event
}

// frameMsg drives float/banner expiry.
type frameMsg time.Time

// floatText is a fire-and-forget feedback item; it expires on its own and
// has no effect on the game.
type floatText struct {
	text  string
	style lipgloss.Style
	until time.Time
}

// Model is the main bubbletea model.
type Model struct {
	game  *game.Game
	theme Theme
	keys  keyMap
	help  help.Model

	width  int
	height int

	snap  session.TickSnapshot
	state session.State

	banner      string
	bannerUntil time.Time
	floats      []floatText
	lastEnd     *game.SessionEndEvent

	shopOpen   bool
	shopCursor int
	shopNotice string
}

// NewModel creates the UI over a running game.
func NewModel(g *game.Game) Model {
	return Model{
		game:  g,
		theme: themeFor(g.Economy.ActiveTheme().ID),
		keys:  defaultKeyMap(),
		help:  help.New(),
		state: g.Session.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenForEvents(), frameTick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case gameEventMsg:
		m.applyEvent(msg.event)
		return m, m.listenForEvents()

	case frameMsg:
		now := time.Time(msg)
		kept := m.floats[:0]
		for _, f := range m.floats {
			if f.until.After(now) {
				kept = append(kept, f)
			}
		}
		m.floats = kept
		return m, frameTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shopOpen {
		return m.handleShopKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Buy):
		m.trade(session.GestureBuy)
	case key.Matches(msg, m.keys.Sell):
		m.trade(session.GestureSell)
	case key.Matches(msg, m.keys.Reset):
		m.game.ResetSession()
		m.lastEnd = nil
		m.state = m.game.Session.Snapshot()
		m.pushFloat("session reset", m.theme.muted())
	case key.Matches(msg, m.keys.Percent):
		next := m.state.PurchasePercent + 10
		if next > 100 {
			next = 10
		}
		if err := m.game.SetPurchasePercent(next); err == nil {
			m.state = m.game.Session.Snapshot()
			m.pushFloat(fmt.Sprintf("buy size %d%%", next), m.theme.text())
		}
	case key.Matches(msg, m.keys.Shop):
		m.shopOpen = true
		m.shopNotice = ""
	}
	return m, nil
}

// handleMouse keeps the original spatial convention: a press on the right
// half of the surface is a buy, the left half a sell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.shopOpen || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= m.width/2 {
		m.trade(session.GestureBuy)
	} else {
		m.trade(session.GestureSell)
	}
	return m, nil
}

func (m *Model) trade(g session.Gesture) {
	res := m.game.Trade(g)
	switch res.Outcome {
	case session.TradeExecuted:
		style := m.theme.up()
		sign := "+"
		if res.BalanceDelta < 0 {
			style = m.theme.down()
			sign = "-"
		}
		m.pushFloat(fmt.Sprintf("%s %s%.2f", g, sign, abs(res.BalanceDelta)), style)
		if res.Started {
			m.lastEnd = nil
		}
	case session.TradeRejectedNotRunning:
		m.pushFloat("session not running", m.theme.muted())
	case session.TradeRejectedInsufficientCash:
		m.pushFloat("not enough cash", m.theme.down())
	case session.TradeNoPosition:
		m.pushFloat("nothing to sell", m.theme.muted())
	}
	m.state = m.game.Session.Snapshot()
}

func (m *Model) applyEvent(ev game.Event) {
	switch ev := ev.(type) {
	case game.TickEvent:
		m.snap = ev.Snapshot
		m.state = ev.State
	case game.CountdownEvent:
		m.state = m.game.Session.Snapshot()
	case game.ShockEvent:
		m.banner = fmt.Sprintf("VOLATILITY SHOCK  σ=%.4f", ev.Volatility)
		m.bannerUntil = time.Now().Add(bannerLifetime)
	case game.SessionEndEvent:
		end := ev
		m.lastEnd = &end
		m.state = m.game.Session.Snapshot()
	case game.TradeEvent:
		// Feedback is pushed synchronously from trade(); events from the
		// game loop are redundant for this UI instance.
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := m.theme.title().Render("tickrush")
	banner := ""
	if m.banner != "" && m.bannerUntil.After(time.Now()) {
		banner = m.theme.banner().Render(m.banner)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", banner)

	bodyHeight := m.height - 5
	if bodyHeight < 8 {
		bodyHeight = 8
	}
	hudWidth := m.width / 3
	if hudWidth < 24 {
		hudWidth = 24
	}
	chartWidth := m.width - hudWidth - 4

	var left string
	if m.shopOpen {
		left = m.renderShop(chartWidth, bodyHeight)
	} else {
		left = m.renderChart(chartWidth, bodyHeight)
	}
	right := m.renderHUD(hudWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	floats := ""
	for _, f := range m.floats {
		floats += f.style.Render(f.text) + "  "
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		floats,
		m.help.View(m.keys),
	)
}

func (m Model) renderChart(width, height int) string {
	var content string
	mode := m.game.Economy.ActiveChartMode()
	switch mode.ID {
	case economy.ChartLine:
		content = renderLineChart(m.theme, m.snap.Series, width-2, height-2)
	default:
		content = renderCandleChart(m.theme, m.snap.Candles, width-2, height-2)
	}
	return m.theme.panel().Width(width).Height(height).Render(content)
}

func (m Model) renderHUD(width, height int) string {
	st := m.state
	var lines []string

	phaseStyle := m.theme.muted()
	if st.Phase == session.PhaseRunning {
		phaseStyle = m.theme.up()
	}
	lines = append(lines,
		phaseStyle.Render(st.Phase.String()),
		m.theme.strong().Render(fmt.Sprintf("⏱ %02ds", st.SecondsRemaining)),
		"",
		m.theme.text().Render(fmt.Sprintf("price   %.2f", st.Price)),
		m.theme.text().Render(fmt.Sprintf("cash    %.2f", st.Cash)),
		m.theme.text().Render(fmt.Sprintf("shares  %.4f", st.Shares)),
		m.theme.strong().Render(fmt.Sprintf("equity  %.2f", st.Equity)),
		m.theme.muted().Render(fmt.Sprintf("buy size %d%%", st.PurchasePercent)),
		"",
		m.theme.text().Render(fmt.Sprintf("☆ %s", m.game.Economy.Balance().StringFixed(2))),
	)

	if len(m.snap.SMAShort) > 0 {
		lines = append(lines, m.theme.muted().Render(
			fmt.Sprintf("sma5  %.2f", m.snap.SMAShort[len(m.snap.SMAShort)-1])))
	}
	if len(m.snap.SMALong) > 0 {
		lines = append(lines, m.theme.muted().Render(
			fmt.Sprintf("sma20 %.2f", m.snap.SMALong[len(m.snap.SMALong)-1])))
	}
	if len(m.snap.EMA) > 0 {
		lines = append(lines, m.theme.muted().Render(
			fmt.Sprintf("ema10 %.2f", m.snap.EMA[len(m.snap.EMA)-1])))
	}
	for _, item := range m.game.Economy.EnabledIndicators() {
		switch item.ID {
		case economy.IndicatorRSI:
			if rsi := indicator.RSI(m.snap.Series, item.Period); len(rsi) > 0 {
				lines = append(lines, m.theme.muted().Render(fmt.Sprintf("rsi%d %.1f", item.Period, rsi[len(rsi)-1])))
			}
		case economy.IndicatorMAC:
			if macd := indicator.MACD(m.snap.Series); len(macd) > 0 {
				lines = append(lines, m.theme.muted().Render(fmt.Sprintf("macd %.3f", macd[len(macd)-1])))
			}
		}
	}

	if m.lastEnd != nil {
		style := m.theme.up()
		if m.lastEnd.ReturnPercent < 0 {
			style = m.theme.down()
		}
		lines = append(lines, "",
			m.theme.strong().Render("session over"),
			style.Render(fmt.Sprintf("final  %.2f (%+.1f%%)", m.lastEnd.FinalValue, m.lastEnd.ReturnPercent)),
			m.theme.text().Render(fmt.Sprintf("earned ☆ %s", m.lastEnd.CurrencyEarned.StringFixed(2))),
			m.theme.muted().Render("press r to play again"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.panel().Width(width).Height(height).Render(content)
}

func (m *Model) pushFloat(text string, style lipgloss.Style) {
	m.floats = append(m.floats, floatText{
		text:  text,
		style: style,
		until: time.Now().Add(floatLifetime),
	})
}

func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return gameEventMsg{event: <-m.game.Events()}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Run starts the bubbletea program over the given game.
func Run(g *game.Game) error {
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
