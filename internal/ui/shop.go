package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/tickrush/internal/economy"
)

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.game.Economy.Items()

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Shop):
		m.shopOpen = false
		m.shopNotice = ""
	case key.Matches(msg, m.keys.Up):
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.shopCursor < len(items)-1 {
			m.shopCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.shopCursor >= len(items) {
			break
		}
		item := items[m.shopCursor]
		if !m.game.Economy.Unlocked(item.ID) {
			switch m.game.Purchase(item.ID) {
			case economy.PurchaseExecuted:
				m.shopNotice = fmt.Sprintf("unlocked %s", item.Name)
			case economy.PurchaseInsufficientFunds:
				m.shopNotice = "not enough ☆"
			case economy.PurchaseAlreadyOwned:
				m.shopNotice = "already owned"
			case economy.PurchaseUnknownItem:
				m.shopNotice = "unknown item"
			}
			break
		}
		if err := m.game.SelectItem(item.ID); err != nil {
			m.shopNotice = err.Error()
			break
		}
		m.theme = themeFor(m.game.Economy.ActiveTheme().ID)
		m.shopNotice = fmt.Sprintf("%s selected", item.Name)
	}
	return m, nil
}

func (m Model) renderShop(width, height int) string {
	econ := m.game.Economy
	var lines []string
	lines = append(lines,
		m.theme.title().Render("shop"),
		m.theme.text().Render(fmt.Sprintf("balance ☆ %s", econ.Balance().StringFixed(2))),
		"",
	)

	active := map[string]bool{
		econ.ActiveTheme().ID:     true,
		econ.ActiveChartMode().ID: true,
	}
	for _, item := range econ.EnabledIndicators() {
		active[item.ID] = true
	}

	var lastCategory economy.Category
	for i, item := range econ.Items() {
		if i == 0 || item.Category != lastCategory {
			lines = append(lines, m.theme.muted().Render(item.Category.String()))
			lastCategory = item.Category
		}

		marker := "  "
		if active[item.ID] {
			marker = "● "
		}
		label := fmt.Sprintf("%s%-14s", marker, item.Name)
		if econ.Unlocked(item.ID) {
			label += "owned"
		} else {
			label += fmt.Sprintf("☆ %s", item.Cost.StringFixed(0))
		}

		style := m.theme.text()
		if !econ.Unlocked(item.ID) {
			style = m.theme.muted()
		}
		if i == m.shopCursor {
			style = style.Bold(true).Foreground(m.theme.Primary)
			label = "> " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, style.Render(label))
	}

	if m.shopNotice != "" {
		lines = append(lines, "", m.theme.strong().Render(m.shopNotice))
	}
	lines = append(lines, "", m.theme.muted().Render("enter: buy/select · tab: close"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.panel().Width(width).Height(height).Render(content)
}
