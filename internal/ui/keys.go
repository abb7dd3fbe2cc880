package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Buy     key.Binding
	Sell    key.Binding
	Reset   key.Binding
	Percent key.Binding
	Shop    key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Buy: key.NewBinding(
			key.WithKeys("b", "right"),
			key.WithHelp("b/→", "buy (or click right half)"),
		),
		Sell: key.NewBinding(
			key.WithKeys("s", "left"),
			key.WithHelp("s/←", "sell (or click left half)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset session"),
		),
		Percent: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle buy %"),
		),
		Shop: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "shop"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy/select item"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Buy, k.Sell, k.Reset, k.Percent, k.Shop, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Buy, k.Sell, k.Reset},
		{k.Percent, k.Shop, k.Quit},
		{k.Up, k.Down, k.Enter},
	}
}
