package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/tickrush/internal/economy"
)

// Theme is a render palette. Themes are pure presentation: the economy only
// tells us which one is unlocked and active.
type Theme struct {
	Primary   lipgloss.Color
	Up        lipgloss.Color
	Down      lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color
	BannerBg  lipgloss.Color
	BannerTxt lipgloss.Color
}

var themes = map[string]Theme{
	economy.ThemeClassic: {
		Primary:   lipgloss.Color("#7C3AED"),
		Up:        lipgloss.Color("#10B981"),
		Down:      lipgloss.Color("#EF4444"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#374151"),
		BannerBg:  lipgloss.Color("#F59E0B"),
		BannerTxt: lipgloss.Color("#111827"),
	},
	economy.ThemeNeon: {
		Primary:   lipgloss.Color("#F0F"),
		Up:        lipgloss.Color("#0F0"),
		Down:      lipgloss.Color("#F33"),
		Muted:     lipgloss.Color("#555"),
		Text:      lipgloss.Color("#EEE"),
		Border:    lipgloss.Color("#0FF"),
		BannerBg:  lipgloss.Color("#FF0"),
		BannerTxt: lipgloss.Color("#000"),
	},
	economy.ThemeSolar: {
		Primary:   lipgloss.Color("#B58900"),
		Up:        lipgloss.Color("#859900"),
		Down:      lipgloss.Color("#DC322F"),
		Muted:     lipgloss.Color("#586E75"),
		Text:      lipgloss.Color("#FDF6E3"),
		Border:    lipgloss.Color("#073642"),
		BannerBg:  lipgloss.Color("#CB4B16"),
		BannerTxt: lipgloss.Color("#FDF6E3"),
	},
}

// themeFor resolves a theme item ID, falling back to classic.
func themeFor(id string) Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[economy.ThemeClassic]
}

func (t Theme) panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
}

func (t Theme) up() lipgloss.Style     { return lipgloss.NewStyle().Foreground(t.Up) }
func (t Theme) down() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.Down) }
func (t Theme) muted() lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.Muted) }
func (t Theme) text() lipgloss.Style   { return lipgloss.NewStyle().Foreground(t.Text) }
func (t Theme) strong() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(t.Text) }

func (t Theme) banner() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Background(t.BannerBg).Foreground(t.BannerTxt).Padding(0, 1)
}
