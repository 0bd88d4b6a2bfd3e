// Package ui is the interactive terminal client: a list screen with the
// new/hot/top tabs and a detail screen for a single post's link.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors the styles are built from.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Tab        lipgloss.Color
	IsDark     bool
}

// DarkTheme is used unless the config asks for light.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#007BFF"),
		Tab:        lipgloss.Color("#2a3850"),
		IsDark:     true,
	}
}

// LightTheme mirrors DarkTheme for light terminals.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#007BFF"),
		Tab:        lipgloss.Color("#F0F0F0"),
		IsDark:     false,
	}
}

// ThemeByName maps the config value to a theme.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles are the rendered lipgloss styles shared by the screens.
type Styles struct {
	Theme Theme

	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Empty     lipgloss.Style
	Spinner   lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme Theme) Styles {
	tab := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Foreground(theme.Foreground).
		Background(theme.Tab)

	return Styles{
		Theme:     theme,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground).MarginBottom(1),
		Tab:       tab,
		ActiveTab: tab.Foreground(lipgloss.Color("#FFFFFF")).Background(theme.Accent),
		Empty:     lipgloss.NewStyle().Foreground(theme.Muted).MarginTop(1),
		Spinner:   lipgloss.NewStyle().Foreground(theme.Accent),
		Help:      lipgloss.NewStyle().Foreground(theme.Muted),
		Status:    lipgloss.NewStyle().Foreground(theme.Accent),
	}
}

// DefaultStyles returns the dark styles.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
