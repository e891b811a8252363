package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/key"
)

// Theme is the set of colors the player is drawn with.
type Theme struct {
	Name      string
	Text      lipgloss.Color
	Subtext   lipgloss.Color
	Faint     lipgloss.Color
	Surface   lipgloss.Color
	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	Dark = Theme{
		Name:      "dark",
		Text:      lipgloss.Color("#cdd6f4"),
		Subtext:   lipgloss.Color("#a6adc8"),
		Faint:     lipgloss.Color("#6c7086"),
		Surface:   lipgloss.Color("#313244"),
		Accent:    lipgloss.Color("#cba6f7"),
		Secondary: lipgloss.Color("#b4befe"),
		Success:   lipgloss.Color("#a6e3a1"),
		Warning:   lipgloss.Color("#f9e2af"),
		Error:     lipgloss.Color("#f38ba8"),
	}

	Light = Theme{
		Name:      "light",
		Text:      lipgloss.Color("#4c4f69"),
		Subtext:   lipgloss.Color("#6c6f85"),
		Faint:     lipgloss.Color("#9ca0b0"),
		Surface:   lipgloss.Color("#ccd0da"),
		Accent:    lipgloss.Color("#8839ef"),
		Secondary: lipgloss.Color("#7287fd"),
		Success:   lipgloss.Color("#40a02b"),
		Warning:   lipgloss.Color("#df8e1d"),
		Error:     lipgloss.Color("#d20f39"),
	}
)

// Themes lists the names accepted by ui.theme.
func Themes() []string {
	return []string{Dark.Name, Light.Name}
}

// ThemeByName returns the named theme, falling back to Dark.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, Light.Name) {
		return Light
	}
	return Dark
}

// Current returns the theme from the configuration.
func Current() Theme {
	return ThemeByName(viper.GetString(key.UITheme))
}
