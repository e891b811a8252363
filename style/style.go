// Package style composes lipgloss styles for the CLI and the player.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ytplay/ytplay/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.TerminalColor) lipgloss.Style {
	s := New()
	if fg != nil {
		s = s.Foreground(fg)
	}
	if bg != nil {
		s = s.Background(bg)
	}
	return s
}

// Fg returns a function that paints its argument with c.
func Fg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(c, nil).Render(s) }
}

// Truncate returns a function that pads or wraps its argument to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a header tag in the theme accent.
func (t Theme) Title(s string) string {
	return Colored(color.New("230"), t.Accent).Bold(true).Padding(0, 1).Render(s)
}

// ErrorTitle renders a header tag in the theme error color.
func (t Theme) ErrorTitle(s string) string {
	return Colored(color.New("230"), t.Error).Bold(true).Padding(0, 1).Render(s)
}

// Tag returns a function that renders a padded colored block.
func Tag(fg, bg lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
