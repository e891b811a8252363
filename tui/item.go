package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytplay/ytplay/icon"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/style"
)

// listItem is a playlist row.
type listItem struct {
	track   playlist.Track
	index   int
	playing bool
	theme   style.Theme
}

func (t *listItem) Title() string {
	if !t.playing {
		return t.track.Name
	}
	mark := lipgloss.NewStyle().Bold(true).Foreground(t.theme.Accent).Render(icon.Get(icon.Music))
	return fmt.Sprintf("%s %s", t.track.Name, mark)
}

func (t *listItem) Description() string {
	return t.track.URL
}

func (t *listItem) FilterValue() string {
	return t.track.Name
}
