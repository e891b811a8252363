// Package tui is the interactive player.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/session"
)

// Options wires the player to a running session.
type Options struct {
	Controller *session.Controller
	Playlist   *playlist.Store

	// Metadata is used to look up titles when adding tracks.
	Metadata session.Metadata

	Translator *i18n.Translator

	// SeekStep and VolumeStep are the increments of the arrow and +/- keys.
	SeekStep   float64
	VolumeStep int
}

// Run shows the player until the user quits or the session closes.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
