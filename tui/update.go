package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/internal/ui"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/session"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.waitForEvent(), b.spinnerC.Tick)
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, tea.Batch(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case session.StateChange, session.TrackChange:
		return b, tea.Batch(append(cmds, b.refresh(), b.waitForEvent())...)
	case refreshMsg:
		return b, tea.Batch(append(cmds, b.refresh())...)
	case snapshotMsg:
		return b, tea.Batch(append(cmds, b.applySnapshot(msg.snapshot))...)
	case session.ProgressChange:
		b.snapshot.Position = msg.Position
		b.snapshot.Duration = msg.Duration
		return b, tea.Batch(append(cmds, b.waitForEvent())...)
	case session.SettingsChange:
		b.snapshot.PlayMode = msg.PlayMode
		b.snapshot.Shuffle = msg.Shuffle
		b.snapshot.Volume = msg.Volume
		b.snapshot.Muted = msg.Muted
		return b, tea.Batch(append(cmds, b.waitForEvent())...)
	case session.Notice:
		notice := ui.Notify(b.describe(msg.Err), ui.LevelError)
		return b, tea.Batch(append(cmds, notice, b.waitForEvent())...)
	case sessionDoneMsg:
		return b, tea.Quit
	case titleMsg:
		return b, tea.Batch(append(cmds, b.onTitle(msg))...)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case playlistState:
		cmd = b.updatePlaylist(msg)
	case addState:
		cmd = b.updateAdd(msg)
	case confirmState:
		cmd = b.updateConfirm(msg)
	}
	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) updatePlaylist(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.playlistC, cmd = b.playlistC.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return tea.Quit
	case key.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		b.resize(b.termWidth, b.termHeight)
		return nil
	case key.Matches(keyMsg, b.keymap.play):
		return b.playSelected()
	case key.Matches(keyMsg, b.keymap.playPause):
		return b.togglePlayPause()
	case key.Matches(keyMsg, b.keymap.stop):
		return b.run(b.controller.Stop)
	case key.Matches(keyMsg, b.keymap.next):
		return b.run(b.controller.Next)
	case key.Matches(keyMsg, b.keymap.previous):
		return b.run(b.controller.Previous)
	case key.Matches(keyMsg, b.keymap.seekBack):
		return b.run(func() error { return b.controller.SeekBy(-b.seekStep) })
	case key.Matches(keyMsg, b.keymap.seekAhead):
		return b.run(func() error { return b.controller.SeekBy(b.seekStep) })
	case key.Matches(keyMsg, b.keymap.seekTo):
		return b.seekToTenth(keyMsg.String())
	case key.Matches(keyMsg, b.keymap.volumeUp):
		return b.run(func() error { return b.controller.ChangeVolume(b.volumeStep) })
	case key.Matches(keyMsg, b.keymap.volumeDown):
		return b.run(func() error { return b.controller.ChangeVolume(-b.volumeStep) })
	case key.Matches(keyMsg, b.keymap.mute):
		return b.run(b.controller.ToggleMute)
	case key.Matches(keyMsg, b.keymap.playMode):
		return b.cyclePlayMode()
	case key.Matches(keyMsg, b.keymap.shuffle):
		return b.run(func() error {
			_, err := b.controller.ToggleShuffle()
			return err
		})
	case key.Matches(keyMsg, b.keymap.add):
		return b.openForm()
	case key.Matches(keyMsg, b.keymap.remove):
		if item, ok := b.selected().Get(); ok {
			b.removing = mo.Some(item.track)
			b.newState(confirmState)
		}
		return nil
	case key.Matches(keyMsg, b.keymap.openURL):
		return b.openSelected()
	}

	var cmd tea.Cmd
	b.playlistC, cmd = b.playlistC.Update(msg)
	return cmd
}

func (b *statefulBubble) openForm() tea.Cmd {
	b.urlC.SetValue("")
	b.nameC.SetValue("")
	b.nameC.Blur()
	b.lookupURL = mo.None[string]()
	b.newState(addState)
	return tea.Batch(b.urlC.Focus(), textinput.Blink)
}

func (b *statefulBubble) closeForm() {
	b.urlC.Blur()
	b.nameC.Blur()
	b.lookupURL = mo.None[string]()
	b.previousState()
}

func (b *statefulBubble) updateAdd(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.cancel):
			b.closeForm()
			return nil
		case key.Matches(keyMsg, b.keymap.lookup):
			return b.startLookup()
		case key.Matches(keyMsg, b.keymap.switchField):
			return b.switchField()
		case key.Matches(keyMsg, b.keymap.submit):
			if b.urlC.Focused() && b.nameC.Value() == "" {
				return b.switchField()
			}
			return b.addTrack()
		}
	}

	var cmd tea.Cmd
	if b.urlC.Focused() {
		b.urlC, cmd = b.urlC.Update(msg)
	} else {
		b.nameC, cmd = b.nameC.Update(msg)
	}
	return cmd
}

// switchField moves focus between the link and the name.
// Leaving a valid link with no name starts a title lookup.
func (b *statefulBubble) switchField() tea.Cmd {
	if b.urlC.Focused() {
		b.urlC.Blur()
		cmd := b.nameC.Focus()
		if b.nameC.Value() == "" {
			return tea.Batch(cmd, b.startLookup())
		}
		return cmd
	}

	b.nameC.Blur()
	return b.urlC.Focus()
}

func (b *statefulBubble) onTitle(msg titleMsg) tea.Cmd {
	current, ok := b.lookupURL.Get()
	if !ok || current != msg.url {
		return nil
	}
	b.lookupURL = mo.None[string]()

	if msg.err != nil {
		return ui.Notify(b.tr.T(i18n.LookupFailed, msg.err.Error()), ui.LevelError)
	}
	if b.state == addState && b.nameC.Value() == "" {
		title := []rune(msg.title)
		if limit := b.nameC.CharLimit; limit > 0 && len(title) > limit {
			title = title[:limit]
		}
		b.nameC.SetValue(string(title))
		b.nameC.CursorEnd()
	}
	return nil
}

func (b *statefulBubble) updateConfirm(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, b.keymap.yes):
		return b.removeTrack()
	case key.Matches(keyMsg, b.keymap.no):
		b.removing = mo.None[playlist.Track]()
		b.previousState()
	}
	return nil
}
