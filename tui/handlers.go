package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/i18n"
	"github.com/ytplay/ytplay/internal/ui"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/open"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/session"
)

const lookupTimeout = time.Minute

type sessionDoneMsg struct{}

type snapshotMsg struct {
	snapshot session.Snapshot
}

// refreshMsg asks for a new snapshot.
type refreshMsg struct{}

// titleMsg is the result of a title lookup for url.
type titleMsg struct {
	url   string
	title string
	err   error
}

// waitForEvent blocks until the session reports something.
func (b *statefulBubble) waitForEvent() tea.Cmd {
	sub := b.sub
	if sub == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return e
		case e := <-sub.TrackChanged:
			return e
		case e := <-sub.ProgressChanged:
			return e
		case e := <-sub.SettingsChanged:
			return e
		case n := <-sub.Notices:
			return n
		case <-sub.Done:
			return sessionDoneMsg{}
		}
	}
}

// run executes a session command off the update loop.
// A failure comes back as an error notice.
func (b *statefulBubble) run(command func() error) tea.Cmd {
	return func() tea.Msg {
		if err := command(); err != nil {
			return ui.NoticeMsg{Text: b.describe(err), Level: ui.LevelError}
		}
		return nil
	}
}

func (b *statefulBubble) describe(err error) string {
	if errors.Is(err, session.ErrNoSelection) {
		return b.tr.T(i18n.NothingPlaying)
	}
	return err.Error()
}

func (b *statefulBubble) playSelected() tea.Cmd {
	item, ok := b.selected().Get()
	if !ok {
		return nil
	}
	return b.run(func() error {
		return b.controller.SelectAndPlay(item.index)
	})
}

func (b *statefulBubble) togglePlayPause() tea.Cmd {
	state := b.snapshot.State
	item, ok := b.selected().Get()

	return b.run(func() error {
		// a stopped player starts from the highlighted row
		if ok && (state == session.Idle || state == session.Stopped) {
			if err := b.controller.Select(item.index); err != nil {
				return err
			}
		}
		return b.controller.TogglePlayPause()
	})
}

func (b *statefulBubble) seekToTenth(digit string) tea.Cmd {
	tenth := float64(digit[0]-'0') / 10
	return b.run(func() error {
		b.controller.BeginSeek()
		return b.controller.Seek(tenth)
	})
}

func (b *statefulBubble) cyclePlayMode() tea.Cmd {
	return func() tea.Msg {
		mode, err := b.controller.CyclePlayMode()
		if err != nil {
			return ui.NoticeMsg{Text: err.Error(), Level: ui.LevelError}
		}
		return ui.NoticeMsg{Text: b.tr.T(i18n.Mode, b.modeName(mode))}
	}
}

// lookupTitle asks the resolver for the title of url.
// The lookup also warms the stream cache for the first play.
func (b *statefulBubble) lookupTitle(url string) tea.Cmd {
	metadataCache := b.metadata

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		entry, err := metadataCache.Resolve(ctx, url)
		var persist *metadata.PersistError
		if errors.As(err, &persist) {
			log.Warn(err)
			err = nil
		}
		return titleMsg{url: url, title: entry.Title, err: err}
	}
}

func (b *statefulBubble) startLookup() tea.Cmd {
	url := strings.TrimSpace(b.urlC.Value())
	if !playlist.IsSourceURL(url) || b.metadata == nil {
		return nil
	}
	if current, ok := b.lookupURL.Get(); ok && current == url {
		return nil
	}

	b.lookupURL = mo.Some(url)
	return tea.Batch(b.lookupTitle(url), b.spinnerC.Tick, ui.Notify(b.tr.T(i18n.LookingUp), ui.LevelInfo))
}

// addTrack stores the form values and returns to the playlist on success.
func (b *statefulBubble) addTrack() tea.Cmd {
	track, err := b.playlist.Add(b.nameC.Value(), b.urlC.Value())
	if err != nil {
		return ui.Notify(err.Error(), ui.LevelError)
	}

	log.Infof("added %q", track.Name)
	b.closeForm()
	cmd := b.reloadItems()
	if index, ok := b.playlist.IndexOf(track.Name).Get(); ok {
		b.playlistC.Select(index)
	}
	return tea.Batch(cmd, ui.Notify(b.tr.T(i18n.Added, track.Name), ui.LevelInfo))
}

func (b *statefulBubble) removeTrack() tea.Cmd {
	track, ok := b.removing.Get()
	b.removing = mo.None[playlist.Track]()
	b.previousState()
	if !ok {
		return nil
	}

	removed, err := b.playlist.RemoveByName(track.Name)
	if err != nil {
		return ui.Notify(err.Error(), ui.LevelError)
	}

	log.Infof("removed %q", removed.Name)
	return tea.Batch(
		b.reloadItems(),
		b.followCurrent(),
		ui.Notify(b.tr.T(i18n.Removed, removed.Name), ui.LevelInfo),
	)
}

// followCurrent points the session cursor back at the current track after
// the rows above it moved.
func (b *statefulBubble) followCurrent() tea.Cmd {
	current, ok := b.snapshot.Track.Get()
	if !ok {
		return nil
	}
	index, ok := b.playlist.IndexOf(current.Name).Get()
	if !ok || index == b.snapshot.Cursor.OrElse(-1) {
		return nil
	}

	controller := b.controller
	return func() tea.Msg {
		if err := controller.Select(index); err != nil {
			return ui.NoticeMsg{Text: b.describe(err), Level: ui.LevelError}
		}
		return refreshMsg{}
	}
}

func (b *statefulBubble) openSelected() tea.Cmd {
	item, ok := b.selected().Get()
	if !ok {
		return nil
	}

	if err := open.Start(item.track.URL); err != nil {
		return ui.Notify(b.tr.T(i18n.CouldNotOpen, err.Error()), ui.LevelError)
	}
	return ui.Notify(b.tr.T(i18n.Opening, item.track.Name), ui.LevelInfo)
}
