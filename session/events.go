package session

import (
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/playlist"
)

const eventBufferSize = 16

// StateChange is sent on every transport state transition.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is sent when a track finishes loading and starts playing.
type TrackChange struct {
	Index int
	Track playlist.Track
	Title string
}

// ProgressChange carries the displayed position.
type ProgressChange struct {
	Position float64
	Duration mo.Option[float64]
}

// SettingsChange is sent after play mode, shuffle, volume or mute change.
type SettingsChange struct {
	PlayMode PlayMode
	Shuffle  bool
	Volume   int
	Muted    bool
}

// Notice reports a failure the user should see. The session keeps running.
type Notice struct {
	Err error
}

// Subscription delivers session events. Sends never block; a full buffer drops events.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	ProgressChanged <-chan ProgressChange
	SettingsChanged <-chan SettingsChange
	Notices         <-chan Notice
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	progressCh chan ProgressChange
	settingsCh chan SettingsChange
	noticeCh   chan Notice
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		progressCh: make(chan ProgressChange, eventBufferSize),
		settingsCh: make(chan SettingsChange, eventBufferSize),
		noticeCh:   make(chan Notice, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.ProgressChanged = s.progressCh
	s.SettingsChanged = s.settingsCh
	s.Notices = s.noticeCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func send[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}

// Subscribe registers a new subscriber. It is closed when the controller closes.
func (c *Controller) Subscribe() *Subscription {
	sub := newSubscription()

	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Controller) broadcast(fn func(*Subscription)) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, sub := range c.subs {
		fn(sub)
	}
}

func (c *Controller) emitState(previous, current State) {
	c.broadcast(func(s *Subscription) { send(s.stateCh, StateChange{Previous: previous, Current: current}) })
}

func (c *Controller) emitTrack(e TrackChange) {
	c.broadcast(func(s *Subscription) { send(s.trackCh, e) })
}

func (c *Controller) emitProgress() {
	e := ProgressChange{Position: c.position, Duration: c.duration}
	c.broadcast(func(s *Subscription) { send(s.progressCh, e) })
}

func (c *Controller) emitSettings() {
	e := SettingsChange{PlayMode: c.playMode, Shuffle: c.shuffle, Volume: c.volume, Muted: c.muted}
	c.broadcast(func(s *Subscription) { send(s.settingsCh, e) })
}

func (c *Controller) notify(err error) {
	c.broadcast(func(s *Subscription) { send(s.noticeCh, Notice{Err: err}) })
}
