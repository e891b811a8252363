// Package session owns playback state and drives the media engine from the playlist.
//
// Every command runs on a single control goroutine. Stream resolution on a cache
// miss runs on its own goroutine and re-enters the control goroutine when done;
// a newer selection makes the pending result stale and it is dropped.
package session

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/samber/mo"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/player"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/util"
)

// DefaultEndEpsilon is how many seconds before the end a track counts as finished.
const DefaultEndEpsilon = 0.5

// lostStreamWindow is how close to the end the last sampled position must be
// for an engine that stopped reporting progress to count as finished.
const lostStreamWindow = 2.0

var (
	// ErrNoSelection is returned by commands that need a cursor when there is none.
	ErrNoSelection = errors.New("nothing selected")

	// ErrClosed is returned by commands issued after Close.
	ErrClosed = errors.New("session closed")
)

// Tracks is the playlist as seen by the controller.
type Tracks interface {
	Resolve(position int) (playlist.Track, error)
	Len() int
}

// Metadata resolves source URLs to streams, from cache when possible.
type Metadata interface {
	Lookup(sourceURL string) mo.Option[metadata.Entry]
	Resolve(ctx context.Context, sourceURL string) (metadata.Entry, error)
}

// Preferences persists single settings keys.
type Preferences interface {
	Persist(key string, value any) error
}

// Options holds the restored settings and tuning for a Controller.
type Options struct {
	PlayMode PlayMode
	Shuffle  bool
	Volume   int
	Muted    bool

	// EndEpsilon defaults to DefaultEndEpsilon when zero.
	EndEpsilon float64

	// Preferences may be nil, in which case nothing is persisted.
	Preferences Preferences

	// Intn picks the shuffle index. Defaults to math/rand.
	Intn func(n int) int
}

// Controller is the playback session.
type Controller struct {
	engine  player.Engine
	tracks  Tracks
	cache   Metadata
	prefs   Preferences
	epsilon float64
	intn    func(int) int

	tasks    chan func()
	done     chan struct{}
	stopped  chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup

	// generation of the track last handed to the engine
	playing atomic.Uint64

	subsMu sync.Mutex
	subs   []*Subscription
	closed bool

	// Owned by the control goroutine.
	state            State
	cursor           mo.Option[int]
	current          mo.Option[playlist.Track]
	title            string
	generation       uint64
	playMode         PlayMode
	shuffle          bool
	volume           int
	muted            bool
	volumeBeforeMute int
	position         float64
	duration         mo.Option[float64]
	seeking          bool
	endFired         bool
}

// New builds a controller and starts its control goroutine.
// The engine is brought to the restored volume and mute state.
func New(engine player.Engine, tracks Tracks, cache Metadata, options Options) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		engine:           engine,
		tracks:           tracks,
		cache:            cache,
		prefs:            options.Preferences,
		epsilon:          options.EndEpsilon,
		intn:             options.Intn,
		tasks:            make(chan func()),
		done:             make(chan struct{}),
		stopped:          make(chan struct{}),
		ctx:              ctx,
		cancel:           cancel,
		state:            Idle,
		playMode:         options.PlayMode,
		shuffle:          options.Shuffle,
		volume:           util.Clamp(options.Volume, 0, 100),
		muted:            options.Muted,
		volumeBeforeMute: util.Clamp(options.Volume, 0, 100),
	}
	if c.epsilon <= 0 {
		c.epsilon = DefaultEndEpsilon
	}
	if c.intn == nil {
		c.intn = rand.IntN
	}

	if err := engine.SetVolume(c.volume); err != nil {
		log.Warnf("restore volume: %s", err)
	}
	if err := engine.SetMuted(c.muted); err != nil {
		log.Warnf("restore mute: %s", err)
	}

	if notifier, ok := engine.(player.EndNotifier); ok {
		notifier.OnEnd(c.EngineEnded)
	}

	go c.loop()
	return c
}

func (c *Controller) loop() {
	defer close(c.stopped)
	for {
		select {
		case task := <-c.tasks:
			task()
		case <-c.done:
			return
		}
	}
}

// do runs fn on the control goroutine and waits for it.
func (c *Controller) do(fn func() error) error {
	result := make(chan error, 1)
	select {
	case c.tasks <- func() { result <- fn() }:
	case <-c.done:
		return ErrClosed
	}

	select {
	case err := <-result:
		return err
	case <-c.done:
		return ErrClosed
	}
}

// post queues fn without waiting. It is dropped after Close.
func (c *Controller) post(fn func()) {
	select {
	case c.tasks <- fn:
	case <-c.done:
	}
}

// Close stops the control goroutine, cancels pending resolutions and closes subscriptions.
// The engine is left to the caller.
func (c *Controller) Close() error {
	c.subsMu.Lock()
	if c.closed {
		c.subsMu.Unlock()
		return nil
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.subsMu.Unlock()

	c.cancel()
	close(c.done)
	<-c.stopped
	c.inflight.Wait()

	for _, sub := range subs {
		sub.close()
	}
	return nil
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	previous := c.state
	c.state = s

	log.WithFields(log.Fields{
		"from": previous.String(),
		"to":   s.String(),
	}).Debug("session state")
	c.emitState(previous, s)
}

func (c *Controller) resetProgress() {
	c.position = 0
	c.duration = mo.None[float64]()
	c.seeking = false
	c.endFired = false
	c.emitProgress()
}

func (c *Controller) persist(k string, value any) error {
	if c.prefs == nil {
		return nil
	}
	if err := c.prefs.Persist(k, value); err != nil {
		log.Errorf("persist %s: %s", k, err)
		return err
	}
	return nil
}

// SelectAndPlay loads and plays the track at position.
// On a metadata cache miss it returns once resolution has started; the outcome
// arrives as a TrackChanged event or a Notice.
func (c *Controller) SelectAndPlay(position int) error {
	return c.do(func() error {
		return c.selectAndPlay(position)
	})
}

func (c *Controller) selectAndPlay(position int) error {
	track, err := c.tracks.Resolve(position)
	if err != nil {
		var outOfRange *playlist.IndexOutOfRangeError
		if errors.As(err, &outOfRange) {
			return ErrNoSelection
		}
		return err
	}

	c.generation++
	generation := c.generation

	if err := c.engine.Stop(); err != nil {
		log.Warnf("stop before load: %s", err)
	}
	c.resetProgress()

	c.cursor = mo.Some(position)
	c.current = mo.Some(track)
	c.title = track.Name
	c.setState(Loading)

	if entry, ok := c.cache.Lookup(track.URL).Get(); ok {
		return c.start(position, track, entry)
	}

	log.WithFields(log.Fields{
		"track":      track.Name,
		"generation": generation,
	}).Info("resolving stream")

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		entry, err := c.cache.Resolve(c.ctx, track.URL)
		c.post(func() {
			c.finishResolution(generation, position, track, entry, err)
		})
	}()

	return nil
}

func (c *Controller) finishResolution(generation uint64, position int, track playlist.Track, entry metadata.Entry, err error) {
	if generation != c.generation {
		log.WithFields(log.Fields{
			"track":      track.Name,
			"generation": generation,
			"current":    c.generation,
		}).Info("dropping stale resolution")
		return
	}

	if err != nil {
		var persist *metadata.PersistError
		if !errors.As(err, &persist) {
			log.Errorf("resolve %q: %s", track.Name, err)
			c.setState(Idle)
			c.notify(err)
			return
		}
		c.notify(err)
	}

	if err := c.start(position, track, entry); err != nil {
		c.notify(err)
	}
}

// start hands a resolved stream to the engine.
func (c *Controller) start(position int, track playlist.Track, entry metadata.Entry) error {
	title := entry.Title
	if title == "" {
		title = track.Name
	}

	if err := c.engine.Play(entry.StreamURL, title); err != nil {
		log.Errorf("play %q: %s", track.Name, err)
		c.setState(Idle)
		return err
	}

	c.title = title
	c.playing.Store(c.generation)
	if hint, ok := entry.DurationHint().Get(); ok {
		c.duration = mo.Some(hint.Seconds())
	}
	c.position = 0
	c.emitProgress()

	c.setState(Playing)
	c.emitTrack(TrackChange{Index: position, Track: track, Title: title})
	log.Infof("playing %q", track.Name)
	return nil
}

// Select moves the cursor without starting playback.
func (c *Controller) Select(position int) error {
	return c.do(func() error {
		if position < 0 || position >= c.tracks.Len() {
			return ErrNoSelection
		}
		c.cursor = mo.Some(position)
		return nil
	})
}

// TogglePlayPause pauses, resumes, or starts the track under the cursor.
func (c *Controller) TogglePlayPause() error {
	return c.do(func() error {
		switch c.state {
		case Playing:
			if err := c.engine.Pause(true); err != nil {
				return err
			}
			c.setState(Paused)
		case Paused:
			if err := c.engine.Pause(false); err != nil {
				return err
			}
			c.setState(Playing)
		case Idle, Stopped:
			position, ok := c.cursor.Get()
			if !ok {
				return ErrNoSelection
			}
			return c.selectAndPlay(position)
		}
		return nil
	})
}

// Stop stops playback. A pending resolution is abandoned.
func (c *Controller) Stop() error {
	return c.do(c.stop)
}

func (c *Controller) stop() error {
	switch c.state {
	case Playing, Paused:
		if err := c.engine.Stop(); err != nil {
			return err
		}
		c.title = ""
		c.resetProgress()
		c.setState(Stopped)
	case Loading:
		c.generation++
		c.title = ""
		c.resetProgress()
		c.setState(Idle)
	}
	return nil
}

// Next advances to the following track, or a random one with shuffle on.
func (c *Controller) Next() error {
	return c.do(func() error {
		return c.advance(Forward)
	})
}

// Previous moves back one track, wrapping to the last.
func (c *Controller) Previous() error {
	return c.do(func() error {
		return c.advance(Backward)
	})
}

func (c *Controller) advance(direction Direction) error {
	size := c.tracks.Len()
	if size == 0 {
		return nil
	}

	cursor, ok := c.cursor.Get()
	if !ok {
		return ErrNoSelection
	}

	var next int
	switch {
	case direction == Forward && c.shuffle:
		next = c.intn(size)
	case direction == Forward:
		next = (cursor + 1) % size
	default:
		next = ((cursor-1)%size + size) % size
	}

	return c.selectAndPlay(next)
}

// OnProgressTick feeds a position and duration sample into the session.
func (c *Controller) OnProgressTick(position, duration float64) {
	c.post(func() {
		c.onProgressTick(position, duration)
	})
}

// End detection only runs while Playing. A track paused inside the end window
// finishes on the first tick after it resumes.
func (c *Controller) onProgressTick(position, duration float64) {
	if !c.state.Active() {
		return
	}

	c.duration = mo.Some(duration)
	atEnd := duration > 0 && position >= duration-c.epsilon

	if !c.seeking {
		if atEnd {
			position = duration
		}
		c.position = position
		c.emitProgress()
	}

	if atEnd {
		c.finishTrack()
	}
}

// EngineEnded reports that the engine played its stream to the end.
// It is safe to call from any goroutine. An end that arrives after a newer
// track was started is dropped.
func (c *Controller) EngineEnded() {
	generation := c.playing.Load()
	c.post(func() {
		c.onEngineEnd(generation)
	})
}

func (c *Controller) onEngineEnd(generation uint64) {
	if generation != c.generation {
		log.Debugf("dropping stale end of stream")
		return
	}
	if c.state != Playing || c.endFired {
		return
	}
	if duration, ok := c.duration.Get(); ok && !c.seeking {
		c.position = duration
		c.emitProgress()
	}
	c.finishTrack()
}

// finishTrack applies the play mode once per playing track.
func (c *Controller) finishTrack() {
	if c.state != Playing || c.endFired {
		return
	}
	c.endFired = true
	c.onTrackEnd()
}

// streamLost reports whether a playing track that the engine no longer
// reports progress for had already reached its last seconds.
func (c *Controller) streamLost() bool {
	duration, ok := c.duration.Get()
	return ok && c.state == Playing && c.position >= duration-math.Max(c.epsilon, lostStreamWindow)
}

func (c *Controller) onTrackEnd() {
	var err error
	switch c.playMode {
	case ModeRepeat:
		cursor, ok := c.cursor.Get()
		if !ok {
			err = ErrNoSelection
			break
		}
		err = c.selectAndPlay(cursor)
	case ModeAdvance:
		err = c.advance(Forward)
	case ModeStop:
		err = c.stop()
	}

	if err != nil {
		log.Errorf("track end: %s", err)
		c.notify(err)
	}
}

// sample reads the engine on the control goroutine and applies it as a tick.
// It reports whether the engine had both values.
func (c *Controller) sample() bool {
	ok := false
	_ = c.do(func() error {
		if !c.state.Active() {
			return nil
		}

		position, hasPosition := c.engine.Position().Get()
		duration, hasDuration := c.engine.Duration().Get()
		if !hasPosition && !hasDuration && c.streamLost() {
			log.Infof("engine went idle at %.1fs, finishing track", c.position)
			c.finishTrack()
			return nil
		}
		if !hasPosition || !hasDuration {
			return nil
		}

		ok = true
		c.onProgressTick(position, duration)
		return nil
	})
	return ok
}

// Snapshot is a copy of the session state for display.
type Snapshot struct {
	State    State
	Cursor   mo.Option[int]
	Track    mo.Option[playlist.Track]
	Title    string
	PlayMode PlayMode
	Shuffle  bool
	Volume   int
	Muted    bool
	Position float64
	Duration mo.Option[float64]
	Seeking  bool
}

// Progress returns the displayed position as a fraction of the duration.
func (s Snapshot) Progress() float64 {
	duration, ok := s.Duration.Get()
	if !ok || duration <= 0 {
		return 0
	}
	return util.Clamp(s.Position/duration, 0, 1)
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	var snapshot Snapshot
	_ = c.do(func() error {
		snapshot = Snapshot{
			State:    c.state,
			Cursor:   c.cursor,
			Track:    c.current,
			Title:    c.title,
			PlayMode: c.playMode,
			Shuffle:  c.shuffle,
			Volume:   c.volume,
			Muted:    c.muted,
			Position: c.position,
			Duration: c.duration,
			Seeking:  c.seeking,
		}
		return nil
	})
	return snapshot
}
