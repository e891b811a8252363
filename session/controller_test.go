package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/metadata"
	"github.com/ytplay/ytplay/playlist"
	"github.com/ytplay/ytplay/resolve"
)

type fakeEngine struct {
	mu       sync.Mutex
	played   []string
	paused   bool
	stops    int
	seeks    []float64
	volume   int
	muted    bool
	position mo.Option[float64]
	duration mo.Option[float64]
	playErr  error
	onEnd    func()
}

func (e *fakeEngine) Play(streamURL, _ string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.playErr != nil {
		return e.playErr
	}
	e.played = append(e.played, streamURL)
	e.paused = false
	return nil
}

func (e *fakeEngine) Pause(paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = paused
	return nil
}

func (e *fakeEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stops++
	return nil
}

func (e *fakeEngine) Seek(seconds float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seeks = append(e.seeks, seconds)
	return nil
}

func (e *fakeEngine) Volume() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume, nil
}

func (e *fakeEngine) SetVolume(v int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.volume = v
	return nil
}

func (e *fakeEngine) Muted() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted, nil
}

func (e *fakeEngine) SetMuted(m bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = m
	return nil
}

func (e *fakeEngine) Position() mo.Option[float64] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

func (e *fakeEngine) Duration() mo.Option[float64] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration
}

func (e *fakeEngine) Close() error { return nil }

func (e *fakeEngine) OnEnd(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onEnd = fn
}

// end simulates the stream playing out.
func (e *fakeEngine) end() {
	e.mu.Lock()
	fn := e.onEnd
	e.mu.Unlock()
	fn()
}

func (e *fakeEngine) report(position, duration mo.Option[float64]) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = position
	e.duration = duration
}

func (e *fakeEngine) history() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.played...)
}

type playlistStorage map[string]string

func (p playlistStorage) Load() (map[string]string, error) { return p, nil }
func (p playlistStorage) Save(map[string]string) error     { return nil }

type cacheStorage map[string]metadata.Entry

func (c cacheStorage) Load() (map[string]metadata.Entry, error) { return c, nil }
func (c cacheStorage) Save(map[string]metadata.Entry) error     { return nil }

// gatedResolver blocks each URL until its gate is closed. URLs without a gate resolve at once.
type gatedResolver struct {
	gates map[string]chan struct{}
	calls atomic.Int32
	fail  map[string]error
}

func (g *gatedResolver) Resolve(ctx context.Context, u string) (resolve.Result, error) {
	g.calls.Add(1)
	if gate, ok := g.gates[u]; ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return resolve.Result{}, ctx.Err()
		}
	}
	if err, ok := g.fail[u]; ok {
		return resolve.Result{}, &resolve.ResolutionError{URL: u, Err: err}
	}
	return resolve.Result{StreamURL: "stream:" + u, Title: "title:" + u}, nil
}

type recordedPreferences struct {
	mu     sync.Mutex
	values map[string]any
	err    error
}

func (r *recordedPreferences) Persist(k string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.values[k] = v
	return nil
}

func (r *recordedPreferences) get(k string) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[k]
}

func trackURL(i int) string {
	return fmt.Sprintf("https://youtu.be/track%d", i)
}

type fixture struct {
	engine     *fakeEngine
	resolver   *gatedResolver
	prefs      *recordedPreferences
	store      *playlist.Store
	cache      *metadata.Cache
	controller *Controller
}

// newFixture builds a controller over n tracks named t0..t(n-1).
// The first cached tracks already have metadata.
func newFixture(n, cached int, options Options) *fixture {
	entries := playlistStorage{}
	resolved := cacheStorage{}
	for i := 0; i < n; i++ {
		entries[fmt.Sprintf("t%d", i)] = trackURL(i)
		if i < cached {
			resolved[trackURL(i)] = metadata.Entry{
				SourceURL: trackURL(i),
				StreamURL: "stream:" + trackURL(i),
				Title:     fmt.Sprintf("Title %d", i),
				Duration:  60,
			}
		}
	}

	f := &fixture{
		engine:   &fakeEngine{},
		resolver: &gatedResolver{gates: map[string]chan struct{}{}, fail: map[string]error{}},
		prefs:    &recordedPreferences{values: map[string]any{}},
	}
	f.store = playlist.Open(entries)
	f.cache = metadata.New(f.resolver, resolved)
	options.Preferences = f.prefs
	f.controller = New(f.engine, f.store, f.cache, options)
	return f
}

// settle waits for pending resolutions and for their results to be applied.
func (f *fixture) settle() {
	f.controller.inflight.Wait()
	_ = f.controller.do(func() error { return nil })
}

func (f *fixture) tick(position, duration float64) {
	f.controller.OnProgressTick(position, duration)
	_ = f.controller.do(func() error { return nil })
}

func TestSelectAndPlay(t *testing.T) {
	Convey("Given five cached tracks", t, func() {
		f := newFixture(5, 5, Options{PlayMode: ModeAdvance, Volume: 100})
		defer f.controller.Close()

		Convey("A cache hit plays without calling the resolver", func() {
			So(f.controller.SelectAndPlay(0), ShouldBeNil)

			snapshot := f.controller.Snapshot()
			So(snapshot.State, ShouldEqual, Playing)
			So(snapshot.Cursor.MustGet(), ShouldEqual, 0)
			So(snapshot.Title, ShouldEqual, "Title 0")
			So(snapshot.Duration.MustGet(), ShouldEqual, 60.0)
			So(f.resolver.calls.Load(), ShouldEqual, 0)
			So(f.engine.history(), ShouldResemble, []string{"stream:" + trackURL(0)})
		})

		Convey("An out of range position is reported as no selection and changes nothing", func() {
			lo.Must0(f.controller.SelectAndPlay(1))
			So(f.controller.SelectAndPlay(9), ShouldEqual, ErrNoSelection)

			snapshot := f.controller.Snapshot()
			So(snapshot.State, ShouldEqual, Playing)
			So(snapshot.Cursor.MustGet(), ShouldEqual, 1)
		})

		Convey("Next wraps from the last track to the first", func() {
			lo.Must0(f.controller.SelectAndPlay(4))
			So(f.controller.Next(), ShouldBeNil)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 0)
		})

		Convey("Previous wraps from the first track to the last", func() {
			lo.Must0(f.controller.SelectAndPlay(0))
			So(f.controller.Previous(), ShouldBeNil)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 4)
		})

		Convey("Advancing without a cursor reports no selection", func() {
			So(f.controller.Next(), ShouldEqual, ErrNoSelection)
			So(f.controller.Snapshot().State, ShouldEqual, Idle)
		})
	})

	Convey("Given an empty playlist", t, func() {
		f := newFixture(0, 0, Options{})
		defer f.controller.Close()

		Convey("Next is a no-op and the session stays idle", func() {
			So(f.controller.Next(), ShouldBeNil)
			So(f.controller.Snapshot().State, ShouldEqual, Idle)
			So(f.engine.history(), ShouldBeEmpty)
		})
	})
}

func TestShuffle(t *testing.T) {
	Convey("Given shuffle is on", t, func() {
		picks := []int{2, 2}
		f := newFixture(5, 5, Options{
			Shuffle: true,
			Intn: func(n int) int {
				pick := picks[0]
				picks = picks[1:]
				return pick
			},
		})
		defer f.controller.Close()

		Convey("Next plays the random pick, even the current track again", func() {
			lo.Must0(f.controller.SelectAndPlay(0))
			lo.Must0(f.controller.Next())
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 2)

			lo.Must0(f.controller.Next())
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 2)
			So(len(f.engine.history()), ShouldEqual, 3)
		})

		Convey("Previous ignores shuffle", func() {
			lo.Must0(f.controller.SelectAndPlay(3))
			lo.Must0(f.controller.Previous())
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 2)
			So(len(picks), ShouldEqual, 2)
		})

		Convey("Toggling persists the new value", func() {
			shuffle, err := f.controller.ToggleShuffle()
			So(err, ShouldBeNil)
			So(shuffle, ShouldBeFalse)
			So(f.prefs.get(key.PlayerShuffle), ShouldEqual, false)
		})
	})
}

func TestResolution(t *testing.T) {
	Convey("Given tracks that are not cached yet", t, func() {
		f := newFixture(3, 0, Options{})
		defer f.controller.Close()
		sub := f.controller.Subscribe()

		Convey("A miss loads in the background and then plays", func() {
			So(f.controller.SelectAndPlay(0), ShouldBeNil)
			f.settle()

			So(f.controller.Snapshot().State, ShouldEqual, Playing)
			So(f.resolver.calls.Load(), ShouldEqual, 1)

			change := <-sub.TrackChanged
			So(change.Index, ShouldEqual, 0)
			So(change.Title, ShouldEqual, "title:"+trackURL(0))
		})

		Convey("A newer selection wins over a slower earlier one", func() {
			gate := make(chan struct{})
			f.resolver.gates[trackURL(0)] = gate

			lo.Must0(f.controller.SelectAndPlay(0))
			So(f.controller.Snapshot().State, ShouldEqual, Loading)

			lo.Must0(f.controller.SelectAndPlay(1))
			close(gate)
			f.settle()

			snapshot := f.controller.Snapshot()
			So(snapshot.State, ShouldEqual, Playing)
			So(snapshot.Cursor.MustGet(), ShouldEqual, 1)
			So(f.engine.history(), ShouldResemble, []string{"stream:" + trackURL(1)})
		})

		Convey("A stale result arriving last is still dropped", func() {
			gate0, gate1 := make(chan struct{}), make(chan struct{})
			f.resolver.gates[trackURL(0)] = gate0
			f.resolver.gates[trackURL(1)] = gate1

			lo.Must0(f.controller.SelectAndPlay(0))
			lo.Must0(f.controller.SelectAndPlay(1))

			close(gate1)
			for f.controller.Snapshot().State != Playing {
				time.Sleep(time.Millisecond)
			}
			close(gate0)
			f.settle()

			So(f.engine.history(), ShouldResemble, []string{"stream:" + trackURL(1)})
			So(f.controller.Snapshot().Title, ShouldEqual, "title:"+trackURL(1))
		})

		Convey("A failed resolution returns to idle and sends a notice", func() {
			f.resolver.fail[trackURL(2)] = errors.New("video unavailable")

			lo.Must0(f.controller.SelectAndPlay(2))
			f.settle()

			So(f.controller.Snapshot().State, ShouldEqual, Idle)
			notice := <-sub.Notices
			var resolution *resolve.ResolutionError
			So(errors.As(notice.Err, &resolution), ShouldBeTrue)

			Convey("and a retry is allowed", func() {
				delete(f.resolver.fail, trackURL(2))
				lo.Must0(f.controller.SelectAndPlay(2))
				f.settle()
				So(f.controller.Snapshot().State, ShouldEqual, Playing)
			})
		})

		Convey("Stop while loading abandons the pending track", func() {
			gate := make(chan struct{})
			f.resolver.gates[trackURL(0)] = gate

			lo.Must0(f.controller.SelectAndPlay(0))
			So(f.controller.Stop(), ShouldBeNil)
			So(f.controller.Snapshot().State, ShouldEqual, Idle)

			close(gate)
			f.settle()
			So(f.controller.Snapshot().State, ShouldEqual, Idle)
			So(f.engine.history(), ShouldBeEmpty)
		})
	})
}

func TestTransport(t *testing.T) {
	Convey("Given a session", t, func() {
		f := newFixture(3, 3, Options{})
		defer f.controller.Close()

		Convey("Toggle with nothing selected reports no selection", func() {
			So(f.controller.TogglePlayPause(), ShouldEqual, ErrNoSelection)
		})

		Convey("Toggle after Select starts the selected track", func() {
			lo.Must0(f.controller.Select(2))
			So(f.controller.TogglePlayPause(), ShouldBeNil)
			So(f.controller.Snapshot().State, ShouldEqual, Playing)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 2)
		})

		Convey("Toggle pauses and resumes", func() {
			lo.Must0(f.controller.SelectAndPlay(0))

			lo.Must0(f.controller.TogglePlayPause())
			So(f.controller.Snapshot().State, ShouldEqual, Paused)
			So(f.engine.paused, ShouldBeTrue)

			lo.Must0(f.controller.TogglePlayPause())
			So(f.controller.Snapshot().State, ShouldEqual, Playing)
			So(f.engine.paused, ShouldBeFalse)
		})

		Convey("Stop resets progress and a second stop is a no-op", func() {
			lo.Must0(f.controller.SelectAndPlay(0))
			f.tick(20, 60)

			So(f.controller.Stop(), ShouldBeNil)
			snapshot := f.controller.Snapshot()
			So(snapshot.State, ShouldEqual, Stopped)
			So(snapshot.Position, ShouldEqual, 0.0)
			So(snapshot.Title, ShouldEqual, "")

			stops := f.engine.stops
			So(f.controller.Stop(), ShouldBeNil)
			So(f.engine.stops, ShouldEqual, stops)
		})

		Convey("Toggle after stop replays the cursor", func() {
			lo.Must0(f.controller.SelectAndPlay(1))
			lo.Must0(f.controller.Stop())
			lo.Must0(f.controller.TogglePlayPause())
			So(f.controller.Snapshot().State, ShouldEqual, Playing)
			So(len(f.engine.history()), ShouldEqual, 2)
		})
	})
}

func TestProgress(t *testing.T) {
	Convey("Given a playing track in stop mode", t, func() {
		f := newFixture(3, 3, Options{PlayMode: ModeStop, EndEpsilon: 0.5})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(1))

		Convey("A tick well before the end only moves the position", func() {
			f.tick(58.0, 60.0)
			snapshot := f.controller.Snapshot()
			So(snapshot.State, ShouldEqual, Playing)
			So(snapshot.Position, ShouldEqual, 58.0)
			So(snapshot.Progress(), ShouldAlmostEqual, 58.0/60.0)
		})

		Convey("A tick within epsilon of the end finishes the track", func() {
			f.tick(59.6, 60.0)
			So(f.controller.Snapshot().State, ShouldEqual, Stopped)
		})
	})

	Convey("Given a playing track in advance mode", t, func() {
		f := newFixture(3, 3, Options{PlayMode: ModeAdvance})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(2))

		Convey("The end of the last track wraps to the first", func() {
			f.tick(59.6, 60.0)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 0)
			So(f.controller.Snapshot().State, ShouldEqual, Playing)
		})
	})

	Convey("Given a playing track in repeat mode", t, func() {
		f := newFixture(3, 3, Options{PlayMode: ModeRepeat})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(1))

		Convey("The end replays the same track from the start", func() {
			f.tick(59.9, 60.0)
			snapshot := f.controller.Snapshot()
			So(snapshot.Cursor.MustGet(), ShouldEqual, 1)
			So(snapshot.Position, ShouldEqual, 0.0)
			So(f.engine.history(), ShouldResemble, []string{"stream:" + trackURL(1), "stream:" + trackURL(1)})
		})
	})

	Convey("Given the user is dragging the progress bar", t, func() {
		f := newFixture(3, 3, Options{PlayMode: ModeStop})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(0))
		f.tick(10, 120)
		f.controller.BeginSeek()

		Convey("Ticks do not move the displayed position", func() {
			f.tick(11, 120)
			So(f.controller.Snapshot().Position, ShouldEqual, 10.0)
			So(f.controller.Snapshot().Seeking, ShouldBeTrue)
		})

		Convey("End detection still runs", func() {
			f.tick(119.8, 120)
			So(f.controller.Snapshot().State, ShouldEqual, Stopped)
		})

		Convey("Seek jumps to the fraction and ends the gesture", func() {
			So(f.controller.Seek(0.25), ShouldBeNil)
			snapshot := f.controller.Snapshot()
			So(f.engine.seeks, ShouldResemble, []float64{30})
			So(snapshot.Position, ShouldEqual, 30.0)
			So(snapshot.Seeking, ShouldBeFalse)

			f.tick(31, 120)
			So(f.controller.Snapshot().Position, ShouldEqual, 31.0)
		})

		Convey("SeekBy is clamped to the track", func() {
			So(f.controller.SeekBy(-50), ShouldBeNil)
			So(f.engine.seeks, ShouldResemble, []float64{0})
		})
	})

	Convey("Given a track without a known duration", t, func() {
		f := newFixture(1, 0, Options{})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(0))
		f.settle()

		Convey("Seek is a silent no-op", func() {
			So(f.controller.Seek(0.5), ShouldBeNil)
			So(f.engine.seeks, ShouldBeEmpty)
		})
	})

	Convey("Ticks while idle are ignored", t, func() {
		f := newFixture(1, 1, Options{})
		defer f.controller.Close()
		f.tick(59.9, 60)
		So(f.controller.Snapshot().State, ShouldEqual, Idle)
		So(f.controller.Snapshot().Duration.IsPresent(), ShouldBeFalse)
	})
}

func TestTrackEnd(t *testing.T) {
	Convey("Given a playing track in advance mode", t, func() {
		f := newFixture(3, 3, Options{PlayMode: ModeAdvance})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(0))

		Convey("The engine reporting the end advances", func() {
			f.engine.end()
			_ = f.controller.do(func() error { return nil })

			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 1)
			So(f.engine.history(), ShouldHaveLength, 2)
		})

		Convey("An end reported for an earlier track is dropped", func() {
			earlier := f.controller.playing.Load()
			lo.Must0(f.controller.SelectAndPlay(2))

			_ = f.controller.do(func() error {
				f.controller.onEngineEnd(earlier)
				return nil
			})
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 2)
			So(f.engine.history(), ShouldHaveLength, 2)
		})

		Convey("A tick and the engine end only finish the track once", func() {
			f.tick(59.6, 60.0)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 1)

			lo.Must0(f.controller.Stop())
			f.engine.end()
			_ = f.controller.do(func() error { return nil })
			So(f.controller.Snapshot().State, ShouldEqual, Stopped)
			So(f.engine.history(), ShouldHaveLength, 2)
		})

		Convey("An engine that goes idle right after the last tick still finishes the track", func() {
			f.engine.report(mo.Some(59.4), mo.Some(60.0))
			So(f.controller.sample(), ShouldBeTrue)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 0)

			f.engine.report(mo.None[float64](), mo.None[float64]())
			So(f.controller.sample(), ShouldBeFalse)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 1)
			So(f.engine.history(), ShouldResemble, []string{"stream:" + trackURL(0), "stream:" + trackURL(1)})
		})

		Convey("An engine that goes idle mid track is not treated as the end", func() {
			f.engine.report(mo.Some(30.0), mo.Some(60.0))
			f.controller.sample()

			f.engine.report(mo.None[float64](), mo.None[float64]())
			f.controller.sample()
			So(f.controller.Snapshot().State, ShouldEqual, Playing)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 0)
		})

		Convey("A track paused inside the end window finishes once resumed", func() {
			lo.Must0(f.controller.TogglePlayPause())
			f.tick(59.8, 60.0)
			So(f.controller.Snapshot().State, ShouldEqual, Paused)
			So(f.controller.Snapshot().Progress(), ShouldEqual, 1.0)
			So(f.engine.history(), ShouldHaveLength, 1)

			lo.Must0(f.controller.TogglePlayPause())
			f.tick(59.9, 60.0)
			So(f.controller.Snapshot().Cursor.MustGet(), ShouldEqual, 1)
		})
	})

	Convey("Given a playing track in stop mode", t, func() {
		f := newFixture(2, 2, Options{PlayMode: ModeStop})
		defer f.controller.Close()
		lo.Must0(f.controller.SelectAndPlay(0))

		Convey("The engine reporting the end stops at the full duration", func() {
			sub := f.controller.Subscribe()
			f.engine.end()
			_ = f.controller.do(func() error { return nil })

			So(f.controller.Snapshot().State, ShouldEqual, Stopped)
			last := <-sub.ProgressChanged
			So(last.Position, ShouldEqual, 60.0)
		})
	})
}

func TestVolume(t *testing.T) {
	Convey("Given a session at volume 80", t, func() {
		f := newFixture(1, 1, Options{Volume: 80})
		defer f.controller.Close()
		So(f.engine.volume, ShouldEqual, 80)

		Convey("Volume is clamped and persisted", func() {
			lo.Must0(f.controller.SetVolume(150))
			So(f.controller.Snapshot().Volume, ShouldEqual, 100)
			lo.Must0(f.controller.SetVolume(-5))
			So(f.controller.Snapshot().Volume, ShouldEqual, 0)
			So(f.prefs.get(key.PlayerVolume), ShouldEqual, 0)
		})

		Convey("Mute keeps the logical volume and unmute restores it", func() {
			lo.Must0(f.controller.Mute())
			snapshot := f.controller.Snapshot()
			So(snapshot.Muted, ShouldBeTrue)
			So(snapshot.Volume, ShouldEqual, 80)
			So(f.engine.muted, ShouldBeTrue)

			lo.Must0(f.controller.Unmute())
			So(f.controller.Snapshot().Muted, ShouldBeFalse)
			So(f.engine.volume, ShouldEqual, 80)
			So(f.prefs.get(key.PlayerMuted), ShouldEqual, false)
		})

		Convey("A positive volume while muted unmutes", func() {
			lo.Must0(f.controller.ToggleMute())
			lo.Must0(f.controller.SetVolume(30))

			snapshot := f.controller.Snapshot()
			So(snapshot.Muted, ShouldBeFalse)
			So(snapshot.Volume, ShouldEqual, 30)
			So(f.engine.muted, ShouldBeFalse)
		})

		Convey("Zero volume while muted stays muted", func() {
			lo.Must0(f.controller.Mute())
			lo.Must0(f.controller.SetVolume(0))
			So(f.controller.Snapshot().Muted, ShouldBeTrue)

			lo.Must0(f.controller.Unmute())
			So(f.controller.Snapshot().Volume, ShouldEqual, 80)
		})

		Convey("ChangeVolume steps from the current value", func() {
			lo.Must0(f.controller.ChangeVolume(-5))
			So(f.controller.Snapshot().Volume, ShouldEqual, 75)
		})

		Convey("A failed write is reported", func() {
			f.prefs.err = errors.New("read-only config")
			So(f.controller.SetVolume(10), ShouldNotBeNil)
		})
	})
}

func TestPlayMode(t *testing.T) {
	Convey("Play mode cycles with period three", t, func() {
		mode := ModeRepeat
		mode = mode.Next()
		So(mode, ShouldEqual, ModeAdvance)
		mode = mode.Next()
		So(mode, ShouldEqual, ModeStop)
		mode = mode.Next()
		So(mode, ShouldEqual, ModeRepeat)
	})

	Convey("CyclePlayMode persists each step", t, func() {
		f := newFixture(1, 1, Options{PlayMode: ModeRepeat})
		defer f.controller.Close()

		var seen []string
		for i := 0; i < 3; i++ {
			mode, err := f.controller.CyclePlayMode()
			So(err, ShouldBeNil)
			seen = append(seen, f.prefs.get(key.PlayerPlayMode).(string))
			So(mode.String(), ShouldEqual, seen[i])
		}
		So(seen, ShouldResemble, []string{"advance", "stop", "repeat"})
	})

	Convey("ParsePlayMode", t, func() {
		So(lo.Must(ParsePlayMode("Repeat")), ShouldEqual, ModeRepeat)
		So(lo.Must(ParsePlayMode("next")), ShouldEqual, ModeAdvance)
		_, err := ParsePlayMode("loop")
		So(err, ShouldNotBeNil)
	})
}

func TestClose(t *testing.T) {
	Convey("Closing the controller", t, func() {
		f := newFixture(2, 0, Options{})
		sub := f.controller.Subscribe()

		f.resolver.gates[trackURL(0)] = make(chan struct{})
		lo.Must0(f.controller.SelectAndPlay(0))

		So(f.controller.Close(), ShouldBeNil)

		Convey("cancels pending resolution and ends subscriptions", func() {
			_, open := <-sub.Done
			So(open, ShouldBeFalse)
			So(f.controller.Next(), ShouldEqual, ErrClosed)
			So(f.controller.Close(), ShouldBeNil)
		})
	})
}
