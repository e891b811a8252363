// Package player drives the external media engine that decodes and outputs audio.
package player

import "github.com/samber/mo"

// Engine is the transport surface the playback session controls.
// Position and Duration are None while nothing is loaded or the value is not known yet.
type Engine interface {
	// Play replaces whatever is loaded with streamURL and starts it unpaused.
	Play(streamURL, title string) error

	Pause(paused bool) error

	// Stop unloads the current stream. Stopping an idle engine is not an error.
	Stop() error

	// Seek jumps to an absolute position in seconds.
	Seek(seconds float64) error

	Volume() (int, error)
	SetVolume(volume int) error

	Muted() (bool, error)
	SetMuted(muted bool) error

	Position() mo.Option[float64]
	Duration() mo.Option[float64]

	// Close terminates the engine and releases its resources.
	Close() error
}

// EndNotifier is implemented by engines that report when a stream plays to its end.
type EndNotifier interface {
	// OnEnd registers fn. It may be called from any goroutine.
	OnEnd(fn func())
}
