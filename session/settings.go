package session

import (
	"fmt"

	"github.com/ytplay/ytplay/key"
	"github.com/ytplay/ytplay/util"
)

// BeginSeek marks the user as dragging the progress bar.
// Ticks keep running but no longer move the displayed position.
func (c *Controller) BeginSeek() {
	_ = c.do(func() error {
		if c.state.Active() {
			c.seeking = true
		}
		return nil
	})
}

// Seek jumps to fraction of the current duration and ends a seek gesture.
// It does nothing while the duration is unknown.
func (c *Controller) Seek(fraction float64) error {
	return c.do(func() error {
		defer func() { c.seeking = false }()

		duration, ok := c.duration.Get()
		if !ok || !c.state.Active() {
			return nil
		}
		return c.seekTo(util.Clamp(fraction, 0, 1) * duration)
	})
}

// SeekBy moves the position by delta seconds, clamped to the track.
func (c *Controller) SeekBy(delta float64) error {
	return c.do(func() error {
		duration, ok := c.duration.Get()
		if !ok || !c.state.Active() {
			return nil
		}
		return c.seekTo(util.Clamp(c.position+delta, 0, duration))
	})
}

func (c *Controller) seekTo(target float64) error {
	if err := c.engine.Seek(target); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	c.position = target
	if duration, ok := c.duration.Get(); ok && target < duration-c.epsilon {
		c.endFired = false
	}
	c.emitProgress()
	return nil
}

// SetVolume sets the volume, clamped to 0..100. A positive volume unmutes.
func (c *Controller) SetVolume(volume int) error {
	return c.do(func() error {
		return c.setVolume(volume)
	})
}

// ChangeVolume adds delta to the current volume.
func (c *Controller) ChangeVolume(delta int) error {
	return c.do(func() error {
		return c.setVolume(c.volume + delta)
	})
}

func (c *Controller) setVolume(volume int) error {
	volume = util.Clamp(volume, 0, 100)

	if c.muted && volume > 0 {
		if err := c.engine.SetMuted(false); err != nil {
			return err
		}
		c.muted = false
		if err := c.persist(key.PlayerMuted, false); err != nil {
			return err
		}
	}

	if err := c.engine.SetVolume(volume); err != nil {
		return err
	}
	c.volume = volume
	c.emitSettings()
	return c.persist(key.PlayerVolume, volume)
}

// Mute silences the engine. The logical volume is kept for Unmute.
func (c *Controller) Mute() error {
	return c.do(c.mute)
}

func (c *Controller) mute() error {
	if c.muted {
		return nil
	}
	if err := c.engine.SetMuted(true); err != nil {
		return err
	}
	c.volumeBeforeMute = c.volume
	c.muted = true
	c.emitSettings()
	return c.persist(key.PlayerMuted, true)
}

// Unmute restores the volume from before Mute.
func (c *Controller) Unmute() error {
	return c.do(c.unmute)
}

func (c *Controller) unmute() error {
	if !c.muted {
		return nil
	}
	if err := c.engine.SetVolume(c.volumeBeforeMute); err != nil {
		return err
	}
	if err := c.engine.SetMuted(false); err != nil {
		return err
	}
	c.volume = c.volumeBeforeMute
	c.muted = false
	c.emitSettings()

	if err := c.persist(key.PlayerVolume, c.volume); err != nil {
		return err
	}
	return c.persist(key.PlayerMuted, false)
}

// ToggleMute mutes or unmutes.
func (c *Controller) ToggleMute() error {
	return c.do(func() error {
		if c.muted {
			return c.unmute()
		}
		return c.mute()
	})
}

// CyclePlayMode moves to the next play mode and returns it.
func (c *Controller) CyclePlayMode() (PlayMode, error) {
	var mode PlayMode
	err := c.do(func() error {
		c.playMode = c.playMode.Next()
		mode = c.playMode
		c.emitSettings()
		return c.persist(key.PlayerPlayMode, mode.String())
	})
	return mode, err
}

// ToggleShuffle flips shuffle and returns the new value.
func (c *Controller) ToggleShuffle() (bool, error) {
	var shuffle bool
	err := c.do(func() error {
		c.shuffle = !c.shuffle
		shuffle = c.shuffle
		c.emitSettings()
		return c.persist(key.PlayerShuffle, shuffle)
	})
	return shuffle, err
}
