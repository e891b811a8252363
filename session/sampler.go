package session

import (
	"context"
	"time"
)

// DefaultSampleInterval is how often the engine is polled for progress.
const DefaultSampleInterval = 500 * time.Millisecond

// Sampler polls engine progress for a controller.
// Each sample completes before the next one is scheduled.
type Sampler struct {
	controller *Controller
	interval   time.Duration
}

// NewSampler returns a sampler for c. A non-positive interval uses DefaultSampleInterval.
func NewSampler(c *Controller, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &Sampler{controller: c, interval: interval}
}

// Run samples until ctx is cancelled or the controller is closed.
func (s *Sampler) Run(ctx context.Context) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.controller.done:
			return
		case <-timer.C:
			s.controller.sample()
			timer.Reset(s.interval)
		}
	}
}
