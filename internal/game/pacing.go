package game

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Pacer slows the game down between players so a person can follow along
type Pacer interface {
	Pause(ctx context.Context)
}

// NoPacer never waits
type NoPacer struct{}

func (NoPacer) Pause(context.Context) {}

// ClockPacer waits a fixed delay on a quartz clock
type ClockPacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewClockPacer creates a pacer waiting delay on clock. A zero or negative
// delay never waits.
func NewClockPacer(clock quartz.Clock, delay time.Duration) *ClockPacer {
	return &ClockPacer{clock: clock, delay: delay}
}

// Delay returns the configured pause length
func (p *ClockPacer) Delay() time.Duration {
	return p.delay
}

// Pause blocks for the delay or until ctx is done, whichever comes first
func (p *ClockPacer) Pause(ctx context.Context) {
	if p.delay <= 0 {
		return
	}
	if ctx.Err() != nil {
		return
	}

	timer := p.clock.NewTimer(p.delay, "pacer")
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
