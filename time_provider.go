package coop

import (
	"time"

	"github.com/romshark/coop/internal/timers"
)

type (
	Time     = time.Time
	Duration = time.Duration
)

const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

type Timer interface {
	Stop() bool
}

// TimeProvider starts the background notifiers of Timeouts.
// AfterFunc must execute fn exactly once after d unless
// the returned Timer is stopped.
type TimeProvider interface {
	Now() Time
	AfterFunc(Duration, func()) Timer
}

// timeProvider delegates to package time.
// Pending runtime timers don't occupy a goroutine each.
type timeProvider struct{}

func (p timeProvider) Now() Time {
	return time.Now()
}

func (p timeProvider) AfterFunc(d Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewTimerLoop creates a TimeProvider servicing all of its timers
// from a single background goroutine in deadline order.
// Its callbacks must not block.
func NewTimerLoop() *TimerLoop {
	return &TimerLoop{loop: timers.New()}
}

// TimerLoop is a single-goroutine TimeProvider.
type TimerLoop struct {
	loop *timers.Loop
}

func (p *TimerLoop) Now() Time {
	return time.Now()
}

func (p *TimerLoop) AfterFunc(d Duration, fn func()) Timer {
	return p.loop.AfterFunc(d, fn)
}

// Len returns the number of timers that haven't fired yet.
func (p *TimerLoop) Len() int {
	return p.loop.Len()
}

// Close blocks until every pending timer has fired and stops the loop.
// Timers started after Close fall back to package time.
func (p *TimerLoop) Close() {
	p.loop.Close()
}
