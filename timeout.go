package coop

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// SetTimeout creates a Timeout that's Ready no earlier than d from now.
// Its background notifier is started on package time.
func SetTimeout(d Duration) *Timeout {
	return SetTimeoutWith(nil, d)
}

// SetTimeoutWith is similar to SetTimeout but starts the background
// notifier on t. If t == nil then standard time package is used.
func SetTimeoutWith(t TimeProvider, d Duration) *Timeout {
	if t == nil {
		t = timeProvider{}
	}
	to := &Timeout{
		deadline: t.Now().Add(d),
		done:     make(chan struct{}),
	}
	t.AfterFunc(d, to.fire)
	return to
}

// Timeout is a Future that becomes Ready once its duration elapsed.
//
// The transition from Pending to Ready happens exactly once on the
// background notifier, which then wakes the Notifier passed to the
// most recent Poll. A Timeout can't be canceled: Close blocks until
// the background notifier has run to completion.
type Timeout struct {
	ready    atomic.Bool
	lock     sync.Mutex
	notifier Notifier
	deadline Time

	done    chan struct{}
	failure any

	closeOnce sync.Once
	closeErr  error
}

// Poll records n as the Notifier to wake on expiry
// and returns the current state without blocking.
func (t *Timeout) Poll(n Notifier) Poll {
	t.lock.Lock()
	t.notifier = n
	t.lock.Unlock()

	if t.ready.Load() {
		return Ready
	}
	return Pending
}

// Expired reports whether the background notifier marked the Timeout Ready.
func (t *Timeout) Expired() bool {
	return t.ready.Load()
}

// Deadline returns the earliest time the Timeout can become Ready.
func (t *Timeout) Deadline() Time {
	return t.deadline
}

// Close blocks until the background notifier finished
// and returns an error wrapping ErrTimerJoin if it panicked.
// Close never cuts the duration short.
func (t *Timeout) Close() error {
	t.closeOnce.Do(func() {
		<-t.done
		if t.failure != nil {
			t.closeErr = fmt.Errorf("%w: %v", ErrTimerJoin, t.failure)
		}
	})
	return t.closeErr
}

func (t *Timeout) fire() {
	defer close(t.done)
	defer func() {
		if v := recover(); v != nil {
			t.failure = v
		}
	}()

	t.ready.Store(true)

	t.lock.Lock()
	n := t.notifier
	t.lock.Unlock()

	if n != nil {
		n.Wake()
	}
}
