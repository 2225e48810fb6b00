package timers

import (
	"sync"
	"time"

	"github.com/huandu/skiplist"
)

// New creates a timer loop and starts its background goroutine.
func New() *Loop {
	l := &Loop{
		l: skiplist.New(
			skiplist.GreaterThanFunc(func(a, b interface{}) int {
				k1, k2 := a.(key), b.(key)
				switch {
				case k1.due.After(k2.due):
					return 1
				case k1.due.Before(k2.due):
					return -1
				case k1.seq > k2.seq:
					return 1
				case k1.seq < k2.seq:
					return -1
				}
				return 0
			}),
		),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Loop services any number of timers from a single goroutine.
// Callbacks are executed sequentially on the loop goroutine
// in deadline order and must not block.
type Loop struct {
	lock   sync.Mutex
	l      *skiplist.SkipList
	seq    uint64
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// Timer is a single callback registered with a Loop.
type Timer struct {
	loop    *Loop
	k       key
	runtime *time.Timer
}

// AfterFunc registers fn for execution on the loop goroutine after d.
// Once the loop is closed fn is handed to the runtime timer instead.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	l.lock.Lock()
	if l.closed {
		l.lock.Unlock()
		return &Timer{runtime: time.AfterFunc(d, fn)}
	}
	l.seq++
	k := key{due: time.Now().Add(d), seq: l.seq}
	e := l.l.Set(k, fn)
	front := e.Prev() == nil
	l.lock.Unlock()

	if front {
		// The new timer is due before the one the loop sleeps on
		l.notify()
	}
	return &Timer{loop: l, k: k}
}

// Stop prevents the timer from firing.
// Returns false if the timer already fired or was stopped.
func (t *Timer) Stop() bool {
	if t.runtime != nil {
		return t.runtime.Stop()
	}
	t.loop.lock.Lock()
	defer t.loop.lock.Unlock()
	return t.loop.l.Remove(t.k) != nil
}

// Len returns the number of pending timers.
func (l *Loop) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.l.Len()
}

// Close stops accepting new timers and blocks until
// every pending timer has fired and the loop goroutine exited.
func (l *Loop) Close() {
	l.lock.Lock()
	l.closed = true
	l.lock.Unlock()
	l.notify()
	<-l.done
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		due, wait, exit := l.collect(time.Now())
		for _, fn := range due {
			fn()
		}
		if exit {
			return
		}
		if len(due) > 0 {
			continue
		}

		if wait < 0 {
			<-l.wake
			continue
		}
		tm := time.NewTimer(wait)
		select {
		case <-tm.C:
		case <-l.wake:
			tm.Stop()
		}
	}
}

// collect removes all timers due at now.
// wait is the time until the next pending timer, or -1 if there is none.
func (l *Loop) collect(now time.Time) (due []func(), wait time.Duration, exit bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	wait = -1
	for e := l.l.Front(); e != nil; e = l.l.Front() {
		k := e.Key().(key)
		if k.due.After(now) {
			wait = k.due.Sub(now)
			break
		}
		l.l.RemoveFront()
		due = append(due, e.Value.(func()))
	}
	exit = l.closed && l.l.Len() == 0 && len(due) == 0
	return due, wait, exit
}

type key struct {
	due time.Time
	seq uint64
}
