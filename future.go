package coop

import (
	"errors"
	"io"
)

// Poll is the result of advancing a Future by one step.
type Poll uint8

const (
	Pending Poll = iota
	Ready
)

func (p Poll) String() string {
	switch p {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	}
	return "invalid"
}

// Future is a suspended computation producing no value.
//
// Poll advances the computation by one step without blocking.
// When it returns Pending the computation must have arranged
// for n (or a Notifier bound to the same task) to be woken
// once it can make progress.
// A Future must not be polled again after it returned Ready.
//
// A Future that holds resources implements io.Closer,
// Close is called once the Future is no longer needed.
type Future interface {
	Poll(n Notifier) Poll
}

// FutureFunc adapts a function to the Future interface.
type FutureFunc func(n Notifier) Poll

// Poll calls f(n).
func (f FutureFunc) Poll(n Notifier) Poll { return f(n) }

// Do returns a Future that executes fn on its first poll
// and is Ready right away.
func Do(fn func()) Future {
	done := false
	return FutureFunc(func(Notifier) Poll {
		if !done {
			done = true
			fn()
		}
		return Ready
	})
}

// Yield returns a Future that suspends exactly once,
// waking its own task before it returns Pending.
func Yield() Future {
	return &yield{}
}

type yield struct{ yielded bool }

func (y *yield) Poll(n Notifier) Poll {
	if y.yielded {
		return Ready
	}
	y.yielded = true
	n.Wake()
	return Pending
}

// Seq returns a Future that awaits the Futures constructed by steps
// one after another. Each step is invoked only once its predecessor
// is Ready, so timers created by a step start when the step is reached.
// A nil Future returned by a step counts as Ready.
func Seq(steps ...func() Future) Future {
	return &seq{steps: steps}
}

type seq struct {
	steps []func() Future
	cur   Future
	err   error
}

func (s *seq) Poll(n Notifier) Poll {
	for {
		if s.cur == nil {
			if len(s.steps) == 0 {
				return Ready
			}
			s.cur = s.steps[0]()
			s.steps = s.steps[1:]
			if s.cur == nil {
				continue
			}
		}
		if s.cur.Poll(n) == Pending {
			return Pending
		}
		s.err = errors.Join(s.err, closeFuture(s.cur))
		s.cur = nil
	}
}

// Close closes the current step and reports any error
// encountered while closing completed steps.
func (s *seq) Close() error {
	err := errors.Join(s.err, closeFuture(s.cur))
	s.cur, s.err, s.steps = nil, nil, nil
	return err
}

// Join returns a Future that is Ready once both a and b are Ready.
// Both branches are polled with the same Notifier and
// a finished branch is closed and never polled again.
func Join(a, b Future) Future {
	return &join{a: a, b: b}
}

type join struct {
	a, b         Future
	aDone, bDone bool
	err          error
}

func (j *join) Poll(n Notifier) Poll {
	if !j.aDone && j.a.Poll(n) == Ready {
		j.aDone = true
		j.err = errors.Join(j.err, closeFuture(j.a))
	}
	if !j.bDone && j.b.Poll(n) == Ready {
		j.bDone = true
		j.err = errors.Join(j.err, closeFuture(j.b))
	}
	if j.aDone && j.bDone {
		return Ready
	}
	return Pending
}

// Close closes the unfinished branches and reports any error
// encountered while closing finished ones.
func (j *join) Close() error {
	err := j.err
	if !j.aDone {
		j.aDone = true
		err = errors.Join(err, closeFuture(j.a))
	}
	if !j.bDone {
		j.bDone = true
		err = errors.Join(err, closeFuture(j.b))
	}
	j.err = nil
	return err
}

func closeFuture(f Future) error {
	if c, ok := f.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
