package coop

import "runtime/debug"

// TaskID identifies a spawned task.
// Identities are assigned in ascending order and never reused
// by the Scheduler that assigned them.
type TaskID uint64

// task wraps one suspended computation.
type task struct {
	id     TaskID
	future Future
	closed bool
}

func newTask(id TaskID, f Future) *task {
	return &task{id: id, future: f}
}

// Poll advances the computation by one step passing n along
// as the Notifier for the next poll.
// A panic inside the computation is recovered and returned as *PanicError.
func (t *task) Poll(n Notifier) (p Poll, err error) {
	defer func() {
		if v := recover(); v != nil {
			p, err = Ready, &PanicError{Task: t.id, Value: v, Stack: debug.Stack()}
		}
	}()
	return t.future.Poll(n), nil
}

// Close tears down the computation. Subsequent calls are no-ops.
func (t *task) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return closeFuture(t.future)
}
