package coop

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleNotification is reported when a ready identity has no parked task.
	// The scheduler absorbs it, it's never returned by Run.
	ErrStaleNotification = errors.New("stale notification")

	// ErrRegistryCorruption is returned by Run when the task registry
	// contradicts the scheduler's own bookkeeping.
	ErrRegistryCorruption = errors.New("task registry corrupted")

	// ErrTimerJoin is returned when a Timeout's background notifier
	// didn't run to completion.
	ErrTimerJoin = errors.New("timer background notifier failed")

	// ErrTaskPanic is matched by every PanicError.
	ErrTaskPanic = errors.New("task panicked")
)

// PanicError is returned when a computation panics while being polled.
type PanicError struct {
	Task  TaskID
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task %d panicked: %v", e.Task, e.Value)
}

// Is reports whether target is ErrTaskPanic.
func (e *PanicError) Is(target error) bool { return target == ErrTaskPanic }

// Unwrap returns the panic value if it's an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
