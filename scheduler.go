package coop

import (
	"context"
	"errors"
	"fmt"

	"github.com/romshark/coop/internal/park"
	"github.com/romshark/coop/internal/queue"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// ReadyQueue carries the identities of tasks ready for their next poll
// from any number of Notifiers to the Scheduler.
type ReadyQueue interface {
	// Push queues id and must be safe for concurrent use.
	// Returns false if id was coalesced with an already queued entry.
	Push(id uint64) (queued bool)

	// Pop blocks until an identity is available or ctx is done.
	Pop(ctx context.Context) (uint64, error)

	Len() int
}

// New creates a new scheduler with default time provider and ready queue.
func New() *Scheduler {
	return NewWith(nil, nil, nil)
}

// NewWith is similar to New but replaces the default time provider,
// ready queue implementation and logger.
// If t == nil then standard time package is used by default.
// If q == nil then internal/queue.Queue is used by default.
// If log == nil then nothing is logged.
func NewWith(
	t TimeProvider,
	q ReadyQueue,
	log *zerolog.Logger,
) *Scheduler {
	if t == nil {
		t = timeProvider{}
	}
	if q == nil {
		q = queue.New()
	}
	l := zerolog.Nop()
	if log != nil {
		l = *log
	}
	id := ksuid.New()
	return &Scheduler{
		id:       id,
		provider: t,
		queue:    q,
		park:     park.New[*task](),
		log:      l.With().Str("scheduler", id.String()).Logger(),
	}
}

// Scheduler is a cooperative single-goroutine task scheduler.
type Scheduler struct {
	id       ksuid.KSUID
	provider TimeProvider
	queue    ReadyQueue
	park     park.Park[*task]
	nextID   TaskID
	log      zerolog.Logger

	// err is the first error of a Spawn, surfaced by Run.
	err error
}

// ID returns the scheduler's unique instance identifier.
func (s *Scheduler) ID() ksuid.KSUID {
	return s.id
}

// Len returns the number of parked (suspended) tasks.
func (s *Scheduler) Len() int {
	return s.park.Len()
}

// Timeout creates a Timeout on the scheduler's time provider.
func (s *Scheduler) Timeout(d Duration) *Timeout {
	return SetTimeoutWith(s.provider, d)
}

// Spawn assigns f a new task identity and polls it once right away.
// If f suspends it's parked until its Notifier is woken.
// An error encountered while polling f is returned by the next Run.
func (s *Scheduler) Spawn(f Future) {
	id := s.nextID
	s.nextID++
	s.log.Debug().Uint64("task_id", uint64(id)).Msg("task spawned")

	if err := s.poll(newTask(id, f)); err != nil && s.err == nil {
		s.err = err
	}
}

// Run spawns f and drives all parked tasks until none is left.
// Run returns nil once the registry is empty, the first error
// of a polled task, or the context error if ctx is done
// while waiting for a ready task.
// Parked tasks aren't affected by ctx, use Close to release them.
func (s *Scheduler) Run(ctx context.Context, f Future) error {
	s.Spawn(f)
	for {
		if err := s.err; err != nil {
			s.err = nil
			return err
		}
		if s.park.Len() == 0 {
			return nil
		}

		id, err := s.queue.Pop(ctx)
		if err != nil {
			return fmt.Errorf("awaiting ready task: %w", err)
		}

		t, ok := s.park.Remove(id)
		if !ok {
			if id >= uint64(s.nextID) {
				return fmt.Errorf("%w: ready task %d was never spawned", ErrRegistryCorruption, id)
			}
			// Task completed before the notification was serviced
			s.log.Debug().
				Uint64("task_id", id).
				Err(ErrStaleNotification).
				Msg("ignoring notification")
			continue
		}

		if err := s.poll(t); err != nil {
			return err
		}
	}
}

// Close closes every parked task, blocking until the background
// notifiers of their Timeouts have finished.
func (s *Scheduler) Close() error {
	var errs []error
	s.park.Drain(func(id uint64, t *task) {
		s.log.Debug().Uint64("task_id", id).Msg("closing parked task")
		if err := t.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing task %d: %w", id, err))
		}
	})
	return errors.Join(errs...)
}

// poll advances t by one step parking it if it's Pending
// and closing it if it's Ready.
func (s *Scheduler) poll(t *task) error {
	p, err := t.Poll(queueNotifier{id: t.id, queue: s.queue})
	if err != nil {
		s.log.Warn().Uint64("task_id", uint64(t.id)).Err(err).Msg("task panicked")
		if cerr := t.Close(); cerr != nil {
			return errors.Join(err, fmt.Errorf("closing task %d: %w", t.id, cerr))
		}
		return err
	}

	if p == Pending {
		if !s.park.Insert(uint64(t.id), t) {
			return fmt.Errorf("%w: task %d is already parked", ErrRegistryCorruption, t.id)
		}
		s.log.Debug().Uint64("task_id", uint64(t.id)).Msg("task parked")
		return nil
	}

	s.log.Debug().Uint64("task_id", uint64(t.id)).Msg("task completed")
	if err := t.Close(); err != nil {
		return fmt.Errorf("closing task %d: %w", t.id, err)
	}
	return nil
}
