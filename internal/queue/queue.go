package queue

import (
	"context"
	"sync"
)

// New creates an empty ready queue.
func New() *Queue {
	return &Queue{
		pending: make(map[uint64]struct{}),
		signal:  make(chan struct{}, 1),
	}
}

// Queue is a multi-producer single-consumer FIFO of task identities.
// An identity is queued at most once until it's popped,
// further pushes of the same identity are coalesced.
type Queue struct {
	lock    sync.Mutex
	ids     []uint64
	pending map[uint64]struct{}
	signal  chan struct{}
}

// Push appends id to the back of the queue and returns true.
// Returns false if id is already queued and hasn't been popped yet.
// Push is safe for concurrent use.
func (q *Queue) Push(id uint64) (queued bool) {
	q.lock.Lock()
	if _, ok := q.pending[id]; ok {
		q.lock.Unlock()
		return false
	}
	q.pending[id] = struct{}{}
	q.ids = append(q.ids, id)
	q.lock.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
		// Consumer already signaled
	}
	return true
}

// Pop removes and returns the identity at the front of the queue,
// blocking until one is available or ctx is done.
func (q *Queue) Pop(ctx context.Context) (uint64, error) {
	for {
		if id, ok := q.tryPop(); ok {
			return id, nil
		}
		select {
		case <-q.signal:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Len returns the number of queued identities.
func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.ids)
}

func (q *Queue) tryPop() (uint64, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.ids) == 0 {
		return 0, false
	}
	id := q.ids[0]
	q.ids[0] = 0
	q.ids = q.ids[1:]
	if len(q.ids) == 0 {
		// Release the backing array once drained
		q.ids = nil
	}
	delete(q.pending, id)
	return id, true
}
