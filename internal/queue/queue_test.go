package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/romshark/coop/internal/queue"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPushPopOrder(t *testing.T) {
	q := queue.New()
	require.Equal(t, 0, q.Len())

	require.True(t, q.Push(3))
	require.True(t, q.Push(1))
	require.True(t, q.Push(2))
	require.Equal(t, 3, q.Len())

	ctx := context.Background()
	for _, expected := range []uint64{3, 1, 2} {
		id, err := q.Pop(ctx)
		require.NoError(t, err)
		require.Equal(t, expected, id)
	}
	require.Equal(t, 0, q.Len())
}

func TestPushCoalesces(t *testing.T) {
	q := queue.New()
	require.True(t, q.Push(7))
	require.False(t, q.Push(7))
	require.False(t, q.Push(7))
	require.Equal(t, 1, q.Len())

	id, err := q.Pop(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(7), id)

	// Popping clears the pending mark
	require.True(t, q.Push(7))
	require.Equal(t, 1, q.Len())
}

func TestPopBlocksUntilPush(t *testing.T) {
	q := queue.New()
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push(42)
	}()

	id, err := q.Pop(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(42), id)
}

func TestPopContextDone(t *testing.T) {
	q := queue.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConcurrentProducers(t *testing.T) {
	const producers, perProducer = 8, 100

	q := queue.New()
	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			for i := range perProducer {
				q.Push(uint64(p*perProducer + i))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, producers*perProducer, q.Len())

	seen := make(map[uint64]bool, producers*perProducer)
	for range producers * perProducer {
		id, err := q.Pop(context.Background())
		require.NoError(t, err)
		require.False(t, seen[id], "identity %d popped twice", id)
		seen[id] = true
	}
	require.Equal(t, 0, q.Len())
}
