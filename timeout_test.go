package coop_test

import (
	"sync"
	"testing"
	"time"

	"github.com/romshark/coop"
	"github.com/romshark/coop/internal/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// expectTimer expects one timer of duration d to be started
// on tm and returns a function firing it.
func expectTimer(
	mc *gomock.Controller,
	tm *mock.MockTimeProvider,
	start time.Time,
	d time.Duration,
) (fire func()) {
	tm.EXPECT().
		Now().
		MaxTimes(1).
		Return(start)

	var lock sync.Mutex
	var fn func()
	tm.EXPECT().
		AfterFunc(d, gomock.Any()).
		Times(1).
		DoAndReturn(func(_ time.Duration, f func()) coop.Timer {
			lock.Lock()
			defer lock.Unlock()
			fn = f
			return mock.NewMockTimer(mc)
		})

	return func() {
		lock.Lock()
		f := fn
		lock.Unlock()
		f()
	}
}

func TestTimeoutWakesLastNotifier(t *testing.T) {
	mc := gomock.NewController(t)
	tm := mock.NewMockTimeProvider(mc)

	start := time.Date(2021, 6, 20, 10, 00, 00, 0, time.UTC)
	fire := expectTimer(mc, tm, start, coop.Second)

	to := coop.SetTimeoutWith(tm, coop.Second)
	require.Equal(t, start.Add(coop.Second), to.Deadline())
	require.False(t, to.Expired())

	first, last := &countingNotifier{}, &countingNotifier{}
	require.Equal(t, coop.Pending, to.Poll(first))
	require.Equal(t, coop.Pending, to.Poll(last))

	fire()

	require.True(t, to.Expired())
	require.Zero(t, first.wakes)
	require.Equal(t, 1, last.wakes)

	require.Equal(t, coop.Ready, to.Poll(first))
	require.NoError(t, to.Close())
	require.NoError(t, to.Close())
}

func TestTimeoutFiresBeforeFirstPoll(t *testing.T) {
	mc := gomock.NewController(t)
	tm := mock.NewMockTimeProvider(mc)

	start := time.Date(2021, 6, 20, 10, 00, 00, 0, time.UTC)
	fire := expectTimer(mc, tm, start, coop.Millisecond)

	to := coop.SetTimeoutWith(tm, coop.Millisecond)
	fire()

	n := &countingNotifier{}
	require.Equal(t, coop.Ready, to.Poll(n))
	require.Zero(t, n.wakes, "no notifier was recorded when the timer fired")
	require.NoError(t, to.Close())
}

func TestTimeoutCloseReportsNotifierPanic(t *testing.T) {
	mc := gomock.NewController(t)
	tm := mock.NewMockTimeProvider(mc)

	start := time.Date(2021, 6, 20, 10, 00, 00, 0, time.UTC)
	fire := expectTimer(mc, tm, start, coop.Minute)

	to := coop.SetTimeoutWith(tm, coop.Minute)
	require.Equal(t, coop.Pending, to.Poll(coop.NotifierFunc(func() {
		panic("notifier failed")
	})))

	fire()

	err := to.Close()
	require.ErrorIs(t, err, coop.ErrTimerJoin)
	require.Contains(t, err.Error(), "notifier failed")
	require.True(t, to.Expired())
}

func TestTimeoutCloseBlocksForFullDuration(t *testing.T) {
	const d = 50 * time.Millisecond

	start := time.Now()
	to := coop.SetTimeout(d)
	require.NoError(t, to.Close())

	require.GreaterOrEqual(t, time.Since(start), d)
	require.True(t, to.Expired())
}

func TestTimeoutOnTimerLoop(t *testing.T) {
	const d = 50 * time.Millisecond

	p := coop.NewTimerLoop()
	defer p.Close()

	start := time.Now()
	to := coop.SetTimeoutWith(p, d)
	require.Equal(t, 1, p.Len())

	woken := make(chan struct{})
	if to.Poll(coop.NotifierFunc(func() { close(woken) })) == coop.Pending {
		<-woken
	}

	require.GreaterOrEqual(t, time.Since(start), d)
	require.Equal(t, coop.Ready, to.Poll(coop.NotifierFunc(func() {})))
	require.NoError(t, to.Close())
	require.Equal(t, 0, p.Len())
}
