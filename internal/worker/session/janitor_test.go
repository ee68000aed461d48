package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
	ttl   atomic.Int64
}

func (s *countingSweeper) SweepIdle(ttl time.Duration) int {
	s.calls.Add(1)
	s.ttl.Store(int64(ttl))
	return 1
}

func TestJanitor_SweepsOnInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewJanitor(sweeper, time.Minute, 5*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- j.Start(context.Background()) }()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(time.Minute), sweeper.ttl.Load())

	require.NoError(t, j.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestJanitor_StopsOnContextCancel(t *testing.T) {
	j := NewJanitor(&countingSweeper{}, time.Minute, time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- j.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
