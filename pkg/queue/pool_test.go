package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelSession(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("sess-1", cancel)

	assert.True(t, pool.CancelSession("sess-1"))
	assert.Error(t, ctx.Err())

	// Cancel should return false for unknown session
	assert.False(t, pool.CancelSession("unknown"))
}

func TestPoolUnregisterSession(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("sess-1", cancel)
	assert.True(t, pool.CancelSession("sess-1"))

	pool.UnregisterSession("sess-1")
	assert.False(t, pool.CancelSession("sess-1"))
}

func TestPoolGetActiveSessionIDs(t *testing.T) {
	pool := &WorkerPool{
		activeSessions: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.getActiveSessionIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterSession("sess-a", cancel1)
	pool.RegisterSession("sess-b", cancel2)

	ids := pool.getActiveSessionIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "sess-a")
	assert.Contains(t, ids, "sess-b")
}

func TestPoolProcessesQueueEndToEnd(t *testing.T) {
	store := newFakeStore(queuedSession("sess-1"), queuedSession("sess-2"))
	executor := &recordingExecutor{}

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0

	pool := NewWorkerPool("pod-1", store, cfg, executor, nil)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return len(executor.executed()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	ids := []string{executor.executed()[0].ID, executor.executed()[1].ID}
	assert.ElementsMatch(t, []string{"sess-1", "sess-2"}, ids)
}

func TestPoolStartTwiceIsNoop(t *testing.T) {
	store := newFakeStore()
	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond

	pool := NewWorkerPool("pod-1", store, cfg, &recordingExecutor{}, nil)
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	assert.Len(t, pool.workers, 1)
	pool.Stop()
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		config:         testQueueConfig(),
		stopCh:         make(chan struct{}),
		activeSessions: make(map[string]context.CancelFunc),
	}

	pool.Stop()
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestPoolHealth(t *testing.T) {
	store := newFakeStore(queuedSession("sess-queued"))
	store.active = 1

	cfg := testQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	pool := NewWorkerPool("pod-1", store, cfg, &recordingExecutor{block: make(chan struct{})}, nil)
	pool.workers = append(pool.workers, NewWorker("pod-1-worker-0", "pod-1", store, cfg, nil, pool))

	h := pool.Health()
	assert.True(t, h.IsHealthy)
	assert.True(t, h.DBReachable)
	assert.Equal(t, "pod-1", h.PodID)
	assert.Equal(t, 1, h.TotalWorkers)
	assert.Equal(t, 0, h.ActiveWorkers)
	assert.Equal(t, 1, h.ActiveSessions)
	assert.Equal(t, 1, h.QueueDepth)
	require.Len(t, h.WorkerStats, 1)
	assert.Equal(t, "pod-1-worker-0", h.WorkerStats[0].ID)
}
