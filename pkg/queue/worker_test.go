package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SessionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanScanInterval:      5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

// fakeStore is an in-memory SessionStore.
type fakeStore struct {
	mu       sync.Mutex
	queued   []*ent.CascadeSession
	active   int
	statuses map[string]cascadesession.Status
	errMsgs  map[string]string
	orphans  []*ent.CascadeSession
	marked   []string
	claimErr error
}

func newFakeStore(queued ...*ent.CascadeSession) *fakeStore {
	return &fakeStore{
		queued:   queued,
		statuses: make(map[string]cascadesession.Status),
		errMsgs:  make(map[string]string),
	}
}

func (f *fakeStore) ClaimNextQueuedSession(_ context.Context, podID string) (*ent.CascadeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if len(f.queued) == 0 {
		return nil, nil
	}
	session := f.queued[0]
	f.queued = f.queued[1:]
	f.statuses[session.ID] = cascadesession.StatusRunning
	session.PodID = &podID
	return session, nil
}

func (f *fakeStore) CountActiveSessions(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active, nil
}

func (f *fakeStore) CountQueuedSessions(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queued), nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, sessionID string, status cascadesession.Status, errorMessage *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[sessionID] = status
	if errorMessage != nil {
		f.errMsgs[sessionID] = *errorMessage
	}
	return nil
}

func (f *fakeStore) FindOrphanedSessions(context.Context, time.Duration) ([]*ent.CascadeSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orphans, nil
}

func (f *fakeStore) MarkOrphaned(_ context.Context, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, sessionID)
	return true, nil
}

func (f *fakeStore) statusOf(sessionID string) cascadesession.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[sessionID]
}

// recordingExecutor captures the sessions it was handed.
type recordingExecutor struct {
	mu       sync.Mutex
	sessions []*ent.CascadeSession
	err      error
	block    chan struct{}
}

func (e *recordingExecutor) Execute(ctx context.Context, session *ent.CascadeSession) error {
	e.mu.Lock()
	e.sessions = append(e.sessions, session)
	e.mu.Unlock()
	if e.block != nil {
		select {
		case <-e.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return e.err
}

func (e *recordingExecutor) executed() []*ent.CascadeSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*ent.CascadeSession(nil), e.sessions...)
}

func queuedSession(id string) *ent.CascadeSession {
	return &ent.CascadeSession{ID: id, CascadeID: "triage", Status: cascadesession.StatusQueued}
}

func TestWorkerPollAndProcess(t *testing.T) {
	store := newFakeStore(queuedSession("sess-1"))
	executor := &recordingExecutor{}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), executor, nil)
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, pool)

	require.NoError(t, w.pollAndProcess(context.Background()))

	executed := executor.executed()
	require.Len(t, executed, 1)
	assert.Equal(t, "sess-1", executed[0].ID)
	assert.Equal(t, "pod-1", *executed[0].PodID)
	assert.Equal(t, 1, w.Health().SessionsProcessed)
}

func TestWorkerPollAndProcessEmptyQueue(t *testing.T) {
	store := newFakeStore()
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &recordingExecutor{}, nil)
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), &recordingExecutor{}, pool)

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
}

func TestWorkerPollAndProcessAtCapacity(t *testing.T) {
	store := newFakeStore(queuedSession("sess-1"))
	store.active = 5
	executor := &recordingExecutor{}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), executor, nil)
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, pool)

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
	assert.Empty(t, executor.executed())
}

func TestWorkerRecordsExecutorFailure(t *testing.T) {
	store := newFakeStore(queuedSession("sess-1"))
	executor := &recordingExecutor{err: errors.New("cascade \"triage\" declares no phases")}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), executor, nil)
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, pool)

	require.NoError(t, w.pollAndProcess(context.Background()))

	assert.Equal(t, cascadesession.StatusError, store.statusOf("sess-1"))
	assert.Contains(t, store.errMsgs["sess-1"], "declares no phases")
}

func TestWorkerRecordsCancellation(t *testing.T) {
	store := newFakeStore(queuedSession("sess-1"))
	executor := &recordingExecutor{block: make(chan struct{})}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), executor, nil)
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, pool)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.pollAndProcess(context.Background())
	}()

	// Wait for the session to register, then cancel it through the pool.
	require.Eventually(t, func() bool {
		return pool.CancelSession("sess-1")
	}, 2*time.Second, 10*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not return after cancellation")
	}

	assert.Equal(t, cascadesession.StatusCancelled, store.statusOf("sess-1"))
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1*time.Second, w.pollInterval())
	}
}

func TestWorkerHealth(t *testing.T) {
	w := NewWorker("worker-1", "pod-1", nil, testQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentSessionID)
	assert.Equal(t, 0, h.SessionsProcessed)

	w.setStatus(WorkerStatusWorking, "sess-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "sess-abc", h.CurrentSessionID)

	w.setStatus(WorkerStatusIdle, "")
	assert.Equal(t, "idle", w.Health().Status)
}

func TestExecutorFunc(t *testing.T) {
	var got string
	fn := ExecutorFunc(func(_ context.Context, session *ent.CascadeSession) error {
		got = session.ID
		return fmt.Errorf("boom")
	})
	err := fn.Execute(context.Background(), queuedSession("sess-x"))
	assert.Equal(t, "sess-x", got)
	assert.EqualError(t, err, "boom")
}
