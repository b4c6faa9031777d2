package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/services"
	testdb "github.com/windlassio/windlass/test/database"
)

// createQueuedSession creates a cascade session in queued status.
func createQueuedSession(ctx context.Context, t *testing.T, client *ent.Client) *ent.CascadeSession {
	t.Helper()
	input := "survey the wreck"
	session, err := client.CascadeSession.Create().
		SetID(uuid.New().String()).
		SetCascadeID("survey").
		SetStatus(cascadesession.StatusQueued).
		SetInput(input).
		Save(ctx)
	require.NoError(t, err)
	return session
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanScanInterval:      time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// TestForUpdateSkipLockedClaiming tests that a queued session is claimed
// atomically and a second claim comes up empty.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	svc := services.NewSessionService(dbClient.Client)
	ctx := context.Background()

	session := createQueuedSession(ctx, t, dbClient.Client)

	claimed, err := svc.ClaimNextQueuedSession(ctx, "test-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed, "the queued session should be claimed")
	assert.Equal(t, session.ID, claimed.ID)
	assert.Equal(t, cascadesession.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.NotNil(t, claimed.HeartbeatAt)

	claimed2, err := svc.ClaimNextQueuedSession(ctx, "test-pod")
	require.NoError(t, err)
	assert.Nil(t, claimed2, "no queued sessions should remain")
}

// TestConcurrentClaimsAcrossReplicas runs claimers from two database clients
// against one schema and verifies each session is claimed exactly once.
func TestConcurrentClaimsAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	podA := services.NewSessionService(shared.NewClient(t).Client)
	podB := services.NewSessionService(shared.NewClient(t).Client)
	seedClient := shared.NewClient(t).Client
	ctx := context.Background()

	const sessions = 6
	want := make(map[string]struct{}, sessions)
	for i := 0; i < sessions; i++ {
		s := createQueuedSession(ctx, t, seedClient)
		want[s.ID] = struct{}{}
	}

	var mu sync.Mutex
	claimed := make(map[string]string, sessions)
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		svc, pod := podA, "pod-a"
		if i%2 == 1 {
			svc, pod = podB, "pod-b"
		}
		wg.Add(1)
		go func(svc *services.SessionService, pod string) {
			defer wg.Done()
			session, err := svc.ClaimNextQueuedSession(ctx, pod)
			require.NoError(t, err)
			if session == nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			prev, dup := claimed[session.ID]
			require.False(t, dup, "session %s claimed by both %s and %s", session.ID, prev, pod)
			claimed[session.ID] = pod
		}(svc, pod)
	}
	wg.Wait()

	assert.Len(t, claimed, sessions, "every queued session should be claimed exactly once")
	for id := range claimed {
		_, known := want[id]
		assert.True(t, known, "claimed unknown session %s", id)
	}
}

// TestOrphanScanAcrossReplicas lets a second replica's janitor reap a session
// whose owner stopped heartbeating.
func TestOrphanScanAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ownerClient := shared.NewClient(t).Client
	owner := services.NewSessionService(ownerClient)
	janitorStore := services.NewSessionService(shared.NewClient(t).Client)
	ctx := context.Background()

	session := createQueuedSession(ctx, t, ownerClient)
	claimed, err := owner.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Age the heartbeat past the lease.
	stale := time.Now().Add(-time.Minute)
	err = ownerClient.CascadeSession.UpdateOneID(session.ID).
		SetHeartbeatAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-b", janitorStore, intTestQueueConfig(), nil, nil)
	require.NoError(t, pool.scanForOrphans(ctx))

	got, err := ownerClient.CascadeSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusOrphaned, got.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

// TestRecoverPodSessionsOnRestart marks sessions the pod owned before a
// restart as orphaned, without touching other pods' sessions.
func TestRecoverPodSessionsOnRestart(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	svc := services.NewSessionService(dbClient.Client)
	ctx := context.Background()

	createQueuedSession(ctx, t, dbClient.Client)
	createQueuedSession(ctx, t, dbClient.Client)
	mine, err := svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, mine)
	theirs, err := svc.ClaimNextQueuedSession(ctx, "pod-b")
	require.NoError(t, err)
	require.NotNil(t, theirs)

	n, err := svc.RecoverPodSessions(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := dbClient.CascadeSession.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusOrphaned, got.Status)
	assert.NotNil(t, got.CompletedAt)

	other, err := dbClient.CascadeSession.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusRunning, other.Status)
}

// TestPoolEndToEndWithDatabase runs the full pool against PostgreSQL with an
// executor that marks sessions completed.
func TestPoolEndToEndWithDatabase(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	svc := services.NewSessionService(dbClient.Client)
	ctx := context.Background()

	const sessions = 4
	ids := make([]string, 0, sessions)
	for i := 0; i < sessions; i++ {
		ids = append(ids, createQueuedSession(ctx, t, dbClient.Client).ID)
	}

	executor := ExecutorFunc(func(ctx context.Context, session *ent.CascadeSession) error {
		return svc.UpdateStatus(ctx, session.ID, cascadesession.StatusCompleted, nil)
	})

	pool := NewWorkerPool("test-pod", svc, intTestQueueConfig(), executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := dbClient.CascadeSession.Query().
			Where(cascadesession.StatusEQ(cascadesession.StatusCompleted)).
			Count(ctx)
		return err == nil && n == sessions
	}, 15*time.Second, 100*time.Millisecond, "all queued sessions should complete")

	for _, id := range ids {
		got, err := dbClient.CascadeSession.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, cascadesession.StatusCompleted, got.Status, "session %s", id)
	}

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
}
