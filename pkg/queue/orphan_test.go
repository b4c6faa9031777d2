package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
)

func TestScanForOrphansMarksStaleSessions(t *testing.T) {
	store := newFakeStore()
	store.orphans = []*ent.CascadeSession{
		{ID: "sess-stale-1", CascadeID: "triage", Status: cascadesession.StatusRunning},
		{ID: "sess-stale-2", CascadeID: "triage", Status: cascadesession.StatusBlocked},
	}

	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &recordingExecutor{}, nil)
	require.NoError(t, pool.scanForOrphans(context.Background()))

	assert.ElementsMatch(t, []string{"sess-stale-1", "sess-stale-2"}, store.marked)

	pool.janitor.mu.Lock()
	defer pool.janitor.mu.Unlock()
	assert.Equal(t, 2, pool.janitor.recovered)
	assert.False(t, pool.janitor.lastScan.IsZero())
}

func TestScanForOrphansEmptyUpdatesTimestamp(t *testing.T) {
	store := newFakeStore()
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &recordingExecutor{}, nil)

	require.NoError(t, pool.scanForOrphans(context.Background()))

	assert.Empty(t, store.marked)
	pool.janitor.mu.Lock()
	defer pool.janitor.mu.Unlock()
	assert.Equal(t, 0, pool.janitor.recovered)
	assert.False(t, pool.janitor.lastScan.IsZero())
}
