package checkpoint

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(isCancelled CancelCheck) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	m := NewManager(store, isCancelled)
	m.pollInterval = 5 * time.Millisecond
	return m, store
}

func pendingCheckpoint() *Checkpoint {
	return &Checkpoint{
		SessionID: "sess-1",
		CascadeID: "demo",
		PhaseName: "review",
		Type:      TypeDecision,
		UISpec: map[string]any{
			"sections": []any{map[string]any{"type": "choice", "input_name": "action"}},
		},
	}
}

func TestManager_CreateAssignsID(t *testing.T) {
	m, store := newTestManager(nil)

	id, err := m.Create(context.Background(), pendingCheckpoint())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	cp, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, cp.Status)
	assert.Equal(t, TypeDecision, cp.Type)
}

func TestManager_WaitUnblocksOnResponse(t *testing.T) {
	m, _ := newTestManager(nil)
	ctx := context.Background()

	id, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		ok, err := m.PostResponse(ctx, id, map[string]any{"action": "approve"})
		assert.NoError(t, err)
		assert.True(t, ok)
	}()

	response, err := m.WaitForResponse(ctx, id, time.Second)
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "approve", response["action"])

	cp, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusResponded, cp.Status)
	assert.NotNil(t, cp.RespondedAt)
}

func TestManager_WaitTimesOut(t *testing.T) {
	m, store := newTestManager(nil)
	ctx := context.Background()

	id, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)

	response, err := m.WaitForResponse(ctx, id, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, response)

	cp, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusTimeout, cp.Status)

	// A late response is rejected
	ok, err := m.PostResponse(ctx, id, map[string]any{"action": "approve"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_WaitUnblocksOnCancel(t *testing.T) {
	var cancelled atomic.Bool
	m, store := newTestManager(func(_ context.Context, sessionID string) (bool, error) {
		return cancelled.Load(), nil
	})
	ctx := context.Background()

	id, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancelled.Store(true)
	}()

	response, err := m.WaitForResponse(ctx, id, time.Second)
	require.NoError(t, err)
	assert.Nil(t, response)

	cp, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cp.Status)
}

func TestManager_WaitPicksUpExternalResponse(t *testing.T) {
	m, store := newTestManager(nil)
	ctx := context.Background()

	id, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)

	// Response written directly to the store, as another process would
	go func() {
		time.Sleep(20 * time.Millisecond)
		_, err := store.SetResponse(ctx, id, map[string]any{"action": "retry"})
		assert.NoError(t, err)
	}()

	response, err := m.WaitForResponse(ctx, id, time.Second)
	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, "retry", response["action"])
}

func TestManager_CancelUnblocksWaiter(t *testing.T) {
	m, _ := newTestManager(nil)
	ctx := context.Background()

	id, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		assert.NoError(t, m.Cancel(ctx, id))
	}()

	response, err := m.WaitForResponse(ctx, id, time.Second)
	require.NoError(t, err)
	assert.Nil(t, response)
}

func TestManager_List(t *testing.T) {
	m, _ := newTestManager(nil)
	ctx := context.Background()

	id1, err := m.Create(ctx, pendingCheckpoint())
	require.NoError(t, err)
	other := pendingCheckpoint()
	other.SessionID = "sess-2"
	_, err = m.Create(ctx, other)
	require.NoError(t, err)

	_, err = m.PostResponse(ctx, id1, map[string]any{"action": "approve"})
	require.NoError(t, err)

	pending, err := m.List(ctx, Filter{Status: StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "sess-2", pending[0].SessionID)

	bySession, err := m.List(ctx, Filter{SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, bySession, 1)
	assert.Equal(t, StatusResponded, bySession[0].Status)
}

func TestManager_ContextCancellation(t *testing.T) {
	m, _ := newTestManager(nil)

	id, err := m.Create(context.Background(), pendingCheckpoint())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = m.WaitForResponse(ctx, id, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}
