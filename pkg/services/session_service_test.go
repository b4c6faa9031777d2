package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/test/util"
)

func TestSessionService_CreateSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	input := "investigate failing pods"
	session, err := svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "sess-1",
		CascadeID: "incident_triage",
		Input:     &input,
		Metadata:  map[string]any{"source": "api"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)
	assert.Equal(t, cascadesession.StatusQueued, session.Status)
	assert.Equal(t, 0, session.Depth)

	// Duplicate ids are rejected
	_, err = svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "sess-1",
		CascadeID: "incident_triage",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Generated id when none supplied
	generated, err := svc.CreateSession(ctx, CreateSessionRequest{CascadeID: "incident_triage"})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)

	// cascade_id is required
	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "sess-2"})
	assert.True(t, IsValidationError(err))
}

func TestSessionService_ChildSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	parent, err := svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "parent", CascadeID: "demo",
	})
	require.NoError(t, err)

	child, err := svc.CreateSession(ctx, CreateSessionRequest{
		SessionID:       "parent_sounding_0",
		CascadeID:       "demo",
		ParentSessionID: &parent.ID,
		Depth:           1,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentSessionID)
	assert.Equal(t, "parent", *child.ParentSessionID)

	// Children must declare a depth
	_, err = svc.CreateSession(ctx, CreateSessionRequest{
		SessionID:       "bad_child",
		CascadeID:       "demo",
		ParentSessionID: &parent.ID,
	})
	assert.True(t, IsValidationError(err))
}

func TestSessionService_StatusTransitions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "s1", CascadeID: "demo"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, "s1", cascadesession.StatusRunning, nil))
	require.NoError(t, svc.UpdateStatus(ctx, "s1", cascadesession.StatusBlocked, nil))
	require.NoError(t, svc.UpdateStatus(ctx, "s1", cascadesession.StatusRunning, nil))
	require.NoError(t, svc.UpdateStatus(ctx, "s1", cascadesession.StatusCompleted, nil))

	session, err := svc.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusCompleted, session.Status)
	assert.NotNil(t, session.CompletedAt)
	assert.NotNil(t, session.StartedAt)

	// Terminal statuses absorb
	err = svc.UpdateStatus(ctx, "s1", cascadesession.StatusRunning, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// queued cannot jump straight to completed
	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "s2", CascadeID: "demo"})
	require.NoError(t, err)
	err = svc.UpdateStatus(ctx, "s2", cascadesession.StatusCompleted, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Error terminal records the message
	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "s3", CascadeID: "demo"})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, "s3", cascadesession.StatusRunning, nil))
	msg := "phase draft failed"
	require.NoError(t, svc.UpdateStatus(ctx, "s3", cascadesession.StatusError, &msg))
	session, err = svc.GetSession(ctx, "s3")
	require.NoError(t, err)
	require.NotNil(t, session.ErrorMessage)
	assert.Equal(t, "phase draft failed", *session.ErrorMessage)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, "missing", cascadesession.StatusRunning, nil), ErrNotFound)
}

func TestSessionService_Heartbeat(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "s1", CascadeID: "demo"})
	require.NoError(t, err)

	require.NoError(t, svc.Heartbeat(ctx, "s1"))
	session, err := svc.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, session.HeartbeatAt)
	assert.WithinDuration(t, time.Now(), *session.HeartbeatAt, 5*time.Second)

	assert.ErrorIs(t, svc.Heartbeat(ctx, "missing"), ErrNotFound)
}

func TestSessionService_RequestCancelCascades(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	root, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "root", CascadeID: "demo"})
	require.NoError(t, err)
	child, err := svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "child", CascadeID: "demo", ParentSessionID: &root.ID, Depth: 1,
	})
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "grandchild", CascadeID: "demo", ParentSessionID: &child.ID, Depth: 2,
	})
	require.NoError(t, err)

	// A completed child is left alone
	done, err := svc.CreateSession(ctx, CreateSessionRequest{
		SessionID: "done_child", CascadeID: "demo", ParentSessionID: &root.ID, Depth: 1,
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, done.ID, cascadesession.StatusRunning, nil))
	require.NoError(t, svc.UpdateStatus(ctx, done.ID, cascadesession.StatusCompleted, nil))

	require.NoError(t, svc.RequestCancel(ctx, "root", "user requested"))

	for _, id := range []string{"root", "child", "grandchild"} {
		cancelled, err := svc.IsCancelled(ctx, id)
		require.NoError(t, err)
		assert.True(t, cancelled, id)
	}
	cancelled, err := svc.IsCancelled(ctx, "done_child")
	require.NoError(t, err)
	assert.False(t, cancelled)

	session, err := svc.GetSession(ctx, "root")
	require.NoError(t, err)
	require.NotNil(t, session.CancelReason)
	assert.Equal(t, "user requested", *session.CancelReason)
}

func TestSessionService_ClaimNextQueuedSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	claimed, err := svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)
	assert.Nil(t, claimed)

	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "first", CascadeID: "demo"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "second", CascadeID: "demo"})
	require.NoError(t, err)

	claimed, err = svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "first", claimed.ID)
	assert.Equal(t, cascadesession.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.HeartbeatAt)

	claimed, err = svc.ClaimNextQueuedSession(ctx, "pod-b")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, "second", claimed.ID)

	claimed, err = svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestSessionService_OrphanDetection(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "stale", CascadeID: "demo"})
	require.NoError(t, err)
	_, err = svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)

	// Fresh heartbeat: not orphaned
	orphans, err := svc.FindOrphanedSessions(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Age the heartbeat
	_, err = client.CascadeSession.UpdateOneID("stale").
		SetHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	orphans, err = svc.FindOrphanedSessions(ctx, time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "stale", orphans[0].ID)

	marked, err := svc.MarkOrphaned(ctx, "stale")
	require.NoError(t, err)
	assert.True(t, marked)

	// Idempotent
	marked, err = svc.MarkOrphaned(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, marked)

	session, err := svc.GetSession(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusOrphaned, session.Status)
}

func TestSessionService_RecoverPodSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "mine", CascadeID: "demo"})
	require.NoError(t, err)
	_, err = svc.ClaimNextQueuedSession(ctx, "pod-a")
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, CreateSessionRequest{SessionID: "other", CascadeID: "demo"})
	require.NoError(t, err)
	_, err = svc.ClaimNextQueuedSession(ctx, "pod-b")
	require.NoError(t, err)

	n, err := svc.RecoverPodSessions(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mine, err := svc.GetSession(ctx, "mine")
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusOrphaned, mine.Status)

	other, err := svc.GetSession(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, cascadesession.StatusRunning, other.Status)
}

func TestSessionService_ListSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: id, CascadeID: "demo"})
		require.NoError(t, err)
	}
	_, err := svc.CreateSession(ctx, CreateSessionRequest{SessionID: "d", CascadeID: "other"})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, "a", cascadesession.StatusRunning, nil))

	resp, err := svc.ListSessions(ctx, SessionFilters{CascadeID: "demo"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Sessions, 3)

	resp, err = svc.ListSessions(ctx, SessionFilters{Status: "running"})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "a", resp.Sessions[0].ID)

	resp, err = svc.ListSessions(ctx, SessionFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalCount)
	assert.Len(t, resp.Sessions, 2)
}
