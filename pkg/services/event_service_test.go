package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/test/util"
)

func insertEvent(t *testing.T, svc *EventService, sessionID, channel, payload string) {
	t.Helper()
	_, err := svc.db.ExecContext(context.Background(),
		`INSERT INTO events (session_id, channel, payload) VALUES ($1, $2, $3)`,
		sessionID, channel, payload)
	require.NoError(t, err)
}

func TestEventService_GetCatchupEvents(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	svc := NewEventService(db)
	ctx := context.Background()

	insertEvent(t, svc, "s1", "session:s1", `{"type":"phase_started","phase":"triage"}`)
	insertEvent(t, svc, "s1", "session:s1", `{"type":"phase_completed","phase":"triage"}`)
	insertEvent(t, svc, "s2", "session:s2", `{"type":"phase_started","phase":"draft"}`)

	got, err := svc.GetCatchupEvents(ctx, "session:s1", 0, 100)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "phase_started", got[0].Payload["type"])
	assert.Equal(t, "phase_completed", got[1].Payload["type"])
	assert.Less(t, got[0].ID, got[1].ID)

	// sinceID skips already-delivered events
	resumed, err := svc.GetCatchupEvents(ctx, "session:s1", got[0].ID, 100)
	require.NoError(t, err)
	require.Len(t, resumed, 1)
	assert.Equal(t, got[1].ID, resumed[0].ID)

	// limit caps the batch
	capped, err := svc.GetCatchupEvents(ctx, "session:s1", 0, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, got[0].ID, capped[0].ID)

	empty, err := svc.GetCatchupEvents(ctx, "session:unknown", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEventService_CleanupSessionEvents(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	svc := NewEventService(db)
	ctx := context.Background()

	insertEvent(t, svc, "s1", "session:s1", `{"type":"a"}`)
	insertEvent(t, svc, "s1", "sessions", `{"type":"b"}`)
	insertEvent(t, svc, "s2", "session:s2", `{"type":"c"}`)

	n, err := svc.CleanupSessionEvents(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := svc.GetCatchupEvents(ctx, "session:s2", 0, 100)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestEventService_CleanupOldEvents(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	svc := NewEventService(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
		"s1", "session:s1", `{"type":"old"}`, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	insertEvent(t, svc, "s1", "session:s1", `{"type":"fresh"}`)

	n, err := svc.CleanupOldEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := svc.GetCatchupEvents(ctx, "session:s1", 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Payload["type"])
}
