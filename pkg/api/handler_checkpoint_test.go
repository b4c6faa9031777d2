package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/checkpoint"
)

func createTestCheckpoint(t *testing.T, h *apiHarness, sessionID string) string {
	t.Helper()
	id, err := h.checkpoints.Create(context.Background(), &checkpoint.Checkpoint{
		SessionID: sessionID,
		CascadeID: "survey",
		PhaseName: "gather",
		Type:      checkpoint.TypeDecision,
		UISpec:    map[string]any{"sections": []any{map[string]any{"type": "text"}}},
	})
	require.NoError(t, err)
	return id
}

func TestListCheckpointsHandler(t *testing.T) {
	h := newTestServer(t, testCascades())
	id1 := createTestCheckpoint(t, h, "sess-1")
	createTestCheckpoint(t, h, "sess-2")

	t.Run("defaults to pending", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/v1/checkpoints", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[map[string]any](t, rec)
		assert.EqualValues(t, 2, body["count"])
	})

	t.Run("filters by session", func(t *testing.T) {
		rec := h.do(t, http.MethodGet, "/api/v1/checkpoints?session_id=sess-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[map[string]any](t, rec)
		assert.EqualValues(t, 1, body["count"])
		assert.Contains(t, rec.Body.String(), id1)
	})
}

func TestGetCheckpointHandler(t *testing.T) {
	h := newTestServer(t, testCascades())
	id := createTestCheckpoint(t, h, "sess-1")

	rec := h.do(t, http.MethodGet, "/api/v1/checkpoints/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\"pending\"")

	rec = h.do(t, http.MethodGet, "/api/v1/checkpoints/unknown", nil)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestRespondCheckpointHandler(t *testing.T) {
	t.Run("accepts one response", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		id := createTestCheckpoint(t, h, "sess-1")

		rec := h.do(t, http.MethodPost, "/api/v1/checkpoints/"+id+"/response",
			CheckpointResponseRequest{Response: map[string]any{"choice": "next"}})
		require.Equal(t, http.StatusOK, rec.Code)

		cp, err := h.checkpoints.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, checkpoint.StatusResponded, cp.Status)
		assert.Equal(t, "next", cp.Response["choice"])
	})

	t.Run("second response conflicts", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		id := createTestCheckpoint(t, h, "sess-1")

		first := h.do(t, http.MethodPost, "/api/v1/checkpoints/"+id+"/response",
			CheckpointResponseRequest{Response: map[string]any{"choice": "next"}})
		require.Equal(t, http.StatusOK, first.Code)

		second := h.do(t, http.MethodPost, "/api/v1/checkpoints/"+id+"/response",
			CheckpointResponseRequest{Response: map[string]any{"choice": "self"}})
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("missing response body returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		id := createTestCheckpoint(t, h, "sess-1")

		rec := h.do(t, http.MethodPost, "/api/v1/checkpoints/"+id+"/response",
			map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
