package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
)

func TestListSessionsHandler(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodGet, "/api/v1/sessions?status=running&cascade_id=survey&limit=5&offset=10", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, "running", h.sessions.lastList.Status)
		assert.Equal(t, "survey", h.sessions.lastList.CascadeID)
		assert.Equal(t, 5, h.sessions.lastList.Limit)
		assert.Equal(t, 10, h.sessions.lastList.Offset)
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodGet, "/api/v1/sessions?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid status")
	})

	t.Run("invalid limit returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodGet, "/api/v1/sessions?limit=nope", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetSessionHandler(t *testing.T) {
	h := newTestServer(t, testCascades())
	h.sessions.sessions["sess-1"] = &ent.CascadeSession{
		ID:        "sess-1",
		CascadeID: "survey",
		Status:    cascadesession.StatusCompleted,
	}

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sess-1")

	rec = h.do(t, http.MethodGet, "/api/v1/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelSessionHandler(t *testing.T) {
	t.Run("requests cooperative cancel", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		h.sessions.sessions["sess-1"] = &ent.CascadeSession{ID: "sess-1", Status: cascadesession.StatusRunning}

		rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel",
			CancelRequest{Reason: "operator abort"})
		require.Equal(t, http.StatusAccepted, rec.Code)

		assert.Equal(t, "operator abort", h.sessions.cancelled["sess-1"])
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/sessions/unknown/cancel", CancelRequest{})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAudibleHandler(t *testing.T) {
	t.Run("queues the interjection", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		h.sessions.sessions["sess-1"] = &ent.CascadeSession{ID: "sess-1", Status: cascadesession.StatusRunning}

		rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/audible",
			AudibleRequest{Message: "focus on the east side"})
		require.Equal(t, http.StatusAccepted, rec.Code)

		assert.Equal(t, "focus on the east side", h.audibles.requests["sess-1"])
	})

	t.Run("empty message returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		h.sessions.sessions["sess-1"] = &ent.CascadeSession{ID: "sess-1"}

		rec := h.do(t, http.MethodPost, "/api/v1/sessions/sess-1/audible", AudibleRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/sessions/unknown/audible",
			AudibleRequest{Message: "hello"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, h.audibles.requests)
	})
}
