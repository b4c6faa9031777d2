package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCascadesHandler(t *testing.T) {
	h := newTestServer(t, testCascades())

	rec := h.do(t, http.MethodGet, "/api/v1/cascades", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	catalog := decodeBody[CatalogResponse](t, rec)
	require.Len(t, catalog.Cascades, 2)

	// Sorted by cascade id
	assert.Equal(t, "deep_dive", catalog.Cascades[0].CascadeID)
	assert.Equal(t, 3, catalog.Cascades[0].Soundings)
	assert.Equal(t, []string{"dig"}, catalog.Cascades[0].Phases)

	assert.Equal(t, "survey", catalog.Cascades[1].CascadeID)
	assert.Equal(t, "Survey the area", catalog.Cascades[1].Description)
	assert.Equal(t, []string{"gather", "analyze"}, catalog.Cascades[1].Phases)
	assert.Zero(t, catalog.Cascades[1].Soundings)
}

func TestRunCascadeHandler(t *testing.T) {
	t.Run("enqueues a session", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/cascades/survey/runs",
			RunCascadeRequest{Input: "map the northern ridge"})
		require.Equal(t, http.StatusAccepted, rec.Code)

		resp := decodeBody[RunResponse](t, rec)
		assert.Equal(t, "generated-id", resp.SessionID)
		assert.Equal(t, "survey", resp.CascadeID)
		assert.Equal(t, "queued", resp.Status)

		require.Len(t, h.sessions.created, 1)
		created := h.sessions.created[0]
		assert.Equal(t, "survey", created.CascadeID)
		require.NotNil(t, created.Input)
		assert.Equal(t, "map the northern ridge", *created.Input)
	})

	t.Run("honours a caller-provided session id", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/cascades/survey/runs",
			RunCascadeRequest{Input: "x", SessionID: "sess-custom"})
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "sess-custom", decodeBody[RunResponse](t, rec).SessionID)
	})

	t.Run("unknown cascade returns 404", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/cascades/nope/runs",
			RunCascadeRequest{Input: "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing input returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodPost, "/api/v1/cascades/survey/runs",
			RunCascadeRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "input field is required")
	})
}
