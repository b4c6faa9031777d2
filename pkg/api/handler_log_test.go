package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

func TestGetLogHandler(t *testing.T) {
	t.Run("serves rows with storage column names", func(t *testing.T) {
		h := newTestServer(t, testCascades())
		h.logs.rows = []*unifiedlog.Row{
			{
				RowID:           "row-1",
				Timestamp:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
				SessionID:       "sess-1",
				TraceID:         "trace-1",
				NodeType:        unifiedlog.NodeTypeMessage,
				Role:            "assistant",
				CascadeID:       "survey",
				PhaseName:       unifiedlog.Ptr("gather"),
				ContentJSON:     unifiedlog.Ptr(`"found ore"`),
				Cost:            unifiedlog.Ptr(0.002),
				SemanticActor:   unifiedlog.ActorMainAgent,
				SemanticPurpose: unifiedlog.PurposeGeneration,
			},
		}

		rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1/log", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[LogResponse](t, rec)
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Rows, 1)
		row := resp.Rows[0]
		assert.Equal(t, "row-1", row.RowID)
		assert.Equal(t, "message", row.NodeType)
		assert.Equal(t, "gather", *row.PhaseName)
		assert.Equal(t, 0.002, *row.Cost)

		body := rec.Body.String()
		assert.Contains(t, body, `"node_type"`)
		assert.Contains(t, body, `"semantic_actor"`)
		assert.Contains(t, body, `"content_json"`)
	})

	t.Run("builds the filter from query params", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodGet,
			"/api/v1/sessions/sess-1/log?node_type=message&phase=gather&winners_only=true&sounding_index=2&limit=50", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		f := h.logs.lastFilter
		assert.Equal(t, "sess-1", f.SessionID)
		assert.Equal(t, "message", f.NodeType)
		assert.Equal(t, "gather", f.PhaseName)
		require.NotNil(t, f.IsWinner)
		assert.True(t, *f.IsWinner)
		require.NotNil(t, f.SoundingIndex)
		assert.Equal(t, 2, *f.SoundingIndex)
		assert.Equal(t, 50, f.Limit)
	})

	t.Run("invalid sounding_index returns 400", func(t *testing.T) {
		h := newTestServer(t, testCascades())

		rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1/log?sounding_index=two", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTraceHandler(t *testing.T) {
	h := newTestServer(t, testCascades())
	h.logs.roots = []*trace.Node{
		{
			ID:       "root",
			NodeType: "cascade",
			Name:     "survey",
			Children: []*trace.Node{
				{ID: "child", NodeType: "phase", Name: "gather", ParentID: "root", Depth: 1},
			},
		},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1/trace", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[TraceResponse](t, rec)
	assert.Equal(t, "sess-1", resp.SessionID)
	require.Len(t, resp.Roots, 1)
	require.Len(t, resp.Roots[0].Children, 1)
	assert.Equal(t, "gather", resp.Roots[0].Children[0].Name)
}

func TestGetGraphHandler(t *testing.T) {
	h := newTestServer(t, testCascades())
	h.logs.mermaid = "flowchart TD\n  n0[\"survey\"]"

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/sess-1/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flowchart TD")
}
