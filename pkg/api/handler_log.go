package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// LogRowResponse is one unified-log row as served over HTTP. Field names
// match the storage columns.
type LogRowResponse struct {
	RowID     string    `json:"row_id"`
	Timestamp time.Time `json:"timestamp"`

	SessionID       string  `json:"session_id"`
	TraceID         string  `json:"trace_id"`
	ParentID        *string `json:"parent_id,omitempty"`
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	Depth           int     `json:"depth"`
	NodeType        string  `json:"node_type"`
	Role            string  `json:"role,omitempty"`

	SoundingIndex *int    `json:"sounding_index,omitempty"`
	IsWinner      *bool   `json:"is_winner,omitempty"`
	ReforgeStep   *int    `json:"reforge_step,omitempty"`
	AttemptNumber *int    `json:"attempt_number,omitempty"`
	TurnNumber    *int    `json:"turn_number,omitempty"`
	SpeciesHash   *string `json:"species_hash,omitempty"`

	CascadeID string  `json:"cascade_id"`
	PhaseName *string `json:"phase_name,omitempty"`

	Model      *string  `json:"model,omitempty"`
	Provider   *string  `json:"provider,omitempty"`
	DurationMs *int     `json:"duration_ms,omitempty"`
	TokensIn   *int     `json:"tokens_in,omitempty"`
	TokensOut  *int     `json:"tokens_out,omitempty"`
	Cost       *float64 `json:"cost,omitempty"`

	ContentJSON   *string `json:"content_json,omitempty"`
	ToolCallsJSON *string `json:"tool_calls_json,omitempty"`
	HasImages     bool    `json:"has_images,omitempty"`

	SemanticActor   string `json:"semantic_actor,omitempty"`
	SemanticPurpose string `json:"semantic_purpose,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// LogResponse is returned by GET /api/v1/sessions/:id/log.
type LogResponse struct {
	SessionID string            `json:"session_id"`
	Rows      []*LogRowResponse `json:"rows"`
	Count     int               `json:"count"`
}

func toLogRowResponse(r *unifiedlog.Row) *LogRowResponse {
	return &LogRowResponse{
		RowID:           r.RowID,
		Timestamp:       r.Timestamp,
		SessionID:       r.SessionID,
		TraceID:         r.TraceID,
		ParentID:        r.ParentID,
		ParentSessionID: r.ParentSessionID,
		Depth:           r.Depth,
		NodeType:        r.NodeType,
		Role:            r.Role,
		SoundingIndex:   r.SoundingIndex,
		IsWinner:        r.IsWinner,
		ReforgeStep:     r.ReforgeStep,
		AttemptNumber:   r.AttemptNumber,
		TurnNumber:      r.TurnNumber,
		SpeciesHash:     r.SpeciesHash,
		CascadeID:       r.CascadeID,
		PhaseName:       r.PhaseName,
		Model:           r.Model,
		Provider:        r.Provider,
		DurationMs:      r.DurationMs,
		TokensIn:        r.TokensIn,
		TokensOut:       r.TokensOut,
		Cost:            r.Cost,
		ContentJSON:     r.ContentJSON,
		ToolCallsJSON:   r.ToolCallsJSON,
		HasImages:       r.HasImages,
		SemanticActor:   r.SemanticActor,
		SemanticPurpose: r.SemanticPurpose,
		Metadata:        r.Metadata,
	}
}

// getLogHandler handles GET /api/v1/sessions/:id/log.
// Supports node_type, phase, role, sounding_index, winners_only, limit, and
// offset query filters.
func (s *Server) getLogHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "unified log not available")
	}

	filter := unifiedlog.Filter{
		SessionID: sessionID,
		NodeType:  c.QueryParam("node_type"),
		PhaseName: c.QueryParam("phase"),
		Role:      c.QueryParam("role"),
	}
	if v := c.QueryParam("sounding_index"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid sounding_index")
		}
		filter.SoundingIndex = &n
	}
	if v := c.QueryParam("winners_only"); v == "true" {
		winner := true
		filter.IsWinner = &winner
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		filter.Offset = n
	}

	rows, err := s.logs.QueryRows(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*LogRowResponse, len(rows))
	for i, r := range rows {
		out[i] = toLogRowResponse(r)
	}
	return c.JSON(http.StatusOK, &LogResponse{
		SessionID: sessionID,
		Rows:      out,
		Count:     len(out),
	})
}

// getTraceHandler handles GET /api/v1/sessions/:id/trace.
// Returns the execution tree rebuilt from the unified log.
func (s *Server) getTraceHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "unified log not available")
	}

	roots, err := s.logs.Trace(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TraceResponse{
		SessionID: sessionID,
		Roots:     roots,
	})
}

// getGraphHandler handles GET /api/v1/sessions/:id/graph.
// Serves the Mermaid source for the session's trace tree as plain text.
func (s *Server) getGraphHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.logs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "unified log not available")
	}

	mermaid, err := s.logs.Mermaid(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.String(http.StatusOK, mermaid)
}
