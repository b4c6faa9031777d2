package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/services"
)

var validStatuses = map[string]bool{
	string(cascadesession.StatusQueued):    true,
	string(cascadesession.StatusRunning):   true,
	string(cascadesession.StatusBlocked):   true,
	string(cascadesession.StatusCompleted): true,
	string(cascadesession.StatusError):     true,
	string(cascadesession.StatusCancelled): true,
	string(cascadesession.StatusOrphaned):  true,
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filters := services.SessionFilters{
		Status:          c.QueryParam("status"),
		CascadeID:       c.QueryParam("cascade_id"),
		ParentSessionID: c.QueryParam("parent_session_id"),
	}

	if filters.Status != "" && !validStatuses[filters.Status] {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+filters.Status)
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filters.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		filters.Offset = n
	}

	resp, err := s.sessions.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.sessions.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel.
// Sets the cooperative cancel flag on the session and its live descendants,
// then cancels the run context if this pod is executing it.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.sessions.RequestCancel(c.Request().Context(), sessionID, req.Reason); err != nil {
		return mapServiceError(err)
	}

	message := "cancellation requested"
	if s.pool != nil && s.pool.CancelSession(sessionID) {
		message = "cancellation requested, session context cancelled on this pod"
	}

	return c.JSON(http.StatusAccepted, &CancelResponse{
		SessionID: sessionID,
		Message:   message,
	})
}

// audibleHandler handles POST /api/v1/sessions/:id/audible.
// Queues a mid-phase user interjection; the phase picks it up at its next
// audible check.
func (s *Server) audibleHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.audibles == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "audibles not available")
	}

	var req AudibleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message field is required")
	}

	if _, err := s.sessions.GetSession(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}

	s.audibles.RequestAudible(sessionID, req.Message)
	return c.JSON(http.StatusAccepted, &AudibleResponse{
		SessionID: sessionID,
		Message:   "audible queued",
	})
}
