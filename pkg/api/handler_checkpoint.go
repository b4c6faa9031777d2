package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/pkg/checkpoint"
)

// listCheckpointsHandler handles GET /api/v1/checkpoints.
// Defaults to pending checkpoints; pass status= to widen.
func (s *Server) listCheckpointsHandler(c *echo.Context) error {
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not available")
	}

	filter := checkpoint.Filter{
		SessionID: c.QueryParam("session_id"),
		Status:    checkpoint.StatusPending,
	}
	if v := c.QueryParam("status"); v != "" {
		filter.Status = checkpoint.Status(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = n
	}

	checkpoints, err := s.checkpoints.List(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"checkpoints": checkpoints,
		"count":       len(checkpoints),
	})
}

// getCheckpointHandler handles GET /api/v1/checkpoints/:id.
func (s *Server) getCheckpointHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkpoint id is required")
	}
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not available")
	}

	cp, err := s.checkpoints.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	if cp == nil {
		return echo.NewHTTPError(http.StatusNotFound, "checkpoint not found")
	}
	return c.JSON(http.StatusOK, cp)
}

// respondCheckpointHandler handles POST /api/v1/checkpoints/:id/response.
// Posting unblocks the waiting runner immediately; a checkpoint accepts
// exactly one response.
func (s *Server) respondCheckpointHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkpoint id is required")
	}
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not available")
	}

	var req CheckpointResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Response == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "response field is required")
	}

	accepted, err := s.checkpoints.PostResponse(c.Request().Context(), id, req.Response)
	if err != nil {
		return mapServiceError(err)
	}
	if !accepted {
		return echo.NewHTTPError(http.StatusConflict, "checkpoint is not pending")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"checkpoint_id": id,
		"status":        string(checkpoint.StatusResponded),
	})
}
