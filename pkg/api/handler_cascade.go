package api

import (
	"net/http"
	"sort"

	echo "github.com/labstack/echo/v5"

	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/services"
)

// listCascadesHandler handles GET /api/v1/cascades.
// Returns the registry catalog so UIs can offer a run picker.
func (s *Server) listCascadesHandler(c *echo.Context) error {
	all := s.registry.GetAll()

	summaries := make([]CascadeSummary, 0, len(all))
	for id, cascade := range all {
		phases := make([]string, 0, len(cascade.Phases))
		for _, p := range cascade.Phases {
			phases = append(phases, p.Name)
		}
		summary := CascadeSummary{
			CascadeID:   id,
			Description: cascade.Description,
			Phases:      phases,
		}
		if cascade.Soundings != nil {
			summary.Soundings = cascade.Soundings.Factor
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CascadeID < summaries[j].CascadeID
	})

	return c.JSON(http.StatusOK, &CatalogResponse{Cascades: summaries})
}

// runCascadeHandler handles POST /api/v1/cascades/:id/runs.
// Creates a session in "queued" status and returns immediately; a worker
// claims it and drives the cascade.
func (s *Server) runCascadeHandler(c *echo.Context) error {
	cascadeID := c.Param("id")
	if cascadeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cascade id is required")
	}
	if _, err := s.registry.Get(cascadeID); err != nil {
		return mapServiceError(err)
	}

	var req RunCascadeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Input == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "input field is required")
	}

	session, err := s.sessions.CreateSession(c.Request().Context(), services.CreateSessionRequest{
		SessionID: req.SessionID,
		CascadeID: cascadeID,
		Input:     &req.Input,
		Metadata:  req.Overrides,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &RunResponse{
		SessionID: session.ID,
		CascadeID: cascadeID,
		Status:    string(cascadesession.StatusQueued),
	})
}
