package api

import (
	"github.com/windlassio/windlass/pkg/trace"
)

// RunResponse is returned by POST /api/v1/cascades/:id/runs.
type RunResponse struct {
	SessionID string `json:"session_id"`
	CascadeID string `json:"cascade_id"`
	Status    string `json:"status"`
}

// CancelResponse is returned by POST /api/v1/sessions/:id/cancel.
type CancelResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// AudibleResponse is returned by POST /api/v1/sessions/:id/audible.
type AudibleResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// CascadeSummary is one catalog entry in GET /api/v1/cascades.
type CascadeSummary struct {
	CascadeID   string   `json:"cascade_id"`
	Description string   `json:"description,omitempty"`
	Phases      []string `json:"phases"`
	Soundings   int      `json:"soundings,omitempty"`
}

// CatalogResponse is returned by GET /api/v1/cascades.
type CatalogResponse struct {
	Cascades []CascadeSummary `json:"cascades"`
}

// TraceResponse is returned by GET /api/v1/sessions/:id/trace.
type TraceResponse struct {
	SessionID string        `json:"session_id"`
	Roots     []*trace.Node `json:"roots"`
}

// HealthCheck is one named health probe result.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
