package services

import (
	"github.com/windlassio/windlass/ent"
)

// CreateSessionRequest carries everything needed to create a cascade session.
type CreateSessionRequest struct {
	// SessionID is optional; a uuid is generated when empty
	SessionID string `json:"session_id,omitempty"`

	CascadeID string `json:"cascade_id"`

	// ParentSessionID links sub-cascades, async cascades, and cascade-level
	// soundings to their root
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	Depth           int     `json:"depth,omitempty"`

	// Input is the original task input passed to run()
	Input    *string        `json:"input,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SessionFilters narrows session listings.
type SessionFilters struct {
	Status          string `query:"status"`
	CascadeID       string `query:"cascade_id"`
	ParentSessionID string `query:"parent_session_id"`
	Limit           int    `query:"limit"`
	Offset          int    `query:"offset"`
}

// SessionListResponse is a paginated session listing.
type SessionListResponse struct {
	Sessions   []*ent.CascadeSession `json:"sessions"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}
