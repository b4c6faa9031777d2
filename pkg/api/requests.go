package api

// RunCascadeRequest is the HTTP request body for POST /api/v1/cascades/:id/runs.
type RunCascadeRequest struct {
	// Input is the task prompt handed to the first phase.
	Input string `json:"input"`

	// SessionID is optional; generated when empty.
	SessionID string `json:"session_id,omitempty"`

	// Overrides seed the session's state map before the first phase.
	Overrides map[string]any `json:"overrides,omitempty"`
}

// CancelRequest is the HTTP request body for POST /api/v1/sessions/:id/cancel.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AudibleRequest is the HTTP request body for POST /api/v1/sessions/:id/audible.
type AudibleRequest struct {
	Message string `json:"message"`
}

// CheckpointResponseRequest is the HTTP request body for
// POST /api/v1/checkpoints/:id/response.
type CheckpointResponseRequest struct {
	Response map[string]any `json:"response"`
}
