package events

// SessionStatusPayload is the payload for session.status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	Type         string `json:"type"`       // always EventTypeSessionStatus
	SessionID    string `json:"session_id"` // session id
	CascadeID    string `json:"cascade_id"`
	Status       string `json:"status"` // queued, running, blocked, completed, error, cancelled, orphaned
	CurrentPhase string `json:"current_phase,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// PhaseStatusPayload is the payload for phase.status events.
// Single event type for all phase lifecycle transitions.
type PhaseStatusPayload struct {
	Type       string `json:"type"`       // always EventTypePhaseStatus
	SessionID  string `json:"session_id"` // owning session
	PhaseName  string `json:"phase_name"`
	PhaseIndex int    `json:"phase_index"` // 1-based declaration order
	Status     string `json:"status"`      // started, completed, failed, cancelled
	TraceID    string `json:"trace_id,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// SoundingStatusPayload is the payload for sounding.status events.
// Published as each parallel attempt starts, finishes, and when a winner is
// selected.
type SoundingStatusPayload struct {
	Type          string  `json:"type"`       // always EventTypeSoundingStatus
	SessionID     string  `json:"session_id"` // owning session
	PhaseName     string  `json:"phase_name"`
	SoundingIndex int     `json:"sounding_index"`
	ReforgeStep   *int    `json:"reforge_step,omitempty"`
	Status        string  `json:"status"` // started, completed, failed, winner
	Model         string  `json:"model,omitempty"`
	Cost          float64 `json:"cost,omitempty"`
	Timestamp     string  `json:"timestamp"` // RFC3339Nano
}

// CostUpdatePayload is the payload for cost_update events. Published by the
// unified log when a deferred cost lookup resolves; UIs patch rows they
// already rendered.
type CostUpdatePayload struct {
	Type      string  `json:"type"`       // always EventTypeCostUpdate
	SessionID string  `json:"session_id"` // owning session
	TraceID   string  `json:"trace_id"`
	PhaseName string  `json:"phase_name,omitempty"`
	Cost      float64 `json:"cost"`
	TokensIn  int     `json:"tokens_in"`
	TokensOut int     `json:"tokens_out"`
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}

// CheckpointPayload is the payload for checkpoint.created and
// checkpoint.responded events. The ui_spec rides along on created so the
// UI can render the checkpoint without a follow-up fetch.
type CheckpointPayload struct {
	Type         string         `json:"type"` // EventTypeCheckpointCreated or EventTypeCheckpointResponded
	CheckpointID string         `json:"checkpoint_id"`
	SessionID    string         `json:"session_id"` // owning session
	PhaseName    string         `json:"phase_name"`
	Kind         string         `json:"kind"`   // phase_input, decision, sounding_eval, audible
	Status       string         `json:"status"` // pending, responded, timeout, cancelled
	UISpec       map[string]any `json:"ui_spec,omitempty"`
	Timestamp    string         `json:"timestamp"` // RFC3339Nano
}

// ProgressPayload is the payload for session.progress transient events;
// fine-grained phase activity (turn started, tool executing, ward checked)
// for live dashboards. Not persisted; the unified log holds the durable
// record.
type ProgressPayload struct {
	Type      string `json:"type"`       // always EventTypeProgress
	SessionID string `json:"session_id"` // owning session
	PhaseName string `json:"phase_name"`
	Stage     string `json:"stage"`  // turn, tool, ward, validation, evaluation
	Detail    string `json:"detail"` // e.g. "turn 2/6", "executing web_search"
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
