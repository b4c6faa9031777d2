// Package events provides event delivery for the engine and its UIs: a
// synchronous in-process bus used by runners (sounding lifecycle, cost
// updates, progress), and WebSocket delivery backed by PostgreSQL
// NOTIFY/LISTEN for cross-pod distribution with a persisted event outbox
// for catchup.
package events

// In-process bus topics (see Bus). Runners publish these; the unified log,
// progress reporter, and tool cache subscribe.
const (
	TopicSoundingStart    = "sounding_start"
	TopicSoundingComplete = "sounding_complete"
	TopicSoundingWinner   = "sounding_winner"
	TopicCostUpdate       = "cost_update"
	TopicModelsFiltered   = "models_filtered"
	TopicPhaseProgress    = "phase_progress"
	TopicBudgetEnforced   = "budget_enforced"
	TopicLogError         = "log_error"
	TopicAudible          = "audible"
)

// Persistent WebSocket event types (stored in the events table + NOTIFY).
const (
	// Session lifecycle
	EventTypeSessionStatus = "session.status"

	// Phase lifecycle; single event type for all phase status transitions
	EventTypePhaseStatus = "phase.status"

	// Sounding lifecycle (started, completed, winner)
	EventTypeSoundingStatus = "sounding.status"

	// Deferred cost attribution updates; UIs reconcile rows queried before
	// the cost resolved
	EventTypeCostUpdate = "cost_update"

	// Checkpoint lifecycle
	EventTypeCheckpointCreated   = "checkpoint.created"
	EventTypeCheckpointResponded = "checkpoint.responded"
)

// Phase lifecycle status values (used in PhaseStatusPayload.Status).
const (
	PhaseStatusStarted   = "started"
	PhaseStatusCompleted = "completed"
	PhaseStatusFailed    = "failed"
	PhaseStatusCancelled = "cancelled"
)

// Sounding lifecycle status values (used in SoundingStatusPayload.Status).
const (
	SoundingStatusStarted   = "started"
	SoundingStatusCompleted = "completed"
	SoundingStatusFailed    = "failed"
	SoundingStatusWinner    = "winner"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Fine-grained phase progress (turn, ward, tool); high-frequency, ephemeral.
	EventTypeProgress = "session.progress"
)

// GlobalSessionsChannel is the channel for session-level status events.
// The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
