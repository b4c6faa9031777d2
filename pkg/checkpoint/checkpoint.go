// Package checkpoint manages suspension records: a runner creates a
// checkpoint, blocks on it, and a human (through the HTTP surface) posts a
// response to the same id. In-process waiters are fulfilled immediately;
// responses posted by another process are picked up by store polling.
package checkpoint

import (
	"context"
	"time"
)

// Type classifies what the checkpoint suspends on.
type Type string

const (
	TypePhaseInput   Type = "phase_input"
	TypeDecision     Type = "decision"
	TypeSoundingEval Type = "sounding_eval"
	TypeAudible      Type = "audible"
)

// Status is the checkpoint lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
)

// Checkpoint is one suspension record. UISpec carries the section vocabulary
// (preview | text | choice | card_grid | image) consumed by whatever renders
// the checkpoint; the engine only produces and reads structured values.
type Checkpoint struct {
	ID        string `json:"checkpoint_id"`
	SessionID string `json:"session_id"`
	CascadeID string `json:"cascade_id"`
	PhaseName string `json:"phase_name"`
	Type      Type   `json:"type"`
	Status    Status `json:"status"`

	UISpec map[string]any `json:"ui_spec"`

	PhaseOutput          *string `json:"phase_output,omitempty"`
	SoundingOutputsJSON  *string `json:"sounding_outputs_json,omitempty"`
	SoundingMetadataJSON *string `json:"sounding_metadata_json,omitempty"`
	TimeoutSeconds       *int    `json:"timeout_seconds,omitempty"`

	TraceContext map[string]any `json:"trace_context,omitempty"`
	Response     map[string]any `json:"response,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// Filter narrows checkpoint listings.
type Filter struct {
	SessionID string
	Status    Status
	Limit     int
}

// Store persists checkpoints.
type Store interface {
	Create(ctx context.Context, cp *Checkpoint) error
	Get(ctx context.Context, id string) (*Checkpoint, error)
	List(ctx context.Context, filter Filter) ([]*Checkpoint, error)

	// SetResponse records the response and flips status to responded.
	// Returns false when the checkpoint is no longer pending.
	SetResponse(ctx context.Context, id string, response map[string]any) (bool, error)

	// SetStatus moves a pending checkpoint to a terminal status.
	SetStatus(ctx context.Context, id string, status Status) error
}
