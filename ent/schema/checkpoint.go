package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// A checkpoint is a suspension record: a runner blocks on it until a
// response is posted (by a human through the UI layer) or the timeout
// elapses.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("cascade_id").
			Immutable(),
		field.String("phase_name").
			Immutable(),
		field.Enum("type").
			Values("phase_input", "decision", "sounding_eval", "audible"),
		field.Enum("status").
			Values("pending", "responded", "timeout", "cancelled").
			Default("pending"),
		field.JSON("ui_spec", map[string]interface{}{}).
			StorageKey("ui_spec_json").
			Comment("Section vocabulary: preview | text | choice | card_grid | image"),
		field.Text("phase_output").
			Optional().
			Nillable(),
		field.Text("sounding_outputs_json").
			Optional().
			Nillable(),
		field.Text("sounding_metadata_json").
			Optional().
			Nillable(),
		field.Int("timeout_seconds").
			Optional().
			Nillable(),
		field.JSON("trace_context", map[string]interface{}{}).
			StorageKey("trace_context_json").
			Optional(),
		field.JSON("response", map[string]interface{}{}).
			StorageKey("response_json").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", CascadeSession.Type).
			Ref("checkpoints").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		index.Fields("status", "created_at"),
	}
}
