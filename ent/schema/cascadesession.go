package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CascadeSession holds the schema definition for the CascadeSession entity.
// One row per cascade run, including child runs spawned by sub-cascades,
// async cascades, and cascade-level soundings.
type CascadeSession struct {
	ent.Schema
}

// Fields of the CascadeSession.
func (CascadeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("cascade_id").
			Comment("Cascade identifier (live lookup against the registry, no snapshot)"),
		field.String("parent_session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for sub-cascades, async cascades, and cascade-level soundings"),
		field.Int("depth").
			Default(0).
			Comment("Nesting depth from the root session"),
		field.Enum("status").
			Values("queued", "running", "blocked", "completed", "error", "cancelled", "orphaned").
			Default("queued"),
		field.String("current_phase").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false),
		field.String("cancel_reason").
			Optional().
			Nillable(),
		field.Text("input").
			Optional().
			Nillable().
			Comment("Original task input passed to run()"),
		field.JSON("session_metadata", map[string]interface{}{}).
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Lease timestamp; orphan janitor compares against lease + grace"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session (queued -> running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CascadeSession.
func (CascadeSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", CascadeSession.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)).
			From("parent").
			Field("parent_session_id").
			Immutable().
			Unique(),
		edge.To("log_rows", LogRow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CascadeSession.
func (CascadeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("cascade_id"),

		// Claim scans and dashboards
		index.Fields("status", "created_at"),
		index.Fields("status", "heartbeat_at"),

		// Partial index for live sessions (orphan scans walk this)
		index.Fields("heartbeat_at").
			Annotations(entsql.IndexWhere("status IN ('running', 'blocked')")),
	}
}
