package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LogRow holds the schema definition for the LogRow entity; the unified log.
// Every message, tool exchange, validation, evaluation, and lifecycle marker
// across all sessions lands in this one table. Column names are part of the
// public read contract (consumers include UIs, trainers, and analyzers) and
// must not be renamed.
type LogRow struct {
	ent.Schema
}

// Fields of the LogRow.
func (LogRow) Fields() []ent.Field {
	return []ent.Field{
		// Identity
		field.String("id").
			StorageKey("row_id").
			Unique().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Comment("Monotonic per writer; soundings interleave within a session"),
		field.String("session_id").
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Trace parent; null only for the cascade root"),
		field.String("parent_session_id").
			Optional().
			Nillable(),
		field.String("parent_message_id").
			Optional().
			Nillable(),
		field.Int("depth").
			Default(0),
		field.String("node_type").
			Comment("cascade | phase | sounding | reforge | message | tool_call | tool_result | validation | evaluation | mutation | checkpoint | lifecycle | error"),
		field.String("role").
			Optional().
			Comment("system | user | assistant | tool; empty for framework rows"),

		// Execution context
		field.Int("sounding_index").
			Optional().
			Nillable(),
		field.Bool("is_winner").
			Optional().
			Nillable().
			Comment("Set after winner selection on all rows of the winning sounding"),
		field.Int("reforge_step").
			Optional().
			Nillable(),
		field.Int("attempt_number").
			Optional().
			Nillable(),
		field.Int("turn_number").
			Optional().
			Nillable(),
		field.Bool("mutation_applied").
			Optional().
			Nillable(),
		field.String("mutation_type").
			Optional().
			Nillable(),
		field.Text("mutation_template").
			Optional().
			Nillable(),
		field.String("species_hash").
			Optional().
			Nillable().
			Comment("16-hex prefix of SHA-256 over the phase DNA; groups equivalent prompts across runs"),

		// Cascade context
		field.String("cascade_id"),
		field.String("cascade_file").
			Optional().
			Nillable(),
		field.Text("cascade_json").
			Optional().
			Nillable(),
		field.String("phase_name").
			Optional().
			Nillable(),
		field.Text("phase_json").
			Optional().
			Nillable(),

		// LLM call details
		field.String("model").
			Optional().
			Nillable(),
		field.String("model_requested").
			Optional().
			Nillable(),
		field.String("request_id").
			Optional().
			Nillable().
			Comment("Provider request id; key for deferred cost attribution"),
		field.String("provider").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("tokens_in").
			Optional().
			Nillable(),
		field.Int("tokens_out").
			Optional().
			Nillable(),
		field.Float("cost").
			Optional().
			Nillable().
			Comment("Filled in by the cost resolver before the row is written, when resolvable"),

		// Content
		field.Text("content_json").
			Optional().
			Nillable(),
		field.Text("full_request_json").
			Optional().
			Nillable(),
		field.Text("full_response_json").
			Optional().
			Nillable(),
		field.Text("tool_calls_json").
			Optional().
			Nillable(),
		field.Text("images_json").
			Optional().
			Nillable(),
		field.Bool("has_images").
			Default(false),
		field.Bool("has_base64").
			Default(false),

		// Semantics
		field.Enum("semantic_actor").
			NamedValues(
				"MainAgent", "main_agent",
				"SoundingAgent", "sounding_agent",
				"ReforgeAgent", "reforge_agent",
				"Evaluator", "evaluator",
				"Quartermaster", "quartermaster",
				"ValidatorActor", "validator",
				"Mutator", "mutator",
				"Aggregator", "aggregator",
				"Human", "human",
				"Framework", "framework",
			).
			Default("framework"),
		field.Enum("semantic_purpose").
			Values(
				"instructions",
				"task_input",
				"context_injection",
				"tool_request",
				"tool_response",
				"continuation",
				"refinement",
				"validation_input",
				"validation_output",
				"evaluation_input",
				"evaluation_output",
				"winner_selection",
				"lifecycle",
				"error",
				"generation",
			).
			Default("lifecycle"),

		// Extras
		field.Bool("is_callout").
			Default(false),
		field.String("callout_name").
			Optional().
			Nillable(),
		field.JSON("row_metadata", map[string]interface{}{}).
			StorageKey("metadata_json").
			Optional(),
	}
}

// Edges of the LogRow.
func (LogRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", CascadeSession.Type).
			Ref("log_rows").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LogRow.
func (LogRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
		index.Fields("trace_id"),

		// Winner marking (range update by session + phase + sounding)
		index.Fields("session_id", "phase_name", "sounding_index"),

		// Mutation learning: prior winning rewrites with the same phase DNA
		index.Fields("cascade_id", "phase_name", "species_hash", "is_winner", "timestamp"),
	}
}
