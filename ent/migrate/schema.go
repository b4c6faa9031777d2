// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CascadeSessionsColumns holds the columns for the "cascade_sessions" table.
	CascadeSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "cascade_id", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "blocked", "completed", "error", "cancelled", "orphaned"}, Default: "queued"},
		{Name: "current_phase", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true},
		{Name: "input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "parent_session_id", Type: field.TypeString, Nullable: true},
	}
	// CascadeSessionsTable holds the schema information for the "cascade_sessions" table.
	CascadeSessionsTable = &schema.Table{
		Name:       "cascade_sessions",
		Columns:    CascadeSessionsColumns,
		PrimaryKey: []*schema.Column{CascadeSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cascade_sessions_cascade_sessions_children",
				Columns:    []*schema.Column{CascadeSessionsColumns[16]},
				RefColumns: []*schema.Column{CascadeSessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cascadesession_status",
				Unique:  false,
				Columns: []*schema.Column{CascadeSessionsColumns[3]},
			},
			{
				Name:    "cascadesession_cascade_id",
				Unique:  false,
				Columns: []*schema.Column{CascadeSessionsColumns[1]},
			},
			{
				Name:    "cascadesession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CascadeSessionsColumns[3], CascadeSessionsColumns[12]},
			},
			{
				Name:    "cascadesession_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{CascadeSessionsColumns[3], CascadeSessionsColumns[11]},
			},
			{
				Name:    "cascadesession_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{CascadeSessionsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('running', 'blocked')",
				},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "cascade_id", Type: field.TypeString},
		{Name: "phase_name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"phase_input", "decision", "sounding_eval", "audible"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "responded", "timeout", "cancelled"}, Default: "pending"},
		{Name: "ui_spec_json", Type: field.TypeJSON},
		{Name: "phase_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sounding_outputs_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "sounding_metadata_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timeout_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "trace_context_json", Type: field.TypeJSON, Nullable: true},
		{Name: "response_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_cascade_sessions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[14]},
				RefColumns: []*schema.Column{CascadeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[14], CheckpointsColumns[4]},
			},
			{
				Name:    "checkpoint_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[4], CheckpointsColumns[12]},
			},
		},
	}
	// LogRowsColumns holds the columns for the "log_rows" table.
	LogRowsColumns = []*schema.Column{
		{Name: "row_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "trace_id", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_message_id", Type: field.TypeString, Nullable: true},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "node_type", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "sounding_index", Type: field.TypeInt, Nullable: true},
		{Name: "is_winner", Type: field.TypeBool, Nullable: true},
		{Name: "reforge_step", Type: field.TypeInt, Nullable: true},
		{Name: "attempt_number", Type: field.TypeInt, Nullable: true},
		{Name: "turn_number", Type: field.TypeInt, Nullable: true},
		{Name: "mutation_applied", Type: field.TypeBool, Nullable: true},
		{Name: "mutation_type", Type: field.TypeString, Nullable: true},
		{Name: "mutation_template", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "species_hash", Type: field.TypeString, Nullable: true},
		{Name: "cascade_id", Type: field.TypeString},
		{Name: "cascade_file", Type: field.TypeString, Nullable: true},
		{Name: "cascade_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phase_name", Type: field.TypeString, Nullable: true},
		{Name: "phase_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "model_requested", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_out", Type: field.TypeInt, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "content_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_request_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "full_response_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_calls_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "images_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "has_images", Type: field.TypeBool, Default: false},
		{Name: "has_base64", Type: field.TypeBool, Default: false},
		{Name: "semantic_actor", Type: field.TypeEnum, Enums: []string{"main_agent", "sounding_agent", "reforge_agent", "evaluator", "quartermaster", "validator", "mutator", "aggregator", "human", "framework"}, Default: "framework"},
		{Name: "semantic_purpose", Type: field.TypeEnum, Enums: []string{"instructions", "task_input", "context_injection", "tool_request", "tool_response", "continuation", "refinement", "validation_input", "validation_output", "evaluation_input", "evaluation_output", "winner_selection", "lifecycle", "error", "generation"}, Default: "lifecycle"},
		{Name: "is_callout", Type: field.TypeBool, Default: false},
		{Name: "callout_name", Type: field.TypeString, Nullable: true},
		{Name: "metadata_json", Type: field.TypeJSON, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// LogRowsTable holds the schema information for the "log_rows" table.
	LogRowsTable = &schema.Table{
		Name:       "log_rows",
		Columns:    LogRowsColumns,
		PrimaryKey: []*schema.Column{LogRowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "log_rows_cascade_sessions_log_rows",
				Columns:    []*schema.Column{LogRowsColumns[43]},
				RefColumns: []*schema.Column{CascadeSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logrow_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LogRowsColumns[43], LogRowsColumns[1]},
			},
			{
				Name:    "logrow_trace_id",
				Unique:  false,
				Columns: []*schema.Column{LogRowsColumns[2]},
			},
			{
				Name:    "logrow_session_id_phase_name_sounding_index",
				Unique:  false,
				Columns: []*schema.Column{LogRowsColumns[43], LogRowsColumns[21], LogRowsColumns[9]},
			},
			{
				Name:    "logrow_cascade_id_phase_name_species_hash_is_winner_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LogRowsColumns[18], LogRowsColumns[21], LogRowsColumns[17], LogRowsColumns[10], LogRowsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CascadeSessionsTable,
		CheckpointsTable,
		LogRowsTable,
	}
)

func init() {
	CascadeSessionsTable.ForeignKeys[0].RefTable = CascadeSessionsTable
	CheckpointsTable.ForeignKeys[0].RefTable = CascadeSessionsTable
	LogRowsTable.ForeignKeys[0].RefTable = CascadeSessionsTable
}
