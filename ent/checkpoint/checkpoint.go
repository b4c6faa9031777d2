// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCascadeID holds the string denoting the cascade_id field in the database.
	FieldCascadeID = "cascade_id"
	// FieldPhaseName holds the string denoting the phase_name field in the database.
	FieldPhaseName = "phase_name"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUISpec holds the string denoting the ui_spec field in the database.
	FieldUISpec = "ui_spec_json"
	// FieldPhaseOutput holds the string denoting the phase_output field in the database.
	FieldPhaseOutput = "phase_output"
	// FieldSoundingOutputsJSON holds the string denoting the sounding_outputs_json field in the database.
	FieldSoundingOutputsJSON = "sounding_outputs_json"
	// FieldSoundingMetadataJSON holds the string denoting the sounding_metadata_json field in the database.
	FieldSoundingMetadataJSON = "sounding_metadata_json"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldTraceContext holds the string denoting the trace_context field in the database.
	FieldTraceContext = "trace_context_json"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// CascadeSessionFieldID holds the string denoting the ID field of the CascadeSession.
	CascadeSessionFieldID = "session_id"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "checkpoints"
	// SessionInverseTable is the table name for the CascadeSession entity.
	// It exists in this package in order to avoid circular dependency with the "cascadesession" package.
	SessionInverseTable = "cascade_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCascadeID,
	FieldPhaseName,
	FieldType,
	FieldStatus,
	FieldUISpec,
	FieldPhaseOutput,
	FieldSoundingOutputsJSON,
	FieldSoundingMetadataJSON,
	FieldTimeoutSeconds,
	FieldTraceContext,
	FieldResponse,
	FieldCreatedAt,
	FieldRespondedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypePhaseInput   Type = "phase_input"
	TypeDecision     Type = "decision"
	TypeSoundingEval Type = "sounding_eval"
	TypeAudible      Type = "audible"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypePhaseInput, TypeDecision, TypeSoundingEval, TypeAudible:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusResponded, StatusTimeout, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("checkpoint: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCascadeID orders the results by the cascade_id field.
func ByCascadeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCascadeID, opts...).ToFunc()
}

// ByPhaseName orders the results by the phase_name field.
func ByPhaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseName, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhaseOutput orders the results by the phase_output field.
func ByPhaseOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseOutput, opts...).ToFunc()
}

// BySoundingOutputsJSON orders the results by the sounding_outputs_json field.
func BySoundingOutputsJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundingOutputsJSON, opts...).ToFunc()
}

// BySoundingMetadataJSON orders the results by the sounding_metadata_json field.
func BySoundingMetadataJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundingMetadataJSON, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, CascadeSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
