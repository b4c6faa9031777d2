// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/logrow"
)

// LogRow is the model entity for the LogRow schema.
type LogRow struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Monotonic per writer; soundings interleave within a session
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID string `json:"trace_id,omitempty"`
	// Trace parent; null only for the cascade root
	ParentID *string `json:"parent_id,omitempty"`
	// ParentSessionID holds the value of the "parent_session_id" field.
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	// ParentMessageID holds the value of the "parent_message_id" field.
	ParentMessageID *string `json:"parent_message_id,omitempty"`
	// Depth holds the value of the "depth" field.
	Depth int `json:"depth,omitempty"`
	// cascade | phase | sounding | reforge | message | tool_call | tool_result | validation | evaluation | mutation | checkpoint | lifecycle | error
	NodeType string `json:"node_type,omitempty"`
	// system | user | assistant | tool; empty for framework rows
	Role string `json:"role,omitempty"`
	// SoundingIndex holds the value of the "sounding_index" field.
	SoundingIndex *int `json:"sounding_index,omitempty"`
	// Set after winner selection on all rows of the winning sounding
	IsWinner *bool `json:"is_winner,omitempty"`
	// ReforgeStep holds the value of the "reforge_step" field.
	ReforgeStep *int `json:"reforge_step,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber *int `json:"attempt_number,omitempty"`
	// TurnNumber holds the value of the "turn_number" field.
	TurnNumber *int `json:"turn_number,omitempty"`
	// MutationApplied holds the value of the "mutation_applied" field.
	MutationApplied *bool `json:"mutation_applied,omitempty"`
	// MutationType holds the value of the "mutation_type" field.
	MutationType *string `json:"mutation_type,omitempty"`
	// MutationTemplate holds the value of the "mutation_template" field.
	MutationTemplate *string `json:"mutation_template,omitempty"`
	// 16-hex prefix of SHA-256 over the phase DNA; groups equivalent prompts across runs
	SpeciesHash *string `json:"species_hash,omitempty"`
	// CascadeID holds the value of the "cascade_id" field.
	CascadeID string `json:"cascade_id,omitempty"`
	// CascadeFile holds the value of the "cascade_file" field.
	CascadeFile *string `json:"cascade_file,omitempty"`
	// CascadeJSON holds the value of the "cascade_json" field.
	CascadeJSON *string `json:"cascade_json,omitempty"`
	// PhaseName holds the value of the "phase_name" field.
	PhaseName *string `json:"phase_name,omitempty"`
	// PhaseJSON holds the value of the "phase_json" field.
	PhaseJSON *string `json:"phase_json,omitempty"`
	// Model holds the value of the "model" field.
	Model *string `json:"model,omitempty"`
	// ModelRequested holds the value of the "model_requested" field.
	ModelRequested *string `json:"model_requested,omitempty"`
	// Provider request id; key for deferred cost attribution
	RequestID *string `json:"request_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider *string `json:"provider,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn *int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut *int `json:"tokens_out,omitempty"`
	// Filled in by the cost resolver before the row is written, when resolvable
	Cost *float64 `json:"cost,omitempty"`
	// ContentJSON holds the value of the "content_json" field.
	ContentJSON *string `json:"content_json,omitempty"`
	// FullRequestJSON holds the value of the "full_request_json" field.
	FullRequestJSON *string `json:"full_request_json,omitempty"`
	// FullResponseJSON holds the value of the "full_response_json" field.
	FullResponseJSON *string `json:"full_response_json,omitempty"`
	// ToolCallsJSON holds the value of the "tool_calls_json" field.
	ToolCallsJSON *string `json:"tool_calls_json,omitempty"`
	// ImagesJSON holds the value of the "images_json" field.
	ImagesJSON *string `json:"images_json,omitempty"`
	// HasImages holds the value of the "has_images" field.
	HasImages bool `json:"has_images,omitempty"`
	// HasBase64 holds the value of the "has_base64" field.
	HasBase64 bool `json:"has_base64,omitempty"`
	// SemanticActor holds the value of the "semantic_actor" field.
	SemanticActor logrow.SemanticActor `json:"semantic_actor,omitempty"`
	// SemanticPurpose holds the value of the "semantic_purpose" field.
	SemanticPurpose logrow.SemanticPurpose `json:"semantic_purpose,omitempty"`
	// IsCallout holds the value of the "is_callout" field.
	IsCallout bool `json:"is_callout,omitempty"`
	// CalloutName holds the value of the "callout_name" field.
	CalloutName *string `json:"callout_name,omitempty"`
	// RowMetadata holds the value of the "row_metadata" field.
	RowMetadata map[string]interface{} `json:"row_metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogRowQuery when eager-loading is set.
	Edges        LogRowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogRowEdges holds the relations/edges for other nodes in the graph.
type LogRowEdges struct {
	// Session holds the value of the session edge.
	Session *CascadeSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogRowEdges) SessionOrErr() (*CascadeSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cascadesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LogRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logrow.FieldRowMetadata:
			values[i] = new([]byte)
		case logrow.FieldIsWinner, logrow.FieldMutationApplied, logrow.FieldHasImages, logrow.FieldHasBase64, logrow.FieldIsCallout:
			values[i] = new(sql.NullBool)
		case logrow.FieldCost:
			values[i] = new(sql.NullFloat64)
		case logrow.FieldDepth, logrow.FieldSoundingIndex, logrow.FieldReforgeStep, logrow.FieldAttemptNumber, logrow.FieldTurnNumber, logrow.FieldDurationMs, logrow.FieldTokensIn, logrow.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case logrow.FieldID, logrow.FieldSessionID, logrow.FieldTraceID, logrow.FieldParentID, logrow.FieldParentSessionID, logrow.FieldParentMessageID, logrow.FieldNodeType, logrow.FieldRole, logrow.FieldMutationType, logrow.FieldMutationTemplate, logrow.FieldSpeciesHash, logrow.FieldCascadeID, logrow.FieldCascadeFile, logrow.FieldCascadeJSON, logrow.FieldPhaseName, logrow.FieldPhaseJSON, logrow.FieldModel, logrow.FieldModelRequested, logrow.FieldRequestID, logrow.FieldProvider, logrow.FieldContentJSON, logrow.FieldFullRequestJSON, logrow.FieldFullResponseJSON, logrow.FieldToolCallsJSON, logrow.FieldImagesJSON, logrow.FieldSemanticActor, logrow.FieldSemanticPurpose, logrow.FieldCalloutName:
			values[i] = new(sql.NullString)
		case logrow.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LogRow fields.
func (_m *LogRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logrow.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case logrow.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case logrow.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case logrow.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case logrow.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case logrow.FieldParentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_session_id", values[i])
			} else if value.Valid {
				_m.ParentSessionID = new(string)
				*_m.ParentSessionID = value.String
			}
		case logrow.FieldParentMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_message_id", values[i])
			} else if value.Valid {
				_m.ParentMessageID = new(string)
				*_m.ParentMessageID = value.String
			}
		case logrow.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case logrow.FieldNodeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_type", values[i])
			} else if value.Valid {
				_m.NodeType = value.String
			}
		case logrow.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case logrow.FieldSoundingIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sounding_index", values[i])
			} else if value.Valid {
				_m.SoundingIndex = new(int)
				*_m.SoundingIndex = int(value.Int64)
			}
		case logrow.FieldIsWinner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_winner", values[i])
			} else if value.Valid {
				_m.IsWinner = new(bool)
				*_m.IsWinner = value.Bool
			}
		case logrow.FieldReforgeStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reforge_step", values[i])
			} else if value.Valid {
				_m.ReforgeStep = new(int)
				*_m.ReforgeStep = int(value.Int64)
			}
		case logrow.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = new(int)
				*_m.AttemptNumber = int(value.Int64)
			}
		case logrow.FieldTurnNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_number", values[i])
			} else if value.Valid {
				_m.TurnNumber = new(int)
				*_m.TurnNumber = int(value.Int64)
			}
		case logrow.FieldMutationApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_applied", values[i])
			} else if value.Valid {
				_m.MutationApplied = new(bool)
				*_m.MutationApplied = value.Bool
			}
		case logrow.FieldMutationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_type", values[i])
			} else if value.Valid {
				_m.MutationType = new(string)
				*_m.MutationType = value.String
			}
		case logrow.FieldMutationTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_template", values[i])
			} else if value.Valid {
				_m.MutationTemplate = new(string)
				*_m.MutationTemplate = value.String
			}
		case logrow.FieldSpeciesHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field species_hash", values[i])
			} else if value.Valid {
				_m.SpeciesHash = new(string)
				*_m.SpeciesHash = value.String
			}
		case logrow.FieldCascadeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_id", values[i])
			} else if value.Valid {
				_m.CascadeID = value.String
			}
		case logrow.FieldCascadeFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_file", values[i])
			} else if value.Valid {
				_m.CascadeFile = new(string)
				*_m.CascadeFile = value.String
			}
		case logrow.FieldCascadeJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_json", values[i])
			} else if value.Valid {
				_m.CascadeJSON = new(string)
				*_m.CascadeJSON = value.String
			}
		case logrow.FieldPhaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_name", values[i])
			} else if value.Valid {
				_m.PhaseName = new(string)
				*_m.PhaseName = value.String
			}
		case logrow.FieldPhaseJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_json", values[i])
			} else if value.Valid {
				_m.PhaseJSON = new(string)
				*_m.PhaseJSON = value.String
			}
		case logrow.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = new(string)
				*_m.Model = value.String
			}
		case logrow.FieldModelRequested:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_requested", values[i])
			} else if value.Valid {
				_m.ModelRequested = new(string)
				*_m.ModelRequested = value.String
			}
		case logrow.FieldRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_id", values[i])
			} else if value.Valid {
				_m.RequestID = new(string)
				*_m.RequestID = value.String
			}
		case logrow.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = new(string)
				*_m.Provider = value.String
			}
		case logrow.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case logrow.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = new(int)
				*_m.TokensIn = int(value.Int64)
			}
		case logrow.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = new(int)
				*_m.TokensOut = int(value.Int64)
			}
		case logrow.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = new(float64)
				*_m.Cost = value.Float64
			}
		case logrow.FieldContentJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_json", values[i])
			} else if value.Valid {
				_m.ContentJSON = new(string)
				*_m.ContentJSON = value.String
			}
		case logrow.FieldFullRequestJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_request_json", values[i])
			} else if value.Valid {
				_m.FullRequestJSON = new(string)
				*_m.FullRequestJSON = value.String
			}
		case logrow.FieldFullResponseJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_response_json", values[i])
			} else if value.Valid {
				_m.FullResponseJSON = new(string)
				*_m.FullResponseJSON = value.String
			}
		case logrow.FieldToolCallsJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls_json", values[i])
			} else if value.Valid {
				_m.ToolCallsJSON = new(string)
				*_m.ToolCallsJSON = value.String
			}
		case logrow.FieldImagesJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field images_json", values[i])
			} else if value.Valid {
				_m.ImagesJSON = new(string)
				*_m.ImagesJSON = value.String
			}
		case logrow.FieldHasImages:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_images", values[i])
			} else if value.Valid {
				_m.HasImages = value.Bool
			}
		case logrow.FieldHasBase64:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_base64", values[i])
			} else if value.Valid {
				_m.HasBase64 = value.Bool
			}
		case logrow.FieldSemanticActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_actor", values[i])
			} else if value.Valid {
				_m.SemanticActor = logrow.SemanticActor(value.String)
			}
		case logrow.FieldSemanticPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_purpose", values[i])
			} else if value.Valid {
				_m.SemanticPurpose = logrow.SemanticPurpose(value.String)
			}
		case logrow.FieldIsCallout:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_callout", values[i])
			} else if value.Valid {
				_m.IsCallout = value.Bool
			}
		case logrow.FieldCalloutName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field callout_name", values[i])
			} else if value.Valid {
				_m.CalloutName = new(string)
				*_m.CalloutName = value.String
			}
		case logrow.FieldRowMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field row_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RowMetadata); err != nil {
					return fmt.Errorf("unmarshal field row_metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LogRow.
// This includes values selected through modifiers, order, etc.
func (_m *LogRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the LogRow entity.
func (_m *LogRow) QuerySession() *CascadeSessionQuery {
	return NewLogRowClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this LogRow.
// Note that you need to call LogRow.Unwrap() before calling this method if this LogRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LogRow) Update() *LogRowUpdateOne {
	return NewLogRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LogRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LogRow) Unwrap() *LogRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LogRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LogRow) String() string {
	var builder strings.Builder
	builder.WriteString("LogRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentSessionID; v != nil {
		builder.WriteString("parent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentMessageID; v != nil {
		builder.WriteString("parent_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("node_type=")
	builder.WriteString(_m.NodeType)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	if v := _m.SoundingIndex; v != nil {
		builder.WriteString("sounding_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IsWinner; v != nil {
		builder.WriteString("is_winner=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReforgeStep; v != nil {
		builder.WriteString("reforge_step=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AttemptNumber; v != nil {
		builder.WriteString("attempt_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TurnNumber; v != nil {
		builder.WriteString("turn_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MutationApplied; v != nil {
		builder.WriteString("mutation_applied=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MutationType; v != nil {
		builder.WriteString("mutation_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MutationTemplate; v != nil {
		builder.WriteString("mutation_template=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SpeciesHash; v != nil {
		builder.WriteString("species_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cascade_id=")
	builder.WriteString(_m.CascadeID)
	builder.WriteString(", ")
	if v := _m.CascadeFile; v != nil {
		builder.WriteString("cascade_file=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CascadeJSON; v != nil {
		builder.WriteString("cascade_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhaseName; v != nil {
		builder.WriteString("phase_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhaseJSON; v != nil {
		builder.WriteString("phase_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Model; v != nil {
		builder.WriteString("model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelRequested; v != nil {
		builder.WriteString("model_requested=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequestID; v != nil {
		builder.WriteString("request_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Provider; v != nil {
		builder.WriteString("provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensIn; v != nil {
		builder.WriteString("tokens_in=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensOut; v != nil {
		builder.WriteString("tokens_out=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Cost; v != nil {
		builder.WriteString("cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ContentJSON; v != nil {
		builder.WriteString("content_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullRequestJSON; v != nil {
		builder.WriteString("full_request_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FullResponseJSON; v != nil {
		builder.WriteString("full_response_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolCallsJSON; v != nil {
		builder.WriteString("tool_calls_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImagesJSON; v != nil {
		builder.WriteString("images_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("has_images=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasImages))
	builder.WriteString(", ")
	builder.WriteString("has_base64=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasBase64))
	builder.WriteString(", ")
	builder.WriteString("semantic_actor=")
	builder.WriteString(fmt.Sprintf("%v", _m.SemanticActor))
	builder.WriteString(", ")
	builder.WriteString("semantic_purpose=")
	builder.WriteString(fmt.Sprintf("%v", _m.SemanticPurpose))
	builder.WriteString(", ")
	builder.WriteString("is_callout=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCallout))
	builder.WriteString(", ")
	if v := _m.CalloutName; v != nil {
		builder.WriteString("callout_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("row_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowMetadata))
	builder.WriteByte(')')
	return builder.String()
}

// LogRows is a parsable slice of LogRow.
type LogRows []*LogRow
