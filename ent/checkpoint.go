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
	"github.com/windlassio/windlass/ent/checkpoint"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// CascadeID holds the value of the "cascade_id" field.
	CascadeID string `json:"cascade_id,omitempty"`
	// PhaseName holds the value of the "phase_name" field.
	PhaseName string `json:"phase_name,omitempty"`
	// Type holds the value of the "type" field.
	Type checkpoint.Type `json:"type,omitempty"`
	// Status holds the value of the "status" field.
	Status checkpoint.Status `json:"status,omitempty"`
	// Section vocabulary: preview | text | choice | card_grid | image
	UISpec map[string]interface{} `json:"ui_spec,omitempty"`
	// PhaseOutput holds the value of the "phase_output" field.
	PhaseOutput *string `json:"phase_output,omitempty"`
	// SoundingOutputsJSON holds the value of the "sounding_outputs_json" field.
	SoundingOutputsJSON *string `json:"sounding_outputs_json,omitempty"`
	// SoundingMetadataJSON holds the value of the "sounding_metadata_json" field.
	SoundingMetadataJSON *string `json:"sounding_metadata_json,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
	// TraceContext holds the value of the "trace_context" field.
	TraceContext map[string]interface{} `json:"trace_context,omitempty"`
	// Response holds the value of the "response" field.
	Response map[string]interface{} `json:"response,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Session holds the value of the session edge.
	Session *CascadeSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) SessionOrErr() (*CascadeSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cascadesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldUISpec, checkpoint.FieldTraceContext, checkpoint.FieldResponse:
			values[i] = new([]byte)
		case checkpoint.FieldTimeoutSeconds:
			values[i] = new(sql.NullInt64)
		case checkpoint.FieldID, checkpoint.FieldSessionID, checkpoint.FieldCascadeID, checkpoint.FieldPhaseName, checkpoint.FieldType, checkpoint.FieldStatus, checkpoint.FieldPhaseOutput, checkpoint.FieldSoundingOutputsJSON, checkpoint.FieldSoundingMetadataJSON:
			values[i] = new(sql.NullString)
		case checkpoint.FieldCreatedAt, checkpoint.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case checkpoint.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case checkpoint.FieldCascadeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_id", values[i])
			} else if value.Valid {
				_m.CascadeID = value.String
			}
		case checkpoint.FieldPhaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_name", values[i])
			} else if value.Valid {
				_m.PhaseName = value.String
			}
		case checkpoint.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = checkpoint.Type(value.String)
			}
		case checkpoint.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = checkpoint.Status(value.String)
			}
		case checkpoint.FieldUISpec:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ui_spec", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UISpec); err != nil {
					return fmt.Errorf("unmarshal field ui_spec: %w", err)
				}
			}
		case checkpoint.FieldPhaseOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_output", values[i])
			} else if value.Valid {
				_m.PhaseOutput = new(string)
				*_m.PhaseOutput = value.String
			}
		case checkpoint.FieldSoundingOutputsJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sounding_outputs_json", values[i])
			} else if value.Valid {
				_m.SoundingOutputsJSON = new(string)
				*_m.SoundingOutputsJSON = value.String
			}
		case checkpoint.FieldSoundingMetadataJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sounding_metadata_json", values[i])
			} else if value.Valid {
				_m.SoundingMetadataJSON = new(string)
				*_m.SoundingMetadataJSON = value.String
			}
		case checkpoint.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = new(int)
				*_m.TimeoutSeconds = int(value.Int64)
			}
		case checkpoint.FieldTraceContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trace_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TraceContext); err != nil {
					return fmt.Errorf("unmarshal field trace_context: %w", err)
				}
			}
		case checkpoint.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Response); err != nil {
					return fmt.Errorf("unmarshal field response: %w", err)
				}
			}
		case checkpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkpoint.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Checkpoint entity.
func (_m *Checkpoint) QuerySession() *CascadeSessionQuery {
	return NewCheckpointClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("cascade_id=")
	builder.WriteString(_m.CascadeID)
	builder.WriteString(", ")
	builder.WriteString("phase_name=")
	builder.WriteString(_m.PhaseName)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("ui_spec=")
	builder.WriteString(fmt.Sprintf("%v", _m.UISpec))
	builder.WriteString(", ")
	if v := _m.PhaseOutput; v != nil {
		builder.WriteString("phase_output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SoundingOutputsJSON; v != nil {
		builder.WriteString("sounding_outputs_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SoundingMetadataJSON; v != nil {
		builder.WriteString("sounding_metadata_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeoutSeconds; v != nil {
		builder.WriteString("timeout_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("trace_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.TraceContext))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
