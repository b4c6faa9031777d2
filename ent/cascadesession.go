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
)

// CascadeSession is the model entity for the CascadeSession schema.
type CascadeSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Cascade identifier (live lookup against the registry, no snapshot)
	CascadeID string `json:"cascade_id,omitempty"`
	// Set for sub-cascades, async cascades, and cascade-level soundings
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	// Nesting depth from the root session
	Depth int `json:"depth,omitempty"`
	// Status holds the value of the "status" field.
	Status cascadesession.Status `json:"status,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase *string `json:"current_phase,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// CancelReason holds the value of the "cancel_reason" field.
	CancelReason *string `json:"cancel_reason,omitempty"`
	// Original task input passed to run()
	Input *string `json:"input,omitempty"`
	// SessionMetadata holds the value of the "session_metadata" field.
	SessionMetadata map[string]interface{} `json:"session_metadata,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Lease timestamp; orphan janitor compares against lease + grace
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker claimed the session (queued -> running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CascadeSessionQuery when eager-loading is set.
	Edges        CascadeSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CascadeSessionEdges holds the relations/edges for other nodes in the graph.
type CascadeSessionEdges struct {
	// Parent holds the value of the parent edge.
	Parent *CascadeSession `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*CascadeSession `json:"children,omitempty"`
	// LogRows holds the value of the log_rows edge.
	LogRows []*LogRow `json:"log_rows,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CascadeSessionEdges) ParentOrErr() (*CascadeSession, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cascadesession.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e CascadeSessionEdges) ChildrenOrErr() ([]*CascadeSession, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// LogRowsOrErr returns the LogRows value or an error if the edge
// was not loaded in eager-loading.
func (e CascadeSessionEdges) LogRowsOrErr() ([]*LogRow, error) {
	if e.loadedTypes[2] {
		return e.LogRows, nil
	}
	return nil, &NotLoadedError{edge: "log_rows"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e CascadeSessionEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[3] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CascadeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cascadesession.FieldSessionMetadata:
			values[i] = new([]byte)
		case cascadesession.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case cascadesession.FieldDepth:
			values[i] = new(sql.NullInt64)
		case cascadesession.FieldID, cascadesession.FieldCascadeID, cascadesession.FieldParentSessionID, cascadesession.FieldStatus, cascadesession.FieldCurrentPhase, cascadesession.FieldErrorMessage, cascadesession.FieldCancelReason, cascadesession.FieldInput, cascadesession.FieldPodID:
			values[i] = new(sql.NullString)
		case cascadesession.FieldHeartbeatAt, cascadesession.FieldCreatedAt, cascadesession.FieldUpdatedAt, cascadesession.FieldStartedAt, cascadesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CascadeSession fields.
func (_m *CascadeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cascadesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cascadesession.FieldCascadeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_id", values[i])
			} else if value.Valid {
				_m.CascadeID = value.String
			}
		case cascadesession.FieldParentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_session_id", values[i])
			} else if value.Valid {
				_m.ParentSessionID = new(string)
				*_m.ParentSessionID = value.String
			}
		case cascadesession.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case cascadesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = cascadesession.Status(value.String)
			}
		case cascadesession.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = new(string)
				*_m.CurrentPhase = value.String
			}
		case cascadesession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case cascadesession.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case cascadesession.FieldCancelReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_reason", values[i])
			} else if value.Valid {
				_m.CancelReason = new(string)
				*_m.CancelReason = value.String
			}
		case cascadesession.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = new(string)
				*_m.Input = value.String
			}
		case cascadesession.FieldSessionMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field session_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SessionMetadata); err != nil {
					return fmt.Errorf("unmarshal field session_metadata: %w", err)
				}
			}
		case cascadesession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case cascadesession.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = new(time.Time)
				*_m.HeartbeatAt = value.Time
			}
		case cascadesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cascadesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cascadesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case cascadesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CascadeSession.
// This includes values selected through modifiers, order, etc.
func (_m *CascadeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the CascadeSession entity.
func (_m *CascadeSession) QueryParent() *CascadeSessionQuery {
	return NewCascadeSessionClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the CascadeSession entity.
func (_m *CascadeSession) QueryChildren() *CascadeSessionQuery {
	return NewCascadeSessionClient(_m.config).QueryChildren(_m)
}

// QueryLogRows queries the "log_rows" edge of the CascadeSession entity.
func (_m *CascadeSession) QueryLogRows() *LogRowQuery {
	return NewCascadeSessionClient(_m.config).QueryLogRows(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the CascadeSession entity.
func (_m *CascadeSession) QueryCheckpoints() *CheckpointQuery {
	return NewCascadeSessionClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this CascadeSession.
// Note that you need to call CascadeSession.Unwrap() before calling this method if this CascadeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CascadeSession) Update() *CascadeSessionUpdateOne {
	return NewCascadeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CascadeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CascadeSession) Unwrap() *CascadeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CascadeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CascadeSession) String() string {
	var builder strings.Builder
	builder.WriteString("CascadeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cascade_id=")
	builder.WriteString(_m.CascadeID)
	builder.WriteString(", ")
	if v := _m.ParentSessionID; v != nil {
		builder.WriteString("parent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentPhase; v != nil {
		builder.WriteString("current_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.CancelReason; v != nil {
		builder.WriteString("cancel_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Input; v != nil {
		builder.WriteString("input=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("session_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionMetadata))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CascadeSessions is a parsable slice of CascadeSession.
type CascadeSessions []*CascadeSession
