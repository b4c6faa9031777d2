// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/predicate"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *CheckpointUpdate) SetType(v checkpoint.Type) *CheckpointUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableType(v *checkpoint.Type) *CheckpointUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckpointUpdate) SetStatus(v checkpoint.Status) *CheckpointUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableStatus(v *checkpoint.Status) *CheckpointUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUISpec sets the "ui_spec" field.
func (_u *CheckpointUpdate) SetUISpec(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetUISpec(v)
	return _u
}

// SetPhaseOutput sets the "phase_output" field.
func (_u *CheckpointUpdate) SetPhaseOutput(v string) *CheckpointUpdate {
	_u.mutation.SetPhaseOutput(v)
	return _u
}

// SetNillablePhaseOutput sets the "phase_output" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillablePhaseOutput(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetPhaseOutput(*v)
	}
	return _u
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (_u *CheckpointUpdate) ClearPhaseOutput() *CheckpointUpdate {
	_u.mutation.ClearPhaseOutput()
	return _u
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (_u *CheckpointUpdate) SetSoundingOutputsJSON(v string) *CheckpointUpdate {
	_u.mutation.SetSoundingOutputsJSON(v)
	return _u
}

// SetNillableSoundingOutputsJSON sets the "sounding_outputs_json" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableSoundingOutputsJSON(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetSoundingOutputsJSON(*v)
	}
	return _u
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (_u *CheckpointUpdate) ClearSoundingOutputsJSON() *CheckpointUpdate {
	_u.mutation.ClearSoundingOutputsJSON()
	return _u
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (_u *CheckpointUpdate) SetSoundingMetadataJSON(v string) *CheckpointUpdate {
	_u.mutation.SetSoundingMetadataJSON(v)
	return _u
}

// SetNillableSoundingMetadataJSON sets the "sounding_metadata_json" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableSoundingMetadataJSON(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetSoundingMetadataJSON(*v)
	}
	return _u
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (_u *CheckpointUpdate) ClearSoundingMetadataJSON() *CheckpointUpdate {
	_u.mutation.ClearSoundingMetadataJSON()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *CheckpointUpdate) SetTimeoutSeconds(v int) *CheckpointUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableTimeoutSeconds(v *int) *CheckpointUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *CheckpointUpdate) AddTimeoutSeconds(v int) *CheckpointUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *CheckpointUpdate) ClearTimeoutSeconds() *CheckpointUpdate {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetTraceContext sets the "trace_context" field.
func (_u *CheckpointUpdate) SetTraceContext(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetTraceContext(v)
	return _u
}

// ClearTraceContext clears the value of the "trace_context" field.
func (_u *CheckpointUpdate) ClearTraceContext() *CheckpointUpdate {
	_u.mutation.ClearTraceContext()
	return _u
}

// SetResponse sets the "response" field.
func (_u *CheckpointUpdate) SetResponse(v map[string]interface{}) *CheckpointUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *CheckpointUpdate) ClearResponse() *CheckpointUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *CheckpointUpdate) SetRespondedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableRespondedAt(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *CheckpointUpdate) ClearRespondedAt() *CheckpointUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := checkpoint.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.session"`)
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(checkpoint.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UISpec(); ok {
		_spec.SetField(checkpoint.FieldUISpec, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PhaseOutput(); ok {
		_spec.SetField(checkpoint.FieldPhaseOutput, field.TypeString, value)
	}
	if _u.mutation.PhaseOutputCleared() {
		_spec.ClearField(checkpoint.FieldPhaseOutput, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingOutputsJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingOutputsJSON, field.TypeString, value)
	}
	if _u.mutation.SoundingOutputsJSONCleared() {
		_spec.ClearField(checkpoint.FieldSoundingOutputsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingMetadataJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingMetadataJSON, field.TypeString, value)
	}
	if _u.mutation.SoundingMetadataJSONCleared() {
		_spec.ClearField(checkpoint.FieldSoundingMetadataJSON, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(checkpoint.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(checkpoint.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(checkpoint.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.TraceContext(); ok {
		_spec.SetField(checkpoint.FieldTraceContext, field.TypeJSON, value)
	}
	if _u.mutation.TraceContextCleared() {
		_spec.ClearField(checkpoint.FieldTraceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(checkpoint.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(checkpoint.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(checkpoint.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(checkpoint.FieldRespondedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetType sets the "type" field.
func (_u *CheckpointUpdateOne) SetType(v checkpoint.Type) *CheckpointUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableType(v *checkpoint.Type) *CheckpointUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CheckpointUpdateOne) SetStatus(v checkpoint.Status) *CheckpointUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableStatus(v *checkpoint.Status) *CheckpointUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUISpec sets the "ui_spec" field.
func (_u *CheckpointUpdateOne) SetUISpec(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetUISpec(v)
	return _u
}

// SetPhaseOutput sets the "phase_output" field.
func (_u *CheckpointUpdateOne) SetPhaseOutput(v string) *CheckpointUpdateOne {
	_u.mutation.SetPhaseOutput(v)
	return _u
}

// SetNillablePhaseOutput sets the "phase_output" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillablePhaseOutput(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetPhaseOutput(*v)
	}
	return _u
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (_u *CheckpointUpdateOne) ClearPhaseOutput() *CheckpointUpdateOne {
	_u.mutation.ClearPhaseOutput()
	return _u
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (_u *CheckpointUpdateOne) SetSoundingOutputsJSON(v string) *CheckpointUpdateOne {
	_u.mutation.SetSoundingOutputsJSON(v)
	return _u
}

// SetNillableSoundingOutputsJSON sets the "sounding_outputs_json" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableSoundingOutputsJSON(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetSoundingOutputsJSON(*v)
	}
	return _u
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (_u *CheckpointUpdateOne) ClearSoundingOutputsJSON() *CheckpointUpdateOne {
	_u.mutation.ClearSoundingOutputsJSON()
	return _u
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (_u *CheckpointUpdateOne) SetSoundingMetadataJSON(v string) *CheckpointUpdateOne {
	_u.mutation.SetSoundingMetadataJSON(v)
	return _u
}

// SetNillableSoundingMetadataJSON sets the "sounding_metadata_json" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableSoundingMetadataJSON(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetSoundingMetadataJSON(*v)
	}
	return _u
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (_u *CheckpointUpdateOne) ClearSoundingMetadataJSON() *CheckpointUpdateOne {
	_u.mutation.ClearSoundingMetadataJSON()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *CheckpointUpdateOne) SetTimeoutSeconds(v int) *CheckpointUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableTimeoutSeconds(v *int) *CheckpointUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *CheckpointUpdateOne) AddTimeoutSeconds(v int) *CheckpointUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (_u *CheckpointUpdateOne) ClearTimeoutSeconds() *CheckpointUpdateOne {
	_u.mutation.ClearTimeoutSeconds()
	return _u
}

// SetTraceContext sets the "trace_context" field.
func (_u *CheckpointUpdateOne) SetTraceContext(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetTraceContext(v)
	return _u
}

// ClearTraceContext clears the value of the "trace_context" field.
func (_u *CheckpointUpdateOne) ClearTraceContext() *CheckpointUpdateOne {
	_u.mutation.ClearTraceContext()
	return _u
}

// SetResponse sets the "response" field.
func (_u *CheckpointUpdateOne) SetResponse(v map[string]interface{}) *CheckpointUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *CheckpointUpdateOne) ClearResponse() *CheckpointUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *CheckpointUpdateOne) SetRespondedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableRespondedAt(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *CheckpointUpdateOne) ClearRespondedAt() *CheckpointUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := checkpoint.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Checkpoint.session"`)
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(checkpoint.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UISpec(); ok {
		_spec.SetField(checkpoint.FieldUISpec, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PhaseOutput(); ok {
		_spec.SetField(checkpoint.FieldPhaseOutput, field.TypeString, value)
	}
	if _u.mutation.PhaseOutputCleared() {
		_spec.ClearField(checkpoint.FieldPhaseOutput, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingOutputsJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingOutputsJSON, field.TypeString, value)
	}
	if _u.mutation.SoundingOutputsJSONCleared() {
		_spec.ClearField(checkpoint.FieldSoundingOutputsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingMetadataJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingMetadataJSON, field.TypeString, value)
	}
	if _u.mutation.SoundingMetadataJSONCleared() {
		_spec.ClearField(checkpoint.FieldSoundingMetadataJSON, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(checkpoint.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(checkpoint.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if _u.mutation.TimeoutSecondsCleared() {
		_spec.ClearField(checkpoint.FieldTimeoutSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.TraceContext(); ok {
		_spec.SetField(checkpoint.FieldTraceContext, field.TypeJSON, value)
	}
	if _u.mutation.TraceContextCleared() {
		_spec.ClearField(checkpoint.FieldTraceContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(checkpoint.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(checkpoint.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(checkpoint.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(checkpoint.FieldRespondedAt, field.TypeTime)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
