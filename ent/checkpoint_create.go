// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *CheckpointCreate) SetSessionID(v string) *CheckpointCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCascadeID sets the "cascade_id" field.
func (_c *CheckpointCreate) SetCascadeID(v string) *CheckpointCreate {
	_c.mutation.SetCascadeID(v)
	return _c
}

// SetPhaseName sets the "phase_name" field.
func (_c *CheckpointCreate) SetPhaseName(v string) *CheckpointCreate {
	_c.mutation.SetPhaseName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *CheckpointCreate) SetType(v checkpoint.Type) *CheckpointCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CheckpointCreate) SetStatus(v checkpoint.Status) *CheckpointCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableStatus(v *checkpoint.Status) *CheckpointCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUISpec sets the "ui_spec" field.
func (_c *CheckpointCreate) SetUISpec(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetUISpec(v)
	return _c
}

// SetPhaseOutput sets the "phase_output" field.
func (_c *CheckpointCreate) SetPhaseOutput(v string) *CheckpointCreate {
	_c.mutation.SetPhaseOutput(v)
	return _c
}

// SetNillablePhaseOutput sets the "phase_output" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillablePhaseOutput(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetPhaseOutput(*v)
	}
	return _c
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (_c *CheckpointCreate) SetSoundingOutputsJSON(v string) *CheckpointCreate {
	_c.mutation.SetSoundingOutputsJSON(v)
	return _c
}

// SetNillableSoundingOutputsJSON sets the "sounding_outputs_json" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSoundingOutputsJSON(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetSoundingOutputsJSON(*v)
	}
	return _c
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (_c *CheckpointCreate) SetSoundingMetadataJSON(v string) *CheckpointCreate {
	_c.mutation.SetSoundingMetadataJSON(v)
	return _c
}

// SetNillableSoundingMetadataJSON sets the "sounding_metadata_json" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableSoundingMetadataJSON(v *string) *CheckpointCreate {
	if v != nil {
		_c.SetSoundingMetadataJSON(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *CheckpointCreate) SetTimeoutSeconds(v int) *CheckpointCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableTimeoutSeconds(v *int) *CheckpointCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetTraceContext sets the "trace_context" field.
func (_c *CheckpointCreate) SetTraceContext(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetTraceContext(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *CheckpointCreate) SetResponse(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckpointCreate) SetCreatedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableCreatedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *CheckpointCreate) SetRespondedAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableRespondedAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckpointCreate) SetID(v string) *CheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the CascadeSession entity.
func (_c *CheckpointCreate) SetSession(v *CascadeSession) *CheckpointCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := checkpoint.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Checkpoint.session_id"`)}
	}
	if _, ok := _c.mutation.CascadeID(); !ok {
		return &ValidationError{Name: "cascade_id", err: errors.New(`ent: missing required field "Checkpoint.cascade_id"`)}
	}
	if _, ok := _c.mutation.PhaseName(); !ok {
		return &ValidationError{Name: "phase_name", err: errors.New(`ent: missing required field "Checkpoint.phase_name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Checkpoint.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := checkpoint.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Checkpoint.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checkpoint.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UISpec(); !ok {
		return &ValidationError{Name: "ui_spec", err: errors.New(`ent: missing required field "Checkpoint.ui_spec"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Checkpoint.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Checkpoint.session"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Checkpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CascadeID(); ok {
		_spec.SetField(checkpoint.FieldCascadeID, field.TypeString, value)
		_node.CascadeID = value
	}
	if value, ok := _c.mutation.PhaseName(); ok {
		_spec.SetField(checkpoint.FieldPhaseName, field.TypeString, value)
		_node.PhaseName = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(checkpoint.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checkpoint.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UISpec(); ok {
		_spec.SetField(checkpoint.FieldUISpec, field.TypeJSON, value)
		_node.UISpec = value
	}
	if value, ok := _c.mutation.PhaseOutput(); ok {
		_spec.SetField(checkpoint.FieldPhaseOutput, field.TypeString, value)
		_node.PhaseOutput = &value
	}
	if value, ok := _c.mutation.SoundingOutputsJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingOutputsJSON, field.TypeString, value)
		_node.SoundingOutputsJSON = &value
	}
	if value, ok := _c.mutation.SoundingMetadataJSON(); ok {
		_spec.SetField(checkpoint.FieldSoundingMetadataJSON, field.TypeString, value)
		_node.SoundingMetadataJSON = &value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(checkpoint.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = &value
	}
	if value, ok := _c.mutation.TraceContext(); ok {
		_spec.SetField(checkpoint.FieldTraceContext, field.TypeJSON, value)
		_node.TraceContext = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(checkpoint.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(checkpoint.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.SessionTable,
			Columns: []string{checkpoint.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertOne {
	_c.conflict = opts
	return &CheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflictColumns(columns ...string) *CheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertOne{
		create: _c,
	}
}

type (
	// CheckpointUpsertOne is the builder for "upsert"-ing
	//  one Checkpoint node.
	CheckpointUpsertOne struct {
		create *CheckpointCreate
	}

	// CheckpointUpsert is the "OnConflict" setter.
	CheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *CheckpointUpsert) SetType(v checkpoint.Type) *CheckpointUpsert {
	u.Set(checkpoint.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateType() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldType)
	return u
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsert) SetStatus(v checkpoint.Status) *CheckpointUpsert {
	u.Set(checkpoint.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateStatus() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldStatus)
	return u
}

// SetUISpec sets the "ui_spec" field.
func (u *CheckpointUpsert) SetUISpec(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldUISpec, v)
	return u
}

// UpdateUISpec sets the "ui_spec" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateUISpec() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldUISpec)
	return u
}

// SetPhaseOutput sets the "phase_output" field.
func (u *CheckpointUpsert) SetPhaseOutput(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldPhaseOutput, v)
	return u
}

// UpdatePhaseOutput sets the "phase_output" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdatePhaseOutput() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldPhaseOutput)
	return u
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (u *CheckpointUpsert) ClearPhaseOutput() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldPhaseOutput)
	return u
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (u *CheckpointUpsert) SetSoundingOutputsJSON(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldSoundingOutputsJSON, v)
	return u
}

// UpdateSoundingOutputsJSON sets the "sounding_outputs_json" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateSoundingOutputsJSON() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldSoundingOutputsJSON)
	return u
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (u *CheckpointUpsert) ClearSoundingOutputsJSON() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldSoundingOutputsJSON)
	return u
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (u *CheckpointUpsert) SetSoundingMetadataJSON(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldSoundingMetadataJSON, v)
	return u
}

// UpdateSoundingMetadataJSON sets the "sounding_metadata_json" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateSoundingMetadataJSON() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldSoundingMetadataJSON)
	return u
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (u *CheckpointUpsert) ClearSoundingMetadataJSON() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldSoundingMetadataJSON)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *CheckpointUpsert) SetTimeoutSeconds(v int) *CheckpointUpsert {
	u.Set(checkpoint.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateTimeoutSeconds() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *CheckpointUpsert) AddTimeoutSeconds(v int) *CheckpointUpsert {
	u.Add(checkpoint.FieldTimeoutSeconds, v)
	return u
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *CheckpointUpsert) ClearTimeoutSeconds() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldTimeoutSeconds)
	return u
}

// SetTraceContext sets the "trace_context" field.
func (u *CheckpointUpsert) SetTraceContext(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldTraceContext, v)
	return u
}

// UpdateTraceContext sets the "trace_context" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateTraceContext() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldTraceContext)
	return u
}

// ClearTraceContext clears the value of the "trace_context" field.
func (u *CheckpointUpsert) ClearTraceContext() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldTraceContext)
	return u
}

// SetResponse sets the "response" field.
func (u *CheckpointUpsert) SetResponse(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateResponse() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldResponse)
	return u
}

// ClearResponse clears the value of the "response" field.
func (u *CheckpointUpsert) ClearResponse() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldResponse)
	return u
}

// SetRespondedAt sets the "responded_at" field.
func (u *CheckpointUpsert) SetRespondedAt(v time.Time) *CheckpointUpsert {
	u.Set(checkpoint.FieldRespondedAt, v)
	return u
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateRespondedAt() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldRespondedAt)
	return u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *CheckpointUpsert) ClearRespondedAt() *CheckpointUpsert {
	u.SetNull(checkpoint.FieldRespondedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertOne) UpdateNewValues() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkpoint.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(checkpoint.FieldSessionID)
		}
		if _, exists := u.create.mutation.CascadeID(); exists {
			s.SetIgnore(checkpoint.FieldCascadeID)
		}
		if _, exists := u.create.mutation.PhaseName(); exists {
			s.SetIgnore(checkpoint.FieldPhaseName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(checkpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckpointUpsertOne) Ignore() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertOne) DoNothing() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreate.OnConflict
// documentation for more info.
func (u *CheckpointUpsertOne) Update(set func(*CheckpointUpsert)) *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *CheckpointUpsertOne) SetType(v checkpoint.Type) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateType() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsertOne) SetStatus(v checkpoint.Status) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateStatus() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetUISpec sets the "ui_spec" field.
func (u *CheckpointUpsertOne) SetUISpec(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUISpec(v)
	})
}

// UpdateUISpec sets the "ui_spec" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateUISpec() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUISpec()
	})
}

// SetPhaseOutput sets the "phase_output" field.
func (u *CheckpointUpsertOne) SetPhaseOutput(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPhaseOutput(v)
	})
}

// UpdatePhaseOutput sets the "phase_output" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdatePhaseOutput() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePhaseOutput()
	})
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (u *CheckpointUpsertOne) ClearPhaseOutput() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPhaseOutput()
	})
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (u *CheckpointUpsertOne) SetSoundingOutputsJSON(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSoundingOutputsJSON(v)
	})
}

// UpdateSoundingOutputsJSON sets the "sounding_outputs_json" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateSoundingOutputsJSON() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSoundingOutputsJSON()
	})
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (u *CheckpointUpsertOne) ClearSoundingOutputsJSON() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearSoundingOutputsJSON()
	})
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (u *CheckpointUpsertOne) SetSoundingMetadataJSON(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSoundingMetadataJSON(v)
	})
}

// UpdateSoundingMetadataJSON sets the "sounding_metadata_json" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateSoundingMetadataJSON() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSoundingMetadataJSON()
	})
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (u *CheckpointUpsertOne) ClearSoundingMetadataJSON() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearSoundingMetadataJSON()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *CheckpointUpsertOne) SetTimeoutSeconds(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *CheckpointUpsertOne) AddTimeoutSeconds(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateTimeoutSeconds() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *CheckpointUpsertOne) ClearTimeoutSeconds() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTimeoutSeconds()
	})
}

// SetTraceContext sets the "trace_context" field.
func (u *CheckpointUpsertOne) SetTraceContext(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTraceContext(v)
	})
}

// UpdateTraceContext sets the "trace_context" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateTraceContext() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTraceContext()
	})
}

// ClearTraceContext clears the value of the "trace_context" field.
func (u *CheckpointUpsertOne) ClearTraceContext() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTraceContext()
	})
}

// SetResponse sets the "response" field.
func (u *CheckpointUpsertOne) SetResponse(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateResponse() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *CheckpointUpsertOne) ClearResponse() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearResponse()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *CheckpointUpsertOne) SetRespondedAt(v time.Time) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateRespondedAt() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *CheckpointUpsertOne) ClearRespondedAt() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CheckpointUpsertOne.ID is not supported by MySQL driver. Use CheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertBulk {
	_c.conflict = opts
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflictColumns(columns ...string) *CheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// CheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkpoint nodes.
type CheckpointUpsertBulk struct {
	create *CheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) UpdateNewValues() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkpoint.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(checkpoint.FieldSessionID)
			}
			if _, exists := b.mutation.CascadeID(); exists {
				s.SetIgnore(checkpoint.FieldCascadeID)
			}
			if _, exists := b.mutation.PhaseName(); exists {
				s.SetIgnore(checkpoint.FieldPhaseName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(checkpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) Ignore() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertBulk) DoNothing() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *CheckpointUpsertBulk) Update(set func(*CheckpointUpsert)) *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *CheckpointUpsertBulk) SetType(v checkpoint.Type) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateType() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *CheckpointUpsertBulk) SetStatus(v checkpoint.Status) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateStatus() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStatus()
	})
}

// SetUISpec sets the "ui_spec" field.
func (u *CheckpointUpsertBulk) SetUISpec(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetUISpec(v)
	})
}

// UpdateUISpec sets the "ui_spec" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateUISpec() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateUISpec()
	})
}

// SetPhaseOutput sets the "phase_output" field.
func (u *CheckpointUpsertBulk) SetPhaseOutput(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetPhaseOutput(v)
	})
}

// UpdatePhaseOutput sets the "phase_output" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdatePhaseOutput() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdatePhaseOutput()
	})
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (u *CheckpointUpsertBulk) ClearPhaseOutput() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearPhaseOutput()
	})
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (u *CheckpointUpsertBulk) SetSoundingOutputsJSON(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSoundingOutputsJSON(v)
	})
}

// UpdateSoundingOutputsJSON sets the "sounding_outputs_json" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateSoundingOutputsJSON() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSoundingOutputsJSON()
	})
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (u *CheckpointUpsertBulk) ClearSoundingOutputsJSON() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearSoundingOutputsJSON()
	})
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (u *CheckpointUpsertBulk) SetSoundingMetadataJSON(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSoundingMetadataJSON(v)
	})
}

// UpdateSoundingMetadataJSON sets the "sounding_metadata_json" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateSoundingMetadataJSON() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSoundingMetadataJSON()
	})
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (u *CheckpointUpsertBulk) ClearSoundingMetadataJSON() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearSoundingMetadataJSON()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *CheckpointUpsertBulk) SetTimeoutSeconds(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *CheckpointUpsertBulk) AddTimeoutSeconds(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateTimeoutSeconds() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (u *CheckpointUpsertBulk) ClearTimeoutSeconds() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTimeoutSeconds()
	})
}

// SetTraceContext sets the "trace_context" field.
func (u *CheckpointUpsertBulk) SetTraceContext(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetTraceContext(v)
	})
}

// UpdateTraceContext sets the "trace_context" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateTraceContext() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateTraceContext()
	})
}

// ClearTraceContext clears the value of the "trace_context" field.
func (u *CheckpointUpsertBulk) ClearTraceContext() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearTraceContext()
	})
}

// SetResponse sets the "response" field.
func (u *CheckpointUpsertBulk) SetResponse(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateResponse() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *CheckpointUpsertBulk) ClearResponse() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearResponse()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *CheckpointUpsertBulk) SetRespondedAt(v time.Time) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateRespondedAt() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *CheckpointUpsertBulk) ClearRespondedAt() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.ClearRespondedAt()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
