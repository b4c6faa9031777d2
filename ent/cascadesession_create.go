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
	"github.com/windlassio/windlass/ent/logrow"
)

// CascadeSessionCreate is the builder for creating a CascadeSession entity.
type CascadeSessionCreate struct {
	config
	mutation *CascadeSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCascadeID sets the "cascade_id" field.
func (_c *CascadeSessionCreate) SetCascadeID(v string) *CascadeSessionCreate {
	_c.mutation.SetCascadeID(v)
	return _c
}

// SetParentSessionID sets the "parent_session_id" field.
func (_c *CascadeSessionCreate) SetParentSessionID(v string) *CascadeSessionCreate {
	_c.mutation.SetParentSessionID(v)
	return _c
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableParentSessionID(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetParentSessionID(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *CascadeSessionCreate) SetDepth(v int) *CascadeSessionCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableDepth(v *int) *CascadeSessionCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CascadeSessionCreate) SetStatus(v cascadesession.Status) *CascadeSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableStatus(v *cascadesession.Status) *CascadeSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *CascadeSessionCreate) SetCurrentPhase(v string) *CascadeSessionCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableCurrentPhase(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CascadeSessionCreate) SetErrorMessage(v string) *CascadeSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableErrorMessage(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *CascadeSessionCreate) SetCancelRequested(v bool) *CascadeSessionCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableCancelRequested(v *bool) *CascadeSessionCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetCancelReason sets the "cancel_reason" field.
func (_c *CascadeSessionCreate) SetCancelReason(v string) *CascadeSessionCreate {
	_c.mutation.SetCancelReason(v)
	return _c
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableCancelReason(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetCancelReason(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *CascadeSessionCreate) SetInput(v string) *CascadeSessionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableInput(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetInput(*v)
	}
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *CascadeSessionCreate) SetSessionMetadata(v map[string]interface{}) *CascadeSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *CascadeSessionCreate) SetPodID(v string) *CascadeSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillablePodID(v *string) *CascadeSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *CascadeSessionCreate) SetHeartbeatAt(v time.Time) *CascadeSessionCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableHeartbeatAt(v *time.Time) *CascadeSessionCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CascadeSessionCreate) SetCreatedAt(v time.Time) *CascadeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableCreatedAt(v *time.Time) *CascadeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CascadeSessionCreate) SetUpdatedAt(v time.Time) *CascadeSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableUpdatedAt(v *time.Time) *CascadeSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CascadeSessionCreate) SetStartedAt(v time.Time) *CascadeSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableStartedAt(v *time.Time) *CascadeSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CascadeSessionCreate) SetCompletedAt(v time.Time) *CascadeSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableCompletedAt(v *time.Time) *CascadeSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CascadeSessionCreate) SetID(v string) *CascadeSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParentID sets the "parent" edge to the CascadeSession entity by ID.
func (_c *CascadeSessionCreate) SetParentID(id string) *CascadeSessionCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the CascadeSession entity by ID if the given value is not nil.
func (_c *CascadeSessionCreate) SetNillableParentID(id *string) *CascadeSessionCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the CascadeSession entity.
func (_c *CascadeSessionCreate) SetParent(v *CascadeSession) *CascadeSessionCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the CascadeSession entity by IDs.
func (_c *CascadeSessionCreate) AddChildIDs(ids ...string) *CascadeSessionCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the CascadeSession entity.
func (_c *CascadeSessionCreate) AddChildren(v ...*CascadeSession) *CascadeSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddLogRowIDs adds the "log_rows" edge to the LogRow entity by IDs.
func (_c *CascadeSessionCreate) AddLogRowIDs(ids ...string) *CascadeSessionCreate {
	_c.mutation.AddLogRowIDs(ids...)
	return _c
}

// AddLogRows adds the "log_rows" edges to the LogRow entity.
func (_c *CascadeSessionCreate) AddLogRows(v ...*LogRow) *CascadeSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogRowIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *CascadeSessionCreate) AddCheckpointIDs(ids ...string) *CascadeSessionCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *CascadeSessionCreate) AddCheckpoints(v ...*Checkpoint) *CascadeSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the CascadeSessionMutation object of the builder.
func (_c *CascadeSessionCreate) Mutation() *CascadeSessionMutation {
	return _c.mutation
}

// Save creates the CascadeSession in the database.
func (_c *CascadeSessionCreate) Save(ctx context.Context) (*CascadeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CascadeSessionCreate) SaveX(ctx context.Context) *CascadeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CascadeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CascadeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CascadeSessionCreate) defaults() {
	if _, ok := _c.mutation.Depth(); !ok {
		v := cascadesession.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := cascadesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := cascadesession.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cascadesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cascadesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CascadeSessionCreate) check() error {
	if _, ok := _c.mutation.CascadeID(); !ok {
		return &ValidationError{Name: "cascade_id", err: errors.New(`ent: missing required field "CascadeSession.cascade_id"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "CascadeSession.depth"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CascadeSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := cascadesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CascadeSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "CascadeSession.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CascadeSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CascadeSession.updated_at"`)}
	}
	return nil
}

func (_c *CascadeSessionCreate) sqlSave(ctx context.Context) (*CascadeSession, error) {
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
			return nil, fmt.Errorf("unexpected CascadeSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CascadeSessionCreate) createSpec() (*CascadeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CascadeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cascadesession.Table, sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CascadeID(); ok {
		_spec.SetField(cascadesession.FieldCascadeID, field.TypeString, value)
		_node.CascadeID = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(cascadesession.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(cascadesession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(cascadesession.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(cascadesession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(cascadesession.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.CancelReason(); ok {
		_spec.SetField(cascadesession.FieldCancelReason, field.TypeString, value)
		_node.CancelReason = &value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(cascadesession.FieldInput, field.TypeString, value)
		_node.Input = &value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(cascadesession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(cascadesession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(cascadesession.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cascadesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cascadesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(cascadesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(cascadesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cascadesession.ParentTable,
			Columns: []string{cascadesession.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentSessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cascadesession.ChildrenTable,
			Columns: []string{cascadesession.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogRowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cascadesession.LogRowsTable,
			Columns: []string{cascadesession.LogRowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(logrow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cascadesession.CheckpointsTable,
			Columns: []string{cascadesession.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CascadeSession.Create().
//		SetCascadeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CascadeSessionUpsert) {
//			SetCascadeID(v+v).
//		}).
//		Exec(ctx)
func (_c *CascadeSessionCreate) OnConflict(opts ...sql.ConflictOption) *CascadeSessionUpsertOne {
	_c.conflict = opts
	return &CascadeSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CascadeSessionCreate) OnConflictColumns(columns ...string) *CascadeSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CascadeSessionUpsertOne{
		create: _c,
	}
}

type (
	// CascadeSessionUpsertOne is the builder for "upsert"-ing
	//  one CascadeSession node.
	CascadeSessionUpsertOne struct {
		create *CascadeSessionCreate
	}

	// CascadeSessionUpsert is the "OnConflict" setter.
	CascadeSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetCascadeID sets the "cascade_id" field.
func (u *CascadeSessionUpsert) SetCascadeID(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldCascadeID, v)
	return u
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateCascadeID() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldCascadeID)
	return u
}

// SetDepth sets the "depth" field.
func (u *CascadeSessionUpsert) SetDepth(v int) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateDepth() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *CascadeSessionUpsert) AddDepth(v int) *CascadeSessionUpsert {
	u.Add(cascadesession.FieldDepth, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CascadeSessionUpsert) SetStatus(v cascadesession.Status) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateStatus() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldStatus)
	return u
}

// SetCurrentPhase sets the "current_phase" field.
func (u *CascadeSessionUpsert) SetCurrentPhase(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldCurrentPhase, v)
	return u
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateCurrentPhase() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldCurrentPhase)
	return u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *CascadeSessionUpsert) ClearCurrentPhase() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldCurrentPhase)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CascadeSessionUpsert) SetErrorMessage(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateErrorMessage() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CascadeSessionUpsert) ClearErrorMessage() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldErrorMessage)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *CascadeSessionUpsert) SetCancelRequested(v bool) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateCancelRequested() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldCancelRequested)
	return u
}

// SetCancelReason sets the "cancel_reason" field.
func (u *CascadeSessionUpsert) SetCancelReason(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldCancelReason, v)
	return u
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateCancelReason() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldCancelReason)
	return u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *CascadeSessionUpsert) ClearCancelReason() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldCancelReason)
	return u
}

// SetInput sets the "input" field.
func (u *CascadeSessionUpsert) SetInput(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldInput, v)
	return u
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateInput() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldInput)
	return u
}

// ClearInput clears the value of the "input" field.
func (u *CascadeSessionUpsert) ClearInput() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldInput)
	return u
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *CascadeSessionUpsert) SetSessionMetadata(v map[string]interface{}) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldSessionMetadata, v)
	return u
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateSessionMetadata() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldSessionMetadata)
	return u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *CascadeSessionUpsert) ClearSessionMetadata() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldSessionMetadata)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *CascadeSessionUpsert) SetPodID(v string) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdatePodID() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CascadeSessionUpsert) ClearPodID() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldPodID)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *CascadeSessionUpsert) SetHeartbeatAt(v time.Time) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateHeartbeatAt() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *CascadeSessionUpsert) ClearHeartbeatAt() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldHeartbeatAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CascadeSessionUpsert) SetUpdatedAt(v time.Time) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateUpdatedAt() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *CascadeSessionUpsert) SetStartedAt(v time.Time) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateStartedAt() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CascadeSessionUpsert) ClearStartedAt() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CascadeSessionUpsert) SetCompletedAt(v time.Time) *CascadeSessionUpsert {
	u.Set(cascadesession.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CascadeSessionUpsert) UpdateCompletedAt() *CascadeSessionUpsert {
	u.SetExcluded(cascadesession.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CascadeSessionUpsert) ClearCompletedAt() *CascadeSessionUpsert {
	u.SetNull(cascadesession.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cascadesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CascadeSessionUpsertOne) UpdateNewValues() *CascadeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cascadesession.FieldID)
		}
		if _, exists := u.create.mutation.ParentSessionID(); exists {
			s.SetIgnore(cascadesession.FieldParentSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cascadesession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CascadeSessionUpsertOne) Ignore() *CascadeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CascadeSessionUpsertOne) DoNothing() *CascadeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CascadeSessionCreate.OnConflict
// documentation for more info.
func (u *CascadeSessionUpsertOne) Update(set func(*CascadeSessionUpsert)) *CascadeSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CascadeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCascadeID sets the "cascade_id" field.
func (u *CascadeSessionUpsertOne) SetCascadeID(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCascadeID(v)
	})
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateCascadeID() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCascadeID()
	})
}

// SetDepth sets the "depth" field.
func (u *CascadeSessionUpsertOne) SetDepth(v int) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *CascadeSessionUpsertOne) AddDepth(v int) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateDepth() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateDepth()
	})
}

// SetStatus sets the "status" field.
func (u *CascadeSessionUpsertOne) SetStatus(v cascadesession.Status) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateStatus() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *CascadeSessionUpsertOne) SetCurrentPhase(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateCurrentPhase() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCurrentPhase()
	})
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *CascadeSessionUpsertOne) ClearCurrentPhase() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCurrentPhase()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CascadeSessionUpsertOne) SetErrorMessage(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateErrorMessage() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CascadeSessionUpsertOne) ClearErrorMessage() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *CascadeSessionUpsertOne) SetCancelRequested(v bool) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateCancelRequested() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *CascadeSessionUpsertOne) SetCancelReason(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateCancelReason() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *CascadeSessionUpsertOne) ClearCancelReason() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCancelReason()
	})
}

// SetInput sets the "input" field.
func (u *CascadeSessionUpsertOne) SetInput(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateInput() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *CascadeSessionUpsertOne) ClearInput() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearInput()
	})
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *CascadeSessionUpsertOne) SetSessionMetadata(v map[string]interface{}) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetSessionMetadata(v)
	})
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateSessionMetadata() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateSessionMetadata()
	})
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *CascadeSessionUpsertOne) ClearSessionMetadata() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearSessionMetadata()
	})
}

// SetPodID sets the "pod_id" field.
func (u *CascadeSessionUpsertOne) SetPodID(v string) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdatePodID() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CascadeSessionUpsertOne) ClearPodID() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearPodID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *CascadeSessionUpsertOne) SetHeartbeatAt(v time.Time) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateHeartbeatAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *CascadeSessionUpsertOne) ClearHeartbeatAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CascadeSessionUpsertOne) SetUpdatedAt(v time.Time) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateUpdatedAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CascadeSessionUpsertOne) SetStartedAt(v time.Time) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateStartedAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CascadeSessionUpsertOne) ClearStartedAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CascadeSessionUpsertOne) SetCompletedAt(v time.Time) *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertOne) UpdateCompletedAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CascadeSessionUpsertOne) ClearCompletedAt() *CascadeSessionUpsertOne {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CascadeSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CascadeSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CascadeSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CascadeSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CascadeSessionUpsertOne.ID is not supported by MySQL driver. Use CascadeSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CascadeSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CascadeSessionCreateBulk is the builder for creating many CascadeSession entities in bulk.
type CascadeSessionCreateBulk struct {
	config
	err      error
	builders []*CascadeSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the CascadeSession entities in the database.
func (_c *CascadeSessionCreateBulk) Save(ctx context.Context) ([]*CascadeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CascadeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CascadeSessionMutation)
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
func (_c *CascadeSessionCreateBulk) SaveX(ctx context.Context) []*CascadeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CascadeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CascadeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CascadeSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CascadeSessionUpsert) {
//			SetCascadeID(v+v).
//		}).
//		Exec(ctx)
func (_c *CascadeSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CascadeSessionUpsertBulk {
	_c.conflict = opts
	return &CascadeSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CascadeSessionCreateBulk) OnConflictColumns(columns ...string) *CascadeSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CascadeSessionUpsertBulk{
		create: _c,
	}
}

// CascadeSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of CascadeSession nodes.
type CascadeSessionUpsertBulk struct {
	create *CascadeSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cascadesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CascadeSessionUpsertBulk) UpdateNewValues() *CascadeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cascadesession.FieldID)
			}
			if _, exists := b.mutation.ParentSessionID(); exists {
				s.SetIgnore(cascadesession.FieldParentSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cascadesession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CascadeSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CascadeSessionUpsertBulk) Ignore() *CascadeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CascadeSessionUpsertBulk) DoNothing() *CascadeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CascadeSessionCreateBulk.OnConflict
// documentation for more info.
func (u *CascadeSessionUpsertBulk) Update(set func(*CascadeSessionUpsert)) *CascadeSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CascadeSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCascadeID sets the "cascade_id" field.
func (u *CascadeSessionUpsertBulk) SetCascadeID(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCascadeID(v)
	})
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateCascadeID() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCascadeID()
	})
}

// SetDepth sets the "depth" field.
func (u *CascadeSessionUpsertBulk) SetDepth(v int) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *CascadeSessionUpsertBulk) AddDepth(v int) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateDepth() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateDepth()
	})
}

// SetStatus sets the "status" field.
func (u *CascadeSessionUpsertBulk) SetStatus(v cascadesession.Status) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateStatus() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentPhase sets the "current_phase" field.
func (u *CascadeSessionUpsertBulk) SetCurrentPhase(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCurrentPhase(v)
	})
}

// UpdateCurrentPhase sets the "current_phase" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateCurrentPhase() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCurrentPhase()
	})
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (u *CascadeSessionUpsertBulk) ClearCurrentPhase() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCurrentPhase()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CascadeSessionUpsertBulk) SetErrorMessage(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateErrorMessage() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CascadeSessionUpsertBulk) ClearErrorMessage() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *CascadeSessionUpsertBulk) SetCancelRequested(v bool) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateCancelRequested() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetCancelReason sets the "cancel_reason" field.
func (u *CascadeSessionUpsertBulk) SetCancelReason(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCancelReason(v)
	})
}

// UpdateCancelReason sets the "cancel_reason" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateCancelReason() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCancelReason()
	})
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (u *CascadeSessionUpsertBulk) ClearCancelReason() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCancelReason()
	})
}

// SetInput sets the "input" field.
func (u *CascadeSessionUpsertBulk) SetInput(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetInput(v)
	})
}

// UpdateInput sets the "input" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateInput() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateInput()
	})
}

// ClearInput clears the value of the "input" field.
func (u *CascadeSessionUpsertBulk) ClearInput() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearInput()
	})
}

// SetSessionMetadata sets the "session_metadata" field.
func (u *CascadeSessionUpsertBulk) SetSessionMetadata(v map[string]interface{}) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetSessionMetadata(v)
	})
}

// UpdateSessionMetadata sets the "session_metadata" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateSessionMetadata() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateSessionMetadata()
	})
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (u *CascadeSessionUpsertBulk) ClearSessionMetadata() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearSessionMetadata()
	})
}

// SetPodID sets the "pod_id" field.
func (u *CascadeSessionUpsertBulk) SetPodID(v string) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdatePodID() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CascadeSessionUpsertBulk) ClearPodID() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearPodID()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *CascadeSessionUpsertBulk) SetHeartbeatAt(v time.Time) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateHeartbeatAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *CascadeSessionUpsertBulk) ClearHeartbeatAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CascadeSessionUpsertBulk) SetUpdatedAt(v time.Time) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateUpdatedAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CascadeSessionUpsertBulk) SetStartedAt(v time.Time) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateStartedAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CascadeSessionUpsertBulk) ClearStartedAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CascadeSessionUpsertBulk) SetCompletedAt(v time.Time) *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CascadeSessionUpsertBulk) UpdateCompletedAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CascadeSessionUpsertBulk) ClearCompletedAt() *CascadeSessionUpsertBulk {
	return u.Update(func(s *CascadeSessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CascadeSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CascadeSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CascadeSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CascadeSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
