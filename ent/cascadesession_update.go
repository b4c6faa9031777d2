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
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/logrow"
	"github.com/windlassio/windlass/ent/predicate"
)

// CascadeSessionUpdate is the builder for updating CascadeSession entities.
type CascadeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CascadeSessionMutation
}

// Where appends a list predicates to the CascadeSessionUpdate builder.
func (_u *CascadeSessionUpdate) Where(ps ...predicate.CascadeSession) *CascadeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCascadeID sets the "cascade_id" field.
func (_u *CascadeSessionUpdate) SetCascadeID(v string) *CascadeSessionUpdate {
	_u.mutation.SetCascadeID(v)
	return _u
}

// SetNillableCascadeID sets the "cascade_id" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableCascadeID(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetCascadeID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *CascadeSessionUpdate) SetDepth(v int) *CascadeSessionUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableDepth(v *int) *CascadeSessionUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *CascadeSessionUpdate) AddDepth(v int) *CascadeSessionUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CascadeSessionUpdate) SetStatus(v cascadesession.Status) *CascadeSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableStatus(v *cascadesession.Status) *CascadeSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *CascadeSessionUpdate) SetCurrentPhase(v string) *CascadeSessionUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableCurrentPhase(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *CascadeSessionUpdate) ClearCurrentPhase() *CascadeSessionUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CascadeSessionUpdate) SetErrorMessage(v string) *CascadeSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableErrorMessage(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CascadeSessionUpdate) ClearErrorMessage() *CascadeSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *CascadeSessionUpdate) SetCancelRequested(v bool) *CascadeSessionUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableCancelRequested(v *bool) *CascadeSessionUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *CascadeSessionUpdate) SetCancelReason(v string) *CascadeSessionUpdate {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableCancelReason(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *CascadeSessionUpdate) ClearCancelReason() *CascadeSessionUpdate {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetInput sets the "input" field.
func (_u *CascadeSessionUpdate) SetInput(v string) *CascadeSessionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableInput(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *CascadeSessionUpdate) ClearInput() *CascadeSessionUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *CascadeSessionUpdate) SetSessionMetadata(v map[string]interface{}) *CascadeSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *CascadeSessionUpdate) ClearSessionMetadata() *CascadeSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CascadeSessionUpdate) SetPodID(v string) *CascadeSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillablePodID(v *string) *CascadeSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CascadeSessionUpdate) ClearPodID() *CascadeSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *CascadeSessionUpdate) SetHeartbeatAt(v time.Time) *CascadeSessionUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableHeartbeatAt(v *time.Time) *CascadeSessionUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *CascadeSessionUpdate) ClearHeartbeatAt() *CascadeSessionUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CascadeSessionUpdate) SetUpdatedAt(v time.Time) *CascadeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CascadeSessionUpdate) SetStartedAt(v time.Time) *CascadeSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableStartedAt(v *time.Time) *CascadeSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CascadeSessionUpdate) ClearStartedAt() *CascadeSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CascadeSessionUpdate) SetCompletedAt(v time.Time) *CascadeSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CascadeSessionUpdate) SetNillableCompletedAt(v *time.Time) *CascadeSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CascadeSessionUpdate) ClearCompletedAt() *CascadeSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChildIDs adds the "children" edge to the CascadeSession entity by IDs.
func (_u *CascadeSessionUpdate) AddChildIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the CascadeSession entity.
func (_u *CascadeSessionUpdate) AddChildren(v ...*CascadeSession) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddLogRowIDs adds the "log_rows" edge to the LogRow entity by IDs.
func (_u *CascadeSessionUpdate) AddLogRowIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.AddLogRowIDs(ids...)
	return _u
}

// AddLogRows adds the "log_rows" edges to the LogRow entity.
func (_u *CascadeSessionUpdate) AddLogRows(v ...*LogRow) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogRowIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *CascadeSessionUpdate) AddCheckpointIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *CascadeSessionUpdate) AddCheckpoints(v ...*Checkpoint) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the CascadeSessionMutation object of the builder.
func (_u *CascadeSessionUpdate) Mutation() *CascadeSessionMutation {
	return _u.mutation
}

// ClearChildren clears all "children" edges to the CascadeSession entity.
func (_u *CascadeSessionUpdate) ClearChildren() *CascadeSessionUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to CascadeSession entities by IDs.
func (_u *CascadeSessionUpdate) RemoveChildIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to CascadeSession entities.
func (_u *CascadeSessionUpdate) RemoveChildren(v ...*CascadeSession) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLogRows clears all "log_rows" edges to the LogRow entity.
func (_u *CascadeSessionUpdate) ClearLogRows() *CascadeSessionUpdate {
	_u.mutation.ClearLogRows()
	return _u
}

// RemoveLogRowIDs removes the "log_rows" edge to LogRow entities by IDs.
func (_u *CascadeSessionUpdate) RemoveLogRowIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.RemoveLogRowIDs(ids...)
	return _u
}

// RemoveLogRows removes "log_rows" edges to LogRow entities.
func (_u *CascadeSessionUpdate) RemoveLogRows(v ...*LogRow) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogRowIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *CascadeSessionUpdate) ClearCheckpoints() *CascadeSessionUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *CascadeSessionUpdate) RemoveCheckpointIDs(ids ...string) *CascadeSessionUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *CascadeSessionUpdate) RemoveCheckpoints(v ...*Checkpoint) *CascadeSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CascadeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CascadeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CascadeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CascadeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CascadeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cascadesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CascadeSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cascadesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CascadeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CascadeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cascadesession.Table, cascadesession.Columns, sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CascadeID(); ok {
		_spec.SetField(cascadesession.FieldCascadeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(cascadesession.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(cascadesession.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cascadesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(cascadesession.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(cascadesession.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(cascadesession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(cascadesession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(cascadesession.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(cascadesession.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(cascadesession.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(cascadesession.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(cascadesession.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(cascadesession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(cascadesession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(cascadesession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(cascadesession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(cascadesession.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(cascadesession.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cascadesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(cascadesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(cascadesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(cascadesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(cascadesession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogRowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogRowsIDs(); len(nodes) > 0 && !_u.mutation.LogRowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogRowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cascadesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CascadeSessionUpdateOne is the builder for updating a single CascadeSession entity.
type CascadeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CascadeSessionMutation
}

// SetCascadeID sets the "cascade_id" field.
func (_u *CascadeSessionUpdateOne) SetCascadeID(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetCascadeID(v)
	return _u
}

// SetNillableCascadeID sets the "cascade_id" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableCascadeID(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetCascadeID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *CascadeSessionUpdateOne) SetDepth(v int) *CascadeSessionUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableDepth(v *int) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *CascadeSessionUpdateOne) AddDepth(v int) *CascadeSessionUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CascadeSessionUpdateOne) SetStatus(v cascadesession.Status) *CascadeSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableStatus(v *cascadesession.Status) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *CascadeSessionUpdateOne) SetCurrentPhase(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableCurrentPhase(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *CascadeSessionUpdateOne) ClearCurrentPhase() *CascadeSessionUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CascadeSessionUpdateOne) SetErrorMessage(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableErrorMessage(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CascadeSessionUpdateOne) ClearErrorMessage() *CascadeSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *CascadeSessionUpdateOne) SetCancelRequested(v bool) *CascadeSessionUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableCancelRequested(v *bool) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetCancelReason sets the "cancel_reason" field.
func (_u *CascadeSessionUpdateOne) SetCancelReason(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetCancelReason(v)
	return _u
}

// SetNillableCancelReason sets the "cancel_reason" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableCancelReason(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetCancelReason(*v)
	}
	return _u
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (_u *CascadeSessionUpdateOne) ClearCancelReason() *CascadeSessionUpdateOne {
	_u.mutation.ClearCancelReason()
	return _u
}

// SetInput sets the "input" field.
func (_u *CascadeSessionUpdateOne) SetInput(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableInput(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *CascadeSessionUpdateOne) ClearInput() *CascadeSessionUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *CascadeSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *CascadeSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *CascadeSessionUpdateOne) ClearSessionMetadata() *CascadeSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CascadeSessionUpdateOne) SetPodID(v string) *CascadeSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillablePodID(v *string) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CascadeSessionUpdateOne) ClearPodID() *CascadeSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *CascadeSessionUpdateOne) SetHeartbeatAt(v time.Time) *CascadeSessionUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableHeartbeatAt(v *time.Time) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *CascadeSessionUpdateOne) ClearHeartbeatAt() *CascadeSessionUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CascadeSessionUpdateOne) SetUpdatedAt(v time.Time) *CascadeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CascadeSessionUpdateOne) SetStartedAt(v time.Time) *CascadeSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableStartedAt(v *time.Time) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CascadeSessionUpdateOne) ClearStartedAt() *CascadeSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CascadeSessionUpdateOne) SetCompletedAt(v time.Time) *CascadeSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CascadeSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *CascadeSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CascadeSessionUpdateOne) ClearCompletedAt() *CascadeSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChildIDs adds the "children" edge to the CascadeSession entity by IDs.
func (_u *CascadeSessionUpdateOne) AddChildIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the CascadeSession entity.
func (_u *CascadeSessionUpdateOne) AddChildren(v ...*CascadeSession) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// AddLogRowIDs adds the "log_rows" edge to the LogRow entity by IDs.
func (_u *CascadeSessionUpdateOne) AddLogRowIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.AddLogRowIDs(ids...)
	return _u
}

// AddLogRows adds the "log_rows" edges to the LogRow entity.
func (_u *CascadeSessionUpdateOne) AddLogRows(v ...*LogRow) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogRowIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *CascadeSessionUpdateOne) AddCheckpointIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *CascadeSessionUpdateOne) AddCheckpoints(v ...*Checkpoint) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the CascadeSessionMutation object of the builder.
func (_u *CascadeSessionUpdateOne) Mutation() *CascadeSessionMutation {
	return _u.mutation
}

// ClearChildren clears all "children" edges to the CascadeSession entity.
func (_u *CascadeSessionUpdateOne) ClearChildren() *CascadeSessionUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to CascadeSession entities by IDs.
func (_u *CascadeSessionUpdateOne) RemoveChildIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to CascadeSession entities.
func (_u *CascadeSessionUpdateOne) RemoveChildren(v ...*CascadeSession) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLogRows clears all "log_rows" edges to the LogRow entity.
func (_u *CascadeSessionUpdateOne) ClearLogRows() *CascadeSessionUpdateOne {
	_u.mutation.ClearLogRows()
	return _u
}

// RemoveLogRowIDs removes the "log_rows" edge to LogRow entities by IDs.
func (_u *CascadeSessionUpdateOne) RemoveLogRowIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.RemoveLogRowIDs(ids...)
	return _u
}

// RemoveLogRows removes "log_rows" edges to LogRow entities.
func (_u *CascadeSessionUpdateOne) RemoveLogRows(v ...*LogRow) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogRowIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *CascadeSessionUpdateOne) ClearCheckpoints() *CascadeSessionUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *CascadeSessionUpdateOne) RemoveCheckpointIDs(ids ...string) *CascadeSessionUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *CascadeSessionUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *CascadeSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the CascadeSessionUpdate builder.
func (_u *CascadeSessionUpdateOne) Where(ps ...predicate.CascadeSession) *CascadeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CascadeSessionUpdateOne) Select(field string, fields ...string) *CascadeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CascadeSession entity.
func (_u *CascadeSessionUpdateOne) Save(ctx context.Context) (*CascadeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CascadeSessionUpdateOne) SaveX(ctx context.Context) *CascadeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CascadeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CascadeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CascadeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cascadesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CascadeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := cascadesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CascadeSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CascadeSessionUpdateOne) sqlSave(ctx context.Context) (_node *CascadeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cascadesession.Table, cascadesession.Columns, sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CascadeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cascadesession.FieldID)
		for _, f := range fields {
			if !cascadesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cascadesession.FieldID {
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
	if value, ok := _u.mutation.CascadeID(); ok {
		_spec.SetField(cascadesession.FieldCascadeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(cascadesession.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(cascadesession.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(cascadesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(cascadesession.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(cascadesession.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(cascadesession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(cascadesession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(cascadesession.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelReason(); ok {
		_spec.SetField(cascadesession.FieldCancelReason, field.TypeString, value)
	}
	if _u.mutation.CancelReasonCleared() {
		_spec.ClearField(cascadesession.FieldCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(cascadesession.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(cascadesession.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(cascadesession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(cascadesession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(cascadesession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(cascadesession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(cascadesession.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(cascadesession.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cascadesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(cascadesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(cascadesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(cascadesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(cascadesession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogRowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogRowsIDs(); len(nodes) > 0 && !_u.mutation.LogRowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogRowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CascadeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cascadesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
