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
	"github.com/windlassio/windlass/ent/logrow"
)

// LogRowCreate is the builder for creating a LogRow entity.
type LogRowCreate struct {
	config
	mutation *LogRowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTimestamp sets the "timestamp" field.
func (_c *LogRowCreate) SetTimestamp(v time.Time) *LogRowCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableTimestamp(v *time.Time) *LogRowCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LogRowCreate) SetSessionID(v string) *LogRowCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *LogRowCreate) SetTraceID(v string) *LogRowCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *LogRowCreate) SetParentID(v string) *LogRowCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableParentID(v *string) *LogRowCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetParentSessionID sets the "parent_session_id" field.
func (_c *LogRowCreate) SetParentSessionID(v string) *LogRowCreate {
	_c.mutation.SetParentSessionID(v)
	return _c
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableParentSessionID(v *string) *LogRowCreate {
	if v != nil {
		_c.SetParentSessionID(*v)
	}
	return _c
}

// SetParentMessageID sets the "parent_message_id" field.
func (_c *LogRowCreate) SetParentMessageID(v string) *LogRowCreate {
	_c.mutation.SetParentMessageID(v)
	return _c
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableParentMessageID(v *string) *LogRowCreate {
	if v != nil {
		_c.SetParentMessageID(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *LogRowCreate) SetDepth(v int) *LogRowCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableDepth(v *int) *LogRowCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetNodeType sets the "node_type" field.
func (_c *LogRowCreate) SetNodeType(v string) *LogRowCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *LogRowCreate) SetRole(v string) *LogRowCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableRole(v *string) *LogRowCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSoundingIndex sets the "sounding_index" field.
func (_c *LogRowCreate) SetSoundingIndex(v int) *LogRowCreate {
	_c.mutation.SetSoundingIndex(v)
	return _c
}

// SetNillableSoundingIndex sets the "sounding_index" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableSoundingIndex(v *int) *LogRowCreate {
	if v != nil {
		_c.SetSoundingIndex(*v)
	}
	return _c
}

// SetIsWinner sets the "is_winner" field.
func (_c *LogRowCreate) SetIsWinner(v bool) *LogRowCreate {
	_c.mutation.SetIsWinner(v)
	return _c
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableIsWinner(v *bool) *LogRowCreate {
	if v != nil {
		_c.SetIsWinner(*v)
	}
	return _c
}

// SetReforgeStep sets the "reforge_step" field.
func (_c *LogRowCreate) SetReforgeStep(v int) *LogRowCreate {
	_c.mutation.SetReforgeStep(v)
	return _c
}

// SetNillableReforgeStep sets the "reforge_step" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableReforgeStep(v *int) *LogRowCreate {
	if v != nil {
		_c.SetReforgeStep(*v)
	}
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *LogRowCreate) SetAttemptNumber(v int) *LogRowCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableAttemptNumber(v *int) *LogRowCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetTurnNumber sets the "turn_number" field.
func (_c *LogRowCreate) SetTurnNumber(v int) *LogRowCreate {
	_c.mutation.SetTurnNumber(v)
	return _c
}

// SetNillableTurnNumber sets the "turn_number" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableTurnNumber(v *int) *LogRowCreate {
	if v != nil {
		_c.SetTurnNumber(*v)
	}
	return _c
}

// SetMutationApplied sets the "mutation_applied" field.
func (_c *LogRowCreate) SetMutationApplied(v bool) *LogRowCreate {
	_c.mutation.SetMutationApplied(v)
	return _c
}

// SetNillableMutationApplied sets the "mutation_applied" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableMutationApplied(v *bool) *LogRowCreate {
	if v != nil {
		_c.SetMutationApplied(*v)
	}
	return _c
}

// SetMutationType sets the "mutation_type" field.
func (_c *LogRowCreate) SetMutationType(v string) *LogRowCreate {
	_c.mutation.SetMutationType(v)
	return _c
}

// SetNillableMutationType sets the "mutation_type" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableMutationType(v *string) *LogRowCreate {
	if v != nil {
		_c.SetMutationType(*v)
	}
	return _c
}

// SetMutationTemplate sets the "mutation_template" field.
func (_c *LogRowCreate) SetMutationTemplate(v string) *LogRowCreate {
	_c.mutation.SetMutationTemplate(v)
	return _c
}

// SetNillableMutationTemplate sets the "mutation_template" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableMutationTemplate(v *string) *LogRowCreate {
	if v != nil {
		_c.SetMutationTemplate(*v)
	}
	return _c
}

// SetSpeciesHash sets the "species_hash" field.
func (_c *LogRowCreate) SetSpeciesHash(v string) *LogRowCreate {
	_c.mutation.SetSpeciesHash(v)
	return _c
}

// SetNillableSpeciesHash sets the "species_hash" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableSpeciesHash(v *string) *LogRowCreate {
	if v != nil {
		_c.SetSpeciesHash(*v)
	}
	return _c
}

// SetCascadeID sets the "cascade_id" field.
func (_c *LogRowCreate) SetCascadeID(v string) *LogRowCreate {
	_c.mutation.SetCascadeID(v)
	return _c
}

// SetCascadeFile sets the "cascade_file" field.
func (_c *LogRowCreate) SetCascadeFile(v string) *LogRowCreate {
	_c.mutation.SetCascadeFile(v)
	return _c
}

// SetNillableCascadeFile sets the "cascade_file" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableCascadeFile(v *string) *LogRowCreate {
	if v != nil {
		_c.SetCascadeFile(*v)
	}
	return _c
}

// SetCascadeJSON sets the "cascade_json" field.
func (_c *LogRowCreate) SetCascadeJSON(v string) *LogRowCreate {
	_c.mutation.SetCascadeJSON(v)
	return _c
}

// SetNillableCascadeJSON sets the "cascade_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableCascadeJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetCascadeJSON(*v)
	}
	return _c
}

// SetPhaseName sets the "phase_name" field.
func (_c *LogRowCreate) SetPhaseName(v string) *LogRowCreate {
	_c.mutation.SetPhaseName(v)
	return _c
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_c *LogRowCreate) SetNillablePhaseName(v *string) *LogRowCreate {
	if v != nil {
		_c.SetPhaseName(*v)
	}
	return _c
}

// SetPhaseJSON sets the "phase_json" field.
func (_c *LogRowCreate) SetPhaseJSON(v string) *LogRowCreate {
	_c.mutation.SetPhaseJSON(v)
	return _c
}

// SetNillablePhaseJSON sets the "phase_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillablePhaseJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetPhaseJSON(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *LogRowCreate) SetModel(v string) *LogRowCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableModel(v *string) *LogRowCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetModelRequested sets the "model_requested" field.
func (_c *LogRowCreate) SetModelRequested(v string) *LogRowCreate {
	_c.mutation.SetModelRequested(v)
	return _c
}

// SetNillableModelRequested sets the "model_requested" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableModelRequested(v *string) *LogRowCreate {
	if v != nil {
		_c.SetModelRequested(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *LogRowCreate) SetRequestID(v string) *LogRowCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableRequestID(v *string) *LogRowCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LogRowCreate) SetProvider(v string) *LogRowCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableProvider(v *string) *LogRowCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LogRowCreate) SetDurationMs(v int) *LogRowCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableDurationMs(v *int) *LogRowCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *LogRowCreate) SetTokensIn(v int) *LogRowCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableTokensIn(v *int) *LogRowCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *LogRowCreate) SetTokensOut(v int) *LogRowCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableTokensOut(v *int) *LogRowCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *LogRowCreate) SetCost(v float64) *LogRowCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableCost(v *float64) *LogRowCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetContentJSON sets the "content_json" field.
func (_c *LogRowCreate) SetContentJSON(v string) *LogRowCreate {
	_c.mutation.SetContentJSON(v)
	return _c
}

// SetNillableContentJSON sets the "content_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableContentJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetContentJSON(*v)
	}
	return _c
}

// SetFullRequestJSON sets the "full_request_json" field.
func (_c *LogRowCreate) SetFullRequestJSON(v string) *LogRowCreate {
	_c.mutation.SetFullRequestJSON(v)
	return _c
}

// SetNillableFullRequestJSON sets the "full_request_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableFullRequestJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetFullRequestJSON(*v)
	}
	return _c
}

// SetFullResponseJSON sets the "full_response_json" field.
func (_c *LogRowCreate) SetFullResponseJSON(v string) *LogRowCreate {
	_c.mutation.SetFullResponseJSON(v)
	return _c
}

// SetNillableFullResponseJSON sets the "full_response_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableFullResponseJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetFullResponseJSON(*v)
	}
	return _c
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (_c *LogRowCreate) SetToolCallsJSON(v string) *LogRowCreate {
	_c.mutation.SetToolCallsJSON(v)
	return _c
}

// SetNillableToolCallsJSON sets the "tool_calls_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableToolCallsJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetToolCallsJSON(*v)
	}
	return _c
}

// SetImagesJSON sets the "images_json" field.
func (_c *LogRowCreate) SetImagesJSON(v string) *LogRowCreate {
	_c.mutation.SetImagesJSON(v)
	return _c
}

// SetNillableImagesJSON sets the "images_json" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableImagesJSON(v *string) *LogRowCreate {
	if v != nil {
		_c.SetImagesJSON(*v)
	}
	return _c
}

// SetHasImages sets the "has_images" field.
func (_c *LogRowCreate) SetHasImages(v bool) *LogRowCreate {
	_c.mutation.SetHasImages(v)
	return _c
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableHasImages(v *bool) *LogRowCreate {
	if v != nil {
		_c.SetHasImages(*v)
	}
	return _c
}

// SetHasBase64 sets the "has_base64" field.
func (_c *LogRowCreate) SetHasBase64(v bool) *LogRowCreate {
	_c.mutation.SetHasBase64(v)
	return _c
}

// SetNillableHasBase64 sets the "has_base64" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableHasBase64(v *bool) *LogRowCreate {
	if v != nil {
		_c.SetHasBase64(*v)
	}
	return _c
}

// SetSemanticActor sets the "semantic_actor" field.
func (_c *LogRowCreate) SetSemanticActor(v logrow.SemanticActor) *LogRowCreate {
	_c.mutation.SetSemanticActor(v)
	return _c
}

// SetNillableSemanticActor sets the "semantic_actor" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableSemanticActor(v *logrow.SemanticActor) *LogRowCreate {
	if v != nil {
		_c.SetSemanticActor(*v)
	}
	return _c
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (_c *LogRowCreate) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowCreate {
	_c.mutation.SetSemanticPurpose(v)
	return _c
}

// SetNillableSemanticPurpose sets the "semantic_purpose" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableSemanticPurpose(v *logrow.SemanticPurpose) *LogRowCreate {
	if v != nil {
		_c.SetSemanticPurpose(*v)
	}
	return _c
}

// SetIsCallout sets the "is_callout" field.
func (_c *LogRowCreate) SetIsCallout(v bool) *LogRowCreate {
	_c.mutation.SetIsCallout(v)
	return _c
}

// SetNillableIsCallout sets the "is_callout" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableIsCallout(v *bool) *LogRowCreate {
	if v != nil {
		_c.SetIsCallout(*v)
	}
	return _c
}

// SetCalloutName sets the "callout_name" field.
func (_c *LogRowCreate) SetCalloutName(v string) *LogRowCreate {
	_c.mutation.SetCalloutName(v)
	return _c
}

// SetNillableCalloutName sets the "callout_name" field if the given value is not nil.
func (_c *LogRowCreate) SetNillableCalloutName(v *string) *LogRowCreate {
	if v != nil {
		_c.SetCalloutName(*v)
	}
	return _c
}

// SetRowMetadata sets the "row_metadata" field.
func (_c *LogRowCreate) SetRowMetadata(v map[string]interface{}) *LogRowCreate {
	_c.mutation.SetRowMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LogRowCreate) SetID(v string) *LogRowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the CascadeSession entity.
func (_c *LogRowCreate) SetSession(v *CascadeSession) *LogRowCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the LogRowMutation object of the builder.
func (_c *LogRowCreate) Mutation() *LogRowMutation {
	return _c.mutation
}

// Save creates the LogRow in the database.
func (_c *LogRowCreate) Save(ctx context.Context) (*LogRow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LogRowCreate) SaveX(ctx context.Context) *LogRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LogRowCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := logrow.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := logrow.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.HasImages(); !ok {
		v := logrow.DefaultHasImages
		_c.mutation.SetHasImages(v)
	}
	if _, ok := _c.mutation.HasBase64(); !ok {
		v := logrow.DefaultHasBase64
		_c.mutation.SetHasBase64(v)
	}
	if _, ok := _c.mutation.SemanticActor(); !ok {
		v := logrow.DefaultSemanticActor
		_c.mutation.SetSemanticActor(v)
	}
	if _, ok := _c.mutation.SemanticPurpose(); !ok {
		v := logrow.DefaultSemanticPurpose
		_c.mutation.SetSemanticPurpose(v)
	}
	if _, ok := _c.mutation.IsCallout(); !ok {
		v := logrow.DefaultIsCallout
		_c.mutation.SetIsCallout(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LogRowCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LogRow.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LogRow.session_id"`)}
	}
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "LogRow.trace_id"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "LogRow.depth"`)}
	}
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "LogRow.node_type"`)}
	}
	if _, ok := _c.mutation.CascadeID(); !ok {
		return &ValidationError{Name: "cascade_id", err: errors.New(`ent: missing required field "LogRow.cascade_id"`)}
	}
	if _, ok := _c.mutation.HasImages(); !ok {
		return &ValidationError{Name: "has_images", err: errors.New(`ent: missing required field "LogRow.has_images"`)}
	}
	if _, ok := _c.mutation.HasBase64(); !ok {
		return &ValidationError{Name: "has_base64", err: errors.New(`ent: missing required field "LogRow.has_base64"`)}
	}
	if _, ok := _c.mutation.SemanticActor(); !ok {
		return &ValidationError{Name: "semantic_actor", err: errors.New(`ent: missing required field "LogRow.semantic_actor"`)}
	}
	if v, ok := _c.mutation.SemanticActor(); ok {
		if err := logrow.SemanticActorValidator(v); err != nil {
			return &ValidationError{Name: "semantic_actor", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SemanticPurpose(); !ok {
		return &ValidationError{Name: "semantic_purpose", err: errors.New(`ent: missing required field "LogRow.semantic_purpose"`)}
	}
	if v, ok := _c.mutation.SemanticPurpose(); ok {
		if err := logrow.SemanticPurposeValidator(v); err != nil {
			return &ValidationError{Name: "semantic_purpose", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCallout(); !ok {
		return &ValidationError{Name: "is_callout", err: errors.New(`ent: missing required field "LogRow.is_callout"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "LogRow.session"`)}
	}
	return nil
}

func (_c *LogRowCreate) sqlSave(ctx context.Context) (*LogRow, error) {
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
			return nil, fmt.Errorf("unexpected LogRow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LogRowCreate) createSpec() (*LogRow, *sqlgraph.CreateSpec) {
	var (
		_node = &LogRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(logrow.Table, sqlgraph.NewFieldSpec(logrow.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(logrow.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(logrow.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(logrow.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.ParentSessionID(); ok {
		_spec.SetField(logrow.FieldParentSessionID, field.TypeString, value)
		_node.ParentSessionID = &value
	}
	if value, ok := _c.mutation.ParentMessageID(); ok {
		_spec.SetField(logrow.FieldParentMessageID, field.TypeString, value)
		_node.ParentMessageID = &value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(logrow.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(logrow.FieldNodeType, field.TypeString, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(logrow.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.SoundingIndex(); ok {
		_spec.SetField(logrow.FieldSoundingIndex, field.TypeInt, value)
		_node.SoundingIndex = &value
	}
	if value, ok := _c.mutation.IsWinner(); ok {
		_spec.SetField(logrow.FieldIsWinner, field.TypeBool, value)
		_node.IsWinner = &value
	}
	if value, ok := _c.mutation.ReforgeStep(); ok {
		_spec.SetField(logrow.FieldReforgeStep, field.TypeInt, value)
		_node.ReforgeStep = &value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(logrow.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = &value
	}
	if value, ok := _c.mutation.TurnNumber(); ok {
		_spec.SetField(logrow.FieldTurnNumber, field.TypeInt, value)
		_node.TurnNumber = &value
	}
	if value, ok := _c.mutation.MutationApplied(); ok {
		_spec.SetField(logrow.FieldMutationApplied, field.TypeBool, value)
		_node.MutationApplied = &value
	}
	if value, ok := _c.mutation.MutationType(); ok {
		_spec.SetField(logrow.FieldMutationType, field.TypeString, value)
		_node.MutationType = &value
	}
	if value, ok := _c.mutation.MutationTemplate(); ok {
		_spec.SetField(logrow.FieldMutationTemplate, field.TypeString, value)
		_node.MutationTemplate = &value
	}
	if value, ok := _c.mutation.SpeciesHash(); ok {
		_spec.SetField(logrow.FieldSpeciesHash, field.TypeString, value)
		_node.SpeciesHash = &value
	}
	if value, ok := _c.mutation.CascadeID(); ok {
		_spec.SetField(logrow.FieldCascadeID, field.TypeString, value)
		_node.CascadeID = value
	}
	if value, ok := _c.mutation.CascadeFile(); ok {
		_spec.SetField(logrow.FieldCascadeFile, field.TypeString, value)
		_node.CascadeFile = &value
	}
	if value, ok := _c.mutation.CascadeJSON(); ok {
		_spec.SetField(logrow.FieldCascadeJSON, field.TypeString, value)
		_node.CascadeJSON = &value
	}
	if value, ok := _c.mutation.PhaseName(); ok {
		_spec.SetField(logrow.FieldPhaseName, field.TypeString, value)
		_node.PhaseName = &value
	}
	if value, ok := _c.mutation.PhaseJSON(); ok {
		_spec.SetField(logrow.FieldPhaseJSON, field.TypeString, value)
		_node.PhaseJSON = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(logrow.FieldModel, field.TypeString, value)
		_node.Model = &value
	}
	if value, ok := _c.mutation.ModelRequested(); ok {
		_spec.SetField(logrow.FieldModelRequested, field.TypeString, value)
		_node.ModelRequested = &value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(logrow.FieldRequestID, field.TypeString, value)
		_node.RequestID = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(logrow.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(logrow.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(logrow.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = &value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(logrow.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = &value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(logrow.FieldCost, field.TypeFloat64, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.ContentJSON(); ok {
		_spec.SetField(logrow.FieldContentJSON, field.TypeString, value)
		_node.ContentJSON = &value
	}
	if value, ok := _c.mutation.FullRequestJSON(); ok {
		_spec.SetField(logrow.FieldFullRequestJSON, field.TypeString, value)
		_node.FullRequestJSON = &value
	}
	if value, ok := _c.mutation.FullResponseJSON(); ok {
		_spec.SetField(logrow.FieldFullResponseJSON, field.TypeString, value)
		_node.FullResponseJSON = &value
	}
	if value, ok := _c.mutation.ToolCallsJSON(); ok {
		_spec.SetField(logrow.FieldToolCallsJSON, field.TypeString, value)
		_node.ToolCallsJSON = &value
	}
	if value, ok := _c.mutation.ImagesJSON(); ok {
		_spec.SetField(logrow.FieldImagesJSON, field.TypeString, value)
		_node.ImagesJSON = &value
	}
	if value, ok := _c.mutation.HasImages(); ok {
		_spec.SetField(logrow.FieldHasImages, field.TypeBool, value)
		_node.HasImages = value
	}
	if value, ok := _c.mutation.HasBase64(); ok {
		_spec.SetField(logrow.FieldHasBase64, field.TypeBool, value)
		_node.HasBase64 = value
	}
	if value, ok := _c.mutation.SemanticActor(); ok {
		_spec.SetField(logrow.FieldSemanticActor, field.TypeEnum, value)
		_node.SemanticActor = value
	}
	if value, ok := _c.mutation.SemanticPurpose(); ok {
		_spec.SetField(logrow.FieldSemanticPurpose, field.TypeEnum, value)
		_node.SemanticPurpose = value
	}
	if value, ok := _c.mutation.IsCallout(); ok {
		_spec.SetField(logrow.FieldIsCallout, field.TypeBool, value)
		_node.IsCallout = value
	}
	if value, ok := _c.mutation.CalloutName(); ok {
		_spec.SetField(logrow.FieldCalloutName, field.TypeString, value)
		_node.CalloutName = &value
	}
	if value, ok := _c.mutation.RowMetadata(); ok {
		_spec.SetField(logrow.FieldRowMetadata, field.TypeJSON, value)
		_node.RowMetadata = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   logrow.SessionTable,
			Columns: []string{logrow.SessionColumn},
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
//	client.LogRow.Create().
//		SetTimestamp(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LogRowUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *LogRowCreate) OnConflict(opts ...sql.ConflictOption) *LogRowUpsertOne {
	_c.conflict = opts
	return &LogRowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LogRow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LogRowCreate) OnConflictColumns(columns ...string) *LogRowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LogRowUpsertOne{
		create: _c,
	}
}

type (
	// LogRowUpsertOne is the builder for "upsert"-ing
	//  one LogRow node.
	LogRowUpsertOne struct {
		create *LogRowCreate
	}

	// LogRowUpsert is the "OnConflict" setter.
	LogRowUpsert struct {
		*sql.UpdateSet
	}
)

// SetTimestamp sets the "timestamp" field.
func (u *LogRowUpsert) SetTimestamp(v time.Time) *LogRowUpsert {
	u.Set(logrow.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateTimestamp() *LogRowUpsert {
	u.SetExcluded(logrow.FieldTimestamp)
	return u
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *LogRowUpsert) SetParentSessionID(v string) *LogRowUpsert {
	u.Set(logrow.FieldParentSessionID, v)
	return u
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateParentSessionID() *LogRowUpsert {
	u.SetExcluded(logrow.FieldParentSessionID)
	return u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *LogRowUpsert) ClearParentSessionID() *LogRowUpsert {
	u.SetNull(logrow.FieldParentSessionID)
	return u
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *LogRowUpsert) SetParentMessageID(v string) *LogRowUpsert {
	u.Set(logrow.FieldParentMessageID, v)
	return u
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateParentMessageID() *LogRowUpsert {
	u.SetExcluded(logrow.FieldParentMessageID)
	return u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *LogRowUpsert) ClearParentMessageID() *LogRowUpsert {
	u.SetNull(logrow.FieldParentMessageID)
	return u
}

// SetDepth sets the "depth" field.
func (u *LogRowUpsert) SetDepth(v int) *LogRowUpsert {
	u.Set(logrow.FieldDepth, v)
	return u
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateDepth() *LogRowUpsert {
	u.SetExcluded(logrow.FieldDepth)
	return u
}

// AddDepth adds v to the "depth" field.
func (u *LogRowUpsert) AddDepth(v int) *LogRowUpsert {
	u.Add(logrow.FieldDepth, v)
	return u
}

// SetNodeType sets the "node_type" field.
func (u *LogRowUpsert) SetNodeType(v string) *LogRowUpsert {
	u.Set(logrow.FieldNodeType, v)
	return u
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateNodeType() *LogRowUpsert {
	u.SetExcluded(logrow.FieldNodeType)
	return u
}

// SetRole sets the "role" field.
func (u *LogRowUpsert) SetRole(v string) *LogRowUpsert {
	u.Set(logrow.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateRole() *LogRowUpsert {
	u.SetExcluded(logrow.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *LogRowUpsert) ClearRole() *LogRowUpsert {
	u.SetNull(logrow.FieldRole)
	return u
}

// SetSoundingIndex sets the "sounding_index" field.
func (u *LogRowUpsert) SetSoundingIndex(v int) *LogRowUpsert {
	u.Set(logrow.FieldSoundingIndex, v)
	return u
}

// UpdateSoundingIndex sets the "sounding_index" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateSoundingIndex() *LogRowUpsert {
	u.SetExcluded(logrow.FieldSoundingIndex)
	return u
}

// AddSoundingIndex adds v to the "sounding_index" field.
func (u *LogRowUpsert) AddSoundingIndex(v int) *LogRowUpsert {
	u.Add(logrow.FieldSoundingIndex, v)
	return u
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (u *LogRowUpsert) ClearSoundingIndex() *LogRowUpsert {
	u.SetNull(logrow.FieldSoundingIndex)
	return u
}

// SetIsWinner sets the "is_winner" field.
func (u *LogRowUpsert) SetIsWinner(v bool) *LogRowUpsert {
	u.Set(logrow.FieldIsWinner, v)
	return u
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateIsWinner() *LogRowUpsert {
	u.SetExcluded(logrow.FieldIsWinner)
	return u
}

// ClearIsWinner clears the value of the "is_winner" field.
func (u *LogRowUpsert) ClearIsWinner() *LogRowUpsert {
	u.SetNull(logrow.FieldIsWinner)
	return u
}

// SetReforgeStep sets the "reforge_step" field.
func (u *LogRowUpsert) SetReforgeStep(v int) *LogRowUpsert {
	u.Set(logrow.FieldReforgeStep, v)
	return u
}

// UpdateReforgeStep sets the "reforge_step" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateReforgeStep() *LogRowUpsert {
	u.SetExcluded(logrow.FieldReforgeStep)
	return u
}

// AddReforgeStep adds v to the "reforge_step" field.
func (u *LogRowUpsert) AddReforgeStep(v int) *LogRowUpsert {
	u.Add(logrow.FieldReforgeStep, v)
	return u
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (u *LogRowUpsert) ClearReforgeStep() *LogRowUpsert {
	u.SetNull(logrow.FieldReforgeStep)
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *LogRowUpsert) SetAttemptNumber(v int) *LogRowUpsert {
	u.Set(logrow.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateAttemptNumber() *LogRowUpsert {
	u.SetExcluded(logrow.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *LogRowUpsert) AddAttemptNumber(v int) *LogRowUpsert {
	u.Add(logrow.FieldAttemptNumber, v)
	return u
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (u *LogRowUpsert) ClearAttemptNumber() *LogRowUpsert {
	u.SetNull(logrow.FieldAttemptNumber)
	return u
}

// SetTurnNumber sets the "turn_number" field.
func (u *LogRowUpsert) SetTurnNumber(v int) *LogRowUpsert {
	u.Set(logrow.FieldTurnNumber, v)
	return u
}

// UpdateTurnNumber sets the "turn_number" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateTurnNumber() *LogRowUpsert {
	u.SetExcluded(logrow.FieldTurnNumber)
	return u
}

// AddTurnNumber adds v to the "turn_number" field.
func (u *LogRowUpsert) AddTurnNumber(v int) *LogRowUpsert {
	u.Add(logrow.FieldTurnNumber, v)
	return u
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (u *LogRowUpsert) ClearTurnNumber() *LogRowUpsert {
	u.SetNull(logrow.FieldTurnNumber)
	return u
}

// SetMutationApplied sets the "mutation_applied" field.
func (u *LogRowUpsert) SetMutationApplied(v bool) *LogRowUpsert {
	u.Set(logrow.FieldMutationApplied, v)
	return u
}

// UpdateMutationApplied sets the "mutation_applied" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateMutationApplied() *LogRowUpsert {
	u.SetExcluded(logrow.FieldMutationApplied)
	return u
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (u *LogRowUpsert) ClearMutationApplied() *LogRowUpsert {
	u.SetNull(logrow.FieldMutationApplied)
	return u
}

// SetMutationType sets the "mutation_type" field.
func (u *LogRowUpsert) SetMutationType(v string) *LogRowUpsert {
	u.Set(logrow.FieldMutationType, v)
	return u
}

// UpdateMutationType sets the "mutation_type" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateMutationType() *LogRowUpsert {
	u.SetExcluded(logrow.FieldMutationType)
	return u
}

// ClearMutationType clears the value of the "mutation_type" field.
func (u *LogRowUpsert) ClearMutationType() *LogRowUpsert {
	u.SetNull(logrow.FieldMutationType)
	return u
}

// SetMutationTemplate sets the "mutation_template" field.
func (u *LogRowUpsert) SetMutationTemplate(v string) *LogRowUpsert {
	u.Set(logrow.FieldMutationTemplate, v)
	return u
}

// UpdateMutationTemplate sets the "mutation_template" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateMutationTemplate() *LogRowUpsert {
	u.SetExcluded(logrow.FieldMutationTemplate)
	return u
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (u *LogRowUpsert) ClearMutationTemplate() *LogRowUpsert {
	u.SetNull(logrow.FieldMutationTemplate)
	return u
}

// SetSpeciesHash sets the "species_hash" field.
func (u *LogRowUpsert) SetSpeciesHash(v string) *LogRowUpsert {
	u.Set(logrow.FieldSpeciesHash, v)
	return u
}

// UpdateSpeciesHash sets the "species_hash" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateSpeciesHash() *LogRowUpsert {
	u.SetExcluded(logrow.FieldSpeciesHash)
	return u
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (u *LogRowUpsert) ClearSpeciesHash() *LogRowUpsert {
	u.SetNull(logrow.FieldSpeciesHash)
	return u
}

// SetCascadeID sets the "cascade_id" field.
func (u *LogRowUpsert) SetCascadeID(v string) *LogRowUpsert {
	u.Set(logrow.FieldCascadeID, v)
	return u
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateCascadeID() *LogRowUpsert {
	u.SetExcluded(logrow.FieldCascadeID)
	return u
}

// SetCascadeFile sets the "cascade_file" field.
func (u *LogRowUpsert) SetCascadeFile(v string) *LogRowUpsert {
	u.Set(logrow.FieldCascadeFile, v)
	return u
}

// UpdateCascadeFile sets the "cascade_file" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateCascadeFile() *LogRowUpsert {
	u.SetExcluded(logrow.FieldCascadeFile)
	return u
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (u *LogRowUpsert) ClearCascadeFile() *LogRowUpsert {
	u.SetNull(logrow.FieldCascadeFile)
	return u
}

// SetCascadeJSON sets the "cascade_json" field.
func (u *LogRowUpsert) SetCascadeJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldCascadeJSON, v)
	return u
}

// UpdateCascadeJSON sets the "cascade_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateCascadeJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldCascadeJSON)
	return u
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (u *LogRowUpsert) ClearCascadeJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldCascadeJSON)
	return u
}

// SetPhaseName sets the "phase_name" field.
func (u *LogRowUpsert) SetPhaseName(v string) *LogRowUpsert {
	u.Set(logrow.FieldPhaseName, v)
	return u
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *LogRowUpsert) UpdatePhaseName() *LogRowUpsert {
	u.SetExcluded(logrow.FieldPhaseName)
	return u
}

// ClearPhaseName clears the value of the "phase_name" field.
func (u *LogRowUpsert) ClearPhaseName() *LogRowUpsert {
	u.SetNull(logrow.FieldPhaseName)
	return u
}

// SetPhaseJSON sets the "phase_json" field.
func (u *LogRowUpsert) SetPhaseJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldPhaseJSON, v)
	return u
}

// UpdatePhaseJSON sets the "phase_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdatePhaseJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldPhaseJSON)
	return u
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (u *LogRowUpsert) ClearPhaseJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldPhaseJSON)
	return u
}

// SetModel sets the "model" field.
func (u *LogRowUpsert) SetModel(v string) *LogRowUpsert {
	u.Set(logrow.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateModel() *LogRowUpsert {
	u.SetExcluded(logrow.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *LogRowUpsert) ClearModel() *LogRowUpsert {
	u.SetNull(logrow.FieldModel)
	return u
}

// SetModelRequested sets the "model_requested" field.
func (u *LogRowUpsert) SetModelRequested(v string) *LogRowUpsert {
	u.Set(logrow.FieldModelRequested, v)
	return u
}

// UpdateModelRequested sets the "model_requested" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateModelRequested() *LogRowUpsert {
	u.SetExcluded(logrow.FieldModelRequested)
	return u
}

// ClearModelRequested clears the value of the "model_requested" field.
func (u *LogRowUpsert) ClearModelRequested() *LogRowUpsert {
	u.SetNull(logrow.FieldModelRequested)
	return u
}

// SetRequestID sets the "request_id" field.
func (u *LogRowUpsert) SetRequestID(v string) *LogRowUpsert {
	u.Set(logrow.FieldRequestID, v)
	return u
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateRequestID() *LogRowUpsert {
	u.SetExcluded(logrow.FieldRequestID)
	return u
}

// ClearRequestID clears the value of the "request_id" field.
func (u *LogRowUpsert) ClearRequestID() *LogRowUpsert {
	u.SetNull(logrow.FieldRequestID)
	return u
}

// SetProvider sets the "provider" field.
func (u *LogRowUpsert) SetProvider(v string) *LogRowUpsert {
	u.Set(logrow.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateProvider() *LogRowUpsert {
	u.SetExcluded(logrow.FieldProvider)
	return u
}

// ClearProvider clears the value of the "provider" field.
func (u *LogRowUpsert) ClearProvider() *LogRowUpsert {
	u.SetNull(logrow.FieldProvider)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LogRowUpsert) SetDurationMs(v int) *LogRowUpsert {
	u.Set(logrow.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateDurationMs() *LogRowUpsert {
	u.SetExcluded(logrow.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LogRowUpsert) AddDurationMs(v int) *LogRowUpsert {
	u.Add(logrow.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LogRowUpsert) ClearDurationMs() *LogRowUpsert {
	u.SetNull(logrow.FieldDurationMs)
	return u
}

// SetTokensIn sets the "tokens_in" field.
func (u *LogRowUpsert) SetTokensIn(v int) *LogRowUpsert {
	u.Set(logrow.FieldTokensIn, v)
	return u
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateTokensIn() *LogRowUpsert {
	u.SetExcluded(logrow.FieldTokensIn)
	return u
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *LogRowUpsert) AddTokensIn(v int) *LogRowUpsert {
	u.Add(logrow.FieldTokensIn, v)
	return u
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (u *LogRowUpsert) ClearTokensIn() *LogRowUpsert {
	u.SetNull(logrow.FieldTokensIn)
	return u
}

// SetTokensOut sets the "tokens_out" field.
func (u *LogRowUpsert) SetTokensOut(v int) *LogRowUpsert {
	u.Set(logrow.FieldTokensOut, v)
	return u
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateTokensOut() *LogRowUpsert {
	u.SetExcluded(logrow.FieldTokensOut)
	return u
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *LogRowUpsert) AddTokensOut(v int) *LogRowUpsert {
	u.Add(logrow.FieldTokensOut, v)
	return u
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (u *LogRowUpsert) ClearTokensOut() *LogRowUpsert {
	u.SetNull(logrow.FieldTokensOut)
	return u
}

// SetCost sets the "cost" field.
func (u *LogRowUpsert) SetCost(v float64) *LogRowUpsert {
	u.Set(logrow.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateCost() *LogRowUpsert {
	u.SetExcluded(logrow.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *LogRowUpsert) AddCost(v float64) *LogRowUpsert {
	u.Add(logrow.FieldCost, v)
	return u
}

// ClearCost clears the value of the "cost" field.
func (u *LogRowUpsert) ClearCost() *LogRowUpsert {
	u.SetNull(logrow.FieldCost)
	return u
}

// SetContentJSON sets the "content_json" field.
func (u *LogRowUpsert) SetContentJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldContentJSON, v)
	return u
}

// UpdateContentJSON sets the "content_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateContentJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldContentJSON)
	return u
}

// ClearContentJSON clears the value of the "content_json" field.
func (u *LogRowUpsert) ClearContentJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldContentJSON)
	return u
}

// SetFullRequestJSON sets the "full_request_json" field.
func (u *LogRowUpsert) SetFullRequestJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldFullRequestJSON, v)
	return u
}

// UpdateFullRequestJSON sets the "full_request_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateFullRequestJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldFullRequestJSON)
	return u
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (u *LogRowUpsert) ClearFullRequestJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldFullRequestJSON)
	return u
}

// SetFullResponseJSON sets the "full_response_json" field.
func (u *LogRowUpsert) SetFullResponseJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldFullResponseJSON, v)
	return u
}

// UpdateFullResponseJSON sets the "full_response_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateFullResponseJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldFullResponseJSON)
	return u
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (u *LogRowUpsert) ClearFullResponseJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldFullResponseJSON)
	return u
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (u *LogRowUpsert) SetToolCallsJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldToolCallsJSON, v)
	return u
}

// UpdateToolCallsJSON sets the "tool_calls_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateToolCallsJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldToolCallsJSON)
	return u
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (u *LogRowUpsert) ClearToolCallsJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldToolCallsJSON)
	return u
}

// SetImagesJSON sets the "images_json" field.
func (u *LogRowUpsert) SetImagesJSON(v string) *LogRowUpsert {
	u.Set(logrow.FieldImagesJSON, v)
	return u
}

// UpdateImagesJSON sets the "images_json" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateImagesJSON() *LogRowUpsert {
	u.SetExcluded(logrow.FieldImagesJSON)
	return u
}

// ClearImagesJSON clears the value of the "images_json" field.
func (u *LogRowUpsert) ClearImagesJSON() *LogRowUpsert {
	u.SetNull(logrow.FieldImagesJSON)
	return u
}

// SetHasImages sets the "has_images" field.
func (u *LogRowUpsert) SetHasImages(v bool) *LogRowUpsert {
	u.Set(logrow.FieldHasImages, v)
	return u
}

// UpdateHasImages sets the "has_images" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateHasImages() *LogRowUpsert {
	u.SetExcluded(logrow.FieldHasImages)
	return u
}

// SetHasBase64 sets the "has_base64" field.
func (u *LogRowUpsert) SetHasBase64(v bool) *LogRowUpsert {
	u.Set(logrow.FieldHasBase64, v)
	return u
}

// UpdateHasBase64 sets the "has_base64" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateHasBase64() *LogRowUpsert {
	u.SetExcluded(logrow.FieldHasBase64)
	return u
}

// SetSemanticActor sets the "semantic_actor" field.
func (u *LogRowUpsert) SetSemanticActor(v logrow.SemanticActor) *LogRowUpsert {
	u.Set(logrow.FieldSemanticActor, v)
	return u
}

// UpdateSemanticActor sets the "semantic_actor" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateSemanticActor() *LogRowUpsert {
	u.SetExcluded(logrow.FieldSemanticActor)
	return u
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (u *LogRowUpsert) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowUpsert {
	u.Set(logrow.FieldSemanticPurpose, v)
	return u
}

// UpdateSemanticPurpose sets the "semantic_purpose" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateSemanticPurpose() *LogRowUpsert {
	u.SetExcluded(logrow.FieldSemanticPurpose)
	return u
}

// SetIsCallout sets the "is_callout" field.
func (u *LogRowUpsert) SetIsCallout(v bool) *LogRowUpsert {
	u.Set(logrow.FieldIsCallout, v)
	return u
}

// UpdateIsCallout sets the "is_callout" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateIsCallout() *LogRowUpsert {
	u.SetExcluded(logrow.FieldIsCallout)
	return u
}

// SetCalloutName sets the "callout_name" field.
func (u *LogRowUpsert) SetCalloutName(v string) *LogRowUpsert {
	u.Set(logrow.FieldCalloutName, v)
	return u
}

// UpdateCalloutName sets the "callout_name" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateCalloutName() *LogRowUpsert {
	u.SetExcluded(logrow.FieldCalloutName)
	return u
}

// ClearCalloutName clears the value of the "callout_name" field.
func (u *LogRowUpsert) ClearCalloutName() *LogRowUpsert {
	u.SetNull(logrow.FieldCalloutName)
	return u
}

// SetRowMetadata sets the "row_metadata" field.
func (u *LogRowUpsert) SetRowMetadata(v map[string]interface{}) *LogRowUpsert {
	u.Set(logrow.FieldRowMetadata, v)
	return u
}

// UpdateRowMetadata sets the "row_metadata" field to the value that was provided on create.
func (u *LogRowUpsert) UpdateRowMetadata() *LogRowUpsert {
	u.SetExcluded(logrow.FieldRowMetadata)
	return u
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (u *LogRowUpsert) ClearRowMetadata() *LogRowUpsert {
	u.SetNull(logrow.FieldRowMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LogRow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(logrow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LogRowUpsertOne) UpdateNewValues() *LogRowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(logrow.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(logrow.FieldSessionID)
		}
		if _, exists := u.create.mutation.TraceID(); exists {
			s.SetIgnore(logrow.FieldTraceID)
		}
		if _, exists := u.create.mutation.ParentID(); exists {
			s.SetIgnore(logrow.FieldParentID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LogRow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LogRowUpsertOne) Ignore() *LogRowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LogRowUpsertOne) DoNothing() *LogRowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LogRowCreate.OnConflict
// documentation for more info.
func (u *LogRowUpsertOne) Update(set func(*LogRowUpsert)) *LogRowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LogRowUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *LogRowUpsertOne) SetTimestamp(v time.Time) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateTimestamp() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTimestamp()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *LogRowUpsertOne) SetParentSessionID(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateParentSessionID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *LogRowUpsertOne) ClearParentSessionID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearParentSessionID()
	})
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *LogRowUpsertOne) SetParentMessageID(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetParentMessageID(v)
	})
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateParentMessageID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateParentMessageID()
	})
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *LogRowUpsertOne) ClearParentMessageID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearParentMessageID()
	})
}

// SetDepth sets the "depth" field.
func (u *LogRowUpsertOne) SetDepth(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *LogRowUpsertOne) AddDepth(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateDepth() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateDepth()
	})
}

// SetNodeType sets the "node_type" field.
func (u *LogRowUpsertOne) SetNodeType(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetNodeType(v)
	})
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateNodeType() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateNodeType()
	})
}

// SetRole sets the "role" field.
func (u *LogRowUpsertOne) SetRole(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateRole() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *LogRowUpsertOne) ClearRole() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRole()
	})
}

// SetSoundingIndex sets the "sounding_index" field.
func (u *LogRowUpsertOne) SetSoundingIndex(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSoundingIndex(v)
	})
}

// AddSoundingIndex adds v to the "sounding_index" field.
func (u *LogRowUpsertOne) AddSoundingIndex(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddSoundingIndex(v)
	})
}

// UpdateSoundingIndex sets the "sounding_index" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateSoundingIndex() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSoundingIndex()
	})
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (u *LogRowUpsertOne) ClearSoundingIndex() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearSoundingIndex()
	})
}

// SetIsWinner sets the "is_winner" field.
func (u *LogRowUpsertOne) SetIsWinner(v bool) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetIsWinner(v)
	})
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateIsWinner() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateIsWinner()
	})
}

// ClearIsWinner clears the value of the "is_winner" field.
func (u *LogRowUpsertOne) ClearIsWinner() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearIsWinner()
	})
}

// SetReforgeStep sets the "reforge_step" field.
func (u *LogRowUpsertOne) SetReforgeStep(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetReforgeStep(v)
	})
}

// AddReforgeStep adds v to the "reforge_step" field.
func (u *LogRowUpsertOne) AddReforgeStep(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddReforgeStep(v)
	})
}

// UpdateReforgeStep sets the "reforge_step" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateReforgeStep() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateReforgeStep()
	})
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (u *LogRowUpsertOne) ClearReforgeStep() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearReforgeStep()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *LogRowUpsertOne) SetAttemptNumber(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *LogRowUpsertOne) AddAttemptNumber(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateAttemptNumber() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateAttemptNumber()
	})
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (u *LogRowUpsertOne) ClearAttemptNumber() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearAttemptNumber()
	})
}

// SetTurnNumber sets the "turn_number" field.
func (u *LogRowUpsertOne) SetTurnNumber(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTurnNumber(v)
	})
}

// AddTurnNumber adds v to the "turn_number" field.
func (u *LogRowUpsertOne) AddTurnNumber(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTurnNumber(v)
	})
}

// UpdateTurnNumber sets the "turn_number" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateTurnNumber() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTurnNumber()
	})
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (u *LogRowUpsertOne) ClearTurnNumber() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTurnNumber()
	})
}

// SetMutationApplied sets the "mutation_applied" field.
func (u *LogRowUpsertOne) SetMutationApplied(v bool) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationApplied(v)
	})
}

// UpdateMutationApplied sets the "mutation_applied" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateMutationApplied() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationApplied()
	})
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (u *LogRowUpsertOne) ClearMutationApplied() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationApplied()
	})
}

// SetMutationType sets the "mutation_type" field.
func (u *LogRowUpsertOne) SetMutationType(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationType(v)
	})
}

// UpdateMutationType sets the "mutation_type" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateMutationType() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationType()
	})
}

// ClearMutationType clears the value of the "mutation_type" field.
func (u *LogRowUpsertOne) ClearMutationType() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationType()
	})
}

// SetMutationTemplate sets the "mutation_template" field.
func (u *LogRowUpsertOne) SetMutationTemplate(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationTemplate(v)
	})
}

// UpdateMutationTemplate sets the "mutation_template" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateMutationTemplate() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationTemplate()
	})
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (u *LogRowUpsertOne) ClearMutationTemplate() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationTemplate()
	})
}

// SetSpeciesHash sets the "species_hash" field.
func (u *LogRowUpsertOne) SetSpeciesHash(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSpeciesHash(v)
	})
}

// UpdateSpeciesHash sets the "species_hash" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateSpeciesHash() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSpeciesHash()
	})
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (u *LogRowUpsertOne) ClearSpeciesHash() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearSpeciesHash()
	})
}

// SetCascadeID sets the "cascade_id" field.
func (u *LogRowUpsertOne) SetCascadeID(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeID(v)
	})
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateCascadeID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeID()
	})
}

// SetCascadeFile sets the "cascade_file" field.
func (u *LogRowUpsertOne) SetCascadeFile(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeFile(v)
	})
}

// UpdateCascadeFile sets the "cascade_file" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateCascadeFile() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeFile()
	})
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (u *LogRowUpsertOne) ClearCascadeFile() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCascadeFile()
	})
}

// SetCascadeJSON sets the "cascade_json" field.
func (u *LogRowUpsertOne) SetCascadeJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeJSON(v)
	})
}

// UpdateCascadeJSON sets the "cascade_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateCascadeJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeJSON()
	})
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (u *LogRowUpsertOne) ClearCascadeJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCascadeJSON()
	})
}

// SetPhaseName sets the "phase_name" field.
func (u *LogRowUpsertOne) SetPhaseName(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetPhaseName(v)
	})
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdatePhaseName() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdatePhaseName()
	})
}

// ClearPhaseName clears the value of the "phase_name" field.
func (u *LogRowUpsertOne) ClearPhaseName() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearPhaseName()
	})
}

// SetPhaseJSON sets the "phase_json" field.
func (u *LogRowUpsertOne) SetPhaseJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetPhaseJSON(v)
	})
}

// UpdatePhaseJSON sets the "phase_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdatePhaseJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdatePhaseJSON()
	})
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (u *LogRowUpsertOne) ClearPhaseJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearPhaseJSON()
	})
}

// SetModel sets the "model" field.
func (u *LogRowUpsertOne) SetModel(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateModel() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *LogRowUpsertOne) ClearModel() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearModel()
	})
}

// SetModelRequested sets the "model_requested" field.
func (u *LogRowUpsertOne) SetModelRequested(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetModelRequested(v)
	})
}

// UpdateModelRequested sets the "model_requested" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateModelRequested() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateModelRequested()
	})
}

// ClearModelRequested clears the value of the "model_requested" field.
func (u *LogRowUpsertOne) ClearModelRequested() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearModelRequested()
	})
}

// SetRequestID sets the "request_id" field.
func (u *LogRowUpsertOne) SetRequestID(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateRequestID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *LogRowUpsertOne) ClearRequestID() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRequestID()
	})
}

// SetProvider sets the "provider" field.
func (u *LogRowUpsertOne) SetProvider(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateProvider() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *LogRowUpsertOne) ClearProvider() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearProvider()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LogRowUpsertOne) SetDurationMs(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LogRowUpsertOne) AddDurationMs(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateDurationMs() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LogRowUpsertOne) ClearDurationMs() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *LogRowUpsertOne) SetTokensIn(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *LogRowUpsertOne) AddTokensIn(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateTokensIn() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTokensIn()
	})
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (u *LogRowUpsertOne) ClearTokensIn() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *LogRowUpsertOne) SetTokensOut(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *LogRowUpsertOne) AddTokensOut(v int) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateTokensOut() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTokensOut()
	})
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (u *LogRowUpsertOne) ClearTokensOut() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTokensOut()
	})
}

// SetCost sets the "cost" field.
func (u *LogRowUpsertOne) SetCost(v float64) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *LogRowUpsertOne) AddCost(v float64) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateCost() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCost()
	})
}

// ClearCost clears the value of the "cost" field.
func (u *LogRowUpsertOne) ClearCost() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCost()
	})
}

// SetContentJSON sets the "content_json" field.
func (u *LogRowUpsertOne) SetContentJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetContentJSON(v)
	})
}

// UpdateContentJSON sets the "content_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateContentJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateContentJSON()
	})
}

// ClearContentJSON clears the value of the "content_json" field.
func (u *LogRowUpsertOne) ClearContentJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearContentJSON()
	})
}

// SetFullRequestJSON sets the "full_request_json" field.
func (u *LogRowUpsertOne) SetFullRequestJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetFullRequestJSON(v)
	})
}

// UpdateFullRequestJSON sets the "full_request_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateFullRequestJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateFullRequestJSON()
	})
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (u *LogRowUpsertOne) ClearFullRequestJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearFullRequestJSON()
	})
}

// SetFullResponseJSON sets the "full_response_json" field.
func (u *LogRowUpsertOne) SetFullResponseJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetFullResponseJSON(v)
	})
}

// UpdateFullResponseJSON sets the "full_response_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateFullResponseJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateFullResponseJSON()
	})
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (u *LogRowUpsertOne) ClearFullResponseJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearFullResponseJSON()
	})
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (u *LogRowUpsertOne) SetToolCallsJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetToolCallsJSON(v)
	})
}

// UpdateToolCallsJSON sets the "tool_calls_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateToolCallsJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateToolCallsJSON()
	})
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (u *LogRowUpsertOne) ClearToolCallsJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearToolCallsJSON()
	})
}

// SetImagesJSON sets the "images_json" field.
func (u *LogRowUpsertOne) SetImagesJSON(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetImagesJSON(v)
	})
}

// UpdateImagesJSON sets the "images_json" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateImagesJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateImagesJSON()
	})
}

// ClearImagesJSON clears the value of the "images_json" field.
func (u *LogRowUpsertOne) ClearImagesJSON() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearImagesJSON()
	})
}

// SetHasImages sets the "has_images" field.
func (u *LogRowUpsertOne) SetHasImages(v bool) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetHasImages(v)
	})
}

// UpdateHasImages sets the "has_images" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateHasImages() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateHasImages()
	})
}

// SetHasBase64 sets the "has_base64" field.
func (u *LogRowUpsertOne) SetHasBase64(v bool) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetHasBase64(v)
	})
}

// UpdateHasBase64 sets the "has_base64" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateHasBase64() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateHasBase64()
	})
}

// SetSemanticActor sets the "semantic_actor" field.
func (u *LogRowUpsertOne) SetSemanticActor(v logrow.SemanticActor) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSemanticActor(v)
	})
}

// UpdateSemanticActor sets the "semantic_actor" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateSemanticActor() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSemanticActor()
	})
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (u *LogRowUpsertOne) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSemanticPurpose(v)
	})
}

// UpdateSemanticPurpose sets the "semantic_purpose" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateSemanticPurpose() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSemanticPurpose()
	})
}

// SetIsCallout sets the "is_callout" field.
func (u *LogRowUpsertOne) SetIsCallout(v bool) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetIsCallout(v)
	})
}

// UpdateIsCallout sets the "is_callout" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateIsCallout() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateIsCallout()
	})
}

// SetCalloutName sets the "callout_name" field.
func (u *LogRowUpsertOne) SetCalloutName(v string) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCalloutName(v)
	})
}

// UpdateCalloutName sets the "callout_name" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateCalloutName() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCalloutName()
	})
}

// ClearCalloutName clears the value of the "callout_name" field.
func (u *LogRowUpsertOne) ClearCalloutName() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCalloutName()
	})
}

// SetRowMetadata sets the "row_metadata" field.
func (u *LogRowUpsertOne) SetRowMetadata(v map[string]interface{}) *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRowMetadata(v)
	})
}

// UpdateRowMetadata sets the "row_metadata" field to the value that was provided on create.
func (u *LogRowUpsertOne) UpdateRowMetadata() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRowMetadata()
	})
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (u *LogRowUpsertOne) ClearRowMetadata() *LogRowUpsertOne {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRowMetadata()
	})
}

// Exec executes the query.
func (u *LogRowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LogRowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LogRowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LogRowUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LogRowUpsertOne.ID is not supported by MySQL driver. Use LogRowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LogRowUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LogRowCreateBulk is the builder for creating many LogRow entities in bulk.
type LogRowCreateBulk struct {
	config
	err      error
	builders []*LogRowCreate
	conflict []sql.ConflictOption
}

// Save creates the LogRow entities in the database.
func (_c *LogRowCreateBulk) Save(ctx context.Context) ([]*LogRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LogRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LogRowMutation)
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
func (_c *LogRowCreateBulk) SaveX(ctx context.Context) []*LogRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LogRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LogRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LogRow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LogRowUpsert) {
//			SetTimestamp(v+v).
//		}).
//		Exec(ctx)
func (_c *LogRowCreateBulk) OnConflict(opts ...sql.ConflictOption) *LogRowUpsertBulk {
	_c.conflict = opts
	return &LogRowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LogRow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LogRowCreateBulk) OnConflictColumns(columns ...string) *LogRowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LogRowUpsertBulk{
		create: _c,
	}
}

// LogRowUpsertBulk is the builder for "upsert"-ing
// a bulk of LogRow nodes.
type LogRowUpsertBulk struct {
	create *LogRowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LogRow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(logrow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LogRowUpsertBulk) UpdateNewValues() *LogRowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(logrow.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(logrow.FieldSessionID)
			}
			if _, exists := b.mutation.TraceID(); exists {
				s.SetIgnore(logrow.FieldTraceID)
			}
			if _, exists := b.mutation.ParentID(); exists {
				s.SetIgnore(logrow.FieldParentID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LogRow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LogRowUpsertBulk) Ignore() *LogRowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LogRowUpsertBulk) DoNothing() *LogRowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LogRowCreateBulk.OnConflict
// documentation for more info.
func (u *LogRowUpsertBulk) Update(set func(*LogRowUpsert)) *LogRowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LogRowUpsert{UpdateSet: update})
	}))
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *LogRowUpsertBulk) SetTimestamp(v time.Time) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateTimestamp() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTimestamp()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *LogRowUpsertBulk) SetParentSessionID(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateParentSessionID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *LogRowUpsertBulk) ClearParentSessionID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearParentSessionID()
	})
}

// SetParentMessageID sets the "parent_message_id" field.
func (u *LogRowUpsertBulk) SetParentMessageID(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetParentMessageID(v)
	})
}

// UpdateParentMessageID sets the "parent_message_id" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateParentMessageID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateParentMessageID()
	})
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (u *LogRowUpsertBulk) ClearParentMessageID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearParentMessageID()
	})
}

// SetDepth sets the "depth" field.
func (u *LogRowUpsertBulk) SetDepth(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetDepth(v)
	})
}

// AddDepth adds v to the "depth" field.
func (u *LogRowUpsertBulk) AddDepth(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddDepth(v)
	})
}

// UpdateDepth sets the "depth" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateDepth() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateDepth()
	})
}

// SetNodeType sets the "node_type" field.
func (u *LogRowUpsertBulk) SetNodeType(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetNodeType(v)
	})
}

// UpdateNodeType sets the "node_type" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateNodeType() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateNodeType()
	})
}

// SetRole sets the "role" field.
func (u *LogRowUpsertBulk) SetRole(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateRole() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *LogRowUpsertBulk) ClearRole() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRole()
	})
}

// SetSoundingIndex sets the "sounding_index" field.
func (u *LogRowUpsertBulk) SetSoundingIndex(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSoundingIndex(v)
	})
}

// AddSoundingIndex adds v to the "sounding_index" field.
func (u *LogRowUpsertBulk) AddSoundingIndex(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddSoundingIndex(v)
	})
}

// UpdateSoundingIndex sets the "sounding_index" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateSoundingIndex() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSoundingIndex()
	})
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (u *LogRowUpsertBulk) ClearSoundingIndex() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearSoundingIndex()
	})
}

// SetIsWinner sets the "is_winner" field.
func (u *LogRowUpsertBulk) SetIsWinner(v bool) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetIsWinner(v)
	})
}

// UpdateIsWinner sets the "is_winner" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateIsWinner() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateIsWinner()
	})
}

// ClearIsWinner clears the value of the "is_winner" field.
func (u *LogRowUpsertBulk) ClearIsWinner() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearIsWinner()
	})
}

// SetReforgeStep sets the "reforge_step" field.
func (u *LogRowUpsertBulk) SetReforgeStep(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetReforgeStep(v)
	})
}

// AddReforgeStep adds v to the "reforge_step" field.
func (u *LogRowUpsertBulk) AddReforgeStep(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddReforgeStep(v)
	})
}

// UpdateReforgeStep sets the "reforge_step" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateReforgeStep() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateReforgeStep()
	})
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (u *LogRowUpsertBulk) ClearReforgeStep() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearReforgeStep()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *LogRowUpsertBulk) SetAttemptNumber(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *LogRowUpsertBulk) AddAttemptNumber(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateAttemptNumber() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateAttemptNumber()
	})
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (u *LogRowUpsertBulk) ClearAttemptNumber() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearAttemptNumber()
	})
}

// SetTurnNumber sets the "turn_number" field.
func (u *LogRowUpsertBulk) SetTurnNumber(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTurnNumber(v)
	})
}

// AddTurnNumber adds v to the "turn_number" field.
func (u *LogRowUpsertBulk) AddTurnNumber(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTurnNumber(v)
	})
}

// UpdateTurnNumber sets the "turn_number" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateTurnNumber() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTurnNumber()
	})
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (u *LogRowUpsertBulk) ClearTurnNumber() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTurnNumber()
	})
}

// SetMutationApplied sets the "mutation_applied" field.
func (u *LogRowUpsertBulk) SetMutationApplied(v bool) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationApplied(v)
	})
}

// UpdateMutationApplied sets the "mutation_applied" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateMutationApplied() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationApplied()
	})
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (u *LogRowUpsertBulk) ClearMutationApplied() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationApplied()
	})
}

// SetMutationType sets the "mutation_type" field.
func (u *LogRowUpsertBulk) SetMutationType(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationType(v)
	})
}

// UpdateMutationType sets the "mutation_type" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateMutationType() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationType()
	})
}

// ClearMutationType clears the value of the "mutation_type" field.
func (u *LogRowUpsertBulk) ClearMutationType() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationType()
	})
}

// SetMutationTemplate sets the "mutation_template" field.
func (u *LogRowUpsertBulk) SetMutationTemplate(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetMutationTemplate(v)
	})
}

// UpdateMutationTemplate sets the "mutation_template" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateMutationTemplate() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateMutationTemplate()
	})
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (u *LogRowUpsertBulk) ClearMutationTemplate() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearMutationTemplate()
	})
}

// SetSpeciesHash sets the "species_hash" field.
func (u *LogRowUpsertBulk) SetSpeciesHash(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSpeciesHash(v)
	})
}

// UpdateSpeciesHash sets the "species_hash" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateSpeciesHash() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSpeciesHash()
	})
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (u *LogRowUpsertBulk) ClearSpeciesHash() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearSpeciesHash()
	})
}

// SetCascadeID sets the "cascade_id" field.
func (u *LogRowUpsertBulk) SetCascadeID(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeID(v)
	})
}

// UpdateCascadeID sets the "cascade_id" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateCascadeID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeID()
	})
}

// SetCascadeFile sets the "cascade_file" field.
func (u *LogRowUpsertBulk) SetCascadeFile(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeFile(v)
	})
}

// UpdateCascadeFile sets the "cascade_file" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateCascadeFile() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeFile()
	})
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (u *LogRowUpsertBulk) ClearCascadeFile() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCascadeFile()
	})
}

// SetCascadeJSON sets the "cascade_json" field.
func (u *LogRowUpsertBulk) SetCascadeJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCascadeJSON(v)
	})
}

// UpdateCascadeJSON sets the "cascade_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateCascadeJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCascadeJSON()
	})
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (u *LogRowUpsertBulk) ClearCascadeJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCascadeJSON()
	})
}

// SetPhaseName sets the "phase_name" field.
func (u *LogRowUpsertBulk) SetPhaseName(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetPhaseName(v)
	})
}

// UpdatePhaseName sets the "phase_name" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdatePhaseName() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdatePhaseName()
	})
}

// ClearPhaseName clears the value of the "phase_name" field.
func (u *LogRowUpsertBulk) ClearPhaseName() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearPhaseName()
	})
}

// SetPhaseJSON sets the "phase_json" field.
func (u *LogRowUpsertBulk) SetPhaseJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetPhaseJSON(v)
	})
}

// UpdatePhaseJSON sets the "phase_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdatePhaseJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdatePhaseJSON()
	})
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (u *LogRowUpsertBulk) ClearPhaseJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearPhaseJSON()
	})
}

// SetModel sets the "model" field.
func (u *LogRowUpsertBulk) SetModel(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateModel() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *LogRowUpsertBulk) ClearModel() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearModel()
	})
}

// SetModelRequested sets the "model_requested" field.
func (u *LogRowUpsertBulk) SetModelRequested(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetModelRequested(v)
	})
}

// UpdateModelRequested sets the "model_requested" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateModelRequested() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateModelRequested()
	})
}

// ClearModelRequested clears the value of the "model_requested" field.
func (u *LogRowUpsertBulk) ClearModelRequested() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearModelRequested()
	})
}

// SetRequestID sets the "request_id" field.
func (u *LogRowUpsertBulk) SetRequestID(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRequestID(v)
	})
}

// UpdateRequestID sets the "request_id" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateRequestID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRequestID()
	})
}

// ClearRequestID clears the value of the "request_id" field.
func (u *LogRowUpsertBulk) ClearRequestID() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRequestID()
	})
}

// SetProvider sets the "provider" field.
func (u *LogRowUpsertBulk) SetProvider(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateProvider() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *LogRowUpsertBulk) ClearProvider() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearProvider()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LogRowUpsertBulk) SetDurationMs(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LogRowUpsertBulk) AddDurationMs(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateDurationMs() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LogRowUpsertBulk) ClearDurationMs() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearDurationMs()
	})
}

// SetTokensIn sets the "tokens_in" field.
func (u *LogRowUpsertBulk) SetTokensIn(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTokensIn(v)
	})
}

// AddTokensIn adds v to the "tokens_in" field.
func (u *LogRowUpsertBulk) AddTokensIn(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTokensIn(v)
	})
}

// UpdateTokensIn sets the "tokens_in" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateTokensIn() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTokensIn()
	})
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (u *LogRowUpsertBulk) ClearTokensIn() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTokensIn()
	})
}

// SetTokensOut sets the "tokens_out" field.
func (u *LogRowUpsertBulk) SetTokensOut(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetTokensOut(v)
	})
}

// AddTokensOut adds v to the "tokens_out" field.
func (u *LogRowUpsertBulk) AddTokensOut(v int) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddTokensOut(v)
	})
}

// UpdateTokensOut sets the "tokens_out" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateTokensOut() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateTokensOut()
	})
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (u *LogRowUpsertBulk) ClearTokensOut() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearTokensOut()
	})
}

// SetCost sets the "cost" field.
func (u *LogRowUpsertBulk) SetCost(v float64) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *LogRowUpsertBulk) AddCost(v float64) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateCost() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCost()
	})
}

// ClearCost clears the value of the "cost" field.
func (u *LogRowUpsertBulk) ClearCost() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCost()
	})
}

// SetContentJSON sets the "content_json" field.
func (u *LogRowUpsertBulk) SetContentJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetContentJSON(v)
	})
}

// UpdateContentJSON sets the "content_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateContentJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateContentJSON()
	})
}

// ClearContentJSON clears the value of the "content_json" field.
func (u *LogRowUpsertBulk) ClearContentJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearContentJSON()
	})
}

// SetFullRequestJSON sets the "full_request_json" field.
func (u *LogRowUpsertBulk) SetFullRequestJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetFullRequestJSON(v)
	})
}

// UpdateFullRequestJSON sets the "full_request_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateFullRequestJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateFullRequestJSON()
	})
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (u *LogRowUpsertBulk) ClearFullRequestJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearFullRequestJSON()
	})
}

// SetFullResponseJSON sets the "full_response_json" field.
func (u *LogRowUpsertBulk) SetFullResponseJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetFullResponseJSON(v)
	})
}

// UpdateFullResponseJSON sets the "full_response_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateFullResponseJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateFullResponseJSON()
	})
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (u *LogRowUpsertBulk) ClearFullResponseJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearFullResponseJSON()
	})
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (u *LogRowUpsertBulk) SetToolCallsJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetToolCallsJSON(v)
	})
}

// UpdateToolCallsJSON sets the "tool_calls_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateToolCallsJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateToolCallsJSON()
	})
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (u *LogRowUpsertBulk) ClearToolCallsJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearToolCallsJSON()
	})
}

// SetImagesJSON sets the "images_json" field.
func (u *LogRowUpsertBulk) SetImagesJSON(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetImagesJSON(v)
	})
}

// UpdateImagesJSON sets the "images_json" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateImagesJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateImagesJSON()
	})
}

// ClearImagesJSON clears the value of the "images_json" field.
func (u *LogRowUpsertBulk) ClearImagesJSON() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearImagesJSON()
	})
}

// SetHasImages sets the "has_images" field.
func (u *LogRowUpsertBulk) SetHasImages(v bool) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetHasImages(v)
	})
}

// UpdateHasImages sets the "has_images" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateHasImages() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateHasImages()
	})
}

// SetHasBase64 sets the "has_base64" field.
func (u *LogRowUpsertBulk) SetHasBase64(v bool) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetHasBase64(v)
	})
}

// UpdateHasBase64 sets the "has_base64" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateHasBase64() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateHasBase64()
	})
}

// SetSemanticActor sets the "semantic_actor" field.
func (u *LogRowUpsertBulk) SetSemanticActor(v logrow.SemanticActor) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSemanticActor(v)
	})
}

// UpdateSemanticActor sets the "semantic_actor" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateSemanticActor() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSemanticActor()
	})
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (u *LogRowUpsertBulk) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetSemanticPurpose(v)
	})
}

// UpdateSemanticPurpose sets the "semantic_purpose" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateSemanticPurpose() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateSemanticPurpose()
	})
}

// SetIsCallout sets the "is_callout" field.
func (u *LogRowUpsertBulk) SetIsCallout(v bool) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetIsCallout(v)
	})
}

// UpdateIsCallout sets the "is_callout" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateIsCallout() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateIsCallout()
	})
}

// SetCalloutName sets the "callout_name" field.
func (u *LogRowUpsertBulk) SetCalloutName(v string) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetCalloutName(v)
	})
}

// UpdateCalloutName sets the "callout_name" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateCalloutName() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateCalloutName()
	})
}

// ClearCalloutName clears the value of the "callout_name" field.
func (u *LogRowUpsertBulk) ClearCalloutName() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearCalloutName()
	})
}

// SetRowMetadata sets the "row_metadata" field.
func (u *LogRowUpsertBulk) SetRowMetadata(v map[string]interface{}) *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.SetRowMetadata(v)
	})
}

// UpdateRowMetadata sets the "row_metadata" field to the value that was provided on create.
func (u *LogRowUpsertBulk) UpdateRowMetadata() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.UpdateRowMetadata()
	})
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (u *LogRowUpsertBulk) ClearRowMetadata() *LogRowUpsertBulk {
	return u.Update(func(s *LogRowUpsert) {
		s.ClearRowMetadata()
	})
}

// Exec executes the query.
func (u *LogRowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LogRowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LogRowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LogRowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
