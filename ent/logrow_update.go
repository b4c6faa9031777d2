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
	"github.com/windlassio/windlass/ent/logrow"
	"github.com/windlassio/windlass/ent/predicate"
)

// LogRowUpdate is the builder for updating LogRow entities.
type LogRowUpdate struct {
	config
	hooks    []Hook
	mutation *LogRowMutation
}

// Where appends a list predicates to the LogRowUpdate builder.
func (_u *LogRowUpdate) Where(ps ...predicate.LogRow) *LogRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *LogRowUpdate) SetTimestamp(v time.Time) *LogRowUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableTimestamp(v *time.Time) *LogRowUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *LogRowUpdate) SetParentSessionID(v string) *LogRowUpdate {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableParentSessionID(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *LogRowUpdate) ClearParentSessionID() *LogRowUpdate {
	_u.mutation.ClearParentSessionID()
	return _u
}

// SetParentMessageID sets the "parent_message_id" field.
func (_u *LogRowUpdate) SetParentMessageID(v string) *LogRowUpdate {
	_u.mutation.SetParentMessageID(v)
	return _u
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableParentMessageID(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetParentMessageID(*v)
	}
	return _u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (_u *LogRowUpdate) ClearParentMessageID() *LogRowUpdate {
	_u.mutation.ClearParentMessageID()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *LogRowUpdate) SetDepth(v int) *LogRowUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableDepth(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *LogRowUpdate) AddDepth(v int) *LogRowUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *LogRowUpdate) SetNodeType(v string) *LogRowUpdate {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableNodeType(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LogRowUpdate) SetRole(v string) *LogRowUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableRole(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *LogRowUpdate) ClearRole() *LogRowUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSoundingIndex sets the "sounding_index" field.
func (_u *LogRowUpdate) SetSoundingIndex(v int) *LogRowUpdate {
	_u.mutation.ResetSoundingIndex()
	_u.mutation.SetSoundingIndex(v)
	return _u
}

// SetNillableSoundingIndex sets the "sounding_index" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableSoundingIndex(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetSoundingIndex(*v)
	}
	return _u
}

// AddSoundingIndex adds value to the "sounding_index" field.
func (_u *LogRowUpdate) AddSoundingIndex(v int) *LogRowUpdate {
	_u.mutation.AddSoundingIndex(v)
	return _u
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (_u *LogRowUpdate) ClearSoundingIndex() *LogRowUpdate {
	_u.mutation.ClearSoundingIndex()
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *LogRowUpdate) SetIsWinner(v bool) *LogRowUpdate {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableIsWinner(v *bool) *LogRowUpdate {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// ClearIsWinner clears the value of the "is_winner" field.
func (_u *LogRowUpdate) ClearIsWinner() *LogRowUpdate {
	_u.mutation.ClearIsWinner()
	return _u
}

// SetReforgeStep sets the "reforge_step" field.
func (_u *LogRowUpdate) SetReforgeStep(v int) *LogRowUpdate {
	_u.mutation.ResetReforgeStep()
	_u.mutation.SetReforgeStep(v)
	return _u
}

// SetNillableReforgeStep sets the "reforge_step" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableReforgeStep(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetReforgeStep(*v)
	}
	return _u
}

// AddReforgeStep adds value to the "reforge_step" field.
func (_u *LogRowUpdate) AddReforgeStep(v int) *LogRowUpdate {
	_u.mutation.AddReforgeStep(v)
	return _u
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (_u *LogRowUpdate) ClearReforgeStep() *LogRowUpdate {
	_u.mutation.ClearReforgeStep()
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *LogRowUpdate) SetAttemptNumber(v int) *LogRowUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableAttemptNumber(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *LogRowUpdate) AddAttemptNumber(v int) *LogRowUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (_u *LogRowUpdate) ClearAttemptNumber() *LogRowUpdate {
	_u.mutation.ClearAttemptNumber()
	return _u
}

// SetTurnNumber sets the "turn_number" field.
func (_u *LogRowUpdate) SetTurnNumber(v int) *LogRowUpdate {
	_u.mutation.ResetTurnNumber()
	_u.mutation.SetTurnNumber(v)
	return _u
}

// SetNillableTurnNumber sets the "turn_number" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableTurnNumber(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetTurnNumber(*v)
	}
	return _u
}

// AddTurnNumber adds value to the "turn_number" field.
func (_u *LogRowUpdate) AddTurnNumber(v int) *LogRowUpdate {
	_u.mutation.AddTurnNumber(v)
	return _u
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (_u *LogRowUpdate) ClearTurnNumber() *LogRowUpdate {
	_u.mutation.ClearTurnNumber()
	return _u
}

// SetMutationApplied sets the "mutation_applied" field.
func (_u *LogRowUpdate) SetMutationApplied(v bool) *LogRowUpdate {
	_u.mutation.SetMutationApplied(v)
	return _u
}

// SetNillableMutationApplied sets the "mutation_applied" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableMutationApplied(v *bool) *LogRowUpdate {
	if v != nil {
		_u.SetMutationApplied(*v)
	}
	return _u
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (_u *LogRowUpdate) ClearMutationApplied() *LogRowUpdate {
	_u.mutation.ClearMutationApplied()
	return _u
}

// SetMutationType sets the "mutation_type" field.
func (_u *LogRowUpdate) SetMutationType(v string) *LogRowUpdate {
	_u.mutation.SetMutationType(v)
	return _u
}

// SetNillableMutationType sets the "mutation_type" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableMutationType(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetMutationType(*v)
	}
	return _u
}

// ClearMutationType clears the value of the "mutation_type" field.
func (_u *LogRowUpdate) ClearMutationType() *LogRowUpdate {
	_u.mutation.ClearMutationType()
	return _u
}

// SetMutationTemplate sets the "mutation_template" field.
func (_u *LogRowUpdate) SetMutationTemplate(v string) *LogRowUpdate {
	_u.mutation.SetMutationTemplate(v)
	return _u
}

// SetNillableMutationTemplate sets the "mutation_template" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableMutationTemplate(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetMutationTemplate(*v)
	}
	return _u
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (_u *LogRowUpdate) ClearMutationTemplate() *LogRowUpdate {
	_u.mutation.ClearMutationTemplate()
	return _u
}

// SetSpeciesHash sets the "species_hash" field.
func (_u *LogRowUpdate) SetSpeciesHash(v string) *LogRowUpdate {
	_u.mutation.SetSpeciesHash(v)
	return _u
}

// SetNillableSpeciesHash sets the "species_hash" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableSpeciesHash(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetSpeciesHash(*v)
	}
	return _u
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (_u *LogRowUpdate) ClearSpeciesHash() *LogRowUpdate {
	_u.mutation.ClearSpeciesHash()
	return _u
}

// SetCascadeID sets the "cascade_id" field.
func (_u *LogRowUpdate) SetCascadeID(v string) *LogRowUpdate {
	_u.mutation.SetCascadeID(v)
	return _u
}

// SetNillableCascadeID sets the "cascade_id" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableCascadeID(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetCascadeID(*v)
	}
	return _u
}

// SetCascadeFile sets the "cascade_file" field.
func (_u *LogRowUpdate) SetCascadeFile(v string) *LogRowUpdate {
	_u.mutation.SetCascadeFile(v)
	return _u
}

// SetNillableCascadeFile sets the "cascade_file" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableCascadeFile(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetCascadeFile(*v)
	}
	return _u
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (_u *LogRowUpdate) ClearCascadeFile() *LogRowUpdate {
	_u.mutation.ClearCascadeFile()
	return _u
}

// SetCascadeJSON sets the "cascade_json" field.
func (_u *LogRowUpdate) SetCascadeJSON(v string) *LogRowUpdate {
	_u.mutation.SetCascadeJSON(v)
	return _u
}

// SetNillableCascadeJSON sets the "cascade_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableCascadeJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetCascadeJSON(*v)
	}
	return _u
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (_u *LogRowUpdate) ClearCascadeJSON() *LogRowUpdate {
	_u.mutation.ClearCascadeJSON()
	return _u
}

// SetPhaseName sets the "phase_name" field.
func (_u *LogRowUpdate) SetPhaseName(v string) *LogRowUpdate {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillablePhaseName(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// ClearPhaseName clears the value of the "phase_name" field.
func (_u *LogRowUpdate) ClearPhaseName() *LogRowUpdate {
	_u.mutation.ClearPhaseName()
	return _u
}

// SetPhaseJSON sets the "phase_json" field.
func (_u *LogRowUpdate) SetPhaseJSON(v string) *LogRowUpdate {
	_u.mutation.SetPhaseJSON(v)
	return _u
}

// SetNillablePhaseJSON sets the "phase_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillablePhaseJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetPhaseJSON(*v)
	}
	return _u
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (_u *LogRowUpdate) ClearPhaseJSON() *LogRowUpdate {
	_u.mutation.ClearPhaseJSON()
	return _u
}

// SetModel sets the "model" field.
func (_u *LogRowUpdate) SetModel(v string) *LogRowUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableModel(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LogRowUpdate) ClearModel() *LogRowUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetModelRequested sets the "model_requested" field.
func (_u *LogRowUpdate) SetModelRequested(v string) *LogRowUpdate {
	_u.mutation.SetModelRequested(v)
	return _u
}

// SetNillableModelRequested sets the "model_requested" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableModelRequested(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetModelRequested(*v)
	}
	return _u
}

// ClearModelRequested clears the value of the "model_requested" field.
func (_u *LogRowUpdate) ClearModelRequested() *LogRowUpdate {
	_u.mutation.ClearModelRequested()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *LogRowUpdate) SetRequestID(v string) *LogRowUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableRequestID(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *LogRowUpdate) ClearRequestID() *LogRowUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LogRowUpdate) SetProvider(v string) *LogRowUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableProvider(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *LogRowUpdate) ClearProvider() *LogRowUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LogRowUpdate) SetDurationMs(v int) *LogRowUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableDurationMs(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LogRowUpdate) AddDurationMs(v int) *LogRowUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LogRowUpdate) ClearDurationMs() *LogRowUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *LogRowUpdate) SetTokensIn(v int) *LogRowUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableTokensIn(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *LogRowUpdate) AddTokensIn(v int) *LogRowUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (_u *LogRowUpdate) ClearTokensIn() *LogRowUpdate {
	_u.mutation.ClearTokensIn()
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *LogRowUpdate) SetTokensOut(v int) *LogRowUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableTokensOut(v *int) *LogRowUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *LogRowUpdate) AddTokensOut(v int) *LogRowUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (_u *LogRowUpdate) ClearTokensOut() *LogRowUpdate {
	_u.mutation.ClearTokensOut()
	return _u
}

// SetCost sets the "cost" field.
func (_u *LogRowUpdate) SetCost(v float64) *LogRowUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableCost(v *float64) *LogRowUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *LogRowUpdate) AddCost(v float64) *LogRowUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *LogRowUpdate) ClearCost() *LogRowUpdate {
	_u.mutation.ClearCost()
	return _u
}

// SetContentJSON sets the "content_json" field.
func (_u *LogRowUpdate) SetContentJSON(v string) *LogRowUpdate {
	_u.mutation.SetContentJSON(v)
	return _u
}

// SetNillableContentJSON sets the "content_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableContentJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetContentJSON(*v)
	}
	return _u
}

// ClearContentJSON clears the value of the "content_json" field.
func (_u *LogRowUpdate) ClearContentJSON() *LogRowUpdate {
	_u.mutation.ClearContentJSON()
	return _u
}

// SetFullRequestJSON sets the "full_request_json" field.
func (_u *LogRowUpdate) SetFullRequestJSON(v string) *LogRowUpdate {
	_u.mutation.SetFullRequestJSON(v)
	return _u
}

// SetNillableFullRequestJSON sets the "full_request_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableFullRequestJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetFullRequestJSON(*v)
	}
	return _u
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (_u *LogRowUpdate) ClearFullRequestJSON() *LogRowUpdate {
	_u.mutation.ClearFullRequestJSON()
	return _u
}

// SetFullResponseJSON sets the "full_response_json" field.
func (_u *LogRowUpdate) SetFullResponseJSON(v string) *LogRowUpdate {
	_u.mutation.SetFullResponseJSON(v)
	return _u
}

// SetNillableFullResponseJSON sets the "full_response_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableFullResponseJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetFullResponseJSON(*v)
	}
	return _u
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (_u *LogRowUpdate) ClearFullResponseJSON() *LogRowUpdate {
	_u.mutation.ClearFullResponseJSON()
	return _u
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (_u *LogRowUpdate) SetToolCallsJSON(v string) *LogRowUpdate {
	_u.mutation.SetToolCallsJSON(v)
	return _u
}

// SetNillableToolCallsJSON sets the "tool_calls_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableToolCallsJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetToolCallsJSON(*v)
	}
	return _u
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (_u *LogRowUpdate) ClearToolCallsJSON() *LogRowUpdate {
	_u.mutation.ClearToolCallsJSON()
	return _u
}

// SetImagesJSON sets the "images_json" field.
func (_u *LogRowUpdate) SetImagesJSON(v string) *LogRowUpdate {
	_u.mutation.SetImagesJSON(v)
	return _u
}

// SetNillableImagesJSON sets the "images_json" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableImagesJSON(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetImagesJSON(*v)
	}
	return _u
}

// ClearImagesJSON clears the value of the "images_json" field.
func (_u *LogRowUpdate) ClearImagesJSON() *LogRowUpdate {
	_u.mutation.ClearImagesJSON()
	return _u
}

// SetHasImages sets the "has_images" field.
func (_u *LogRowUpdate) SetHasImages(v bool) *LogRowUpdate {
	_u.mutation.SetHasImages(v)
	return _u
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableHasImages(v *bool) *LogRowUpdate {
	if v != nil {
		_u.SetHasImages(*v)
	}
	return _u
}

// SetHasBase64 sets the "has_base64" field.
func (_u *LogRowUpdate) SetHasBase64(v bool) *LogRowUpdate {
	_u.mutation.SetHasBase64(v)
	return _u
}

// SetNillableHasBase64 sets the "has_base64" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableHasBase64(v *bool) *LogRowUpdate {
	if v != nil {
		_u.SetHasBase64(*v)
	}
	return _u
}

// SetSemanticActor sets the "semantic_actor" field.
func (_u *LogRowUpdate) SetSemanticActor(v logrow.SemanticActor) *LogRowUpdate {
	_u.mutation.SetSemanticActor(v)
	return _u
}

// SetNillableSemanticActor sets the "semantic_actor" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableSemanticActor(v *logrow.SemanticActor) *LogRowUpdate {
	if v != nil {
		_u.SetSemanticActor(*v)
	}
	return _u
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (_u *LogRowUpdate) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowUpdate {
	_u.mutation.SetSemanticPurpose(v)
	return _u
}

// SetNillableSemanticPurpose sets the "semantic_purpose" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableSemanticPurpose(v *logrow.SemanticPurpose) *LogRowUpdate {
	if v != nil {
		_u.SetSemanticPurpose(*v)
	}
	return _u
}

// SetIsCallout sets the "is_callout" field.
func (_u *LogRowUpdate) SetIsCallout(v bool) *LogRowUpdate {
	_u.mutation.SetIsCallout(v)
	return _u
}

// SetNillableIsCallout sets the "is_callout" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableIsCallout(v *bool) *LogRowUpdate {
	if v != nil {
		_u.SetIsCallout(*v)
	}
	return _u
}

// SetCalloutName sets the "callout_name" field.
func (_u *LogRowUpdate) SetCalloutName(v string) *LogRowUpdate {
	_u.mutation.SetCalloutName(v)
	return _u
}

// SetNillableCalloutName sets the "callout_name" field if the given value is not nil.
func (_u *LogRowUpdate) SetNillableCalloutName(v *string) *LogRowUpdate {
	if v != nil {
		_u.SetCalloutName(*v)
	}
	return _u
}

// ClearCalloutName clears the value of the "callout_name" field.
func (_u *LogRowUpdate) ClearCalloutName() *LogRowUpdate {
	_u.mutation.ClearCalloutName()
	return _u
}

// SetRowMetadata sets the "row_metadata" field.
func (_u *LogRowUpdate) SetRowMetadata(v map[string]interface{}) *LogRowUpdate {
	_u.mutation.SetRowMetadata(v)
	return _u
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (_u *LogRowUpdate) ClearRowMetadata() *LogRowUpdate {
	_u.mutation.ClearRowMetadata()
	return _u
}

// Mutation returns the LogRowMutation object of the builder.
func (_u *LogRowUpdate) Mutation() *LogRowMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LogRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LogRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogRowUpdate) check() error {
	if v, ok := _u.mutation.SemanticActor(); ok {
		if err := logrow.SemanticActorValidator(v); err != nil {
			return &ValidationError{Name: "semantic_actor", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SemanticPurpose(); ok {
		if err := logrow.SemanticPurposeValidator(v); err != nil {
			return &ValidationError{Name: "semantic_purpose", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_purpose": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogRow.session"`)
	}
	return nil
}

func (_u *LogRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logrow.Table, logrow.Columns, sqlgraph.NewFieldSpec(logrow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(logrow.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(logrow.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(logrow.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(logrow.FieldParentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentMessageID(); ok {
		_spec.SetField(logrow.FieldParentMessageID, field.TypeString, value)
	}
	if _u.mutation.ParentMessageIDCleared() {
		_spec.ClearField(logrow.FieldParentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(logrow.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(logrow.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(logrow.FieldNodeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(logrow.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(logrow.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingIndex(); ok {
		_spec.SetField(logrow.FieldSoundingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSoundingIndex(); ok {
		_spec.AddField(logrow.FieldSoundingIndex, field.TypeInt, value)
	}
	if _u.mutation.SoundingIndexCleared() {
		_spec.ClearField(logrow.FieldSoundingIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(logrow.FieldIsWinner, field.TypeBool, value)
	}
	if _u.mutation.IsWinnerCleared() {
		_spec.ClearField(logrow.FieldIsWinner, field.TypeBool)
	}
	if value, ok := _u.mutation.ReforgeStep(); ok {
		_spec.SetField(logrow.FieldReforgeStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReforgeStep(); ok {
		_spec.AddField(logrow.FieldReforgeStep, field.TypeInt, value)
	}
	if _u.mutation.ReforgeStepCleared() {
		_spec.ClearField(logrow.FieldReforgeStep, field.TypeInt)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(logrow.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(logrow.FieldAttemptNumber, field.TypeInt, value)
	}
	if _u.mutation.AttemptNumberCleared() {
		_spec.ClearField(logrow.FieldAttemptNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.TurnNumber(); ok {
		_spec.SetField(logrow.FieldTurnNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnNumber(); ok {
		_spec.AddField(logrow.FieldTurnNumber, field.TypeInt, value)
	}
	if _u.mutation.TurnNumberCleared() {
		_spec.ClearField(logrow.FieldTurnNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.MutationApplied(); ok {
		_spec.SetField(logrow.FieldMutationApplied, field.TypeBool, value)
	}
	if _u.mutation.MutationAppliedCleared() {
		_spec.ClearField(logrow.FieldMutationApplied, field.TypeBool)
	}
	if value, ok := _u.mutation.MutationType(); ok {
		_spec.SetField(logrow.FieldMutationType, field.TypeString, value)
	}
	if _u.mutation.MutationTypeCleared() {
		_spec.ClearField(logrow.FieldMutationType, field.TypeString)
	}
	if value, ok := _u.mutation.MutationTemplate(); ok {
		_spec.SetField(logrow.FieldMutationTemplate, field.TypeString, value)
	}
	if _u.mutation.MutationTemplateCleared() {
		_spec.ClearField(logrow.FieldMutationTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.SpeciesHash(); ok {
		_spec.SetField(logrow.FieldSpeciesHash, field.TypeString, value)
	}
	if _u.mutation.SpeciesHashCleared() {
		_spec.ClearField(logrow.FieldSpeciesHash, field.TypeString)
	}
	if value, ok := _u.mutation.CascadeID(); ok {
		_spec.SetField(logrow.FieldCascadeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CascadeFile(); ok {
		_spec.SetField(logrow.FieldCascadeFile, field.TypeString, value)
	}
	if _u.mutation.CascadeFileCleared() {
		_spec.ClearField(logrow.FieldCascadeFile, field.TypeString)
	}
	if value, ok := _u.mutation.CascadeJSON(); ok {
		_spec.SetField(logrow.FieldCascadeJSON, field.TypeString, value)
	}
	if _u.mutation.CascadeJSONCleared() {
		_spec.ClearField(logrow.FieldCascadeJSON, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(logrow.FieldPhaseName, field.TypeString, value)
	}
	if _u.mutation.PhaseNameCleared() {
		_spec.ClearField(logrow.FieldPhaseName, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseJSON(); ok {
		_spec.SetField(logrow.FieldPhaseJSON, field.TypeString, value)
	}
	if _u.mutation.PhaseJSONCleared() {
		_spec.ClearField(logrow.FieldPhaseJSON, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(logrow.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(logrow.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ModelRequested(); ok {
		_spec.SetField(logrow.FieldModelRequested, field.TypeString, value)
	}
	if _u.mutation.ModelRequestedCleared() {
		_spec.ClearField(logrow.FieldModelRequested, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(logrow.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(logrow.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(logrow.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(logrow.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(logrow.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(logrow.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(logrow.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(logrow.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(logrow.FieldTokensIn, field.TypeInt, value)
	}
	if _u.mutation.TokensInCleared() {
		_spec.ClearField(logrow.FieldTokensIn, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(logrow.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(logrow.FieldTokensOut, field.TypeInt, value)
	}
	if _u.mutation.TokensOutCleared() {
		_spec.ClearField(logrow.FieldTokensOut, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(logrow.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(logrow.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(logrow.FieldCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentJSON(); ok {
		_spec.SetField(logrow.FieldContentJSON, field.TypeString, value)
	}
	if _u.mutation.ContentJSONCleared() {
		_spec.ClearField(logrow.FieldContentJSON, field.TypeString)
	}
	if value, ok := _u.mutation.FullRequestJSON(); ok {
		_spec.SetField(logrow.FieldFullRequestJSON, field.TypeString, value)
	}
	if _u.mutation.FullRequestJSONCleared() {
		_spec.ClearField(logrow.FieldFullRequestJSON, field.TypeString)
	}
	if value, ok := _u.mutation.FullResponseJSON(); ok {
		_spec.SetField(logrow.FieldFullResponseJSON, field.TypeString, value)
	}
	if _u.mutation.FullResponseJSONCleared() {
		_spec.ClearField(logrow.FieldFullResponseJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallsJSON(); ok {
		_spec.SetField(logrow.FieldToolCallsJSON, field.TypeString, value)
	}
	if _u.mutation.ToolCallsJSONCleared() {
		_spec.ClearField(logrow.FieldToolCallsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesJSON(); ok {
		_spec.SetField(logrow.FieldImagesJSON, field.TypeString, value)
	}
	if _u.mutation.ImagesJSONCleared() {
		_spec.ClearField(logrow.FieldImagesJSON, field.TypeString)
	}
	if value, ok := _u.mutation.HasImages(); ok {
		_spec.SetField(logrow.FieldHasImages, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasBase64(); ok {
		_spec.SetField(logrow.FieldHasBase64, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SemanticActor(); ok {
		_spec.SetField(logrow.FieldSemanticActor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SemanticPurpose(); ok {
		_spec.SetField(logrow.FieldSemanticPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsCallout(); ok {
		_spec.SetField(logrow.FieldIsCallout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CalloutName(); ok {
		_spec.SetField(logrow.FieldCalloutName, field.TypeString, value)
	}
	if _u.mutation.CalloutNameCleared() {
		_spec.ClearField(logrow.FieldCalloutName, field.TypeString)
	}
	if value, ok := _u.mutation.RowMetadata(); ok {
		_spec.SetField(logrow.FieldRowMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RowMetadataCleared() {
		_spec.ClearField(logrow.FieldRowMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LogRowUpdateOne is the builder for updating a single LogRow entity.
type LogRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LogRowMutation
}

// SetTimestamp sets the "timestamp" field.
func (_u *LogRowUpdateOne) SetTimestamp(v time.Time) *LogRowUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableTimestamp(v *time.Time) *LogRowUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *LogRowUpdateOne) SetParentSessionID(v string) *LogRowUpdateOne {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableParentSessionID(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *LogRowUpdateOne) ClearParentSessionID() *LogRowUpdateOne {
	_u.mutation.ClearParentSessionID()
	return _u
}

// SetParentMessageID sets the "parent_message_id" field.
func (_u *LogRowUpdateOne) SetParentMessageID(v string) *LogRowUpdateOne {
	_u.mutation.SetParentMessageID(v)
	return _u
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableParentMessageID(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetParentMessageID(*v)
	}
	return _u
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (_u *LogRowUpdateOne) ClearParentMessageID() *LogRowUpdateOne {
	_u.mutation.ClearParentMessageID()
	return _u
}

// SetDepth sets the "depth" field.
func (_u *LogRowUpdateOne) SetDepth(v int) *LogRowUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableDepth(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *LogRowUpdateOne) AddDepth(v int) *LogRowUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *LogRowUpdateOne) SetNodeType(v string) *LogRowUpdateOne {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableNodeType(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *LogRowUpdateOne) SetRole(v string) *LogRowUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableRole(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *LogRowUpdateOne) ClearRole() *LogRowUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSoundingIndex sets the "sounding_index" field.
func (_u *LogRowUpdateOne) SetSoundingIndex(v int) *LogRowUpdateOne {
	_u.mutation.ResetSoundingIndex()
	_u.mutation.SetSoundingIndex(v)
	return _u
}

// SetNillableSoundingIndex sets the "sounding_index" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableSoundingIndex(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetSoundingIndex(*v)
	}
	return _u
}

// AddSoundingIndex adds value to the "sounding_index" field.
func (_u *LogRowUpdateOne) AddSoundingIndex(v int) *LogRowUpdateOne {
	_u.mutation.AddSoundingIndex(v)
	return _u
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (_u *LogRowUpdateOne) ClearSoundingIndex() *LogRowUpdateOne {
	_u.mutation.ClearSoundingIndex()
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *LogRowUpdateOne) SetIsWinner(v bool) *LogRowUpdateOne {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableIsWinner(v *bool) *LogRowUpdateOne {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// ClearIsWinner clears the value of the "is_winner" field.
func (_u *LogRowUpdateOne) ClearIsWinner() *LogRowUpdateOne {
	_u.mutation.ClearIsWinner()
	return _u
}

// SetReforgeStep sets the "reforge_step" field.
func (_u *LogRowUpdateOne) SetReforgeStep(v int) *LogRowUpdateOne {
	_u.mutation.ResetReforgeStep()
	_u.mutation.SetReforgeStep(v)
	return _u
}

// SetNillableReforgeStep sets the "reforge_step" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableReforgeStep(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetReforgeStep(*v)
	}
	return _u
}

// AddReforgeStep adds value to the "reforge_step" field.
func (_u *LogRowUpdateOne) AddReforgeStep(v int) *LogRowUpdateOne {
	_u.mutation.AddReforgeStep(v)
	return _u
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (_u *LogRowUpdateOne) ClearReforgeStep() *LogRowUpdateOne {
	_u.mutation.ClearReforgeStep()
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *LogRowUpdateOne) SetAttemptNumber(v int) *LogRowUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableAttemptNumber(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *LogRowUpdateOne) AddAttemptNumber(v int) *LogRowUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (_u *LogRowUpdateOne) ClearAttemptNumber() *LogRowUpdateOne {
	_u.mutation.ClearAttemptNumber()
	return _u
}

// SetTurnNumber sets the "turn_number" field.
func (_u *LogRowUpdateOne) SetTurnNumber(v int) *LogRowUpdateOne {
	_u.mutation.ResetTurnNumber()
	_u.mutation.SetTurnNumber(v)
	return _u
}

// SetNillableTurnNumber sets the "turn_number" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableTurnNumber(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetTurnNumber(*v)
	}
	return _u
}

// AddTurnNumber adds value to the "turn_number" field.
func (_u *LogRowUpdateOne) AddTurnNumber(v int) *LogRowUpdateOne {
	_u.mutation.AddTurnNumber(v)
	return _u
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (_u *LogRowUpdateOne) ClearTurnNumber() *LogRowUpdateOne {
	_u.mutation.ClearTurnNumber()
	return _u
}

// SetMutationApplied sets the "mutation_applied" field.
func (_u *LogRowUpdateOne) SetMutationApplied(v bool) *LogRowUpdateOne {
	_u.mutation.SetMutationApplied(v)
	return _u
}

// SetNillableMutationApplied sets the "mutation_applied" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableMutationApplied(v *bool) *LogRowUpdateOne {
	if v != nil {
		_u.SetMutationApplied(*v)
	}
	return _u
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (_u *LogRowUpdateOne) ClearMutationApplied() *LogRowUpdateOne {
	_u.mutation.ClearMutationApplied()
	return _u
}

// SetMutationType sets the "mutation_type" field.
func (_u *LogRowUpdateOne) SetMutationType(v string) *LogRowUpdateOne {
	_u.mutation.SetMutationType(v)
	return _u
}

// SetNillableMutationType sets the "mutation_type" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableMutationType(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetMutationType(*v)
	}
	return _u
}

// ClearMutationType clears the value of the "mutation_type" field.
func (_u *LogRowUpdateOne) ClearMutationType() *LogRowUpdateOne {
	_u.mutation.ClearMutationType()
	return _u
}

// SetMutationTemplate sets the "mutation_template" field.
func (_u *LogRowUpdateOne) SetMutationTemplate(v string) *LogRowUpdateOne {
	_u.mutation.SetMutationTemplate(v)
	return _u
}

// SetNillableMutationTemplate sets the "mutation_template" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableMutationTemplate(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetMutationTemplate(*v)
	}
	return _u
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (_u *LogRowUpdateOne) ClearMutationTemplate() *LogRowUpdateOne {
	_u.mutation.ClearMutationTemplate()
	return _u
}

// SetSpeciesHash sets the "species_hash" field.
func (_u *LogRowUpdateOne) SetSpeciesHash(v string) *LogRowUpdateOne {
	_u.mutation.SetSpeciesHash(v)
	return _u
}

// SetNillableSpeciesHash sets the "species_hash" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableSpeciesHash(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetSpeciesHash(*v)
	}
	return _u
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (_u *LogRowUpdateOne) ClearSpeciesHash() *LogRowUpdateOne {
	_u.mutation.ClearSpeciesHash()
	return _u
}

// SetCascadeID sets the "cascade_id" field.
func (_u *LogRowUpdateOne) SetCascadeID(v string) *LogRowUpdateOne {
	_u.mutation.SetCascadeID(v)
	return _u
}

// SetNillableCascadeID sets the "cascade_id" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableCascadeID(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetCascadeID(*v)
	}
	return _u
}

// SetCascadeFile sets the "cascade_file" field.
func (_u *LogRowUpdateOne) SetCascadeFile(v string) *LogRowUpdateOne {
	_u.mutation.SetCascadeFile(v)
	return _u
}

// SetNillableCascadeFile sets the "cascade_file" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableCascadeFile(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetCascadeFile(*v)
	}
	return _u
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (_u *LogRowUpdateOne) ClearCascadeFile() *LogRowUpdateOne {
	_u.mutation.ClearCascadeFile()
	return _u
}

// SetCascadeJSON sets the "cascade_json" field.
func (_u *LogRowUpdateOne) SetCascadeJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetCascadeJSON(v)
	return _u
}

// SetNillableCascadeJSON sets the "cascade_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableCascadeJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetCascadeJSON(*v)
	}
	return _u
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (_u *LogRowUpdateOne) ClearCascadeJSON() *LogRowUpdateOne {
	_u.mutation.ClearCascadeJSON()
	return _u
}

// SetPhaseName sets the "phase_name" field.
func (_u *LogRowUpdateOne) SetPhaseName(v string) *LogRowUpdateOne {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillablePhaseName(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// ClearPhaseName clears the value of the "phase_name" field.
func (_u *LogRowUpdateOne) ClearPhaseName() *LogRowUpdateOne {
	_u.mutation.ClearPhaseName()
	return _u
}

// SetPhaseJSON sets the "phase_json" field.
func (_u *LogRowUpdateOne) SetPhaseJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetPhaseJSON(v)
	return _u
}

// SetNillablePhaseJSON sets the "phase_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillablePhaseJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetPhaseJSON(*v)
	}
	return _u
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (_u *LogRowUpdateOne) ClearPhaseJSON() *LogRowUpdateOne {
	_u.mutation.ClearPhaseJSON()
	return _u
}

// SetModel sets the "model" field.
func (_u *LogRowUpdateOne) SetModel(v string) *LogRowUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableModel(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *LogRowUpdateOne) ClearModel() *LogRowUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetModelRequested sets the "model_requested" field.
func (_u *LogRowUpdateOne) SetModelRequested(v string) *LogRowUpdateOne {
	_u.mutation.SetModelRequested(v)
	return _u
}

// SetNillableModelRequested sets the "model_requested" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableModelRequested(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetModelRequested(*v)
	}
	return _u
}

// ClearModelRequested clears the value of the "model_requested" field.
func (_u *LogRowUpdateOne) ClearModelRequested() *LogRowUpdateOne {
	_u.mutation.ClearModelRequested()
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *LogRowUpdateOne) SetRequestID(v string) *LogRowUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableRequestID(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *LogRowUpdateOne) ClearRequestID() *LogRowUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LogRowUpdateOne) SetProvider(v string) *LogRowUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableProvider(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *LogRowUpdateOne) ClearProvider() *LogRowUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LogRowUpdateOne) SetDurationMs(v int) *LogRowUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableDurationMs(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LogRowUpdateOne) AddDurationMs(v int) *LogRowUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LogRowUpdateOne) ClearDurationMs() *LogRowUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *LogRowUpdateOne) SetTokensIn(v int) *LogRowUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableTokensIn(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *LogRowUpdateOne) AddTokensIn(v int) *LogRowUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (_u *LogRowUpdateOne) ClearTokensIn() *LogRowUpdateOne {
	_u.mutation.ClearTokensIn()
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *LogRowUpdateOne) SetTokensOut(v int) *LogRowUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableTokensOut(v *int) *LogRowUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *LogRowUpdateOne) AddTokensOut(v int) *LogRowUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (_u *LogRowUpdateOne) ClearTokensOut() *LogRowUpdateOne {
	_u.mutation.ClearTokensOut()
	return _u
}

// SetCost sets the "cost" field.
func (_u *LogRowUpdateOne) SetCost(v float64) *LogRowUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableCost(v *float64) *LogRowUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *LogRowUpdateOne) AddCost(v float64) *LogRowUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *LogRowUpdateOne) ClearCost() *LogRowUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// SetContentJSON sets the "content_json" field.
func (_u *LogRowUpdateOne) SetContentJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetContentJSON(v)
	return _u
}

// SetNillableContentJSON sets the "content_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableContentJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetContentJSON(*v)
	}
	return _u
}

// ClearContentJSON clears the value of the "content_json" field.
func (_u *LogRowUpdateOne) ClearContentJSON() *LogRowUpdateOne {
	_u.mutation.ClearContentJSON()
	return _u
}

// SetFullRequestJSON sets the "full_request_json" field.
func (_u *LogRowUpdateOne) SetFullRequestJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetFullRequestJSON(v)
	return _u
}

// SetNillableFullRequestJSON sets the "full_request_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableFullRequestJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetFullRequestJSON(*v)
	}
	return _u
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (_u *LogRowUpdateOne) ClearFullRequestJSON() *LogRowUpdateOne {
	_u.mutation.ClearFullRequestJSON()
	return _u
}

// SetFullResponseJSON sets the "full_response_json" field.
func (_u *LogRowUpdateOne) SetFullResponseJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetFullResponseJSON(v)
	return _u
}

// SetNillableFullResponseJSON sets the "full_response_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableFullResponseJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetFullResponseJSON(*v)
	}
	return _u
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (_u *LogRowUpdateOne) ClearFullResponseJSON() *LogRowUpdateOne {
	_u.mutation.ClearFullResponseJSON()
	return _u
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (_u *LogRowUpdateOne) SetToolCallsJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetToolCallsJSON(v)
	return _u
}

// SetNillableToolCallsJSON sets the "tool_calls_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableToolCallsJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetToolCallsJSON(*v)
	}
	return _u
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (_u *LogRowUpdateOne) ClearToolCallsJSON() *LogRowUpdateOne {
	_u.mutation.ClearToolCallsJSON()
	return _u
}

// SetImagesJSON sets the "images_json" field.
func (_u *LogRowUpdateOne) SetImagesJSON(v string) *LogRowUpdateOne {
	_u.mutation.SetImagesJSON(v)
	return _u
}

// SetNillableImagesJSON sets the "images_json" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableImagesJSON(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetImagesJSON(*v)
	}
	return _u
}

// ClearImagesJSON clears the value of the "images_json" field.
func (_u *LogRowUpdateOne) ClearImagesJSON() *LogRowUpdateOne {
	_u.mutation.ClearImagesJSON()
	return _u
}

// SetHasImages sets the "has_images" field.
func (_u *LogRowUpdateOne) SetHasImages(v bool) *LogRowUpdateOne {
	_u.mutation.SetHasImages(v)
	return _u
}

// SetNillableHasImages sets the "has_images" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableHasImages(v *bool) *LogRowUpdateOne {
	if v != nil {
		_u.SetHasImages(*v)
	}
	return _u
}

// SetHasBase64 sets the "has_base64" field.
func (_u *LogRowUpdateOne) SetHasBase64(v bool) *LogRowUpdateOne {
	_u.mutation.SetHasBase64(v)
	return _u
}

// SetNillableHasBase64 sets the "has_base64" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableHasBase64(v *bool) *LogRowUpdateOne {
	if v != nil {
		_u.SetHasBase64(*v)
	}
	return _u
}

// SetSemanticActor sets the "semantic_actor" field.
func (_u *LogRowUpdateOne) SetSemanticActor(v logrow.SemanticActor) *LogRowUpdateOne {
	_u.mutation.SetSemanticActor(v)
	return _u
}

// SetNillableSemanticActor sets the "semantic_actor" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableSemanticActor(v *logrow.SemanticActor) *LogRowUpdateOne {
	if v != nil {
		_u.SetSemanticActor(*v)
	}
	return _u
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (_u *LogRowUpdateOne) SetSemanticPurpose(v logrow.SemanticPurpose) *LogRowUpdateOne {
	_u.mutation.SetSemanticPurpose(v)
	return _u
}

// SetNillableSemanticPurpose sets the "semantic_purpose" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableSemanticPurpose(v *logrow.SemanticPurpose) *LogRowUpdateOne {
	if v != nil {
		_u.SetSemanticPurpose(*v)
	}
	return _u
}

// SetIsCallout sets the "is_callout" field.
func (_u *LogRowUpdateOne) SetIsCallout(v bool) *LogRowUpdateOne {
	_u.mutation.SetIsCallout(v)
	return _u
}

// SetNillableIsCallout sets the "is_callout" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableIsCallout(v *bool) *LogRowUpdateOne {
	if v != nil {
		_u.SetIsCallout(*v)
	}
	return _u
}

// SetCalloutName sets the "callout_name" field.
func (_u *LogRowUpdateOne) SetCalloutName(v string) *LogRowUpdateOne {
	_u.mutation.SetCalloutName(v)
	return _u
}

// SetNillableCalloutName sets the "callout_name" field if the given value is not nil.
func (_u *LogRowUpdateOne) SetNillableCalloutName(v *string) *LogRowUpdateOne {
	if v != nil {
		_u.SetCalloutName(*v)
	}
	return _u
}

// ClearCalloutName clears the value of the "callout_name" field.
func (_u *LogRowUpdateOne) ClearCalloutName() *LogRowUpdateOne {
	_u.mutation.ClearCalloutName()
	return _u
}

// SetRowMetadata sets the "row_metadata" field.
func (_u *LogRowUpdateOne) SetRowMetadata(v map[string]interface{}) *LogRowUpdateOne {
	_u.mutation.SetRowMetadata(v)
	return _u
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (_u *LogRowUpdateOne) ClearRowMetadata() *LogRowUpdateOne {
	_u.mutation.ClearRowMetadata()
	return _u
}

// Mutation returns the LogRowMutation object of the builder.
func (_u *LogRowUpdateOne) Mutation() *LogRowMutation {
	return _u.mutation
}

// Where appends a list predicates to the LogRowUpdate builder.
func (_u *LogRowUpdateOne) Where(ps ...predicate.LogRow) *LogRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LogRowUpdateOne) Select(field string, fields ...string) *LogRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LogRow entity.
func (_u *LogRowUpdateOne) Save(ctx context.Context) (*LogRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LogRowUpdateOne) SaveX(ctx context.Context) *LogRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LogRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LogRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LogRowUpdateOne) check() error {
	if v, ok := _u.mutation.SemanticActor(); ok {
		if err := logrow.SemanticActorValidator(v); err != nil {
			return &ValidationError{Name: "semantic_actor", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SemanticPurpose(); ok {
		if err := logrow.SemanticPurposeValidator(v); err != nil {
			return &ValidationError{Name: "semantic_purpose", err: fmt.Errorf(`ent: validator failed for field "LogRow.semantic_purpose": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LogRow.session"`)
	}
	return nil
}

func (_u *LogRowUpdateOne) sqlSave(ctx context.Context) (_node *LogRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(logrow.Table, logrow.Columns, sqlgraph.NewFieldSpec(logrow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LogRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, logrow.FieldID)
		for _, f := range fields {
			if !logrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != logrow.FieldID {
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
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(logrow.FieldTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(logrow.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(logrow.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(logrow.FieldParentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentMessageID(); ok {
		_spec.SetField(logrow.FieldParentMessageID, field.TypeString, value)
	}
	if _u.mutation.ParentMessageIDCleared() {
		_spec.ClearField(logrow.FieldParentMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(logrow.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(logrow.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(logrow.FieldNodeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(logrow.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(logrow.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.SoundingIndex(); ok {
		_spec.SetField(logrow.FieldSoundingIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSoundingIndex(); ok {
		_spec.AddField(logrow.FieldSoundingIndex, field.TypeInt, value)
	}
	if _u.mutation.SoundingIndexCleared() {
		_spec.ClearField(logrow.FieldSoundingIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(logrow.FieldIsWinner, field.TypeBool, value)
	}
	if _u.mutation.IsWinnerCleared() {
		_spec.ClearField(logrow.FieldIsWinner, field.TypeBool)
	}
	if value, ok := _u.mutation.ReforgeStep(); ok {
		_spec.SetField(logrow.FieldReforgeStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReforgeStep(); ok {
		_spec.AddField(logrow.FieldReforgeStep, field.TypeInt, value)
	}
	if _u.mutation.ReforgeStepCleared() {
		_spec.ClearField(logrow.FieldReforgeStep, field.TypeInt)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(logrow.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(logrow.FieldAttemptNumber, field.TypeInt, value)
	}
	if _u.mutation.AttemptNumberCleared() {
		_spec.ClearField(logrow.FieldAttemptNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.TurnNumber(); ok {
		_spec.SetField(logrow.FieldTurnNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnNumber(); ok {
		_spec.AddField(logrow.FieldTurnNumber, field.TypeInt, value)
	}
	if _u.mutation.TurnNumberCleared() {
		_spec.ClearField(logrow.FieldTurnNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.MutationApplied(); ok {
		_spec.SetField(logrow.FieldMutationApplied, field.TypeBool, value)
	}
	if _u.mutation.MutationAppliedCleared() {
		_spec.ClearField(logrow.FieldMutationApplied, field.TypeBool)
	}
	if value, ok := _u.mutation.MutationType(); ok {
		_spec.SetField(logrow.FieldMutationType, field.TypeString, value)
	}
	if _u.mutation.MutationTypeCleared() {
		_spec.ClearField(logrow.FieldMutationType, field.TypeString)
	}
	if value, ok := _u.mutation.MutationTemplate(); ok {
		_spec.SetField(logrow.FieldMutationTemplate, field.TypeString, value)
	}
	if _u.mutation.MutationTemplateCleared() {
		_spec.ClearField(logrow.FieldMutationTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.SpeciesHash(); ok {
		_spec.SetField(logrow.FieldSpeciesHash, field.TypeString, value)
	}
	if _u.mutation.SpeciesHashCleared() {
		_spec.ClearField(logrow.FieldSpeciesHash, field.TypeString)
	}
	if value, ok := _u.mutation.CascadeID(); ok {
		_spec.SetField(logrow.FieldCascadeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CascadeFile(); ok {
		_spec.SetField(logrow.FieldCascadeFile, field.TypeString, value)
	}
	if _u.mutation.CascadeFileCleared() {
		_spec.ClearField(logrow.FieldCascadeFile, field.TypeString)
	}
	if value, ok := _u.mutation.CascadeJSON(); ok {
		_spec.SetField(logrow.FieldCascadeJSON, field.TypeString, value)
	}
	if _u.mutation.CascadeJSONCleared() {
		_spec.ClearField(logrow.FieldCascadeJSON, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(logrow.FieldPhaseName, field.TypeString, value)
	}
	if _u.mutation.PhaseNameCleared() {
		_spec.ClearField(logrow.FieldPhaseName, field.TypeString)
	}
	if value, ok := _u.mutation.PhaseJSON(); ok {
		_spec.SetField(logrow.FieldPhaseJSON, field.TypeString, value)
	}
	if _u.mutation.PhaseJSONCleared() {
		_spec.ClearField(logrow.FieldPhaseJSON, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(logrow.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(logrow.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.ModelRequested(); ok {
		_spec.SetField(logrow.FieldModelRequested, field.TypeString, value)
	}
	if _u.mutation.ModelRequestedCleared() {
		_spec.ClearField(logrow.FieldModelRequested, field.TypeString)
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(logrow.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(logrow.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(logrow.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(logrow.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(logrow.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(logrow.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(logrow.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(logrow.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(logrow.FieldTokensIn, field.TypeInt, value)
	}
	if _u.mutation.TokensInCleared() {
		_spec.ClearField(logrow.FieldTokensIn, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(logrow.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(logrow.FieldTokensOut, field.TypeInt, value)
	}
	if _u.mutation.TokensOutCleared() {
		_spec.ClearField(logrow.FieldTokensOut, field.TypeInt)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(logrow.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(logrow.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(logrow.FieldCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContentJSON(); ok {
		_spec.SetField(logrow.FieldContentJSON, field.TypeString, value)
	}
	if _u.mutation.ContentJSONCleared() {
		_spec.ClearField(logrow.FieldContentJSON, field.TypeString)
	}
	if value, ok := _u.mutation.FullRequestJSON(); ok {
		_spec.SetField(logrow.FieldFullRequestJSON, field.TypeString, value)
	}
	if _u.mutation.FullRequestJSONCleared() {
		_spec.ClearField(logrow.FieldFullRequestJSON, field.TypeString)
	}
	if value, ok := _u.mutation.FullResponseJSON(); ok {
		_spec.SetField(logrow.FieldFullResponseJSON, field.TypeString, value)
	}
	if _u.mutation.FullResponseJSONCleared() {
		_spec.ClearField(logrow.FieldFullResponseJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ToolCallsJSON(); ok {
		_spec.SetField(logrow.FieldToolCallsJSON, field.TypeString, value)
	}
	if _u.mutation.ToolCallsJSONCleared() {
		_spec.ClearField(logrow.FieldToolCallsJSON, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesJSON(); ok {
		_spec.SetField(logrow.FieldImagesJSON, field.TypeString, value)
	}
	if _u.mutation.ImagesJSONCleared() {
		_spec.ClearField(logrow.FieldImagesJSON, field.TypeString)
	}
	if value, ok := _u.mutation.HasImages(); ok {
		_spec.SetField(logrow.FieldHasImages, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasBase64(); ok {
		_spec.SetField(logrow.FieldHasBase64, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SemanticActor(); ok {
		_spec.SetField(logrow.FieldSemanticActor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SemanticPurpose(); ok {
		_spec.SetField(logrow.FieldSemanticPurpose, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsCallout(); ok {
		_spec.SetField(logrow.FieldIsCallout, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CalloutName(); ok {
		_spec.SetField(logrow.FieldCalloutName, field.TypeString, value)
	}
	if _u.mutation.CalloutNameCleared() {
		_spec.ClearField(logrow.FieldCalloutName, field.TypeString)
	}
	if value, ok := _u.mutation.RowMetadata(); ok {
		_spec.SetField(logrow.FieldRowMetadata, field.TypeJSON, value)
	}
	if _u.mutation.RowMetadataCleared() {
		_spec.ClearField(logrow.FieldRowMetadata, field.TypeJSON)
	}
	_node = &LogRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{logrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
