// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/windlassio/windlass/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSessionID, v))
}

// CascadeID applies equality check predicate on the "cascade_id" field. It's identical to CascadeIDEQ.
func CascadeID(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCascadeID, v))
}

// PhaseName applies equality check predicate on the "phase_name" field. It's identical to PhaseNameEQ.
func PhaseName(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseOutput applies equality check predicate on the "phase_output" field. It's identical to PhaseOutputEQ.
func PhaseOutput(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPhaseOutput, v))
}

// SoundingOutputsJSON applies equality check predicate on the "sounding_outputs_json" field. It's identical to SoundingOutputsJSONEQ.
func SoundingOutputsJSON(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSoundingOutputsJSON, v))
}

// SoundingMetadataJSON applies equality check predicate on the "sounding_metadata_json" field. It's identical to SoundingMetadataJSONEQ.
func SoundingMetadataJSON(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSoundingMetadataJSON, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldRespondedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSessionID, v))
}

// CascadeIDEQ applies the EQ predicate on the "cascade_id" field.
func CascadeIDEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCascadeID, v))
}

// CascadeIDNEQ applies the NEQ predicate on the "cascade_id" field.
func CascadeIDNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCascadeID, v))
}

// CascadeIDIn applies the In predicate on the "cascade_id" field.
func CascadeIDIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCascadeID, vs...))
}

// CascadeIDNotIn applies the NotIn predicate on the "cascade_id" field.
func CascadeIDNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCascadeID, vs...))
}

// CascadeIDGT applies the GT predicate on the "cascade_id" field.
func CascadeIDGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCascadeID, v))
}

// CascadeIDGTE applies the GTE predicate on the "cascade_id" field.
func CascadeIDGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCascadeID, v))
}

// CascadeIDLT applies the LT predicate on the "cascade_id" field.
func CascadeIDLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCascadeID, v))
}

// CascadeIDLTE applies the LTE predicate on the "cascade_id" field.
func CascadeIDLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCascadeID, v))
}

// CascadeIDContains applies the Contains predicate on the "cascade_id" field.
func CascadeIDContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldCascadeID, v))
}

// CascadeIDHasPrefix applies the HasPrefix predicate on the "cascade_id" field.
func CascadeIDHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldCascadeID, v))
}

// CascadeIDHasSuffix applies the HasSuffix predicate on the "cascade_id" field.
func CascadeIDHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldCascadeID, v))
}

// CascadeIDEqualFold applies the EqualFold predicate on the "cascade_id" field.
func CascadeIDEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldCascadeID, v))
}

// CascadeIDContainsFold applies the ContainsFold predicate on the "cascade_id" field.
func CascadeIDContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldCascadeID, v))
}

// PhaseNameEQ applies the EQ predicate on the "phase_name" field.
func PhaseNameEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseNameNEQ applies the NEQ predicate on the "phase_name" field.
func PhaseNameNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldPhaseName, v))
}

// PhaseNameIn applies the In predicate on the "phase_name" field.
func PhaseNameIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldPhaseName, vs...))
}

// PhaseNameNotIn applies the NotIn predicate on the "phase_name" field.
func PhaseNameNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldPhaseName, vs...))
}

// PhaseNameGT applies the GT predicate on the "phase_name" field.
func PhaseNameGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldPhaseName, v))
}

// PhaseNameGTE applies the GTE predicate on the "phase_name" field.
func PhaseNameGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldPhaseName, v))
}

// PhaseNameLT applies the LT predicate on the "phase_name" field.
func PhaseNameLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldPhaseName, v))
}

// PhaseNameLTE applies the LTE predicate on the "phase_name" field.
func PhaseNameLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldPhaseName, v))
}

// PhaseNameContains applies the Contains predicate on the "phase_name" field.
func PhaseNameContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldPhaseName, v))
}

// PhaseNameHasPrefix applies the HasPrefix predicate on the "phase_name" field.
func PhaseNameHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldPhaseName, v))
}

// PhaseNameHasSuffix applies the HasSuffix predicate on the "phase_name" field.
func PhaseNameHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldPhaseName, v))
}

// PhaseNameEqualFold applies the EqualFold predicate on the "phase_name" field.
func PhaseNameEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldPhaseName, v))
}

// PhaseNameContainsFold applies the ContainsFold predicate on the "phase_name" field.
func PhaseNameContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldPhaseName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldStatus, vs...))
}

// PhaseOutputEQ applies the EQ predicate on the "phase_output" field.
func PhaseOutputEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldPhaseOutput, v))
}

// PhaseOutputNEQ applies the NEQ predicate on the "phase_output" field.
func PhaseOutputNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldPhaseOutput, v))
}

// PhaseOutputIn applies the In predicate on the "phase_output" field.
func PhaseOutputIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldPhaseOutput, vs...))
}

// PhaseOutputNotIn applies the NotIn predicate on the "phase_output" field.
func PhaseOutputNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldPhaseOutput, vs...))
}

// PhaseOutputGT applies the GT predicate on the "phase_output" field.
func PhaseOutputGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldPhaseOutput, v))
}

// PhaseOutputGTE applies the GTE predicate on the "phase_output" field.
func PhaseOutputGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldPhaseOutput, v))
}

// PhaseOutputLT applies the LT predicate on the "phase_output" field.
func PhaseOutputLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldPhaseOutput, v))
}

// PhaseOutputLTE applies the LTE predicate on the "phase_output" field.
func PhaseOutputLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldPhaseOutput, v))
}

// PhaseOutputContains applies the Contains predicate on the "phase_output" field.
func PhaseOutputContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldPhaseOutput, v))
}

// PhaseOutputHasPrefix applies the HasPrefix predicate on the "phase_output" field.
func PhaseOutputHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldPhaseOutput, v))
}

// PhaseOutputHasSuffix applies the HasSuffix predicate on the "phase_output" field.
func PhaseOutputHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldPhaseOutput, v))
}

// PhaseOutputIsNil applies the IsNil predicate on the "phase_output" field.
func PhaseOutputIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldPhaseOutput))
}

// PhaseOutputNotNil applies the NotNil predicate on the "phase_output" field.
func PhaseOutputNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldPhaseOutput))
}

// PhaseOutputEqualFold applies the EqualFold predicate on the "phase_output" field.
func PhaseOutputEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldPhaseOutput, v))
}

// PhaseOutputContainsFold applies the ContainsFold predicate on the "phase_output" field.
func PhaseOutputContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldPhaseOutput, v))
}

// SoundingOutputsJSONEQ applies the EQ predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONNEQ applies the NEQ predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONIn applies the In predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSoundingOutputsJSON, vs...))
}

// SoundingOutputsJSONNotIn applies the NotIn predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSoundingOutputsJSON, vs...))
}

// SoundingOutputsJSONGT applies the GT predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONGTE applies the GTE predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONLT applies the LT predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONLTE applies the LTE predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONContains applies the Contains predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONHasPrefix applies the HasPrefix predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONHasSuffix applies the HasSuffix predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONIsNil applies the IsNil predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldSoundingOutputsJSON))
}

// SoundingOutputsJSONNotNil applies the NotNil predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldSoundingOutputsJSON))
}

// SoundingOutputsJSONEqualFold applies the EqualFold predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSoundingOutputsJSON, v))
}

// SoundingOutputsJSONContainsFold applies the ContainsFold predicate on the "sounding_outputs_json" field.
func SoundingOutputsJSONContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSoundingOutputsJSON, v))
}

// SoundingMetadataJSONEQ applies the EQ predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONNEQ applies the NEQ predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONNEQ(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONIn applies the In predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldSoundingMetadataJSON, vs...))
}

// SoundingMetadataJSONNotIn applies the NotIn predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONNotIn(vs ...string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldSoundingMetadataJSON, vs...))
}

// SoundingMetadataJSONGT applies the GT predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONGT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONGTE applies the GTE predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONGTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONLT applies the LT predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONLT(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONLTE applies the LTE predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONLTE(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONContains applies the Contains predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONContains(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContains(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONHasPrefix applies the HasPrefix predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONHasPrefix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasPrefix(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONHasSuffix applies the HasSuffix predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONHasSuffix(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldHasSuffix(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONIsNil applies the IsNil predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldSoundingMetadataJSON))
}

// SoundingMetadataJSONNotNil applies the NotNil predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldSoundingMetadataJSON))
}

// SoundingMetadataJSONEqualFold applies the EqualFold predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONEqualFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEqualFold(FieldSoundingMetadataJSON, v))
}

// SoundingMetadataJSONContainsFold applies the ContainsFold predicate on the "sounding_metadata_json" field.
func SoundingMetadataJSONContainsFold(v string) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldContainsFold(FieldSoundingMetadataJSON, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIsNil applies the IsNil predicate on the "timeout_seconds" field.
func TimeoutSecondsIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldTimeoutSeconds))
}

// TimeoutSecondsNotNil applies the NotNil predicate on the "timeout_seconds" field.
func TimeoutSecondsNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldTimeoutSeconds))
}

// TraceContextIsNil applies the IsNil predicate on the "trace_context" field.
func TraceContextIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldTraceContext))
}

// TraceContextNotNil applies the NotNil predicate on the "trace_context" field.
func TraceContextNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldTraceContext))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldResponse))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Checkpoint {
	return predicate.Checkpoint(sql.FieldNotNull(FieldRespondedAt))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.CascadeSession) predicate.Checkpoint {
	return predicate.Checkpoint(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Checkpoint) predicate.Checkpoint {
	return predicate.Checkpoint(sql.NotPredicates(p))
}
