// Code generated by ent, DO NOT EDIT.

package logrow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/windlassio/windlass/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSessionID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTraceID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentID, v))
}

// ParentSessionID applies equality check predicate on the "parent_session_id" field. It's identical to ParentSessionIDEQ.
func ParentSessionID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentSessionID, v))
}

// ParentMessageID applies equality check predicate on the "parent_message_id" field. It's identical to ParentMessageIDEQ.
func ParentMessageID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentMessageID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldDepth, v))
}

// NodeType applies equality check predicate on the "node_type" field. It's identical to NodeTypeEQ.
func NodeType(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldNodeType, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldRole, v))
}

// SoundingIndex applies equality check predicate on the "sounding_index" field. It's identical to SoundingIndexEQ.
func SoundingIndex(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSoundingIndex, v))
}

// IsWinner applies equality check predicate on the "is_winner" field. It's identical to IsWinnerEQ.
func IsWinner(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldIsWinner, v))
}

// ReforgeStep applies equality check predicate on the "reforge_step" field. It's identical to ReforgeStepEQ.
func ReforgeStep(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldReforgeStep, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldAttemptNumber, v))
}

// TurnNumber applies equality check predicate on the "turn_number" field. It's identical to TurnNumberEQ.
func TurnNumber(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTurnNumber, v))
}

// MutationApplied applies equality check predicate on the "mutation_applied" field. It's identical to MutationAppliedEQ.
func MutationApplied(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationApplied, v))
}

// MutationType applies equality check predicate on the "mutation_type" field. It's identical to MutationTypeEQ.
func MutationType(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationType, v))
}

// MutationTemplate applies equality check predicate on the "mutation_template" field. It's identical to MutationTemplateEQ.
func MutationTemplate(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationTemplate, v))
}

// SpeciesHash applies equality check predicate on the "species_hash" field. It's identical to SpeciesHashEQ.
func SpeciesHash(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSpeciesHash, v))
}

// CascadeID applies equality check predicate on the "cascade_id" field. It's identical to CascadeIDEQ.
func CascadeID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeID, v))
}

// CascadeFile applies equality check predicate on the "cascade_file" field. It's identical to CascadeFileEQ.
func CascadeFile(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeFile, v))
}

// CascadeJSON applies equality check predicate on the "cascade_json" field. It's identical to CascadeJSONEQ.
func CascadeJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeJSON, v))
}

// PhaseName applies equality check predicate on the "phase_name" field. It's identical to PhaseNameEQ.
func PhaseName(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseJSON applies equality check predicate on the "phase_json" field. It's identical to PhaseJSONEQ.
func PhaseJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldPhaseJSON, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldModel, v))
}

// ModelRequested applies equality check predicate on the "model_requested" field. It's identical to ModelRequestedEQ.
func ModelRequested(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldModelRequested, v))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldRequestID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldProvider, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldDurationMs, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTokensOut, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCost, v))
}

// ContentJSON applies equality check predicate on the "content_json" field. It's identical to ContentJSONEQ.
func ContentJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldContentJSON, v))
}

// FullRequestJSON applies equality check predicate on the "full_request_json" field. It's identical to FullRequestJSONEQ.
func FullRequestJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldFullRequestJSON, v))
}

// FullResponseJSON applies equality check predicate on the "full_response_json" field. It's identical to FullResponseJSONEQ.
func FullResponseJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldFullResponseJSON, v))
}

// ToolCallsJSON applies equality check predicate on the "tool_calls_json" field. It's identical to ToolCallsJSONEQ.
func ToolCallsJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldToolCallsJSON, v))
}

// ImagesJSON applies equality check predicate on the "images_json" field. It's identical to ImagesJSONEQ.
func ImagesJSON(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldImagesJSON, v))
}

// HasImages applies equality check predicate on the "has_images" field. It's identical to HasImagesEQ.
func HasImages(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldHasImages, v))
}

// HasBase64 applies equality check predicate on the "has_base64" field. It's identical to HasBase64EQ.
func HasBase64(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldHasBase64, v))
}

// IsCallout applies equality check predicate on the "is_callout" field. It's identical to IsCalloutEQ.
func IsCallout(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldIsCallout, v))
}

// CalloutName applies equality check predicate on the "callout_name" field. It's identical to CalloutNameEQ.
func CalloutName(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCalloutName, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldSessionID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldTraceID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldParentID, v))
}

// ParentSessionIDEQ applies the EQ predicate on the "parent_session_id" field.
func ParentSessionIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentSessionID, v))
}

// ParentSessionIDNEQ applies the NEQ predicate on the "parent_session_id" field.
func ParentSessionIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldParentSessionID, v))
}

// ParentSessionIDIn applies the In predicate on the "parent_session_id" field.
func ParentSessionIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldParentSessionID, vs...))
}

// ParentSessionIDNotIn applies the NotIn predicate on the "parent_session_id" field.
func ParentSessionIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldParentSessionID, vs...))
}

// ParentSessionIDGT applies the GT predicate on the "parent_session_id" field.
func ParentSessionIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldParentSessionID, v))
}

// ParentSessionIDGTE applies the GTE predicate on the "parent_session_id" field.
func ParentSessionIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldParentSessionID, v))
}

// ParentSessionIDLT applies the LT predicate on the "parent_session_id" field.
func ParentSessionIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldParentSessionID, v))
}

// ParentSessionIDLTE applies the LTE predicate on the "parent_session_id" field.
func ParentSessionIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldParentSessionID, v))
}

// ParentSessionIDContains applies the Contains predicate on the "parent_session_id" field.
func ParentSessionIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldParentSessionID, v))
}

// ParentSessionIDHasPrefix applies the HasPrefix predicate on the "parent_session_id" field.
func ParentSessionIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldParentSessionID, v))
}

// ParentSessionIDHasSuffix applies the HasSuffix predicate on the "parent_session_id" field.
func ParentSessionIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldParentSessionID, v))
}

// ParentSessionIDIsNil applies the IsNil predicate on the "parent_session_id" field.
func ParentSessionIDIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldParentSessionID))
}

// ParentSessionIDNotNil applies the NotNil predicate on the "parent_session_id" field.
func ParentSessionIDNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldParentSessionID))
}

// ParentSessionIDEqualFold applies the EqualFold predicate on the "parent_session_id" field.
func ParentSessionIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldParentSessionID, v))
}

// ParentSessionIDContainsFold applies the ContainsFold predicate on the "parent_session_id" field.
func ParentSessionIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldParentSessionID, v))
}

// ParentMessageIDEQ applies the EQ predicate on the "parent_message_id" field.
func ParentMessageIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldParentMessageID, v))
}

// ParentMessageIDNEQ applies the NEQ predicate on the "parent_message_id" field.
func ParentMessageIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldParentMessageID, v))
}

// ParentMessageIDIn applies the In predicate on the "parent_message_id" field.
func ParentMessageIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldParentMessageID, vs...))
}

// ParentMessageIDNotIn applies the NotIn predicate on the "parent_message_id" field.
func ParentMessageIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldParentMessageID, vs...))
}

// ParentMessageIDGT applies the GT predicate on the "parent_message_id" field.
func ParentMessageIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldParentMessageID, v))
}

// ParentMessageIDGTE applies the GTE predicate on the "parent_message_id" field.
func ParentMessageIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldParentMessageID, v))
}

// ParentMessageIDLT applies the LT predicate on the "parent_message_id" field.
func ParentMessageIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldParentMessageID, v))
}

// ParentMessageIDLTE applies the LTE predicate on the "parent_message_id" field.
func ParentMessageIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldParentMessageID, v))
}

// ParentMessageIDContains applies the Contains predicate on the "parent_message_id" field.
func ParentMessageIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldParentMessageID, v))
}

// ParentMessageIDHasPrefix applies the HasPrefix predicate on the "parent_message_id" field.
func ParentMessageIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldParentMessageID, v))
}

// ParentMessageIDHasSuffix applies the HasSuffix predicate on the "parent_message_id" field.
func ParentMessageIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldParentMessageID, v))
}

// ParentMessageIDIsNil applies the IsNil predicate on the "parent_message_id" field.
func ParentMessageIDIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldParentMessageID))
}

// ParentMessageIDNotNil applies the NotNil predicate on the "parent_message_id" field.
func ParentMessageIDNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldParentMessageID))
}

// ParentMessageIDEqualFold applies the EqualFold predicate on the "parent_message_id" field.
func ParentMessageIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldParentMessageID, v))
}

// ParentMessageIDContainsFold applies the ContainsFold predicate on the "parent_message_id" field.
func ParentMessageIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldParentMessageID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldDepth, v))
}

// NodeTypeEQ applies the EQ predicate on the "node_type" field.
func NodeTypeEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldNodeType, v))
}

// NodeTypeNEQ applies the NEQ predicate on the "node_type" field.
func NodeTypeNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldNodeType, v))
}

// NodeTypeIn applies the In predicate on the "node_type" field.
func NodeTypeIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldNodeType, vs...))
}

// NodeTypeNotIn applies the NotIn predicate on the "node_type" field.
func NodeTypeNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldNodeType, vs...))
}

// NodeTypeGT applies the GT predicate on the "node_type" field.
func NodeTypeGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldNodeType, v))
}

// NodeTypeGTE applies the GTE predicate on the "node_type" field.
func NodeTypeGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldNodeType, v))
}

// NodeTypeLT applies the LT predicate on the "node_type" field.
func NodeTypeLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldNodeType, v))
}

// NodeTypeLTE applies the LTE predicate on the "node_type" field.
func NodeTypeLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldNodeType, v))
}

// NodeTypeContains applies the Contains predicate on the "node_type" field.
func NodeTypeContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldNodeType, v))
}

// NodeTypeHasPrefix applies the HasPrefix predicate on the "node_type" field.
func NodeTypeHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldNodeType, v))
}

// NodeTypeHasSuffix applies the HasSuffix predicate on the "node_type" field.
func NodeTypeHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldNodeType, v))
}

// NodeTypeEqualFold applies the EqualFold predicate on the "node_type" field.
func NodeTypeEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldNodeType, v))
}

// NodeTypeContainsFold applies the ContainsFold predicate on the "node_type" field.
func NodeTypeContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldNodeType, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldRole, v))
}

// SoundingIndexEQ applies the EQ predicate on the "sounding_index" field.
func SoundingIndexEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSoundingIndex, v))
}

// SoundingIndexNEQ applies the NEQ predicate on the "sounding_index" field.
func SoundingIndexNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldSoundingIndex, v))
}

// SoundingIndexIn applies the In predicate on the "sounding_index" field.
func SoundingIndexIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldSoundingIndex, vs...))
}

// SoundingIndexNotIn applies the NotIn predicate on the "sounding_index" field.
func SoundingIndexNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldSoundingIndex, vs...))
}

// SoundingIndexGT applies the GT predicate on the "sounding_index" field.
func SoundingIndexGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldSoundingIndex, v))
}

// SoundingIndexGTE applies the GTE predicate on the "sounding_index" field.
func SoundingIndexGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldSoundingIndex, v))
}

// SoundingIndexLT applies the LT predicate on the "sounding_index" field.
func SoundingIndexLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldSoundingIndex, v))
}

// SoundingIndexLTE applies the LTE predicate on the "sounding_index" field.
func SoundingIndexLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldSoundingIndex, v))
}

// SoundingIndexIsNil applies the IsNil predicate on the "sounding_index" field.
func SoundingIndexIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldSoundingIndex))
}

// SoundingIndexNotNil applies the NotNil predicate on the "sounding_index" field.
func SoundingIndexNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldSoundingIndex))
}

// IsWinnerEQ applies the EQ predicate on the "is_winner" field.
func IsWinnerEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldIsWinner, v))
}

// IsWinnerNEQ applies the NEQ predicate on the "is_winner" field.
func IsWinnerNEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldIsWinner, v))
}

// IsWinnerIsNil applies the IsNil predicate on the "is_winner" field.
func IsWinnerIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldIsWinner))
}

// IsWinnerNotNil applies the NotNil predicate on the "is_winner" field.
func IsWinnerNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldIsWinner))
}

// ReforgeStepEQ applies the EQ predicate on the "reforge_step" field.
func ReforgeStepEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldReforgeStep, v))
}

// ReforgeStepNEQ applies the NEQ predicate on the "reforge_step" field.
func ReforgeStepNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldReforgeStep, v))
}

// ReforgeStepIn applies the In predicate on the "reforge_step" field.
func ReforgeStepIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldReforgeStep, vs...))
}

// ReforgeStepNotIn applies the NotIn predicate on the "reforge_step" field.
func ReforgeStepNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldReforgeStep, vs...))
}

// ReforgeStepGT applies the GT predicate on the "reforge_step" field.
func ReforgeStepGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldReforgeStep, v))
}

// ReforgeStepGTE applies the GTE predicate on the "reforge_step" field.
func ReforgeStepGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldReforgeStep, v))
}

// ReforgeStepLT applies the LT predicate on the "reforge_step" field.
func ReforgeStepLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldReforgeStep, v))
}

// ReforgeStepLTE applies the LTE predicate on the "reforge_step" field.
func ReforgeStepLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldReforgeStep, v))
}

// ReforgeStepIsNil applies the IsNil predicate on the "reforge_step" field.
func ReforgeStepIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldReforgeStep))
}

// ReforgeStepNotNil applies the NotNil predicate on the "reforge_step" field.
func ReforgeStepNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldReforgeStep))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldAttemptNumber, v))
}

// AttemptNumberIsNil applies the IsNil predicate on the "attempt_number" field.
func AttemptNumberIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldAttemptNumber))
}

// AttemptNumberNotNil applies the NotNil predicate on the "attempt_number" field.
func AttemptNumberNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldAttemptNumber))
}

// TurnNumberEQ applies the EQ predicate on the "turn_number" field.
func TurnNumberEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTurnNumber, v))
}

// TurnNumberNEQ applies the NEQ predicate on the "turn_number" field.
func TurnNumberNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldTurnNumber, v))
}

// TurnNumberIn applies the In predicate on the "turn_number" field.
func TurnNumberIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldTurnNumber, vs...))
}

// TurnNumberNotIn applies the NotIn predicate on the "turn_number" field.
func TurnNumberNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldTurnNumber, vs...))
}

// TurnNumberGT applies the GT predicate on the "turn_number" field.
func TurnNumberGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldTurnNumber, v))
}

// TurnNumberGTE applies the GTE predicate on the "turn_number" field.
func TurnNumberGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldTurnNumber, v))
}

// TurnNumberLT applies the LT predicate on the "turn_number" field.
func TurnNumberLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldTurnNumber, v))
}

// TurnNumberLTE applies the LTE predicate on the "turn_number" field.
func TurnNumberLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldTurnNumber, v))
}

// TurnNumberIsNil applies the IsNil predicate on the "turn_number" field.
func TurnNumberIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldTurnNumber))
}

// TurnNumberNotNil applies the NotNil predicate on the "turn_number" field.
func TurnNumberNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldTurnNumber))
}

// MutationAppliedEQ applies the EQ predicate on the "mutation_applied" field.
func MutationAppliedEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationApplied, v))
}

// MutationAppliedNEQ applies the NEQ predicate on the "mutation_applied" field.
func MutationAppliedNEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldMutationApplied, v))
}

// MutationAppliedIsNil applies the IsNil predicate on the "mutation_applied" field.
func MutationAppliedIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldMutationApplied))
}

// MutationAppliedNotNil applies the NotNil predicate on the "mutation_applied" field.
func MutationAppliedNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldMutationApplied))
}

// MutationTypeEQ applies the EQ predicate on the "mutation_type" field.
func MutationTypeEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationType, v))
}

// MutationTypeNEQ applies the NEQ predicate on the "mutation_type" field.
func MutationTypeNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldMutationType, v))
}

// MutationTypeIn applies the In predicate on the "mutation_type" field.
func MutationTypeIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldMutationType, vs...))
}

// MutationTypeNotIn applies the NotIn predicate on the "mutation_type" field.
func MutationTypeNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldMutationType, vs...))
}

// MutationTypeGT applies the GT predicate on the "mutation_type" field.
func MutationTypeGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldMutationType, v))
}

// MutationTypeGTE applies the GTE predicate on the "mutation_type" field.
func MutationTypeGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldMutationType, v))
}

// MutationTypeLT applies the LT predicate on the "mutation_type" field.
func MutationTypeLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldMutationType, v))
}

// MutationTypeLTE applies the LTE predicate on the "mutation_type" field.
func MutationTypeLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldMutationType, v))
}

// MutationTypeContains applies the Contains predicate on the "mutation_type" field.
func MutationTypeContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldMutationType, v))
}

// MutationTypeHasPrefix applies the HasPrefix predicate on the "mutation_type" field.
func MutationTypeHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldMutationType, v))
}

// MutationTypeHasSuffix applies the HasSuffix predicate on the "mutation_type" field.
func MutationTypeHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldMutationType, v))
}

// MutationTypeIsNil applies the IsNil predicate on the "mutation_type" field.
func MutationTypeIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldMutationType))
}

// MutationTypeNotNil applies the NotNil predicate on the "mutation_type" field.
func MutationTypeNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldMutationType))
}

// MutationTypeEqualFold applies the EqualFold predicate on the "mutation_type" field.
func MutationTypeEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldMutationType, v))
}

// MutationTypeContainsFold applies the ContainsFold predicate on the "mutation_type" field.
func MutationTypeContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldMutationType, v))
}

// MutationTemplateEQ applies the EQ predicate on the "mutation_template" field.
func MutationTemplateEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldMutationTemplate, v))
}

// MutationTemplateNEQ applies the NEQ predicate on the "mutation_template" field.
func MutationTemplateNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldMutationTemplate, v))
}

// MutationTemplateIn applies the In predicate on the "mutation_template" field.
func MutationTemplateIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldMutationTemplate, vs...))
}

// MutationTemplateNotIn applies the NotIn predicate on the "mutation_template" field.
func MutationTemplateNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldMutationTemplate, vs...))
}

// MutationTemplateGT applies the GT predicate on the "mutation_template" field.
func MutationTemplateGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldMutationTemplate, v))
}

// MutationTemplateGTE applies the GTE predicate on the "mutation_template" field.
func MutationTemplateGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldMutationTemplate, v))
}

// MutationTemplateLT applies the LT predicate on the "mutation_template" field.
func MutationTemplateLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldMutationTemplate, v))
}

// MutationTemplateLTE applies the LTE predicate on the "mutation_template" field.
func MutationTemplateLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldMutationTemplate, v))
}

// MutationTemplateContains applies the Contains predicate on the "mutation_template" field.
func MutationTemplateContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldMutationTemplate, v))
}

// MutationTemplateHasPrefix applies the HasPrefix predicate on the "mutation_template" field.
func MutationTemplateHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldMutationTemplate, v))
}

// MutationTemplateHasSuffix applies the HasSuffix predicate on the "mutation_template" field.
func MutationTemplateHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldMutationTemplate, v))
}

// MutationTemplateIsNil applies the IsNil predicate on the "mutation_template" field.
func MutationTemplateIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldMutationTemplate))
}

// MutationTemplateNotNil applies the NotNil predicate on the "mutation_template" field.
func MutationTemplateNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldMutationTemplate))
}

// MutationTemplateEqualFold applies the EqualFold predicate on the "mutation_template" field.
func MutationTemplateEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldMutationTemplate, v))
}

// MutationTemplateContainsFold applies the ContainsFold predicate on the "mutation_template" field.
func MutationTemplateContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldMutationTemplate, v))
}

// SpeciesHashEQ applies the EQ predicate on the "species_hash" field.
func SpeciesHashEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSpeciesHash, v))
}

// SpeciesHashNEQ applies the NEQ predicate on the "species_hash" field.
func SpeciesHashNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldSpeciesHash, v))
}

// SpeciesHashIn applies the In predicate on the "species_hash" field.
func SpeciesHashIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldSpeciesHash, vs...))
}

// SpeciesHashNotIn applies the NotIn predicate on the "species_hash" field.
func SpeciesHashNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldSpeciesHash, vs...))
}

// SpeciesHashGT applies the GT predicate on the "species_hash" field.
func SpeciesHashGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldSpeciesHash, v))
}

// SpeciesHashGTE applies the GTE predicate on the "species_hash" field.
func SpeciesHashGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldSpeciesHash, v))
}

// SpeciesHashLT applies the LT predicate on the "species_hash" field.
func SpeciesHashLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldSpeciesHash, v))
}

// SpeciesHashLTE applies the LTE predicate on the "species_hash" field.
func SpeciesHashLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldSpeciesHash, v))
}

// SpeciesHashContains applies the Contains predicate on the "species_hash" field.
func SpeciesHashContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldSpeciesHash, v))
}

// SpeciesHashHasPrefix applies the HasPrefix predicate on the "species_hash" field.
func SpeciesHashHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldSpeciesHash, v))
}

// SpeciesHashHasSuffix applies the HasSuffix predicate on the "species_hash" field.
func SpeciesHashHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldSpeciesHash, v))
}

// SpeciesHashIsNil applies the IsNil predicate on the "species_hash" field.
func SpeciesHashIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldSpeciesHash))
}

// SpeciesHashNotNil applies the NotNil predicate on the "species_hash" field.
func SpeciesHashNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldSpeciesHash))
}

// SpeciesHashEqualFold applies the EqualFold predicate on the "species_hash" field.
func SpeciesHashEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldSpeciesHash, v))
}

// SpeciesHashContainsFold applies the ContainsFold predicate on the "species_hash" field.
func SpeciesHashContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldSpeciesHash, v))
}

// CascadeIDEQ applies the EQ predicate on the "cascade_id" field.
func CascadeIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeID, v))
}

// CascadeIDNEQ applies the NEQ predicate on the "cascade_id" field.
func CascadeIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldCascadeID, v))
}

// CascadeIDIn applies the In predicate on the "cascade_id" field.
func CascadeIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldCascadeID, vs...))
}

// CascadeIDNotIn applies the NotIn predicate on the "cascade_id" field.
func CascadeIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldCascadeID, vs...))
}

// CascadeIDGT applies the GT predicate on the "cascade_id" field.
func CascadeIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldCascadeID, v))
}

// CascadeIDGTE applies the GTE predicate on the "cascade_id" field.
func CascadeIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldCascadeID, v))
}

// CascadeIDLT applies the LT predicate on the "cascade_id" field.
func CascadeIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldCascadeID, v))
}

// CascadeIDLTE applies the LTE predicate on the "cascade_id" field.
func CascadeIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldCascadeID, v))
}

// CascadeIDContains applies the Contains predicate on the "cascade_id" field.
func CascadeIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldCascadeID, v))
}

// CascadeIDHasPrefix applies the HasPrefix predicate on the "cascade_id" field.
func CascadeIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldCascadeID, v))
}

// CascadeIDHasSuffix applies the HasSuffix predicate on the "cascade_id" field.
func CascadeIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldCascadeID, v))
}

// CascadeIDEqualFold applies the EqualFold predicate on the "cascade_id" field.
func CascadeIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldCascadeID, v))
}

// CascadeIDContainsFold applies the ContainsFold predicate on the "cascade_id" field.
func CascadeIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldCascadeID, v))
}

// CascadeFileEQ applies the EQ predicate on the "cascade_file" field.
func CascadeFileEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeFile, v))
}

// CascadeFileNEQ applies the NEQ predicate on the "cascade_file" field.
func CascadeFileNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldCascadeFile, v))
}

// CascadeFileIn applies the In predicate on the "cascade_file" field.
func CascadeFileIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldCascadeFile, vs...))
}

// CascadeFileNotIn applies the NotIn predicate on the "cascade_file" field.
func CascadeFileNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldCascadeFile, vs...))
}

// CascadeFileGT applies the GT predicate on the "cascade_file" field.
func CascadeFileGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldCascadeFile, v))
}

// CascadeFileGTE applies the GTE predicate on the "cascade_file" field.
func CascadeFileGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldCascadeFile, v))
}

// CascadeFileLT applies the LT predicate on the "cascade_file" field.
func CascadeFileLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldCascadeFile, v))
}

// CascadeFileLTE applies the LTE predicate on the "cascade_file" field.
func CascadeFileLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldCascadeFile, v))
}

// CascadeFileContains applies the Contains predicate on the "cascade_file" field.
func CascadeFileContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldCascadeFile, v))
}

// CascadeFileHasPrefix applies the HasPrefix predicate on the "cascade_file" field.
func CascadeFileHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldCascadeFile, v))
}

// CascadeFileHasSuffix applies the HasSuffix predicate on the "cascade_file" field.
func CascadeFileHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldCascadeFile, v))
}

// CascadeFileIsNil applies the IsNil predicate on the "cascade_file" field.
func CascadeFileIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldCascadeFile))
}

// CascadeFileNotNil applies the NotNil predicate on the "cascade_file" field.
func CascadeFileNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldCascadeFile))
}

// CascadeFileEqualFold applies the EqualFold predicate on the "cascade_file" field.
func CascadeFileEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldCascadeFile, v))
}

// CascadeFileContainsFold applies the ContainsFold predicate on the "cascade_file" field.
func CascadeFileContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldCascadeFile, v))
}

// CascadeJSONEQ applies the EQ predicate on the "cascade_json" field.
func CascadeJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCascadeJSON, v))
}

// CascadeJSONNEQ applies the NEQ predicate on the "cascade_json" field.
func CascadeJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldCascadeJSON, v))
}

// CascadeJSONIn applies the In predicate on the "cascade_json" field.
func CascadeJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldCascadeJSON, vs...))
}

// CascadeJSONNotIn applies the NotIn predicate on the "cascade_json" field.
func CascadeJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldCascadeJSON, vs...))
}

// CascadeJSONGT applies the GT predicate on the "cascade_json" field.
func CascadeJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldCascadeJSON, v))
}

// CascadeJSONGTE applies the GTE predicate on the "cascade_json" field.
func CascadeJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldCascadeJSON, v))
}

// CascadeJSONLT applies the LT predicate on the "cascade_json" field.
func CascadeJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldCascadeJSON, v))
}

// CascadeJSONLTE applies the LTE predicate on the "cascade_json" field.
func CascadeJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldCascadeJSON, v))
}

// CascadeJSONContains applies the Contains predicate on the "cascade_json" field.
func CascadeJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldCascadeJSON, v))
}

// CascadeJSONHasPrefix applies the HasPrefix predicate on the "cascade_json" field.
func CascadeJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldCascadeJSON, v))
}

// CascadeJSONHasSuffix applies the HasSuffix predicate on the "cascade_json" field.
func CascadeJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldCascadeJSON, v))
}

// CascadeJSONIsNil applies the IsNil predicate on the "cascade_json" field.
func CascadeJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldCascadeJSON))
}

// CascadeJSONNotNil applies the NotNil predicate on the "cascade_json" field.
func CascadeJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldCascadeJSON))
}

// CascadeJSONEqualFold applies the EqualFold predicate on the "cascade_json" field.
func CascadeJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldCascadeJSON, v))
}

// CascadeJSONContainsFold applies the ContainsFold predicate on the "cascade_json" field.
func CascadeJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldCascadeJSON, v))
}

// PhaseNameEQ applies the EQ predicate on the "phase_name" field.
func PhaseNameEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseNameNEQ applies the NEQ predicate on the "phase_name" field.
func PhaseNameNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldPhaseName, v))
}

// PhaseNameIn applies the In predicate on the "phase_name" field.
func PhaseNameIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldPhaseName, vs...))
}

// PhaseNameNotIn applies the NotIn predicate on the "phase_name" field.
func PhaseNameNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldPhaseName, vs...))
}

// PhaseNameGT applies the GT predicate on the "phase_name" field.
func PhaseNameGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldPhaseName, v))
}

// PhaseNameGTE applies the GTE predicate on the "phase_name" field.
func PhaseNameGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldPhaseName, v))
}

// PhaseNameLT applies the LT predicate on the "phase_name" field.
func PhaseNameLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldPhaseName, v))
}

// PhaseNameLTE applies the LTE predicate on the "phase_name" field.
func PhaseNameLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldPhaseName, v))
}

// PhaseNameContains applies the Contains predicate on the "phase_name" field.
func PhaseNameContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldPhaseName, v))
}

// PhaseNameHasPrefix applies the HasPrefix predicate on the "phase_name" field.
func PhaseNameHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldPhaseName, v))
}

// PhaseNameHasSuffix applies the HasSuffix predicate on the "phase_name" field.
func PhaseNameHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldPhaseName, v))
}

// PhaseNameIsNil applies the IsNil predicate on the "phase_name" field.
func PhaseNameIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldPhaseName))
}

// PhaseNameNotNil applies the NotNil predicate on the "phase_name" field.
func PhaseNameNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldPhaseName))
}

// PhaseNameEqualFold applies the EqualFold predicate on the "phase_name" field.
func PhaseNameEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldPhaseName, v))
}

// PhaseNameContainsFold applies the ContainsFold predicate on the "phase_name" field.
func PhaseNameContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldPhaseName, v))
}

// PhaseJSONEQ applies the EQ predicate on the "phase_json" field.
func PhaseJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldPhaseJSON, v))
}

// PhaseJSONNEQ applies the NEQ predicate on the "phase_json" field.
func PhaseJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldPhaseJSON, v))
}

// PhaseJSONIn applies the In predicate on the "phase_json" field.
func PhaseJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldPhaseJSON, vs...))
}

// PhaseJSONNotIn applies the NotIn predicate on the "phase_json" field.
func PhaseJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldPhaseJSON, vs...))
}

// PhaseJSONGT applies the GT predicate on the "phase_json" field.
func PhaseJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldPhaseJSON, v))
}

// PhaseJSONGTE applies the GTE predicate on the "phase_json" field.
func PhaseJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldPhaseJSON, v))
}

// PhaseJSONLT applies the LT predicate on the "phase_json" field.
func PhaseJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldPhaseJSON, v))
}

// PhaseJSONLTE applies the LTE predicate on the "phase_json" field.
func PhaseJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldPhaseJSON, v))
}

// PhaseJSONContains applies the Contains predicate on the "phase_json" field.
func PhaseJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldPhaseJSON, v))
}

// PhaseJSONHasPrefix applies the HasPrefix predicate on the "phase_json" field.
func PhaseJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldPhaseJSON, v))
}

// PhaseJSONHasSuffix applies the HasSuffix predicate on the "phase_json" field.
func PhaseJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldPhaseJSON, v))
}

// PhaseJSONIsNil applies the IsNil predicate on the "phase_json" field.
func PhaseJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldPhaseJSON))
}

// PhaseJSONNotNil applies the NotNil predicate on the "phase_json" field.
func PhaseJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldPhaseJSON))
}

// PhaseJSONEqualFold applies the EqualFold predicate on the "phase_json" field.
func PhaseJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldPhaseJSON, v))
}

// PhaseJSONContainsFold applies the ContainsFold predicate on the "phase_json" field.
func PhaseJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldPhaseJSON, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldModel, v))
}

// ModelRequestedEQ applies the EQ predicate on the "model_requested" field.
func ModelRequestedEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldModelRequested, v))
}

// ModelRequestedNEQ applies the NEQ predicate on the "model_requested" field.
func ModelRequestedNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldModelRequested, v))
}

// ModelRequestedIn applies the In predicate on the "model_requested" field.
func ModelRequestedIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldModelRequested, vs...))
}

// ModelRequestedNotIn applies the NotIn predicate on the "model_requested" field.
func ModelRequestedNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldModelRequested, vs...))
}

// ModelRequestedGT applies the GT predicate on the "model_requested" field.
func ModelRequestedGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldModelRequested, v))
}

// ModelRequestedGTE applies the GTE predicate on the "model_requested" field.
func ModelRequestedGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldModelRequested, v))
}

// ModelRequestedLT applies the LT predicate on the "model_requested" field.
func ModelRequestedLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldModelRequested, v))
}

// ModelRequestedLTE applies the LTE predicate on the "model_requested" field.
func ModelRequestedLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldModelRequested, v))
}

// ModelRequestedContains applies the Contains predicate on the "model_requested" field.
func ModelRequestedContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldModelRequested, v))
}

// ModelRequestedHasPrefix applies the HasPrefix predicate on the "model_requested" field.
func ModelRequestedHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldModelRequested, v))
}

// ModelRequestedHasSuffix applies the HasSuffix predicate on the "model_requested" field.
func ModelRequestedHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldModelRequested, v))
}

// ModelRequestedIsNil applies the IsNil predicate on the "model_requested" field.
func ModelRequestedIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldModelRequested))
}

// ModelRequestedNotNil applies the NotNil predicate on the "model_requested" field.
func ModelRequestedNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldModelRequested))
}

// ModelRequestedEqualFold applies the EqualFold predicate on the "model_requested" field.
func ModelRequestedEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldModelRequested, v))
}

// ModelRequestedContainsFold applies the ContainsFold predicate on the "model_requested" field.
func ModelRequestedContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldModelRequested, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldRequestID))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldRequestID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldProvider, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldDurationMs))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldTokensIn, v))
}

// TokensInIsNil applies the IsNil predicate on the "tokens_in" field.
func TokensInIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldTokensIn))
}

// TokensInNotNil applies the NotNil predicate on the "tokens_in" field.
func TokensInNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldTokensIn))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldTokensOut, v))
}

// TokensOutIsNil applies the IsNil predicate on the "tokens_out" field.
func TokensOutIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldTokensOut))
}

// TokensOutNotNil applies the NotNil predicate on the "tokens_out" field.
func TokensOutNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldTokensOut))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldCost))
}

// ContentJSONEQ applies the EQ predicate on the "content_json" field.
func ContentJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldContentJSON, v))
}

// ContentJSONNEQ applies the NEQ predicate on the "content_json" field.
func ContentJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldContentJSON, v))
}

// ContentJSONIn applies the In predicate on the "content_json" field.
func ContentJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldContentJSON, vs...))
}

// ContentJSONNotIn applies the NotIn predicate on the "content_json" field.
func ContentJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldContentJSON, vs...))
}

// ContentJSONGT applies the GT predicate on the "content_json" field.
func ContentJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldContentJSON, v))
}

// ContentJSONGTE applies the GTE predicate on the "content_json" field.
func ContentJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldContentJSON, v))
}

// ContentJSONLT applies the LT predicate on the "content_json" field.
func ContentJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldContentJSON, v))
}

// ContentJSONLTE applies the LTE predicate on the "content_json" field.
func ContentJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldContentJSON, v))
}

// ContentJSONContains applies the Contains predicate on the "content_json" field.
func ContentJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldContentJSON, v))
}

// ContentJSONHasPrefix applies the HasPrefix predicate on the "content_json" field.
func ContentJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldContentJSON, v))
}

// ContentJSONHasSuffix applies the HasSuffix predicate on the "content_json" field.
func ContentJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldContentJSON, v))
}

// ContentJSONIsNil applies the IsNil predicate on the "content_json" field.
func ContentJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldContentJSON))
}

// ContentJSONNotNil applies the NotNil predicate on the "content_json" field.
func ContentJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldContentJSON))
}

// ContentJSONEqualFold applies the EqualFold predicate on the "content_json" field.
func ContentJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldContentJSON, v))
}

// ContentJSONContainsFold applies the ContainsFold predicate on the "content_json" field.
func ContentJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldContentJSON, v))
}

// FullRequestJSONEQ applies the EQ predicate on the "full_request_json" field.
func FullRequestJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldFullRequestJSON, v))
}

// FullRequestJSONNEQ applies the NEQ predicate on the "full_request_json" field.
func FullRequestJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldFullRequestJSON, v))
}

// FullRequestJSONIn applies the In predicate on the "full_request_json" field.
func FullRequestJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldFullRequestJSON, vs...))
}

// FullRequestJSONNotIn applies the NotIn predicate on the "full_request_json" field.
func FullRequestJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldFullRequestJSON, vs...))
}

// FullRequestJSONGT applies the GT predicate on the "full_request_json" field.
func FullRequestJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldFullRequestJSON, v))
}

// FullRequestJSONGTE applies the GTE predicate on the "full_request_json" field.
func FullRequestJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldFullRequestJSON, v))
}

// FullRequestJSONLT applies the LT predicate on the "full_request_json" field.
func FullRequestJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldFullRequestJSON, v))
}

// FullRequestJSONLTE applies the LTE predicate on the "full_request_json" field.
func FullRequestJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldFullRequestJSON, v))
}

// FullRequestJSONContains applies the Contains predicate on the "full_request_json" field.
func FullRequestJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldFullRequestJSON, v))
}

// FullRequestJSONHasPrefix applies the HasPrefix predicate on the "full_request_json" field.
func FullRequestJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldFullRequestJSON, v))
}

// FullRequestJSONHasSuffix applies the HasSuffix predicate on the "full_request_json" field.
func FullRequestJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldFullRequestJSON, v))
}

// FullRequestJSONIsNil applies the IsNil predicate on the "full_request_json" field.
func FullRequestJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldFullRequestJSON))
}

// FullRequestJSONNotNil applies the NotNil predicate on the "full_request_json" field.
func FullRequestJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldFullRequestJSON))
}

// FullRequestJSONEqualFold applies the EqualFold predicate on the "full_request_json" field.
func FullRequestJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldFullRequestJSON, v))
}

// FullRequestJSONContainsFold applies the ContainsFold predicate on the "full_request_json" field.
func FullRequestJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldFullRequestJSON, v))
}

// FullResponseJSONEQ applies the EQ predicate on the "full_response_json" field.
func FullResponseJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldFullResponseJSON, v))
}

// FullResponseJSONNEQ applies the NEQ predicate on the "full_response_json" field.
func FullResponseJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldFullResponseJSON, v))
}

// FullResponseJSONIn applies the In predicate on the "full_response_json" field.
func FullResponseJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldFullResponseJSON, vs...))
}

// FullResponseJSONNotIn applies the NotIn predicate on the "full_response_json" field.
func FullResponseJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldFullResponseJSON, vs...))
}

// FullResponseJSONGT applies the GT predicate on the "full_response_json" field.
func FullResponseJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldFullResponseJSON, v))
}

// FullResponseJSONGTE applies the GTE predicate on the "full_response_json" field.
func FullResponseJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldFullResponseJSON, v))
}

// FullResponseJSONLT applies the LT predicate on the "full_response_json" field.
func FullResponseJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldFullResponseJSON, v))
}

// FullResponseJSONLTE applies the LTE predicate on the "full_response_json" field.
func FullResponseJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldFullResponseJSON, v))
}

// FullResponseJSONContains applies the Contains predicate on the "full_response_json" field.
func FullResponseJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldFullResponseJSON, v))
}

// FullResponseJSONHasPrefix applies the HasPrefix predicate on the "full_response_json" field.
func FullResponseJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldFullResponseJSON, v))
}

// FullResponseJSONHasSuffix applies the HasSuffix predicate on the "full_response_json" field.
func FullResponseJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldFullResponseJSON, v))
}

// FullResponseJSONIsNil applies the IsNil predicate on the "full_response_json" field.
func FullResponseJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldFullResponseJSON))
}

// FullResponseJSONNotNil applies the NotNil predicate on the "full_response_json" field.
func FullResponseJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldFullResponseJSON))
}

// FullResponseJSONEqualFold applies the EqualFold predicate on the "full_response_json" field.
func FullResponseJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldFullResponseJSON, v))
}

// FullResponseJSONContainsFold applies the ContainsFold predicate on the "full_response_json" field.
func FullResponseJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldFullResponseJSON, v))
}

// ToolCallsJSONEQ applies the EQ predicate on the "tool_calls_json" field.
func ToolCallsJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldToolCallsJSON, v))
}

// ToolCallsJSONNEQ applies the NEQ predicate on the "tool_calls_json" field.
func ToolCallsJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldToolCallsJSON, v))
}

// ToolCallsJSONIn applies the In predicate on the "tool_calls_json" field.
func ToolCallsJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldToolCallsJSON, vs...))
}

// ToolCallsJSONNotIn applies the NotIn predicate on the "tool_calls_json" field.
func ToolCallsJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldToolCallsJSON, vs...))
}

// ToolCallsJSONGT applies the GT predicate on the "tool_calls_json" field.
func ToolCallsJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldToolCallsJSON, v))
}

// ToolCallsJSONGTE applies the GTE predicate on the "tool_calls_json" field.
func ToolCallsJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldToolCallsJSON, v))
}

// ToolCallsJSONLT applies the LT predicate on the "tool_calls_json" field.
func ToolCallsJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldToolCallsJSON, v))
}

// ToolCallsJSONLTE applies the LTE predicate on the "tool_calls_json" field.
func ToolCallsJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldToolCallsJSON, v))
}

// ToolCallsJSONContains applies the Contains predicate on the "tool_calls_json" field.
func ToolCallsJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldToolCallsJSON, v))
}

// ToolCallsJSONHasPrefix applies the HasPrefix predicate on the "tool_calls_json" field.
func ToolCallsJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldToolCallsJSON, v))
}

// ToolCallsJSONHasSuffix applies the HasSuffix predicate on the "tool_calls_json" field.
func ToolCallsJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldToolCallsJSON, v))
}

// ToolCallsJSONIsNil applies the IsNil predicate on the "tool_calls_json" field.
func ToolCallsJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldToolCallsJSON))
}

// ToolCallsJSONNotNil applies the NotNil predicate on the "tool_calls_json" field.
func ToolCallsJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldToolCallsJSON))
}

// ToolCallsJSONEqualFold applies the EqualFold predicate on the "tool_calls_json" field.
func ToolCallsJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldToolCallsJSON, v))
}

// ToolCallsJSONContainsFold applies the ContainsFold predicate on the "tool_calls_json" field.
func ToolCallsJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldToolCallsJSON, v))
}

// ImagesJSONEQ applies the EQ predicate on the "images_json" field.
func ImagesJSONEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldImagesJSON, v))
}

// ImagesJSONNEQ applies the NEQ predicate on the "images_json" field.
func ImagesJSONNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldImagesJSON, v))
}

// ImagesJSONIn applies the In predicate on the "images_json" field.
func ImagesJSONIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldImagesJSON, vs...))
}

// ImagesJSONNotIn applies the NotIn predicate on the "images_json" field.
func ImagesJSONNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldImagesJSON, vs...))
}

// ImagesJSONGT applies the GT predicate on the "images_json" field.
func ImagesJSONGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldImagesJSON, v))
}

// ImagesJSONGTE applies the GTE predicate on the "images_json" field.
func ImagesJSONGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldImagesJSON, v))
}

// ImagesJSONLT applies the LT predicate on the "images_json" field.
func ImagesJSONLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldImagesJSON, v))
}

// ImagesJSONLTE applies the LTE predicate on the "images_json" field.
func ImagesJSONLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldImagesJSON, v))
}

// ImagesJSONContains applies the Contains predicate on the "images_json" field.
func ImagesJSONContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldImagesJSON, v))
}

// ImagesJSONHasPrefix applies the HasPrefix predicate on the "images_json" field.
func ImagesJSONHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldImagesJSON, v))
}

// ImagesJSONHasSuffix applies the HasSuffix predicate on the "images_json" field.
func ImagesJSONHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldImagesJSON, v))
}

// ImagesJSONIsNil applies the IsNil predicate on the "images_json" field.
func ImagesJSONIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldImagesJSON))
}

// ImagesJSONNotNil applies the NotNil predicate on the "images_json" field.
func ImagesJSONNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldImagesJSON))
}

// ImagesJSONEqualFold applies the EqualFold predicate on the "images_json" field.
func ImagesJSONEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldImagesJSON, v))
}

// ImagesJSONContainsFold applies the ContainsFold predicate on the "images_json" field.
func ImagesJSONContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldImagesJSON, v))
}

// HasImagesEQ applies the EQ predicate on the "has_images" field.
func HasImagesEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldHasImages, v))
}

// HasImagesNEQ applies the NEQ predicate on the "has_images" field.
func HasImagesNEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldHasImages, v))
}

// HasBase64EQ applies the EQ predicate on the "has_base64" field.
func HasBase64EQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldHasBase64, v))
}

// HasBase64NEQ applies the NEQ predicate on the "has_base64" field.
func HasBase64NEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldHasBase64, v))
}

// SemanticActorEQ applies the EQ predicate on the "semantic_actor" field.
func SemanticActorEQ(v SemanticActor) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSemanticActor, v))
}

// SemanticActorNEQ applies the NEQ predicate on the "semantic_actor" field.
func SemanticActorNEQ(v SemanticActor) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldSemanticActor, v))
}

// SemanticActorIn applies the In predicate on the "semantic_actor" field.
func SemanticActorIn(vs ...SemanticActor) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldSemanticActor, vs...))
}

// SemanticActorNotIn applies the NotIn predicate on the "semantic_actor" field.
func SemanticActorNotIn(vs ...SemanticActor) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldSemanticActor, vs...))
}

// SemanticPurposeEQ applies the EQ predicate on the "semantic_purpose" field.
func SemanticPurposeEQ(v SemanticPurpose) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldSemanticPurpose, v))
}

// SemanticPurposeNEQ applies the NEQ predicate on the "semantic_purpose" field.
func SemanticPurposeNEQ(v SemanticPurpose) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldSemanticPurpose, v))
}

// SemanticPurposeIn applies the In predicate on the "semantic_purpose" field.
func SemanticPurposeIn(vs ...SemanticPurpose) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldSemanticPurpose, vs...))
}

// SemanticPurposeNotIn applies the NotIn predicate on the "semantic_purpose" field.
func SemanticPurposeNotIn(vs ...SemanticPurpose) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldSemanticPurpose, vs...))
}

// IsCalloutEQ applies the EQ predicate on the "is_callout" field.
func IsCalloutEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldIsCallout, v))
}

// IsCalloutNEQ applies the NEQ predicate on the "is_callout" field.
func IsCalloutNEQ(v bool) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldIsCallout, v))
}

// CalloutNameEQ applies the EQ predicate on the "callout_name" field.
func CalloutNameEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEQ(FieldCalloutName, v))
}

// CalloutNameNEQ applies the NEQ predicate on the "callout_name" field.
func CalloutNameNEQ(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNEQ(FieldCalloutName, v))
}

// CalloutNameIn applies the In predicate on the "callout_name" field.
func CalloutNameIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldIn(FieldCalloutName, vs...))
}

// CalloutNameNotIn applies the NotIn predicate on the "callout_name" field.
func CalloutNameNotIn(vs ...string) predicate.LogRow {
	return predicate.LogRow(sql.FieldNotIn(FieldCalloutName, vs...))
}

// CalloutNameGT applies the GT predicate on the "callout_name" field.
func CalloutNameGT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGT(FieldCalloutName, v))
}

// CalloutNameGTE applies the GTE predicate on the "callout_name" field.
func CalloutNameGTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldGTE(FieldCalloutName, v))
}

// CalloutNameLT applies the LT predicate on the "callout_name" field.
func CalloutNameLT(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLT(FieldCalloutName, v))
}

// CalloutNameLTE applies the LTE predicate on the "callout_name" field.
func CalloutNameLTE(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldLTE(FieldCalloutName, v))
}

// CalloutNameContains applies the Contains predicate on the "callout_name" field.
func CalloutNameContains(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContains(FieldCalloutName, v))
}

// CalloutNameHasPrefix applies the HasPrefix predicate on the "callout_name" field.
func CalloutNameHasPrefix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasPrefix(FieldCalloutName, v))
}

// CalloutNameHasSuffix applies the HasSuffix predicate on the "callout_name" field.
func CalloutNameHasSuffix(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldHasSuffix(FieldCalloutName, v))
}

// CalloutNameIsNil applies the IsNil predicate on the "callout_name" field.
func CalloutNameIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldCalloutName))
}

// CalloutNameNotNil applies the NotNil predicate on the "callout_name" field.
func CalloutNameNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldCalloutName))
}

// CalloutNameEqualFold applies the EqualFold predicate on the "callout_name" field.
func CalloutNameEqualFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldEqualFold(FieldCalloutName, v))
}

// CalloutNameContainsFold applies the ContainsFold predicate on the "callout_name" field.
func CalloutNameContainsFold(v string) predicate.LogRow {
	return predicate.LogRow(sql.FieldContainsFold(FieldCalloutName, v))
}

// RowMetadataIsNil applies the IsNil predicate on the "row_metadata" field.
func RowMetadataIsNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldIsNull(FieldRowMetadata))
}

// RowMetadataNotNil applies the NotNil predicate on the "row_metadata" field.
func RowMetadataNotNil() predicate.LogRow {
	return predicate.LogRow(sql.FieldNotNull(FieldRowMetadata))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.LogRow {
	return predicate.LogRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.CascadeSession) predicate.LogRow {
	return predicate.LogRow(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LogRow) predicate.LogRow {
	return predicate.LogRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LogRow) predicate.LogRow {
	return predicate.LogRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LogRow) predicate.LogRow {
	return predicate.LogRow(sql.NotPredicates(p))
}
