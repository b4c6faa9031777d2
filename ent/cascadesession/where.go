// Code generated by ent, DO NOT EDIT.

package cascadesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/windlassio/windlass/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldID, id))
}

// CascadeID applies equality check predicate on the "cascade_id" field. It's identical to CascadeIDEQ.
func CascadeID(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCascadeID, v))
}

// ParentSessionID applies equality check predicate on the "parent_session_id" field. It's identical to ParentSessionIDEQ.
func ParentSessionID(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldParentSessionID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldDepth, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCurrentPhase, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldErrorMessage, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelReason applies equality check predicate on the "cancel_reason" field. It's identical to CancelReasonEQ.
func CancelReason(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCancelReason, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldInput, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldPodID, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CascadeIDEQ applies the EQ predicate on the "cascade_id" field.
func CascadeIDEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCascadeID, v))
}

// CascadeIDNEQ applies the NEQ predicate on the "cascade_id" field.
func CascadeIDNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCascadeID, v))
}

// CascadeIDIn applies the In predicate on the "cascade_id" field.
func CascadeIDIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldCascadeID, vs...))
}

// CascadeIDNotIn applies the NotIn predicate on the "cascade_id" field.
func CascadeIDNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldCascadeID, vs...))
}

// CascadeIDGT applies the GT predicate on the "cascade_id" field.
func CascadeIDGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldCascadeID, v))
}

// CascadeIDGTE applies the GTE predicate on the "cascade_id" field.
func CascadeIDGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldCascadeID, v))
}

// CascadeIDLT applies the LT predicate on the "cascade_id" field.
func CascadeIDLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldCascadeID, v))
}

// CascadeIDLTE applies the LTE predicate on the "cascade_id" field.
func CascadeIDLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldCascadeID, v))
}

// CascadeIDContains applies the Contains predicate on the "cascade_id" field.
func CascadeIDContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldCascadeID, v))
}

// CascadeIDHasPrefix applies the HasPrefix predicate on the "cascade_id" field.
func CascadeIDHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldCascadeID, v))
}

// CascadeIDHasSuffix applies the HasSuffix predicate on the "cascade_id" field.
func CascadeIDHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldCascadeID, v))
}

// CascadeIDEqualFold applies the EqualFold predicate on the "cascade_id" field.
func CascadeIDEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldCascadeID, v))
}

// CascadeIDContainsFold applies the ContainsFold predicate on the "cascade_id" field.
func CascadeIDContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldCascadeID, v))
}

// ParentSessionIDEQ applies the EQ predicate on the "parent_session_id" field.
func ParentSessionIDEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldParentSessionID, v))
}

// ParentSessionIDNEQ applies the NEQ predicate on the "parent_session_id" field.
func ParentSessionIDNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldParentSessionID, v))
}

// ParentSessionIDIn applies the In predicate on the "parent_session_id" field.
func ParentSessionIDIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldParentSessionID, vs...))
}

// ParentSessionIDNotIn applies the NotIn predicate on the "parent_session_id" field.
func ParentSessionIDNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldParentSessionID, vs...))
}

// ParentSessionIDGT applies the GT predicate on the "parent_session_id" field.
func ParentSessionIDGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldParentSessionID, v))
}

// ParentSessionIDGTE applies the GTE predicate on the "parent_session_id" field.
func ParentSessionIDGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldParentSessionID, v))
}

// ParentSessionIDLT applies the LT predicate on the "parent_session_id" field.
func ParentSessionIDLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldParentSessionID, v))
}

// ParentSessionIDLTE applies the LTE predicate on the "parent_session_id" field.
func ParentSessionIDLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldParentSessionID, v))
}

// ParentSessionIDContains applies the Contains predicate on the "parent_session_id" field.
func ParentSessionIDContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldParentSessionID, v))
}

// ParentSessionIDHasPrefix applies the HasPrefix predicate on the "parent_session_id" field.
func ParentSessionIDHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldParentSessionID, v))
}

// ParentSessionIDHasSuffix applies the HasSuffix predicate on the "parent_session_id" field.
func ParentSessionIDHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldParentSessionID, v))
}

// ParentSessionIDIsNil applies the IsNil predicate on the "parent_session_id" field.
func ParentSessionIDIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldParentSessionID))
}

// ParentSessionIDNotNil applies the NotNil predicate on the "parent_session_id" field.
func ParentSessionIDNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldParentSessionID))
}

// ParentSessionIDEqualFold applies the EqualFold predicate on the "parent_session_id" field.
func ParentSessionIDEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldParentSessionID, v))
}

// ParentSessionIDContainsFold applies the ContainsFold predicate on the "parent_session_id" field.
func ParentSessionIDContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldParentSessionID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldDepth, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseIsNil applies the IsNil predicate on the "current_phase" field.
func CurrentPhaseIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldCurrentPhase))
}

// CurrentPhaseNotNil applies the NotNil predicate on the "current_phase" field.
func CurrentPhaseNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldCurrentPhase))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCancelRequested, v))
}

// CancelReasonEQ applies the EQ predicate on the "cancel_reason" field.
func CancelReasonEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCancelReason, v))
}

// CancelReasonNEQ applies the NEQ predicate on the "cancel_reason" field.
func CancelReasonNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCancelReason, v))
}

// CancelReasonIn applies the In predicate on the "cancel_reason" field.
func CancelReasonIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldCancelReason, vs...))
}

// CancelReasonNotIn applies the NotIn predicate on the "cancel_reason" field.
func CancelReasonNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldCancelReason, vs...))
}

// CancelReasonGT applies the GT predicate on the "cancel_reason" field.
func CancelReasonGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldCancelReason, v))
}

// CancelReasonGTE applies the GTE predicate on the "cancel_reason" field.
func CancelReasonGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldCancelReason, v))
}

// CancelReasonLT applies the LT predicate on the "cancel_reason" field.
func CancelReasonLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldCancelReason, v))
}

// CancelReasonLTE applies the LTE predicate on the "cancel_reason" field.
func CancelReasonLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldCancelReason, v))
}

// CancelReasonContains applies the Contains predicate on the "cancel_reason" field.
func CancelReasonContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldCancelReason, v))
}

// CancelReasonHasPrefix applies the HasPrefix predicate on the "cancel_reason" field.
func CancelReasonHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldCancelReason, v))
}

// CancelReasonHasSuffix applies the HasSuffix predicate on the "cancel_reason" field.
func CancelReasonHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldCancelReason, v))
}

// CancelReasonIsNil applies the IsNil predicate on the "cancel_reason" field.
func CancelReasonIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldCancelReason))
}

// CancelReasonNotNil applies the NotNil predicate on the "cancel_reason" field.
func CancelReasonNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldCancelReason))
}

// CancelReasonEqualFold applies the EqualFold predicate on the "cancel_reason" field.
func CancelReasonEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldCancelReason, v))
}

// CancelReasonContainsFold applies the ContainsFold predicate on the "cancel_reason" field.
func CancelReasonContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldCancelReason, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldInput, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldInput))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldInput, v))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldSessionMetadata))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldContainsFold(FieldPodID, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CascadeSession {
	return predicate.CascadeSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.CascadeSession) predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.CascadeSession) predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogRows applies the HasEdge predicate on the "log_rows" edge.
func HasLogRows() predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogRowsTable, LogRowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogRowsWith applies the HasEdge predicate on the "log_rows" edge with a given conditions (other predicates).
func HasLogRowsWith(preds ...predicate.LogRow) predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := newLogRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.CascadeSession {
	return predicate.CascadeSession(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CascadeSession) predicate.CascadeSession {
	return predicate.CascadeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CascadeSession) predicate.CascadeSession {
	return predicate.CascadeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CascadeSession) predicate.CascadeSession {
	return predicate.CascadeSession(sql.NotPredicates(p))
}
